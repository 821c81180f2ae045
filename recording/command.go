package recording

import "github.com/gogpu/canvasex"

// CommandType identifies the Canvas call a command records.
type CommandType uint8

const (
	// State commands
	CmdSave    CommandType = iota // Save current state
	CmdRestore                    // Restore previous state
	CmdClip                       // Intersect clip with current path

	// Style commands
	CmdSetStrokeStyle  // Set stroke style
	CmdSetFillStyle    // Set fill style
	CmdSetLineWidth    // Set stroke width
	CmdSetFont         // Set font descriptor
	CmdSetTextAlign    // Set horizontal text alignment
	CmdSetTextBaseline // Set vertical text alignment

	// Path commands
	CmdBeginPath // Discard current path
	CmdMoveTo    // Start subpath
	CmdLineTo    // Straight segment
	CmdArc       // Circular arc
	CmdEllipse   // Elliptical arc
	CmdRect      // Closed rectangle subpath
	CmdClosePath // Close subpath

	// Drawing commands
	CmdStroke     // Stroke current path
	CmdFill       // Fill current path
	CmdStrokeRect // Stroke a rectangle
	CmdFillRect   // Fill a rectangle
	CmdStrokeText // Stroke text
	CmdFillText   // Fill text
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:            "Save",
	CmdRestore:         "Restore",
	CmdClip:            "Clip",
	CmdSetStrokeStyle:  "SetStrokeStyle",
	CmdSetFillStyle:    "SetFillStyle",
	CmdSetLineWidth:    "SetLineWidth",
	CmdSetFont:         "SetFont",
	CmdSetTextAlign:    "SetTextAlign",
	CmdSetTextBaseline: "SetTextBaseline",
	CmdBeginPath:       "BeginPath",
	CmdMoveTo:          "MoveTo",
	CmdLineTo:          "LineTo",
	CmdArc:             "Arc",
	CmdEllipse:         "Ellipse",
	CmdRect:            "Rect",
	CmdClosePath:       "ClosePath",
	CmdStroke:          "Stroke",
	CmdFill:            "Fill",
	CmdStrokeRect:      "StrokeRect",
	CmdFillRect:        "FillRect",
	CmdStrokeText:      "StrokeText",
	CmdFillText:        "FillText",
}

// String returns the name of the Canvas method the type records.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// IsPath reports whether the command builds or discards path geometry.
func (c CommandType) IsPath() bool {
	return c >= CmdBeginPath && c <= CmdClosePath
}

// IsDraw reports whether the command paints pixels.
func (c CommandType) IsDraw() bool {
	return c >= CmdStroke && c <= CmdFillText
}

// Command is implemented by all recorded commands.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// SaveCommand records Canvas.Save.
type SaveCommand struct{}

// RestoreCommand records Canvas.Restore.
type RestoreCommand struct{}

// ClipCommand records Canvas.Clip.
type ClipCommand struct{}

// SetStrokeStyleCommand records Canvas.SetStrokeStyle.
type SetStrokeStyleCommand struct {
	Style canvasex.Style
}

// SetFillStyleCommand records Canvas.SetFillStyle.
type SetFillStyleCommand struct {
	Style canvasex.Style
}

// SetLineWidthCommand records Canvas.SetLineWidth.
type SetLineWidthCommand struct {
	Width float64
}

// SetFontCommand records Canvas.SetFont.
type SetFontCommand struct {
	Font canvasex.Font
}

// SetTextAlignCommand records Canvas.SetTextAlign.
type SetTextAlignCommand struct {
	Align canvasex.HAlign
}

// SetTextBaselineCommand records Canvas.SetTextBaseline.
type SetTextBaselineCommand struct {
	Baseline canvasex.VAlign
}

// BeginPathCommand records Canvas.BeginPath.
type BeginPathCommand struct{}

// MoveToCommand records Canvas.MoveTo.
type MoveToCommand struct {
	X, Y float64
}

// LineToCommand records Canvas.LineTo.
type LineToCommand struct {
	X, Y float64
}

// ArcCommand records Canvas.Arc.
type ArcCommand struct {
	CX, CY     float64
	Radius     float64
	Start, End float64
}

// EllipseCommand records Canvas.Ellipse.
type EllipseCommand struct {
	CX, CY     float64
	RX, RY     float64
	Start, End float64
}

// RectCommand records Canvas.Rect.
type RectCommand struct {
	Rect canvasex.Rect
}

// ClosePathCommand records Canvas.ClosePath.
type ClosePathCommand struct{}

// StrokeCommand records Canvas.Stroke.
type StrokeCommand struct{}

// FillCommand records Canvas.Fill.
type FillCommand struct{}

// StrokeRectCommand records Canvas.StrokeRect.
type StrokeRectCommand struct {
	Rect canvasex.Rect
}

// FillRectCommand records Canvas.FillRect.
type FillRectCommand struct {
	Rect canvasex.Rect
}

// StrokeTextCommand records Canvas.StrokeText.
type StrokeTextCommand struct {
	Text     string
	X, Y     float64
	MaxWidth float64
}

// FillTextCommand records Canvas.FillText.
type FillTextCommand struct {
	Text     string
	X, Y     float64
	MaxWidth float64
}

func (SaveCommand) Type() CommandType            { return CmdSave }
func (RestoreCommand) Type() CommandType         { return CmdRestore }
func (ClipCommand) Type() CommandType            { return CmdClip }
func (SetStrokeStyleCommand) Type() CommandType  { return CmdSetStrokeStyle }
func (SetFillStyleCommand) Type() CommandType    { return CmdSetFillStyle }
func (SetLineWidthCommand) Type() CommandType    { return CmdSetLineWidth }
func (SetFontCommand) Type() CommandType         { return CmdSetFont }
func (SetTextAlignCommand) Type() CommandType    { return CmdSetTextAlign }
func (SetTextBaselineCommand) Type() CommandType { return CmdSetTextBaseline }
func (BeginPathCommand) Type() CommandType       { return CmdBeginPath }
func (MoveToCommand) Type() CommandType          { return CmdMoveTo }
func (LineToCommand) Type() CommandType          { return CmdLineTo }
func (ArcCommand) Type() CommandType             { return CmdArc }
func (EllipseCommand) Type() CommandType         { return CmdEllipse }
func (RectCommand) Type() CommandType            { return CmdRect }
func (ClosePathCommand) Type() CommandType       { return CmdClosePath }
func (StrokeCommand) Type() CommandType          { return CmdStroke }
func (FillCommand) Type() CommandType            { return CmdFill }
func (StrokeRectCommand) Type() CommandType      { return CmdStrokeRect }
func (FillRectCommand) Type() CommandType        { return CmdFillRect }
func (StrokeTextCommand) Type() CommandType      { return CmdStrokeText }
func (FillTextCommand) Type() CommandType        { return CmdFillText }

// replay issues cmd against c.
func replay(c canvasex.Canvas, cmd Command) error {
	switch cmd := cmd.(type) {
	case SaveCommand:
		c.Save()
	case RestoreCommand:
		c.Restore()
	case ClipCommand:
		c.Clip()
	case SetStrokeStyleCommand:
		c.SetStrokeStyle(cmd.Style)
	case SetFillStyleCommand:
		c.SetFillStyle(cmd.Style)
	case SetLineWidthCommand:
		c.SetLineWidth(cmd.Width)
	case SetFontCommand:
		return c.SetFont(cmd.Font)
	case SetTextAlignCommand:
		c.SetTextAlign(cmd.Align)
	case SetTextBaselineCommand:
		c.SetTextBaseline(cmd.Baseline)
	case BeginPathCommand:
		c.BeginPath()
	case MoveToCommand:
		c.MoveTo(cmd.X, cmd.Y)
	case LineToCommand:
		c.LineTo(cmd.X, cmd.Y)
	case ArcCommand:
		c.Arc(cmd.CX, cmd.CY, cmd.Radius, cmd.Start, cmd.End)
	case EllipseCommand:
		c.Ellipse(cmd.CX, cmd.CY, cmd.RX, cmd.RY, cmd.Start, cmd.End)
	case RectCommand:
		c.Rect(cmd.Rect.X, cmd.Rect.Y, cmd.Rect.Width, cmd.Rect.Height)
	case ClosePathCommand:
		c.ClosePath()
	case StrokeCommand:
		return c.Stroke()
	case FillCommand:
		return c.Fill()
	case StrokeRectCommand:
		return c.StrokeRect(cmd.Rect.X, cmd.Rect.Y, cmd.Rect.Width, cmd.Rect.Height)
	case FillRectCommand:
		return c.FillRect(cmd.Rect.X, cmd.Rect.Y, cmd.Rect.Width, cmd.Rect.Height)
	case StrokeTextCommand:
		return c.StrokeText(cmd.Text, cmd.X, cmd.Y, cmd.MaxWidth)
	case FillTextCommand:
		return c.FillText(cmd.Text, cmd.X, cmd.Y, cmd.MaxWidth)
	}
	return nil
}
