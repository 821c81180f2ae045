package canvasex

import "math"

// Canvas is the immediate-mode 2D graphics context canvasex draws on.
// It mirrors the subset of the HTML CanvasRenderingContext2D API that the
// drawing primitives need.
//
// Coordinates use a y-down system. Angles are in radians and sweep
// clockwise on screen from start to end, with 0 pointing along +x.
//
// A Canvas keeps its styling state (styles, font, alignment, clip) between
// calls. Save and Restore push and pop that state; the current path is not
// part of it. Implementations are not required to be safe for concurrent use.
type Canvas interface {
	SetStrokeStyle(s Style)
	SetFillStyle(s Style)
	SetLineWidth(w float64)

	// SetFont sets the font used by the text calls. It returns an error
	// wrapping ErrInvalidFont when the descriptor cannot be used.
	SetFont(f Font) error
	// SetTextAlign and SetTextBaseline ignore values outside their
	// enumerations and keep the previous setting, as the HTML canvas does.
	SetTextAlign(h HAlign)
	SetTextBaseline(v VAlign)

	// BeginPath discards the current path.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds a circular arc. When the path has a current point, a
	// straight line joins it to the start of the arc.
	Arc(cx, cy, r, start, end float64)
	// Ellipse is Arc with separate x and y radii.
	Ellipse(cx, cy, rx, ry, start, end float64)
	// Rect adds a closed rectangular subpath.
	Rect(x, y, w, h float64)
	ClosePath()

	// Stroke and Fill paint the current path without discarding it.
	Stroke() error
	Fill() error
	// StrokeRect and FillRect paint a rectangle without touching the
	// current path.
	StrokeRect(x, y, w, h float64) error
	FillRect(x, y, w, h float64) error

	Save()
	Restore()
	// Clip intersects the clip region with the current path.
	Clip()

	// StrokeText and FillText draw a single line of text anchored at (x, y)
	// according to the text alignment and baseline. If the text is wider
	// than maxWidth it is compressed horizontally to fit; pass
	// Unconstrained to draw at natural width.
	StrokeText(s string, x, y, maxWidth float64) error
	FillText(s string, x, y, maxWidth float64) error
}

// Unconstrained is the maxWidth value meaning "no width limit".
var Unconstrained = math.Inf(1)

// IsConstrained reports whether maxWidth imposes a limit.
func IsConstrained(maxWidth float64) bool {
	return !math.IsInf(maxWidth, 1) && !math.IsNaN(maxWidth)
}
