package canvasex

// TextPlacement is the outcome of laying a text run out in a rectangle:
// where the native text call anchors it and how overflow is handled.
type TextPlacement struct {
	// Anchor is the point passed to the Canvas text call.
	Anchor Point

	// MaxWidth is the width limit passed to the Canvas text call,
	// Unconstrained unless the policy is FitBlackBox.
	MaxWidth float64

	// Clip reports whether the text call must run inside a clip region
	// equal to ClipRect.
	Clip     bool
	ClipRect Rect
}

// Anchor returns the point of r that text aligned with a is anchored to.
//
//	horizontal  start, left             -> r.X
//	            center                  -> r.X + r.Width/2
//	            end, right              -> r.X + r.Width
//	vertical    top, hanging            -> r.Y
//	            middle                  -> r.Y + r.Height/2
//	            alphabetic, ideographic,
//	            bottom                  -> r.Y + r.Height
//
// A component outside its enumeration yields 0 for that coordinate.
func Anchor(r Rect, a Alignment) Point {
	return Point{X: anchorX(r, a.Horizontal), Y: anchorY(r, a.Vertical)}
}

func anchorX(r Rect, h HAlign) float64 {
	switch h {
	case AlignStart, AlignLeft:
		return r.X
	case AlignEnd, AlignRight:
		return r.X + r.Width
	case AlignCenter:
		return r.X + r.Width/2
	}
	return 0
}

func anchorY(r Rect, v VAlign) float64 {
	switch v {
	case BaselineTop, BaselineHanging:
		return r.Y
	case BaselineBottom, BaselineAlphabetic, BaselineIdeographic:
		return r.Y + r.Height
	case BaselineMiddle:
		return r.Y + r.Height/2
	}
	return 0
}

// LayoutText computes the placement of a text run in r. The anchor
// depends only on the alignment and the overflow handling only on the
// policy. An unknown policy is treated as DefaultOverflow.
func LayoutText(r Rect, f TextFormat) TextPlacement {
	p := TextPlacement{
		Anchor:   Anchor(r, f.Align),
		MaxWidth: Unconstrained,
	}
	switch f.Overflow {
	case Clip:
		p.Clip = true
		p.ClipRect = r
	case NoClip:
	default:
		p.MaxWidth = r.Width
	}
	return p
}

// StrokeTextInRect strokes run inside r, positioned and constrained by f.
func (d *Drawer) StrokeTextInRect(run TextRun, r Rect, f TextFormat) *Drawer {
	return d.drawTextInRect("strokeTextInRect", strokeMode, run, r, f)
}

// FillTextInRect fills run inside r, positioned and constrained by f.
func (d *Drawer) FillTextInRect(run TextRun, r Rect, f TextFormat) *Drawer {
	return d.drawTextInRect("fillTextInRect", fillMode, run, r, f)
}

func (d *Drawer) drawTextInRect(op string, mode paintMode, run TextRun, r Rect, f TextFormat) *Drawer {
	if d.err != nil {
		return d
	}
	if err := f.Validate(); err != nil {
		if d.strict {
			d.fail(op, err)
			return d
		}
		d.logger().Debug("canvasex: degrading text format",
			"op", op, "align", f.Align.String(), "overflow", f.Overflow.String())
	}
	if !d.applyText(op, mode, run, f.Align) {
		return d
	}

	p := LayoutText(r, f)
	if !p.Clip {
		d.fail(op, d.emitText(mode, run.Text, p.Anchor, p.MaxWidth))
		return d
	}
	d.fail(op, d.clipped(p.ClipRect, func() error {
		return d.emitText(mode, run.Text, p.Anchor, Unconstrained)
	}))
	return d
}

// clipped runs draw with the clip region narrowed to r. The Canvas state
// is restored on every exit path, including a panic inside draw.
func (d *Drawer) clipped(r Rect, draw func() error) error {
	d.c.Save()
	defer d.c.Restore()

	d.c.BeginPath()
	d.c.Rect(r.X, r.Y, r.Width, r.Height)
	d.c.Clip()
	return draw()
}
