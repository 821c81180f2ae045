package canvasex

// paintMode selects between the stroke and fill variant of a text call.
type paintMode uint8

const (
	strokeMode paintMode = iota
	fillMode
)

// StrokeText strokes run anchored at (x, y) using the Canvas's own
// alignment semantics. No bounding box is involved.
func (d *Drawer) StrokeText(run TextRun, x, y float64, a Alignment) *Drawer {
	return d.drawText("strokeText", strokeMode, run, x, y, a, Unconstrained)
}

// StrokeTextMax is StrokeText with a maximum rendering width.
func (d *Drawer) StrokeTextMax(run TextRun, x, y float64, a Alignment, maxWidth float64) *Drawer {
	return d.drawText("strokeText", strokeMode, run, x, y, a, maxWidth)
}

// FillText fills run anchored at (x, y) using the Canvas's own alignment
// semantics. No bounding box is involved.
func (d *Drawer) FillText(run TextRun, x, y float64, a Alignment) *Drawer {
	return d.drawText("fillText", fillMode, run, x, y, a, Unconstrained)
}

// FillTextMax is FillText with a maximum rendering width.
func (d *Drawer) FillTextMax(run TextRun, x, y float64, a Alignment, maxWidth float64) *Drawer {
	return d.drawText("fillText", fillMode, run, x, y, a, maxWidth)
}

func (d *Drawer) drawText(op string, mode paintMode, run TextRun, x, y float64, a Alignment, maxWidth float64) *Drawer {
	if d.err != nil {
		return d
	}
	if err := a.Validate(); err != nil && d.strict {
		d.fail(op, err)
		return d
	}
	if !d.applyText(op, mode, run, a) {
		return d
	}
	d.fail(op, d.emitText(mode, run.Text, Pt(x, y), maxWidth))
	return d
}

// applyText sets font, paint and alignment for a text call.
// It reports false when the font was rejected.
func (d *Drawer) applyText(op string, mode paintMode, run TextRun, a Alignment) bool {
	if err := d.c.SetFont(run.Font); err != nil {
		d.fail(op, err)
		return false
	}
	if mode == strokeMode {
		d.c.SetStrokeStyle(run.Style)
	} else {
		d.c.SetFillStyle(run.Style)
	}
	d.c.SetTextAlign(a.Horizontal)
	d.c.SetTextBaseline(a.Vertical)
	return true
}

func (d *Drawer) emitText(mode paintMode, s string, at Point, maxWidth float64) error {
	if mode == strokeMode {
		return d.c.StrokeText(s, at.X, at.Y, maxWidth)
	}
	return d.c.FillText(s, at.X, at.Y, maxWidth)
}
