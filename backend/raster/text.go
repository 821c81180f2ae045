package raster

import (
	"math"

	"github.com/gogpu/canvasex"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// hangingRatio places the hanging baseline relative to the ascent.
const hangingRatio = 0.8

// layoutRun computes where a run of natural width advance starts and how
// much it is compressed horizontally, for an anchor at (x, y).
// It returns the pen origin on the alphabetic baseline and the x scale.
func layoutRun(m text.Metrics, advance, x, y float64, align canvasex.HAlign, baseline canvasex.VAlign, maxWidth float64) (ox, oy, sx float64) {
	sx = 1
	if canvasex.IsConstrained(maxWidth) && advance > maxWidth && advance > 0 {
		sx = math.Max(maxWidth, 0) / advance
	}
	w := advance * sx

	ox = x
	switch align {
	case canvasex.AlignCenter:
		ox -= w / 2
	case canvasex.AlignEnd, canvasex.AlignRight:
		ox -= w
	}

	oy = y
	switch baseline {
	case canvasex.BaselineTop:
		oy += m.Ascent
	case canvasex.BaselineHanging:
		oy += hangingRatio * m.Ascent
	case canvasex.BaselineMiddle:
		oy += (m.Ascent - m.Descent) / 2
	case canvasex.BaselineBottom, canvasex.BaselineIdeographic:
		oy -= m.Descent
	}
	return ox, oy, sx
}

func (c *Canvas) StrokeText(s string, x, y, maxWidth float64) error {
	if err := c.loadText(s, x, y, maxWidth); err != nil {
		return err
	}
	return c.paint(c.st.strokeStyle, (*gg.Context).Stroke)
}

func (c *Canvas) FillText(s string, x, y, maxWidth float64) error {
	if err := c.loadText(s, x, y, maxWidth); err != nil {
		return err
	}
	return c.paint(c.st.fillStyle, (*gg.Context).Fill)
}

// face returns the face for the current font, resolving it lazily for the
// default font.
func (c *Canvas) face() (text.Face, error) {
	if c.st.face == nil {
		face, err := c.book.Face(c.st.font)
		if err != nil {
			return nil, err
		}
		c.st.face = face
	}
	return c.st.face, nil
}

// loadText replaces the context path with the outlines of s.
func (c *Canvas) loadText(s string, x, y, maxWidth float64) error {
	face, err := c.face()
	if err != nil {
		return err
	}
	ox, oy, sx := layoutRun(face.Metrics(), face.Advance(s), x, y, c.st.align, c.st.baseline, maxWidth)

	parsed := face.Source().Parsed()
	c.dc.ClearPath()
	for g := range face.Glyphs(s) {
		outline, err := c.outlines.ExtractOutline(parsed, g.GID, face.Size())
		if err != nil {
			canvasex.Logger().Debug("raster: skipping glyph", "rune", string(g.Rune), "err", err)
			continue
		}
		gx, gy := ox+g.X*sx, oy+g.Y
		pt := func(p text.OutlinePoint) (float64, float64) {
			return gx + float64(p.X)*sx, gy + float64(p.Y)
		}
		open := false
		for _, seg := range outline.Segments {
			switch seg.Op {
			case text.OutlineOpMoveTo:
				if open {
					c.dc.ClosePath()
				}
				c.dc.MoveTo(pt(seg.Points[0]))
				open = true
			case text.OutlineOpLineTo:
				c.dc.LineTo(pt(seg.Points[0]))
			case text.OutlineOpQuadTo:
				x1, y1 := pt(seg.Points[0])
				x2, y2 := pt(seg.Points[1])
				c.dc.QuadraticTo(x1, y1, x2, y2)
			case text.OutlineOpCubicTo:
				x1, y1 := pt(seg.Points[0])
				x2, y2 := pt(seg.Points[1])
				x3, y3 := pt(seg.Points[2])
				c.dc.CubicTo(x1, y1, x2, y2, x3, y3)
			}
		}
		if open {
			c.dc.ClosePath()
		}
	}
	return nil
}
