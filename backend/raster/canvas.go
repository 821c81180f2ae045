package raster

import (
	"fmt"
	"math"

	"github.com/gogpu/canvasex"
	"github.com/gogpu/canvasex/fontbook"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// state is the part of the canvas saved by Save and restored by Restore.
type state struct {
	strokeStyle canvasex.Style
	fillStyle   canvasex.Style
	lineWidth   float64
	font        canvasex.Font
	face        text.Face
	align       canvasex.HAlign
	baseline    canvasex.VAlign
}

// Canvas draws onto a *gg.Context.
//
// gg shares one brush between fill and stroke and consumes its path when
// drawing, so the Canvas keeps its own styles and path and hands them to
// the context for each draw call.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	dc    *gg.Context
	book  *fontbook.Book
	opts  options
	st    state
	stack []state
	path  *gg.Path

	outlines *text.OutlineExtractor
}

var _ canvasex.Canvas = (*Canvas)(nil)

// NewCanvas returns a Canvas drawing onto dc. A nil dc is allowed only
// for Backend use, where Begin creates the context.
func NewCanvas(dc *gg.Context, opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	book := o.book
	if book == nil {
		book = fontbook.Default()
	}
	c := &Canvas{
		dc:       dc,
		book:     book,
		opts:     o,
		path:     gg.NewPath(),
		outlines: text.NewOutlineExtractor(),
	}
	c.resetState()
	return c
}

func (c *Canvas) resetState() {
	c.st = state{
		strokeStyle: gg.Black,
		fillStyle:   gg.Black,
		lineWidth:   c.opts.lineWidth,
		font:        canvasex.DefaultFont,
	}
	c.stack = c.stack[:0]
	c.path.Clear()
}

// Context returns the underlying gg context.
func (c *Canvas) Context() *gg.Context {
	return c.dc
}

func (c *Canvas) SetStrokeStyle(s canvasex.Style) { c.st.strokeStyle = s }
func (c *Canvas) SetFillStyle(s canvasex.Style)   { c.st.fillStyle = s }

// SetLineWidth ignores zero, negative, infinite and NaN widths.
func (c *Canvas) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 1) {
		c.st.lineWidth = w
	}
}

// SetFont resolves f through the font book. On error the previous font
// stays in effect.
func (c *Canvas) SetFont(f canvasex.Font) error {
	face, err := c.book.Face(f)
	if err != nil {
		return err
	}
	c.st.font = f
	c.st.face = face
	return nil
}

func (c *Canvas) SetTextAlign(h canvasex.HAlign) {
	if h.Valid() {
		c.st.align = h
	}
}

func (c *Canvas) SetTextBaseline(v canvasex.VAlign) {
	if v.Valid() {
		c.st.baseline = v
	}
}

func (c *Canvas) BeginPath()          { c.path.Clear() }
func (c *Canvas) MoveTo(x, y float64) { c.path.MoveTo(x, y) }
func (c *Canvas) ClosePath()          { c.path.Close() }

// LineTo starts a subpath at (x, y) when there is no current point.
func (c *Canvas) LineTo(x, y float64) {
	if !c.path.HasCurrentPoint() {
		c.path.MoveTo(x, y)
		return
	}
	c.path.LineTo(x, y)
}

func (c *Canvas) Arc(cx, cy, r, start, end float64) {
	c.Ellipse(cx, cy, r, r, start, end)
}

func (c *Canvas) Ellipse(cx, cy, rx, ry, start, end float64) {
	ellipticalArc(c.path, cx, cy, rx, ry, start, end)
}

func (c *Canvas) Rect(x, y, w, h float64) {
	c.path.MoveTo(x, y)
	c.path.LineTo(x+w, y)
	c.path.LineTo(x+w, y+h)
	c.path.LineTo(x, y+h)
	c.path.Close()
}

// Save pushes the drawing state and the clip region.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.st)
	c.dc.Push()
}

// Restore pops the state pushed by the matching Save. Without a matching
// Save it does nothing.
func (c *Canvas) Restore() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.st = c.stack[n-1]
	c.stack = c.stack[:n-1]
	c.dc.Pop()
}

// Clip intersects the clip region with the current path. The path is kept.
func (c *Canvas) Clip() {
	c.load(c.path)
	c.dc.Clip()
}

func (c *Canvas) Stroke() error {
	c.load(c.path)
	return c.paint(c.st.strokeStyle, (*gg.Context).Stroke)
}

func (c *Canvas) Fill() error {
	c.load(c.path)
	return c.paint(c.st.fillStyle, (*gg.Context).Fill)
}

func (c *Canvas) StrokeRect(x, y, w, h float64) error {
	c.load(rectPath(x, y, w, h))
	return c.paint(c.st.strokeStyle, (*gg.Context).Stroke)
}

func (c *Canvas) FillRect(x, y, w, h float64) error {
	c.load(rectPath(x, y, w, h))
	return c.paint(c.st.fillStyle, (*gg.Context).Fill)
}

// load replaces the context path with p.
func (c *Canvas) load(p *gg.Path) {
	c.dc.ClearPath()
	for _, el := range p.Elements() {
		switch el := el.(type) {
		case gg.MoveTo:
			c.dc.MoveTo(el.Point.X, el.Point.Y)
		case gg.LineTo:
			c.dc.LineTo(el.Point.X, el.Point.Y)
		case gg.QuadTo:
			c.dc.QuadraticTo(el.Control.X, el.Control.Y, el.Point.X, el.Point.Y)
		case gg.CubicTo:
			c.dc.CubicTo(el.Control1.X, el.Control1.Y, el.Control2.X, el.Control2.Y, el.Point.X, el.Point.Y)
		case gg.Close:
			c.dc.ClosePath()
		}
	}
}

// paint sets the brush for style and runs draw on the loaded path.
func (c *Canvas) paint(style canvasex.Style, draw func(*gg.Context) error) error {
	brush, err := brushFor(style)
	if err != nil {
		c.dc.ClearPath()
		return err
	}
	c.dc.SetFillBrush(brush)
	c.dc.SetLineWidth(c.st.lineWidth)
	if err := draw(c.dc); err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	return nil
}

func rectPath(x, y, w, h float64) *gg.Path {
	p := gg.NewPath()
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

// ellipticalArc appends an arc of the axis-aligned ellipse to p, sweeping
// clockwise on screen from start to end. A sweep of 2π or more draws the
// full ellipse. When p has a current point a line joins it to the arc.
func ellipticalArc(p *gg.Path, cx, cy, rx, ry, start, end float64) {
	const twoPi = 2 * math.Pi

	sweep := end - start
	if sweep >= twoPi {
		sweep = twoPi
	} else {
		sweep = math.Mod(sweep, twoPi)
		if sweep < 0 {
			sweep += twoPi
		}
	}

	x0, y0 := cx+rx*math.Cos(start), cy+ry*math.Sin(start)
	if p.HasCurrentPoint() {
		p.LineTo(x0, y0)
	} else {
		p.MoveTo(x0, y0)
	}
	if sweep == 0 || rx <= 0 || ry <= 0 {
		return
	}

	// At most a quarter turn per cubic segment.
	n := max(int(math.Ceil(sweep/(math.Pi/2)-1e-9)), 1)
	step := sweep / float64(n)
	alpha := math.Sin(step) * (math.Sqrt(4+3*math.Tan(step/2)*math.Tan(step/2)) - 1) / 3

	a1 := start
	for i := 0; i < n; i++ {
		a2 := a1 + step
		cos1, sin1 := math.Cos(a1), math.Sin(a1)
		cos2, sin2 := math.Cos(a2), math.Sin(a2)
		p.CubicTo(
			cx+rx*(cos1-alpha*sin1), cy+ry*(sin1+alpha*cos1),
			cx+rx*(cos2+alpha*sin2), cy+ry*(sin2-alpha*cos2),
			cx+rx*cos2, cy+ry*sin2,
		)
		a1 = a2
	}
}
