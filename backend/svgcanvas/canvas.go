package svgcanvas

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/gogpu/canvasex"
	"github.com/gogpu/canvasex/recording"
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return New()
	})
}

// ErrNoDocument is returned by output methods before End completes a
// document.
var ErrNoDocument = errors.New("svgcanvas: no finished document")

type state struct {
	strokeStyle canvasex.Style
	fillStyle   canvasex.Style
	lineWidth   float64
	font        canvasex.Font
	spec        canvasex.FontSpec
	align       canvasex.HAlign
	baseline    canvasex.VAlign

	// groups is the number of clip groups opened at this level.
	groups int
}

// Canvas writes Canvas calls as SVG elements. Begin starts a document and
// End finishes it; drawing calls are only valid in between.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	opts options

	buf   bytes.Buffer
	doc   *svg.SVG
	done  bool
	clips int

	st    state
	stack []state

	path    strings.Builder
	current bool
}

var (
	_ recording.WriterBackend = (*Canvas)(nil)
	_ recording.FileBackend   = (*Canvas)(nil)
)

// New returns a Canvas. Call Begin before drawing.
func New(opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Canvas{opts: o}
}

// Begin discards any previous document and starts a new one.
func (c *Canvas) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: svg size %dx%d", canvasex.ErrInvalidArgument, width, height)
	}
	c.buf.Reset()
	c.doc = svg.New(&c.buf)
	c.doc.Start(width, height)
	c.done = false
	c.clips = 0

	spec, _ := canvasex.ParseFont(canvasex.DefaultFont)
	c.st = state{
		strokeStyle: "black",
		fillStyle:   "black",
		lineWidth:   1,
		font:        canvasex.DefaultFont,
		spec:        spec,
	}
	c.stack = c.stack[:0]
	c.BeginPath()
	return nil
}

// End closes any clip groups left open and finishes the document.
func (c *Canvas) End() error {
	if c.doc == nil {
		return ErrNoDocument
	}
	for len(c.stack) > 0 {
		c.Restore()
	}
	c.closeGroups()
	c.doc.End()
	c.done = true
	return nil
}

// Bytes returns the finished document.
func (c *Canvas) Bytes() ([]byte, error) {
	if !c.done {
		return nil, ErrNoDocument
	}
	return c.buf.Bytes(), nil
}

// WriteTo writes the finished document to w.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	if !c.done {
		return 0, ErrNoDocument
	}
	n, err := w.Write(c.buf.Bytes())
	return int64(n), err
}

// SaveToFile writes the finished document to path.
func (c *Canvas) SaveToFile(path string) error {
	if !c.done {
		return ErrNoDocument
	}
	if err := os.WriteFile(path, c.buf.Bytes(), 0o644); err != nil {
		return err
	}
	canvasex.Logger().Info("svgcanvas: document written", "path", path, "bytes", c.buf.Len())
	return nil
}

func (c *Canvas) SetStrokeStyle(s canvasex.Style) { c.st.strokeStyle = s }
func (c *Canvas) SetFillStyle(s canvasex.Style)   { c.st.fillStyle = s }

func (c *Canvas) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 1) {
		c.st.lineWidth = w
	}
}

func (c *Canvas) SetFont(f canvasex.Font) error {
	spec, err := canvasex.ParseFont(f)
	if err != nil {
		return err
	}
	c.st.font = f
	c.st.spec = spec
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

// Save pushes the drawing state. Clip groups opened after Save are closed
// by the matching Restore.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.st)
	c.st.groups = 0
}

func (c *Canvas) Restore() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.closeGroups()
	c.st = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

func (c *Canvas) closeGroups() {
	for ; c.st.groups > 0; c.st.groups-- {
		c.doc.Gend()
	}
}

// Clip defines the current path as a clip path and opens a group using it.
func (c *Canvas) Clip() {
	c.clips++
	id := "clip" + strconv.Itoa(c.clips)
	d := c.pathData()
	if d == "" {
		// An empty clip hides everything.
		d = "M0 0Z"
	}
	c.doc.Def()
	c.doc.ClipPath(attr("id", id))
	c.doc.Path(d)
	c.doc.ClipEnd()
	c.doc.DefEnd()
	c.doc.Group(attr("clip-path", "url(#"+id+")"))
	c.st.groups++
}

func (c *Canvas) Stroke() error {
	return c.strokePath(c.pathData())
}

func (c *Canvas) Fill() error {
	return c.fillPath(c.pathData())
}

func (c *Canvas) StrokeRect(x, y, w, h float64) error {
	return c.strokePath(c.rectData(x, y, w, h))
}

func (c *Canvas) FillRect(x, y, w, h float64) error {
	return c.fillPath(c.rectData(x, y, w, h))
}

func (c *Canvas) strokePath(d string) error {
	attrs, err := c.strokeAttrs()
	if err != nil {
		return err
	}
	if d != "" {
		c.doc.Path(d, attrs...)
	}
	return nil
}

func (c *Canvas) fillPath(d string) error {
	attrs, err := paintAttrs("fill", c.st.fillStyle)
	if err != nil {
		return err
	}
	if d != "" {
		c.doc.Path(d, attrs...)
	}
	return nil
}

func (c *Canvas) strokeAttrs() ([]string, error) {
	attrs, err := paintAttrs("stroke", c.st.strokeStyle)
	if err != nil {
		return nil, err
	}
	return append(attrs, attr("fill", "none"), attr("stroke-width", c.num(c.st.lineWidth))), nil
}

func (c *Canvas) StrokeText(s string, x, y, maxWidth float64) error {
	attrs, err := c.strokeAttrs()
	if err != nil {
		return err
	}
	return c.text(s, x, y, maxWidth, attrs)
}

func (c *Canvas) FillText(s string, x, y, maxWidth float64) error {
	attrs, err := paintAttrs("fill", c.st.fillStyle)
	if err != nil {
		return err
	}
	return c.text(s, x, y, maxWidth, attrs)
}

func (c *Canvas) text(s string, x, y, maxWidth float64, paint []string) error {
	attrs := append(fontAttrs(c.st.spec, c.num), paint...)
	attrs = append(attrs,
		attr("text-anchor", textAnchor(c.st.align)),
		attr("dominant-baseline", dominantBaseline(c.st.baseline)),
	)
	if canvasex.IsConstrained(maxWidth) {
		advance, err := c.opts.measure(c.st.font, s)
		if err != nil {
			return fmt.Errorf("svgcanvas: measure text: %w", err)
		}
		if advance > maxWidth {
			attrs = append(attrs,
				attr("textLength", c.num(math.Max(maxWidth, 0))),
				attr("lengthAdjust", "spacingAndGlyphs"),
			)
		}
	}
	c.doc.Gtransform("translate(" + c.num(x) + "," + c.num(y) + ")")
	c.doc.Text(0, 0, s, attrs...)
	c.doc.Gend()
	return nil
}

// num formats a coordinate with the configured precision.
func (c *Canvas) num(v float64) string {
	p := math.Pow(10, float64(c.opts.precision))
	v = math.Round(v*p) / p
	if v == 0 {
		v = 0 // no "-0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
