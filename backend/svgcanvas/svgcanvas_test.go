package svgcanvas

import (
	"bytes"
	"encoding/xml"
	"errors"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/canvasex"
	"github.com/gogpu/canvasex/recording"
)

// fixedMeasurer reports 10px per byte.
func fixedMeasurer(_ canvasex.Font, s string) (float64, error) {
	return 10 * float64(len(s)), nil
}

func begin(t *testing.T) *Canvas {
	t.Helper()
	c := New(WithMeasurer(fixedMeasurer))
	if err := c.Begin(200, 100); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	return c
}

func finish(t *testing.T, c *Canvas) string {
	t.Helper()
	if err := c.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	b, err := c.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	checkWellFormed(t, b)
	return string(b)
}

// checkWellFormed fails unless doc parses as XML with balanced elements.
func checkWellFormed(t *testing.T, doc []byte) {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(doc))
	depth := 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("invalid XML: %v\n%s", err, doc)
		}
		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	if depth != 0 {
		t.Fatalf("unbalanced elements (depth %d)\n%s", depth, doc)
	}
}

func TestRegistered(t *testing.T) {
	b, err := recording.NewBackend("svg")
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}
	if _, ok := b.(*Canvas); !ok {
		t.Errorf("backend is %T", b)
	}
}

func TestOutputBeforeEnd(t *testing.T) {
	c := New()
	if err := c.End(); !errors.Is(err, ErrNoDocument) {
		t.Errorf("End() before Begin = %v", err)
	}
	_ = c.Begin(10, 10)
	if _, err := c.WriteTo(io.Discard); !errors.Is(err, ErrNoDocument) {
		t.Errorf("WriteTo() before End = %v", err)
	}
	if err := c.Begin(-1, 10); !errors.Is(err, canvasex.ErrInvalidArgument) {
		t.Errorf("Begin(-1, 10) = %v", err)
	}
}

func TestFillRectAndStroke(t *testing.T) {
	c := begin(t)
	c.SetFillStyle("red")
	if err := c.FillRect(10, 10, 20, 20); err != nil {
		t.Fatal(err)
	}
	c.SetStrokeStyle(color.NRGBA{R: 255, G: 128, A: 128})
	c.SetLineWidth(2.5)
	c.BeginPath()
	c.MoveTo(0, 0)
	c.LineTo(50, 25.12345)
	if err := c.Stroke(); err != nil {
		t.Fatal(err)
	}
	doc := finish(t, c)

	for _, want := range []string{
		`<path d="M10 10H30V30H10Z" fill="red"`,
		`<path d="M0 0L50 25.123" stroke="rgb(255,128,0)" stroke-opacity="0.502" fill="none" stroke-width="2.5"`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document lacks %s\n%s", want, doc)
		}
	}
}

func TestEmptyPathWritesNothing(t *testing.T) {
	c := begin(t)
	c.BeginPath()
	if err := c.Fill(); err != nil {
		t.Fatal(err)
	}
	if doc := finish(t, c); strings.Contains(doc, "<path") {
		t.Errorf("empty path produced an element\n%s", doc)
	}
}

func TestInvalidStyle(t *testing.T) {
	c := begin(t)
	c.SetFillStyle(42)
	if err := c.FillRect(0, 0, 1, 1); !errors.Is(err, canvasex.ErrInvalidArgument) {
		t.Errorf("FillRect() = %v, want ErrInvalidArgument", err)
	}
	c.SetStrokeStyle(nil)
	if err := c.StrokeText("x", 0, 0, canvasex.Unconstrained); !errors.Is(err, canvasex.ErrInvalidArgument) {
		t.Errorf("StrokeText() = %v, want ErrInvalidArgument", err)
	}
}

func TestAttributeEscaping(t *testing.T) {
	c := begin(t)
	c.SetFillStyle(`red" onload="x`)
	_ = c.FillRect(0, 0, 1, 1)
	if doc := finish(t, c); strings.Contains(doc, `onload="x"`) {
		t.Errorf("style value not escaped\n%s", doc)
	}
}

func TestClipGroupsBalanced(t *testing.T) {
	c := begin(t)
	c.Save()
	c.BeginPath()
	c.Rect(10, 10, 50, 50)
	c.Clip()
	c.Save()
	c.BeginPath()
	c.Rect(20, 20, 10, 10)
	c.Clip()
	_ = c.FillRect(0, 0, 100, 100)
	c.Restore()
	_ = c.FillRect(0, 0, 5, 5)
	c.Restore()
	doc := finish(t, c)

	if got := strings.Count(doc, "<clipPath"); got != 2 {
		t.Errorf("%d clipPath definitions, want 2", got)
	}
	for _, want := range []string{`id="clip1"`, `clip-path="url(#clip2)"`} {
		if !strings.Contains(doc, want) {
			t.Errorf("document lacks %s", want)
		}
	}
	if opened, closed := strings.Count(doc, "<g "), strings.Count(doc, "</g>"); opened != closed {
		t.Errorf("%d groups opened, %d closed", opened, closed)
	}

	// The second FillRect is inside clip1 only.
	tail := doc[strings.LastIndex(doc, `d="M0 0H5V5H0Z"`):]
	if strings.Count(tail, "</g>") != 1 {
		t.Errorf("second fill is not in exactly one clip group\n%s", doc)
	}
}

func TestEndClosesOpenGroups(t *testing.T) {
	c := begin(t)
	c.Save()
	c.Rect(0, 0, 1, 1)
	c.Clip()
	c.Clip()
	_ = finish(t, c) // checkWellFormed fails on unbalanced groups
}

func TestText(t *testing.T) {
	c := begin(t)
	if err := c.SetFont(`bold 30px "Go Mono", monospace`); err != nil {
		t.Fatal(err)
	}
	c.SetTextAlign(canvasex.AlignCenter)
	c.SetTextBaseline(canvasex.BaselineMiddle)
	c.SetFillStyle("blue")
	if err := c.FillText("a<b", 650, 650, canvasex.Unconstrained); err != nil {
		t.Fatal(err)
	}
	doc := finish(t, c)

	for _, want := range []string{
		`transform="translate(650,650)"`,
		`font-family="&#39;Go Mono&#39;, monospace"`,
		`font-size="30"`,
		`font-weight="700"`,
		`text-anchor="middle"`,
		`dominant-baseline="middle"`,
		`a&lt;b</text>`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document lacks %s\n%s", want, doc)
		}
	}
	if strings.Contains(doc, "textLength") {
		t.Error("unconstrained text has textLength")
	}
}

func TestTextMaxWidth(t *testing.T) {
	c := begin(t)
	_ = c.FillText("abcdef", 0, 0, 100) // 60px, fits
	_ = c.FillText("abcdefghijkl", 0, 0, 100)
	doc := finish(t, c)

	if got := strings.Count(doc, `textLength="100"`); got != 1 {
		t.Errorf("%d compressed runs, want 1\n%s", got, doc)
	}
	if !strings.Contains(doc, `lengthAdjust="spacingAndGlyphs"`) {
		t.Error("missing lengthAdjust")
	}
}

func TestMeasureError(t *testing.T) {
	errBoom := errors.New("boom")
	c := New(WithMeasurer(func(canvasex.Font, string) (float64, error) { return 0, errBoom }))
	_ = c.Begin(10, 10)
	if err := c.FillText("x", 0, 0, 5); !errors.Is(err, errBoom) {
		t.Errorf("FillText() = %v, want %v", err, errBoom)
	}
	if err := c.FillText("x", 0, 0, canvasex.Unconstrained); err != nil {
		t.Errorf("unconstrained FillText measured text: %v", err)
	}
}

func TestBaselineAndAnchorNames(t *testing.T) {
	baselines := map[canvasex.VAlign]string{
		canvasex.BaselineAlphabetic:  "alphabetic",
		canvasex.BaselineTop:         "text-before-edge",
		canvasex.BaselineHanging:     "hanging",
		canvasex.BaselineMiddle:      "middle",
		canvasex.BaselineBottom:      "text-after-edge",
		canvasex.BaselineIdeographic: "ideographic",
	}
	for v, want := range baselines {
		if got := dominantBaseline(v); got != want {
			t.Errorf("dominantBaseline(%s) = %q, want %q", v, got, want)
		}
	}
	anchors := map[canvasex.HAlign]string{
		canvasex.AlignStart:  "start",
		canvasex.AlignLeft:   "start",
		canvasex.AlignCenter: "middle",
		canvasex.AlignEnd:    "end",
		canvasex.AlignRight:  "end",
	}
	for h, want := range anchors {
		if got := textAnchor(h); got != want {
			t.Errorf("textAnchor(%s) = %q, want %q", h, got, want)
		}
	}
}

func TestEllipsePathData(t *testing.T) {
	c := begin(t)

	c.BeginPath()
	c.Ellipse(75, 560, 75, 60, 0, 2*math.Pi)
	if got, want := c.pathData(), "M150 560A75 60 0 0 1 0 560A75 60 0 0 1 150 560"; got != want {
		t.Errorf("full ellipse = %q, want %q", got, want)
	}

	c.BeginPath()
	c.MoveTo(200, 500)
	c.Arc(200, 500, 100, 0, math.Pi/2)
	c.ClosePath()
	if got, want := c.pathData(), "M200 500L300 500A100 100 0 0 1 200 600Z"; got != want {
		t.Errorf("pie = %q, want %q", got, want)
	}

	c.BeginPath()
	c.Arc(0, 0, 10, 0, 3*math.Pi/2)
	if got := c.pathData(); !strings.Contains(got, " 0 1 1 ") {
		t.Errorf("large arc flag not set: %q", got)
	}
}

func TestSaveToFile(t *testing.T) {
	rec := recording.NewRecorder(120, 80)
	canvasex.NewDrawer(rec).
		FillRect("white", 0, 0, 120, 80).
		StrokePie("red", 60, 40, 30, 0, 90)
	c := New()
	if err := rec.FinishRecording().Playback(c); err != nil {
		t.Fatalf("Playback: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.svg")
	if err := c.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	checkWellFormed(t, data)
	if !strings.Contains(string(data), `width="120"`) {
		t.Errorf("missing width attribute\n%s", data)
	}
}
