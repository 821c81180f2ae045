// Package script describes sequences of canvasex drawing operations in
// YAML and runs them against a Drawer.
//
//	width: 320
//	height: 200
//	background: white
//	ops:
//	  - op: line
//	    style: "#ff0000"
//	    from: [0, 0]
//	    to: [320, 200]
//	  - op: fillTextInRect
//	    text: Hello
//	    font: 20px sans-serif
//	    style: navy
//	    rect: [100, 80, 120, 40]
//	    align: {horizontal: center, vertical: middle}
//	    overflow: clip
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/canvasex"
)

// ErrInvalidScript is wrapped by all decoding and validation errors.
var ErrInvalidScript = errors.New("script: invalid script")

// Operation names.
const (
	OpLine             = "line"
	OpPolyline         = "polyline"
	OpStrokeRect       = "strokeRect"
	OpStrokeEllipse    = "strokeEllipse"
	OpStrokePie        = "strokePie"
	OpStrokePolygon    = "strokePolygon"
	OpStrokeText       = "strokeText"
	OpStrokeTextInRect = "strokeTextInRect"
	OpFillRect         = "fillRect"
	OpFillEllipse      = "fillEllipse"
	OpFillPie          = "fillPie"
	OpFillPolygon      = "fillPolygon"
	OpFillText         = "fillText"
	OpFillTextInRect   = "fillTextInRect"
)

// Script is a canvas size, an optional background and a list of
// operations.
type Script struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background,omitempty"`
	Ops        []Op   `yaml:"ops"`
}

// Op is one drawing operation. Which fields are required depends on Op.
type Op struct {
	Op       string             `yaml:"op"`
	Style    string             `yaml:"style,omitempty"`
	From     []float64          `yaml:"from,omitempty"`
	To       []float64          `yaml:"to,omitempty"`
	At       []float64          `yaml:"at,omitempty"`
	Rect     []float64          `yaml:"rect,omitempty"`
	Points   [][]float64        `yaml:"points,omitempty"`
	Radius   float64            `yaml:"radius,omitempty"`
	Angles   []float64          `yaml:"angles,omitempty"`
	Text     string             `yaml:"text,omitempty"`
	Font     canvasex.Font      `yaml:"font,omitempty"`
	Align    canvasex.Alignment `yaml:"align,omitempty"`
	Overflow canvasex.Overflow  `yaml:"overflow,omitempty"`
	MaxWidth *float64           `yaml:"maxWidth,omitempty"`
}

// Load reads and parses the script file at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML script. Unknown fields are errors.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScript)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the canvas size and the arguments of every operation.
func (s *Script) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidScript, s.Width, s.Height)
	}
	for i := range s.Ops {
		if err := s.Ops[i].validate(); err != nil {
			return fmt.Errorf("%w: op %d (%s): %w", ErrInvalidScript, i, s.Ops[i].Op, err)
		}
	}
	return nil
}

func (o *Op) validate() error {
	need := func(name string, v []float64, n int) error {
		if len(v) != n {
			return fmt.Errorf("%s needs %d numbers, got %d", name, n, len(v))
		}
		return nil
	}
	if o.Style == "" {
		return errors.New("style is required")
	}

	switch o.Op {
	case OpLine:
		if err := need("from", o.From, 2); err != nil {
			return err
		}
		return need("to", o.To, 2)
	case OpPolyline, OpStrokePolygon, OpFillPolygon:
		for i, p := range o.Points {
			if err := need(fmt.Sprintf("points[%d]", i), p, 2); err != nil {
				return err
			}
		}
	case OpStrokeRect, OpFillRect, OpStrokeEllipse, OpFillEllipse:
		return need("rect", o.Rect, 4)
	case OpStrokePie, OpFillPie:
		if err := need("at", o.At, 2); err != nil {
			return err
		}
		return need("angles", o.Angles, 2)
	case OpStrokeText, OpFillText:
		if err := need("at", o.At, 2); err != nil {
			return err
		}
		return o.validateFont()
	case OpStrokeTextInRect, OpFillTextInRect:
		if err := need("rect", o.Rect, 4); err != nil {
			return err
		}
		return o.validateFont()
	default:
		return errors.New("unknown operation")
	}
	return nil
}

func (o *Op) validateFont() error {
	if o.Font == "" {
		o.Font = canvasex.DefaultFont
	}
	_, err := canvasex.ParseFont(o.Font)
	return err
}

// Run executes the script on d, stopping at the first failing operation.
func (s *Script) Run(d *canvasex.Drawer) error {
	if s.Background != "" {
		d.FillRect(s.Background, 0, 0, float64(s.Width), float64(s.Height))
		if err := d.Err(); err != nil {
			return fmt.Errorf("script: background: %w", err)
		}
	}
	for i := range s.Ops {
		s.Ops[i].apply(d)
		if err := d.Err(); err != nil {
			return fmt.Errorf("script: op %d (%s): %w", i, s.Ops[i].Op, err)
		}
	}
	return nil
}

func (o *Op) apply(d *canvasex.Drawer) {
	style := canvasex.Style(o.Style)
	switch o.Op {
	case OpLine:
		d.Line(style, o.From[0], o.From[1], o.To[0], o.To[1])
	case OpPolyline:
		d.Polyline(style, points(o.Points))
	case OpStrokeRect:
		d.StrokeRect(style, o.Rect[0], o.Rect[1], o.Rect[2], o.Rect[3])
	case OpStrokeEllipse:
		d.StrokeEllipse(style, o.Rect[0], o.Rect[1], o.Rect[2], o.Rect[3])
	case OpStrokePie:
		d.StrokePie(style, o.At[0], o.At[1], o.Radius, o.Angles[0], o.Angles[1])
	case OpStrokePolygon:
		d.StrokePolygon(style, points(o.Points))
	case OpStrokeText:
		d.StrokeTextMax(o.run(), o.At[0], o.At[1], o.Align, o.maxWidth())
	case OpStrokeTextInRect:
		d.StrokeTextInRect(o.run(), o.rect(), o.format())
	case OpFillRect:
		d.FillRect(style, o.Rect[0], o.Rect[1], o.Rect[2], o.Rect[3])
	case OpFillEllipse:
		d.FillEllipse(style, o.Rect[0], o.Rect[1], o.Rect[2], o.Rect[3])
	case OpFillPie:
		d.FillPie(style, o.At[0], o.At[1], o.Radius, o.Angles[0], o.Angles[1])
	case OpFillPolygon:
		d.FillPolygon(style, points(o.Points))
	case OpFillText:
		d.FillTextMax(o.run(), o.At[0], o.At[1], o.Align, o.maxWidth())
	case OpFillTextInRect:
		d.FillTextInRect(o.run(), o.rect(), o.format())
	}
}

func (o *Op) run() canvasex.TextRun {
	return canvasex.Text(o.Text, o.Font, o.Style)
}

func (o *Op) rect() canvasex.Rect {
	return canvasex.NewRect(o.Rect[0], o.Rect[1], o.Rect[2], o.Rect[3])
}

func (o *Op) format() canvasex.TextFormat {
	return canvasex.TextFormat{Align: o.Align, Overflow: o.Overflow}
}

func (o *Op) maxWidth() float64 {
	if o.MaxWidth == nil {
		return canvasex.Unconstrained
	}
	return *o.MaxWidth
}

func points(pp [][]float64) []canvasex.Point {
	out := make([]canvasex.Point, len(pp))
	for i, p := range pp {
		out[i] = canvasex.Pt(p[0], p[1])
	}
	return out
}
