package svgcanvas

import (
	"github.com/gogpu/canvasex"
	"github.com/gogpu/canvasex/fontbook"
)

// Measurer returns the natural advance width of s in font f.
type Measurer func(f canvasex.Font, s string) (float64, error)

// Option configures a Canvas.
type Option func(*options)

type options struct {
	measure   Measurer
	precision int
}

func defaultOptions() options {
	return options{
		measure:   BookMeasurer(fontbook.Default()),
		precision: 3,
	}
}

// WithMeasurer sets how text runs are measured against maxWidth.
func WithMeasurer(m Measurer) Option {
	return func(o *options) {
		if m != nil {
			o.measure = m
		}
	}
}

// WithPrecision sets the number of decimals written for coordinates.
func WithPrecision(decimals int) Option {
	return func(o *options) {
		if decimals >= 0 {
			o.precision = decimals
		}
	}
}

// BookMeasurer measures text with the faces of a font book.
func BookMeasurer(b *fontbook.Book) Measurer {
	return func(f canvasex.Font, s string) (float64, error) {
		face, err := b.Face(f)
		if err != nil {
			return 0, err
		}
		return face.Advance(s), nil
	}
}
