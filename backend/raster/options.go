package raster

import "github.com/gogpu/canvasex/fontbook"

// Option configures a Canvas.
type Option func(*options)

type options struct {
	book      *fontbook.Book
	lineWidth float64
}

func defaultOptions() options {
	return options{
		lineWidth: 1,
	}
}

// WithFontBook sets the font book used to resolve fonts.
func WithFontBook(b *fontbook.Book) Option {
	return func(o *options) {
		o.book = b
	}
}

// WithLineWidth sets the initial line width. The HTML canvas default is 1.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.lineWidth = w
		}
	}
}
