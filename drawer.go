package canvasex

import (
	"fmt"
	"log/slog"
)

// Drawer issues shape and text operations against a Canvas.
//
// Every operation returns the Drawer so calls can be chained:
//
//	d := canvasex.NewDrawer(c)
//	d.FillRect("black", 0, 0, 800, 600).
//	    Line("#FF0000", 0, 0, 800, 600).
//	    FillTextInRect(canvasex.Text("Hi", "30px Verdana", "#FF0000"),
//	        canvasex.NewRect(600, 600, 100, 100),
//	        canvasex.TextFormat{Align: canvasex.Align(canvasex.AlignCenter, canvasex.BaselineMiddle), Overflow: canvasex.Clip})
//	if err := d.Err(); err != nil {
//	    return err
//	}
//
// The first Canvas error is kept and returned by Err; once an error is
// recorded later operations do nothing. Operations leave the styling state
// they set on the Canvas; wrap calls in Save/Restore when that matters.
//
// A Drawer is not safe for concurrent use.
type Drawer struct {
	c      Canvas
	strict bool
	log    *slog.Logger
	err    error
}

// NewDrawer creates a Drawer for c.
// A nil Canvas yields a Drawer whose Err is ErrNilCanvas.
func NewDrawer(c Canvas, opts ...Option) *Drawer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &Drawer{
		c:      c,
		strict: o.strict,
		log:    o.logger,
	}
	if c == nil {
		d.err = ErrNilCanvas
	}
	return d
}

// Canvas returns the Canvas the Drawer draws on.
func (d *Drawer) Canvas() Canvas {
	return d.c
}

// Err returns the first error encountered, or nil.
func (d *Drawer) Err() error {
	return d.err
}

// Reset clears the recorded error so the Drawer can be used again.
func (d *Drawer) Reset() {
	if d.c != nil {
		d.err = nil
	}
}

func (d *Drawer) logger() *slog.Logger {
	if d.log != nil {
		return d.log
	}
	return Logger()
}

// fail records err as the sticky error if none is recorded yet.
func (d *Drawer) fail(op string, err error) {
	if err == nil || d.err != nil {
		return
	}
	d.err = fmt.Errorf("%s: %w", op, err)
}
