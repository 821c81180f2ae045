package raster

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/gogpu/canvasex"
	"github.com/gogpu/canvasex/recording"
	"github.com/gogpu/gg"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// ErrNotBegun is returned by output methods called before Begin.
var ErrNotBegun = errors.New("raster: Begin not called")

// Backend is a recording backend producing a PNG image.
type Backend struct {
	*Canvas
}

var (
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend returns a backend that draws into a new context on Begin.
func NewBackend(opts ...Option) *Backend {
	return &Backend{Canvas: NewCanvas(nil, opts...)}
}

// Begin creates a fresh transparent context of the given size.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: raster size %dx%d", canvasex.ErrInvalidArgument, width, height)
	}
	b.dc = gg.NewContext(width, height)
	b.resetState()
	return nil
}

// End implements recording.Backend.
func (b *Backend) End() error {
	if b.dc == nil {
		return ErrNotBegun
	}
	return nil
}

// Image returns the rendered image.
func (b *Backend) Image() image.Image {
	if b.dc == nil {
		return nil
	}
	return b.dc.Image()
}

// WriteTo encodes the image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.dc == nil {
		return 0, ErrNotBegun
	}
	cw := &countingWriter{w: w}
	err := b.dc.EncodePNG(cw)
	return cw.n, err
}

// SaveToFile writes the image as a PNG file.
func (b *Backend) SaveToFile(path string) error {
	if b.dc == nil {
		return ErrNotBegun
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	canvasex.Logger().Info("raster: image written", "path", path,
		"width", b.dc.Width(), "height", b.dc.Height())
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
