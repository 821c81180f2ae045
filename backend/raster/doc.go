// Package raster implements canvasex.Canvas on top of a gg drawing context.
//
// The backend registers itself as "raster" in the recording registry:
//
//	import _ "github.com/gogpu/canvasex/backend/raster"
//
//	b := recording.MustBackend("raster")
//	err := r.Playback(b)
//	err = b.(recording.FileBackend).SaveToFile("out.png")
//
// A Canvas can also wrap an existing context directly:
//
//	dc := gg.NewContext(800, 600)
//	c := raster.NewCanvas(dc)
//	canvasex.NewDrawer(c).FillRect("#3366cc", 10, 10, 100, 50)
//	dc.SavePNG("out.png")
//
// # Styles
//
// Stroke and fill styles may be a gg.Brush, any color.Color, a CSS color
// name ("rebeccapurple") or a hex string ("#f53", "#ff5533", "#ff553380").
// Other values make the next draw call fail with canvasex.ErrInvalidArgument.
//
// # Text
//
// Text is converted to glyph outlines and painted like any other path, so
// clip regions apply and maxWidth compresses the run horizontally. Fonts
// are resolved through a fontbook.Book (fontbook.Default unless
// WithFontBook is given).
package raster
