// Package canvasex provides shape and text drawing operations on top of an
// immediate-mode 2D graphics context.
//
// # Overview
//
// The graphics context is any implementation of [Canvas], an interface
// modelled on the HTML canvas 2D context. canvasex does not rasterize
// anything itself; it turns shape-level requests into Canvas calls:
//
//   - Lines, polylines, rectangles, ellipses, pie slices and polygons,
//     stroked or filled with an opaque [Style]
//   - Text anchored at a point, or laid out inside a rectangle according
//     to an [Alignment] and an [Overflow] policy
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/canvasex"
//	    "github.com/gogpu/canvasex/backend/raster"
//	    "github.com/gogpu/gg"
//	)
//
//	dc := gg.NewContext(800, 600)
//	d := canvasex.NewDrawer(raster.NewCanvas(dc))
//	d.FillRect("black", 0, 0, 800, 600).
//	    StrokePie("#ff0000", 200, 500, 100, 0, 90)
//	if err := d.Err(); err != nil {
//	    log.Fatal(err)
//	}
//	dc.SavePNG("out.png")
//
// # Text Boxes
//
// [LayoutText] maps a rectangle and a [TextFormat] to a [TextPlacement]:
// the alignment picks the anchor point (left, center or right edge; top,
// middle or bottom edge) and the overflow policy decides between a width
// limit ([FitBlackBox]), a clip region ([Clip]) or nothing ([NoClip]).
// [Drawer.FillTextInRect] and [Drawer.StrokeTextInRect] execute it.
//
// # Backends
//
// Canvas implementations live in sub-packages:
//
//   - backend/raster: software rendering with github.com/gogpu/gg
//   - backend/svgcanvas: SVG documents
//   - recording: captures calls for inspection and playback
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right, Y increases down
//   - Angles in radians for Canvas, degrees for the pie operations;
//     positive sweeps run clockwise on screen
package canvasex
