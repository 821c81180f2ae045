// Package svgcanvas implements canvasex.Canvas by writing an SVG document.
//
// The backend registers itself as "svg" in the recording registry:
//
//	import _ "github.com/gogpu/canvasex/backend/svgcanvas"
//
//	b := recording.MustBackend("svg")
//	err := r.Playback(b)
//	err = b.(recording.FileBackend).SaveToFile("out.svg")
//
// Every Stroke or Fill becomes a <path> element. Clip writes a <clipPath>
// definition and opens a clipped group that the matching Restore closes,
// so the nesting of groups mirrors Save/Restore. Text keeps its font,
// alignment and baseline as SVG attributes; when a run is wider than
// maxWidth it gets a textLength so viewers compress it to fit.
//
// Styles must be CSS color strings or color.Color values.
package svgcanvas
