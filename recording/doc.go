// Package recording captures canvasex.Canvas calls as typed commands that
// can be inspected, replayed to another Canvas or played back to an output
// backend.
//
// # Architecture
//
// The package has three parts:
//
//   - Recorder: a Canvas that appends every call to a command list
//   - Recording: an immutable command list produced by the Recorder
//   - Backend: a Canvas that renders to a concrete output format
//
// # Basic Usage
//
//	rec := recording.NewRecorder(800, 600)
//
//	d := canvasex.NewDrawer(rec)
//	d.FillEllipse("#3366cc", 0, 500, 150, 120)
//	d.FillTextInRect(canvasex.Text("hello", "16px sans-serif", "black"),
//	    canvasex.NewRect(600, 600, 100, 100),
//	    canvasex.TextFormat{Align: canvasex.Align(canvasex.AlignCenter, canvasex.BaselineMiddle)})
//
//	r := rec.FinishRecording()
//
// # Playback to Backends
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to register it:
//
//	import (
//	    _ "github.com/gogpu/canvasex/backend/raster"    // "raster" (PNG)
//	    _ "github.com/gogpu/canvasex/backend/svgcanvas" // "svg"
//	)
//
//	b, err := recording.NewBackend("svg")
//	if err != nil {
//	    return err
//	}
//	if err := r.Playback(b); err != nil {
//	    return err
//	}
//	err = b.(recording.FileBackend).SaveToFile("out.svg")
//
// # Testing
//
// The Recorder tracks the save and clip depth and can inject failures with
// FailOn, so code written against canvasex.Canvas can assert both the
// exact call sequence and that clip regions never leak:
//
//	rec := recording.NewRecorder(0, 0)
//	rec.FailOn(recording.CmdFillText, errBoom)
//	d := canvasex.NewDrawer(rec).FillTextInRect(run, rect, clipFormat)
//	// d.Err() wraps errBoom, rec.ClipDepth() == 0
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. Recording objects are immutable
// and can be shared and replayed from multiple goroutines. The registry is
// safe for concurrent use.
package recording
