package recording

import (
	"fmt"

	"github.com/gogpu/canvasex"
)

// Recorder is a Canvas that records every call as a Command instead of
// drawing. Use FinishRecording to obtain an immutable Recording that can
// be replayed to other Canvases or played back to a Backend.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	canvasex.NewDrawer(rec).StrokePie("#ff0000", 200, 500, 100, 0, 90)
//	r := rec.FinishRecording()
//	err := r.Playback(recording.MustBackend("raster"))
//
// Besides commands the Recorder tracks the save and clip depth, and it can
// be told to fail specific calls, which makes it the test double of choice
// for code written against canvasex.Canvas.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command

	// clips holds, per open Save, the clip depth at the time of the Save.
	clips     []int
	clipDepth int

	failures map[CommandType]error
}

var (
	_ canvasex.Canvas = (*Recorder)(nil)
	_ Backend         = (*Recorder)(nil)
)

// NewRecorder creates a Recorder for a canvas of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 64),
		clips:    make([]int, 0, 4),
	}
}

// Width returns the width of the recorded canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recorded canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Begin implements Backend. It discards recorded commands and state.
func (r *Recorder) Begin(width, height int) error {
	r.width = width
	r.height = height
	r.Reset()
	return nil
}

// End implements Backend.
func (r *Recorder) End() error {
	return nil
}

// Reset discards recorded commands and the save/clip state.
// Injected failures are kept.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.clips = r.clips[:0]
	r.clipDepth = 0
}

// FailOn makes every subsequent call of type t that returns an error
// return err. A nil err removes the injected failure. The call is still
// recorded.
func (r *Recorder) FailOn(t CommandType, err error) {
	if err == nil {
		delete(r.failures, t)
		return
	}
	if r.failures == nil {
		r.failures = make(map[CommandType]error)
	}
	r.failures[t] = err
}

// Commands returns a copy of the commands recorded so far.
func (r *Recorder) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Types returns the types of the commands recorded so far.
func (r *Recorder) Types() []CommandType {
	out := make([]CommandType, len(r.commands))
	for i, c := range r.commands {
		out[i] = c.Type()
	}
	return out
}

// SaveDepth returns the number of Saves not yet matched by a Restore.
func (r *Recorder) SaveDepth() int {
	return len(r.clips)
}

// ClipDepth returns the number of Clip calls in effect.
func (r *Recorder) ClipDepth() int {
	return r.clipDepth
}

// FinishRecording returns an immutable Recording of the commands so far.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.Commands(),
	}
}

func (r *Recorder) record(c Command) error {
	r.commands = append(r.commands, c)
	return r.failures[c.Type()]
}

// Save implements canvasex.Canvas.
func (r *Recorder) Save() {
	r.clips = append(r.clips, r.clipDepth)
	_ = r.record(SaveCommand{})
}

// Restore implements canvasex.Canvas. A Restore without a matching Save
// is recorded but changes nothing.
func (r *Recorder) Restore() {
	if n := len(r.clips); n > 0 {
		r.clipDepth = r.clips[n-1]
		r.clips = r.clips[:n-1]
	}
	_ = r.record(RestoreCommand{})
}

// Clip implements canvasex.Canvas.
func (r *Recorder) Clip() {
	r.clipDepth++
	_ = r.record(ClipCommand{})
}

func (r *Recorder) SetStrokeStyle(s canvasex.Style) { _ = r.record(SetStrokeStyleCommand{Style: s}) }
func (r *Recorder) SetFillStyle(s canvasex.Style)   { _ = r.record(SetFillStyleCommand{Style: s}) }
func (r *Recorder) SetLineWidth(w float64)          { _ = r.record(SetLineWidthCommand{Width: w}) }
func (r *Recorder) SetFont(f canvasex.Font) error   { return r.record(SetFontCommand{Font: f}) }
func (r *Recorder) SetTextAlign(h canvasex.HAlign)  { _ = r.record(SetTextAlignCommand{Align: h}) }
func (r *Recorder) SetTextBaseline(v canvasex.VAlign) {
	_ = r.record(SetTextBaselineCommand{Baseline: v})
}

func (r *Recorder) BeginPath()          { _ = r.record(BeginPathCommand{}) }
func (r *Recorder) MoveTo(x, y float64) { _ = r.record(MoveToCommand{X: x, Y: y}) }
func (r *Recorder) LineTo(x, y float64) { _ = r.record(LineToCommand{X: x, Y: y}) }
func (r *Recorder) ClosePath()          { _ = r.record(ClosePathCommand{}) }

func (r *Recorder) Arc(cx, cy, radius, start, end float64) {
	_ = r.record(ArcCommand{CX: cx, CY: cy, Radius: radius, Start: start, End: end})
}

func (r *Recorder) Ellipse(cx, cy, rx, ry, start, end float64) {
	_ = r.record(EllipseCommand{CX: cx, CY: cy, RX: rx, RY: ry, Start: start, End: end})
}

func (r *Recorder) Rect(x, y, w, h float64) {
	_ = r.record(RectCommand{Rect: canvasex.NewRect(x, y, w, h)})
}

func (r *Recorder) Stroke() error { return r.record(StrokeCommand{}) }
func (r *Recorder) Fill() error   { return r.record(FillCommand{}) }

func (r *Recorder) StrokeRect(x, y, w, h float64) error {
	return r.record(StrokeRectCommand{Rect: canvasex.NewRect(x, y, w, h)})
}

func (r *Recorder) FillRect(x, y, w, h float64) error {
	return r.record(FillRectCommand{Rect: canvasex.NewRect(x, y, w, h)})
}

func (r *Recorder) StrokeText(s string, x, y, maxWidth float64) error {
	return r.record(StrokeTextCommand{Text: s, X: x, Y: y, MaxWidth: maxWidth})
}

func (r *Recorder) FillText(s string, x, y, maxWidth float64) error {
	return r.record(FillTextCommand{Text: s, X: x, Y: y, MaxWidth: maxWidth})
}

// Recording is an immutable list of recorded Canvas calls.
// It can be replayed any number of times, from several goroutines.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recorded canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recorded canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands. The slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Len returns the number of recorded commands.
func (r *Recording) Len() int {
	return len(r.commands)
}

// Replay issues the recorded calls against c in order. It stops at the
// first call that returns an error.
func (r *Recording) Replay(c canvasex.Canvas) error {
	for i, cmd := range r.commands {
		if err := replay(c, cmd); err != nil {
			return fmt.Errorf("recording: command %d (%s): %w", i, cmd.Type(), err)
		}
	}
	return nil
}

// Playback begins a fresh output on b, replays the recording and ends it.
func (r *Recording) Playback(b Backend) error {
	if err := b.Begin(r.width, r.height); err != nil {
		return err
	}
	if err := r.Replay(b); err != nil {
		return err
	}
	return b.End()
}
