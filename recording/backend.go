package recording

import (
	"io"

	"github.com/gogpu/canvasex"
)

// Backend is a Canvas that produces an output document or image.
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Implement every Canvas method (even if no-op for some)
//  3. Keep its own state stack for Save/Restore
//  4. Accept drawing calls only between Begin and End
type Backend interface {
	canvasex.Canvas

	// Begin prepares a fresh output of the given size, discarding any
	// previous output.
	Begin(width, height int) error

	// End finalizes the output. Output methods (WriteTo, SaveToFile) are
	// valid after End.
	End() error
}

// WriterBackend is a Backend whose output can be streamed to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the finished output to w.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend is a Backend that can save its output to a file.
type FileBackend interface {
	Backend

	// SaveToFile writes the finished output to path.
	SaveToFile(path string) error
}
