package canvasex

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidArgument is wrapped by every error reporting a bad input value.
	ErrInvalidArgument = errors.New("canvasex: invalid argument")

	// ErrInvalidFont is returned for font descriptors that cannot be parsed.
	ErrInvalidFont = errors.New("canvasex: invalid font descriptor")

	// ErrNilCanvas is returned by a Drawer created without a Canvas.
	ErrNilCanvas = errors.New("canvasex: nil canvas")
)

// EnumError reports an alignment or overflow value outside its enumeration.
// Either Name (when parsing text) or Value (for out-of-range numbers) is set.
type EnumError struct {
	Kind  string
	Name  string
	Value int
}

func (e *EnumError) Error() string {
	if e.Name != "" {
		return "canvasex: unknown " + e.Kind + " " + strconv.Quote(e.Name)
	}
	return "canvasex: unknown " + e.Kind + " " + strconv.Itoa(e.Value)
}

// Unwrap makes errors.Is(err, ErrInvalidArgument) hold.
func (e *EnumError) Unwrap() error {
	return ErrInvalidArgument
}
