package canvasex

import (
	"fmt"
	"strings"
)

// Overflow selects what happens to boxed text that does not fit its
// rectangle.
type Overflow uint8

const (
	// FitBlackBox constrains the text to the rectangle width; the Canvas
	// compresses it horizontally when it would be wider.
	FitBlackBox Overflow = iota

	// Clip draws the text unconstrained inside a clip region equal to the
	// rectangle.
	Clip

	// NoClip draws the text unconstrained and unclipped.
	NoClip
)

// DefaultOverflow is used for the zero TextFormat and as the fallback for
// unrecognized values.
const DefaultOverflow = FitBlackBox

var overflowNames = [...]string{
	FitBlackBox: "fitBlackBox",
	Clip:        "clip",
	NoClip:      "noClip",
}

// Valid reports whether o is one of the declared policies.
func (o Overflow) Valid() bool {
	return int(o) < len(overflowNames)
}

func (o Overflow) String() string {
	if o.Valid() {
		return overflowNames[o]
	}
	return fmt.Sprintf("Overflow(%d)", uint8(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Overflow) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, &EnumError{Kind: "overflow policy", Value: int(o)}
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Overflow) UnmarshalText(b []byte) error {
	v, err := ParseOverflow(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// ParseOverflow parses an overflow policy name, ignoring case.
func ParseOverflow(s string) (Overflow, error) {
	for i, name := range overflowNames {
		if strings.EqualFold(name, s) {
			return Overflow(i), nil
		}
	}
	return 0, &EnumError{Kind: "overflow policy", Name: s}
}

// TextFormat configures how a text run is placed inside a rectangle.
// The zero value equals DefaultTextFormat.
type TextFormat struct {
	Align    Alignment `yaml:"align"`
	Overflow Overflow  `yaml:"overflow"`
}

// DefaultTextFormat is start/alphabetic alignment with FitBlackBox.
var DefaultTextFormat = TextFormat{Align: DefaultAlignment, Overflow: DefaultOverflow}

// Validate checks both the alignment and the overflow policy.
func (f TextFormat) Validate() error {
	if err := f.Align.Validate(); err != nil {
		return err
	}
	if !f.Overflow.Valid() {
		return &EnumError{Kind: "overflow policy", Value: int(f.Overflow)}
	}
	return nil
}
