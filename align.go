package canvasex

import (
	"fmt"
	"strings"
)

// HAlign is the horizontal text alignment, using the HTML canvas
// keywords. The zero value is AlignStart.
type HAlign uint8

const (
	AlignStart HAlign = iota
	AlignLeft
	AlignCenter
	AlignEnd
	AlignRight
)

var hAlignNames = [...]string{
	AlignStart:  "start",
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignEnd:    "end",
	AlignRight:  "right",
}

// Valid reports whether h is one of the declared alignments.
func (h HAlign) Valid() bool {
	return int(h) < len(hAlignNames)
}

// String returns the canvas keyword for h.
func (h HAlign) String() string {
	if h.Valid() {
		return hAlignNames[h]
	}
	return fmt.Sprintf("HAlign(%d)", uint8(h))
}

// MarshalText implements encoding.TextMarshaler.
func (h HAlign) MarshalText() ([]byte, error) {
	if !h.Valid() {
		return nil, &EnumError{Kind: "horizontal alignment", Value: int(h)}
	}
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *HAlign) UnmarshalText(b []byte) error {
	v, err := ParseHAlign(string(b))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// ParseHAlign parses a canvas textAlign keyword, ignoring case.
func ParseHAlign(s string) (HAlign, error) {
	for i, name := range hAlignNames {
		if strings.EqualFold(name, s) {
			return HAlign(i), nil
		}
	}
	return 0, &EnumError{Kind: "horizontal alignment", Name: s}
}

// VAlign is the vertical text alignment (the canvas textBaseline).
// The zero value is BaselineAlphabetic.
type VAlign uint8

const (
	BaselineAlphabetic VAlign = iota
	BaselineTop
	BaselineHanging
	BaselineMiddle
	BaselineBottom
	BaselineIdeographic
)

var vAlignNames = [...]string{
	BaselineAlphabetic:  "alphabetic",
	BaselineTop:         "top",
	BaselineHanging:     "hanging",
	BaselineMiddle:      "middle",
	BaselineBottom:      "bottom",
	BaselineIdeographic: "ideographic",
}

// Valid reports whether v is one of the declared baselines.
func (v VAlign) Valid() bool {
	return int(v) < len(vAlignNames)
}

// String returns the canvas keyword for v.
func (v VAlign) String() string {
	if v.Valid() {
		return vAlignNames[v]
	}
	return fmt.Sprintf("VAlign(%d)", uint8(v))
}

// MarshalText implements encoding.TextMarshaler.
func (v VAlign) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, &EnumError{Kind: "vertical alignment", Value: int(v)}
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *VAlign) UnmarshalText(b []byte) error {
	parsed, err := ParseVAlign(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ParseVAlign parses a canvas textBaseline keyword, ignoring case.
func ParseVAlign(s string) (VAlign, error) {
	for i, name := range vAlignNames {
		if strings.EqualFold(name, s) {
			return VAlign(i), nil
		}
	}
	return 0, &EnumError{Kind: "vertical alignment", Name: s}
}

// Alignment pairs a horizontal and a vertical alignment.
// The zero value is {start, alphabetic}, the canvas default.
type Alignment struct {
	Horizontal HAlign `yaml:"horizontal"`
	Vertical   VAlign `yaml:"vertical"`
}

// DefaultAlignment is the alignment used when none is given.
var DefaultAlignment = Alignment{Horizontal: AlignStart, Vertical: BaselineAlphabetic}

// Align is a shorthand for building an Alignment.
func Align(h HAlign, v VAlign) Alignment {
	return Alignment{Horizontal: h, Vertical: v}
}

// Validate returns an error wrapping ErrInvalidArgument if either
// component is not a declared enumerant.
func (a Alignment) Validate() error {
	if !a.Horizontal.Valid() {
		return &EnumError{Kind: "horizontal alignment", Value: int(a.Horizontal)}
	}
	if !a.Vertical.Valid() {
		return &EnumError{Kind: "vertical alignment", Value: int(a.Vertical)}
	}
	return nil
}

func (a Alignment) String() string {
	return a.Horizontal.String() + "/" + a.Vertical.String()
}
