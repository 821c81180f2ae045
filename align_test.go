package canvasex

import (
	"errors"
	"testing"
)

func TestHAlignRoundTrip(t *testing.T) {
	for h := AlignStart; h <= AlignRight; h++ {
		b, err := h.MarshalText()
		if err != nil {
			t.Fatalf("%v.MarshalText: %v", h, err)
		}
		var got HAlign
		if err := got.UnmarshalText(b); err != nil || got != h {
			t.Errorf("UnmarshalText(%q) = %v, %v; want %v", b, got, err, h)
		}
	}
}

func TestVAlignRoundTrip(t *testing.T) {
	for v := BaselineAlphabetic; v <= BaselineIdeographic; v++ {
		b, err := v.MarshalText()
		if err != nil {
			t.Fatalf("%v.MarshalText: %v", v, err)
		}
		var got VAlign
		if err := got.UnmarshalText(b); err != nil || got != v {
			t.Errorf("UnmarshalText(%q) = %v, %v; want %v", b, got, err, v)
		}
	}
}

func TestParseAlign(t *testing.T) {
	h, err := ParseHAlign("Center")
	if err != nil || h != AlignCenter {
		t.Errorf("ParseHAlign(Center) = %v, %v", h, err)
	}
	v, err := ParseVAlign("ideographic")
	if err != nil || v != BaselineIdeographic {
		t.Errorf("ParseVAlign(ideographic) = %v, %v", v, err)
	}

	_, err = ParseHAlign("middle")
	var ee *EnumError
	if !errors.As(err, &ee) || ee.Name != "middle" {
		t.Errorf("ParseHAlign(middle) error = %v, want *EnumError", err)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseHAlign error does not wrap ErrInvalidArgument")
	}
	if _, err := ParseVAlign("center"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseVAlign(center) error = %v", err)
	}
}

func TestAlignString(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{AlignStart.String(), "start"},
		{AlignRight.String(), "right"},
		{HAlign(9).String(), "HAlign(9)"},
		{BaselineHanging.String(), "hanging"},
		{VAlign(9).String(), "VAlign(9)"},
		{Align(AlignCenter, BaselineMiddle).String(), "center/middle"},
		{DefaultAlignment.String(), "start/alphabetic"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestAlignmentValidate(t *testing.T) {
	if err := Align(AlignEnd, BaselineBottom).Validate(); err != nil {
		t.Errorf("valid alignment: %v", err)
	}
	if err := Align(HAlign(7), BaselineTop).Validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("bad horizontal: %v", err)
	}
	if err := Align(AlignLeft, VAlign(7)).Validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("bad vertical: %v", err)
	}
	if _, err := HAlign(7).MarshalText(); err == nil {
		t.Error("MarshalText accepted an unknown value")
	}
}

func TestDefaults(t *testing.T) {
	if (Alignment{}) != DefaultAlignment {
		t.Error("zero Alignment is not DefaultAlignment")
	}
	if DefaultAlignment != Align(AlignStart, BaselineAlphabetic) {
		t.Error("DefaultAlignment is not start/alphabetic")
	}
	if (TextFormat{}) != DefaultTextFormat || DefaultTextFormat.Overflow != FitBlackBox {
		t.Error("zero TextFormat is not DefaultTextFormat")
	}
}
