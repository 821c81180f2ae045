package canvasex

import (
	"errors"
	"testing"
)

func TestOverflowNames(t *testing.T) {
	tests := []struct {
		o    Overflow
		name string
	}{
		{FitBlackBox, "fitBlackBox"},
		{Clip, "clip"},
		{NoClip, "noClip"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		parsed, err := ParseOverflow(tt.name)
		if err != nil || parsed != tt.o {
			t.Errorf("ParseOverflow(%q) = %v, %v", tt.name, parsed, err)
		}
		var u Overflow
		if err := u.UnmarshalText([]byte(tt.name)); err != nil || u != tt.o {
			t.Errorf("UnmarshalText(%q) = %v, %v", tt.name, u, err)
		}
	}

	if o, err := ParseOverflow("FitBlackBox"); err != nil || o != FitBlackBox {
		t.Errorf("ParseOverflow(FitBlackBox) = %v, %v", o, err)
	}
}

func TestOverflowInvalid(t *testing.T) {
	if _, err := ParseOverflow("wrap"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseOverflow(wrap) error = %v", err)
	}
	if Overflow(5).Valid() {
		t.Error("Overflow(5) is valid")
	}
	f := TextFormat{Overflow: Overflow(5)}
	var ee *EnumError
	if err := f.Validate(); !errors.As(err, &ee) || ee.Value != 5 {
		t.Errorf("Validate() = %v, want *EnumError with value 5", err)
	}
}
