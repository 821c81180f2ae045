package fontbook

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/canvasex"
	"golang.org/x/image/font/gofont/gomono"
)

func TestVariantOf(t *testing.T) {
	tests := []struct {
		font canvasex.Font
		want Variant
	}{
		{"12px go", Regular},
		{"bold 12px go", Bold},
		{"italic 12px go", Italic},
		{"italic 700 12px go", BoldItalic},
		{"500 12px go", Regular},
	}
	for _, tt := range tests {
		spec, err := canvasex.ParseFont(tt.font)
		if err != nil {
			t.Fatalf("ParseFont(%q): %v", tt.font, err)
		}
		if got := VariantOf(spec); got != tt.want {
			t.Errorf("VariantOf(%q) = %s, want %s", tt.font, got, tt.want)
		}
	}
}

func TestNewRegistersGoFonts(t *testing.T) {
	b := New()
	for _, family := range []string{"go", "Go", "SANS-SERIF", "serif", "monospace", "Go Mono"} {
		if !b.Has(family) {
			t.Errorf("Has(%q) = false", family)
		}
	}
	if !slices.Contains(b.Families(), "monospace") {
		t.Errorf("Families() = %v", b.Families())
	}
}

func TestFaceSizeAndCache(t *testing.T) {
	b := New()
	face, err := b.Face("30px sans-serif")
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if face.Size() != 30 {
		t.Errorf("Size() = %v, want 30", face.Size())
	}
	if m := face.Metrics(); m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("Metrics() = %+v, want positive ascent and descent", m)
	}
	if w := face.Advance("hello"); w <= 0 {
		t.Errorf("Advance(hello) = %v", w)
	}

	again, _ := b.Face("30px Sans-Serif")
	if again != face {
		t.Error("equivalent descriptors did not share a cached face")
	}
}

func TestFaceFallback(t *testing.T) {
	b := New()
	face, err := b.Face("12px Verdana, Nonexistent")
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	want, _ := b.Face("12px go")
	if face != want {
		t.Error("unknown families did not resolve to the fallback face")
	}
}

func TestFaceFirstKnownFamilyWins(t *testing.T) {
	b := New()
	mono, _ := b.Face("12px monospace")
	got, err := b.Face("12px Verdana, monospace, serif")
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if got != mono {
		t.Error("expected the monospace face")
	}
	if got.Advance("iiii") != got.Advance("MMMM") {
		t.Error("monospace face is not fixed-width")
	}
}

func TestFaceInvalidDescriptor(t *testing.T) {
	_, err := New().Face("sans-serif")
	if !errors.Is(err, canvasex.ErrInvalidFont) {
		t.Errorf("Face() error = %v, want ErrInvalidFont", err)
	}
}

func TestEmptyBook(t *testing.T) {
	b := NewEmpty()
	if _, err := b.Face("12px go"); !errors.Is(err, canvasex.ErrInvalidFont) {
		t.Errorf("empty book Face() error = %v, want ErrInvalidFont", err)
	}

	if err := b.Register("Code", Regular, gomono.TTF); err != nil {
		t.Fatalf("Register: %v", err)
	}
	b.SetFallback("code")
	face, err := b.Face("bold 10px anything")
	if err != nil {
		t.Fatalf("Face after Register: %v", err)
	}
	if face.Size() != 10 {
		t.Errorf("Size() = %v", face.Size())
	}
}

func TestRegisterInvalidData(t *testing.T) {
	b := NewEmpty()
	if err := b.Register("broken", Regular, []byte("not a font")); err == nil {
		t.Error("Register accepted invalid font data")
	}
	if b.Has("broken") {
		t.Error("invalid font was registered")
	}
}

func TestRegisterFileMissing(t *testing.T) {
	if err := NewEmpty().RegisterFile("x", Regular, "does/not/exist.ttf"); err == nil {
		t.Error("RegisterFile succeeded for a missing file")
	}
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() returned different books")
	}
}
