// Package fontbook resolves canvasex font descriptors to gg text faces.
//
// A Book maps family names to font sources. Lookups are case-insensitive
// and follow the CSS family list: the first registered family wins, and
// the book's fallback family is used when none is known.
//
//	face, err := fontbook.Default().Face("bold 24px \"Go Mono\", monospace")
//	if err != nil {
//	    return err
//	}
//	w := face.Advance("hello")
//
// New books come preloaded with the Go fonts from golang.org/x/image.
package fontbook

import (
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/gogpu/canvasex"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/cases"
)

// Variant selects the weight and slant of a family member.
type Variant uint8

const (
	Regular Variant = iota
	Bold
	Italic
	BoldItalic
)

func (v Variant) String() string {
	switch v {
	case Regular:
		return "regular"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case BoldItalic:
		return "bold-italic"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

// VariantOf returns the variant a parsed font descriptor asks for.
func VariantOf(spec canvasex.FontSpec) Variant {
	switch {
	case spec.Bold() && spec.Italic():
		return BoldItalic
	case spec.Bold():
		return Bold
	case spec.Italic():
		return Italic
	default:
		return Regular
	}
}

// DefaultFallback is the family used when no family of a descriptor is
// registered.
const DefaultFallback = "go"

// faceCacheLimit bounds the number of cached faces per book.
const faceCacheLimit = 256

type faceKey struct {
	family  string
	variant Variant
	size    float64
}

// Book is a registry of font families. It is safe for concurrent use.
type Book struct {
	mu       sync.RWMutex
	families map[string]map[Variant]*text.FontSource
	fallback string

	faces *text.Cache[faceKey, text.Face]
}

// New returns a book with the Go fonts registered as "go", "go mono",
// "sans-serif", "serif" and "monospace".
func New() *Book {
	b := NewEmpty()
	gofonts := []struct {
		families []string
		variant  Variant
		data     []byte
	}{
		{[]string{"go", "sans-serif", "serif", "system-ui"}, Regular, goregular.TTF},
		{[]string{"go", "sans-serif", "serif", "system-ui"}, Bold, gobold.TTF},
		{[]string{"go", "sans-serif", "serif", "system-ui"}, Italic, goitalic.TTF},
		{[]string{"go", "sans-serif", "serif", "system-ui"}, BoldItalic, gobolditalic.TTF},
		{[]string{"go mono", "monospace"}, Regular, gomono.TTF},
		{[]string{"go mono", "monospace"}, Bold, gomonobold.TTF},
		{[]string{"go mono", "monospace"}, Italic, gomonoitalic.TTF},
		{[]string{"go mono", "monospace"}, BoldItalic, gomonobolditalic.TTF},
	}
	for _, f := range gofonts {
		src, err := text.NewFontSource(f.data)
		if err != nil {
			// The embedded Go fonts always parse.
			panic(fmt.Sprintf("fontbook: embedded font: %v", err))
		}
		for _, family := range f.families {
			b.add(family, f.variant, src)
		}
	}
	return b
}

// NewEmpty returns a book without any fonts. Its fallback family is
// DefaultFallback, which must be registered before Face can succeed.
func NewEmpty() *Book {
	return &Book{
		families: make(map[string]map[Variant]*text.FontSource),
		fallback: DefaultFallback,
		faces:    text.NewCache[faceKey, text.Face](faceCacheLimit),
	}
}

var (
	defaultOnce sync.Once
	defaultBook *Book
)

// Default returns the process-wide book, created with New on first use.
func Default() *Book {
	defaultOnce.Do(func() {
		defaultBook = New()
	})
	return defaultBook
}

// fold normalizes a family name for lookup.
func fold(family string) string {
	return cases.Fold().String(family)
}

func (b *Book) add(family string, v Variant, src *text.FontSource) {
	key := fold(family)
	m := b.families[key]
	if m == nil {
		m = make(map[Variant]*text.FontSource, 4)
		b.families[key] = m
	}
	m[v] = src
}

// Register parses font data and adds it as variant v of family,
// replacing any previous source for that variant.
func (b *Book) Register(family string, v Variant, data []byte) error {
	src, err := text.NewFontSource(data)
	if err != nil {
		return fmt.Errorf("fontbook: register %q %s: %w", family, v, err)
	}
	b.mu.Lock()
	b.add(family, v, src)
	b.mu.Unlock()
	b.faces.Clear()
	return nil
}

// RegisterFile is Register with data read from path.
func (b *Book) RegisterFile(family string, v Variant, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("fontbook: %w", err)
	}
	return b.Register(family, v, data)
}

// SetFallback sets the family used when a descriptor names no registered
// family.
func (b *Book) SetFallback(family string) {
	b.mu.Lock()
	b.fallback = fold(family)
	b.mu.Unlock()
	b.faces.Clear()
}

// Has reports whether any variant of family is registered.
func (b *Book) Has(family string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.families[fold(family)]
	return ok
}

// Families returns the registered family keys in sorted order.
func (b *Book) Families() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	names := make([]string, 0, len(b.families))
	for name := range b.families {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Face returns a face for the descriptor f. Unknown families fall back to
// the book's fallback family; missing variants fall back to the regular
// member of the family. The error wraps canvasex.ErrInvalidFont.
func (b *Book) Face(f canvasex.Font) (text.Face, error) {
	spec, err := canvasex.ParseFont(f)
	if err != nil {
		return nil, err
	}
	return b.FaceFor(spec)
}

// FaceFor is Face for an already parsed descriptor.
func (b *Book) FaceFor(spec canvasex.FontSpec) (text.Face, error) {
	want := VariantOf(spec)
	family, v, src := b.lookup(spec.Families, want)
	if src == nil {
		return nil, fmt.Errorf("%w: no font for %q and no fallback", canvasex.ErrInvalidFont, spec.Families)
	}
	key := faceKey{family: family, variant: v, size: spec.Size}
	return b.faces.GetOrCreate(key, func() text.Face {
		return src.Face(spec.Size)
	}), nil
}

func (b *Book) lookup(families []string, want Variant) (string, Variant, *text.FontSource) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, name := range families {
		key := fold(name)
		if m, ok := b.families[key]; ok {
			if v, src := pick(m, want); src != nil {
				return key, v, src
			}
		}
	}
	m, ok := b.families[b.fallback]
	if !ok {
		return "", want, nil
	}
	canvasex.Logger().Debug("fontbook: using fallback family",
		"requested", families, "fallback", b.fallback)
	v, src := pick(m, want)
	return b.fallback, v, src
}

// pick returns want if present, otherwise the closest registered variant.
func pick(m map[Variant]*text.FontSource, want Variant) (Variant, *text.FontSource) {
	order := []Variant{want, Regular, Bold, Italic, BoldItalic}
	if want == BoldItalic {
		order = []Variant{BoldItalic, Bold, Italic, Regular}
	}
	for _, v := range order {
		if src, ok := m[v]; ok {
			return v, src
		}
	}
	return want, nil
}
