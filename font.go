package canvasex

import (
	"fmt"
	"strconv"
	"strings"
)

// Font is an opaque font descriptor in CSS font shorthand form, for
// example "30px Verdana" or "italic bold 12pt \"Go Mono\", monospace".
// Drawers pass it to the Canvas unmodified.
type Font string

// DefaultFont is the HTML canvas default font.
const DefaultFont Font = "10px sans-serif"

// FontSpec is the parsed form of a Font.
type FontSpec struct {
	Style    string // "normal", "italic" or "oblique"
	Weight   int    // 100..900, 400 is normal and 700 bold
	Size     float64
	Families []string
}

// Bold reports whether the weight is 600 or more.
func (s FontSpec) Bold() bool {
	return s.Weight >= 600
}

// Italic reports whether the style is italic or oblique.
func (s FontSpec) Italic() bool {
	return s.Style == "italic" || s.Style == "oblique"
}

// ParseFont parses a CSS font shorthand. Sizes are returned in pixels:
// "pt" is converted at 96dpi and "em"/"rem" are relative to 16px.
// The size and at least one family are required.
func ParseFont(f Font) (FontSpec, error) {
	spec := FontSpec{Style: "normal", Weight: 400}

	fields := strings.Fields(string(f))
	sizeAt := -1
	for i, field := range fields {
		if size, ok := parseFontSize(field); ok {
			spec.Size = size
			sizeAt = i
			break
		}
		switch lower := strings.ToLower(field); lower {
		case "italic", "oblique":
			spec.Style = lower
		case "bold", "bolder":
			spec.Weight = 700
		case "lighter":
			spec.Weight = 300
		case "normal", "small-caps":
		default:
			w, err := strconv.Atoi(lower)
			if err != nil || w < 1 || w > 1000 {
				return FontSpec{}, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidFont, field, f)
			}
			spec.Weight = w
		}
	}
	if sizeAt < 0 {
		return FontSpec{}, fmt.Errorf("%w: no size in %q", ErrInvalidFont, f)
	}

	rest := strings.Join(fields[sizeAt+1:], " ")
	for _, family := range strings.Split(rest, ",") {
		family = strings.Trim(strings.TrimSpace(family), `"'`)
		if family != "" {
			spec.Families = append(spec.Families, family)
		}
	}
	if len(spec.Families) == 0 {
		return FontSpec{}, fmt.Errorf("%w: no family in %q", ErrInvalidFont, f)
	}
	return spec, nil
}

// parseFontSize parses "30px", "12pt", "1.5em" and "30px/1.2".
func parseFontSize(s string) (float64, bool) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	units := []struct {
		suffix string
		scale  float64
	}{
		{"px", 1},
		{"pt", 96.0 / 72.0},
		{"rem", 16},
		{"em", 16},
	}
	for _, u := range units {
		num, ok := strings.CutSuffix(s, u.suffix)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(num, 64)
		if err != nil || v <= 0 {
			return 0, false
		}
		return v * u.scale, true
	}
	return 0, false
}
