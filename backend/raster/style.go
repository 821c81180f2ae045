package raster

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/canvasex"
	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// brushFor converts a canvas style to a gg brush.
func brushFor(s canvasex.Style) (gg.Brush, error) {
	switch v := s.(type) {
	case gg.Brush:
		return v, nil
	case gg.RGBA:
		return gg.Solid(v), nil
	case color.Color:
		return gg.Solid(gg.FromColor(v)), nil
	case string:
		return parseColor(v)
	case nil:
		return nil, fmt.Errorf("%w: nil style", canvasex.ErrInvalidArgument)
	default:
		return nil, fmt.Errorf("%w: unsupported style %T", canvasex.ErrInvalidArgument, s)
	}
}

// parseColor accepts CSS color names, "transparent" and hex colors.
func parseColor(s string) (gg.Brush, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(name, "#") {
		switch len(name) {
		case 4, 5, 7, 9:
		default:
			return nil, fmt.Errorf("%w: bad hex color %q", canvasex.ErrInvalidArgument, s)
		}
		for _, r := range name[1:] {
			if !strings.ContainsRune("0123456789abcdef", r) {
				return nil, fmt.Errorf("%w: bad hex color %q", canvasex.ErrInvalidArgument, s)
			}
		}
		return gg.SolidHex(name), nil
	}
	if name == "transparent" {
		return gg.Solid(gg.Transparent), nil
	}
	if c, ok := colornames.Map[name]; ok {
		return gg.Solid(gg.FromColor(c)), nil
	}
	return nil, fmt.Errorf("%w: unknown color %q", canvasex.ErrInvalidArgument, s)
}
