package svgcanvas

import (
	"fmt"
	"html"
	"image/color"
	"strconv"
	"strings"

	"github.com/gogpu/canvasex"
)

// attr formats a name="value" pair for svgo, escaping the value.
func attr(name, value string) string {
	return name + `="` + html.EscapeString(value) + `"`
}

// paintAttrs returns the attributes painting with style under the given
// SVG property ("fill" or "stroke").
func paintAttrs(prop string, s canvasex.Style) ([]string, error) {
	switch v := s.(type) {
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return nil, fmt.Errorf("%w: empty color", canvasex.ErrInvalidArgument)
		}
		return []string{attr(prop, v)}, nil
	case color.Color:
		c := color.NRGBAModel.Convert(v).(color.NRGBA)
		attrs := []string{attr(prop, fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B))}
		if c.A != 0xff {
			alpha := strconv.FormatFloat(float64(c.A)/0xff, 'f', 3, 64)
			attrs = append(attrs, attr(prop+"-opacity", alpha))
		}
		return attrs, nil
	case nil:
		return nil, fmt.Errorf("%w: nil style", canvasex.ErrInvalidArgument)
	default:
		return nil, fmt.Errorf("%w: unsupported style %T", canvasex.ErrInvalidArgument, s)
	}
}

func textAnchor(h canvasex.HAlign) string {
	switch h {
	case canvasex.AlignCenter:
		return "middle"
	case canvasex.AlignEnd, canvasex.AlignRight:
		return "end"
	default:
		return "start"
	}
}

func dominantBaseline(v canvasex.VAlign) string {
	switch v {
	case canvasex.BaselineTop:
		return "text-before-edge"
	case canvasex.BaselineHanging:
		return "hanging"
	case canvasex.BaselineMiddle:
		return "middle"
	case canvasex.BaselineIdeographic:
		return "ideographic"
	case canvasex.BaselineBottom:
		return "text-after-edge"
	default:
		return "alphabetic"
	}
}

// fontAttrs converts a parsed font descriptor to SVG font attributes.
func fontAttrs(spec canvasex.FontSpec, num func(float64) string) []string {
	families := make([]string, len(spec.Families))
	for i, f := range spec.Families {
		if strings.ContainsRune(f, ' ') {
			f = "'" + f + "'"
		}
		families[i] = f
	}
	attrs := []string{
		attr("font-family", strings.Join(families, ", ")),
		attr("font-size", num(spec.Size)),
	}
	if spec.Weight != 400 {
		attrs = append(attrs, attr("font-weight", strconv.Itoa(spec.Weight)))
	}
	if spec.Style != "normal" {
		attrs = append(attrs, attr("font-style", spec.Style))
	}
	return attrs
}
