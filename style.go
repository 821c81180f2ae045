package canvasex

// Style is an opaque paint value (color, pattern or gradient handle)
// applied to stroke or fill operations. canvasex never inspects it; each
// Canvas documents which concrete values it accepts.
type Style any

// TextRun is a single run of text with its font and paint.
type TextRun struct {
	Text  string
	Font  Font
	Style Style
}

// Text is a shorthand for building a TextRun.
func Text(s string, font Font, style Style) TextRun {
	return TextRun{Text: s, Font: font, Style: style}
}
