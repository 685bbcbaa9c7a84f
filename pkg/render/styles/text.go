package styles

import (
	"bytes"
	"encoding/xml"
	"unicode/utf8"
)

// fontCharWidth approximates the advance of one character as a fraction of
// the font size for sans-serif text.
const fontCharWidth = 0.55

// TextWidth estimates the rendered width of s at fontSize.
func TextWidth(s string, fontSize float64) float64 {
	return float64(utf8.RuneCountInString(s)) * fontSize * fontCharWidth
}

// MaxTextWidth returns the widest TextWidth among labels.
func MaxTextWidth(labels []string, fontSize float64) float64 {
	var w float64
	for _, l := range labels {
		w = max(w, TextWidth(l, fontSize))
	}
	return w
}

// TruncateLabel shortens s with a trailing ".." so it fits in width.
// At least three characters are kept.
func TruncateLabel(s string, width, fontSize float64) string {
	maxChars := max(3, int(width/(fontSize*fontCharWidth)))
	if utf8.RuneCountInString(s) <= maxChars {
		return s
	}
	r := []rune(s)
	return string(r[:maxChars-2]) + ".."
}

func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
