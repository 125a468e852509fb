package render

import "strings"

// Font selects the glyph face family
// Terminal surfaces map it to text attributes, raster surfaces to a real face
type Font uint8

const (
	FontMono Font = iota
	FontBold
	FontItalic
	FontSans
	fontCount
)

var fontNames = [fontCount]string{
	FontMono:   "mono",
	FontBold:   "bold",
	FontItalic: "italic",
	FontSans:   "sans",
}

func (f Font) String() string {
	if f >= fontCount {
		return "unknown"
	}
	return fontNames[f]
}

// Next cycles to the following font family
func (f Font) Next() Font {
	return (f + 1) % fontCount
}

// FontByName resolves a font family name
func FontByName(name string) (Font, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range fontNames {
		if n == name {
			return Font(i), true
		}
	}
	return FontMono, false
}

// FontNames lists font names in order
func FontNames() []string {
	return append([]string(nil), fontNames[:]...)
}
