package render

import "strings"

// NamedColor is a selectable rain color
type NamedColor struct {
	Name string
	RGB  RGB
}

// Palette holds the selectable rain colors, first entry is the default
var Palette = mustPalette([]struct{ name, hex string }{
	{"blue", "#0ae2ff"},
	{"green", "#0aff0a"},
	{"red", "#ff0a0a"},
	{"pink", "#ff0ac6"},
	{"yellow", "#ffff0a"},
})

// HeadColor is the color of the leading glyph of every falling word
var HeadColor = RGBWhite

func mustPalette(defs []struct{ name, hex string }) []NamedColor {
	p := make([]NamedColor, 0, len(defs))
	for _, d := range defs {
		c, err := ParseHex(d.hex)
		if err != nil {
			panic(err)
		}
		p = append(p, NamedColor{Name: d.name, RGB: c})
	}
	return p
}

// ColorIndex returns the palette index for a color name
func ColorIndex(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, c := range Palette {
		if c.Name == name {
			return i, true
		}
	}
	return 0, false
}

// ColorNames lists palette names in order
func ColorNames() []string {
	names := make([]string, len(Palette))
	for i, c := range Palette {
		names[i] = c.Name
	}
	return names
}
