package render

// Layout describes a surface viewport and its glyph cell size, in surface units
// Terminal surfaces count cells, raster surfaces count pixels
type Layout struct {
	Width      int
	Height     int
	CellWidth  int
	CellHeight int
}

// Columns returns floor(Width / CellWidth)
func (l Layout) Columns() int {
	if l.CellWidth <= 0 || l.Width <= 0 {
		return 0
	}
	return l.Width / l.CellWidth
}

// Overflows reports whether a glyph at the given 1-based row lies past the bottom edge
func (l Layout) Overflows(row int) bool {
	return row*l.CellHeight > l.Height
}

// Stroke is the paint used for one glyph
type Stroke struct {
	Fg RGB
	// Glow tints the surroundings of the glyph when Shadow is set
	Glow   RGB
	Shadow bool
}

// Surface is the drawing target of the rain renderer
// Content persists between ticks; only Fade darkens it
type Surface interface {
	Layout() Layout

	// Resize changes the viewport, existing content is discarded
	Resize(width, height int)

	SetFont(f Font)

	// Fade composites a black overlay of the given opacity over the whole surface
	Fade(alpha float64)

	// DrawGlyph paints a grapheme cluster at grid column col, 1-based row
	DrawGlyph(col, row int, glyph string, st Stroke)

	// Present makes drawn content visible
	Present()
}
