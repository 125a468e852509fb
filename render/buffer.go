package render

// fadeFloor is the brightness under which a faded glyph is dropped from its cell
const fadeFloor = 16

// Cell is one terminal cell of a cell buffer
type Cell struct {
	Glyph string // grapheme cluster, empty for blank
	Fg    RGB
	Bg    RGB
	Attrs Attr
	// Cont marks the right half of a double-width glyph
	Cont bool
}

// Attr is a text attribute bitmask
type Attr uint8

const (
	AttrNone   Attr = 0
	AttrBold   Attr = 1 << 0
	AttrItalic Attr = 1 << 1
	AttrDim    Attr = 1 << 2
)

// CellBuffer is a persistent compositor of terminal cells
// Unlike a frame buffer it is never cleared between ticks; Fade darkens it in place
type CellBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewCellBuffer creates a buffer with the specified dimensions
func NewCellBuffer(width, height int) *CellBuffer {
	b := &CellBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *CellBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *CellBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Size returns buffer dimensions
func (b *CellBuffer) Size() (int, int) {
	return b.width, b.height
}

func (b *CellBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x, y; out of bounds yields a blank cell
func (b *CellBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetFg writes glyph, foreground and attrs while preserving the background
// A wide glyph also claims the cell to its right
func (b *CellBuffer) SetFg(x, y int, glyph string, fg RGB, attrs Attr, wide bool) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Glyph = glyph
	dst.Fg = fg
	dst.Attrs = attrs
	dst.Cont = false

	if wide && b.inBounds(x+1, y) {
		next := &b.cells[y*b.width+x+1]
		next.Glyph = ""
		next.Fg = fg
		next.Cont = true
	}
}

// SetBg updates the background color while preserving glyph and foreground
func (b *CellBuffer) SetBg(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x].Bg = bg
}

// Fade blends every cell toward black by alpha
// Glyphs whose foreground drops under the floor are removed
func (b *CellBuffer) Fade(alpha float64) {
	for i := range b.cells {
		c := &b.cells[i]
		if c.Glyph == "" && !c.Cont && c.Bg == RGBBlack {
			continue
		}
		c.Fg = Blend(c.Fg, RGBBlack, alpha)
		c.Bg = Blend(c.Bg, RGBBlack, alpha)
		if c.Bg.Luma() < fadeFloor {
			c.Bg = RGBBlack
		}
		if c.Fg.Luma() < fadeFloor {
			c.Glyph = ""
			c.Cont = false
			c.Attrs = AttrNone
		}
	}
}
