package rain

// Column is one vertical rain lane
type Column struct {
	FallDepth int    // 1-based row of the next glyph, in glyph cells
	Buffer    string // text occupying the lane, empty when idle
	Cursor    int    // index into the segmented view of Buffer
}

// IdleColumn returns a lane ready to receive text
func IdleColumn() Column {
	return Column{FallDepth: 1}
}

// Available reports whether the lane can take new text
func (c Column) Available() bool {
	return c.Cursor == 0 && c.Buffer == ""
}

func (c *Column) clear() {
	*c = IdleColumn()
}

// Columns is the lane collection, indexed left to right
type Columns []Column

// NewColumns creates n idle lanes
func NewColumns(n int) Columns {
	cols := make(Columns, max(n, 0))
	for i := range cols {
		cols[i] = IdleColumn()
	}
	return cols
}

// Clone returns an independent copy
func (cs Columns) Clone() Columns {
	return append(Columns(nil), cs...)
}

// IdleCount returns the number of available lanes
func (cs Columns) IdleCount() int {
	n := 0
	for _, c := range cs {
		if c.Available() {
			n++
		}
	}
	return n
}
