package rain

// ColumnCount returns how many lanes fit a viewport width
func ColumnCount(width, cellWidth int) int {
	if cellWidth <= 0 || width <= 0 {
		return 0
	}
	return width / cellWidth
}

// Resize returns n lanes, keeping existing lane state by index
// Lanes past the old length start idle, lanes past n are dropped
func (cs Columns) Resize(n int) Columns {
	next := NewColumns(n)
	copy(next, cs)
	return next
}
