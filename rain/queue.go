package rain

// Admit assigns text to the first available lane in ascending index order
// Returns the lane index, or false when the text was dropped: every lane busy or text empty
// There is no buffering: a burst larger than the idle lane count is shed
func (cs Columns) Admit(text string) (int, bool) {
	if text == "" {
		return -1, false
	}
	for i := range cs {
		if cs[i].Available() {
			cs[i] = Column{FallDepth: 1, Buffer: text, Cursor: 0}
			return i, true
		}
	}
	return -1, false
}
