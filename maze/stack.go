package maze

// frontier is the LIFO of positions forming the candidate path of a search.
type frontier struct {
	items []CellPosition
}

func newFrontier(capacity int) *frontier {
	return &frontier{items: make([]CellPosition, 0, capacity)}
}

func (f *frontier) push(p CellPosition) {
	f.items = append(f.items, p)
}

// peek returns the top position without removing it.
func (f *frontier) peek() (CellPosition, bool) {
	if len(f.items) == 0 {
		return CellPosition{}, false
	}
	return f.items[len(f.items)-1], true
}

// pop removes and returns the top position.
func (f *frontier) pop() (CellPosition, bool) {
	top, ok := f.peek()
	if ok {
		f.items = f.items[:len(f.items)-1]
	}
	return top, ok
}

func (f *frontier) len() int { return len(f.items) }

// snapshot copies the stack bottom to top.
func (f *frontier) snapshot() []CellPosition {
	out := make([]CellPosition, len(f.items))
	copy(out, f.items)
	return out
}
