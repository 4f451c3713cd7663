package room

// cellSet is an indexed set of linear cell indices. Insert, remove and
// uniform sampling are O(1); membership order depends only on the sequence of
// operations, so sampling stays reproducible for a fixed seed.
type cellSet struct {
	items []int
	pos   []int // pos[idx] is the slot of idx in items, or -1
}

func newCellSet(capacity int) *cellSet {
	pos := make([]int, capacity)
	for i := range pos {
		pos[i] = -1
	}
	return &cellSet{pos: pos}
}

func (s *cellSet) len() int { return len(s.items) }

func (s *cellSet) has(idx int) bool { return s.pos[idx] >= 0 }

func (s *cellSet) set(idx int, on bool) {
	if on {
		s.add(idx)
		return
	}
	s.remove(idx)
}

func (s *cellSet) add(idx int) {
	if s.has(idx) {
		return
	}
	s.pos[idx] = len(s.items)
	s.items = append(s.items, idx)
}

func (s *cellSet) remove(idx int) {
	slot := s.pos[idx]
	if slot < 0 {
		return
	}
	last := len(s.items) - 1
	moved := s.items[last]
	s.items[slot] = moved
	s.pos[moved] = slot
	s.items = s.items[:last]
	s.pos[idx] = -1
}

// at returns the i-th member in slot order.
func (s *cellSet) at(i int) int { return s.items[i] }

func (s *cellSet) clone() *cellSet {
	return &cellSet{
		items: append([]int(nil), s.items...),
		pos:   append([]int(nil), s.pos...),
	}
}
