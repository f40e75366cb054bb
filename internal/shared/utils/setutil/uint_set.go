// Package setutil provides set utilities for ID collections.
package setutil

// UintSet is an insertion-ordered set of uint values. Iteration order is the
// order of first insertion, which keeps recipient fan-out deterministic.
type UintSet struct {
	items map[uint]struct{}
	order []uint
}

func NewUintSet() *UintSet {
	return &UintSet{
		items: make(map[uint]struct{}),
	}
}

// Add inserts id, ignoring zero and duplicates. It reports whether id was new.
func (s *UintSet) Add(id uint) bool {
	if id == 0 {
		return false
	}
	if _, ok := s.items[id]; ok {
		return false
	}
	s.items[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

// AddPtr adds *id when id is non-nil.
func (s *UintSet) AddPtr(id *uint) {
	if id != nil {
		s.Add(*id)
	}
}

func (s *UintSet) Has(id uint) bool {
	_, ok := s.items[id]
	return ok
}

// Remove deletes id from the set.
func (s *UintSet) Remove(id uint) {
	if _, ok := s.items[id]; !ok {
		return
	}
	delete(s.items, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// ToSlice returns the members in insertion order.
func (s *UintSet) ToSlice() []uint {
	out := make([]uint, len(s.order))
	copy(out, s.order)
	return out
}

func (s *UintSet) Len() int {
	return len(s.order)
}
