package selection

// Set is an ordered set of seat IDs. Insertion order is preserved so
// repeated renders and exports are deterministic.
type Set struct {
	ids   map[string]struct{}
	order []string
}

func NewSet() *Set {
	return &Set{ids: make(map[string]struct{})}
}

func (s *Set) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Replace drops the current selection and selects just the given seat.
func (s *Set) Replace(id string) {
	s.Clear()
	s.add(id)
}

// Toggle flips membership of a single seat, leaving the rest untouched.
func (s *Set) Toggle(id string) {
	if s.Contains(id) {
		s.remove(id)
		return
	}
	s.add(id)
}

// ReplaceAll drops the current selection and selects the given seats.
func (s *Set) ReplaceAll(ids []string) {
	s.Clear()
	for _, id := range ids {
		s.add(id)
	}
}

func (s *Set) Clear() {
	s.ids = make(map[string]struct{})
	s.order = s.order[:0]
}

func (s *Set) Len() int { return len(s.order) }

// IDs returns the selected seat IDs in insertion order. The returned slice
// is a copy.
func (s *Set) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Set) add(id string) {
	if s.Contains(id) {
		return
	}
	s.ids[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *Set) remove(id string) {
	delete(s.ids, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
