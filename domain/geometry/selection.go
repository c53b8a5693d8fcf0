package geometry

// Selection is an ordered set of indices into the current image's box slice.
// Membership is positional, so two boxes with equal fields stay distinct.
// The zero value is an empty selection.
type Selection struct {
	order []int
}

// Toggle removes i when selected and appends it otherwise. It reports whether
// i is selected afterwards.
func (s *Selection) Toggle(i int) bool {
	for pos, v := range s.order {
		if v == i {
			s.order = append(s.order[:pos], s.order[pos+1:]...)
			return false
		}
	}
	s.order = append(s.order, i)
	return true
}

func (s *Selection) Contains(i int) bool {
	for _, v := range s.order {
		if v == i {
			return true
		}
	}
	return false
}

// Indices returns a copy of the selected indices in selection order.
func (s *Selection) Indices() []int {
	out := make([]int, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Selection) Len() int { return len(s.order) }

func (s *Selection) Clear() { s.order = s.order[:0] }
