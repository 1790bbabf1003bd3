package toggle

// Selection tracks the active item index of a toggle. The zero value is a valid selection
// pointing at the first item.
type Selection struct {
	active int
}

// Advance moves the selection to the next item, wrapping back to the first item once the
// last one is reached.
func (s *Selection) Advance(itemCount int) int {
	if s.active >= itemCount-1 {
		s.active = 0
	} else {
		s.active++
	}

	return s.active
}

func (s *Selection) Current() int {
	return s.active
}

// Clamp keeps the selection inside [0, itemCount) after the item list shrinks.
func (s *Selection) Clamp(itemCount int) int {
	if s.active >= itemCount {
		s.active = max(0, itemCount-1)
	}

	return s.active
}
