package vtt

// Seen records captions already emitted during one conversion.
// It only grows; a fresh set is needed for every input.
type Seen struct {
	items map[string]struct{}
}

// NewSeen returns an empty set.
func NewSeen() *Seen {
	return &Seen{items: make(map[string]struct{})}
}

// Contains reports whether caption was already added.
func (s *Seen) Contains(caption string) bool {
	_, ok := s.items[caption]
	return ok
}

// Add inserts caption and reports whether it was new.
func (s *Seen) Add(caption string) bool {
	if s.Contains(caption) {
		return false
	}
	s.items[caption] = struct{}{}
	return true
}

// Len returns the number of distinct captions recorded.
func (s *Seen) Len() int {
	return len(s.items)
}
