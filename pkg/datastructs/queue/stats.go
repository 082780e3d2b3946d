package queue

// Stats counts the reallocations performed by a FlatQueue.
type Stats struct {
	Reallocations uint64 // every fresh buffer, whatever the cause
	Grows         uint64 // push found the buffer full
	Reclaims      uint64 // pop found more than half the buffer dead
	Compactions   uint64 // explicit Compact / ShrinkToFit
	Reserves      uint64 // Reserve / Grow
}

func (s *Stats) record(reason string) {
	s.Reallocations++
	switch reason {
	case reasonGrow:
		s.Grows++
	case reasonReclaim:
		s.Reclaims++
	case reasonCompact:
		s.Compactions++
	case reasonReserve:
		s.Reserves++
	}
}
