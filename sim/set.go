package sim

// Block is one way of a cache set: a tag plus the bookkeeping the
// replacement policies read. A block is exclusively owned by its set.
type Block struct {
	Valid           bool
	Tag             uint64
	InsertionOrder  uint64 // logical clock value when the block was filled
	LastAccessOrder uint64 // logical clock value of the most recent hit or fill
}

// Set is a fixed-capacity group of ways. Capacity equals the associativity
// and never changes after construction.
type Set struct {
	Ways []Block
}

// NewSet creates a set with the given number of invalid ways.
func NewSet(ways int) *Set {
	return &Set{Ways: make([]Block, ways)}
}

// Lookup scans the valid ways for the tag and returns the first matching
// way index in way order.
func (s *Set) Lookup(tag uint64) (way int, ok bool) {
	for i := range s.Ways {
		if s.Ways[i].Valid && s.Ways[i].Tag == tag {
			return i, true
		}
	}
	return 0, false
}

// FreeWay returns the lowest-index invalid way.
func (s *Set) FreeWay() (way int, ok bool) {
	for i := range s.Ways {
		if !s.Ways[i].Valid {
			return i, true
		}
	}
	return 0, false
}

// IsFull reports whether every way holds a valid block.
func (s *Set) IsFull() bool {
	_, free := s.FreeWay()
	return !free
}

// Insert fills the given way with the tag. Eviction is implicit: overwriting
// a valid way replaces the victim atomically with the new block. Order
// metadata is owned by the replacement policy (OnInsert).
func (s *Set) Insert(tag uint64, way int) {
	s.Ways[way] = Block{Valid: true, Tag: tag}
}
