package sim

// shadowCache is a fully-associative LRU cache of block addresses with the
// same total capacity as the simulated cache. It holds no data and exists
// purely to separate conflict misses from capacity misses: a full-set miss
// whose block the shadow still holds would have hit under full associativity,
// so the fixed set mapping is the bottleneck (conflict); a shadow miss means
// the working set genuinely exceeds total capacity (capacity).
//
// The shadow also records every block address ever touched in the current
// run, which identifies cold misses.
type shadowCache struct {
	capacity int
	queue    []uint64 // LRU order, most recent at the end
	present  map[uint64]bool
	touched  map[uint64]bool
}

func newShadowCache(capacity int) *shadowCache {
	return &shadowCache{
		capacity: capacity,
		queue:    make([]uint64, 0, capacity),
		present:  make(map[uint64]bool),
		touched:  make(map[uint64]bool),
	}
}

// Contains reports whether the shadow currently holds the block.
func (s *shadowCache) Contains(block uint64) bool {
	return s.present[block]
}

// Touched reports whether the block has ever been accessed this run.
func (s *shadowCache) Touched(block uint64) bool {
	return s.touched[block]
}

// Touch records an access: refreshes the block to most-recently-used,
// inserting it if absent and evicting the least recently used block when
// over capacity. Call after classification so the decision reflects the
// state prior to this access.
func (s *shadowCache) Touch(block uint64) {
	s.touched[block] = true

	if s.present[block] {
		for i, b := range s.queue {
			if b == block {
				s.queue = append(s.queue[:i], s.queue[i+1:]...)
				break
			}
		}
	} else if len(s.queue) >= s.capacity {
		oldest := s.queue[0]
		s.queue = s.queue[1:]
		delete(s.present, oldest)
	}

	s.queue = append(s.queue, block)
	s.present[block] = true
}
