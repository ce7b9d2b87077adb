package sim

// WayState is the externally visible state of one way of one set.
type WayState struct {
	Valid           bool
	Tag             uint64
	BlockAddress    uint64 // first byte address of the cached block
	InsertionOrder  uint64
	LastAccessOrder uint64
}

// SetState is the externally visible state of one set.
type SetState struct {
	Index int
	Ways  []WayState
}

// Snapshot is a read-only copy of engine state for display layers. The
// original tool rendered the first eight sets plus the statistics panel;
// Snapshot carries the same information as plain data.
type Snapshot struct {
	Sets  []SetState
	Stats Statistics
	Clock uint64
}

// Snapshot copies the state of the first numSets sets along with current
// statistics. A numSets larger than the configured set count is clamped.
func (e *Engine) Snapshot(numSets int) Snapshot {
	if numSets > len(e.sets) {
		numSets = len(e.sets)
	}
	if numSets < 0 {
		numSets = 0
	}

	snap := Snapshot{
		Sets:  make([]SetState, numSets),
		Stats: e.stats,
		Clock: e.clock,
	}
	for i := 0; i < numSets; i++ {
		set := e.sets[i]
		state := SetState{Index: i, Ways: make([]WayState, len(set.Ways))}
		for w, b := range set.Ways {
			state.Ways[w] = WayState{
				Valid:           b.Valid,
				Tag:             b.Tag,
				InsertionOrder:  b.InsertionOrder,
				LastAccessOrder: b.LastAccessOrder,
			}
			if b.Valid {
				state.Ways[w].BlockAddress = e.decoder.ByteAddress(i, b.Tag)
			}
		}
		snap.Sets[i] = state
	}
	return snap
}
