package sim

import (
	"fmt"
	"math/rand"
)

// ReplacementPolicy decides which way to evict on a miss into a full set and
// maintains whatever per-block order metadata that decision needs.
//
// SelectVictim is only called when the set is full; ties between equal
// timestamps resolve to the lowest way index so behavior is fully specified
// even though the logical clock makes timestamps unique in practice.
type ReplacementPolicy interface {
	Name() string
	// OnHit updates recency metadata after a lookup hit.
	OnHit(set *Set, way int, clock uint64)
	// OnInsert records order metadata for a freshly filled way.
	OnInsert(set *Set, way int, clock uint64)
	// SelectVictim picks the way to evict from a full set.
	SelectVictim(set *Set) int
}

// NewReplacementPolicy builds the policy named in a validated Config.
// The Random policy draws from the engine's partitioned RNG so that runs are
// reproducible for a given master seed.
func NewReplacementPolicy(name string, rng *rand.Rand) (ReplacementPolicy, error) {
	switch name {
	case PolicyLRU:
		return lruPolicy{}, nil
	case PolicyFIFO:
		return fifoPolicy{}, nil
	case PolicyRandom:
		return &randomPolicy{rng: rng}, nil
	default:
		return nil, fmt.Errorf("unknown replacement policy %q; valid: lru, fifo, random", name)
	}
}

// lruPolicy evicts the way with the oldest LastAccessOrder.
type lruPolicy struct{}

func (lruPolicy) Name() string { return PolicyLRU }

func (lruPolicy) OnHit(set *Set, way int, clock uint64) {
	set.Ways[way].LastAccessOrder = clock
}

func (lruPolicy) OnInsert(set *Set, way int, clock uint64) {
	set.Ways[way].InsertionOrder = clock
	set.Ways[way].LastAccessOrder = clock
}

func (lruPolicy) SelectVictim(set *Set) int {
	victim := 0
	for i := 1; i < len(set.Ways); i++ {
		if set.Ways[i].LastAccessOrder < set.Ways[victim].LastAccessOrder {
			victim = i
		}
	}
	return victim
}

// fifoPolicy evicts the way with the oldest InsertionOrder. Hits do not
// refresh anything.
type fifoPolicy struct{}

func (fifoPolicy) Name() string { return PolicyFIFO }

func (fifoPolicy) OnHit(set *Set, way int, clock uint64) {}

func (fifoPolicy) OnInsert(set *Set, way int, clock uint64) {
	set.Ways[way].InsertionOrder = clock
}

func (fifoPolicy) SelectVictim(set *Set) int {
	victim := 0
	for i := 1; i < len(set.Ways); i++ {
		if set.Ways[i].InsertionOrder < set.Ways[victim].InsertionOrder {
			victim = i
		}
	}
	return victim
}

// randomPolicy evicts a uniformly chosen way. It owns its RNG so victim
// selection is deterministic under a fixed seed.
type randomPolicy struct {
	rng *rand.Rand
}

func (*randomPolicy) Name() string { return PolicyRandom }

func (*randomPolicy) OnHit(set *Set, way int, clock uint64) {}

func (*randomPolicy) OnInsert(set *Set, way int, clock uint64) {
	set.Ways[way].InsertionOrder = clock
}

func (p *randomPolicy) SelectVictim(set *Set) int {
	return p.rng.Intn(len(set.Ways))
}
