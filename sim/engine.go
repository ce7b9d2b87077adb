package sim

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/cachesim/cachesim/sim/pattern"
	"github.com/cachesim/cachesim/sim/trace"
)

// Outcome classifies a single access.
type Outcome int

const (
	// Hit means the block was already resident.
	Hit Outcome = iota
	// ColdMiss means the block had never been cached this run and its set
	// still had a free way.
	ColdMiss
	// ConflictMiss means the miss is due to the fixed set mapping: a
	// fully-associative cache of the same total capacity would have hit.
	ConflictMiss
	// CapacityMiss means the working set exceeds total cache capacity; more
	// associativity alone would not have avoided the miss.
	CapacityMiss
)

var outcomeNames = map[Outcome]string{
	Hit:          "hit",
	ColdMiss:     "cold-miss",
	ConflictMiss: "conflict-miss",
	CapacityMiss: "capacity-miss",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// IsMiss reports whether the outcome is any of the three miss classes.
func (o Outcome) IsMiss() bool {
	return o != Hit
}

// AddressSource is a lazy, restartable stream of addresses feeding Step.
// Next returns ok=false when the stream is exhausted; infinite sources never
// exhaust. Reset rewinds the source to its initial state (reseeding, for
// random sources).
type AddressSource interface {
	Next() (addr uint64, ok bool)
	Reset()
}

// Engine simulates a set-associative cache under a stream of accesses.
// It owns the sets, the replacement policy, the statistics, and the logical
// clock that orders every access.
//
// The engine is strictly single-threaded: Access calls must be serialized by
// the caller, and never overlap Configure or Reset.
type Engine struct {
	cfg     Config
	decoder *Decoder
	sets    []*Set
	policy  ReplacementPolicy
	shadow  *shadowCache
	stats   Statistics
	clock   uint64
	rng     *PartitionedRNG
	source  AddressSource
	history *History
}

// NewEngine builds an engine for a validated configuration.
func NewEngine(cfg Config) (*Engine, error) {
	e := &Engine{}
	if err := e.Configure(cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// Configure validates and installs a new configuration, implicitly resetting
// all simulation state. On failure the engine is left untouched.
func (e *Engine) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.cfg = cfg
	e.rebuild()
	logrus.Infof("configured cache: %d sets x %d ways x %dB blocks (%dB total), policy=%s",
		cfg.NumSets(), cfg.Associativity, cfg.BlockSizeBytes, cfg.CacheSizeBytes, cfg.Policy)
	return nil
}

// Reset clears all simulation state (sets, statistics, clock, classification
// history) and rewinds the installed address source. Replaying the identical
// address sequence after Reset reproduces identical statistics and contents.
func (e *Engine) Reset() {
	e.rebuild()
	if e.source != nil {
		e.source.Reset()
	}
}

// rebuild reconstructs all derived state from e.cfg. The policy is rebuilt
// too so that random victim selection restarts from the master seed.
func (e *Engine) rebuild() {
	cfg := e.cfg
	e.decoder = NewDecoder(cfg)
	e.sets = make([]*Set, cfg.NumSets())
	for i := range e.sets {
		e.sets[i] = NewSet(cfg.Associativity)
	}
	e.rng = NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	// Validate guarantees the policy name is known.
	e.policy, _ = NewReplacementPolicy(cfg.Policy, e.rng.ForSubsystem(SubsystemPolicy))
	e.shadow = newShadowCache(cfg.NumBlocks())
	e.stats = Statistics{}
	e.clock = 0
	e.history = NewHistory()
}

// Access simulates one memory access and returns its classification.
// Every call advances the logical clock by exactly one; replacement
// timestamps and miss classification depend on that ordering.
func (e *Engine) Access(addr uint64) Outcome {
	e.clock++

	setIndex, tag := e.decoder.Decode(addr)
	set := e.sets[setIndex]
	block := e.decoder.BlockAddress(addr)

	var outcome Outcome
	if way, ok := set.Lookup(tag); ok {
		outcome = Hit
		e.policy.OnHit(set, way, e.clock)
	} else if way, free := set.FreeWay(); free {
		if e.shadow.Touched(block) {
			// The block was cached before and lost its slot to set-index
			// contention; with the set not yet full this only happens after
			// an earlier eviction.
			outcome = ConflictMiss
		} else {
			outcome = ColdMiss
		}
		set.Insert(tag, way)
		e.policy.OnInsert(set, way, e.clock)
	} else {
		victim := e.policy.SelectVictim(set)
		logrus.Debugf("[clock %07d] set %d full: evicting way %d (tag %#x) for tag %#x",
			e.clock, setIndex, victim, set.Ways[victim].Tag, tag)
		if e.shadow.Contains(block) {
			outcome = ConflictMiss
		} else {
			outcome = CapacityMiss
		}
		set.Insert(tag, victim)
		e.policy.OnInsert(set, victim, e.clock)
	}

	e.shadow.Touch(block)
	e.stats.record(outcome)
	e.history.Record(AccessRecord{Address: addr, SetIndex: setIndex, Tag: tag, Outcome: outcome})

	logrus.Debugf("[clock %07d] access %#x -> set %d tag %#x: %s", e.clock, addr, setIndex, tag, outcome)
	return outcome
}

// SetSource installs the address source consumed by Step. Passing nil
// detaches the current source.
func (e *Engine) SetSource(src AddressSource) {
	e.source = src
}

// Step pulls the next address from the installed source and simulates it.
// ok is false when no source is installed or the source is exhausted;
// stopping a run is simply ceasing to call Step.
func (e *Engine) Step() (outcome Outcome, ok bool) {
	if e.source == nil {
		return 0, false
	}
	addr, ok := e.source.Next()
	if !ok {
		logrus.Debugf("[clock %07d] address source exhausted", e.clock)
		return 0, false
	}
	return e.Access(addr), true
}

// Run steps until the source is exhausted or limit accesses have been
// simulated (limit <= 0 means unbounded) and returns the number executed.
func (e *Engine) Run(limit int) int {
	executed := 0
	for limit <= 0 || executed < limit {
		if _, ok := e.Step(); !ok {
			break
		}
		executed++
	}
	logrus.Infof("[clock %07d] run complete: %d accesses", e.clock, executed)
	return executed
}

// LoadTrace parses a trace from r and installs it as the address source.
// The load is atomic: on a parse error the previously installed source is
// kept. An empty trace is legal; stepping simply yields no addresses.
func (e *Engine) LoadTrace(r io.Reader) error {
	addrs, err := trace.Parse(r)
	if err != nil {
		return err
	}
	if len(addrs) == 0 {
		logrus.Warn("trace contains no addresses")
	}
	e.source = pattern.NewReplay(addrs)
	logrus.Infof("loaded trace with %d addresses", len(addrs))
	return nil
}

// Stats returns a copy of the current statistics.
func (e *Engine) Stats() Statistics {
	return e.stats
}

// History returns the retained recent accesses, oldest first.
func (e *Engine) History() []AccessRecord {
	return e.history.Records()
}

// Config returns the active configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Clock returns the logical clock, i.e. the number of accesses simulated
// since the last reset.
func (e *Engine) Clock() uint64 {
	return e.clock
}
