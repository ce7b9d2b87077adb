// Package pattern provides the synthetic address generators that feed the
// cache engine: sequential, strided, random, and looping streams, plus a
// replay source over a parsed trace. Every generator is lazy and
// restartable; random generators restart by reseeding.
package pattern

import "math/rand"

// DefaultAddressSpace bounds random address generation, matching the
// original tool's 16-bit address range.
const DefaultAddressSpace = 0x10000

// Sequential yields start, start+step, start+2*step, ... without end.
// Step is normally the cache block size so consecutive addresses touch
// consecutive blocks.
type Sequential struct {
	Start uint64
	Step  uint64
	next  uint64
}

// NewSequential creates a sequential generator beginning at start.
func NewSequential(start, step uint64) *Sequential {
	return &Sequential{Start: start, Step: step, next: start}
}

// Next returns the next address. Sequential streams never exhaust.
func (s *Sequential) Next() (uint64, bool) {
	addr := s.next
	s.next += s.Step
	return addr, true
}

// Reset rewinds the stream to Start.
func (s *Sequential) Reset() {
	s.next = s.Start
}

// Stride yields start, start+stride, start+2*stride, ... without end.
// A stride equal to the block size is equivalent to Sequential; the original
// tool's Stride-2 and Stride-4 presets use 2x and 4x that step.
type Stride struct {
	Start  uint64
	Stride uint64
	next   uint64
}

// NewStride creates a strided generator beginning at start.
func NewStride(start, stride uint64) *Stride {
	return &Stride{Start: start, Stride: stride, next: start}
}

// Next returns the next address. Strided streams never exhaust.
func (s *Stride) Next() (uint64, bool) {
	addr := s.next
	s.next += s.Stride
	return addr, true
}

// Reset rewinds the stream to Start.
func (s *Stride) Reset() {
	s.next = s.Start
}

// Random yields uniformly distributed addresses in [0, Space). It owns its
// seed so that Reset restarts the exact same stream.
type Random struct {
	Space uint64
	seed  int64
	rng   *rand.Rand
}

// NewRandom creates a seeded random generator over [0, space).
// A zero space falls back to DefaultAddressSpace.
func NewRandom(space uint64, seed int64) *Random {
	if space == 0 {
		space = DefaultAddressSpace
	}
	r := &Random{Space: space, seed: seed}
	r.Reset()
	return r
}

// Next returns the next random address. Random streams never exhaust.
func (r *Random) Next() (uint64, bool) {
	return uint64(r.rng.Int63n(int64(r.Space))), true
}

// Reset reseeds the generator, restarting the stream from the beginning.
func (r *Random) Reset() {
	r.rng = rand.New(rand.NewSource(r.seed))
}

// Looping cycles through a fixed window of addresses: base, base+step, ...,
// base+(length-1)*step, then wraps. With Repeats > 0 the stream ends after
// that many full passes; Repeats == 0 loops forever. The original tool used
// a 16-address window with a 4-byte step.
type Looping struct {
	Base    uint64
	Length  int
	Step    uint64
	Repeats int

	pos  int
	pass int
}

// NewLooping creates a looping generator over length addresses.
func NewLooping(base uint64, length int, step uint64, repeats int) *Looping {
	return &Looping{Base: base, Length: length, Step: step, Repeats: repeats}
}

// Next returns the next address in the loop, reporting exhaustion once the
// configured number of passes completes.
func (l *Looping) Next() (uint64, bool) {
	if l.Length <= 0 {
		return 0, false
	}
	if l.Repeats > 0 && l.pass >= l.Repeats {
		return 0, false
	}
	addr := l.Base + uint64(l.pos)*l.Step
	l.pos++
	if l.pos == l.Length {
		l.pos = 0
		l.pass++
	}
	return addr, true
}

// Reset rewinds to the start of the first pass.
func (l *Looping) Reset() {
	l.pos = 0
	l.pass = 0
}

// Replay yields a recorded address sequence in order, exactly once per pass.
// It is the bridge between parsed trace files and the engine.
type Replay struct {
	addrs []uint64
	pos   int
}

// NewReplay creates a replay source over addrs. The slice is not copied;
// callers must not mutate it afterwards.
func NewReplay(addrs []uint64) *Replay {
	return &Replay{addrs: addrs}
}

// Next returns the next recorded address, reporting exhaustion at the end.
func (r *Replay) Next() (uint64, bool) {
	if r.pos >= len(r.addrs) {
		return 0, false
	}
	addr := r.addrs[r.pos]
	r.pos++
	return addr, true
}

// Reset rewinds to the first recorded address.
func (r *Replay) Reset() {
	r.pos = 0
}

// Len returns the number of recorded addresses.
func (r *Replay) Len() int {
	return len(r.addrs)
}
