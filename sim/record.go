package sim

// AccessRecord captures a single completed access. Records are immutable
// once created and are retained only for the visible history; statistics are
// aggregated before retention, so the history bound never affects counters.
type AccessRecord struct {
	Address  uint64
	SetIndex int
	Tag      uint64
	Outcome  Outcome
}

// historyCapacity bounds the retained access history. The original tool only
// ever displayed the most recent activity, so a small window suffices.
const historyCapacity = 64

// History is a bounded, append-only window over the most recent accesses.
type History struct {
	records []AccessRecord
}

// NewHistory creates an empty history with the default capacity.
func NewHistory() *History {
	return &History{records: make([]AccessRecord, 0, historyCapacity)}
}

// Record appends one access, evicting the oldest entry once full.
func (h *History) Record(r AccessRecord) {
	if len(h.records) >= historyCapacity {
		h.records = h.records[1:]
	}
	h.records = append(h.records, r)
}

// Records returns the retained accesses, oldest first. The returned slice is
// a copy; mutating it does not affect the history.
func (h *History) Records() []AccessRecord {
	out := make([]AccessRecord, len(h.records))
	copy(out, h.records)
	return out
}

// Len returns the number of retained records.
func (h *History) Len() int {
	return len(h.records)
}
