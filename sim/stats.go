package sim

import "fmt"

// Statistics aggregates access outcomes for final reporting. All counters
// increase monotonically; they reset only when the engine is reset or
// reconfigured. The invariant Hits + ColdMisses + ConflictMisses +
// CapacityMisses == TotalAccesses holds after every access.
type Statistics struct {
	Hits           uint64
	ColdMisses     uint64
	ConflictMisses uint64
	CapacityMisses uint64
	TotalAccesses  uint64
}

// record tallies one access outcome.
func (s *Statistics) record(o Outcome) {
	s.TotalAccesses++
	switch o {
	case Hit:
		s.Hits++
	case ColdMiss:
		s.ColdMisses++
	case ConflictMiss:
		s.ConflictMisses++
	case CapacityMiss:
		s.CapacityMisses++
	}
}

// Misses returns the total miss count across all three classes.
func (s Statistics) Misses() uint64 {
	return s.ColdMisses + s.ConflictMisses + s.CapacityMisses
}

// HitRatio returns Hits / TotalAccesses, or 0 before any access.
func (s Statistics) HitRatio() float64 {
	if s.TotalAccesses == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.TotalAccesses)
}

// Print displays aggregated statistics at the end of the simulation.
func (s Statistics) Print() {
	fmt.Println("=== Simulation Statistics ===")
	fmt.Printf("Total Accesses   : %d\n", s.TotalAccesses)
	fmt.Printf("Hits             : %d\n", s.Hits)
	fmt.Printf("Misses           : %d\n", s.Misses())
	fmt.Printf("  Cold           : %d\n", s.ColdMisses)
	fmt.Printf("  Conflict       : %d\n", s.ConflictMisses)
	fmt.Printf("  Capacity       : %d\n", s.CapacityMisses)
	fmt.Printf("Hit Ratio        : %.1f%%\n", s.HitRatio()*100)
}
