package cmd

import (
	"fmt"
	"io"

	sim "github.com/cachesim/cachesim/sim"
)

// PrintSnapshot renders per-set occupancy the way the original tool's set
// panel did: one line per set, each valid way shown as the hex address of
// the block it holds, free ways as dashes.
func PrintSnapshot(w io.Writer, snap sim.Snapshot) {
	if len(snap.Sets) == 0 {
		return
	}
	fmt.Fprintf(w, "=== Cache Sets (first %d) ===\n", len(snap.Sets))
	for _, set := range snap.Sets {
		fmt.Fprintf(w, "Set %2d:", set.Index)
		for _, way := range set.Ways {
			if way.Valid {
				fmt.Fprintf(w, " 0x%04X", way.BlockAddress)
			} else {
				fmt.Fprintf(w, " ------")
			}
		}
		fmt.Fprintln(w)
	}
}
