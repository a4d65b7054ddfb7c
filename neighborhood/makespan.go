package neighborhood

import "github.com/upmsp/upmsp/solution"

// maxDurationEngines returns the engine indices holding at least one
// reclaim event tied for the single longest reclaim duration in the whole
// solution. This is what the "Smart" move variants restrict their engine
// selection to.
//
// This is a literal port of the original's reset(), not a redesign: a
// "Smart" move is documented as operating on "the machine with the largest
// total execution time", but the code it actually runs compares individual
// reclaim event durations, not each engine's summed busy time. A stockpile
// with one very long single reclaim can make that engine "smart-eligible"
// even if another engine is busier overall across many shorter events.
// Preserved as-is, see DESIGN.md.
func maxDurationEngines(s *solution.Solution) []int {
	if len(s.Reclaims) == 0 {
		return nil
	}
	maxDur := s.Reclaims[0].Duration
	for _, r := range s.Reclaims {
		if r.Duration > maxDur {
			maxDur = r.Duration
		}
	}
	var engines []int
	for _, r := range s.Reclaims {
		if r.Duration == maxDur {
			engines = append(engines, r.Engine)
		}
	}
	return engines
}
