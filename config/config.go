// Package config holds the run-time knobs the CLI driver exposes, mirroring
// main.py's Parmeters dict: which constructive variant and heuristic
// algorithm to run, the feedback-iteration count, and the SA/LAHC tuning
// parameters, all overridable by cobra flags in cmd/run.go.
package config

// Parameters groups every run-time knob spec §6's CLI surface exposes,
// grouped the way the teacher's sim/config.go groups related settings into
// one struct per concern rather than a flat bag of globals.
type Parameters struct {
	// Constructive selects the route-generation strategy: "premodel" or
	// "postmodel".
	Constructive string

	// Algorithm selects the heuristic driver: "", "sa", or "lahc". An empty
	// string means no local search runs, matching main.py's
	// `if parms['algorithm'] != '':` guard.
	Algorithm string

	// Feedback is the number of feedback rounds (reweight OMP, re-solve,
	// rebuild, re-run the heuristic) to perform after the initial solve.
	Feedback int

	// Seed is the single PRNG seed threaded through every source of
	// randomness in the run, per spec §5.
	Seed int64

	// MaxIters bounds a heuristic run (both the initial run and each
	// feedback round's resumed run): for LAHC, the total number of move
	// evaluations; for SA, the number of temperature levels, each of which
	// runs a full SAMax proposals regardless of the budget remaining, per
	// spec §4.4 and sa.py's run().
	MaxIters int

	// LSize is LAHC's history length L.
	LSize int

	// Alpha is SA's geometric cooling rate.
	Alpha float64

	// SAMax is the number of proposals evaluated per SA temperature level.
	SAMax int

	// T0 is SA's initial temperature.
	T0 float64
}

// Default returns the Parameters main.py's main() hard-codes before
// read_args overrides them from argv: postmodel construction, no heuristic,
// zero feedback rounds, seed 0, 1000 max iterations / LAHC list size / SA
// proposals per level, alpha 0.9, T0 1.0.
func Default() Parameters {
	return Parameters{
		Constructive: "postmodel",
		Algorithm:    "",
		Feedback:     0,
		Seed:         0,
		MaxIters:     1000,
		LSize:        1000,
		Alpha:        0.9,
		SAMax:        1000,
		T0:           1.0,
	}
}
