package heuristic

import (
	"math"

	"github.com/upmsp/upmsp/neighborhood"
	"github.com/upmsp/upmsp/rngsrc"
	"github.com/upmsp/upmsp/solution"
)

// minTemperature is the floor ε below which SA reheats to T0, per spec
// §4.4: "if T drops below ε, reset T to T0 (reheat)", grounded on sa.py's
// self.__eps = 1e-6.
const minTemperature = 1e-6

// SA is a Simulated Annealing driver: a geometric cooling schedule with
// reheat-on-floor and Metropolis acceptance.
type SA struct {
	base
	alpha float64
	t0    float64
	saMax int
}

// NewSA builds an SA driver with cooling rate alpha, initial temperature
// t0, and saMax proposals evaluated per temperature level.
func NewSA(alpha, t0 float64, saMax int, rng *rngsrc.Source) *SA {
	return &SA{base: base{rng: rng}, alpha: alpha, t0: t0, saMax: saMax}
}

func (h *SA) AddMove(m neighborhood.Move) { h.base.AddMove(m) }
func (h *SA) Best() *solution.Solution    { return h.base.Best() }
func (h *SA) Iters() int                  { return h.base.Iters() }

// Run executes Simulated Annealing starting from initial, for at most
// maxIters temperature levels (each running saMax proposals), per spec
// §4.4 and sa.py's run(): `self._iters` counts outer-loop levels, not
// individual proposals, and the inner `for _ in range(sa_max)` loop always
// runs to completion regardless of the iteration budget. When bestKnown is
// true, a previously-set incumbent (from an earlier feedback round) is
// preserved instead of being reset to initial, spec §4.4's
// initial_best_known flag.
func (h *SA) Run(initial *solution.Solution, maxIters int, bestKnown bool) {
	if !bestKnown || h.best == nil {
		h.best = initial
	}

	s := initial.DeepCopy()
	t := h.t0
	h.iters = 0

	for t > minTemperature && h.iters < maxIters {
		for i := 0; i < h.saMax; i++ {
			move := h.selectMove(s)
			delta := move.DoMove(s)

			if accept(delta, t, h.rng) {
				move.Accept()
				if s.Cost < h.best.Cost {
					h.best = s.DeepCopy()
				}
			} else {
				move.Reject(s)
			}
		}

		h.iters++
		t *= h.alpha
		if t < minTemperature {
			t = h.t0
		}
	}
}

// accept implements SA's Metropolis criterion: improving and sideways
// moves are always kept; a worsening move is kept with probability
// exp(-delta/t).
func accept(delta, t float64, rng *rngsrc.Source) bool {
	if delta <= 0 {
		return true
	}
	return rng.Float64() < math.Exp(-delta/t)
}
