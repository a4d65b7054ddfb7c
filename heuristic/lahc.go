package heuristic

import (
	"github.com/upmsp/upmsp/neighborhood"
	"github.com/upmsp/upmsp/rngsrc"
	"github.com/upmsp/upmsp/solution"
)

// LAHC is a Late-Acceptance Hill-Climbing driver: a circular history of the
// last L accepted costs, accepting a move if it is no worse than either the
// pre-move cost or the cost L iterations ago.
type LAHC struct {
	base
	size int
}

// NewLAHC builds a LAHC driver with history length size.
func NewLAHC(size int, rng *rngsrc.Source) *LAHC {
	return &LAHC{base: base{rng: rng}, size: size}
}

func (h *LAHC) AddMove(m neighborhood.Move) { h.base.AddMove(m) }
func (h *LAHC) Best() *solution.Solution    { return h.base.Best() }
func (h *LAHC) Iters() int                  { return h.base.Iters() }

// Run executes LAHC starting from initial, for maxIters iterations. When
// bestKnown is true, a previously-set incumbent is preserved instead of
// being reset to initial.
func (h *LAHC) Run(initial *solution.Solution, maxIters int, bestKnown bool) {
	if !bestKnown || h.best == nil {
		h.best = initial
	}

	s := initial.DeepCopy()

	costList := make([]float64, h.size)
	for i := range costList {
		costList[i] = initial.Cost * 1.5
	}

	v := 0
	for i := 0; i < maxIters; i++ {
		h.iters++
		move := h.selectMove(s)
		move.DoMove(s)

		if s.Cost <= move.InitialCost() || s.Cost <= costList[v] {
			move.Accept()
			if s.Cost < h.best.Cost {
				h.best = s.DeepCopy()
			}
		} else {
			move.Reject(s)
		}

		costList[v] = s.Cost
		v = (v + 1) % h.size
	}
}
