// Package heuristic drives the neighborhood moves against a Solution:
// Simulated Annealing and Late-Acceptance Hill-Climbing share a common
// move-selection routine and incumbent-tracking contract.
package heuristic

import (
	"github.com/upmsp/upmsp/neighborhood"
	"github.com/upmsp/upmsp/rngsrc"
	"github.com/upmsp/upmsp/solution"
)

// maxMoveRetries bounds how many times selectMove redraws a move before
// giving up on finding one with HasMove true for the current solution ,
// spec §7's "empty route fallback": never abort a run over this.
const maxMoveRetries = 1000

// base holds what SA and LAHC share: the pool of moves to sample from, the
// shared rng, and the best-known incumbent.
type base struct {
	moves []neighborhood.Move
	rng   *rngsrc.Source
	best  *solution.Solution
	iters int
}

// AddMove registers a move the heuristic may select during a run.
func (b *base) AddMove(m neighborhood.Move) { b.moves = append(b.moves, m) }

// Best returns the best-known solution found so far.
func (b *base) Best() *solution.Solution { return b.best }

// Iters returns the driver's iteration counter: for LAHC, the move
// evaluations summed over every Run; for SA, the temperature levels
// completed by the most recent Run.
func (b *base) Iters() int { return b.iters }

// selectMove draws moves uniformly until one reports HasMove true for s,
// retrying up to maxMoveRetries times before giving up and returning the
// last move tried regardless, matching spec §7: a run is never aborted
// because no move currently applies.
func (b *base) selectMove(s *solution.Solution) neighborhood.Move {
	var m neighborhood.Move
	for i := 0; i < maxMoveRetries; i++ {
		m = b.moves[b.rng.Intn(len(b.moves))]
		m.GenMove(s)
		if m.HasMove(s) {
			return m
		}
	}
	return m
}
