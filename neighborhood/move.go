// Package neighborhood implements the local-search moves the heuristic
// driver samples from: small in-place perturbations of a Solution's
// per-engine routes, replayed through the constructive Build step to
// measure their delta cost.
package neighborhood

import (
	"github.com/upmsp/upmsp/problem"
	"github.com/upmsp/upmsp/rngsrc"
	"github.com/upmsp/upmsp/solution"
)

// Rebuilder is the subset of constructive.Base's behavior a move needs: a
// full replay of whatever s.Routes currently holds, used both to measure a
// candidate move's delta cost and to restore the previous schedule after a
// Reject.
type Rebuilder interface {
	Rebuild(s *solution.Solution)
}

// Move is one neighborhood structure: it proposes a candidate perturbation
// (GenMove), checks it is legal against the current solution (HasMove),
// applies it and reports its delta cost (DoMove), and either commits
// (Accept) or rolls it back and replays the prior routes (Reject).
//
// The GenMove → HasMove → DoMove → Accept/Reject lifecycle mirrors the
// intermediate-state guard in the original Move base class: DoMove panics
// if called while already mid-move, and Accept/Reject panic if called
// before a DoMove. This catches a driver bug (double-apply, or accepting
// twice) immediately instead of silently corrupting route state.
type Move interface {
	Name() string
	GenMove(s *solution.Solution)
	HasMove(s *solution.Solution) bool
	DoMove(s *solution.Solution) float64
	Accept()
	Reject(s *solution.Solution)
	Reset(s *solution.Solution)
	Stats() Stats
	// InitialCost is the solution's cost immediately before the most
	// recent DoMove, the heuristic driver compares the post-move cost
	// against this, per spec §4.4.
	InitialCost() float64
}

// Stats accumulates the basic counters spec §5 wants reported per move:
// how many times it ran, and how its delta cost broke down.
type Stats struct {
	Iters        int
	Improvements int
	Sideways     int
	Worsens      int
	Rejects      int
}

// base holds everything every move variant shares: the problem reference, a
// shared rng, the rebuilder, the intermediate-state guard, delta/initial
// cost bookkeeping and the stats counters.
type base struct {
	name    string
	problem problem.Problem
	rebuild Rebuilder
	rng     *rngsrc.Source

	intermediateState bool
	deltaCost         float64
	initialCost       float64

	stats Stats
}

func newBase(name string, p problem.Problem, rebuild Rebuilder, rng *rngsrc.Source) base {
	return base{name: name, problem: p, rebuild: rebuild, rng: rng}
}

func (b *base) Name() string          { return b.name }
func (b *base) Stats() Stats          { return b.stats }
func (b *base) DeltaCost() float64    { return b.deltaCost }
func (b *base) InitialCost() float64  { return b.initialCost }

// doMove is called by each variant after it has already perturbed
// s.Routes in place; it replays the schedule, measures the delta and
// flips the intermediate-state guard on.
func (b *base) doMove(s *solution.Solution) float64 {
	if b.intermediateState {
		panic(b.name + ": DoMove called before a prior Accept/Reject")
	}
	b.intermediateState = true
	b.stats.Iters++
	b.initialCost = s.Cost

	b.rebuild.Rebuild(s)

	b.deltaCost = s.Cost - b.initialCost
	return b.deltaCost
}

func (b *base) accept() {
	if !b.intermediateState {
		panic(b.name + ": Accept called before DoMove")
	}
	b.intermediateState = false
	switch {
	case b.deltaCost < 0:
		b.stats.Improvements++
	case b.deltaCost == 0:
		b.stats.Sideways++
	default:
		b.stats.Worsens++
	}
}

func (b *base) reject() {
	if !b.intermediateState {
		panic(b.name + ": Reject called before DoMove")
	}
	b.intermediateState = false
	b.stats.Rejects++
}
