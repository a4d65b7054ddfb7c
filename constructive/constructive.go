// Package constructive builds an initial feasible schedule from an OMP
// solve result: one route per engine, replayed into stack/reclaim events.
//
// Two route-generation strategies are provided, matching spec §4.2:
// PreModel visits every reachable stockpile regardless of whether this
// request needs it (producing zero-duration entries later moves can grow),
// and PostModel restricts each engine's route to stockpiles this request's
// mass decision actually touches.
package constructive

import (
	"math"

	"github.com/upmsp/upmsp/problem"
	"github.com/upmsp/upmsp/solution"
)

// RouteBuilder appends route entries for a single output request to
// sol.Routes, tagging each entry with that request's index so Build can
// later replay the full accumulated route correctly (see DESIGN.md,
// "routes accumulate across requests").
type RouteBuilder interface {
	SetRoutes(request int)
}

// Base holds everything PreModel and PostModel share: the immutable
// problem, the mutable solution being built, the per-(stockpile,request)
// reclaimed-mass matrix, and the per-stockpile stacked mass still available
// to be picked up by the first engine that visits it.
type Base struct {
	Problem  problem.Problem
	Solution *solution.Solution
	Weights  [][]float64 // Weights[stockpile][request], mirrors solution.X
	Inputs   []float64   // remaining stacked mass per stockpile
}

func newBase(p problem.Problem, s *solution.Solution) Base {
	return Base{
		Problem:  p,
		Solution: s,
		Weights:  s.X,
		Inputs:   stackedPerStockpile(s),
	}
}

func stackedPerStockpile(s *solution.Solution) []float64 {
	out := make([]float64, len(s.Y))
	for i := range out {
		out[i] = s.StackedMass(i)
	}
	return out
}

// Rebuild replays s.Routes as-is against a freshly recomputed stacked-mass
// vector: moves in the neighborhood package perturb s.Routes in place and
// call this to measure (or undo) the perturbation's effect, satisfying
// neighborhood.Rebuilder.
func (b *Base) Rebuild(s *solution.Solution) {
	b.Solution = s
	b.Weights = s.X
	b.Inputs = stackedPerStockpile(s)
	Build(b)
}

// Run executes the constructive for every output request in order. When
// hasRoutes is true, sol.Routes is assumed already populated (e.g. by a
// neighborhood move) and only Build is replayed.
func Run(rb RouteBuilder, b *Base, hasRoutes bool) {
	if !hasRoutes {
		for k := range b.Problem.Outputs {
			rb.SetRoutes(k)
		}
	}
	Build(b)
}

// Build replays every engine's full accumulated route in one linear pass,
// appending a stack event (if the route entry stacks) and a reclaim event
// (if it reclaims) per stop, advancing that engine's clock and position,
// and finally recomputing Solution.Cost as the makespan across every
// request with at least one reclaim event.
//
// This is a single combined pass rather than the literal one-build-per-
// request loop: see DESIGN.md for why replaying the full route under only
// the latest request's weights (the literal approach) discards earlier
// requests' events.
func Build(b *Base) {
	s := b.Solution
	p := b.Problem

	s.ResetClocks()
	s.ResetEvents()

	for eng, route := range s.Routes {
		e := p.Engines[eng]
		pos := s.EnginePos[eng]

		for _, entry := range route {
			stp := entry.Stockpile
			k := entry.Request

			setupTime := 0.0
			duration := 0.0
			if e.CanReclaim() {
				duration = round2(b.Weights[stp][k] / e.SpeedReclaim)
			}
			timeTravel := p.TimeTravel[pos][stp]

			if entry.Activity == solution.Stack || entry.Activity == solution.Both {
				stackDuration := 0.0
				if e.CanStack() {
					stackDuration = round2(b.Inputs[stp] / e.SpeedStack)
				}
				s.Stacks = append(s.Stacks, solution.StackEvent{
					Weight:    round2(b.Inputs[stp]),
					Stockpile: stp,
					Engine:    eng,
					StartTime: round2(s.EngineClock[eng] + timeTravel),
					Duration:  stackDuration,
				})
				s.EngineClock[eng] += stackDuration
				setupTime += p.TimeTravel[stp][stp]
				b.Inputs[stp] = 0
			}

			if entry.Activity == solution.Reclaim || entry.Activity == solution.Both {
				s.Reclaims = append(s.Reclaims, solution.ReclaimEvent{
					Weight:    round2(b.Weights[stp][k]),
					Stockpile: stp,
					Engine:    eng,
					StartTime: round2(s.EngineClock[eng] + timeTravel + setupTime),
					Duration:  duration,
					Request:   k,
				})
			}

			s.EngineClock[eng] += duration + timeTravel
			pos = stp
		}

		s.EnginePos[eng] = pos
	}

	s.UpdateCost(len(p.Outputs))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
