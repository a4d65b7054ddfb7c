package constructive

import (
	"github.com/upmsp/upmsp/problem"
	"github.com/upmsp/upmsp/solution"
)

// PreModel generates an unfiltered route: every engine visits every
// stockpile reachable from its rail, in nearest-first order, regardless of
// whether the current request needs mass from it. Reclaim durations for a
// stockpile this request doesn't touch come out to zero, those entries
// stay in the route rather than being dropped, so a later neighborhood move
// can still grow them (see DESIGN.md, constructive entry, "Open question
// preserved, not fixed").
type PreModel struct {
	Base

	// feedBack is [request][stockpile], seeded to a large default (no
	// stockpile has been shown reachable yet) and dropped to 1 as soon as
	// some engine's route touches it for that request. In the literal
	// Python this distinction is lost immediately: add_weights only checks
	// "> 0", and both the default and the touched value are positive, so
	// every cell ends up re-randomized regardless. Preserved here for
	// fidelity, not because it changes FeedBack's effect on SetWeights.
	// See DESIGN.md.
	feedBack [][]float64
}

// feedBackDefault mirrors premodel.py's 1e3 placeholder for "not yet shown
// reachable by this request".
const feedBackDefault = 1e3

// NewPreModel builds a PreModel constructive over p, reading its mass
// decisions from s.X/s.Y.
func NewPreModel(p problem.Problem, s *solution.Solution) *PreModel {
	pm := &PreModel{Base: newBase(p, s)}
	pm.feedBack = make([][]float64, len(p.Outputs))
	for k := range pm.feedBack {
		row := make([]float64, len(p.Stockpiles))
		for i := range row {
			row[i] = feedBackDefault
		}
		pm.feedBack[k] = row
	}
	return pm
}

// FeedBack returns the reachability matrix built while running, one row per
// output request: mo.SetWeights(omp.WeightX/WeightY, feedBack, rng) uses it
// to seed the blending model's first solve before any real allocation
// exists.
func (pm *PreModel) FeedBack() [][]float64 { return pm.feedBack }

// Run executes the constructive for every output request. hasRoutes mirrors
// Constructive.run's flag: true replays sol.Routes as already populated.
func (pm *PreModel) Run(hasRoutes bool) { Run(pm, &pm.Base, hasRoutes) }

// SetRoutes builds every engine's full nearest-stockpile-first route for
// request, then drains the merged heap straight into sol.Routes with no
// per-stockpile deduplication, PreModel deliberately lets two engines both
// claim the same stockpile.
func (pm *PreModel) SetRoutes(request int) {
	p := pm.Problem
	s := pm.Solution

	var candidates []candidate
	localStart := append([]float64(nil), s.EngineClock...)

	for eng, e := range p.Engines {
		candidates = append(candidates, pm.routeForEngine(eng, e, localStart)...)
	}

	h := newCandidateHeap(candidates)
	for {
		c, ok := h.popNext()
		if !ok {
			break
		}
		s.Routes[c.Engine] = append(s.Routes[c.Engine], solution.RouteEntry{
			Stockpile: c.Stockpile,
			Activity:  solution.Activity(c.Activity),
			Request:   request,
		})
		pm.feedBack[request][c.Stockpile] = 1
	}
}

// routeForEngine walks outward from the engine's current position, each
// step picking the nearest not-yet-visited reachable stockpile, exactly
// like PreModel.set_route's greedy nearest-neighbor walk. Every stop is
// tagged Reclaim; PostModel is what decides whether a stop also stacks.
func (pm *PreModel) routeForEngine(eng int, e problem.Engine, start []float64) []candidate {
	p := pm.Problem
	s := pm.Solution

	visited := make([]bool, len(p.Stockpiles))
	pos := s.EnginePos[eng]

	var route []candidate
	for {
		best := -1
		bestTime := 0.0
		for i, stp := range p.Stockpiles {
			if visited[i] || !stp.HasRail(e.Rail) {
				continue
			}
			t := p.TimeTravel[pos][i] + start[eng]
			if best == -1 || t < bestTime {
				best = i
				bestTime = t
			}
		}
		if best == -1 {
			break
		}

		start[eng] += p.TimeTravel[pos][best]
		route = append(route, candidate{
			AccessTime: bestTime,
			Engine:     eng,
			Stockpile:  best,
			Activity:   byte(solution.Reclaim),
		})
		visited[best] = true
		pos = best
	}

	return route
}
