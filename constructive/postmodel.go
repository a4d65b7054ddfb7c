package constructive

import (
	"github.com/upmsp/upmsp/problem"
	"github.com/upmsp/upmsp/solution"
)

// PostModel generates a mass-filtered route: an engine only visits a
// stockpile this request actually draws mass from, and each stop's
// activity (Reclaim, Stack, or Both) reflects whether that stockpile also
// still has unstacked input mass waiting. Ties between engines contending
// for the same stockpile are resolved by the S/B/R upgrade rule in
// solution.mergeJob.
type PostModel struct {
	Base
}

// NewPostModel builds a PostModel constructive over p.
func NewPostModel(p problem.Problem, s *solution.Solution) *PostModel {
	return &PostModel{Base: newBase(p, s)}
}

// Run executes the constructive for every output request.
func (pm *PostModel) Run(hasRoutes bool) { Run(pm, &pm.Base, hasRoutes) }

// SetRoutes builds every engine's mass-filtered route for request, merges
// them by access time, and appends the upgraded, deduplicated result to
// sol.Routes.
func (pm *PostModel) SetRoutes(request int) {
	p := pm.Problem
	s := pm.Solution

	var candidates []candidate
	localStart := append([]float64(nil), s.EngineClock...)

	for eng, e := range p.Engines {
		candidates = append(candidates, pm.routeForEngine(eng, e, request, localStart)...)
	}

	h := newCandidateHeap(candidates)

	markers := make([]solution.Activity, len(p.Stockpiles))
	hasMarker := make([]bool, len(p.Stockpiles))

	for {
		c, ok := h.popNext()
		if !ok {
			break
		}
		atv := solution.Activity(c.Activity)
		toAppend, newMarker, emit := solution.MergeJob(markers[c.Stockpile], hasMarker[c.Stockpile], atv)
		if !emit {
			continue
		}
		markers[c.Stockpile] = newMarker
		hasMarker[c.Stockpile] = true

		s.Routes[c.Engine] = append(s.Routes[c.Engine], solution.RouteEntry{
			Stockpile: c.Stockpile,
			Activity:  toAppend,
			Request:   request,
		})
	}
}

// routeForEngine walks outward from the engine's current position,
// restricted to stockpiles this request draws reclaim mass from, deciding
// Reclaim/Stack/Both per stop exactly like PostModel.set_route.
func (pm *PostModel) routeForEngine(eng int, e problem.Engine, request int, start []float64) []candidate {
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
			if pm.Weights[i][request] <= 0 {
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

		atv := solution.Reclaim
		duration := 0.0
		if e.CanReclaim() {
			duration = round1(pm.Weights[best][request] / e.SpeedReclaim)
		}
		if pm.Inputs[best] > 0 {
			setup := 0.0
			if e.CanReclaim() {
				setup = p.TimeTravel[best][best]
			}
			if e.CanStack() {
				duration += round1(pm.Inputs[best]/e.SpeedStack) + setup
				if e.CanReclaim() {
					atv = solution.Both
				} else {
					atv = solution.Stack
				}
			}
		}

		if duration > 0 {
			route = append(route, candidate{
				AccessTime: bestTime,
				Engine:     eng,
				Stockpile:  best,
				Activity:   byte(atv),
			})
			start[eng] += duration + p.TimeTravel[pos][best]
		}
		visited[best] = true
		pos = best
	}

	return route
}
