package solution

import (
	"math"

	"github.com/upmsp/upmsp/problem"
)

// Solution is the single mutable aggregate the constructive, neighborhood
// and heuristic packages operate on: OMP mass decisions, per-engine routes,
// per-engine position/clock state, event logs, delivery summaries and cost.
//
// Problem is constructed once and never mutated; Solution owns everything
// that changes while a schedule is built, replayed or perturbed, including
// engine position (pos_ini moved off problem.Engine per spec §9, see DESIGN.md).
type Solution struct {
	Objective *float64
	X         [][]float64 // X[stockpile][request]: mass reclaimed
	Y         [][]float64 // Y[stockpile][input]: mass stacked

	Routes      [][]RouteEntry // Routes[engine]
	EnginePos   []int          // EnginePos[engine]: current stockpile index
	EngineClock []float64      // EngineClock[engine]: elapsed busy time

	Stacks     []StackEvent
	Reclaims   []ReclaimEvent
	Deliveries []Delivery
	Gap        []float64

	Cost          float64
	HasDeliveries bool

	initialEnginePos []int
}

// New builds a fresh Solution for the given Problem: empty mass maps, empty
// routes, engines parked at their Problem-declared starting positions, gap
// initialized to 1 (maximal slack) per output, cost at +Inf until a build.
func New(p problem.Problem) *Solution {
	nEng := len(p.Engines)
	initial := make([]int, nEng)
	for i, e := range p.Engines {
		initial[i] = e.PosIni
	}
	pos := make([]int, nEng)
	copy(pos, initial)

	gap := make([]float64, len(p.Outputs))
	for i := range gap {
		gap[i] = 1
	}

	return &Solution{
		Routes:           make([][]RouteEntry, nEng),
		EnginePos:        pos,
		EngineClock:      make([]float64, nEng),
		Gap:              gap,
		Cost:             math.Inf(1),
		initialEnginePos: initial,
	}
}

// SetObjective records the OMP's solve result: objective value (nil if
// infeasible/unbounded) and the two mass decision matrices.
func (s *Solution) SetObjective(objective *float64, x, y [][]float64) {
	s.Objective = objective
	s.X = x
	s.Y = y
}

// ResetEvents clears the stack/reclaim/delivery logs. Routes and mass
// decisions are preserved, matching spec §3's reset contract; engine
// position/clock are reset separately via ResetClocks. constructive.Build
// calls both at the start of every replay.
func (s *Solution) ResetEvents() {
	s.Stacks = s.Stacks[:0]
	s.Reclaims = s.Reclaims[:0]
	s.Deliveries = nil
	s.HasDeliveries = false
}

// ResetClocks parks every engine back at its original Problem starting
// position and zeroes its elapsed-time clock. Called at the start of every
// constructive Build, which replays all requests' routes in one pass, not
// once per request, see DESIGN.md
// "routes accumulate across requests" for why per-request resets are wrong.
func (s *Solution) ResetClocks() {
	copy(s.EnginePos, s.initialEnginePos)
	for i := range s.EngineClock {
		s.EngineClock[i] = 0
	}
}

// ResetRoutes empties every engine's route. Unlike the literal Python,
// where solution.routes accumulates across every Constructive.run() call
// forever (across feedback rounds, not just within one), a feedback loop
// that re-solves the OMP under new weights calls this first so each round
// rebuilds routes from the current mass decision alone, see DESIGN.md
// "routes must not accumulate across feedback rounds".
func (s *Solution) ResetRoutes() {
	for i := range s.Routes {
		s.Routes[i] = s.Routes[i][:0]
	}
}

// WorkTime returns the [start, end] window of all reclaim events tagged
// with the given request (zero-based index into Problem.Outputs).
func (s *Solution) WorkTime(request int) (start, end float64, err error) {
	start = math.Inf(1)
	end = math.Inf(-1)
	found := false
	for _, r := range s.Reclaims {
		if r.Request != request {
			continue
		}
		found = true
		if r.StartTime < start {
			start = r.StartTime
		}
		if e := r.End(); e > end {
			end = e
		}
	}
	if !found {
		return 0, 0, ErrEmptyReclaims
	}
	return start, end, nil
}

// UpdateCost sets Cost to the makespan: the latest WorkTime end across every
// request with at least one reclaim event. This generalizes spec §4.2's
// "cost ← work_time(k).end" (the request just built) to a single replay
// pass covering every request at once, see DESIGN.md.
func (s *Solution) UpdateCost(numRequests int) {
	makespan := 0.0
	any := false
	for k := 0; k < numRequests; k++ {
		_, end, err := s.WorkTime(k)
		if err != nil {
			continue
		}
		any = true
		if end > makespan {
			makespan = end
		}
	}
	if any {
		s.Cost = makespan
	}
}

// DeepCopy returns an independent copy suitable for remembering an
// incumbent across accept/reject boundaries (spec §5: shallow aliasing of
// mutable routes across that boundary is forbidden).
func (s *Solution) DeepCopy() *Solution {
	cp := &Solution{
		Cost:          s.Cost,
		HasDeliveries: s.HasDeliveries,
	}
	if s.Objective != nil {
		v := *s.Objective
		cp.Objective = &v
	}
	cp.X = copyMatrix(s.X)
	cp.Y = copyMatrix(s.Y)

	cp.Routes = make([][]RouteEntry, len(s.Routes))
	for i, r := range s.Routes {
		cp.Routes[i] = append([]RouteEntry(nil), r...)
	}
	cp.EnginePos = append([]int(nil), s.EnginePos...)
	cp.EngineClock = append([]float64(nil), s.EngineClock...)
	cp.initialEnginePos = append([]int(nil), s.initialEnginePos...)

	cp.Stacks = append([]StackEvent(nil), s.Stacks...)
	cp.Reclaims = append([]ReclaimEvent(nil), s.Reclaims...)
	cp.Deliveries = append([]Delivery(nil), s.Deliveries...)
	cp.Gap = append([]float64(nil), s.Gap...)
	return cp
}

func copyMatrix(m [][]float64) [][]float64 {
	if m == nil {
		return nil
	}
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// StackedMass returns the total mass stacked into stockpile i across every
// input, i.e. sum_h Y[i][h].
func (s *Solution) StackedMass(stockpile int) float64 {
	if stockpile >= len(s.Y) {
		return 0
	}
	total := 0.0
	for _, v := range s.Y[stockpile] {
		total += v
	}
	return total
}
