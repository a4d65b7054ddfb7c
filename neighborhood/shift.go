package neighborhood

import (
	"github.com/upmsp/upmsp/problem"
	"github.com/upmsp/upmsp/rngsrc"
	"github.com/upmsp/upmsp/solution"
)

const genMoveRetries = 1000

func removeAt(route []solution.RouteEntry, idx int) (solution.RouteEntry, []solution.RouteEntry) {
	entry := route[idx]
	out := append([]solution.RouteEntry(nil), route[:idx]...)
	out = append(out, route[idx+1:]...)
	return entry, out
}

func insertAt(route []solution.RouteEntry, idx int, entry solution.RouteEntry) []solution.RouteEntry {
	out := make([]solution.RouteEntry, 0, len(route)+1)
	out = append(out, route[:idx]...)
	out = append(out, entry)
	out = append(out, route[idx:]...)
	return out
}

// shift re-schedules one job from a random engine's route to another
// position in the same route. pickEngine is a field, not a method other
// variants override, so SmartShift can plug in its makespan-restricted
// selection without relying on virtual dispatch through embedding (which
// Go doesn't have).
type shift struct {
	base
	pickEngine func(s *solution.Solution) int

	engine  int
	job     solution.RouteEntry
	pos     int
	applied bool
}

func newShift(p problem.Problem, rebuild Rebuilder, rng *rngsrc.Source) *shift {
	m := &shift{base: newBase("Shift", p, rebuild, rng)}
	m.pickEngine = func(s *solution.Solution) int { return m.rng.Intn(len(s.Routes)) }
	return m
}

func newSmartShift(p problem.Problem, rebuild Rebuilder, rng *rngsrc.Source) *shift {
	m := &shift{base: newBase("SmartShift", p, rebuild, rng)}
	m.pickEngine = func(s *solution.Solution) int {
		candidates := maxDurationEngines(s)
		if len(candidates) == 0 {
			return m.rng.Intn(len(s.Routes))
		}
		return candidates[m.rng.Intn(len(candidates))]
	}
	return m
}

func (m *shift) Reset(s *solution.Solution) {
	m.engine = m.pickEngine(s)
	route := s.Routes[m.engine]
	if len(route) == 0 {
		m.pos = 0
		m.job = solution.RouteEntry{}
		return
	}
	m.pos = m.rng.Intn(len(route))
	m.job = route[m.pos]
}

func (m *shift) GenMove(s *solution.Solution) {
	m.Reset(s)
	for i := 0; i < genMoveRetries; i++ {
		m.engine = m.pickEngine(s)
		if m.HasMove(s) {
			break
		}
	}
}

func (m *shift) HasMove(s *solution.Solution) bool {
	return len(s.Routes[m.engine]) > 1
}

func (m *shift) DoMove(s *solution.Solution) float64 {
	m.applied = m.HasMove(s)
	if m.applied {
		route := s.Routes[m.engine]
		m.pos = m.rng.Intn(len(route))
		m.job, route = removeAt(route, m.pos)

		newPos := m.rng.Intn(len(route) + 1)
		route = insertAt(route, newPos, m.job)
		s.Routes[m.engine] = route
	}
	return m.doMove(s)
}

func (m *shift) Accept() { m.accept() }

func (m *shift) Reject(s *solution.Solution) {
	m.reject()
	if !m.applied {
		m.rebuild.Rebuild(s)
		return
	}
	route := s.Routes[m.engine]
	for i, e := range route {
		if e == m.job {
			_, route = removeAt(route, i)
			break
		}
	}
	if m.pos > len(route) {
		m.pos = len(route)
	}
	s.Routes[m.engine] = insertAt(route, m.pos, m.job)
	m.rebuild.Rebuild(s)
}
