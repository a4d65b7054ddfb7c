package neighborhood

import (
	"github.com/upmsp/upmsp/problem"
	"github.com/upmsp/upmsp/rngsrc"
	"github.com/upmsp/upmsp/solution"
)

// switchMove swaps the order of two jobs within a single engine's route.
type switchMove struct {
	base
	pickEngine func(s *solution.Solution) int

	engine     int
	pos1, pos2 int
}

func newSwitch(p problem.Problem, rebuild Rebuilder, rng *rngsrc.Source) *switchMove {
	m := &switchMove{base: newBase("Switch", p, rebuild, rng)}
	m.pickEngine = func(s *solution.Solution) int { return m.rng.Intn(len(s.Routes)) }
	return m
}

func newSmartSwitch(p problem.Problem, rebuild Rebuilder, rng *rngsrc.Source) *switchMove {
	m := &switchMove{base: newBase("SmartSwitch", p, rebuild, rng)}
	m.pickEngine = func(s *solution.Solution) int {
		candidates := maxDurationEngines(s)
		if len(candidates) == 0 {
			return m.rng.Intn(len(s.Routes))
		}
		return candidates[m.rng.Intn(len(candidates))]
	}
	return m
}

func (m *switchMove) Reset(s *solution.Solution) {
	m.engine = m.pickEngine(s)
	m.pos1, m.pos2 = -1, -1
}

func (m *switchMove) GenMove(s *solution.Solution) {
	m.Reset(s)
	for i := 0; i < genMoveRetries; i++ {
		m.engine = m.pickEngine(s)
		if m.HasMove(s) {
			break
		}
	}
}

func (m *switchMove) HasMove(s *solution.Solution) bool {
	return len(s.Routes[m.engine]) > 1
}

func (m *switchMove) DoMove(s *solution.Solution) float64 {
	if m.HasMove(s) {
		route := s.Routes[m.engine]
		m.pos1, m.pos2 = twoDistinct(m.rng, len(route))
		route[m.pos1], route[m.pos2] = route[m.pos2], route[m.pos1]
	}
	return m.doMove(s)
}

func (m *switchMove) Accept() { m.accept() }

func (m *switchMove) Reject(s *solution.Solution) {
	m.reject()
	route := s.Routes[m.engine]
	if m.pos1 >= 0 && m.pos2 >= 0 {
		route[m.pos1], route[m.pos2] = route[m.pos2], route[m.pos1]
	}
	m.rebuild.Rebuild(s)
}

// twoDistinct draws two distinct indices in [0, n).
func twoDistinct(rng *rngsrc.Source, n int) (int, int) {
	a := rng.Intn(n)
	b := rng.Intn(n)
	for b == a && n > 1 {
		b = rng.Intn(n)
	}
	return a, b
}
