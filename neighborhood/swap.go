package neighborhood

import (
	"github.com/upmsp/upmsp/problem"
	"github.com/upmsp/upmsp/rngsrc"
	"github.com/upmsp/upmsp/solution"
)

// swap exchanges one job between two different engines' routes, removing
// each and reinserting it into the other route at a freshly drawn random
// position (not its counterpart's original slot), see DESIGN.md for how
// this differs from simpleSwap's direct positional exchange.
type swap struct {
	base
	pickEngines func(s *solution.Solution) (int, int)

	engine1, engine2 int
	job1, job2       solution.RouteEntry
	pos1, pos2       int
	applied          bool
}

func newSwap(p problem.Problem, rebuild Rebuilder, rng *rngsrc.Source) *swap {
	m := &swap{base: newBase("Swap", p, rebuild, rng)}
	m.pickEngines = m.pickUniformEngines
	return m
}

func newSmartSwap(p problem.Problem, rebuild Rebuilder, rng *rngsrc.Source) *swap {
	m := &swap{base: newBase("SmartSwap", p, rebuild, rng)}
	m.pickEngines = m.pickMakespanEngines
	return m
}

func (m *swap) pickUniformEngines(s *solution.Solution) (int, int) {
	e1 := m.rng.Intn(len(s.Routes))
	e2 := m.rng.Intn(len(s.Routes))
	if len(s.Routes) > 1 {
		for e2 == e1 {
			e2 = m.rng.Intn(len(s.Routes))
		}
	}
	return e1, e2
}

// pickMakespanEngines restricts the first engine to one holding the
// longest single reclaim event, as the original's reset() does, and picks
// its neighbor on the yard (engine index + 1, wrapping to -1 when that
// falls off the end) as the second.
func (m *swap) pickMakespanEngines(s *solution.Solution) (int, int) {
	candidates := maxDurationEngines(s)
	if len(candidates) == 0 {
		return m.pickUniformEngines(s)
	}
	e1 := candidates[m.rng.Intn(len(candidates))]
	e2 := e1 + 1
	if e2 >= len(s.Routes) {
		e2 = e1 - 1
	}
	if e2 < 0 {
		e2 = e1
	}
	return e1, e2
}

func (m *swap) Reset(s *solution.Solution) {
	m.engine1, m.engine2 = m.pickEngines(s)
	m.pickJobs(s)
}

func (m *swap) pickJobs(s *solution.Solution) {
	r1, r2 := s.Routes[m.engine1], s.Routes[m.engine2]
	if len(r1) == 0 || len(r2) == 0 {
		m.job1, m.job2 = solution.RouteEntry{}, solution.RouteEntry{}
		m.pos1, m.pos2 = 0, 0
		return
	}
	m.pos1 = m.rng.Intn(len(r1))
	m.pos2 = m.rng.Intn(len(r2))
	m.job1 = r1[m.pos1]
	m.job2 = r2[m.pos2]
}

func (m *swap) GenMove(s *solution.Solution) {
	m.Reset(s)
	for i := 0; i < genMoveRetries; i++ {
		m.pickJobs(s)
		if m.HasMove(s) {
			break
		}
	}
}

func (m *swap) HasMove(s *solution.Solution) bool {
	if len(s.Routes[m.engine1]) == 0 || len(s.Routes[m.engine2]) == 0 {
		return false
	}
	return m.job1.Activity == m.job2.Activity
}

func (m *swap) DoMove(s *solution.Solution) float64 {
	m.applied = m.HasMove(s)
	if m.applied {
		r1, r2 := s.Routes[m.engine1], s.Routes[m.engine2]
		m.pos1 = indexOf(r1, m.job1)
		m.pos2 = indexOf(r2, m.job2)

		_, r1 = removeAt(r1, m.pos1)
		_, r2 = removeAt(r2, m.pos2)

		r1 = insertAt(r1, m.rng.Intn(len(r1)+1), m.job2)
		r2 = insertAt(r2, m.rng.Intn(len(r2)+1), m.job1)

		s.Routes[m.engine1] = r1
		s.Routes[m.engine2] = r2
	}
	return m.doMove(s)
}

func (m *swap) Accept() { m.accept() }

func (m *swap) Reject(s *solution.Solution) {
	m.reject()
	if !m.applied {
		m.rebuild.Rebuild(s)
		return
	}
	r1, r2 := s.Routes[m.engine1], s.Routes[m.engine2]
	if idx := indexOf(r1, m.job2); idx >= 0 {
		_, r1 = removeAt(r1, idx)
	}
	if idx := indexOf(r2, m.job1); idx >= 0 {
		_, r2 = removeAt(r2, idx)
	}
	s.Routes[m.engine1] = insertAt(r1, clampIdx(m.pos1, len(r1)), m.job1)
	s.Routes[m.engine2] = insertAt(r2, clampIdx(m.pos2, len(r2)), m.job2)
	m.rebuild.Rebuild(s)
}

func indexOf(route []solution.RouteEntry, entry solution.RouteEntry) int {
	for i, e := range route {
		if e == entry {
			return i
		}
	}
	return -1
}

func clampIdx(idx, length int) int {
	if idx > length {
		return length
	}
	if idx < 0 {
		return 0
	}
	return idx
}
