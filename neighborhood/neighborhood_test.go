package neighborhood

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upmsp/upmsp/problem"
	"github.com/upmsp/upmsp/rngsrc"
	"github.com/upmsp/upmsp/solution"
)

type fakeRebuilder struct{ calls int }

func (f *fakeRebuilder) Rebuild(s *solution.Solution) {
	f.calls++
	s.Cost = s.Cost + 1 // any deterministic change is enough to exercise delta bookkeeping
}

func threeEngineProblem() problem.Problem {
	return problem.Problem{
		Engines: []problem.Engine{{ID: 1}, {ID: 2}, {ID: 3}},
	}
}

func twoJobSolution() *solution.Solution {
	p := threeEngineProblem()
	s := solution.New(p)
	s.Routes[0] = []solution.RouteEntry{
		{Stockpile: 0, Activity: solution.Reclaim, Request: 0},
		{Stockpile: 1, Activity: solution.Reclaim, Request: 0},
	}
	s.Routes[1] = []solution.RouteEntry{
		{Stockpile: 2, Activity: solution.Reclaim, Request: 1},
	}
	s.Cost = 10
	return s
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("shift"))
	assert.True(t, IsValidName("smartsimpleswap"))
	assert.False(t, IsValidName("bogus"))
}

func TestNew_PanicsOnUnknownName(t *testing.T) {
	assert.Panics(t, func() {
		New("bogus", threeEngineProblem(), &fakeRebuilder{}, rngsrc.New(1))
	})
}

func TestShift_DoMoveThenRejectRestoresRoute(t *testing.T) {
	s := twoJobSolution()
	original := append([]solution.RouteEntry(nil), s.Routes[0]...)

	rb := &fakeRebuilder{}
	m := New("shift", threeEngineProblem(), rb, rngsrc.New(5))
	m.(*shift).engine = 0
	require.True(t, m.HasMove(s))

	delta := m.DoMove(s)
	assert.Equal(t, 1.0, delta)
	m.Reject(s)

	assert.Equal(t, original, s.Routes[0])
	assert.Equal(t, 2, rb.calls) // one from DoMove, one from Reject's undo replay
}

func TestShift_DoMoveThenAcceptUpdatesStats(t *testing.T) {
	s := twoJobSolution()
	rb := &fakeRebuilder{}
	m := New("shift", threeEngineProblem(), rb, rngsrc.New(9))
	m.(*shift).engine = 0

	m.DoMove(s)
	m.Accept()

	stats := m.Stats()
	assert.Equal(t, 1, stats.Iters)
	assert.Equal(t, 1, stats.Worsens)
}

func TestSwitch_HasMoveRequiresAtLeastTwoJobs(t *testing.T) {
	s := twoJobSolution()
	rb := &fakeRebuilder{}
	m := New("switch", threeEngineProblem(), rb, rngsrc.New(2))
	sw := m.(*switchMove)
	sw.engine = 1 // only one job
	assert.False(t, m.HasMove(s))
	sw.engine = 0 // two jobs
	assert.True(t, m.HasMove(s))
}

func TestSimpleSwap_RequiresDistinctNonEmptyEngines(t *testing.T) {
	s := twoJobSolution()
	rb := &fakeRebuilder{}
	m := New("simpleswap", threeEngineProblem(), rb, rngsrc.New(3))
	ss := m.(*simpleSwap)
	ss.engine1, ss.engine2 = 0, 1
	assert.True(t, m.HasMove(s))
	ss.engine1, ss.engine2 = 0, 2 // engine 2 has an empty route
	assert.False(t, m.HasMove(s))
}

func TestMaxDurationEngines_TiesOnSingleLongestEvent(t *testing.T) {
	s := twoJobSolution()
	s.Reclaims = []solution.ReclaimEvent{
		{Engine: 0, Duration: 5},
		{Engine: 1, Duration: 9},
		{Engine: 2, Duration: 9},
	}
	engines := maxDurationEngines(s)
	assert.ElementsMatch(t, []int{1, 2}, engines)
}

func TestDoMove_PanicsWhenCalledTwiceWithoutAcceptOrReject(t *testing.T) {
	s := twoJobSolution()
	rb := &fakeRebuilder{}
	m := New("shift", threeEngineProblem(), rb, rngsrc.New(1))
	m.(*shift).engine = 0

	m.DoMove(s)
	assert.Panics(t, func() { m.DoMove(s) })
}
