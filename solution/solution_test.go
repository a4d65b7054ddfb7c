package solution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upmsp/upmsp/problem"
)

func oneStockpileProblem() problem.Problem {
	return problem.Problem{
		Stockpiles: []problem.Stockpile{
			{ID: 1, Capacity: 100, WeightIni: 100, QualityIni: []problem.Quality{{Parameter: "Fe", Value: 60}}},
		},
		Engines: []problem.Engine{
			{ID: 1, SpeedStack: 50, SpeedReclaim: 50, PosIni: 0, Rail: 1},
		},
		Outputs: []problem.Output{
			{ID: 1, Weight: 50, Quality: []problem.QualityRequest{{Parameter: "Fe", Minimum: 55, Maximum: 65, Goal: 60, Importance: 1}}},
		},
	}
}

func TestNew_DefaultsEnginesToPosIni(t *testing.T) {
	p := oneStockpileProblem()
	p.Engines[0].PosIni = 3
	s := New(p)
	assert.Equal(t, []int{3}, s.EnginePos)
	assert.Equal(t, []float64{1}, s.Gap)
}

func TestResetClocks_RestoresOriginalPositions(t *testing.T) {
	p := oneStockpileProblem()
	s := New(p)
	s.EnginePos[0] = 7
	s.EngineClock[0] = 42
	s.ResetClocks()
	assert.Equal(t, 0, s.EnginePos[0])
	assert.Zero(t, s.EngineClock[0])
}

func TestResetEvents_PreservesRoutesAndMass(t *testing.T) {
	p := oneStockpileProblem()
	s := New(p)
	s.Routes[0] = []RouteEntry{{Stockpile: 0, Activity: Reclaim, Request: 0}}
	s.X = [][]float64{{50}}
	s.Stacks = append(s.Stacks, StackEvent{Weight: 10})
	s.Reclaims = append(s.Reclaims, ReclaimEvent{Weight: 50})

	s.ResetEvents()

	assert.Empty(t, s.Stacks)
	assert.Empty(t, s.Reclaims)
	assert.NotEmpty(t, s.Routes[0])
	assert.NotNil(t, s.X)
}

func TestWorkTime_NoEvents(t *testing.T) {
	s := New(oneStockpileProblem())
	_, _, err := s.WorkTime(0)
	assert.ErrorIs(t, err, ErrEmptyReclaims)
}

func TestWorkTime_MinMaxAcrossEngines(t *testing.T) {
	s := New(oneStockpileProblem())
	s.Reclaims = []ReclaimEvent{
		{StartTime: 5, Duration: 2, Request: 0},
		{StartTime: 1, Duration: 3, Request: 0},
		{StartTime: 100, Duration: 1, Request: 1},
	}
	start, end, err := s.WorkTime(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, start)
	assert.Equal(t, 7.0, end)
}

func TestUpdateCost_Makespan(t *testing.T) {
	s := New(oneStockpileProblem())
	s.Reclaims = []ReclaimEvent{
		{StartTime: 0, Duration: 10, Request: 0},
		{StartTime: 0, Duration: 25, Request: 1},
	}
	s.UpdateCost(2)
	assert.Equal(t, 25.0, s.Cost)
}

func TestDeepCopy_Independence(t *testing.T) {
	s := New(oneStockpileProblem())
	s.Routes[0] = []RouteEntry{{Stockpile: 0, Activity: Reclaim}}
	obj := 12.5
	s.Objective = &obj

	cp := s.DeepCopy()
	cp.Routes[0][0].Stockpile = 9
	*cp.Objective = 0

	assert.Equal(t, 0, s.Routes[0][0].Stockpile)
	assert.Equal(t, 12.5, *s.Objective)
}

func TestSetDeliveries_Scenario1(t *testing.T) {
	p := oneStockpileProblem()
	s := New(p)
	obj := 0.0
	s.SetObjective(&obj, [][]float64{{50}}, nil)
	s.Reclaims = []ReclaimEvent{{Weight: 50, Stockpile: 0, Engine: 0, StartTime: 0, Duration: 1, Request: 0}}

	require.NoError(t, s.SetDeliveries(p))
	require.Len(t, s.Deliveries, 1)
	d := s.Deliveries[0]
	assert.Equal(t, 50.0, d.Weight)
	assert.Equal(t, 1.0, d.Duration)
	require.Len(t, d.Quality, 1)
	assert.Equal(t, 60.0, d.Quality[0].Value)
	assert.Equal(t, 0.0, s.Gap[0])
}

func TestSetDeliveries_InfeasibleWhenZeroMass(t *testing.T) {
	p := oneStockpileProblem()
	s := New(p)
	obj := 0.0
	s.SetObjective(&obj, [][]float64{{0}}, nil)
	s.Reclaims = []ReclaimEvent{{Weight: 0, Request: 0, Duration: 1}}

	err := s.SetDeliveries(p)
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestMergeJob_UpgradeRule(t *testing.T) {
	atv, marker, emit := mergeJob(0, false, Stack)
	assert.Equal(t, Stack, atv)
	assert.Equal(t, Stack, marker)
	assert.True(t, emit)

	atv, marker, emit = mergeJob(Stack, true, Both)
	assert.Equal(t, Reclaim, atv)
	assert.Equal(t, Both, marker)
	assert.True(t, emit)

	atv, marker, emit = mergeJob(Reclaim, true, Both)
	assert.Equal(t, Stack, atv)
	assert.Equal(t, Both, marker)
	assert.True(t, emit)

	_, _, emit = mergeJob(Both, true, Reclaim)
	assert.False(t, emit)
}

func TestMergeJob_SameActivityDuplicateIsDropped(t *testing.T) {
	// postmodel.py:176 — a second engine's candidate for a stockpile
	// already claimed with the same activity is skipped, not appended
	// again, so exactly one engine ends up reclaiming it.
	_, marker, emit := mergeJob(Reclaim, true, Reclaim)
	assert.False(t, emit)
	assert.Equal(t, Reclaim, marker)

	_, marker, emit = mergeJob(Stack, true, Stack)
	assert.False(t, emit)
	assert.Equal(t, Stack, marker)
}
