package problem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoStockpileProblem() Problem {
	return Problem{
		Info: Info{Name: "t", Omega1: 1, Omega2: 1},
		Stockpiles: []Stockpile{
			{ID: 1, Position: 0, Yard: 1, Rails: []int{1}, Capacity: 100, WeightIni: 80},
			{ID: 2, Position: 1, Yard: 1, Rails: []int{1}, Capacity: 100, WeightIni: 80},
		},
		Engines: []Engine{
			{ID: 1, SpeedStack: 50, SpeedReclaim: 50, PosIni: 0, Rail: 1},
		},
		DistancesTravel: [][]float64{{0, 10}, {10, 0}},
		TimeTravel:      [][]float64{{0, 10}, {10, 0}},
	}
}

func TestStockpile_HasRail(t *testing.T) {
	s := Stockpile{Rails: []int{1, 3}}
	assert.True(t, s.HasRail(1))
	assert.True(t, s.HasRail(3))
	assert.False(t, s.HasRail(2))
}

func TestEngine_Capabilities(t *testing.T) {
	reclaimOnly := Engine{SpeedReclaim: 50}
	assert.True(t, reclaimOnly.CanReclaim())
	assert.False(t, reclaimOnly.CanStack())

	both := Engine{SpeedStack: 10, SpeedReclaim: 10}
	assert.True(t, both.CanReclaim())
	assert.True(t, both.CanStack())
}

func TestProblem_Validate_OK(t *testing.T) {
	require.NoError(t, twoStockpileProblem().Validate())
}

func TestProblem_Validate_CapacityExceeded(t *testing.T) {
	p := twoStockpileProblem()
	p.Stockpiles[0].WeightIni = 1000
	assert.Error(t, p.Validate())
}

func TestProblem_Validate_EngineUseless(t *testing.T) {
	p := twoStockpileProblem()
	p.Engines = append(p.Engines, Engine{ID: 2})
	assert.Error(t, p.Validate())
}

func TestProblem_Validate_TravelMatrixShape(t *testing.T) {
	p := twoStockpileProblem()
	p.TimeTravel = [][]float64{{0}}
	assert.Error(t, p.Validate())
}
