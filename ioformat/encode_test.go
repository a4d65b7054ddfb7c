package ioformat

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upmsp/upmsp/problem"
	"github.com/upmsp/upmsp/solution"
)

func TestWriteSolution_NullObjectiveWhenInfeasible(t *testing.T) {
	p := problem.Problem{Outputs: []problem.Output{{ID: 1}}}
	s := solution.New(p)
	s.Gap = []float64{1}

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteSolution(path, p, s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Nil(t, doc["objective"])
}

func TestWriteSolution_RoundTripsEvents(t *testing.T) {
	p := problem.Problem{
		Stockpiles: []problem.Stockpile{{ID: 1}},
		Engines:    []problem.Engine{{ID: 1}},
		Outputs:    []problem.Output{{ID: 1, Weight: 50}},
	}
	s := solution.New(p)
	obj := 12.5
	s.Objective = &obj
	s.Gap = []float64{0}
	s.Stacks = []solution.StackEvent{{Weight: 10, Stockpile: 0, Engine: 0, StartTime: 0, Duration: 1}}
	s.Reclaims = []solution.ReclaimEvent{{Weight: 50, Stockpile: 0, Engine: 0, StartTime: 1, Duration: 1, Request: 0}}

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteSolution(path, p, s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc solutionSchema
	require.NoError(t, json.Unmarshal(data, &doc))
	require.NotNil(t, doc.Objective)
	assert.Equal(t, 12.5, *doc.Objective)
	require.Len(t, doc.Stacks, 1)
	require.Len(t, doc.Reclaims, 1)
	assert.Equal(t, 0, doc.Reclaims[0].Output)
}

func TestWriteProblem_ReadProblem_RoundTrip(t *testing.T) {
	p := problem.Problem{
		Info: problem.Info{Name: "rt", Omega1: 1, Omega2: 1},
		Stockpiles: []problem.Stockpile{
			{ID: 1, Position: 0, Yard: 0, Rails: []int{0}, Capacity: 100, WeightIni: 50,
				QualityIni: []problem.Quality{{Parameter: "Fe", Value: 62}}},
		},
		Engines: []problem.Engine{
			{ID: 1, SpeedStack: 20, SpeedReclaim: 30, PosIni: 0, Rail: 0, Yards: []int{0}},
		},
		Inputs: []problem.Input{
			{ID: 1, Weight: 10, Quality: []problem.Quality{{Parameter: "Fe", Value: 61}}, Time: 1},
		},
		Outputs: []problem.Output{
			{ID: 1, Destination: 1, Weight: 40, Time: 2,
				Quality: []problem.QualityRequest{{Parameter: "Fe", Minimum: 55, Maximum: 65, Goal: 60, Importance: 1}}},
		},
		DistancesTravel: [][]float64{{0}},
		TimeTravel:      [][]float64{{0}},
	}

	path := filepath.Join(t.TempDir(), "problem.json")
	require.NoError(t, WriteProblem(path, p))

	got, err := ReadProblem(path)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}
