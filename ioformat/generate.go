package ioformat

import (
	"fmt"
	"math"

	"github.com/upmsp/upmsp/problem"
	"github.com/upmsp/upmsp/rngsrc"
)

// qualityParameters names the six chemical-composition parameters every
// generated stockpile/input carries, iron ore's usual assay panel,
// matching original_source/src/gen.py's six hard-coded quality slots,
// which the Python generator leaves unnamed.
var qualityParameters = []string{"Fe", "SiO2", "Al2O3", "P", "Mn", "Moisture"}

// GenerateParams bounds a random instance: counts and a variance factor,
// matching gen.py's instance_gen keyword arguments.
type GenerateParams struct {
	Name       string
	Stockpiles int
	Capacity   float64
	Outputs    int
	Weight     float64
	Inputs     int
	Engines    int
	Variant    float64
}

// DefaultGenerateParams mirrors instance_gen's own defaults.
func DefaultGenerateParams() GenerateParams {
	return GenerateParams{
		Stockpiles: 4,
		Capacity:   400,
		Outputs:    1,
		Weight:     1000,
		Inputs:     1,
		Engines:    2,
		Variant:    0.2,
	}
}

// Generate builds a random Problem instance from params, reading every
// random draw from rng so a generated instance is reproducible for a fixed
// seed, per spec §5. Every stockpile is reachable by every engine's rail
// (one rail id per engine, listed on every stockpile) and every engine
// sees a single yard, mirroring gen.py's stockpiles-list-every-engine
// connectivity without this repository's rail/yard vocabulary losing
// meaning for a single-yard instance.
func Generate(params GenerateParams, rng *rngsrc.Source) problem.Problem {
	name := params.Name
	if name == "" {
		name = fmt.Sprintf("Instance_R%d", rng.IntRange(1, 1000))
	}

	lb := 1 - params.Variant
	ub := 1 + params.Variant

	rails := make([]int, params.Engines)
	for e := range rails {
		rails[e] = e
	}

	capacities := make([]float64, params.Stockpiles)
	for i := range capacities {
		capacities[i] = float64(rng.IntRange(int(lb*params.Capacity), int(ub*params.Capacity)))
	}

	stockpiles := make([]problem.Stockpile, params.Stockpiles)
	for i, c := range capacities {
		stockpiles[i] = problem.Stockpile{
			ID:         i + 1,
			Position:   i,
			Yard:       0,
			Rails:      append([]int(nil), rails...),
			Capacity:   c,
			WeightIni:  float64(rng.IntRange(int(lb*c), int(c))),
			QualityIni: randomQuality(rng, lb, ub),
		}
	}

	engines := make([]problem.Engine, params.Engines)
	for e := range engines {
		engines[e] = problem.Engine{
			ID:           e + 1,
			SpeedStack:   round1(20 + rng.Float64()*30),
			SpeedReclaim: round1(20 + rng.Float64()*30),
			PosIni:       rng.Intn(params.Stockpiles),
			Rail:         e,
			Yards:        []int{0},
		}
	}

	src := 0
	if params.Stockpiles > 1 {
		src = rng.IntRange(1, params.Stockpiles-1)
	}
	inputs := make([]problem.Input, params.Inputs)
	for i := range inputs {
		inputs[i] = problem.Input{
			ID:      i + 1,
			Weight:  params.Variant * capacities[src],
			Quality: randomQuality(rng, lb, ub),
			Time:    round1(rng.Float64() * 10),
		}
	}

	outputs := make([]problem.Output, params.Outputs)
	for i := range outputs {
		outputs[i] = problem.Output{
			ID:          i + 1,
			Destination: i + 1,
			Weight:      float64(rng.IntRange(int(lb*params.Weight), int(ub*params.Weight))),
			Quality:     randomQualityRequest(rng),
			Time:        round1(rng.Float64() * 10),
		}
	}

	n := params.Stockpiles
	dist := make([][]float64, n)
	travel := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		travel[i] = make([]float64, n)
		for j := range dist[i] {
			d := i - j
			if d < 0 {
				d = -d
			}
			dist[i][j] = float64(d)
			travel[i][j] = float64(d)*20.0 + 10.0
		}
	}

	return problem.Problem{
		Info:            problem.Info{Name: name, Omega1: 1, Omega2: 1},
		Stockpiles:      stockpiles,
		Engines:         engines,
		Inputs:          inputs,
		Outputs:         outputs,
		DistancesTravel: dist,
		TimeTravel:      travel,
	}
}

func randomQuality(rng *rngsrc.Source, lb, ub float64) []problem.Quality {
	bounds := [][2]float64{
		{55 * lb, 100},
		{0, 1.5 * ub},
		{0, 5 * ub},
		{0, 5 * ub},
		{0, 1 * ub},
		{3.5 * lb, 5 * ub},
	}
	out := make([]problem.Quality, len(qualityParameters))
	for i, name := range qualityParameters {
		lo, hi := bounds[i][0], bounds[i][1]
		out[i] = problem.Quality{Parameter: name, Value: round2(lo + rng.Float64()*(hi-lo))}
	}
	return out
}

func randomQualityRequest(rng *rngsrc.Source) []problem.QualityRequest {
	goalBounds := [][2]float64{
		{55, 100}, {0, 1.5}, {0, 0.5}, {0, 0.5}, {0, 1}, {3.5, 5},
	}
	upper := []float64{100, 1.5, 0.5, 0.5, 1.0, 5}
	lower := []float64{55, 0, 0, 0, 0, 3.5}

	out := make([]problem.QualityRequest, len(qualityParameters))
	for i, name := range qualityParameters {
		lo, hi := goalBounds[i][0], goalBounds[i][1]
		out[i] = problem.QualityRequest{
			Parameter:  name,
			Goal:       round2(lo + rng.Float64()*(hi-lo)),
			Maximum:    upper[i],
			Minimum:    lower[i],
			Importance: 1,
		}
	}
	return out
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
