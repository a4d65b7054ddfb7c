package ioformat

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/upmsp/upmsp/problem"
)

// ReadProblem decodes a §6-shaped Problem JSON document from path and maps
// it onto the immutable problem.Problem domain type, running Validate
// before returning so a malformed instance is rejected at the driver
// boundary rather than surfacing as a confusing OMP or constructive panic
// downstream.
func ReadProblem(path string) (problem.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return problem.Problem{}, fmt.Errorf("ioformat: reading problem file: %w", err)
	}

	var doc problemSchema
	if err := json.Unmarshal(data, &doc); err != nil {
		return problem.Problem{}, fmt.Errorf("ioformat: decoding problem JSON: %w", err)
	}

	p := problem.Problem{
		Info: problem.Info{
			Name:   doc.Info.Name,
			Omega1: doc.Info.Omega1,
			Omega2: doc.Info.Omega2,
		},
		DistancesTravel: doc.DistancesTravel,
		TimeTravel:      doc.TimeTravel,
	}

	p.Stockpiles = make([]problem.Stockpile, len(doc.Stockpiles))
	for i, s := range doc.Stockpiles {
		p.Stockpiles[i] = problem.Stockpile{
			ID:         s.ID,
			Position:   s.Position,
			Yard:       s.Yard,
			Rails:      s.Rails,
			Capacity:   s.Capacity,
			WeightIni:  s.WeightIni,
			QualityIni: decodeQuality(s.QualityIni),
		}
	}

	p.Engines = make([]problem.Engine, len(doc.Engines))
	for i, e := range doc.Engines {
		p.Engines[i] = problem.Engine{
			ID:           e.ID,
			SpeedStack:   e.SpeedStack,
			SpeedReclaim: e.SpeedReclaim,
			PosIni:       e.PosIni,
			Rail:         e.Rail,
			Yards:        e.Yards,
		}
	}

	p.Inputs = make([]problem.Input, len(doc.Inputs))
	for i, in := range doc.Inputs {
		p.Inputs[i] = problem.Input{
			ID:      in.ID,
			Weight:  in.Weight,
			Quality: decodeQuality(in.Quality),
			Time:    in.Time,
		}
	}

	p.Outputs = make([]problem.Output, len(doc.Outputs))
	for i, out := range doc.Outputs {
		quals := make([]problem.QualityRequest, len(out.Quality))
		for j, q := range out.Quality {
			quals[j] = problem.QualityRequest{
				Parameter:  q.Parameter,
				Minimum:    q.Minimum,
				Maximum:    q.Maximum,
				Goal:       q.Goal,
				Importance: q.Importance,
			}
		}
		p.Outputs[i] = problem.Output{
			ID:          out.ID,
			Destination: out.Destination,
			Weight:      out.Weight,
			Quality:     quals,
			Time:        out.Time,
		}
	}

	if err := p.Validate(); err != nil {
		return problem.Problem{}, fmt.Errorf("ioformat: invalid problem: %w", err)
	}
	return p, nil
}

func decodeQuality(qs []quality) []problem.Quality {
	out := make([]problem.Quality, len(qs))
	for i, q := range qs {
		out[i] = problem.Quality{Parameter: q.Parameter, Value: q.Value}
	}
	return out
}
