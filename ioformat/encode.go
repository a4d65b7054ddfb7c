package ioformat

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/upmsp/upmsp/problem"
	"github.com/upmsp/upmsp/solution"
)

// WriteSolution encodes a Solution against its Problem into the §6-shaped
// Solution JSON document and writes it to path. Solution.Gap/Stacks/
// Reclaims are already rounded to 2 decimals as they are produced
// (constructive.Build, solution.SetDeliveries), and Objective is written as
// the solver returned it, so this is a straight field mapping, not a
// rounding pass.
func WriteSolution(path string, p problem.Problem, s *solution.Solution) error {
	doc := solutionSchema{
		Info: infoSchema{
			Name:   p.Info.Name,
			Omega1: p.Info.Omega1,
			Omega2: p.Info.Omega2,
		},
		Objective: s.Objective,
		Gap:       s.Gap,
	}

	doc.Stacks = make([]stackEventSchema, len(s.Stacks))
	for i, ev := range s.Stacks {
		doc.Stacks[i] = stackEventSchema{
			Weight:    ev.Weight,
			Stockpile: ev.Stockpile,
			Engine:    ev.Engine,
			StartTime: ev.StartTime,
			Duration:  ev.Duration,
		}
	}

	doc.Reclaims = make([]reclaimEventSchema, len(s.Reclaims))
	for i, ev := range s.Reclaims {
		doc.Reclaims[i] = reclaimEventSchema{
			Weight:    ev.Weight,
			Stockpile: ev.Stockpile,
			Engine:    ev.Engine,
			StartTime: ev.StartTime,
			Duration:  ev.Duration,
			Output:    ev.Request,
		}
	}

	if s.HasDeliveries {
		doc.Outputs = make([]deliverySchema, len(s.Deliveries))
		for i, d := range s.Deliveries {
			quals := make([]deliveryQualitySchema, len(d.Quality))
			for j, q := range d.Quality {
				quals[j] = deliveryQualitySchema{
					Parameter:  q.Parameter,
					Value:      q.Value,
					Minimum:    q.Minimum,
					Maximum:    q.Maximum,
					Goal:       q.Goal,
					Importance: q.Importance,
				}
			}
			doc.Outputs[i] = deliverySchema{
				Weight:    d.Weight,
				StartTime: d.StartTime,
				Duration:  d.Duration,
				Quality:   quals,
			}
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("ioformat: encoding solution JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("ioformat: writing solution file: %w", err)
	}
	return nil
}

// WriteProblem encodes p into the §6-shaped Problem JSON document and
// writes it to path, the inverse of ReadProblem, used by the `generate`
// subcommand to emit random instances in the same format a hand-authored
// instance file uses.
func WriteProblem(path string, p problem.Problem) error {
	doc := problemSchema{
		Info: infoSchema{
			Name:   p.Info.Name,
			Omega1: p.Info.Omega1,
			Omega2: p.Info.Omega2,
		},
		DistancesTravel: p.DistancesTravel,
		TimeTravel:      p.TimeTravel,
	}

	doc.Stockpiles = make([]stockpileSchema, len(p.Stockpiles))
	for i, s := range p.Stockpiles {
		doc.Stockpiles[i] = stockpileSchema{
			ID:         s.ID,
			Position:   s.Position,
			Yard:       s.Yard,
			Rails:      s.Rails,
			Capacity:   s.Capacity,
			WeightIni:  s.WeightIni,
			QualityIni: encodeQuality(s.QualityIni),
		}
	}

	doc.Engines = make([]engineSchema, len(p.Engines))
	for i, e := range p.Engines {
		doc.Engines[i] = engineSchema{
			ID:           e.ID,
			SpeedStack:   e.SpeedStack,
			SpeedReclaim: e.SpeedReclaim,
			PosIni:       e.PosIni,
			Rail:         e.Rail,
			Yards:        e.Yards,
		}
	}

	doc.Inputs = make([]inputSchema, len(p.Inputs))
	for i, in := range p.Inputs {
		doc.Inputs[i] = inputSchema{
			ID:      in.ID,
			Weight:  in.Weight,
			Quality: encodeQuality(in.Quality),
			Time:    in.Time,
		}
	}

	doc.Outputs = make([]outputSchema, len(p.Outputs))
	for i, out := range p.Outputs {
		quals := make([]qualityRequest, len(out.Quality))
		for j, q := range out.Quality {
			quals[j] = qualityRequest{
				Parameter:  q.Parameter,
				Minimum:    q.Minimum,
				Maximum:    q.Maximum,
				Goal:       q.Goal,
				Importance: q.Importance,
			}
		}
		doc.Outputs[i] = outputSchema{
			ID:          out.ID,
			Destination: out.Destination,
			Weight:      out.Weight,
			Quality:     quals,
			Time:        out.Time,
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("ioformat: encoding problem JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("ioformat: writing problem file: %w", err)
	}
	return nil
}

func encodeQuality(qs []problem.Quality) []quality {
	out := make([]quality, len(qs))
	for i, q := range qs {
		out[i] = quality{Parameter: q.Parameter, Value: q.Value}
	}
	return out
}
