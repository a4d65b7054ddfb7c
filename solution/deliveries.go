package solution

import (
	"math"

	"github.com/upmsp/upmsp/problem"
)

// SetDeliveries computes, for every output request, the realized
// mass-weighted quality per parameter, the [start, end] window, the
// duration and the gap against a fully-parallel idealized lower bound, and
// appends a Delivery summary. Mirrors the original's set_deliveries +
// __quality_mean, including its infeasibility signal: a request whose
// reclaimed mass sums to zero (the weighted-average denominator) reports
// ErrInfeasible rather than dividing by zero.
func (s *Solution) SetDeliveries(p problem.Problem) error {
	if s.Objective == nil {
		return ErrNoObjective
	}

	s.Deliveries = make([]Delivery, 0, len(p.Outputs))

	totalReclaimSpeed := 0.0
	for _, e := range p.Engines {
		totalReclaimSpeed += e.SpeedReclaim
	}

	for k, out := range p.Outputs {
		means, err := s.qualityMean(p, k)
		if err != nil {
			return err
		}

		quals := make([]DeliveryQuality, len(out.Quality))
		for j, req := range out.Quality {
			quals[j] = DeliveryQuality{
				Parameter:  req.Parameter,
				Value:      means[j],
				Minimum:    req.Minimum,
				Maximum:    req.Maximum,
				Goal:       req.Goal,
				Importance: req.Importance,
			}
		}

		start, end, err := s.WorkTime(k)
		if err != nil {
			return err
		}

		optimalDuration := 0.0
		if totalReclaimSpeed > 0 {
			optimalDuration = out.Weight / totalReclaimSpeed
		}
		gap := 1.0
		if observed := end - start; observed != 0 {
			gap = round2(1 - optimalDuration/observed)
		}
		s.Gap[k] = gap

		s.Deliveries = append(s.Deliveries, Delivery{
			Weight:    out.Weight,
			StartTime: start,
			Duration:  round2(end - start),
			Quality:   quals,
		})
	}

	s.HasDeliveries = true
	return nil
}

// qualityMean computes, per quality parameter, the mass-weighted average of
// stockpile quality values using X[:, request] as weights, the Go
// equivalent of numpy.average(quality_list, axis=0, weights=weights).
func (s *Solution) qualityMean(p problem.Problem, request int) ([]float64, error) {
	nParams := 0
	if len(p.Stockpiles) > 0 {
		nParams = len(p.Stockpiles[0].QualityIni)
	}

	sums := make([]float64, nParams)
	weightSum := 0.0

	for i, stp := range p.Stockpiles {
		w := 0.0
		if request < len(s.X[i]) {
			w = s.X[i][request]
		}
		if w == 0 {
			continue
		}
		weightSum += w
		for j, q := range stp.QualityIni {
			sums[j] += w * q.Value
		}
	}

	if weightSum == 0 {
		return nil, ErrInfeasible
	}

	means := make([]float64, nParams)
	for j := range means {
		means[j] = round2(sums[j] / weightSum)
	}
	return means, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
