// Package feedback wires the blending model, the constructive builders and
// the heuristic drivers together: the one-shot initial construction (with
// an optional PreModel reachability seed) and the repeated feedback loop
// that redraws the model's scheduling weights from whatever mass the
// current incumbent actually moved and re-solves.
package feedback

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/upmsp/upmsp/constructive"
	"github.com/upmsp/upmsp/omp"
	"github.com/upmsp/upmsp/problem"
	"github.com/upmsp/upmsp/rngsrc"
	"github.com/upmsp/upmsp/solution"
)

// SolveBudget bounds a single OMP solve, mirroring the maximum duration and
// relative MIP gap main.py leaves at the HiGHS defaults.
type SolveBudget struct {
	MaxDuration time.Duration
	GapRelative float64
}

// DefaultSolveBudget matches the bounds construct() and feedback_approach()
// implicitly accept by never overriding Python-MIP's defaults: a generous
// time limit and a tight gap, since these runs are offline.
var DefaultSolveBudget = SolveBudget{MaxDuration: 30 * time.Second, GapRelative: 1e-4}

// Construct builds the initial feasible schedule, matching main.py's
// construct(): when seedWithPreModel is true, an unfiltered PreModel pass
// runs first purely to produce a reachability matrix that seeds the OMP's
// scheduling weights before its first solve (construct()'s 'premodel'
// branch); a PostModel pass always runs last, against whatever objective
// the OMP produced, and is what construct() actually returns regardless of
// which constructive kind was requested.
func Construct(
	p problem.Problem,
	s *solution.Solution,
	mo *omp.Model,
	rng *rngsrc.Source,
	seedWithPreModel bool,
	budget SolveBudget,
) (*constructive.PostModel, error) {
	if seedWithPreModel {
		seedReachability(p, s, rng, mo)
	}

	res, err := mo.Solve(budget.MaxDuration, budget.GapRelative)
	if err != nil {
		return nil, err
	}

	s.SetObjective(&res.Objective, res.X, transpose(res.Y))
	post := constructive.NewPostModel(p, s)
	post.Run(false)
	return post, nil
}

// seedReachability runs an unfiltered PreModel pass against placeholder
// mass (each stockpile's initial weight, since PreModel's routing choice
// never consults mass) purely to harvest which stockpiles are reachable,
// then feeds that into both weight matrices, exactly construct()'s
// model.add_weights('x', ...); model.add_weights('y', ...) using the same
// feedback matrix for both (transposed to [stockpile][request] for WeightX).
// The seed pass's routes and engine clocks/positions are cleared afterward,
// so the PostModel pass that follows starts from an empty schedule.
func seedReachability(p problem.Problem, s *solution.Solution, rng *rngsrc.Source, mo *omp.Model) {
	s.X = placeholderReclaimMass(p)
	s.Y = nil

	seed := constructive.NewPreModel(p, s)
	seed.Run(false)

	fb := seed.FeedBack()
	mo.SetWeights(omp.WeightX, transpose(fb), rng)
	mo.SetWeights(omp.WeightY, fb, rng)

	s.ResetRoutes()
	s.ResetClocks()

	logrus.Debugf("feedback: seeded OMP weights from PreModel reachability over %d stockpiles", len(p.Stockpiles))
}

func placeholderReclaimMass(p problem.Problem) [][]float64 {
	x := make([][]float64, len(p.Stockpiles))
	for i, stp := range p.Stockpiles {
		row := make([]float64, len(p.Outputs))
		for k := range row {
			row[k] = stp.WeightIni
		}
		x[i] = row
	}
	return x
}

// transpose turns omp.Result.Y ([input][stockpile]) into the
// [stockpile][input] layout solution.Solution.Y and StackedMass expect.
func transpose(y [][]float64) [][]float64 {
	if len(y) == 0 {
		return nil
	}
	rows, cols := len(y), len(y[0])
	out := make([][]float64, cols)
	for i := range out {
		out[i] = make([]float64, rows)
		for h := range out[i] {
			out[i][h] = y[h][i]
		}
	}
	return out
}
