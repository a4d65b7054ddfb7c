package feedback

import (
	"github.com/sirupsen/logrus"

	"github.com/upmsp/upmsp/constructive"
	"github.com/upmsp/upmsp/omp"
	"github.com/upmsp/upmsp/problem"
	"github.com/upmsp/upmsp/rngsrc"
	"github.com/upmsp/upmsp/solution"
)

// Driver is the subset of heuristic.SA/heuristic.LAHC the feedback loop
// needs: a bestKnown-aware Run and the resulting incumbent. A nil Driver is
// legal, main.py's feedback_approach runs with solver == None whenever no
// -algorithm flag was given, and just keeps re-solving the OMP/constructive
// pair without any local search in between.
type Driver interface {
	Run(initial *solution.Solution, maxIters int, bestKnown bool)
	Best() *solution.Solution
}

// Loop runs the feedback approach for rounds iterations: each round redraws
// the OMP's scheduling weights from the mass the current incumbent actually
// moved, re-solves, rebuilds the schedule from scratch under the new
// allocation, and (if driver is non-nil) resumes local search from it with
// its best-known incumbent preserved. Matches main.py's feedback_approach.
//
// Unlike the literal Python, where solution is mutated in place and the
// same object keeps flowing through every round by reference, SA/LAHC.Run
// here work on an internal DeepCopy and only ever publish improvements
// through Best(), so Loop returns the final incumbent explicitly rather
// than relying on the caller's initial pointer having been mutated.
func Loop(
	p problem.Problem,
	initial *solution.Solution,
	mo *omp.Model,
	driver Driver,
	rng *rngsrc.Source,
	rounds, maxIters int,
	budget SolveBudget,
) (*solution.Solution, []Trace) {
	s := initial
	traces := make([]Trace, 0, rounds)

	for round := 0; round < rounds; round++ {
		trace := newTrace(round)

		mo.SetWeights(omp.WeightX, s.X, rng)
		mo.SetWeights(omp.WeightY, transpose(s.Y), rng)

		res, err := mo.Solve(budget.MaxDuration, budget.GapRelative)
		if err != nil {
			logrus.Warnf("feedback: round %d/%d solve failed: %v, keeping previous incumbent", round+1, rounds, err)
			trace.SolveFailed = true
			traces = append(traces, trace)
			continue
		}

		s.SetObjective(&res.Objective, res.X, transpose(res.Y))
		s.ResetRoutes()
		s.ResetClocks()

		post := constructive.NewPostModel(p, s)
		post.Run(false)

		if driver != nil {
			driver.Run(s, maxIters, true)
			if best := driver.Best(); best != nil {
				s = best
			}
		}

		trace.Objective = res.Objective
		trace.Optimal = res.Optimal
		trace.Cost = s.Cost
		traces = append(traces, trace)

		logrus.Debugf("feedback: round %d/%d objective=%.2f cost=%.2f", round+1, rounds, res.Objective, s.Cost)
	}

	return s, traces
}
