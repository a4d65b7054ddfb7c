package omp

import (
	"time"

	"github.com/nextmv-io/sdk/mip"
)

// Result holds the outcome of a single Solve call: the fixed reclaimed mass
// per stockpile/request (X) and stacked mass per input/stockpile (Y), the
// objective value, whether HiGHS proved optimality within the time budget,
// and the wall time spent.
type Result struct {
	X         [][]float64
	Y         [][]float64
	Objective float64
	Optimal   bool
	RunTime   time.Duration
}

// Solve runs HiGHS against the current model state (including whatever
// weights SetWeights last applied) and extracts the decision matrices.
// A solution without values (infeasible or no incumbent found within the
// time limit) is reported back through the caller rather than panicking;
// callers should treat a non-nil error from a feedback round as a
// request to keep the previous solution, per spec §4.2.
func (mo *Model) Solve(maxDuration time.Duration, gapRelative float64) (Result, error) {
	solver, err := mip.NewSolver("highs", mo.m)
	if err != nil {
		return Result{}, err
	}

	opts := mip.NewSolveOptions()
	if err := opts.SetMaximumDuration(maxDuration); err != nil {
		return Result{}, err
	}
	if err := opts.SetMIPGapRelative(gapRelative); err != nil {
		return Result{}, err
	}
	if err := opts.SetVerbosity(mip.Off); err != nil {
		return Result{}, err
	}

	sol, err := solver.Solve(opts)
	if err != nil {
		return Result{}, err
	}

	if !sol.HasValues() {
		return Result{}, ErrNoSolution
	}

	res := Result{
		Objective: sol.ObjectiveValue(),
		Optimal:   sol.IsOptimal(),
		RunTime:   sol.RunTime(),
	}

	res.X = make([][]float64, mo.p)
	for i := range res.X {
		res.X[i] = make([]float64, mo.r)
		for k := range res.X[i] {
			res.X[i][k] = sol.Value(mo.x[i][k])
		}
	}

	res.Y = make([][]float64, mo.e)
	for h := range res.Y {
		res.Y[h] = make([]float64, mo.p)
		for i := range res.Y[h] {
			res.Y[h][i] = sol.Value(mo.y[h][i])
		}
	}

	return res, nil
}
