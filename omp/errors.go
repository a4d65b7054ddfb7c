package omp

import "errors"

// ErrNoSolution is returned when the solver produces no incumbent at all
// within the configured time budget, distinct from a merely suboptimal
// solution, which Result.Optimal reports instead of an error.
var ErrNoSolution = errors.New("omp: solver produced no incumbent solution")
