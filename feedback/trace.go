package feedback

import "github.com/google/uuid"

// Trace records one feedback round's outcome for observability, an
// additive supplement over main.py's feedback_approach, which reports
// nothing back to the caller. Not written by Construct, only by Loop.
type Trace struct {
	ID          string
	Round       int
	Objective   float64
	Optimal     bool
	SolveFailed bool
	Cost        float64
}

func newTrace(round int) Trace {
	return Trace{ID: uuid.NewString(), Round: round}
}
