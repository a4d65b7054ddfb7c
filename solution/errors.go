package solution

import "errors"

// ErrInfeasible is returned by SetDeliveries when a request's reclaimed mass
// sums to zero, mirroring the original's ZeroDivisionError-as-infeasibility
// signal from its weighted quality average.
var ErrInfeasible = errors.New("solution: model is infeasible or unbounded")

// ErrNoObjective is a developer-error precondition: SetDeliveries was called
// before OMP's objective/mass decisions were recorded on the Solution.
var ErrNoObjective = errors.New("solution: objective not set, call SetObjective first")

// ErrEmptyReclaims is a developer-error precondition: WorkTime (and so
// SetDeliveries) was called for a request with no reclaim events recorded
// yet. UpdateCost skips such requests instead of reporting it.
var ErrEmptyReclaims = errors.New("solution: work_time called with empty reclaim list for request")
