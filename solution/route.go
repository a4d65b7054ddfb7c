package solution

// Activity tags what a route entry does at a stockpile.
type Activity byte

const (
	// Reclaim withdraws ore from the stockpile.
	Reclaim Activity = 'R'
	// Stack deposits ore onto the stockpile.
	Stack Activity = 'S'
	// Both performs a stack followed by a reclaim at the same stop.
	Both Activity = 'B'
)

func (a Activity) String() string { return string(a) }

// RouteEntry is one stop in an engine's route: a stockpile index, the
// activity performed there, and the output request it serves.
//
// Request is not part of spec.md's literal Route tuple, but is required to
// replay a route correctly once more than one output request exists, see
// DESIGN.md "routes accumulate across requests". Request is the zero-based
// index into Problem.Outputs.
type RouteEntry struct {
	Stockpile int
	Activity  Activity
	Request   int
}

// mergeJob applies the merge rule PostModel's set_jobs uses when the same
// stockpile is drawn more than once while draining the candidate heap:
//   - already marked Both: skip entirely.
//   - incoming activity equals the marker (and isn't Both): skip entirely —
//     the stockpile is already being worked by exactly one engine for that
//     activity, matching postmodel.py's `jobs[stp] != atv` guard.
//   - incoming Both against marker Stack: append a Reclaim, upgrade to Both.
//   - incoming Both against marker Reclaim: append a Stack, upgrade to Both.
//   - otherwise: append the incoming activity as-is, marker becomes it.
//
// It reports the activity to append (if any) and the marker's new value.
func mergeJob(marker Activity, hasMarker bool, atv Activity) (toAppend Activity, newMarker Activity, emit bool) {
	return doMergeJob(marker, hasMarker, atv)
}

// MergeJob is mergeJob exported for constructive's PostModel, which needs
// the same merge rule when draining its own cross-engine candidate heap.
func MergeJob(marker Activity, hasMarker bool, atv Activity) (toAppend Activity, newMarker Activity, emit bool) {
	return doMergeJob(marker, hasMarker, atv)
}

func doMergeJob(marker Activity, hasMarker bool, atv Activity) (toAppend Activity, newMarker Activity, emit bool) {
	if hasMarker && marker == Both {
		return 0, Both, false
	}
	if hasMarker && marker == atv {
		return 0, marker, false
	}
	if atv == Both && hasMarker && marker == Stack {
		return Reclaim, Both, true
	}
	if atv == Both && hasMarker && marker == Reclaim {
		return Stack, Both, true
	}
	return atv, atv, true
}
