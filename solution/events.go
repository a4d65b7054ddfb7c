package solution

// StackEvent records an engine depositing ore onto a stockpile.
type StackEvent struct {
	Weight    float64
	Stockpile int // zero-based index into Problem.Stockpiles
	Engine    int // zero-based index into Problem.Engines
	StartTime float64
	Duration  float64
}

// ReclaimEvent records an engine withdrawing ore from a stockpile on
// behalf of one output request.
type ReclaimEvent struct {
	Weight    float64
	Stockpile int
	Engine    int
	StartTime float64
	Duration  float64
	Request   int // zero-based index into Problem.Outputs
}

// End returns the event's completion time.
func (r ReclaimEvent) End() float64 { return r.StartTime + r.Duration }

// DeliveryQuality is the realized quality of one parameter in a delivery,
// alongside the request's original bounds for reporting purposes.
type DeliveryQuality struct {
	Parameter  string
	Value      float64
	Minimum    float64
	Maximum    float64
	Goal       float64
	Importance float64
}

// Delivery summarizes one output request's fulfillment: total mass moved,
// the [start, end] window derived from its reclaim events, and the
// mass-weighted realized quality per parameter.
type Delivery struct {
	Weight    float64
	StartTime float64
	Duration  float64
	Quality   []DeliveryQuality
}
