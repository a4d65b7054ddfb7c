// Package problem defines the immutable input model for the stockyard
// blending and scheduling problem: stockpiles, engines, inputs, output
// requests and the travel matrices between stockpiles.
//
// A Problem is loaded once (typically from JSON, see the ioformat package)
// and never mutated afterward. Engine starting position, per-engine clocks
// and every other piece of state that changes while a schedule is being
// built or replayed lives on solution.Solution instead, see DESIGN.md.
package problem

import "fmt"

// Quality is a named ore quality parameter and its measured value.
type Quality struct {
	Parameter string
	Value     float64
}

// QualityRequest is a quality parameter's target bounds for an output
// request: an acceptable [Minimum, Maximum] range, a Goal value, and an
// Importance weight used in the OMP's objective.
type QualityRequest struct {
	Parameter  string
	Minimum    float64
	Maximum    float64
	Goal       float64
	Importance float64
}

// Stockpile is a pile of pre-blended ore at a fixed yard position.
type Stockpile struct {
	ID         int
	Position   int
	Yard       int
	Rails      []int
	Capacity   float64
	WeightIni  float64
	QualityIni []Quality
}

// HasRail reports whether the stockpile is reachable from the given rail.
func (s Stockpile) HasRail(rail int) bool {
	for _, r := range s.Rails {
		if r == rail {
			return true
		}
	}
	return false
}

// Engine is a stacker/reclaimer machine running on a single rail.
// Either SpeedStack or SpeedReclaim (but not both) may be zero, meaning the
// engine cannot perform that role. PosIni is the engine's starting position
// for the very first constructive build of a run; subsequent positions live
// on solution.Solution.EnginePos, never here (see DESIGN.md, spec §9).
type Engine struct {
	ID            int
	SpeedStack    float64
	SpeedReclaim  float64
	PosIni        int
	Rail          int
	Yards         []int
}

// CanReclaim reports whether this engine is capable of reclaiming ore.
func (e Engine) CanReclaim() bool { return e.SpeedReclaim > 0 }

// CanStack reports whether this engine is capable of stacking ore.
func (e Engine) CanStack() bool { return e.SpeedStack > 0 }

// Input is incoming ore mass that may be transferred into stockpiles.
type Input struct {
	ID      int
	Weight  float64
	Quality []Quality
	Time    float64
}

// Output is a customer demand: a requested mass meeting per-parameter
// quality bounds, to be fulfilled by reclaiming from one or more stockpiles.
type Output struct {
	ID          int
	Destination int
	Weight      float64
	Quality     []QualityRequest
	Time        float64
}

// Info carries the run's name and the two objective weights used by the OMP.
type Info struct {
	Name    string
	Omega1  float64
	Omega2  float64
}

// Problem is the complete, immutable input to a run: stockpiles, engines,
// inputs, output requests and the travel matrices between stockpiles.
type Problem struct {
	Info            Info
	Stockpiles      []Stockpile
	Engines         []Engine
	Inputs          []Input
	Outputs         []Output
	DistancesTravel [][]float64
	TimeTravel      [][]float64
}

// Validate checks the structural invariants spec.md requires of a Problem:
// capacity bounds, that every engine can stack or reclaim, one
// distancesTravel row per stockpile, and a square timeTravel matrix sized
// to the stockpile count. Rail reachability is not checked here.
// It does not check cross-cutting mass-balance invariants (those depend on
// the OMP's decisions and are checked against a Solution instead).
func (p Problem) Validate() error {
	n := len(p.Stockpiles)
	for _, s := range p.Stockpiles {
		if s.WeightIni > s.Capacity {
			return fmt.Errorf("stockpile %d: initial weight %.2f exceeds capacity %.2f", s.ID, s.WeightIni, s.Capacity)
		}
	}
	for _, e := range p.Engines {
		if e.SpeedStack == 0 && e.SpeedReclaim == 0 {
			return fmt.Errorf("engine %d: neither stacking nor reclaiming capable", e.ID)
		}
	}
	if len(p.DistancesTravel) != n {
		return fmt.Errorf("distancesTravel has %d rows, want %d", len(p.DistancesTravel), n)
	}
	if len(p.TimeTravel) != n {
		return fmt.Errorf("timeTravel has %d rows, want %d", len(p.TimeTravel), n)
	}
	for i, row := range p.TimeTravel {
		if len(row) != n {
			return fmt.Errorf("timeTravel row %d has %d columns, want %d", i, len(row), n)
		}
	}
	return nil
}
