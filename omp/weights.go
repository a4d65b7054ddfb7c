package omp

import "github.com/upmsp/upmsp/rngsrc"

// WeightKind selects which scheduling-term weight matrix SetWeights
// redraws, mirroring LinModel.add_weights' "x" / "y" argument.
type WeightKind string

const (
	WeightX WeightKind = "x"
	WeightY WeightKind = "y"
)

// SetWeights redraws the wˣ or wʸ weight matrix used by the scheduling part
// of the objective, from mass: a [stockpile][request] (WeightX) or
// [input][stockpile] (WeightY) matrix of mass moved by a previous run ,
// either PreModel's reachability feed-back or a later round's actual
// X/Y allocation. Every cell resets to 1; a cell whose mass entry is
// greater than zero is redrawn to a fresh random integer in [1, 1000].
// Cells that moved no mass keep weight 1, exactly per add_weights.
//
// Unlike the literal Python, where add_weights mutates a dict the
// objective's LinExpr had already captured by value, making reweighting a
// no-op on the next solve, every coefficient here is pushed straight onto
// the live mip.Term handle captured when the term was built, so the very
// next Solve call actually sees the new weights. See DESIGN.md.
func (mo *Model) SetWeights(kind WeightKind, mass [][]float64, rng *rngsrc.Source) {
	switch kind {
	case WeightX:
		for i := range mo.wX {
			for k := range mo.wX[i] {
				mo.wX[i][k] = drawWeight(massAt(mass, i, k), rng)
				mo.xTerms[i][k].SetCoefficient(mo.wX[i][k])
			}
		}
	case WeightY:
		for h := range mo.wY {
			for i := range mo.wY[h] {
				mo.wY[h][i] = drawWeight(massAt(mass, h, i), rng)
				mo.yTerms[h][i].SetCoefficient(mo.wY[h][i])
			}
		}
	}
}

func massAt(mass [][]float64, row, col int) float64 {
	if row >= len(mass) || col >= len(mass[row]) {
		return 0
	}
	return mass[row][col]
}

func drawWeight(moved float64, rng *rngsrc.Source) float64 {
	if moved <= 0 {
		return 1
	}
	return float64(rng.IntRange(1, 1000))
}

// WeightsX returns the current wˣ matrix, a [stockpile][request] grid.
func (mo *Model) WeightsX() [][]float64 { return mo.wX }

// WeightsY returns the current wʸ matrix, an [input][stockpile] grid.
func (mo *Model) WeightsY() [][]float64 { return mo.wY }
