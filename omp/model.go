// Package omp builds and solves the Mixed-Integer Linear blending model
// (the "Ore Mixing Problem") that fixes per-request reclaimed mass and
// per-input stacked mass with soft quality deviations in the objective.
package omp

import (
	"math"

	"github.com/nextmv-io/sdk/mip"

	"github.com/upmsp/upmsp/problem"
)

// Model wraps a single nextmv-io/sdk/mip model built once from a Problem.
// Variable coefficients in the scheduling part of the objective (wˣ, wʸ)
// are held as live mip.Term handles so SetWeights can reweight and re-solve
// cheaply without rebuilding constraints, see DESIGN.md "weight
// reweighting must be live".
type Model struct {
	p, t, r, e int

	m mip.Model

	x [][]mip.Float // x[i][k]
	y [][]mip.Float // y[h][i]

	aMin, aMax, bMin, bMax [][]mip.Float // [j][k]

	xTerms [][]mip.Term // xTerms[i][k], coefficient wˣ[i][k]
	yTerms [][]mip.Term // yTerms[h][i], coefficient wʸ[h][i]

	wX [][]float64
	wY [][]float64

	problem problem.Problem
}

const unbounded = math.MaxFloat64

// New builds the full MILP once: all variables, all five constraint
// families (input capacity, stockpile capacity, the literal unfixed
// mass-availability over-constraint, demand, and the three quality
// deviation constraints), and the objective (D_limit + D_goal + weighted
// scheduling terms), exactly per spec §4.1.
func New(p problem.Problem) (*Model, error) {
	mdl := &Model{
		p:       len(p.Stockpiles),
		e:       len(p.Inputs),
		r:       len(p.Outputs),
		problem: p,
		m:       mip.NewModel(),
	}
	if len(p.Outputs) > 0 {
		mdl.t = len(p.Outputs[0].Quality)
	}

	mdl.addVars()
	mdl.addConstraints()
	mdl.addObjective()

	return mdl, nil
}

func (mo *Model) addVars() {
	mo.x = make([][]mip.Float, mo.p)
	for i := range mo.x {
		mo.x[i] = make([]mip.Float, mo.r)
		for k := range mo.x[i] {
			mo.x[i][k] = mo.m.NewFloat(0, unbounded)
		}
	}

	mo.y = make([][]mip.Float, mo.e)
	for h := range mo.y {
		mo.y[h] = make([]mip.Float, mo.p)
		for i := range mo.y[h] {
			mo.y[h][i] = mo.m.NewFloat(0, unbounded)
		}
	}

	mo.aMin = mo.newDeviationVars()
	mo.aMax = mo.newDeviationVars()
	mo.bMin = mo.newDeviationVars()
	mo.bMax = mo.newDeviationVars()
}

func (mo *Model) newDeviationVars() [][]mip.Float {
	v := make([][]mip.Float, mo.t)
	for j := range v {
		v[j] = make([]mip.Float, mo.r)
		for k := range v[j] {
			v[j][k] = mo.m.NewFloat(0, unbounded)
		}
	}
	return v
}

func (mo *Model) addConstraints() {
	p := mo.problem

	// Input capacity: sum_i y[h,i] <= input[h].weight, for each h.
	for h, inp := range p.Inputs {
		c := mo.m.NewConstraint(mip.LessThanOrEqual, inp.Weight)
		for i := 0; i < mo.p; i++ {
			c.NewTerm(1, mo.y[h][i])
		}
	}

	for i, stp := range p.Stockpiles {
		// Stockpile capacity: sum_h y[h,i] + weightIni <= capacity.
		c := mo.m.NewConstraint(mip.LessThanOrEqual, stp.Capacity-stp.WeightIni)
		for h := 0; h < mo.e; h++ {
			c.NewTerm(1, mo.y[h][i])
		}

		// Mass availability, indexed by every input h: built literally per
		// spec §9's first Open Question, this over-constrains a stockpile
		// fed by several inputs (the tightest y[h,i] binds all of them).
		// Preserved deliberately, not fixed.
		for h := 0; h < mo.e; h++ {
			wc := mo.m.NewConstraint(mip.LessThanOrEqual, stp.WeightIni)
			for k := 0; k < mo.r; k++ {
				wc.NewTerm(1, mo.x[i][k])
			}
			wc.NewTerm(-1, mo.y[h][i])
		}
	}

	for k, out := range p.Outputs {
		// Demand: sum_i x[i,k] == output[k].weight.
		dc := mo.m.NewConstraint(mip.Equal, out.Weight)
		for i := 0; i < mo.p; i++ {
			dc.NewTerm(1, mo.x[i][k])
		}

		for j, qr := range out.Quality {
			minC := mo.m.NewConstraint(mip.GreaterThanOrEqual, 0)
			maxC := mo.m.NewConstraint(mip.LessThanOrEqual, 0)
			goalC := mo.m.NewConstraint(mip.Equal, 0)

			for i, stp := range p.Stockpiles {
				q := stp.QualityIni[j].Value
				minC.NewTerm(q-qr.Minimum, mo.x[i][k])
				maxC.NewTerm(q-qr.Maximum, mo.x[i][k])
				goalC.NewTerm(q-qr.Goal, mo.x[i][k])
			}

			minC.NewTerm(out.Weight, mo.aMin[j][k])
			maxC.NewTerm(-out.Weight, mo.aMax[j][k])
			goalC.NewTerm(out.Weight, mo.bMin[j][k])
			goalC.NewTerm(-out.Weight, mo.bMax[j][k])
		}
	}
}

func (mo *Model) addObjective() {
	p := mo.problem
	obj := mo.m.Objective()
	obj.SetMinimize()

	for k, out := range p.Outputs {
		for j, qr := range out.Quality {
			lb := normalize(qr.Goal - qr.Minimum)
			ub := normalize(qr.Maximum - qr.Goal)

			obj.NewTerm(p.Info.Omega1*qr.Importance/lb, mo.aMin[j][k])
			obj.NewTerm(p.Info.Omega1*qr.Importance/ub, mo.aMax[j][k])

			minNorm := lb
			if ub < minNorm {
				minNorm = ub
			}
			obj.NewTerm(p.Info.Omega2/minNorm, mo.bMin[j][k])
			obj.NewTerm(p.Info.Omega2/minNorm, mo.bMax[j][k])
		}
	}

	mo.xTerms = make([][]mip.Term, mo.p)
	for i := range mo.xTerms {
		mo.xTerms[i] = make([]mip.Term, mo.r)
		for k := range mo.xTerms[i] {
			mo.xTerms[i][k] = obj.NewTerm(1, mo.x[i][k])
		}
	}

	mo.yTerms = make([][]mip.Term, mo.e)
	for h := range mo.yTerms {
		mo.yTerms[h] = make([]mip.Term, mo.p)
		for i := range mo.yTerms[h] {
			mo.yTerms[h][i] = obj.NewTerm(1, mo.y[h][i])
		}
	}

	mo.wX = onesMatrix(mo.p, mo.r)
	mo.wY = onesMatrix(mo.e, mo.p)
}

// normalize mirrors LinModel.__normalize: the difference between a bound
// and the goal, clamped to 1e-6 when zero to avoid division by zero.
func normalize(diff float64) float64 {
	if diff == 0 {
		return 1e-6
	}
	return diff
}

func onesMatrix(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
		for j := range m[i] {
			m[i][j] = 1
		}
	}
	return m
}
