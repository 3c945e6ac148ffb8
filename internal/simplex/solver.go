/*
Copyright © 2015-2022 Leo Antunes <leo@costela.net>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package simplex

import (
	"github.com/adrg/linprog/internal/linexpr"
	"github.com/adrg/linprog/internal/standardize"
)

// Config drives the solver's stopping conditions.
type Config struct {
	MaxIterations int
	Tolerance     float64
}

// DefaultConfig returns the library defaults: 10000 max iterations, 1e-10
// tolerance. Chosen so a 1e-9 coefficient (see the epsilon-perturbation
// scenario this package is tested against) is never treated as zero.
func DefaultConfig() Config {
	return Config{MaxIterations: 10000, Tolerance: 1e-10}
}

// Status is the solver's terminal outcome. None of these are errors: they
// are all valid answers about the shape of the feasible region.
type Status string

const (
	StatusOptimal              Status = "optimal"
	StatusInfeasible           Status = "infeasible"
	StatusUnbounded            Status = "unbounded"
	StatusMaxIterationsReached Status = "max_iterations_reached"
)

// Result is the outcome of a Solve call: status, the standard-form objective
// value and variable values (when meaningful), and the iteration count.
type Result struct {
	Status         Status
	ObjectiveValue float64
	Values         map[standardize.VarKey]float64
	Iterations     int
}

// Solve drives d to termination: an optional Phase-1 feasibility search
// followed by Phase-2 optimization, per the two-phase dictionary method.
func Solve(d *SlackDictionary, cfg Config) Result {
	iterations := 0

	if needsPhaseOne(d, cfg.Tolerance) {
		if status := runPhaseOne(d, cfg, &iterations); status != "" {
			return Result{Status: status, Iterations: iterations}
		}
	}

	switch runSimplexLoop(d, cfg, &iterations) {
	case loopMaxIterations:
		return Result{
			Status:         StatusMaxIterationsReached,
			ObjectiveValue: d.ObjectiveValue(),
			Values:         d.StdValues(),
			Iterations:     iterations,
		}
	case loopUnbounded:
		return Result{Status: StatusUnbounded, Iterations: iterations}
	default:
		return Result{
			Status:         StatusOptimal,
			ObjectiveValue: d.ObjectiveValue(),
			Values:         d.StdValues(),
			Iterations:     iterations,
		}
	}
}

// needsPhaseOne reports whether any row of d starts out infeasible (a
// negative constant), which is exactly when an initial basic feasible
// solution isn't already at hand.
func needsPhaseOne(d *SlackDictionary, eps float64) bool {
	for i := 0; i < d.NumRows(); i++ {
		if d.RowConstant(i) < -eps {
			return true
		}
	}
	return false
}

// runPhaseOne runs the auxiliary-problem feasibility search. It returns a
// terminal Status if the search concludes Infeasible or hits
// MaxIterationsReached; it returns "" when a feasible dictionary over the
// original objective has been installed and Phase-2 should proceed.
func runPhaseOne(d *SlackDictionary, cfg Config, iterations *int) Status {
	aux := auxiliary()
	savedObjective := d.Objective().Clone()
	d.AddVarToAllEntries(aux, 1)

	auxObjective := linexpr.NewWithConstant[DictVar](0)
	auxObjective.AddTerm(aux, -1, cfg.Tolerance)
	d.SetObjective(auxObjective)

	leavingRow := mostNegativeRow(d)
	d.Pivot(aux, leavingRow)
	*iterations++

	switch runSimplexLoop(d, cfg, iterations) {
	case loopMaxIterations:
		return StatusMaxIterationsReached
	case loopUnbounded:
		// The auxiliary objective is bounded above by 0 by construction; a
		// degenerate model that still manages to trip the unbounded check
		// has no feasible original dictionary either.
		return StatusInfeasible
	}

	if abs(d.ObjectiveValue()) >= cfg.Tolerance {
		return StatusInfeasible
	}

	if r := d.FindRowByBasic(aux); r != -1 {
		if entering, ok := selectAnyNonNegligible(d, r, aux, cfg.Tolerance); ok {
			d.Pivot(entering, r)
		} else {
			d.RemoveEntry(r)
		}
	}
	d.RemoveVarFromAllEntries(aux)

	for i := 0; i < d.NumRows(); i++ {
		basic := d.RowBasic(i)
		if savedObjective.Coefficient(basic) != 0 {
			savedObjective.ReplaceVarWithExpr(basic, d.RowExpr(i), cfg.Tolerance)
		}
	}
	d.SetObjective(savedObjective)

	return ""
}

type loopOutcome int

const (
	loopOptimal loopOutcome = iota
	loopUnbounded
	loopMaxIterations
)

// runSimplexLoop is the driver body shared by Phase-1 and Phase-2: it pivots
// against whatever objective is currently installed on d until no entering
// variable improves it, the problem proves unbounded, or the iteration
// budget runs out.
func runSimplexLoop(d *SlackDictionary, cfg Config, iterations *int) loopOutcome {
	for {
		if *iterations >= cfg.MaxIterations {
			return loopMaxIterations
		}

		entering, ok := selectEntering(d, cfg.Tolerance)
		if !ok {
			return loopOptimal
		}

		leavingRow, ok := selectLeaving(d, entering, cfg.Tolerance)
		if !ok {
			return loopUnbounded
		}

		d.Pivot(entering, leavingRow)
		*iterations++
	}
}

// selectEntering applies Dantzig's largest-coefficient rule: the non-basic
// with the greatest objective coefficient above eps, ties broken toward the
// higher kind-rank (NonSlack/Auxiliary over Slack).
func selectEntering(d *SlackDictionary, eps float64) (DictVar, bool) {
	var best DictVar
	var bestCoef float64
	found := false

	for _, t := range d.ObjectiveTerms() {
		if t.Coef <= eps {
			continue
		}
		switch {
		case !found:
			best, bestCoef, found = t.Var, t.Coef, true
		case t.Coef > bestCoef+eps:
			best, bestCoef = t.Var, t.Coef
		case t.Coef >= bestCoef-eps && t.Var.rank() > best.rank():
			best = t.Var
			if t.Coef > bestCoef {
				bestCoef = t.Coef
			}
		}
	}
	return best, found
}

// selectLeaving applies the largest-ratio rule (the mathematical minimum
// ratio test under this package's row sign convention), restricted to rows
// whose coefficient of entering is below -eps, ties broken toward the row
// whose current basic has the higher kind-rank.
func selectLeaving(d *SlackDictionary, entering DictVar, eps float64) (int, bool) {
	best := -1
	var bestRatio float64
	found := false

	for i := 0; i < d.NumRows(); i++ {
		coef := d.RowCoefficient(i, entering)
		if coef >= -eps {
			continue
		}
		ratio := d.RowConstant(i) / coef
		switch {
		case !found:
			best, bestRatio, found = i, ratio, true
		case ratio > bestRatio+eps:
			best, bestRatio = i, ratio
		case ratio >= bestRatio-eps && d.RowBasic(i).rank() > d.RowBasic(best).rank():
			best = i
			if ratio > bestRatio {
				bestRatio = ratio
			}
		}
	}
	return best, found
}

// mostNegativeRow returns the index of the row with the smallest (most
// negative) constant, used to pick Phase-1's forced initial pivot row.
func mostNegativeRow(d *SlackDictionary) int {
	best := 0
	bestVal := d.RowConstant(0)
	for i := 1; i < d.NumRows(); i++ {
		if v := d.RowConstant(i); v < bestVal {
			best, bestVal = i, v
		}
	}
	return best
}

// selectAnyNonNegligible finds a non-basic term in row rowIdx (other than
// skip) whose coefficient magnitude exceeds eps, used to drive the auxiliary
// variable out of the basis at the Phase-1/Phase-2 transition.
func selectAnyNonNegligible(d *SlackDictionary, rowIdx int, skip DictVar, eps float64) (DictVar, bool) {
	for _, t := range d.RowExpr(rowIdx).Terms() {
		if t.Var == skip {
			continue
		}
		if abs(t.Coef) > eps {
			return t.Var, true
		}
	}
	return DictVar{}, false
}
