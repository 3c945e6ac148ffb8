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

// Package simplex implements the two-phase revised simplex method in
// dictionary form over a canonical StandardModel.
package simplex

import (
	"fmt"

	"github.com/adrg/linprog/internal/linexpr"
	"github.com/adrg/linprog/internal/standardize"
)

// varKind tags which of the three disjoint dictionary-variable kinds a
// DictVar belongs to. Ordering matters: it backs the tie-breaking rank used
// by entering/leaving selection (NonSlack and Auxiliary outrank Slack).
type varKind int

const (
	kindSlack varKind = iota
	kindNonSlack
	kindAuxiliary
)

// DictVar is a dictionary variable: either a standard (non-slack) variable
// carried over from the StandardModel, the slack of one particular row, or
// the single Phase-1 auxiliary variable.
type DictVar struct {
	kind varKind
	std  standardize.VarKey
	row  int
}

// nonSlack wraps a standard variable as a dictionary variable.
func nonSlack(v standardize.VarKey) DictVar { return DictVar{kind: kindNonSlack, std: v} }

// slack identifies the slack variable belonging to a given row index.
func slack(row int) DictVar { return DictVar{kind: kindSlack, row: row} }

// auxiliary is the single Phase-1 auxiliary dictionary variable.
func auxiliary() DictVar { return DictVar{kind: kindAuxiliary} }

// IsAuxiliary reports whether v is the Phase-1 auxiliary variable.
func (v DictVar) IsAuxiliary() bool { return v.kind == kindAuxiliary }

// Std returns the underlying standard variable and true, if v wraps one.
func (v DictVar) Std() (standardize.VarKey, bool) {
	if v.kind == kindNonSlack {
		return v.std, true
	}
	return standardize.VarKey{}, false
}

// rank orders kinds for tie-breaking: NonSlack and Auxiliary outrank Slack.
func (v DictVar) rank() int {
	if v.kind == kindSlack {
		return 0
	}
	return 1
}

// order gives DictVar a total order so it can key a linexpr.Expr: first by
// kind, then by the kind's own discriminating field. The exact order is
// otherwise arbitrary -- only its stability and totality matter.
func (v DictVar) order() int {
	switch v.kind {
	case kindSlack:
		return v.row
	case kindNonSlack:
		return v.std.Index()
	default: // kindAuxiliary
		return -1
	}
}

// Less makes DictVar satisfy linexpr.Key[DictVar].
func (v DictVar) Less(other DictVar) bool {
	if v.kind != other.kind {
		return v.kind < other.kind
	}
	return v.order() < other.order()
}

func (v DictVar) String() string {
	switch v.kind {
	case kindSlack:
		return fmt.Sprintf("slack(%d)", v.row)
	case kindNonSlack:
		return fmt.Sprintf("std(%d)", v.std.Index())
	default:
		return "aux"
	}
}

// row is one dictionary equation: basic = rhs, where rhs is an expression
// over non-basic dictionary variables.
type row struct {
	basic DictVar
	rhs   *linexpr.Expr[DictVar]
}

// SlackDictionary is the dictionary-form representation of a StandardModel:
// one row per standard constraint (basic = its slack) plus an objective
// expression, both over the dictionary-variable universe.
type SlackDictionary struct {
	eps       float64
	rows      []row
	objective *linexpr.Expr[DictVar]
}

// NewSlackDictionary builds the initial dictionary from a StandardModel: the
// i-th constraint l_i <= b_i becomes the row slack(i) = b_i - l_i, and the
// StandardModel's objective is carried over term-for-term.
func NewSlackDictionary(sm *standardize.StandardModel, eps float64) *SlackDictionary {
	d := &SlackDictionary{eps: eps}
	d.rows = make([]row, len(sm.Constraints))
	for i, c := range sm.Constraints {
		rhs := linexpr.NewWithConstant[DictVar](c.B)
		for _, t := range c.Expr.Terms() {
			rhs.AddTerm(nonSlack(t.Var), -t.Coef, eps)
		}
		d.rows[i] = row{basic: slack(i), rhs: rhs}
	}

	obj := linexpr.NewWithConstant[DictVar](sm.Objective.Constant())
	for _, t := range sm.Objective.Terms() {
		obj.AddTerm(nonSlack(t.Var), t.Coef, eps)
	}
	d.objective = obj

	return d
}

// NumRows returns the number of dictionary rows.
func (d *SlackDictionary) NumRows() int { return len(d.rows) }

// RowConstant returns the i-th row's current constant term.
func (d *SlackDictionary) RowConstant(i int) float64 { return d.rows[i].rhs.Constant() }

// RowBasic returns the i-th row's current basic variable.
func (d *SlackDictionary) RowBasic(i int) DictVar { return d.rows[i].basic }

// RowCoefficient returns the i-th row's coefficient for v.
func (d *SlackDictionary) RowCoefficient(i int, v DictVar) float64 {
	return d.rows[i].rhs.Coefficient(v)
}

// ObjectiveCoefficient returns the objective's coefficient for v.
func (d *SlackDictionary) ObjectiveCoefficient(v DictVar) float64 {
	return d.objective.Coefficient(v)
}

// ObjectiveValue is the objective's constant term: the value of the
// objective function at the dictionary's current basic feasible point.
func (d *SlackDictionary) ObjectiveValue() float64 {
	return d.objective.Constant()
}

// ObjectiveTerms returns the objective's non-basic terms.
func (d *SlackDictionary) ObjectiveTerms() []linexpr.Term[DictVar] {
	return d.objective.Terms()
}

// StdValues returns, for every NonSlack standard variable currently basic in
// some row, its row constant; variables absent from the map are implicitly
// non-basic at 0.
func (d *SlackDictionary) StdValues() map[standardize.VarKey]float64 {
	out := make(map[standardize.VarKey]float64)
	for _, r := range d.rows {
		if sv, ok := r.basic.Std(); ok {
			out[sv] = r.rhs.Constant()
		}
	}
	return out
}

// AddVarToAllEntries adds c*v to every row's RHS and to the objective. Used
// to inject the Phase-1 auxiliary variable.
func (d *SlackDictionary) AddVarToAllEntries(v DictVar, c float64) {
	for i := range d.rows {
		d.rows[i].rhs.AddTerm(v, c, d.eps)
	}
	d.objective.AddTerm(v, c, d.eps)
}

// RemoveVarFromAllEntries drops v's term, if any, from every row's RHS and
// from the objective. Used to retract the Phase-1 auxiliary variable.
func (d *SlackDictionary) RemoveVarFromAllEntries(v DictVar) {
	for i := range d.rows {
		c := d.rows[i].rhs.Coefficient(v)
		if c != 0 {
			d.rows[i].rhs.AddTerm(v, -c, d.eps)
		}
	}
	if c := d.objective.Coefficient(v); c != 0 {
		d.objective.AddTerm(v, -c, d.eps)
	}
}

// RemoveEntry drops row i outright: used to discard a redundant equality
// whose basic is the auxiliary variable and whose remaining coefficients are
// all negligible.
func (d *SlackDictionary) RemoveEntry(i int) {
	d.rows = append(d.rows[:i], d.rows[i+1:]...)
}

// FindRowByBasic returns the index of the row whose basic variable is v, or
// -1 if v is not currently basic anywhere.
func (d *SlackDictionary) FindRowByBasic(v DictVar) int {
	for i, r := range d.rows {
		if r.basic == v {
			return i
		}
	}
	return -1
}

// Pivot swaps entering into the basis in place of row i's current basic
// variable, rewriting every other row and the objective to eliminate
// entering from their right-hand sides.
//
// The row's coefficient for entering must have magnitude > eps; violating
// this is an invariant failure, not a user error, and panics.
func (d *SlackDictionary) Pivot(entering DictVar, i int) {
	r := &d.rows[i]
	alpha := r.rhs.Coefficient(entering)
	if abs(alpha) <= d.eps {
		panic(fmt.Sprintf("simplex: pivot on %v in row %d with negligible coefficient %g", entering, i, alpha))
	}

	oldBasic := r.basic
	r.rhs.AddTerm(entering, -alpha, d.eps)
	r.rhs.AddTerm(oldBasic, -1.0, d.eps)
	r.rhs.Scale(1/-alpha, d.eps)
	r.basic = entering

	for j := range d.rows {
		if j == i {
			continue
		}
		if d.rows[j].rhs.Coefficient(entering) != 0 {
			d.rows[j].rhs.ReplaceVarWithExpr(entering, r.rhs, d.eps)
		}
	}
	if d.objective.Coefficient(entering) != 0 {
		d.objective.ReplaceVarWithExpr(entering, r.rhs, d.eps)
	}
}

// SetObjective replaces the dictionary's objective wholesale. Used at the
// Phase-1/Phase-2 transition to install the reconstructed original
// objective, substituted over the current basis.
func (d *SlackDictionary) SetObjective(obj *linexpr.Expr[DictVar]) {
	d.objective = obj
}

// Objective exposes the current objective, e.g. so the solver can clone and
// substitute it across basis changes at the phase transition.
func (d *SlackDictionary) Objective() *linexpr.Expr[DictVar] {
	return d.objective
}

// RowExpr exposes row i's RHS expression directly, e.g. so the solver can
// substitute it into a saved objective at the phase transition.
func (d *SlackDictionary) RowExpr(i int) *linexpr.Expr[DictVar] {
	return d.rows[i].rhs
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
