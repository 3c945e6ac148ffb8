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

// Package standardize compiles a user-facing model with arbitrary variable
// bounds and constraint senses into canonical form: maximize cᵀx subject to
// Ax <= b, x >= 0. It keeps a reversible mapping that lifts a standard-form
// solution back to the caller's own variables.
package standardize

import (
	"errors"
	"math"

	"github.com/adrg/linprog/internal/linexpr"
)

// Errors returned from Compile. These mirror the library's public error
// taxonomy and are re-exported under the root package.
var (
	ErrNoVariables           = errors.New("model has no variables")
	ErrObjectiveMissing      = errors.New("model objective was never set")
	ErrNonLinearNotSupported = errors.New("model contains an integer variable")
)

// Sense is a constraint's comparison against its right-hand side.
type Sense int

const (
	LE Sense = iota
	GE
	EQ
)

// ObjSense is the direction of optimization.
type ObjSense int

const (
	Minimize ObjSense = iota
	Maximize
)

// VarKind mirrors the domain variable's declared type. Binary is admitted and
// translated to a [0,1]-bounded continuous variable; Integer is rejected
// outright (see ErrNonLinearNotSupported).
type VarKind int

const (
	Continuous VarKind = iota
	Integer
	Binary
)

// Variable is the input shape Compile needs for one domain variable. D is the
// caller's own key type (e.g. a generational handle into its Model).
type Variable[D linexpr.Key[D]] struct {
	Key   D
	Name  string
	Kind  VarKind
	Lower float64
	Upper float64
}

// Constraint is the input shape Compile needs for one domain constraint.
// Semantics after normalization are LHS - RHS compared to 0 under Sense.
type Constraint[D linexpr.Key[D]] struct {
	Name  string
	LHS   *linexpr.Expr[D]
	Sense Sense
	RHS   *linexpr.Expr[D]
}

// Objective is the input shape Compile needs for the model's single
// objective.
type Objective[D linexpr.Key[D]] struct {
	Sense ObjSense
	Expr  *linexpr.Expr[D]
}

// VarKey identifies one standard-form variable. All standard variables are
// implicitly >= 0.
type VarKey struct {
	id int
}

// Less orders standard variables by creation order.
func (k VarKey) Less(other VarKey) bool { return k.id < other.id }

// Index returns the variable's creation-order index, for use by callers (such
// as the simplex package) that need a stable total order of their own.
func (k VarKey) Index() int { return k.id }

// StdConstraint is a single canonical row: Σ aᵢ·sᵢ <= B. B may be negative;
// a negative B is exactly what forces a Phase-1 run.
type StdConstraint struct {
	Expr *linexpr.Expr[VarKey]
	B    float64
}

// StandardModel is the canonical form a Standardizer compiles a Model into:
// variables >= 0, all constraints <= , objective always to be maximized.
type StandardModel struct {
	NumVars     int
	Constraints []StdConstraint
	Objective   *linexpr.Expr[VarKey]
}

type mappingKind int

const (
	mapPositive mappingKind = iota
	mapNegative
	mapSplit
)

// mapping is the per-domain-variable compilation record: how to recover the
// domain value from standard-form values.
type mapping struct {
	kind  mappingKind
	s     VarKey // used by Positive and Negative
	shift float64
	sp    VarKey // used by Split
	sn    VarKey // used by Split
}

// Standardizer holds the reversible per-variable mapping produced by Compile,
// plus whatever is needed to report the objective back in the caller's
// original sense.
type Standardizer[D linexpr.Key[D]] struct {
	eps      float64
	objSense ObjSense
	mapping  map[D]mapping
}

// Compile translates a Model's variables, constraints and objective into a
// StandardModel, returning the Standardizer needed to reconstruct a
// standard-form solution back into domain variable values.
func Compile[D linexpr.Key[D]](vars []Variable[D], constraints []Constraint[D], objective Objective[D], eps float64) (*Standardizer[D], *StandardModel, error) {
	if len(vars) == 0 {
		return nil, nil, ErrNoVariables
	}
	if objective.Expr == nil {
		return nil, nil, ErrObjectiveMissing
	}
	for _, v := range vars {
		if v.Kind == Integer {
			return nil, nil, ErrNonLinearNotSupported
		}
	}

	s := &Standardizer[D]{eps: eps, objSense: objective.Sense, mapping: make(map[D]mapping, len(vars))}
	sm := &StandardModel{}

	nextID := 0
	newVar := func() VarKey {
		k := VarKey{id: nextID}
		nextID++
		sm.NumVars++
		return k
	}
	addRow := func(e *linexpr.Expr[VarKey], b float64) {
		sm.Constraints = append(sm.Constraints, StdConstraint{Expr: e, B: b})
	}
	boundRow := func(v VarKey, b float64) {
		e := linexpr.NewWithTerms[VarKey](eps, []linexpr.Term[VarKey]{{Var: v, Coef: 1}})
		addRow(e, b)
	}

	for _, v := range vars {
		lb, ub := v.Lower, v.Upper
		if v.Kind == Binary {
			lb, ub = 0, 1
		}

		switch {
		case lb == 0 && math.IsInf(ub, 1):
			// non-negative, unbounded above
			sv := newVar()
			s.mapping[v.Key] = mapping{kind: mapPositive, s: sv, shift: 0}

		case lb == 0 && !math.IsInf(ub, 1):
			// non-negative, finite upper bound (also covers Binary: [0,1])
			sv := newVar()
			s.mapping[v.Key] = mapping{kind: mapPositive, s: sv, shift: 0}
			boundRow(sv, ub)

		case ub == 0 && !math.IsInf(lb, -1):
			// non-positive: x = s + lb, s >= 0, s <= -lb
			sv := newVar()
			s.mapping[v.Key] = mapping{kind: mapPositive, s: sv, shift: lb}
			boundRow(sv, -lb)

		case math.IsInf(lb, -1) && math.IsInf(ub, 1):
			// free: x = sp - sn
			sp := newVar()
			sn := newVar()
			s.mapping[v.Key] = mapping{kind: mapSplit, sp: sp, sn: sn}

		case math.IsInf(lb, -1) && !math.IsInf(ub, 1):
			// lower-free, upper bound finite: x = -s + ub, s >= 0
			sv := newVar()
			s.mapping[v.Key] = mapping{kind: mapNegative, s: sv, shift: ub}

		case !math.IsInf(lb, -1) && math.IsInf(ub, 1):
			// upper-free, lower bound finite: x = s + lb, s >= 0
			sv := newVar()
			s.mapping[v.Key] = mapping{kind: mapPositive, s: sv, shift: lb}

		default:
			// both bounds finite (and lb != 0): x = s + lb, s in [0, ub-lb]
			sv := newVar()
			s.mapping[v.Key] = mapping{kind: mapPositive, s: sv, shift: lb}
			boundRow(sv, ub-lb)
		}
	}

	for _, c := range constraints {
		e := c.LHS.Clone()
		e.AddScaledExpr(c.RHS, -1, eps)
		stdExpr := s.substitute(e)
		b := -stdExpr.Constant()
		stdExpr.AddConstant(-stdExpr.Constant())

		switch c.Sense {
		case LE:
			addRow(stdExpr, b)
		case GE:
			neg := stdExpr.Clone()
			neg.Scale(-1, eps)
			addRow(neg, -b)
		case EQ:
			addRow(stdExpr, b)
			neg := stdExpr.Clone()
			neg.Scale(-1, eps)
			addRow(neg, -b)
		}
	}

	stdObjective := s.substitute(objective.Expr)
	if objective.Sense == Minimize {
		stdObjective.Scale(-1, eps)
	}
	sm.Objective = stdObjective

	return s, sm, nil
}

// substitute rewrites e (over domain keys) into an equivalent expression over
// standard variable keys, following each domain variable's mapping record.
func (s *Standardizer[D]) substitute(e *linexpr.Expr[D]) *linexpr.Expr[VarKey] {
	out := linexpr.NewWithConstant[VarKey](e.Constant())
	for _, t := range e.Terms() {
		m := s.mapping[t.Var]
		switch m.kind {
		case mapPositive:
			out.AddTerm(m.s, t.Coef, s.eps)
			out.AddConstant(t.Coef * m.shift)
		case mapNegative:
			out.AddTerm(m.s, -t.Coef, s.eps)
			out.AddConstant(t.Coef * m.shift)
		case mapSplit:
			out.AddTerm(m.sp, t.Coef, s.eps)
			out.AddTerm(m.sn, -t.Coef, s.eps)
		}
	}
	return out
}

// Reconstruct lifts a standard-form solution (indexed by VarKey, 0 for
// variables the solver optimized away) back into domain variable values.
func (s *Standardizer[D]) Reconstruct(values map[VarKey]float64) map[D]float64 {
	out := make(map[D]float64, len(s.mapping))
	for d, m := range s.mapping {
		switch m.kind {
		case mapPositive:
			out[d] = values[m.s] + m.shift
		case mapNegative:
			out[d] = -values[m.s] + m.shift
		case mapSplit:
			out[d] = values[m.sp] - values[m.sn]
		}
	}
	return out
}

// ReportObjective undoes the Minimize sign flip applied during compilation.
func (s *Standardizer[D]) ReportObjective(stdObjectiveValue float64) float64 {
	if s.objSense == Minimize {
		return -stdObjectiveValue
	}
	return stdObjectiveValue
}
