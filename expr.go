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

package linprog

import "github.com/adrg/linprog/internal/linexpr"

// buildEps is the epsilon used while assembling user-facing expressions. It
// is deliberately 0: term merging here only ever cancels exactly (x - x),
// never fuzzily. Fuzzy, user-configurable cleanup happens once, during
// Model.Solve, driven by the model's own tolerance -- see SetTolerance and
// WithTolerance.
const buildEps = 0

// Expr is a linear combination of variables plus a constant: the value a
// user builds out of Variable handles, scalars, and the Plus/Minus/Scale/Neg
// operators, and ultimately passes to AddConstraint or SetObjective.
type Expr struct {
	e *linexpr.Expr[VariableKey]
}

// Const returns a constant expression with no variable terms.
func Const(k float64) *Expr {
	return &Expr{e: linexpr.NewWithConstant[VariableKey](k)}
}

// Sum folds a list of expressions with Plus, left to right. Sum() with no
// arguments returns the zero expression.
func Sum(exprs ...*Expr) *Expr {
	out := Const(0)
	for _, e := range exprs {
		out = out.Plus(e)
	}
	return out
}

// Expr returns k as a single-term expression with coefficient 1.
func (k VariableKey) Expr() *Expr {
	return &Expr{e: linexpr.NewWithTerms(buildEps, []linexpr.Term[VariableKey]{{Var: k, Coef: 1}})}
}

// Times returns k scaled by c, as an expression.
func (k VariableKey) Times(c float64) *Expr {
	return &Expr{e: linexpr.NewWithTerms(buildEps, []linexpr.Term[VariableKey]{{Var: k, Coef: c}})}
}

// Plus returns a new expression equal to e + other.
func (e *Expr) Plus(other *Expr) *Expr {
	out := e.e.Clone()
	out.AddScaledExpr(other.e, 1, buildEps)
	return &Expr{e: out}
}

// Minus returns a new expression equal to e - other.
func (e *Expr) Minus(other *Expr) *Expr {
	out := e.e.Clone()
	out.AddScaledExpr(other.e, -1, buildEps)
	return &Expr{e: out}
}

// Scale returns a new expression equal to e * s.
func (e *Expr) Scale(s float64) *Expr {
	out := e.e.Clone()
	out.Scale(s, buildEps)
	return &Expr{e: out}
}

// Neg returns a new expression equal to -e.
func (e *Expr) Neg() *Expr {
	return e.Scale(-1)
}

// Div returns a new expression equal to e / s. Dividing by zero is a
// construction-time error, never a runtime panic or a silently-infinite
// coefficient.
func (e *Expr) Div(s float64) (*Expr, error) {
	if s == 0 {
		return nil, ErrDivisionByZero
	}
	return e.Scale(1 / s), nil
}

// Coefficient returns the coefficient of k in e, or 0 if k does not appear.
func (e *Expr) Coefficient(k VariableKey) float64 {
	return e.e.Coefficient(k)
}

// Constant returns e's constant term.
func (e *Expr) Constant() float64 {
	return e.e.Constant()
}
