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

import "github.com/adrg/linprog/internal/standardize"

// VariableKey is a stable, cheap-to-copy handle to a variable declared on a
// Model. It is the currency expressions, constraints and solutions are keyed
// by; it carries no pointer back to the Model and remains meaningful after
// the Model that created it is dropped.
type VariableKey struct {
	id int
}

// Less gives VariableKey a total order so it can key a linexpr.Expr.
func (k VariableKey) Less(other VariableKey) bool { return k.id < other.id }

type variableRecord struct {
	key   VariableKey
	name  string
	kind  standardize.VarKind
	lower float64
	upper float64
}

// VariableBuilder configures a new variable before it is added to its Model.
// Nothing is recorded on the Model until one of the terminal kind selectors
// (Continuous, Integer, Binary) is called.
type VariableBuilder struct {
	model *Model
	name  string
	lower float64
	upper float64
}

// Name sets the variable's display name.
func (b *VariableBuilder) Name(s string) *VariableBuilder {
	b.name = s
	return b
}

// LowerBound sets the variable's lower bound.
func (b *VariableBuilder) LowerBound(x float64) *VariableBuilder {
	b.lower = x
	return b
}

// UpperBound sets the variable's upper bound.
func (b *VariableBuilder) UpperBound(x float64) *VariableBuilder {
	b.upper = x
	return b
}

// Bounds sets both bounds at once.
func (b *VariableBuilder) Bounds(lo, hi float64) *VariableBuilder {
	b.lower = lo
	b.upper = hi
	return b
}

// NonNegative constrains the variable to x >= 0, leaving the upper bound
// untouched.
func (b *VariableBuilder) NonNegative() *VariableBuilder {
	b.lower = 0
	return b
}

// Continuous finalizes the variable as an ordinary continuous LP variable
// and returns its key.
func (b *VariableBuilder) Continuous() VariableKey {
	return b.build(standardize.Continuous)
}

// Integer finalizes the variable as an integer variable. The current solver
// is LP-only: a model containing one always fails Solve with
// ErrNonLinearNotSupported.
func (b *VariableBuilder) Integer() VariableKey {
	return b.build(standardize.Integer)
}

// Binary finalizes the variable as a binary variable, forcing its bounds to
// [0,1]. Solve admits it by relaxing it to a continuous [0,1]-bounded
// variable rather than rejecting it -- see DESIGN.md for this policy choice.
func (b *VariableBuilder) Binary() VariableKey {
	b.lower, b.upper = 0, 1
	return b.build(standardize.Binary)
}

func (b *VariableBuilder) build(kind standardize.VarKind) VariableKey {
	b.model.mu.Lock()
	defer b.model.mu.Unlock()

	key := VariableKey{id: len(b.model.vars)}
	b.model.vars = append(b.model.vars, variableRecord{
		key:   key,
		name:  b.name,
		kind:  kind,
		lower: b.lower,
		upper: b.upper,
	})
	return key
}
