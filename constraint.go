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

// ConstraintKey is a stable handle to a constraint declared on a Model.
type ConstraintKey struct {
	id int
}

type constraintRecord struct {
	key   ConstraintKey
	name  string
	lhs   *Expr
	sense standardize.Sense
	rhs   *Expr
}

// ConstraintBuilder configures a new constraint's left-hand side before one
// of the terminal sense selectors (LE, GE, EQ) records it on the Model.
type ConstraintBuilder struct {
	model *Model
	name  string
	lhs   *Expr
}

// Name sets the constraint's display name.
func (b *ConstraintBuilder) Name(s string) *ConstraintBuilder {
	b.name = s
	return b
}

// LE finalizes the constraint as lhs <= rhs.
func (b *ConstraintBuilder) LE(rhs *Expr) ConstraintKey {
	return b.build(standardize.LE, rhs)
}

// GE finalizes the constraint as lhs >= rhs.
func (b *ConstraintBuilder) GE(rhs *Expr) ConstraintKey {
	return b.build(standardize.GE, rhs)
}

// EQ finalizes the constraint as lhs == rhs.
func (b *ConstraintBuilder) EQ(rhs *Expr) ConstraintKey {
	return b.build(standardize.EQ, rhs)
}

func (b *ConstraintBuilder) build(sense standardize.Sense, rhs *Expr) ConstraintKey {
	b.model.mu.Lock()
	defer b.model.mu.Unlock()

	key := ConstraintKey{id: len(b.model.constraints)}
	b.model.constraints = append(b.model.constraints, constraintRecord{
		key:   key,
		name:  b.name,
		lhs:   b.lhs,
		sense: sense,
		rhs:   rhs,
	})
	return key
}
