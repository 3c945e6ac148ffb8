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

import (
	"errors"

	"github.com/adrg/linprog/internal/standardize"
)

// Errors returned from Model.Solve. A non-nil error here means the model
// itself is malformed; a well-formed but infeasible or unbounded model is
// reported through Solution.Status instead, never as an error.
var (
	ErrNoVariables           = standardize.ErrNoVariables
	ErrObjectiveMissing      = standardize.ErrObjectiveMissing
	ErrNonLinearNotSupported = standardize.ErrNonLinearNotSupported

	// ErrDivisionByZero is returned by Expr.Div when the divisor is zero.
	ErrDivisionByZero = errors.New("linprog: division by zero in expression")
)
