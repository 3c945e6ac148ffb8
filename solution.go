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
	"time"

	"github.com/adrg/linprog/internal/simplex"
)

// Status is a solve's terminal outcome. None of these values are errors --
// they are valid, well-defined answers about the shape of a model's
// feasible region.
type Status = simplex.Status

const (
	StatusOptimal              = simplex.StatusOptimal
	StatusInfeasible           = simplex.StatusInfeasible
	StatusUnbounded            = simplex.StatusUnbounded
	StatusMaxIterationsReached = simplex.StatusMaxIterationsReached
)

// Solution is the immutable result of a Model.Solve call.
type Solution struct {
	status       Status
	objective    float64
	hasObjective bool
	values       map[VariableKey]float64
	iterations   int
	solveTime    time.Duration
}

// Status reports the solve's terminal outcome.
func (s *Solution) Status() Status {
	return s.status
}

// ObjectiveValue returns the objective value and true, when the status is
// Optimal or MaxIterationsReached (the only statuses for which the
// dictionary's last-known objective is meaningful).
func (s *Solution) ObjectiveValue() (float64, bool) {
	return s.objective, s.hasObjective
}

// Value returns k's value in this solution. A variable that is non-basic in
// the final dictionary sits at the bound it was shifted to during
// standardization (0 for a non-negative variable). Value returns 0 when the
// solution carries no values (any status other than Optimal or
// MaxIterationsReached) or when k was not declared on the solved Model.
func (s *Solution) Value(k VariableKey) float64 {
	return s.values[k]
}

// Iterations returns the number of simplex pivots performed.
func (s *Solution) Iterations() int {
	return s.iterations
}

// SolveTime returns how long Model.Solve took to produce this solution.
func (s *Solution) SolveTime() time.Duration {
	return s.solveTime
}
