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

// Defaults mirror the ones baked into the solver's own Config: a generous
// iteration budget and a tolerance loose enough to ignore floating-point
// noise but tight enough not to mistake a genuine 1e-9 coefficient for zero.
const (
	DefaultMaxIterations = 10000
	DefaultTolerance     = 1e-10
)

// SetMaxIterations overrides the solver's iteration budget for this model.
func (m *Model) SetMaxIterations(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maxIterations = n
}

// SetTolerance overrides the solver's epsilon for this model. This is the
// single source of truth for epsilon: it drives both LinearExpr cleanup
// during standardization and the solver's own feasibility/optimality checks.
func (m *Model) SetTolerance(eps float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tolerance = eps
}
