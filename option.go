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

// Option configures a Model at construction time.
type Option func(*Model) error

// WithLogger attaches a Logger that receives informational messages about
// each solve. The default is a no-op logger.
func WithLogger(logger Logger) Option {
	return func(m *Model) error {
		m.logger = logger
		return nil
	}
}

// WithMaxIterations overrides the solver's default iteration budget.
func WithMaxIterations(n int) Option {
	return func(m *Model) error {
		m.maxIterations = n
		return nil
	}
}

// WithTolerance overrides the solver's default epsilon.
func WithTolerance(eps float64) Option {
	return func(m *Model) error {
		m.tolerance = eps
		return nil
	}
}
