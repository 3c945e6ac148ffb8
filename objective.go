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

// Sense is the model's optimization direction.
type Sense int

const (
	Minimize Sense = iota
	Maximize
)

func (s Sense) toStandardize() standardize.ObjSense {
	if s == Minimize {
		return standardize.Minimize
	}
	return standardize.Maximize
}

// SetObjective installs the model's single objective. Calling it again
// replaces any previously set objective.
func (m *Model) SetObjective(sense Sense, expr *Expr) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.objSense = sense
	m.objective = expr
}
