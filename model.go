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

/*

Package linprog is a library for modeling and solving linear programming
problems with a pure-Go two-phase revised simplex method.

As an example of the API, the model of the following problem:

	Maximize:
	  z = 3x + 4y
	Subject to:
	  x + 2y <= 14
	  3x - y <= 0
	  x - y <= 2
	  x, y >= 0

can be expressed with linprog like this:

	package main

	import (
		"fmt"

		"github.com/adrg/linprog"
	)

	func main() {
		model, err := linprog.NewModel()
		if err != nil {
			panic(err)
		}

		x := model.AddVariable().Name("x").NonNegative().Continuous()
		y := model.AddVariable().Name("y").NonNegative().Continuous()

		model.AddConstraint(x.Expr().Plus(y.Times(2))).Name("capacity").LE(linprog.Const(14))
		model.AddConstraint(x.Times(3).Minus(y.Expr())).LE(linprog.Const(0))
		model.AddConstraint(x.Expr().Minus(y.Expr())).LE(linprog.Const(2))

		model.SetObjective(linprog.Maximize, x.Times(3).Plus(y.Times(4)))

		solution, err := model.Solve()
		if err != nil {
			panic(err)
		}

		fmt.Println(solution.Status())
		obj, _ := solution.ObjectiveValue()
		fmt.Printf("z = %f, x = %f, y = %f\n", obj, solution.Value(x), solution.Value(y))
	}

*/
package linprog

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/adrg/linprog/internal/simplex"
	"github.com/adrg/linprog/internal/standardize"
)

// Model is a linear programming problem under construction: a set of
// variables, a set of linear constraints over them, and a single linear
// objective. A Model exclusively owns its variables, constraints and
// objective; a call to Solve borrows them immutably to compile and solve a
// standard-form copy, never mutating the Model itself.
type Model struct {
	mu sync.RWMutex

	vars        []variableRecord
	constraints []constraintRecord
	objSense    Sense
	objective   *Expr

	maxIterations int
	tolerance     float64

	logger Logger
}

// NewModel creates an empty model with no variables, no constraints and no
// objective. Options may override the default logger, iteration budget or
// tolerance.
func NewModel(opts ...Option) (*Model, error) {
	model := &Model{
		maxIterations: DefaultMaxIterations,
		tolerance:     DefaultTolerance,
		logger:        noopLogger{},
	}

	for _, opt := range opts {
		if err := opt(model); err != nil {
			return nil, fmt.Errorf("applying model option: %w", err)
		}
	}

	return model, nil
}

// AddVariable begins declaring a new variable. Nothing is recorded on the
// Model until a terminal kind selector is called on the returned builder.
// The builder starts with no bounds (-Inf, +Inf).
func (m *Model) AddVariable() *VariableBuilder {
	return &VariableBuilder{model: m, lower: math.Inf(-1), upper: math.Inf(1)}
}

// AddConstraint begins declaring a new constraint with the given left-hand
// side. Nothing is recorded on the Model until a terminal sense selector
// (LE, GE, EQ) is called on the returned builder.
func (m *Model) AddConstraint(lhs *Expr) *ConstraintBuilder {
	return &ConstraintBuilder{model: m, lhs: lhs}
}

// VariableCount returns the number of variables declared so far.
func (m *Model) VariableCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.vars)
}

// ConstraintCount returns the number of constraints declared so far.
func (m *Model) ConstraintCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.constraints)
}

// Solve compiles the model into canonical form and runs the two-phase
// simplex method to completion.
//
// It returns an error only when the model itself is malformed: no
// variables, no objective, or an integer variable present. A well-formed
// model that turns out infeasible or unbounded is reported through
// Solution.Status, never as an error.
func (m *Model) Solve() (*Solution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	start := time.Now()

	vars := make([]standardize.Variable[VariableKey], len(m.vars))
	for i, v := range m.vars {
		vars[i] = standardize.Variable[VariableKey]{
			Key:   v.key,
			Name:  v.name,
			Kind:  v.kind,
			Lower: v.lower,
			Upper: v.upper,
		}
	}

	cons := make([]standardize.Constraint[VariableKey], len(m.constraints))
	for i, c := range m.constraints {
		cons[i] = standardize.Constraint[VariableKey]{
			Name:  c.name,
			LHS:   c.lhs.e,
			Sense: c.sense,
			RHS:   c.rhs.e,
		}
	}

	var objExpr *Expr
	obj := standardize.Objective[VariableKey]{Sense: m.objSense.toStandardize()}
	if m.objective != nil {
		objExpr = m.objective
		obj.Expr = objExpr.e
	}

	standardizer, sm, err := standardize.Compile[VariableKey](vars, cons, obj, m.tolerance)
	if err != nil {
		return nil, err
	}

	dict := simplex.NewSlackDictionary(sm, m.tolerance)
	res := simplex.Solve(dict, simplex.Config{MaxIterations: m.maxIterations, Tolerance: m.tolerance})

	elapsed := time.Since(start)
	m.logger.Print(fmt.Sprintf("solve finished: status=%s iterations=%d elapsed=%s", res.Status, res.Iterations, elapsed))

	sol := &Solution{
		status:     res.Status,
		iterations: res.Iterations,
		solveTime:  elapsed,
	}
	if res.Status == StatusOptimal || res.Status == StatusMaxIterationsReached {
		sol.objective = standardizer.ReportObjective(res.ObjectiveValue)
		sol.hasObjective = true
		sol.values = standardizer.Reconstruct(res.Values)
	}
	return sol, nil
}
