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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

const delta = 1e-6

func closeEnough(t *testing.T, want, got float64) {
	t.Helper()
	assert.True(t, floats.EqualWithinAbs(want, got, delta), "want %f, got %f", want, got)
}

func TestInstantiation(t *testing.T) {
	model, err := NewModel()
	require.NoError(t, err)
	assert.Equal(t, 0, model.VariableCount())
	assert.Equal(t, 0, model.ConstraintCount())
}

func TestAddVariableAndConstraintTrackCounts(t *testing.T) {
	model, err := NewModel()
	require.NoError(t, err)

	x := model.AddVariable().Name("x").NonNegative().Continuous()
	y := model.AddVariable().Name("y").NonNegative().Continuous()
	assert.Equal(t, 2, model.VariableCount())

	model.AddConstraint(x.Expr().Plus(y.Expr())).LE(Const(10))
	assert.Equal(t, 1, model.ConstraintCount())
}

func TestScenarioMaximizeTwoVariables(t *testing.T) {
	model, err := NewModel()
	require.NoError(t, err)

	x := model.AddVariable().Name("x").NonNegative().Continuous()
	y := model.AddVariable().Name("y").NonNegative().Continuous()

	model.AddConstraint(x.Expr().Plus(y.Times(2))).Name("capacity").LE(Const(14))
	model.AddConstraint(x.Times(3).Minus(y.Expr())).LE(Const(0))
	model.AddConstraint(x.Expr().Minus(y.Expr())).LE(Const(2))

	model.SetObjective(Maximize, x.Times(3).Plus(y.Times(4)))

	solution, err := model.Solve()
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, solution.Status())

	obj, ok := solution.ObjectiveValue()
	require.True(t, ok)
	closeEnough(t, 30, obj)
	closeEnough(t, 2, solution.Value(x))
	closeEnough(t, 6, solution.Value(y))
}

func TestScenarioMinimizeWithGEConstraint(t *testing.T) {
	model, err := NewModel()
	require.NoError(t, err)

	x := model.AddVariable().Name("x").NonNegative().Continuous()
	y := model.AddVariable().Name("y").NonNegative().Continuous()

	model.AddConstraint(x.Expr().Plus(y.Expr())).GE(Const(10))
	model.AddConstraint(x.Times(2).Plus(y.Expr())).GE(Const(12))

	model.SetObjective(Minimize, x.Times(2).Plus(y.Times(1)))

	solution, err := model.Solve()
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, solution.Status())

	obj, ok := solution.ObjectiveValue()
	require.True(t, ok)
	closeEnough(t, 12, obj)
}

func TestScenarioEqualityConstraint(t *testing.T) {
	model, err := NewModel()
	require.NoError(t, err)

	x := model.AddVariable().Name("x").NonNegative().Continuous()
	y := model.AddVariable().Name("y").NonNegative().Continuous()

	model.AddConstraint(x.Expr().Plus(y.Expr())).EQ(Const(10))
	model.SetObjective(Maximize, x.Expr().Plus(y.Times(0)))

	solution, err := model.Solve()
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, solution.Status())

	obj, ok := solution.ObjectiveValue()
	require.True(t, ok)
	closeEnough(t, 10, obj)
}

func TestScenarioDegenerateEqualities(t *testing.T) {
	model, err := NewModel()
	require.NoError(t, err)

	x := model.AddVariable().Name("x").NonNegative().Continuous()
	y := model.AddVariable().Name("y").NonNegative().Continuous()

	model.AddConstraint(x.Expr().Plus(y.Expr())).EQ(Const(10))
	model.AddConstraint(x.Expr().Plus(y.Expr())).LE(Const(10))
	model.SetObjective(Maximize, x.Expr().Plus(y.Expr()))

	solution, err := model.Solve()
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, solution.Status())

	obj, ok := solution.ObjectiveValue()
	require.True(t, ok)
	closeEnough(t, 10, obj)
}

func TestScenarioEpsilonPerturbation(t *testing.T) {
	model, err := NewModel()
	require.NoError(t, err)

	x := model.AddVariable().Name("x").NonNegative().Continuous()
	y := model.AddVariable().Name("y").NonNegative().Continuous()
	model.AddConstraint(x.Times(1e-9).Plus(y.Expr())).LE(Const(1))
	model.SetObjective(Maximize, x.Expr().Plus(y.Expr()))

	solution, err := model.Solve()
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, solution.Status())
	assert.Greater(t, solution.Value(x), 1e8)
}

func TestBoundaryInfeasibleNonNegativeWithNegativeUpperBound(t *testing.T) {
	model, err := NewModel()
	require.NoError(t, err)

	x := model.AddVariable().Name("x").Bounds(0, -1).Continuous()
	model.SetObjective(Minimize, x.Expr())

	solution, err := model.Solve()
	require.NoError(t, err)
	assert.Equal(t, StatusInfeasible, solution.Status())

	_, ok := solution.ObjectiveValue()
	assert.False(t, ok)
}

func TestBoundaryUnboundedSingleFreeVariable(t *testing.T) {
	model, err := NewModel()
	require.NoError(t, err)

	x := model.AddVariable().Name("x").NonNegative().Continuous()
	model.SetObjective(Maximize, x.Expr())

	solution, err := model.Solve()
	require.NoError(t, err)
	assert.Equal(t, StatusUnbounded, solution.Status())
}

func TestBoundaryZeroObjective(t *testing.T) {
	model, err := NewModel()
	require.NoError(t, err)

	x := model.AddVariable().Name("x").Bounds(0, 5).Continuous()
	model.AddConstraint(x.Expr()).LE(Const(5))
	model.SetObjective(Minimize, Const(0))

	solution, err := model.Solve()
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, solution.Status())

	obj, ok := solution.ObjectiveValue()
	require.True(t, ok)
	closeEnough(t, 0, obj)
}

func TestBoundaryRedundantConstraintsTakeTighterBound(t *testing.T) {
	model, err := NewModel()
	require.NoError(t, err)

	x := model.AddVariable().Name("x").NonNegative().Continuous()
	model.AddConstraint(x.Expr()).LE(Const(100))
	model.AddConstraint(x.Expr()).LE(Const(5))
	model.SetObjective(Maximize, x.Expr())

	solution, err := model.Solve()
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, solution.Status())

	obj, ok := solution.ObjectiveValue()
	require.True(t, ok)
	closeEnough(t, 5, obj)
}

func TestBoundaryBinaryVariableBoundedByUnitUpperBound(t *testing.T) {
	model, err := NewModel()
	require.NoError(t, err)

	b := model.AddVariable().Name("b").Binary()
	model.SetObjective(Maximize, b.Times(7))

	solution, err := model.Solve()
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, solution.Status())

	obj, ok := solution.ObjectiveValue()
	require.True(t, ok)
	closeEnough(t, 7, obj)
	closeEnough(t, 1, solution.Value(b))
}

func TestSolveFailsWithNoVariables(t *testing.T) {
	model, err := NewModel()
	require.NoError(t, err)
	model.SetObjective(Minimize, Const(0))

	_, err = model.Solve()
	assert.ErrorIs(t, err, ErrNoVariables)
}

func TestSolveFailsWithoutObjective(t *testing.T) {
	model, err := NewModel()
	require.NoError(t, err)
	model.AddVariable().Name("x").NonNegative().Continuous()

	_, err = model.Solve()
	assert.ErrorIs(t, err, ErrObjectiveMissing)
}

func TestSolveFailsWithIntegerVariable(t *testing.T) {
	model, err := NewModel()
	require.NoError(t, err)
	x := model.AddVariable().Name("x").NonNegative().Integer()
	model.SetObjective(Minimize, x.Expr())

	_, err = model.Solve()
	assert.ErrorIs(t, err, ErrNonLinearNotSupported)
}

func TestWithMaxIterationsAndToleranceOptionsApply(t *testing.T) {
	model, err := NewModel(WithMaxIterations(3), WithTolerance(1e-6))
	require.NoError(t, err)
	assert.Equal(t, 3, model.maxIterations)
	assert.InDelta(t, 1e-6, model.tolerance, 0)
}

func TestMaxIterationsReachedIsReflectedInSolution(t *testing.T) {
	model, err := NewModel(WithMaxIterations(0))
	require.NoError(t, err)

	x := model.AddVariable().Name("x").NonNegative().Continuous()
	y := model.AddVariable().Name("y").NonNegative().Continuous()
	model.AddConstraint(x.Expr().Plus(y.Times(2))).LE(Const(14))
	model.SetObjective(Maximize, x.Times(3).Plus(y.Times(4)))

	solution, err := model.Solve()
	require.NoError(t, err)
	assert.Equal(t, StatusMaxIterationsReached, solution.Status())
}

type recordingLogger struct {
	messages []string
}

func (r *recordingLogger) Print(v ...interface{}) {
	for _, x := range v {
		if s, ok := x.(string); ok {
			r.messages = append(r.messages, s)
		}
	}
}

func TestWithLoggerReceivesSolveSummary(t *testing.T) {
	logger := &recordingLogger{}
	model, err := NewModel(WithLogger(logger))
	require.NoError(t, err)

	x := model.AddVariable().Name("x").Bounds(0, 5).Continuous()
	model.AddConstraint(x.Expr()).LE(Const(5))
	model.SetObjective(Maximize, x.Expr())

	_, err = model.Solve()
	require.NoError(t, err)
	assert.NotEmpty(t, logger.messages)
}

func TestOptionErrorPropagatesFromNewModel(t *testing.T) {
	boom := assert.AnError
	_, err := NewModel(func(m *Model) error { return boom })
	assert.ErrorIs(t, err, boom)
}
