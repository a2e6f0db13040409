// SPDX-License-Identifier: MIT

package decision_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leliel12/scikitcriteria/decision"
)

// newStockMatrix builds a small well-formed matrix shared by several tests.
func newStockMatrix(t *testing.T) *decision.Matrix {
	t.Helper()
	dm, err := decision.New(
		[]string{"AA", "MM", "PE"},
		[]string{"ROE", "CAP", "RI"},
		[][]float64{
			{7, 5, 35},
			{5, 4, 26},
			{5, 6, 28},
		},
		[]decision.Objective{decision.Maximize, decision.Maximize, decision.Minimize},
		decision.WithWeights([]float64{2, 4, 1}),
	)
	require.NoError(t, err)

	return dm
}

// TestNew_Valid verifies that a well-formed matrix reports consistent
// dimensions, labels and orientation metadata.
func TestNew_Valid(t *testing.T) {
	dm := newStockMatrix(t)

	assert.Equal(t, 3, dm.AlternativeCount())
	assert.Equal(t, 3, dm.CriteriaCount())
	assert.Equal(t, []string{"AA", "MM", "PE"}, dm.Alternatives())
	assert.Equal(t, []string{"ROE", "CAP", "RI"}, dm.Criteria())
	assert.Equal(t, []bool{false, false, true}, dm.MinimizeMask())
	assert.Equal(t, []float64{2, 4, 1}, dm.Weights())

	v, err := dm.Value(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 35.0, v)

	row, err := dm.RowOf("MM")
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 4, 26}, row)
}

// TestNew_ShapeErrors exercises every structural rejection path.
func TestNew_ShapeErrors(t *testing.T) {
	obj := []decision.Objective{decision.Maximize}

	_, err := decision.New(nil, []string{"c"}, nil, obj)
	assert.ErrorIs(t, err, decision.ErrBadShape, "empty alternatives must be rejected")

	_, err = decision.New([]string{"a"}, []string{"c"}, [][]float64{{1}, {2}}, obj)
	assert.ErrorIs(t, err, decision.ErrBadShape, "row count must match alternatives")

	_, err = decision.New([]string{"a", "b"}, []string{"c"}, [][]float64{{1}, {2, 3}}, obj)
	assert.ErrorIs(t, err, decision.ErrBadShape, "ragged rows must be rejected")

	_, err = decision.New([]string{"a"}, []string{"c"}, [][]float64{{1}},
		[]decision.Objective{decision.Maximize, decision.Minimize})
	assert.ErrorIs(t, err, decision.ErrDimensionMismatch, "objectives must match criteria")
}

// TestNew_LabelErrors covers duplicate and empty labels on both axes.
func TestNew_LabelErrors(t *testing.T) {
	obj := []decision.Objective{decision.Maximize}

	_, err := decision.New([]string{"a", "a"}, []string{"c"}, [][]float64{{1}, {2}}, obj)
	assert.ErrorIs(t, err, decision.ErrDuplicateLabel)

	_, err = decision.New([]string{"a"}, []string{""}, [][]float64{{1}}, obj)
	assert.ErrorIs(t, err, decision.ErrEmptyLabel)

	twoObj := []decision.Objective{decision.Maximize, decision.Minimize}
	_, err = decision.New([]string{"a"}, []string{"c", "c"}, [][]float64{{1, 2}}, twoObj)
	assert.ErrorIs(t, err, decision.ErrDuplicateLabel)
}

// TestNew_NumericErrors rejects NaN/Inf cells and bad weights.
func TestNew_NumericErrors(t *testing.T) {
	obj := []decision.Objective{decision.Maximize}

	_, err := decision.New([]string{"a"}, []string{"c"}, [][]float64{{math.NaN()}}, obj)
	assert.ErrorIs(t, err, decision.ErrNaNInf)

	_, err = decision.New([]string{"a"}, []string{"c"}, [][]float64{{math.Inf(1)}}, obj)
	assert.ErrorIs(t, err, decision.ErrNaNInf)

	_, err = decision.New([]string{"a"}, []string{"c"}, [][]float64{{1}}, obj,
		decision.WithWeights([]float64{-1}))
	assert.ErrorIs(t, err, decision.ErrBadWeight)

	_, err = decision.New([]string{"a"}, []string{"c"}, [][]float64{{1}}, obj,
		decision.WithWeights([]float64{1, 2}))
	assert.ErrorIs(t, err, decision.ErrDimensionMismatch)
}

// TestParseObjective checks the accepted textual forms and the rejection path.
func TestParseObjective(t *testing.T) {
	for _, s := range []string{"min", "MIN", " Minimize "} {
		o, err := decision.ParseObjective(s)
		require.NoError(t, err, s)
		assert.Equal(t, decision.Minimize, o)
	}
	o, err := decision.ParseObjective("maximize")
	require.NoError(t, err)
	assert.Equal(t, decision.Maximize, o)

	_, err = decision.ParseObjective("sideways")
	assert.ErrorIs(t, err, decision.ErrBadObjective)
}

// TestMatrix_CopiesAreIndependent verifies that accessors and Clone never
// alias internal storage.
func TestMatrix_CopiesAreIndependent(t *testing.T) {
	dm := newStockMatrix(t)

	vals := dm.Values()
	vals[0][0] = -999
	again, err := dm.Value(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, again, "mutating Values() must not touch the matrix")

	clone := dm.Clone()
	assert.Equal(t, dm.Alternatives(), clone.Alternatives())
	assert.Equal(t, dm.Values(), clone.Values())
	assert.Equal(t, dm.Weights(), clone.Weights())
}

// TestMatrix_WithValues swaps the cell table while keeping labels/objectives.
func TestMatrix_WithValues(t *testing.T) {
	dm := newStockMatrix(t)

	shifted := dm.Values()
	for i := range shifted {
		for j := range shifted[i] {
			shifted[i][j] += 0.5
		}
	}
	mutated, err := dm.WithValues(shifted)
	require.NoError(t, err)
	assert.Equal(t, dm.Alternatives(), mutated.Alternatives())
	assert.Equal(t, dm.Objectives(), mutated.Objectives())
	v, err := mutated.Value(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	// Shape violations surface as construction errors.
	_, err = dm.WithValues([][]float64{{1, 2, 3}})
	assert.ErrorIs(t, err, decision.ErrBadShape)
}

// TestMatrix_IndexErrors covers bounds and unknown-name lookups.
func TestMatrix_IndexErrors(t *testing.T) {
	dm := newStockMatrix(t)

	_, err := dm.Value(3, 0)
	assert.ErrorIs(t, err, decision.ErrOutOfRange)
	_, err = dm.Value(0, -1)
	assert.ErrorIs(t, err, decision.ErrOutOfRange)
	_, err = dm.Row(17)
	assert.ErrorIs(t, err, decision.ErrOutOfRange)
	_, err = dm.RowOf("GN")
	assert.ErrorIs(t, err, decision.ErrUnknownAlternative)

	_, ok := dm.AlternativeIndex("GN")
	assert.False(t, ok)
	i, ok := dm.AlternativeIndex("PE")
	assert.True(t, ok)
	assert.Equal(t, 2, i)
}

// TestMatrix_NoWeights verifies the nil-weights contract.
func TestMatrix_NoWeights(t *testing.T) {
	dm, err := decision.New(
		[]string{"a", "b"}, []string{"c"},
		[][]float64{{1}, {2}},
		[]decision.Objective{decision.Maximize},
	)
	require.NoError(t, err)
	assert.Nil(t, dm.Weights())
	assert.Nil(t, dm.Clone().Weights())
}
