package agg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leliel12/scikitcriteria/agg"
	"github.com/leliel12/scikitcriteria/decision"
)

// singleCriterion builds a one-criterion matrix for order-only assertions.
func singleCriterion(t *testing.T, obj decision.Objective, col ...float64) *decision.Matrix {
	t.Helper()
	alts := make([]string, len(col))
	values := make([][]float64, len(col))
	for i, v := range col {
		alts[i] = string(rune('A' + i))
		values[i] = []float64{v}
	}
	dm, err := decision.New(alts, []string{"c"}, values, []decision.Objective{obj})
	require.NoError(t, err)

	return dm
}

// TestWeightedSum_MaximizeOrder verifies the induced order on a benefit
// criterion: larger raw value, better rank.
func TestWeightedSum_MaximizeOrder(t *testing.T) {
	dm := singleCriterion(t, decision.Maximize, 3, 1, 2)

	r, err := agg.WeightedSum{}.Evaluate(dm)
	require.NoError(t, err)
	assert.Equal(t, "WeightedSum", r.Method)
	assert.Equal(t, []string{"A", "B", "C"}, r.Alternatives)
	assert.Equal(t, []int{1, 3, 2}, r.Values)
	assert.Len(t, r.Extra.Points, 3)
	assert.False(t, r.HasTies())
}

// TestWeightedSum_MinimizeOrder verifies reciprocal inversion of a cost
// criterion: smaller raw value, better rank.
func TestWeightedSum_MinimizeOrder(t *testing.T) {
	dm := singleCriterion(t, decision.Minimize, 3, 1, 2)

	r, err := agg.WeightedSum{}.Evaluate(dm)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, r.Values)
}

// TestWeightedProduct_OrderMatchesSumOnSingleCriterion checks that WPM and
// WSM agree on one-criterion problems (log is monotone).
func TestWeightedProduct_OrderMatchesSumOnSingleCriterion(t *testing.T) {
	dm := singleCriterion(t, decision.Maximize, 5, 9, 7)

	wp, err := agg.WeightedProduct{}.Evaluate(dm)
	require.NoError(t, err)
	ws, err := agg.WeightedSum{}.Evaluate(dm)
	require.NoError(t, err)
	assert.Equal(t, ws.Values, wp.Values)
	assert.Equal(t, "WeightedProduct", wp.Method)
}

// TestWeightedProduct_WeightsShiftTheWinner gives the deciding criterion a
// dominant weight and checks the ranking follows it.
func TestWeightedProduct_WeightsShiftTheWinner(t *testing.T) {
	// B wins criterion c1, A wins c2. With c1 weighted heavily, B must lead.
	dm, err := decision.New(
		[]string{"A", "B"},
		[]string{"c1", "c2"},
		[][]float64{
			{1, 9},
			{9, 1},
		},
		[]decision.Objective{decision.Maximize, decision.Maximize},
		decision.WithWeights([]float64{10, 1}),
	)
	require.NoError(t, err)

	r, err := agg.WeightedProduct{}.Evaluate(dm)
	require.NoError(t, err)
	b, _ := r.RankOf("B")
	a, _ := r.RankOf("A")
	assert.Equal(t, 1, b)
	assert.Equal(t, 2, a)
}

// TestEvaluate_NegativesAndZeros exercises the push-negatives / add-1-to-0
// chain: mixed-sign columns must not error and keep the raw order.
func TestEvaluate_NegativesAndZeros(t *testing.T) {
	dm := singleCriterion(t, decision.Maximize, -2, 0, 4)

	r, err := agg.WeightedProduct{}.Evaluate(dm)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, r.Values)
}

// TestEvaluate_Ties verifies equal rows share a rank.
func TestEvaluate_Ties(t *testing.T) {
	dm := singleCriterion(t, decision.Maximize, 2, 2, 1)

	r, err := agg.WeightedSum{}.Evaluate(dm)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 3}, r.Values)
	assert.True(t, r.HasTies())
}

// TestEvaluate_NilMatrix rejects nil input.
func TestEvaluate_NilMatrix(t *testing.T) {
	_, err := agg.WeightedSum{}.Evaluate(nil)
	assert.ErrorIs(t, err, decision.ErrNilMatrix)
	_, err = agg.WeightedProduct{}.Evaluate(nil)
	assert.ErrorIs(t, err, decision.ErrNilMatrix)
}
