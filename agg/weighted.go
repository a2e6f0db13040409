package agg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/leliel12/scikitcriteria/decision"
	"github.com/leliel12/scikitcriteria/norm"
	"github.com/leliel12/scikitcriteria/rank"
)

// WeightedSum is the weighted sum model (WSM): after preprocessing, each
// alternative scores the weighted sum of its normalized criterion values.
type WeightedSum struct{}

// String implements fmt.Stringer; used by the invariance checker's repr.
func (WeightedSum) String() string { return "WeightedSum" }

// Evaluate ranks the alternatives of dm by weighted sum.
// Errors: decision.ErrNilMatrix on nil input; preprocessing and ranking
// errors propagate unchanged. Complexity: O(rows*cols).
func (ws WeightedSum) Evaluate(dm *decision.Matrix) (rank.Ranking, error) {
	return evaluate(ws.String(), dm, sumPoints)
}

// WeightedProduct is the weighted product model (WPM): like WSM but with
// multiplication as the aggregation, computed in log space.
type WeightedProduct struct{}

// String implements fmt.Stringer; used by the invariance checker's repr.
func (WeightedProduct) String() string { return "WeightedProduct" }

// Evaluate ranks the alternatives of dm by weighted log-product.
// Errors: decision.ErrNilMatrix on nil input; preprocessing and ranking
// errors propagate unchanged. Complexity: O(rows*cols).
func (wp WeightedProduct) Evaluate(dm *decision.Matrix) (rank.Ranking, error) {
	return evaluate(wp.String(), dm, productPoints)
}

// pointsFunc folds one preprocessed row into a scalar goodness score.
type pointsFunc func(row, weights []float64) float64

// sumPoints computes Σⱼ wⱼ·xⱼ.
func sumPoints(row, weights []float64) float64 {
	return floats.Dot(weights, row)
}

// productPoints computes Σⱼ wⱼ·log(xⱼ), the log form of Πⱼ xⱼ^wⱼ.
// Preprocessing guarantees xⱼ > 0, so the log is always defined.
func productPoints(row, weights []float64) float64 {
	var s float64
	for j, v := range row {
		s += weights[j] * math.Log(v)
	}

	return s
}

// evaluate runs the shared preprocess → score → rank pipeline.
func evaluate(method string, dm *decision.Matrix, points pointsFunc) (rank.Ranking, error) {
	if dm == nil {
		return rank.Ranking{}, fmt.Errorf("%s.Evaluate: %w", method, decision.ErrNilMatrix)
	}

	values, weights, err := preprocess(dm)
	if err != nil {
		return rank.Ranking{}, fmt.Errorf("%s.Evaluate: %w", method, err)
	}

	scores := make([]float64, len(values))
	for i, row := range values {
		scores[i] = points(row, weights)
	}

	ranksV, err := rank.Competition(scores, true)
	if err != nil {
		return rank.Ranking{}, fmt.Errorf("%s.Evaluate: %w", method, err)
	}
	r, err := rank.NewRanking(method, dm.Alternatives(), ranksV)
	if err != nil {
		return rank.Ranking{}, fmt.Errorf("%s.Evaluate: %w", method, err)
	}
	r.Extra.Points = scores

	return r, nil
}

// preprocess applies the shared column chain and normalizes weights.
// After it, every cell is strictly positive and minimized criteria are
// expressed as benefits (reciprocal inversion).
func preprocess(dm *decision.Matrix) ([][]float64, []float64, error) {
	values, err := norm.PushNegatives(dm.Values())
	if err != nil {
		return nil, nil, err
	}
	values, err = norm.Add1To0(values)
	if err != nil {
		return nil, nil, err
	}
	values, err = norm.SumNormalize(values)
	if err != nil {
		return nil, nil, err
	}

	for j, minimized := range dm.MinimizeMask() {
		if !minimized {
			continue
		}
		for i := range values {
			values[i][j] = 1 / values[i][j]
		}
	}

	weights, err := norm.NormalizeWeights(dm.Weights(), dm.CriteriaCount())
	if err != nil {
		return nil, nil, err
	}

	return values, weights, nil
}
