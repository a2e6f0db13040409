// Package agg implements concrete MCDA scoring methods that turn a
// decision.Matrix into a rank.Ranking: the weighted sum model (WSM) and the
// weighted product model (WPM).
//
// Both methods share one preprocessing chain, column by column:
//
//  1. push negative columns up so their minimum is zero,
//  2. add one to columns containing a zero (keeps values strictly positive),
//  3. sum-normalize every column,
//  4. invert minimized criteria by taking the reciprocal 1/x.
//
// WeightedSum then scores each alternative by Σⱼ wⱼ·xⱼ; WeightedProduct
// scores by Σⱼ wⱼ·log(xⱼ) — the log transform replaces the raw product to
// avoid float underflow without changing the induced order. Scores are
// ranked with tie-aware competition ranking (larger score = rank 1) and
// attached to the result as Extra.Points.
//
// Both types are stateless and satisfy the reversal.Ranker capability.
package agg
