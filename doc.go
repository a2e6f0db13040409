// Package scikitcriteria is a toolkit for Multi-Criteria Decision Analysis
// (MCDA): rank a set of alternatives evaluated against multiple, possibly
// conflicting criteria, and audit how robust that ranking is under small
// perturbations of the input data.
//
// The module is organized as independent subpackages, leaves first:
//
//	decision/ — the DecisionMatrix: alternatives × criteria values, per-criterion
//	            MIN/MAX objectives and optional weights
//	rank/     — tie-aware competition ranking, the Ranking record, and
//	            pairwise dominance counting
//	norm/     — column-wise preprocessing kernels (push negatives, add-1-to-0,
//	            sum normalization, weight normalization)
//	agg/      — concrete scoring methods: WeightedSum and WeightedProduct
//	ranks/    — the Comparator: a named collection of rankings with
//	            correlation, reversal-count and diff-aggregation statistics
//	reversal/ — the rank-invariance checker: repeated mutation trials against
//	            a pluggable ranker, with missing-alternative reconciliation
//
// Quick example:
//
//	dm, _ := decision.New(
//	    []string{"A", "B", "C"},
//	    []string{"price", "quality"},
//	    [][]float64{{250, 8}, {190, 6}, {310, 9}},
//	    []decision.Objective{decision.Minimize, decision.Maximize},
//	)
//	chk, _ := reversal.New(agg.WeightedProduct{}, reversal.WithSeed(42))
//	rc, _ := chk.Evaluate(dm)
//	fmt.Println(rc.Names()) // [Original M.1]
//
// Every algorithm is deterministic given a fixed seed: random state is always
// an explicitly owned *rand.Rand, never process-global.
package scikitcriteria
