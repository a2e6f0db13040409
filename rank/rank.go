package rank

import (
	"errors"
	"math"
	"sort"
)

var (
	// ErrEmptyInput indicates an empty score vector.
	ErrEmptyInput = errors.New("rank: input must be non-empty")

	// ErrNaN indicates an undefined (NaN) score. Undefined values are a
	// domain error: they are rejected, never coerced into an order.
	ErrNaN = errors.New("rank: NaN score")

	// ErrDimensionMismatch indicates parallel inputs of differing lengths
	// (scores vs labels, or score vectors vs orientation mask).
	ErrDimensionMismatch = errors.New("rank: dimension mismatch")
)

// Competition computes tie-aware competition ranks for a score vector.
//
// Contract:
//   - rank 1 is best; reverse=true means a larger score is better (the
//     usual "goodness" orientation of scoring methods), reverse=false
//     means a smaller score is better.
//   - equal scores receive equal ranks; the next distinct score resumes at
//     its positional rank, so gaps never exceed the preceding tie-group
//     size ("1224" competition ranking).
//
// Errors: ErrEmptyInput on len(scores)==0, ErrNaN on any NaN score.
//
// Complexity: O(n log n) time, O(n) space.
func Competition(scores []float64, reverse bool) ([]int, error) {
	n := len(scores)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	for _, v := range scores {
		if math.IsNaN(v) {
			return nil, ErrNaN
		}
	}

	// Sort positions by score; stability keeps equal scores in input order,
	// which is irrelevant for the resulting rank values but keeps the scan
	// below deterministic.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if reverse {
			return scores[order[a]] > scores[order[b]]
		}

		return scores[order[a]] < scores[order[b]]
	})

	// Single pass: a position opens a new rank only when its score differs
	// from the previous one; otherwise it inherits the tie-group rank.
	out := make([]int, n)
	current := 0
	for pos, idx := range order {
		if pos == 0 || scores[idx] != scores[order[pos-1]] {
			current = pos + 1
		}
		out[idx] = current
	}

	return out, nil
}
