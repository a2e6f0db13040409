package rank

import (
	"fmt"
	"math"
)

// DominanceResult counts, for an ordered pair of alternatives (a, b), on how
// many criteria each one is strictly better than the other, honoring each
// criterion's optimization direction.
type DominanceResult struct {
	// ADominatesB is the number of criteria where a is strictly better.
	ADominatesB int

	// BDominatesA is the number of criteria where b is strictly better.
	BDominatesA int

	// Equal is the number of criteria where both values coincide.
	Equal int
}

// Dominates reports whether a wins on strictly more criteria than b.
func (d DominanceResult) Dominates() bool { return d.ADominatesB > d.BDominatesA }

// Dominance compares two alternatives criterion by criterion.
//
// Contract:
//   - a and b are the raw criterion values of the two alternatives, in the
//     same criterion order.
//   - minimize[j]==true means criterion j is a cost (smaller is better);
//     a nil mask treats every criterion as maximized.
//
// Errors: ErrDimensionMismatch when the vectors (or a non-nil mask) have
// differing lengths, ErrEmptyInput on empty vectors, ErrNaN on undefined
// values.
//
// Complexity: O(n) time, O(1) space.
func Dominance(a, b []float64, minimize []bool) (DominanceResult, error) {
	n := len(a)
	if n == 0 {
		return DominanceResult{}, fmt.Errorf("Dominance: %w", ErrEmptyInput)
	}
	if len(b) != n {
		return DominanceResult{}, fmt.Errorf("Dominance: len(a)=%d len(b)=%d: %w", n, len(b), ErrDimensionMismatch)
	}
	if minimize != nil && len(minimize) != n {
		return DominanceResult{}, fmt.Errorf("Dominance: len(minimize)=%d: %w", len(minimize), ErrDimensionMismatch)
	}

	var res DominanceResult
	for j := 0; j < n; j++ {
		av, bv := a[j], b[j]
		if math.IsNaN(av) || math.IsNaN(bv) {
			return DominanceResult{}, fmt.Errorf("Dominance: criterion %d: %w", j, ErrNaN)
		}
		// Orient the comparison: under minimization the smaller value wins.
		if minimize != nil && minimize[j] {
			av, bv = -av, -bv
		}
		switch {
		case av > bv:
			res.ADominatesB++
		case bv > av:
			res.BDominatesA++
		default:
			res.Equal++
		}
	}

	return res, nil
}
