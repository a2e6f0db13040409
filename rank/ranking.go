package rank

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadRank indicates a non-positive rank value in a Ranking.
var ErrBadRank = errors.New("rank: rank values must be >= 1")

// ErrDuplicateAlternative indicates a repeated alternative name in a Ranking.
var ErrDuplicateAlternative = errors.New("rank: duplicate alternative")

// Extra is the fixed diagnostic payload attached to a Ranking.
//
// The schema is deliberately closed (no open-ended key/value bag):
//   - Points:    the raw goodness scores the ranking was derived from,
//     aligned with Alternatives (set by scoring methods; alternatives padded
//     in by the invariance checker carry NaN, since they were never scored).
//   - Noise:     the per-cell delta applied to the decision matrix in the
//     trial that produced this ranking (set by the invariance checker).
//   - Missing:   alternatives absent from the ranker's answer and padded in
//     with a placeholder rank (set by the invariance checker).
//   - Iteration: 1-based mutation-trial index, 0 for the original ranking.
type Extra struct {
	Points    []float64
	Noise     [][]float64
	Missing   []string
	Iteration int
}

// Ranking maps alternatives to positive competition ranks (1 = best),
// allowing ties. It is created by a scoring method, or synthesized by the
// invariance checker when a trial drops alternatives. Treat it as immutable
// once produced; the checker builds new Rankings instead of editing old ones.
type Ranking struct {
	// Method names the producer, e.g. "WeightedProduct".
	Method string

	// Alternatives holds the ordered alternative names.
	Alternatives []string

	// Values holds the rank of each alternative, aligned with Alternatives.
	Values []int

	// Extra carries the diagnostic payload (see Extra).
	Extra Extra
}

// NewRanking validates and builds a Ranking.
//
// Errors: ErrEmptyInput, ErrDimensionMismatch when labels and values have
// differing lengths, ErrDuplicateAlternative, ErrBadRank on values < 1.
//
// Complexity: O(n).
func NewRanking(method string, alternatives []string, values []int) (Ranking, error) {
	if len(alternatives) == 0 {
		return Ranking{}, fmt.Errorf("NewRanking(%s): %w", method, ErrEmptyInput)
	}
	if len(alternatives) != len(values) {
		return Ranking{}, fmt.Errorf("NewRanking(%s): %d alternatives, %d values: %w",
			method, len(alternatives), len(values), ErrDimensionMismatch)
	}
	seen := make(map[string]struct{}, len(alternatives))
	for i, name := range alternatives {
		if _, dup := seen[name]; dup {
			return Ranking{}, fmt.Errorf("NewRanking(%s): %q: %w", method, name, ErrDuplicateAlternative)
		}
		seen[name] = struct{}{}
		if values[i] < 1 {
			return Ranking{}, fmt.Errorf("NewRanking(%s): %q=%d: %w", method, name, values[i], ErrBadRank)
		}
	}

	return Ranking{
		Method:       method,
		Alternatives: append([]string(nil), alternatives...),
		Values:       append([]int(nil), values...),
	}, nil
}

// Len returns the number of ranked alternatives.
func (r Ranking) Len() int { return len(r.Alternatives) }

// RankOf returns the rank of the named alternative and whether it is ranked.
// Complexity: O(n); rankings are small and short-lived, so no index is kept.
func (r Ranking) RankOf(name string) (int, bool) {
	for i, alt := range r.Alternatives {
		if alt == name {
			return r.Values[i], true
		}
	}

	return 0, false
}

// HasTies reports whether at least two alternatives share a rank value.
// Derived on demand so a synthesized (padded) ranking stays consistent.
func (r Ranking) HasTies() bool {
	seen := make(map[int]struct{}, len(r.Values))
	for _, v := range r.Values {
		if _, dup := seen[v]; dup {
			return true
		}
		seen[v] = struct{}{}
	}

	return false
}

// String implements fmt.Stringer: "Method: alt=rank alt=rank ...".
func (r Ranking) String() string {
	var b strings.Builder
	b.WriteString(r.Method)
	b.WriteString(":")
	for i, alt := range r.Alternatives {
		fmt.Fprintf(&b, " %s=%d", alt, r.Values[i])
	}

	return b.String()
}
