// Package ranks: derived statistics over the stored rankings.
// Storage and retrieval live in comparator.go; everything here is computed
// on demand from the entries and allocates only small aligned vectors.

package ranks

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// CorrelationMethod selects the rank-correlation coefficient.
type CorrelationMethod int

const (
	// Spearman computes the Pearson correlation of the two rank vectors.
	// Rankings already are rank transforms, so no re-ranking is needed.
	Spearman CorrelationMethod = iota

	// Kendall computes the Kendall tau rank correlation.
	Kendall
)

// ErrBadMethod indicates an unknown CorrelationMethod.
var ErrBadMethod = errors.New("ranks: unknown correlation method")

// String implements fmt.Stringer.
func (m CorrelationMethod) String() string {
	switch m {
	case Spearman:
		return "spearman"
	case Kendall:
		return "kendall"
	default:
		return fmt.Sprintf("CorrelationMethod(%d)", int(m))
	}
}

// AlternativeRanks returns the named alternative's rank in every entry, in
// entry order. Entries that do not rank the alternative contribute the
// bottom-tie placeholder (their size plus one). An alternative unknown to
// every entry yields ErrUnknownAlternative.
//
// Complexity: O(entries * alternatives).
func (c *Comparator) AlternativeRanks(alt string) ([]float64, error) {
	out := make([]float64, len(c.entries))
	found := false
	for i, e := range c.entries {
		if v, ok := e.Ranking.RankOf(alt); ok {
			out[i] = float64(v)
			found = true
		} else {
			out[i] = float64(e.Ranking.Len() + 1)
		}
	}
	if !found {
		return nil, fmt.Errorf("AlternativeRanks(%q): %w", alt, ErrUnknownAlternative)
	}

	return out, nil
}

// Correlation measures agreement between entries a and b as a rank
// correlation in [-1, 1]. Both rankings are aligned over the union of their
// alternatives, padding missing ones with the bottom-tie placeholder, so
// entries with different universes stay comparable.
//
// A ranking with zero rank variance (every alternative tied) has no defined
// correlation; gonum then reports NaN, which is propagated as-is.
//
// Errors: ErrUnknownEntry, ErrBadMethod.
// Complexity: O(alternatives) plus the coefficient cost (Kendall sorts).
func (c *Comparator) Correlation(a, b string, method CorrelationMethod) (float64, error) {
	x, y, err := c.alignedPair(a, b)
	if err != nil {
		return 0, fmt.Errorf("Correlation: %w", err)
	}

	switch method {
	case Spearman:
		return stat.Correlation(x, y, nil), nil
	case Kendall:
		return stat.Kendall(x, y, nil), nil
	default:
		return 0, fmt.Errorf("Correlation: %v: %w", method, ErrBadMethod)
	}
}

// Reversals counts the unordered alternative pairs whose strict relative
// order swapped between entries a and b: pairs (x, y) with
// (ra[x]-ra[y])·(rb[x]-rb[y]) < 0. Pairs tied in either entry do not count.
//
// Errors: ErrUnknownEntry. Complexity: O(alternatives²).
func (c *Comparator) Reversals(a, b string) (int, error) {
	x, y, err := c.alignedPair(a, b)
	if err != nil {
		return 0, fmt.Errorf("Reversals: %w", err)
	}

	count := 0
	for i := 0; i < len(x); i++ {
		for j := i + 1; j < len(x); j++ {
			if (x[i]-x[j])*(y[i]-y[j]) < 0 {
				count++
			}
		}
	}

	return count, nil
}

// LastDiff folds the named alternative's rank deltas — its rank in each
// trial entry minus its rank in the first (original) entry — through the
// configured aggregator (median unless WithDiffAggregator overrode it).
//
// Errors: ErrNoTrials on a single-entry comparator, ErrUnknownAlternative.
// Complexity: O(entries * alternatives).
func (c *Comparator) LastDiff(alt string) (float64, error) {
	if len(c.entries) < 2 {
		return 0, fmt.Errorf("LastDiff(%q): %w", alt, ErrNoTrials)
	}
	ranksAcross, err := c.AlternativeRanks(alt)
	if err != nil {
		return 0, fmt.Errorf("LastDiff: %w", err)
	}

	diffs := make([]float64, len(ranksAcross)-1)
	for i, v := range ranksAcross[1:] {
		diffs[i] = v - ranksAcross[0]
	}

	return c.agg(diffs), nil
}

// AggregatorName returns the printable label of the LastDiff aggregator.
func (c *Comparator) AggregatorName() string { return c.aggName }

// alignedPair builds rank vectors for entries a and b over the union of
// their alternatives (a's order first, then b's extras in b's order),
// padding per the bottom-tie placeholder policy.
func (c *Comparator) alignedPair(a, b string) ([]float64, []float64, error) {
	ra, _, err := c.Ranks(a)
	if err != nil {
		return nil, nil, err
	}
	rb, _, err := c.Ranks(b)
	if err != nil {
		return nil, nil, err
	}

	universe := append([]string(nil), ra.Alternatives...)
	for _, alt := range rb.Alternatives {
		if _, ok := ra.RankOf(alt); !ok {
			universe = append(universe, alt)
		}
	}

	x := make([]float64, len(universe))
	y := make([]float64, len(universe))
	for i, alt := range universe {
		if v, ok := ra.RankOf(alt); ok {
			x[i] = float64(v)
		} else {
			x[i] = float64(ra.Len() + 1)
		}
		if v, ok := rb.RankOf(alt); ok {
			y[i] = float64(v)
		} else {
			y[i] = float64(rb.Len() + 1)
		}
	}

	return x, y, nil
}
