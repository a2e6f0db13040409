package reversal

import (
	"errors"

	"github.com/leliel12/scikitcriteria/decision"
	"github.com/leliel12/scikitcriteria/rank"
)

// Ranker is the decision-method capability consumed by the checker: anything
// that can rank a decision matrix. Implementations may be stateful across
// calls (the checker assumes no purity) and may legitimately return a
// ranking covering only a subset of the matrix's alternatives.
type Ranker interface {
	Evaluate(dm *decision.Matrix) (rank.Ranking, error)
}

// MutationStrategy produces a perturbed copy of a decision matrix, given
// the most recent ranking, to probe ranking robustness.
//
// Contract: the returned matrix preserves the input's alternative and
// criterion labels, their order and the shape. A strategy violating this is
// a programming error in the strategy; the checker does not defend against
// it.
type MutationStrategy interface {
	GenerateMutations(dm *decision.Matrix, last rank.Ranking) (*decision.Matrix, error)
}

// LastDiffFunc summarizes an alternative's numeric rank diffs across
// repeated trials into one value (default: median).
type LastDiffFunc func([]float64) float64

const (
	// DefaultRepeats is the number of mutation trials when not configured.
	DefaultRepeats = 1

	// DefaultNoiseBound is the uniform-noise magnitude bound of the default
	// mutation strategy. Small relative to typical criterion scales so a
	// well-separated ranking should survive it.
	DefaultNoiseBound = 0.05

	// DefaultLastDiffName labels the default last-diff strategy.
	DefaultLastDiffName = "median"

	// OriginalName labels the first comparator entry.
	OriginalName = "Original"

	// TrialPrefix prefixes trial entry names: "M.1", "M.2", ...
	TrialPrefix = "M."
)

var (
	// ErrNilRanker is returned by New when the ranker is nil.
	ErrNilRanker = errors.New("reversal: ranker must be non-nil")

	// ErrBadLastDiff is returned by New when the last-diff strategy is nil.
	ErrBadLastDiff = errors.New("reversal: last-diff strategy must be non-nil")

	// ErrBadRepeats is returned by New when repeats < 1.
	ErrBadRepeats = errors.New("reversal: repeats must be >= 1")

	// ErrBadNoiseBound indicates a non-finite or non-positive noise bound.
	ErrBadNoiseBound = errors.New("reversal: noise bound must be finite and > 0")

	// ErrMissingAlternatives is returned by Evaluate when a trial ranking
	// drops alternatives and missing alternatives are not allowed. The
	// whole evaluation fails; no partial comparator is returned.
	ErrMissingAlternatives = errors.New("reversal: trial ranking dropped alternatives")
)
