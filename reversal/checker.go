// Package reversal - the RankInvariantChecker orchestrator.
//
// This file provides the canonical entry point of the robustness audit:
// construction with strict capability validation, then Evaluate, a staged
// pipeline (original ranking → chained mutation trials → reconciliation →
// comparator assembly). All sentinel errors live in types.go.

package reversal

import (
	"fmt"
	"math"

	"github.com/leliel12/scikitcriteria/decision"
	"github.com/leliel12/scikitcriteria/rank"
	"github.com/leliel12/scikitcriteria/ranks"
)

// RankInvariantChecker repeatedly perturbs a decision matrix, re-runs a
// ranking method and collects the resulting rankings for statistical
// comparison against the original.
//
// Build it with New; the zero value is not usable. A checker may be reused
// across Evaluate calls, but not concurrently (see package doc).
type RankInvariantChecker struct {
	ranker       Ranker
	strategy     MutationStrategy // nil selects the default per-call strategy
	lastDiff     LastDiffFunc
	lastDiffName string
	repeats      int
	allowMissing bool
	seed         int64
	evals        uint64 // Evaluate calls served; selects the derived stream
}

// Option mutates checker configuration at construction time.
type Option func(*RankInvariantChecker)

// WithRepeats sets the number of mutation trials (default 1).
func WithRepeats(n int) Option {
	return func(c *RankInvariantChecker) { c.repeats = n }
}

// WithMutationStrategy replaces the default uniform-noise strategy.
// Strategies carrying their own RNG ignore the checker's seed.
func WithMutationStrategy(ms MutationStrategy) Option {
	return func(c *RankInvariantChecker) { c.strategy = ms }
}

// WithLastDiff sets the strategy summarizing an alternative's rank diffs
// across trials, with a printable name for the checker's repr. The default
// is the median.
func WithLastDiff(name string, fn LastDiffFunc) Option {
	return func(c *RankInvariantChecker) {
		c.lastDiffName = name
		c.lastDiff = fn
	}
}

// WithAllowMissingAlternatives tolerates trial rankings that drop
// alternatives: dropped ones are padded in at a shared bottom-tie
// placeholder rank instead of failing the evaluation.
func WithAllowMissingAlternatives() Option {
	return func(c *RankInvariantChecker) { c.allowMissing = true }
}

// WithSeed fixes the random seed of the default mutation strategy for
// reproducible noise (seed==0 selects the stable default stream).
func WithSeed(seed int64) Option {
	return func(c *RankInvariantChecker) { c.seed = seed }
}

// New builds a checker around a ranker.
//
// Stage 1 (Validate): ranker non-nil, last-diff strategy non-nil,
// repeats ≥ 1 — all capability errors fail here, never inside Evaluate.
//
// Without WithMutationStrategy the checker mutates with UniformMutation on
// a noise stream derived from the configured seed; see Evaluate.
//
// Errors: ErrNilRanker, ErrBadLastDiff, ErrBadRepeats.
func New(ranker Ranker, opts ...Option) (*RankInvariantChecker, error) {
	c := &RankInvariantChecker{
		ranker:       ranker,
		repeats:      DefaultRepeats,
		lastDiff:     ranks.Median,
		lastDiffName: DefaultLastDiffName,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.ranker == nil {
		return nil, fmt.Errorf("New: %w", ErrNilRanker)
	}
	if c.lastDiff == nil {
		return nil, fmt.Errorf("New: %w", ErrBadLastDiff)
	}
	if c.repeats < 1 {
		return nil, fmt.Errorf("New: repeats=%d: %w", c.repeats, ErrBadRepeats)
	}

	return c, nil
}

// mutationStrategy returns the strategy for one Evaluate call. A custom
// strategy is used as-is (it owns its RNG and ignores the checker's seed);
// otherwise each call gets UniformMutation on an independent stream derived
// from the seed and the call index, so repeated audits on one checker are
// deterministic but draw uncorrelated noise.
func (c *RankInvariantChecker) mutationStrategy() (MutationStrategy, error) {
	if c.strategy != nil {
		return c.strategy, nil
	}
	rng := deriveRNG(rngFromSeed(c.seed), c.evals)
	c.evals++

	return NewUniformMutation(DefaultNoiseBound, rng)
}

// Evaluate runs the robustness protocol against dm and returns the
// accumulated comparator: the "Original" entry followed by one "M.<i>"
// entry per trial, in trial order.
//
// Stage 1: rank the pristine matrix (ranker errors propagate unchanged).
// Stage 2: for each repeat, mutate the current matrix (chained), re-rank,
// reconcile missing alternatives, attach Extra diagnostics and append.
// Stage 3: assemble the ranks.Comparator with the configured last-diff
// aggregator.
//
// Each call on a checker without a custom strategy draws its noise from an
// independent stream derived from the seed and the call index: call k on
// one checker reproduces call k on any checker with the same seed, while
// successive calls stay uncorrelated.
//
// Errors: decision.ErrNilMatrix, ErrMissingAlternatives (fatal, wraps the
// missing names; only when missing alternatives are not allowed), plus any
// ranker or strategy error, unchanged. No internal retry.
//
// Complexity: O(repeats * (cost(ranker) + rows*cols)).
func (c *RankInvariantChecker) Evaluate(dm *decision.Matrix) (*ranks.Comparator, error) {
	if dm == nil {
		return nil, fmt.Errorf("Evaluate: %w", decision.ErrNilMatrix)
	}

	strategy, err := c.mutationStrategy()
	if err != nil {
		return nil, err
	}

	original, err := c.ranker.Evaluate(dm)
	if err != nil {
		return nil, err
	}

	entries := make([]ranks.Entry, 0, c.repeats+1)
	entries = append(entries, ranks.Entry{Name: OriginalName, Ranking: original})

	current := dm
	last := original
	for it := 1; it <= c.repeats; it++ {
		mutated, err := strategy.GenerateMutations(current, last)
		if err != nil {
			return nil, err
		}
		noise, err := noiseDelta(mutated, current)
		if err != nil {
			return nil, err
		}

		trial, err := c.ranker.Evaluate(mutated)
		if err != nil {
			return nil, err
		}

		missing := missingAlternatives(dm, trial)
		if len(missing) > 0 {
			if !c.allowMissing {
				return nil, fmt.Errorf("Evaluate: trial %d dropped %v: %w", it, missing, ErrMissingAlternatives)
			}
			trial, err = padMissing(trial, missing)
			if err != nil {
				return nil, err
			}
		}

		trial.Extra.Noise = noise
		trial.Extra.Missing = missing
		trial.Extra.Iteration = it

		entries = append(entries, ranks.Entry{
			Name:    fmt.Sprintf("%s%d", TrialPrefix, it),
			Ranking: trial,
		})

		// Chained mutation: the next trial perturbs this trial's matrix.
		current, last = mutated, trial
	}

	return ranks.New(entries, ranks.WithDiffAggregator(c.lastDiffName, c.lastDiff))
}

// String implements fmt.Stringer. The repr deterministically includes the
// wrapped ranker, repeats, the missing-alternatives policy and the
// last-diff strategy name, so experiment configurations are reproducible
// from logs.
func (c *RankInvariantChecker) String() string {
	return fmt.Sprintf("RankInvariantChecker(ranker=%v, repeats=%d, allow_missing_alternatives=%t, last_diff_strategy=%s)",
		c.ranker, c.repeats, c.allowMissing, c.lastDiffName)
}

// noiseDelta computes the per-cell delta applied by one trial:
// mutated - input, row-aligned with the matrix's alternatives.
func noiseDelta(mutated, input *decision.Matrix) ([][]float64, error) {
	mv, iv := mutated.Values(), input.Values()
	if len(mv) != len(iv) {
		return nil, fmt.Errorf("noiseDelta: %w", decision.ErrDimensionMismatch)
	}
	for i := range mv {
		if len(mv[i]) != len(iv[i]) {
			return nil, fmt.Errorf("noiseDelta: row %d: %w", i, decision.ErrDimensionMismatch)
		}
		for j := range mv[i] {
			mv[i][j] -= iv[i][j]
		}
	}

	return mv, nil
}

// missingAlternatives lists the matrix's alternatives absent from the trial
// ranking, preserving the matrix's alternative order (deterministic for
// diagnostics and error messages).
func missingAlternatives(dm *decision.Matrix, trial rank.Ranking) []string {
	var missing []string
	for _, alt := range dm.Alternatives() {
		if _, ok := trial.RankOf(alt); !ok {
			missing = append(missing, alt)
		}
	}

	return missing
}

// padMissing synthesizes a ranking covering the full alternative set:
// every missing alternative gets the same placeholder rank — the number of
// alternatives the ranker did return, plus one — so missing entries are
// tied with each other at the bottom.
func padMissing(trial rank.Ranking, missing []string) (rank.Ranking, error) {
	placeholder := trial.Len() + 1

	alternatives := append(append([]string(nil), trial.Alternatives...), missing...)
	values := append([]int(nil), trial.Values...)
	for range missing {
		values = append(values, placeholder)
	}

	padded, err := rank.NewRanking(trial.Method, alternatives, values)
	if err != nil {
		return rank.Ranking{}, fmt.Errorf("padMissing: %w", err)
	}
	// Preserve the ranker's diagnostics. Points stays aligned with
	// Alternatives: missing entries have no score, so they carry NaN.
	padded.Extra = trial.Extra
	if pts := trial.Extra.Points; pts != nil {
		pts = append([]float64(nil), pts...)
		for range missing {
			pts = append(pts, math.NaN())
		}
		padded.Extra.Points = pts
	}

	return padded, nil
}
