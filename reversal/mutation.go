package reversal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/leliel12/scikitcriteria/decision"
	"github.com/leliel12/scikitcriteria/rank"
)

// UniformMutation is the default MutationStrategy: every cell receives an
// independently sampled uniform noise with magnitude in [0, bound).
//
// Direction policy: by default the noise worsens each value per its
// criterion's objective — added on minimized criteria, subtracted on
// maximized ones — so the original row keeps dominating the mutated row
// (the invariant the robustness protocol's dominance diagnostics rely on).
// WithSymmetricNoise switches to unbiased sampling in (-bound, bound) for
// callers probing pure sensitivity instead.
//
// The strategy owns its *rand.Rand; cells are drawn in row-major order, so
// a fixed seed reproduces the exact noise table.
type UniformMutation struct {
	bound     float64
	rng       *rand.Rand
	symmetric bool
}

// MutationOption mutates UniformMutation configuration.
type MutationOption func(*UniformMutation)

// WithSymmetricNoise samples noise in (-bound, bound) with no directional
// bias instead of the default worsening orientation.
func WithSymmetricNoise() MutationOption {
	return func(u *UniformMutation) { u.symmetric = true }
}

// NewUniformMutation builds the strategy. bound must be finite and > 0
// (ErrBadNoiseBound otherwise); a nil rng falls back to the deterministic
// default stream (seed==0 policy).
func NewUniformMutation(bound float64, rng *rand.Rand, opts ...MutationOption) (*UniformMutation, error) {
	if math.IsNaN(bound) || math.IsInf(bound, 0) || bound <= 0 {
		return nil, fmt.Errorf("NewUniformMutation(%g): %w", bound, ErrBadNoiseBound)
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	u := &UniformMutation{bound: bound, rng: rng}
	for _, opt := range opts {
		opt(u)
	}

	return u, nil
}

// GenerateMutations returns a perturbed copy of dm. The current ranking is
// not consulted by this strategy (adversarial variants use it to target
// specific alternatives), but it is part of the capability contract.
//
// Labels, order and shape are preserved: the copy goes through
// decision.Matrix.WithValues.
//
// Complexity: O(rows*cols).
func (u *UniformMutation) GenerateMutations(dm *decision.Matrix, _ rank.Ranking) (*decision.Matrix, error) {
	if dm == nil {
		return nil, fmt.Errorf("GenerateMutations: %w", decision.ErrNilMatrix)
	}

	values := dm.Values()
	minimize := dm.MinimizeMask()
	for i := range values {
		for j := range values[i] {
			noise := u.rng.Float64() * u.bound
			switch {
			case u.symmetric:
				// Unbiased: flip the sign with a second draw.
				if u.rng.Float64() < 0.5 {
					noise = -noise
				}
			case !minimize[j]:
				// Worsen a benefit criterion by subtracting.
				noise = -noise
			}
			// Minimized criteria are worsened by the (positive) addition.
			values[i][j] += noise
		}
	}

	return dm.WithValues(values)
}

// String implements fmt.Stringer for diagnostic logging.
func (u *UniformMutation) String() string {
	mode := "worsening"
	if u.symmetric {
		mode = "symmetric"
	}

	return fmt.Sprintf("UniformMutation(bound=%g, %s)", u.bound, mode)
}
