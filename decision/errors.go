// SPDX-License-Identifier: MIT
// Package decision: sentinel error set.
// Every message is prefixed with "decision: ..." for consistency and easy
// grepping across logs. Algorithms return these sentinels and tests check
// them via errors.Is; when call-site context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary.

package decision

import "errors"

var (
	// ErrBadShape is returned when the value table is empty or ragged,
	// or when its dimensions do not match the label slices.
	ErrBadShape = errors.New("decision: invalid matrix shape")

	// ErrDimensionMismatch indicates incompatible lengths between parallel
	// inputs, e.g. len(objectives) != len(criteria) or a weights vector of
	// the wrong size.
	ErrDimensionMismatch = errors.New("decision: dimension mismatch")

	// ErrDuplicateLabel signals a repeated alternative or criterion name.
	// Labels identify rows and columns, so uniqueness is structural.
	ErrDuplicateLabel = errors.New("decision: duplicate label")

	// ErrEmptyLabel signals an empty alternative or criterion name.
	ErrEmptyLabel = errors.New("decision: empty label")

	// ErrNaNInf signals a NaN or ±Inf cell value. Decision matrices hold
	// finite measurements only; undefined values are rejected at ingestion,
	// never silently coerced.
	ErrNaNInf = errors.New("decision: NaN or Inf encountered")

	// ErrBadWeight signals a negative, NaN or Inf criterion weight.
	ErrBadWeight = errors.New("decision: weight must be finite and non-negative")

	// ErrBadObjective signals an unknown objective direction.
	ErrBadObjective = errors.New("decision: unknown objective")

	// ErrUnknownAlternative indicates that a referenced alternative name is
	// not present in the matrix.
	ErrUnknownAlternative = errors.New("decision: unknown alternative")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers return this, they never panic.
	ErrOutOfRange = errors.New("decision: index out of range")

	// ErrNilMatrix indicates that a nil *Matrix was passed where a built
	// matrix is required.
	ErrNilMatrix = errors.New("decision: nil matrix")
)
