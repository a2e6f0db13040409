// SPDX-License-Identifier: MIT
// Package decision: the Matrix value type.
// Matrix is a row-major, label-indexed decision table. The constructor is
// the single validation point; accessors hand out copies so callers cannot
// alias internal storage.

package decision

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is an immutable alternatives × criteria decision table.
//
// Invariants (enforced by New, relied upon everywhere else):
//   - len(alternatives) == row count, len(criteria) == column count,
//   - len(objectives) == len(criteria),
//   - weights is nil or len(weights) == len(criteria) with finite,
//     non-negative entries,
//   - every cell is finite,
//   - all labels are unique and non-empty.
type Matrix struct {
	alternatives []string
	criteria     []string
	objectives   []Objective
	weights      []float64 // nil when the caller supplied none
	data         []float64 // row-major, len == rows*cols
	altIndex     map[string]int
}

// Option mutates construction options of New.
type Option func(*options)

type options struct {
	weights []float64
}

// WithWeights attaches per-criterion weights. Weights express relative
// criterion importance; they must be finite and non-negative, and their
// length must equal the number of criteria.
func WithWeights(weights []float64) Option {
	return func(o *options) { o.weights = weights }
}

// New builds a validated Matrix.
//
// Stage 1 (Validate): labels unique and non-empty, shapes consistent,
// objectives declared, cells finite, weights (when given) finite and ≥ 0.
// Stage 2 (Prepare): deep-copy every input into flat row-major storage and
// build the alternative name index.
// Stage 3 (Finalize): return the matrix; it is never mutated afterwards.
//
// Errors: ErrBadShape, ErrDimensionMismatch, ErrEmptyLabel,
// ErrDuplicateLabel, ErrBadObjective, ErrNaNInf, ErrBadWeight.
//
// Complexity: O(rows*cols) time and memory.
func New(alternatives, criteria []string, values [][]float64, objectives []Objective, opts ...Option) (*Matrix, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	rows, cols := len(alternatives), len(criteria)
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("New: empty axis: %w", ErrBadShape)
	}
	if len(values) != rows {
		return nil, fmt.Errorf("New: %d rows for %d alternatives: %w", len(values), rows, ErrBadShape)
	}
	if len(objectives) != cols {
		return nil, fmt.Errorf("New: %d objectives for %d criteria: %w", len(objectives), cols, ErrDimensionMismatch)
	}
	if err := validateLabels("alternative", alternatives); err != nil {
		return nil, err
	}
	if err := validateLabels("criterion", criteria); err != nil {
		return nil, err
	}
	for _, obj := range objectives {
		if !obj.valid() {
			return nil, fmt.Errorf("New: %v: %w", obj, ErrBadObjective)
		}
	}

	data := make([]float64, 0, rows*cols)
	for i, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("New: row %q has %d cells, want %d: %w",
				alternatives[i], len(row), cols, ErrBadShape)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("New: cell (%q, %q): %w", alternatives[i], criteria[j], ErrNaNInf)
			}
		}
		data = append(data, row...)
	}

	var weights []float64
	if o.weights != nil {
		if len(o.weights) != cols {
			return nil, fmt.Errorf("New: %d weights for %d criteria: %w", len(o.weights), cols, ErrDimensionMismatch)
		}
		for j, w := range o.weights {
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
				return nil, fmt.Errorf("New: weight %q=%g: %w", criteria[j], w, ErrBadWeight)
			}
		}
		weights = append([]float64(nil), o.weights...)
	}

	altIndex := make(map[string]int, rows)
	for i, name := range alternatives {
		altIndex[name] = i
	}

	return &Matrix{
		alternatives: append([]string(nil), alternatives...),
		criteria:     append([]string(nil), criteria...),
		objectives:   append([]Objective(nil), objectives...),
		weights:      weights,
		data:         data,
		altIndex:     altIndex,
	}, nil
}

// validateLabels rejects empty or duplicated names on one axis.
func validateLabels(axis string, labels []string) error {
	seen := make(map[string]struct{}, len(labels))
	for _, name := range labels {
		if name == "" {
			return fmt.Errorf("New: %s: %w", axis, ErrEmptyLabel)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("New: %s %q: %w", axis, name, ErrDuplicateLabel)
		}
		seen[name] = struct{}{}
	}

	return nil
}

// AlternativeCount returns the number of alternatives (rows). O(1).
func (m *Matrix) AlternativeCount() int { return len(m.alternatives) }

// CriteriaCount returns the number of criteria (columns). O(1).
func (m *Matrix) CriteriaCount() int { return len(m.criteria) }

// Alternatives returns a copy of the ordered alternative names.
func (m *Matrix) Alternatives() []string {
	return append([]string(nil), m.alternatives...)
}

// Criteria returns a copy of the ordered criterion names.
func (m *Matrix) Criteria() []string {
	return append([]string(nil), m.criteria...)
}

// Objectives returns a copy of the per-criterion objective directions.
func (m *Matrix) Objectives() []Objective {
	return append([]Objective(nil), m.objectives...)
}

// Weights returns a copy of the per-criterion weights, or nil when the
// matrix was built without weights.
func (m *Matrix) Weights() []float64 {
	if m.weights == nil {
		return nil
	}

	return append([]float64(nil), m.weights...)
}

// MinimizeMask returns, per criterion, whether that criterion is minimized.
// This is the orientation vector consumed by rank.Dominance.
func (m *Matrix) MinimizeMask() []bool {
	mask := make([]bool, len(m.objectives))
	for j, obj := range m.objectives {
		mask[j] = obj == Minimize
	}

	return mask
}

// Value retrieves the cell at (row, col) with bounds checking.
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Matrix) Value(row, col int) (float64, error) {
	if row < 0 || row >= len(m.alternatives) || col < 0 || col >= len(m.criteria) {
		return 0, fmt.Errorf("Value(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[row*len(m.criteria)+col], nil
}

// Row returns a copy of row i (one alternative across all criteria).
// Errors: ErrOutOfRange. Complexity: O(cols).
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= len(m.alternatives) {
		return nil, fmt.Errorf("Row(%d): %w", i, ErrOutOfRange)
	}
	cols := len(m.criteria)

	return append([]float64(nil), m.data[i*cols:(i+1)*cols]...), nil
}

// RowOf returns a copy of the row for the named alternative.
// Errors: ErrUnknownAlternative. Complexity: O(cols).
func (m *Matrix) RowOf(name string) ([]float64, error) {
	i, ok := m.altIndex[name]
	if !ok {
		return nil, fmt.Errorf("RowOf(%q): %w", name, ErrUnknownAlternative)
	}

	return m.Row(i)
}

// AlternativeIndex returns the row index of the named alternative and
// whether it exists. O(1).
func (m *Matrix) AlternativeIndex(name string) (int, bool) {
	i, ok := m.altIndex[name]

	return i, ok
}

// Values returns a deep copy of the value table as rows of cells.
// Mutating the result never affects the matrix. Complexity: O(rows*cols).
func (m *Matrix) Values() [][]float64 {
	rows, cols := len(m.alternatives), len(m.criteria)
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = append([]float64(nil), m.data[i*cols:(i+1)*cols]...)
	}

	return out
}

// Clone returns a deep copy of the matrix. Complexity: O(rows*cols).
func (m *Matrix) Clone() *Matrix {
	clone, err := New(m.alternatives, m.criteria, m.Values(), m.objectives, weightsOpt(m.weights)...)
	if err != nil {
		// New cannot fail on inputs that already satisfied its invariants.
		panic(fmt.Sprintf("decision: Clone: %v", err))
	}

	return clone
}

// WithValues returns a new Matrix sharing this matrix's labels, objectives
// and weights but holding the given value table. This is the copy primitive
// used by mutation strategies: same shape, same labels, new cells.
//
// Errors: ErrBadShape when the table's shape differs, ErrNaNInf on
// non-finite cells. Complexity: O(rows*cols).
func (m *Matrix) WithValues(values [][]float64) (*Matrix, error) {
	return New(m.alternatives, m.criteria, values, m.objectives, weightsOpt(m.weights)...)
}

// weightsOpt converts an optional weights slice into constructor options.
func weightsOpt(weights []float64) []Option {
	if weights == nil {
		return nil
	}

	return []Option{WithWeights(weights)}
}

// String implements fmt.Stringer with a compact table for debugging.
// One line per alternative: name, cells, then the criteria header with
// objective directions. Complexity: O(rows*cols).
func (m *Matrix) String() string {
	var b strings.Builder
	cols := len(m.criteria)
	b.WriteString("DecisionMatrix[")
	for j, c := range m.criteria {
		if j > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s(%s)", c, m.objectives[j])
	}
	b.WriteString("]\n")
	for i, a := range m.alternatives {
		fmt.Fprintf(&b, "%s: %v\n", a, m.data[i*cols:(i+1)*cols])
	}

	return b.String()
}
