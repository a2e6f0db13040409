package norm

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrEmptyInput indicates an empty table or weight vector.
	ErrEmptyInput = errors.New("norm: input must be non-empty")

	// ErrRagged indicates rows of differing lengths.
	ErrRagged = errors.New("norm: ragged rows")

	// ErrZeroSum indicates a column (or weight vector) whose sum is zero,
	// which makes sum normalization undefined.
	ErrZeroSum = errors.New("norm: zero sum")

	// ErrBadSize indicates a non-positive requested size.
	ErrBadSize = errors.New("norm: size must be >= 1")

	// ErrDimensionMismatch indicates a weight vector whose length differs
	// from the requested criterion count.
	ErrDimensionMismatch = errors.New("norm: dimension mismatch")
)

// clone deep-copies a table after checking it is non-empty and rectangular.
func clone(values [][]float64) ([][]float64, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyInput
	}
	cols := len(values[0])
	out := make([][]float64, len(values))
	for i, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), cols, ErrRagged)
		}
		out[i] = append([]float64(nil), row...)
	}

	return out, nil
}

// column gathers column j into dst (reused scratch storage).
func column(values [][]float64, j int, dst []float64) []float64 {
	dst = dst[:0]
	for _, row := range values {
		dst = append(dst, row[j])
	}

	return dst
}

// PushNegatives shifts every column containing a negative value so its
// minimum becomes zero (x -> x + |min|). Columns without negatives are left
// untouched. Complexity: O(rows*cols).
func PushNegatives(values [][]float64) ([][]float64, error) {
	out, err := clone(values)
	if err != nil {
		return nil, fmt.Errorf("PushNegatives: %w", err)
	}
	scratch := make([]float64, 0, len(out))
	for j := 0; j < len(out[0]); j++ {
		if lo := floats.Min(column(out, j, scratch)); lo < 0 {
			for i := range out {
				out[i][j] -= lo
			}
		}
	}

	return out, nil
}

// Add1To0 increments every column that contains a zero by one, keeping all
// entries strictly positive for log/reciprocal transforms downstream.
// Complexity: O(rows*cols).
func Add1To0(values [][]float64) ([][]float64, error) {
	out, err := clone(values)
	if err != nil {
		return nil, fmt.Errorf("Add1To0: %w", err)
	}
	for j := 0; j < len(out[0]); j++ {
		hasZero := false
		for i := range out {
			if out[i][j] == 0 {
				hasZero = true
				break
			}
		}
		if hasZero {
			for i := range out {
				out[i][j]++
			}
		}
	}

	return out, nil
}

// SumNormalize divides every column by its sum so each column sums to one.
// Errors: ErrZeroSum when a column sums to zero. Complexity: O(rows*cols).
func SumNormalize(values [][]float64) ([][]float64, error) {
	out, err := clone(values)
	if err != nil {
		return nil, fmt.Errorf("SumNormalize: %w", err)
	}
	scratch := make([]float64, 0, len(out))
	for j := 0; j < len(out[0]); j++ {
		sum := floats.Sum(column(out, j, scratch))
		if sum == 0 {
			return nil, fmt.Errorf("SumNormalize: column %d: %w", j, ErrZeroSum)
		}
		for i := range out {
			out[i][j] /= sum
		}
	}

	return out, nil
}

// NormalizeWeights sum-normalizes a weight vector to n criteria. A nil
// vector yields uniform weights 1/n. Errors: ErrBadSize on n < 1,
// ErrDimensionMismatch on a length mismatch, ErrZeroSum on an all-zero
// vector.
func NormalizeWeights(weights []float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("NormalizeWeights: n=%d: %w", n, ErrBadSize)
	}
	out := make([]float64, n)
	if weights == nil {
		for i := range out {
			out[i] = 1 / float64(n)
		}

		return out, nil
	}
	if len(weights) != n {
		return nil, fmt.Errorf("NormalizeWeights: %d weights for %d criteria: %w", len(weights), n, ErrDimensionMismatch)
	}
	sum := floats.Sum(weights)
	if sum == 0 {
		return nil, fmt.Errorf("NormalizeWeights: %w", ErrZeroSum)
	}
	copy(out, weights)
	floats.Scale(1/sum, out)

	return out, nil
}
