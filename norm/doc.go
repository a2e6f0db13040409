// Package norm provides the column-wise preprocessing kernels used by the
// scoring methods in agg: shifting negative columns to zero, bumping columns
// that contain zeros, sum normalization and weight normalization.
//
// All kernels are pure: they copy their input, never mutate it, and operate
// column by column over row-major tables ([][]float64, one row per
// alternative).
package norm
