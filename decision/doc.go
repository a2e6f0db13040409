// SPDX-License-Identifier: MIT

// Package decision defines the DecisionMatrix consumed by every other
// component of the module: an alternatives × criteria table of real values,
// a per-criterion optimization direction (Minimize or Maximize) and optional
// per-criterion weights.
//
// Construction is the validation boundary. New rejects ragged or empty data,
// duplicate labels, NaN/Inf cells and negative weights with package-level
// sentinel errors; once built, a *Matrix is treated as immutable by every
// consumer. All mutation paths (noise injection, preprocessing) go through
// deep copies obtained from Clone, Values or WithValues.
//
// Storage is row-major in a flat slice, one row per alternative, for cache
// friendliness; labels are resolved through an internal index so lookups by
// alternative name are O(1).
package decision
