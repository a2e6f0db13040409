// Package rank provides the ranking primitives of the module: tie-aware
// competition ranking of score vectors, the Ranking record produced by
// scoring methods, and pairwise dominance counting between alternatives.
//
// Competition ranking assigns rank 1 to the best score; equal scores share
// the rank of the first-encountered tied element and the following rank
// values skip by the tie-group size ("1224" ranking). Ties are resolved
// only in rank value, never by input position, so downstream rank-invariance
// checks can detect genuine ties.
//
// Dominance counts, per criterion and honoring each criterion's
// minimize/maximize direction, on how many criteria one alternative is
// strictly better than another. It is the correctness oracle of the
// robustness protocol: a bounded, worsening perturbation of an alternative
// must leave the original row dominant over the mutated one.
package rank
