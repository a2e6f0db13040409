// Package reversal implements the rank-invariance / rank-reversal checker:
// a robustness audit for MCDA ranking methods.
//
// The protocol, per RankInvariantChecker.Evaluate:
//
//  1. Rank the unmodified decision matrix with the wrapped Ranker and store
//     the result as the "Original" entry.
//  2. For each of the configured repeats, ask the MutationStrategy for a
//     perturbed copy of the current matrix (mutation is chained: trial i
//     perturbs the matrix produced by trial i-1, not the pristine input),
//     re-rank it, reconcile the answer against the full alternative set,
//     attach diagnostics (noise delta, missing alternatives, trial index)
//     and append the entry as "M.<i>".
//  3. Fold everything into a ranks.Comparator carrying the configured
//     last-diff strategy, and return it.
//
// A ranker may legitimately drop alternatives mid-trial (e.g. after a
// feasibility filter). When allowed, dropped alternatives are assigned a
// shared bottom-tie placeholder rank (the number of ranked alternatives
// plus one) and recorded in the trial's Extra.Missing; when not allowed,
// the whole evaluation fails with ErrMissingAlternatives and no partial
// result is returned.
//
// Determinism: the checker (through its mutation strategy) owns its random
// state for the duration of Evaluate; a fixed seed reproduces noise and
// rankings bit for bit. Trials run strictly sequentially — each trial's
// input depends on the previous trial's output, and the ranker itself may
// be stateful — so concurrent Evaluate calls on one checker are unsafe.
package reversal
