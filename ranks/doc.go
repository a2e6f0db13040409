// Package ranks aggregates a named, ordered collection of rankings — the
// original ranking of a decision matrix plus one entry per mutation trial —
// and exposes cross-ranking comparison statistics.
//
// A Comparator answers three kinds of questions:
//
//   - retrieval: Names, Ranks(name) and AlternativeRanks(alt) pull stored
//     rankings and one alternative's rank trajectory across entries;
//   - agreement: Correlation(a, b, method) measures how similar two entries
//     are (Spearman: Pearson over the rank vectors; Kendall), and
//     Reversals(a, b) counts alternative pairs whose strict relative order
//     swapped between two entries;
//   - sensitivity: LastDiff(alt) folds an alternative's rank deltas versus
//     the first entry across all trials through a configurable aggregator
//     (median by default — the checker wires its own strategy in).
//
// Pairwise statistics are generic over any two rankings: when one entry
// lacks an alternative the other has, the missing side is padded with the
// bottom-tie placeholder rank (number of ranked alternatives plus one)
// before comparing, mirroring the invariance checker's reconciliation
// policy.
//
// The comparator is the sole artifact the rank-invariance checker produces;
// downstream reporting reads Names, Ranks and the per-ranking Extra payload.
package ranks
