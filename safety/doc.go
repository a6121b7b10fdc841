// Package safety implements the antichain-based backward fixpoint for
// solving parity games as a family of safety games (spec.md §4.4):
// for a fixed counter bound M, the greatest antichain of (vertex, counter
// vector) pairs from which player 0 can keep every counter from
// underflowing forever. Solve drives this fixpoint over increasing M
// until every vertex is classified.
//
// Grounded on original_source/generalizedparity-master/
// backwardAlgorithm.py (single counter per priority-function) and
// backwardAlgorithmGeneralized.py (a counter vector per function), both
// built on package antichain's generic Antichain[T].
//
// Per spec.md §9's design note, only the player-0 direction is carried
// through the generalized solver here: the original source's player-1
// direction is itself an unfinished stub (a commented-out near-duplicate
// of the player-0 code, never wired to a caller), so there is nothing to
// generalize from for that direction.
package safety
