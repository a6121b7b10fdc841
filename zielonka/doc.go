// Package zielonka implements the recursive algorithm for solving
// single-dimension parity games, in its plain form and in two forms that
// consult a partial solver before recursing: WithPartial (run any partial
// solver from package psol once per recursive call) and
// WithSinglePsolBIteration (inline a single psolB-style fatal-attractor
// sweep at the top of each recursive call, a cheaper approximation of
// WithPartial with psolB).
//
// Grounded on original_source/generalizedparity-master/zielonka.py,
// zielonka_with_partial, and zielonka_with_single_psolB_iteration.
package zielonka
