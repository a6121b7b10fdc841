// Package genparity solves generalized parity games on finite directed
// graphs: given an arena where every vertex carries a tuple of k
// priorities, decide for each vertex whether player 0 can force, along
// every infinite play, that every priority function's maximum value
// recurring infinitely often is even; player 1 wins every other vertex.
//
// The solving machinery is organized under several subpackages:
//
//	arena/      — the game graph: vertices, owners, priority tuples, edges
//	attractor/  — attractor, monotone attractor and their bounded variants
//	antichain/  — a generic partially-ordered set with insert/union/meet
//	buchi/      — Büchi and Büchi∩(co-)Büchi/safety game reductions
//	psol/       — fatal-attractor-based partial solvers (psol, psolB, psolQ, psolC)
//	zielonka/   — the recursive solver, single-dimension and generalized
//	safety/     — an antichain-based backward safety-game reduction
//	solver/     — the public entry point composing the above
//
// See solver.SolveParity and solver.SolveGeneralizedParity for the
// primary entry points.
package genparity
