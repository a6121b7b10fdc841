// Package solver is the public entry point: it wires package arena's
// game representation to the zielonka, psol, buchi, antichain and safety
// packages' solving strategies behind a small, stable API.
//
// Grounded on original_source/generalizedparity-master's top-level
// solver.py, which offers the same shape — a parity-game entry point, a
// generalized-parity entry point, and a partial-solver-parameterised
// variant of each — over the same underlying algorithms.
package solver
