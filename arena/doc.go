// Package arena defines the in-memory game graph over which every solver
// in this module operates: a finite set of vertices, each owned by one of
// two players and labelled with a k-tuple of priorities, with adjacency
// maintained in both directions.
//
// What
//
//   - Vertex is a small dense int identifier.
//   - Owner(v) is Player0 or Player1.
//   - Priorities(v) is a k-tuple (k>=1) of non-negative ints, uniform
//     across every vertex of the arena.
//   - Successors(v) / Predecessors(v) return ordered ([]Vertex, ascending
//     by id) adjacency, kept mutually consistent by construction.
//
// Why
//
//   - Dense int ids and pre-sorted adjacency give every fixpoint in this
//     module (attractors, antichain fixpoints, Zielonka recursion) a
//     deterministic, reproducible iteration order, per the ordering
//     guarantee this module's solvers are built to.
//
// Lifecycle
//
//	An Arena is logically immutable once built via New. Subgame produces a
//	fresh Arena restricted to a vertex subset; it never mutates its parent.
//	Complement produces a fresh Arena with every priority incremented by
//	one; it never mutates its parent either. Only the edge-removal variant
//	of psol (see package psol) mutates an Arena in place, and it documents
//	that it takes ownership of it when it does.
package arena
