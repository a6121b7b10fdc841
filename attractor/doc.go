// Package attractor computes classical and restricted attractors over an
// arena.Arena: the set of vertices from which a player can force a visit
// to a target set, under varying admissibility restrictions on the
// vertices/edges that may be used along the way.
//
// Every variant shares the same work-queue shape as lvlath's bfs.BFS: a
// FIFO queue seeded with the target, a per-vertex "out" residual-successor
// counter that forces opponent-owned vertices to have *every* successor
// already won before they join, and a region map used both as a visited
// set and as the final attractor/complement partition. This is the same
// O(V+E) one-pass traversal shape, specialised per spec.md §4.1/§4.2 to
// reject inadmissible predecessors before they are queued.
package attractor
