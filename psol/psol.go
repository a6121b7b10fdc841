package psol

import (
	"sort"

	"github.com/katalvlaran/genparity/arena"
	"github.com/katalvlaran/genparity/attractor"
)

// sortedByPriority returns g's vertices ordered ascending by priority,
// breaking ties by vertex id for determinism.
func sortedByPriority(g *arena.Arena) []arena.Vertex {
	vs := append([]arena.Vertex(nil), g.Vertices()...)
	sort.Slice(vs, func(i, j int) bool {
		pi, pj := g.Priority(vs[i]), g.Priority(vs[j])
		if pi != pj {
			return pi < pj
		}
		return vs[i] < vs[j]
	})
	return vs
}

// Solve is the fatal-attractor partial solver (spec.md §4.5.1): for each
// vertex in ascending priority order, test whether its own monotone
// attractor is fatal (the vertex attracts itself back). If so, the
// parity-consistent attractor of that fatal set is decided for the
// corresponding player, and the solver recurses on the residual subgame.
// Returns the unsolved residual arena and the two winning-region
// accumulators extended with every vertex this pass decided.
func Solve(g *arena.Arena, w0, w1 []arena.Vertex) (*arena.Arena, []arena.Vertex, []arena.Vertex) {
	for _, node := range sortedByPriority(g) {
		ma, _ := attractor.MonotoneSingleTarget(g, node)
		if !containsVertex(ma, node) {
			continue
		}

		p := g.Priority(node)
		att, complement := attractor.Attractor(g, ma, arena.Parity(p))
		if arena.Parity(p) == arena.Player0 {
			w0 = append(w0, att...)
		} else {
			w1 = append(w1, att...)
		}
		return Solve(g.Subgame(complement), w0, w1)
	}
	return g, w0, w1
}

// SolveEdgeRemoval is psol's edge-removal variant (spec.md §4.5.1,
// supplemented from psol_edge_removal in the original source): in
// addition to the plain psol fixpoint, every edge from a still-unsolved
// vertex into its own (non-fatal) monotone attractor is pruned, since no
// play through such an edge can ever stay in the residual game. This
// mutates g in place (see arena.RemoveEdge) — the caller must treat g as
// consumed once this returns.
func SolveEdgeRemoval(g *arena.Arena, w0, w1 []arena.Vertex) (*arena.Arena, []arena.Vertex, []arena.Vertex) {
	for _, node := range sortedByPriority(g) {
		ma, _ := attractor.MonotoneSingleTarget(g, node)
		if containsVertex(ma, node) {
			p := g.Priority(node)
			att, complement := attractor.Attractor(g, ma, arena.Parity(p))
			if arena.Parity(p) == arena.Player0 {
				w0 = append(w0, att...)
			} else {
				w1 = append(w1, att...)
			}
			return SolveEdgeRemoval(g.Subgame(complement), w0, w1)
		}

		for _, succ := range g.Successors(node) {
			if containsVertex(ma, succ) {
				g.RemoveEdge(node, succ)
			}
		}
	}
	return g, w0, w1
}

func containsVertex(vs []arena.Vertex, x arena.Vertex) bool {
	for _, v := range vs {
		if v == x {
			return true
		}
	}
	return false
}
