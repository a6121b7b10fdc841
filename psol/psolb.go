package psol

import (
	"sort"

	"github.com/katalvlaran/genparity/arena"
	"github.com/katalvlaran/genparity/attractor"
	"github.com/katalvlaran/genparity/buchi"
)

// colorsAscending returns the distinct single-dimension priorities
// occurring in g, ascending.
func colorsAscending(g *arena.Arena) []int {
	seen := make(map[int]bool)
	for _, v := range g.Vertices() {
		seen[g.Priority(v)] = true
	}
	colors := make([]int, 0, len(seen))
	for c := range seen {
		colors = append(colors, c)
	}
	sort.Ints(colors)
	return colors
}

func verticesOfPriority(g *arena.Arena, color int) []arena.Vertex {
	return g.VerticesWithPriority(color)
}

func equalVertexSets(a, b []arena.Vertex) bool {
	if len(a) != len(b) {
		return false
	}
	ma := make(map[arena.Vertex]bool, len(a))
	for _, v := range a {
		ma[v] = true
	}
	for _, v := range b {
		if !ma[v] {
			return false
		}
	}
	return true
}

func intersectVertexSets(a, b []arena.Vertex) []arena.Vertex {
	inB := make(map[arena.Vertex]bool, len(b))
	for _, v := range b {
		inB[v] = true
	}
	var out []arena.Vertex
	for _, v := range a {
		if inB[v] {
			out = append(out, v)
		}
	}
	return out
}

// SolveB is psolB (spec.md §4.5.2): for each color in ascending order, it
// repeatedly narrows the color class to its monotone attractor's
// intersection with itself until the class stabilises or empties; a
// stable non-empty class is fatal, decided for color%2, and the solver
// recurses on the residual subgame.
func SolveB(g *arena.Arena, w0, w1 []arena.Vertex) (*arena.Arena, []arena.Vertex, []arena.Vertex) {
	for _, color := range colorsAscending(g) {
		target := verticesOfPriority(g, color)
		var cache []arena.Vertex

		for !equalVertexSets(cache, target) && len(target) > 0 {
			cache = target
			ma, _ := attractor.Monotone(g, target, color)

			if isSubset(target, ma) {
				att, complement := attractor.Attractor(g, ma, arena.Parity(color))
				if arena.Parity(color) == arena.Player0 {
					w0 = append(w0, att...)
				} else {
					w1 = append(w1, att...)
				}
				return SolveB(g.Subgame(complement), w0, w1)
			}
			target = intersectVertexSets(target, ma)
		}
	}
	return g, w0, w1
}

func isSubset(sub, super []arena.Vertex) bool {
	in := make(map[arena.Vertex]bool, len(super))
	for _, v := range super {
		in[v] = true
	}
	for _, v := range sub {
		if !in[v] {
			return false
		}
	}
	return true
}

// SolveBModifiedAttractor is psolB_modified_att (spec.md §4.5.2,
// supplemented): the same fixpoint as SolveB, but fatality is tested via
// attractor.IncludingTarget's per-vertex membership map instead of a
// subset check against the plain monotone attractor.
func SolveBModifiedAttractor(g *arena.Arena, w0, w1 []arena.Vertex) (*arena.Arena, []arena.Vertex, []arena.Vertex) {
	for _, color := range colorsAscending(g) {
		target := verticesOfPriority(g, color)
		var cache []arena.Vertex

		for !equalVertexSets(cache, target) && len(target) > 0 {
			cache = target
			ma, inAttractor, _ := attractor.IncludingTarget(g, target, color)

			allIn := true
			for _, v := range target {
				if !inAttractor[v] {
					allIn = false
					break
				}
			}
			if allIn {
				att, complement := attractor.Attractor(g, ma, arena.Parity(color))
				if arena.Parity(color) == arena.Player0 {
					w0 = append(w0, att...)
				} else {
					w1 = append(w1, att...)
				}
				return SolveBModifiedAttractor(g.Subgame(complement), w0, w1)
			}

			var next []arena.Vertex
			for _, v := range target {
				if inAttractor[v] {
					next = append(next, v)
				}
			}
			target = next
		}
	}
	return g, w0, w1
}

// SolveBBuchiCoBuchi is psolB_buchi_cobuchi (spec.md §4.5.2): for each
// color, the fatal-attractor test is delegated to the Büchi-inter-co-
// Büchi solver over the class (visit infinitely often) against every
// strictly-higher-priority vertex (visit only finitely often).
func SolveBBuchiCoBuchi(g *arena.Arena, w0, w1 []arena.Vertex) (*arena.Arena, []arena.Vertex, []arena.Vertex) {
	for _, color := range colorsAscending(g) {
		target := verticesOfPriority(g, color)
		higher := verticesAbove(g, color)

		w := buchi.InterCoBuchi(g, target, higher, arena.Parity(color))
		if len(w) > 0 {
			att, complement := attractor.Attractor(g, w, arena.Parity(color))
			if arena.Parity(color) == arena.Player0 {
				w0 = append(w0, att...)
			} else {
				w1 = append(w1, att...)
			}
			return SolveBBuchiCoBuchi(g.Subgame(complement), w0, w1)
		}
	}
	return g, w0, w1
}

// SolveBBuchiSafety is psolB_buchi_safety (spec.md §4.5.2): same as
// SolveBBuchiCoBuchi but the fatal-attractor test uses Büchi-inter-safety
// instead (visit the class infinitely often while never touching a
// strictly-higher-priority vertex).
func SolveBBuchiSafety(g *arena.Arena, w0, w1 []arena.Vertex) (*arena.Arena, []arena.Vertex, []arena.Vertex) {
	for _, color := range colorsAscending(g) {
		target := verticesOfPriority(g, color)
		higher := verticesAbove(g, color)

		w := buchi.InterSafety(g, target, higher, arena.Parity(color))
		if len(w) > 0 {
			att, complement := attractor.Attractor(g, w, arena.Parity(color))
			if arena.Parity(color) == arena.Player0 {
				w0 = append(w0, att...)
			} else {
				w1 = append(w1, att...)
			}
			return SolveBBuchiSafety(g.Subgame(complement), w0, w1)
		}
	}
	return g, w0, w1
}

func verticesAbove(g *arena.Arena, color int) []arena.Vertex {
	var out []arena.Vertex
	for _, v := range g.Vertices() {
		if g.Priority(v) > color {
			out = append(out, v)
		}
	}
	return out
}
