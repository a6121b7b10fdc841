package safety

import (
	"github.com/katalvlaran/genparity/antichain"
	"github.com/katalvlaran/genparity/arena"
)

// defaultCeilingMultiplier, times the vertex count n, bounds the
// incremental driver's counter bound M (spec.md
// §4.4's "configured ceiling"): a game with n vertices can never need a
// counter bound larger than n before either every vertex is classified or
// the fixpoint stops changing, so n is a safe, generous default.
const defaultCeilingMultiplier = 1

// ComputeFixpoint runs the backward safety-game fixpoint for a fixed
// counter bound (spec.md §4.4): starting from the antichain of every
// vertex at its maximal counter vector, repeatedly replace A with
// A ⊓ (CPre_0(A) ∪ CPre_1(A)) until it stops changing.
func ComputeFixpoint(g *arena.Arena, bound int) *antichain.Antichain[State] {
	n := numCounters(g)

	current := newAntichain()
	for _, v := range g.Vertices() {
		counters := make([]int, n)
		for i := range counters {
			counters[i] = bound
		}
		current.Insert(State{V: v, Counters: counters})
	}

	for {
		pre := cpre0(g, current, bound)
		pre.Union(cpre1(g, current, bound))

		next := current.Intersection(pre)
		if next.Equal(current, Equal) {
			return next
		}
		current = next
	}
}

// GetWinningRegion extracts the vertices that appear in some element of a
// (spec.md §4.4): a vertex survives the fixpoint iff at least one counter
// vector for it remains.
func GetWinningRegion(a *antichain.Antichain[State]) []arena.Vertex {
	seen := make(map[arena.Vertex]bool)
	var res []arena.Vertex
	for _, e := range a.Elements() {
		if !seen[e.V] {
			seen[e.V] = true
			res = append(res, e.V)
		}
	}
	return res
}

// Solve is the incremental driver (spec.md §4.4): it solves the safety
// game for increasing counter bounds M = 1, 2, 3, ... and returns the
// region surviving at the ceiling, split into the two players' winning
// regions. A vertex surviving the
// fixpoint at the ceiling bound is won by player 0; every other vertex is
// won by player 1 (the fixpoint only ever shrinks as M grows, so the
// player-0 region at the ceiling is the correct limit).
func Solve(g *arena.Arena) (w0, w1 []arena.Vertex) {
	ceiling := g.NumVertices() * defaultCeilingMultiplier
	if ceiling < 1 {
		ceiling = 1
	}

	var last *antichain.Antichain[State]
	for bound := 1; bound <= ceiling; bound++ {
		current := ComputeFixpoint(g, bound)
		if last != nil && current.Equal(last, Equal) {
			break
		}
		last = current
	}

	w0 = GetWinningRegion(last)
	won := make(map[arena.Vertex]bool, len(w0))
	for _, v := range w0 {
		won[v] = true
	}
	for _, v := range g.Vertices() {
		if !won[v] {
			w1 = append(w1, v)
		}
	}
	return w0, w1
}
