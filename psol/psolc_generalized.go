package psol

import (
	"github.com/katalvlaran/genparity/antichain"
	"github.com/katalvlaran/genparity/arena"
	"github.com/katalvlaran/genparity/attractor"
)

// cState is a single antichain element for psolC's generalized
// counterpart (spec.md §4.5.6): a vertex paired with, per priority
// function, the worst value seen so far in the current window.
type cState struct {
	V      arena.Vertex
	Memory []int
}

// embedMemory maps a per-function memory value onto a single linear
// scale consistent with spec.md §4.5.6's order: odd values keep their
// natural ascending order; even values are reversed (a larger even value
// embeds lower); and every odd value embeds below every even value,
// regardless of magnitude.
func embedMemory(m, maxP int) int {
	if m%2 == 1 {
		return m
	}
	return 2*maxP + 2 - m
}

func cLessEq(maxP []int) func(x, y cState) bool {
	return func(x, y cState) bool {
		if x.V != y.V {
			return false
		}
		for i := range x.Memory {
			if embedMemory(x.Memory[i], maxP[i]) > embedMemory(y.Memory[i], maxP[i]) {
				return false
			}
		}
		return true
	}
}

// cMeet takes, per function, whichever of the two memory values embeds
// lower (the "worse" of the two under spec.md §4.5.6's order) — meet and
// the down-step used by the CPre operators below are the same operation.
func cMeet(maxP []int) func(x, y cState) (cState, bool) {
	return func(x, y cState) (cState, bool) {
		if x.V != y.V {
			return cState{}, false
		}
		res := make([]int, len(x.Memory))
		for i := range x.Memory {
			if embedMemory(x.Memory[i], maxP[i]) <= embedMemory(y.Memory[i], maxP[i]) {
				res[i] = x.Memory[i]
			} else {
				res[i] = y.Memory[i]
			}
		}
		return cState{V: x.V, Memory: res}, true
	}
}

func cEqual(x, y cState) bool {
	if x.V != y.V || len(x.Memory) != len(y.Memory) {
		return false
	}
	for i := range x.Memory {
		if x.Memory[i] != y.Memory[i] {
			return false
		}
	}
	return true
}

// worseOf returns whichever of x, y embeds lower under maxP — the same
// rule cMeet applies componentwise, extracted so it can be used without
// cMeet's same-vertex guard (down folds a predecessor's own priority,
// a different vertex from element's, into element's memory).
func worseOf(x, y, maxP int) int {
	if embedMemory(x, maxP) <= embedMemory(y, maxP) {
		return x
	}
	return y
}

// downGeneralized folds a predecessor's own priority vector into an
// element's memory, per function, by the same worse-of-the-two rule as
// cMeet — a predecessor's own state is itself a cState at its own
// priorities, and folding it in takes, per function, whichever of the
// element's memory or the predecessor's own priority embeds lower.
func downGeneralized(element cState, pred arena.Vertex, g *arena.Arena, maxP []int) cState {
	mem := make([]int, len(maxP))
	for i := range mem {
		mem[i] = worseOf(element.Memory[i], g.PriorityOf(pred, i), maxP[i])
	}
	return cState{V: pred, Memory: mem}
}

func cpre0Generalized(g *arena.Arena, a *antichain.Antichain[cState], maxP []int) *antichain.Antichain[cState] {
	result := antichain.New(cLessEq(maxP), cMeet(maxP))
	for _, e := range a.Elements() {
		for _, pred := range g.Predecessors(e.V) {
			if g.Owner(pred) != arena.Player0 {
				continue
			}
			result.Insert(downGeneralized(e, pred, g, maxP))
		}
	}
	return result
}

func cpre1Generalized(g *arena.Arena, a *antichain.Antichain[cState], maxP []int) *antichain.Antichain[cState] {
	result := antichain.New(cLessEq(maxP), cMeet(maxP))
	byVertex := make(map[arena.Vertex][]cState)
	for _, e := range a.Elements() {
		byVertex[e.V] = append(byVertex[e.V], e)
	}

	for _, node := range g.Vertices() {
		if g.Owner(node) != arena.Player1 {
			continue
		}
		var acc *antichain.Antichain[cState]
		for i, succ := range g.Successors(node) {
			layer := antichain.New(cLessEq(maxP), cMeet(maxP))
			for _, e := range byVertex[succ] {
				layer.Insert(downGeneralized(e, node, g, maxP))
			}
			if i == 0 {
				acc = layer
			} else {
				acc = acc.Intersection(layer)
			}
		}
		if acc != nil {
			result.Union(acc)
		}
	}
	return result
}

// SolveCGeneralized is psolC's generalized counterpart (spec.md §4.5.6),
// resolving spec.md §9 Open Question 1: it reuses the antichain +
// down/CPre machinery of the backward safety solver, but over a memory
// domain of one "worst priority seen" integer per function instead of a
// per-odd-priority counter vector, and a union-based (least-fixed-point)
// iteration instead of the safety solver's decreasing one — A grows from
// a seed of every vertex at its own current priority vector, accumulating
// any predecessor that can force entry into A ∪ seed, until no change.
// Only player 0's direction is computed, matching this repository's
// safety package; a vertex is won by player 0 if its own current state
// is dominated by some element of the final set.
func SolveCGeneralized(g *arena.Arena, w0, w1 []arena.Vertex) (*arena.Arena, []arena.Vertex, []arena.Vertex) {
	if g.NumVertices() == 0 {
		return g, w0, w1
	}
	k := g.Arity()
	maxP := make([]int, k)
	for i := 0; i < k; i++ {
		maxP[i] = g.MaxPriorityOf(i)
	}

	start := antichain.New(cLessEq(maxP), cMeet(maxP))
	for _, v := range g.Vertices() {
		mem := make([]int, k)
		for i := 0; i < k; i++ {
			mem[i] = g.PriorityOf(v, i)
		}
		start.Insert(cState{V: v, Memory: mem})
	}

	a := antichain.New(cLessEq(maxP), cMeet(maxP))
	for {
		seed := a.Clone()
		seed.Union(start)

		pre := cpre0Generalized(g, seed, maxP)
		pre.Union(cpre1Generalized(g, seed, maxP))

		next := a.Clone()
		next.Union(pre)
		if next.Equal(a, cEqual) {
			break
		}
		a = next
	}

	final := a.Clone()
	final.Union(start)

	var seedWin []arena.Vertex
	for _, v := range g.Vertices() {
		mem := make([]int, k)
		for i := 0; i < k; i++ {
			mem[i] = g.PriorityOf(v, i)
		}
		if final.ContainsElement(cState{V: v, Memory: mem}) {
			seedWin = append(seedWin, v)
		}
	}

	if len(seedWin) == 0 {
		return g, w0, w1
	}
	att, complement := attractor.Attractor(g, seedWin, arena.Player0)
	w0 = append(w0, att...)
	return g.Subgame(complement), w0, w1
}
