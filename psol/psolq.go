package psol

import (
	"sort"

	"github.com/katalvlaran/genparity/arena"
	"github.com/katalvlaran/genparity/attractor"
)

func colorsDescending(g *arena.Arena) []int {
	colors := colorsAscending(g)
	sort.Sort(sort.Reverse(sort.IntSlice(colors)))
	return colors
}

// permissiveMonotoneAttractor is psolQ's permissive_monotone_attractor:
// like attractor.Monotone, but every member of target is admissible
// regardless of its own priority — only non-target predecessors are
// bound by the <= priority test.
func permissiveMonotoneAttractor(g *arena.Arena, target []arena.Vertex, priority int) (w, complement []arena.Vertex) {
	j := arena.Parity(priority)
	out := make(map[arena.Vertex]int, g.NumVertices())
	for _, v := range g.Vertices() {
		out[v] = g.OutDegree(v)
	}
	regions := make(map[arena.Vertex]arena.Player, g.NumVertices())
	inTarget := make(map[arena.Vertex]bool, len(target))
	var queue []arena.Vertex
	opponent := j.Opponent()

	for _, v := range target {
		inTarget[v] = true
		queue = append(queue, v)
	}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, pr := range g.Predecessors(s) {
			if _, ok := regions[pr]; ok {
				continue
			}
			admissible := g.Priority(pr) <= priority || inTarget[pr]
			switch {
			case g.Owner(pr) == j && admissible:
				regions[pr] = j
				w = append(w, pr)
				if !inTarget[pr] {
					queue = append(queue, pr)
				}
			case g.Owner(pr) == opponent && admissible:
				out[pr]--
				if out[pr] == 0 {
					regions[pr] = j
					w = append(w, pr)
					if !inTarget[pr] {
						queue = append(queue, pr)
					}
				}
			}
		}
	}

	for _, v := range g.Vertices() {
		if _, ok := regions[v]; !ok {
			complement = append(complement, v)
		}
	}
	return w, complement
}

func minPriorityAmong(g *arena.Arena, x []arena.Vertex) int {
	min := -1
	for _, v := range x {
		p := g.Priority(v)
		if min == -1 || p < min {
			min = p
		}
	}
	return min
}

func withPriorityGE(g *arena.Arena, x []arena.Vertex, d int) []arena.Vertex {
	var out []arena.Vertex
	for _, v := range x {
		if g.Priority(v) >= d {
			out = append(out, v)
		}
	}
	return out
}

func withPriorityEq(g *arena.Arena, x []arena.Vertex, d int) []arena.Vertex {
	var out []arena.Vertex
	for _, v := range x {
		if g.Priority(v) == d {
			out = append(out, v)
		}
	}
	return out
}

func unionVertexSets(a, b []arena.Vertex) []arena.Vertex {
	seen := make(map[arena.Vertex]bool, len(a)+len(b))
	var out []arena.Vertex
	for _, v := range a {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for _, v := range b {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// layeredAttractor is psolQ's layered_attractor: starting at priority p
// (the maximal priority of p's parity occurring in g) and stepping down
// by two, it accumulates a permissive monotone attractor layer by layer
// down to the minimum priority occurring in x.
func layeredAttractor(g *arena.Arena, p int, x []arena.Vertex) (a, notA []arena.Vertex) {
	minInX := minPriorityAmong(g, x)
	for d := p; d >= minInX; d -= 2 {
		y := withPriorityGE(g, x, d)
		aUnionY := unionVertexSets(y, a)
		a, notA = permissiveMonotoneAttractor(g, aUnionY, d)
	}
	return a, notA
}

// layeredClassicalAttractor is psolQ's layered_classical_attractor: same
// layering, but each layer uses attractor.Color (the classical, target-
// included-by-default attractor) restricted to exactly-priority-d layers.
func layeredClassicalAttractor(g *arena.Arena, p int, x []arena.Vertex) (a, notA []arena.Vertex) {
	minInX := minPriorityAmong(g, x)
	for d := p; d >= minInX; d -= 2 {
		y := withPriorityEq(g, x, d)
		aUnionY := unionVertexSets(y, a)
		a, notA = attractor.Color(g, aUnionY, arena.Parity(d), d)
	}
	return a, notA
}

func maxEvenOdd(maxPrio int) (maxEven, maxOdd int) {
	if maxPrio%2 == 0 {
		return maxPrio, maxPrio - 1
	}
	return maxPrio - 1, maxPrio
}

// SolveQ is psolQ (spec.md §4.5.3): for each color in descending order,
// the class of same-parity vertices of priority >= color is narrowed by
// repeated layered-attractor computation until it stabilises or empties;
// a stable non-empty class is fatal.
func SolveQ(g *arena.Arena, w0, w1 []arena.Vertex) (*arena.Arena, []arena.Vertex, []arena.Vertex) {
	if g.NumVertices() == 0 {
		return g, w0, w1
	}
	descending := colorsDescending(g)
	maxEven, maxOdd := maxEvenOdd(descending[0])

	for _, color := range descending {
		colorPlayer := arena.Parity(color)
		var x []arena.Vertex
		for _, v := range g.Vertices() {
			if arena.Parity(g.Priority(v)) == colorPlayer && g.Priority(v) >= color {
				x = append(x, v)
			}
		}

		var cache []arena.Vertex
		for !equalVertexSets(cache, x) && len(x) > 0 {
			cache = x
			var ma []arena.Vertex
			if colorPlayer == arena.Player0 {
				ma, _ = layeredAttractor(g, maxEven, x)
			} else {
				ma, _ = layeredAttractor(g, maxOdd, x)
			}

			if isSubset(x, ma) {
				att, complement := attractor.Attractor(g, ma, colorPlayer)
				if colorPlayer == arena.Player0 {
					w0 = append(w0, att...)
				} else {
					w1 = append(w1, att...)
				}
				return SolveQ(g.Subgame(complement), w0, w1)
			}
			x = intersectVertexSets(x, ma)
		}
	}
	return g, w0, w1
}

// PsolQClassical is psolQ_classical_attractor (spec.md §4.5.3,
// supplemented): like SolveQ, but the layered attractor is classical (the
// target set is in the attractor de facto), so fatality is tested by
// checking which vertices of x can still force entry into the computed
// layered attractor, rather than by plain subset inclusion.
func PsolQClassical(g *arena.Arena, w0, w1 []arena.Vertex) (*arena.Arena, []arena.Vertex, []arena.Vertex) {
	if g.NumVertices() == 0 {
		return g, w0, w1
	}
	descending := colorsDescending(g)
	maxEven, maxOdd := maxEvenOdd(descending[0])

	for _, color := range descending {
		colorPlayer := arena.Parity(color)
		var x []arena.Vertex
		for _, v := range g.Vertices() {
			if arena.Parity(g.Priority(v)) == colorPlayer && g.Priority(v) >= color {
				x = append(x, v)
			}
		}

		for {
			if len(x) == 0 {
				break
			}
			var ma []arena.Vertex
			if colorPlayer == arena.Player0 {
				ma, _ = layeredClassicalAttractor(g, maxEven, x)
			} else {
				ma, _ = layeredClassicalAttractor(g, maxOdd, x)
			}
			inMA := make(map[arena.Vertex]bool, len(ma))
			for _, v := range ma {
				inMA[v] = true
			}

			var xNew []arena.Vertex
			for _, node := range x {
				if g.Owner(node) == colorPlayer {
					for _, succ := range g.Successors(node) {
						if inMA[succ] {
							xNew = append(xNew, node)
							break
						}
					}
				} else {
					all := true
					for _, succ := range g.Successors(node) {
						if !inMA[succ] {
							all = false
							break
						}
					}
					if all {
						xNew = append(xNew, node)
					}
				}
			}

			fatal := len(x) == len(xNew)
			x = xNew

			if fatal {
				att, complement := attractor.Attractor(g, ma, colorPlayer)
				if colorPlayer == arena.Player0 {
					w0 = append(w0, att...)
				} else {
					w1 = append(w1, att...)
				}
				return PsolQClassical(g.Subgame(complement), w0, w1)
			}
		}
	}
	return g, w0, w1
}
