package attractor

import (
	"github.com/katalvlaran/genparity/arena"
)

// outCounters returns the per-vertex residual successor count used to
// gate opponent-owned vertices: such a vertex only joins the attractor
// once every one of its successors has already joined.
func outCounters(g *arena.Arena) map[arena.Vertex]int {
	out := make(map[arena.Vertex]int, g.NumVertices())
	for _, v := range g.Vertices() {
		out[v] = g.OutDegree(v)
	}
	return out
}

// Attractor computes the attractor for player j of the target set u in g:
// the least W containing u such that every j-owned vertex in W\u has some
// successor in W, and every ¬j-owned vertex in W\u has every successor in
// W. Returns (W, V\W); the complement is the subgame handed to the next
// recursive step.
func Attractor(g *arena.Arena, u []arena.Vertex, j arena.Player) (w, complement []arena.Vertex) {
	out := outCounters(g)
	regions := make(map[arena.Vertex]arena.Player, g.NumVertices())
	var queue []arena.Vertex
	opponent := j.Opponent()

	for _, v := range u {
		if _, ok := regions[v]; !ok {
			regions[v] = j
			w = append(w, v)
			queue = append(queue, v)
		}
	}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, p := range g.Predecessors(s) {
			if _, ok := regions[p]; ok {
				continue
			}
			switch {
			case g.Owner(p) == j:
				regions[p] = j
				w = append(w, p)
				queue = append(queue, p)
			case g.Owner(p) == opponent:
				out[p]--
				if out[p] == 0 {
					regions[p] = j
					w = append(w, p)
					queue = append(queue, p)
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

// SafeAttractor computes the attractor for player j of u in g, never
// entering any vertex of avoid: predecessors in avoid are skipped
// entirely, as if they did not exist. Used by the Büchi-inter-safety
// reduction in package buchi.
func SafeAttractor(g *arena.Arena, u, avoid []arena.Vertex, j arena.Player) (w, complement []arena.Vertex) {
	skip := make(map[arena.Vertex]bool, len(avoid))
	for _, v := range avoid {
		skip[v] = true
	}

	out := outCounters(g)
	regions := make(map[arena.Vertex]arena.Player, g.NumVertices())
	var queue []arena.Vertex
	opponent := j.Opponent()

	for _, v := range u {
		if skip[v] {
			continue
		}
		if _, ok := regions[v]; !ok {
			regions[v] = j
			queue = append(queue, v)
		}
	}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, p := range g.Predecessors(s) {
			if skip[p] {
				continue
			}
			if _, ok := regions[p]; ok {
				continue
			}
			switch {
			case g.Owner(p) == j:
				regions[p] = j
				queue = append(queue, p)
			case g.Owner(p) == opponent:
				out[p]--
				if out[p] == 0 {
					regions[p] = j
					queue = append(queue, p)
				}
			}
		}
	}

	for _, v := range g.Vertices() {
		if _, ok := regions[v]; ok {
			w = append(w, v)
		} else {
			complement = append(complement, v)
		}
	}
	return w, complement
}

// Color restricts attractor admissibility to predecessors whose
// single-dimension priority is <= p. Used by psolQ's layered attractors
// (package psol).
func Color(g *arena.Arena, u []arena.Vertex, j arena.Player, p int) (w, complement []arena.Vertex) {
	out := outCounters(g)
	regions := make(map[arena.Vertex]arena.Player, g.NumVertices())
	var queue []arena.Vertex
	opponent := j.Opponent()

	for _, v := range u {
		if _, ok := regions[v]; !ok {
			regions[v] = j
			w = append(w, v)
			queue = append(queue, v)
		}
	}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, pr := range g.Predecessors(s) {
			if _, ok := regions[pr]; ok {
				continue
			}
			if g.Priority(pr) > p {
				continue
			}
			switch {
			case g.Owner(pr) == j:
				regions[pr] = j
				w = append(w, pr)
				queue = append(queue, pr)
			case g.Owner(pr) == opponent:
				out[pr]--
				if out[pr] == 0 {
					regions[pr] = j
					w = append(w, pr)
					queue = append(queue, pr)
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

// ColorVector restricts attractor admissibility per-dimension: a
// predecessor is admissible iff, for every priority function i, its
// priority under i is either <= priorities[i] or has parity j (a vertex
// whose color already favours j in that dimension is automatically
// admissible in it). Used by the generalized fatal-attractor layers.
func ColorVector(g *arena.Arena, u []arena.Vertex, j arena.Player, priorities []int) (w, complement []arena.Vertex) {
	out := outCounters(g)
	regions := make(map[arena.Vertex]arena.Player, g.NumVertices())
	var queue []arena.Vertex
	opponent := j.Opponent()
	k := len(priorities)

	admissible := func(v arena.Vertex) bool {
		for i := 0; i < k; i++ {
			pv := g.PriorityOf(v, i)
			if pv%2 == int(j) || pv <= priorities[i] {
				continue
			}
			return false
		}
		return true
	}

	for _, v := range u {
		if _, ok := regions[v]; !ok {
			regions[v] = j
			w = append(w, v)
			queue = append(queue, v)
		}
	}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, pr := range g.Predecessors(s) {
			if _, ok := regions[pr]; ok {
				continue
			}
			if !admissible(pr) {
				continue
			}
			switch {
			case g.Owner(pr) == j:
				regions[pr] = j
				w = append(w, pr)
				queue = append(queue, pr)
			case g.Owner(pr) == opponent:
				out[pr]--
				if out[pr] == 0 {
					regions[pr] = j
					w = append(w, pr)
					queue = append(queue, pr)
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
