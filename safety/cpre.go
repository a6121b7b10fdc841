package safety

import (
	"github.com/katalvlaran/genparity/antichain"
	"github.com/katalvlaran/genparity/arena"
)

func newAntichain() *antichain.Antichain[State] {
	return antichain.New(LessEq, Meet)
}

// cpre1 computes CPre_1(a) (spec.md §4.4): for every player-1 vertex v,
// intersect, across every successor s, the set of down-images of a's
// elements at s under v's priority; union the result across every v.
// Player 1 must be able to force every one of its outgoing edges into a,
// hence the per-vertex intersection rather than union.
func cpre1(g *arena.Arena, a *antichain.Antichain[State], bound int) *antichain.Antichain[State] {
	result := newAntichain()
	if a.Len() == 0 {
		return result
	}

	byVertex := make(map[arena.Vertex][]State)
	for _, e := range a.Elements() {
		byVertex[e.V] = append(byVertex[e.V], e)
	}

	for _, node := range g.Vertices() {
		if g.Owner(node) != arena.Player1 {
			continue
		}
		var acc *antichain.Antichain[State]
		for i, succ := range g.Successors(node) {
			layer := newAntichain()
			for _, e := range byVertex[succ] {
				if d, ok := down(e, g.Priority(node), node, bound); ok {
					layer.Insert(d)
				}
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

// cpre0 computes CPre_0(a) (spec.md §4.4): for every element (s, c) of
// a, for every player-0 predecessor v of s, insert the down-image of
// (s, c) under v's priority. Player 0 only needs one controlled edge, so
// this is a plain union, no per-vertex intersection.
func cpre0(g *arena.Arena, a *antichain.Antichain[State], bound int) *antichain.Antichain[State] {
	result := newAntichain()
	if a.Len() == 0 {
		return result
	}

	for _, e := range a.Elements() {
		for _, pred := range g.Predecessors(e.V) {
			if g.Owner(pred) != arena.Player0 {
				continue
			}
			if d, ok := down(e, g.Priority(pred), pred, bound); ok {
				result.Insert(d)
			}
		}
	}
	return result
}
