package buchi

import (
	"github.com/katalvlaran/genparity/arena"
	"github.com/katalvlaran/genparity/attractor"
)

// intersect returns the elements of a that also appear in b.
func intersect(a, b []arena.Vertex) []arena.Vertex {
	in := make(map[arena.Vertex]bool, len(b))
	for _, v := range b {
		in[v] = true
	}
	var out []arena.Vertex
	for _, v := range a {
		if in[v] {
			out = append(out, v)
		}
	}
	return out
}

// Player solves the Büchi game where player j must visit b infinitely
// often, via the classical O(n*m) repeat-until-fixpoint algorithm:
// shrink to the set from which j's opponent cannot force permanent
// avoidance of b, until no more shrinking occurs.
func Player(g *arena.Arena, b []arena.Vertex, j arena.Player) []arena.Vertex {
	current := g

	for {
		bInV := intersect(b, current.Vertices())
		w, notW := avoidSet(current, bInV, j)
		current = current.Subgame(notW)
		if len(w) == 0 {
			break
		}
	}
	return current.Vertices()
}

// avoidSet computes the vertices from which player j's opponent can
// avoid ever reaching b: the complement of the attractor, for ¬j, of the
// attractor for j of b.
func avoidSet(g *arena.Arena, b []arena.Vertex, j arena.Player) (w, notW []arena.Vertex) {
	_, tR := attractor.Attractor(g, b, j)
	w, notW = attractor.Attractor(g, tR, j.Opponent())
	return w, notW
}

// InterSafety solves a Büchi-inter-safety game where player j must visit
// u infinitely often while staying clear of avoid: restrict to the
// subgame outside the opponent's attractor to avoid, then run Player.
func InterSafety(g *arena.Arena, u, avoid []arena.Vertex, j arena.Player) []arena.Vertex {
	_, notA := attractor.Attractor(g, avoid, j.Opponent())
	reduced := g.Subgame(notA)
	return Player(reduced, u, j)
}

// InterCoBuchi solves a Büchi-inter-co-Büchi game where player j must
// visit u infinitely often while visiting avoid only finitely often:
// repeatedly solve the Büchi-inter-safety approximation and attract the
// winning region back into the full arena, shrinking the residual game
// until the approximation wins nothing more.
func InterCoBuchi(g *arena.Arena, u, avoid []arena.Vertex, j arena.Player) []arena.Vertex {
	current := g
	var res []arena.Vertex

	for {
		w := InterSafety(current, u, avoid, j)
		if len(w) == 0 {
			break
		}
		res = append(res, w...)
		_, notA := attractor.Attractor(g, res, j)
		current = g.Subgame(notA)
	}
	return res
}

// GeneralizedInterSafety solves a generalized-Büchi-inter-safety game
// where player 0 must visit every set in sets infinitely often while
// staying clear of avoid.
func GeneralizedInterSafety(g *arena.Arena, sets [][]arena.Vertex, avoid []arena.Vertex) []arena.Vertex {
	_, notA := attractor.Attractor(g, avoid, arena.Player1)
	reduced := g.Subgame(notA)
	return GeneralizedPlayer0(reduced, sets)
}

// GeneralizedPlayer0 solves the generalized Büchi game where player 0
// must visit every set in sets infinitely often, via the classical
// repeat-until-fixpoint construction: find a set player 1 can force
// avoidance of, attract it away, shrink, repeat until no set can be
// avoided.
func GeneralizedPlayer0(g *arena.Arena, sets [][]arena.Vertex) []arena.Vertex {
	current := g
	live := make([][]arena.Vertex, len(sets))
	copy(live, sets)

	for {
		var s []arena.Vertex
		found := false
		for l, set := range live {
			inV := intersect(set, current.Vertices())
			live[l] = inV
			_, notR := attractor.Attractor(current, inV, arena.Player0)
			if len(notR) > 0 || len(inV) == 0 {
				// Some vertices cannot reach this set: player 1 may be
				// able to avoid it forever from notR.
				s = notR
				found = true
				break
			}
		}
		if !found {
			break
		}
		w, notW := attractor.Attractor(current, s, arena.Player1)
		current = current.Subgame(notW)
		if len(w) == 0 {
			break
		}
	}
	return current.Vertices()
}
