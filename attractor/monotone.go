package attractor

import "github.com/katalvlaran/genparity/arena"

// Monotone computes the monotone attractor of target for player
// p%2, refusing ever to add a vertex of priority strictly greater than
// p (spec.md §4.2, target-set variant): every vertex of target seeds the
// queue, but joins w only if it is itself attracted; a predecessor joins
// only if it is admissible (same player with priority <= p, or the opponent with
// every successor already won at priority <= p).
//
// T (== target) is fatal iff target is a subset of the returned w.
func Monotone(g *arena.Arena, target []arena.Vertex, p int) (w, complement []arena.Vertex) {
	j := arena.Parity(p)
	out := outCounters(g)
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
			prPriority := g.Priority(pr)
			switch {
			case g.Owner(pr) == j && prPriority <= p:
				regions[pr] = j
				w = append(w, pr)
				if !inTarget[pr] {
					queue = append(queue, pr)
				}
			case g.Owner(pr) == opponent && prPriority <= p:
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

// MonotoneSingleTarget computes the single-target variant of the
// monotone attractor used by psol (spec.md §4.2): node is not pre-marked,
// it is only added to the attractor if forced. Its priority p(node)
// supplies the priority bound.
func MonotoneSingleTarget(g *arena.Arena, node arena.Vertex) (w, complement []arena.Vertex) {
	p := g.Priority(node)
	j := arena.Parity(p)
	out := outCounters(g)
	regions := make(map[arena.Vertex]arena.Player, g.NumVertices())
	queue := []arena.Vertex{node}
	opponent := j.Opponent()

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, pr := range g.Predecessors(s) {
			if _, ok := regions[pr]; ok {
				continue
			}
			prPriority := g.Priority(pr)
			switch {
			case g.Owner(pr) == j && prPriority <= p:
				regions[pr] = j
				w = append(w, pr)
				if pr != node {
					queue = append(queue, pr)
				}
			case g.Owner(pr) == opponent && prPriority <= p:
				out[pr]--
				if out[pr] == 0 {
					regions[pr] = j
					w = append(w, pr)
					if pr != node {
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

// IncludingTarget computes the same fixpoint as Monotone, except that
// every target vertex is pre-seeded into w, and also reports, per target
// vertex, whether it would have joined the attractor
// had it not been pre-seeded — the membership-counting variant from
// fatalattractors/psol.py's psolB_modified_att, supplementing spec.md
// §4.5.2 with an alternate fatality test: target is fatal iff every
// entry of inAttractor is true.
func IncludingTarget(g *arena.Arena, target []arena.Vertex, p int) (w []arena.Vertex, inAttractor map[arena.Vertex]bool, complement []arena.Vertex) {
	j := arena.Parity(p)
	out := outCounters(g)
	targetOut := outCounters(g)
	regions := make(map[arena.Vertex]arena.Player, g.NumVertices())
	inTarget := make(map[arena.Vertex]bool, len(target))
	inAttractor = make(map[arena.Vertex]bool, len(target))
	var queue []arena.Vertex
	opponent := j.Opponent()

	for _, v := range target {
		inTarget[v] = true
		if _, ok := regions[v]; !ok {
			regions[v] = j
			w = append(w, v)
		}
		queue = append(queue, v)
	}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, pr := range g.Predecessors(s) {
			prPriority := g.Priority(pr)

			// Independently track whether pr — if a member of target —
			// would have joined the attractor on its own merits.
			if inTarget[pr] {
				if g.Owner(pr) == j {
					inAttractor[pr] = true
				} else {
					targetOut[pr]--
					if targetOut[pr] == 0 {
						inAttractor[pr] = true
					}
				}
			}

			if _, ok := regions[pr]; ok {
				continue
			}
			switch {
			case g.Owner(pr) == j && prPriority <= p:
				regions[pr] = j
				w = append(w, pr)
				if !inTarget[pr] {
					queue = append(queue, pr)
				}
			case g.Owner(pr) == opponent && prPriority <= p:
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
	return w, inAttractor, complement
}
