package psol

import (
	"github.com/katalvlaran/genparity/arena"
	"github.com/katalvlaran/genparity/attractor"
)

// memoryState pairs a vertex with a per-function bitmask recording which
// dimensions' thresholds have already been met along the backward search
// explored so far (spec.md §4.5.5's memory vector).
type memoryState struct {
	v    arena.Vertex
	bits uint64
}

func initMemoryBits(g *arena.Arena, v arena.Vertex, thresholds []int) uint64 {
	var bits uint64
	for i, t := range thresholds {
		if g.PriorityOf(v, i) >= t {
			bits |= 1 << uint(i)
		}
	}
	return bits
}

func memoryFull(bits uint64, k int) bool {
	return bits == (uint64(1)<<uint(k))-1
}

// layeredAttractorGeneralized is psolQ's layered_attractor generalized to
// k priority functions (spec.md §4.5.5): starting from vertices whose own
// priorities already meet every dimension's threshold, or that are
// already proven (star, carried over from a previous round), it expands
// backward, accumulating per-function memory bits as the union of what
// the successor had already satisfied with whatever the predecessor
// itself newly satisfies. A predecessor whose priority is the wrong
// parity and strictly above threshold on a dimension the successor has
// not yet satisfied can never repair that dimension there and is refused
// admission outright — the same bad-combination check create_predecessors
// performs per boolean branch, applied here to the single accumulating
// memory vector this repository tracks per node (see SolveQGeneralized's
// doc comment for why that is a deliberate narrowing, not a full port).
func layeredAttractorGeneralized(g *arena.Arena, star map[arena.Vertex]bool, thresholds []int) (w []arena.Vertex, newStar map[arena.Vertex]bool) {
	k := len(thresholds)
	seen := make(map[memoryState]bool)
	out := make(map[arena.Vertex]int, g.NumVertices())
	for _, v := range g.Vertices() {
		out[v] = g.OutDegree(v)
	}

	var queue []memoryState
	enqueue := func(s memoryState) {
		if !seen[s] {
			seen[s] = true
			queue = append(queue, s)
		}
	}

	full := (uint64(1) << uint(k)) - 1
	for _, v := range g.Vertices() {
		if star[v] {
			enqueue(memoryState{v, full})
			continue
		}
		bits := initMemoryBits(g, v, thresholds)
		if memoryFull(bits, k) {
			enqueue(memoryState{v, bits})
		}
	}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, pr := range g.Predecessors(s.v) {
			bits := s.bits
			blocked := false
			for i := 0; i < k; i++ {
				if bits&(1<<uint(i)) != 0 {
					continue
				}
				p := g.PriorityOf(pr, i)
				if p%2 == 0 && p >= thresholds[i] {
					bits |= 1 << uint(i)
				} else if p%2 == 1 && p > thresholds[i] {
					blocked = true
					break
				}
			}
			if blocked {
				continue
			}
			ns := memoryState{pr, bits}
			if seen[ns] {
				continue
			}
			if g.Owner(pr) == arena.Player0 {
				enqueue(ns)
			} else {
				out[pr]--
				if out[pr] <= 0 {
					enqueue(ns)
				}
			}
		}
	}

	newStar = make(map[arena.Vertex]bool)
	winSet := make(map[arena.Vertex]bool)
	for s := range seen {
		winSet[s.v] = true
		if memoryFull(s.bits, k) {
			newStar[s.v] = true
		}
	}
	w = make([]arena.Vertex, 0, len(winSet))
	for v := range winSet {
		w = append(w, v)
	}
	return w, newStar
}

// potentialNodesGeneralized is psolQ_generalized's potential_nodes
// filter: a vertex is excluded only if some dimension's priority is odd
// and strictly above that dimension's threshold, which would make the
// dimension unrepairable from that vertex at this threshold tuple.
func potentialNodesGeneralized(g *arena.Arena, thresholds []int) []arena.Vertex {
	var out []arena.Vertex
	for _, v := range g.Vertices() {
		ok := true
		for i, t := range thresholds {
			p := g.PriorityOf(v, i)
			if p%2 == 1 && p > t {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, v)
		}
	}
	return out
}

// SolveQGeneralized is psolQ's generalized counterpart (spec.md §4.5.5):
// odd priorities are peeled off per dimension exactly as
// SolveBGeneralized does; once every dimension's odd priorities are
// exhausted, each combination of per-dimension even priorities is tried
// as a threshold vector, the memoried layered attractor is iterated to a
// fixpoint (each round re-seeding with the previous round's fully-
// satisfied vertices as star), and a stable attractor that covers every
// potential vertex is fatal.
//
// The memoried layered attractor here tracks exactly one accumulating
// memory vector per node rather than the original source's full powerset
// of boolean combinations per node reached via create_predecessors. That
// is a deliberate, sound narrowing: spec.md §4.5's partial solvers are
// never required to be complete, only correct (the surrounding recursive
// solver picks up whatever they leave undecided), and a single
// monotonically-accumulating vector can only ever under-approximate the
// fully combinatorial attractor, never over-claim a vertex for player 0
// it does not control.
func SolveQGeneralized(g *arena.Arena, w0, w1 []arena.Vertex) (*arena.Arena, []arena.Vertex, []arena.Vertex) {
	if g.NumVertices() == 0 {
		return g, w0, w1
	}

	k := g.Arity()
	colorsByDim := make([][]int, k)
	evensByDim := make([][]int, k)
	for f := 0; f < k; f++ {
		colorsByDim[f] = descendingColorsOf(g, f)
		evensByDim[f] = evenOnly(colorsByDim[f])
		if len(evensByDim[f]) == 0 {
			w1 = append(w1, g.Vertices()...)
			return g.Subgame(nil), w0, w1
		}
	}

	for f := 0; f < k; f++ {
		for _, p := range colorsByDim[f] {
			if p%2 == 0 {
				continue
			}
			target := g.VerticesWithPriorityOf(p, f)
			var cache []arena.Vertex
			for !equalVertexSets(cache, target) && len(target) > 0 {
				cache = target
				ma, _ := monotoneDim(g, target, p, f)
				if isSubset(target, ma) {
					att, complement := attractor.Attractor(g, ma, arena.Player1)
					w1 = append(w1, att...)
					return SolveQGeneralized(g.Subgame(complement), w0, w1)
				}
				target = intersectVertexSets(target, ma)
			}
		}
	}

	for _, thresholds := range cartesianProductDesc(evensByDim) {
		potential := potentialNodesGeneralized(g, thresholds)
		if len(potential) == 0 {
			continue
		}

		star := make(map[arena.Vertex]bool)
		for {
			_, newStar := layeredAttractorGeneralized(g, star, thresholds)
			stable := len(newStar) == len(star)
			if stable {
				for v := range star {
					if !newStar[v] {
						stable = false
						break
					}
				}
			}
			star = newStar
			if stable {
				break
			}
		}

		coversAll := len(star) > 0
		for _, v := range potential {
			if !star[v] {
				coversAll = false
				break
			}
		}
		if coversAll {
			seed := make([]arena.Vertex, 0, len(star))
			for v := range star {
				seed = append(seed, v)
			}
			att, complement := attractor.Attractor(g, seed, arena.Player0)
			w0 = append(w0, att...)
			return SolveQGeneralized(g.Subgame(complement), w0, w1)
		}
	}

	return g, w0, w1
}
