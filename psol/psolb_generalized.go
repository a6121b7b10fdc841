package psol

import (
	"sort"

	"github.com/katalvlaran/genparity/arena"
	"github.com/katalvlaran/genparity/attractor"
	"github.com/katalvlaran/genparity/buchi"
)

// descendingColorsOf returns the distinct priorities g carries under
// dimension dim, descending.
func descendingColorsOf(g *arena.Arena, dim int) []int {
	seen := make(map[int]bool)
	for _, v := range g.Vertices() {
		seen[g.PriorityOf(v, dim)] = true
	}
	colors := make([]int, 0, len(seen))
	for c := range seen {
		colors = append(colors, c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(colors)))
	return colors
}

func evenOnly(colors []int) []int {
	var out []int
	for _, c := range colors {
		if c%2 == 0 {
			out = append(out, c)
		}
	}
	return out
}

// monotoneDim is attractor.Monotone specialized to priority function dim
// instead of the single-dimension priority (psolB_generalized.py's
// monotone_attractor, which takes an explicit func argument rather than
// reading Arena's lone priority).
func monotoneDim(g *arena.Arena, target []arena.Vertex, p, dim int) (w, complement []arena.Vertex) {
	j := arena.Parity(p)
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
			prPriority := g.PriorityOf(pr, dim)
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

// cartesianProductDesc enumerates the Cartesian product of per-dimension
// lists (each already sorted by the caller), row by row, advancing the
// last dimension fastest.
func cartesianProductDesc(lists [][]int) [][]int {
	if len(lists) == 0 {
		return nil
	}
	total := 1
	for _, l := range lists {
		if len(l) == 0 {
			return nil
		}
		total *= len(l)
	}
	result := make([][]int, 0, total)
	indices := make([]int, len(lists))
	for {
		row := make([]int, len(lists))
		for i, l := range lists {
			row[i] = l[indices[i]]
		}
		result = append(result, row)

		pos := len(lists) - 1
		for pos >= 0 {
			indices[pos]++
			if indices[pos] < len(lists[pos]) {
				break
			}
			indices[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}
	return result
}

// SolveBGeneralized is psolB's generalized counterpart (spec.md §4.5.3):
// for each priority function, odd priorities are peeled off one at a time
// via a fatal-monotone-attractor fixpoint exactly as SolveB does for the
// single-dimension game; once every function's odd priorities have been
// considered without finding a fatal attractor, every combination of
// per-dimension even priorities is tried as the target of a generalized
// Büchi-inter-safety game, and any non-empty winning region is peeled off
// for player 0.
//
// Per spec.md §9's design note (Open Question 3), the combinations are
// enumerated directly as the Cartesian product of each dimension's
// descending even-priority list, rather than replicating the original
// source's depth/max_size+2 lattice-level iteration (even_tuples_iterator),
// whose termination condition does not generalize cleanly to an
// arbitrary number of functions.
func SolveBGeneralized(g *arena.Arena, w0, w1 []arena.Vertex) (*arena.Arena, []arena.Vertex, []arena.Vertex) {
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
			// No even priority under this function: player 0 can never
			// satisfy it, so the whole residual game is player 1's.
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
					return SolveBGeneralized(g.Subgame(complement), w0, w1)
				}
				target = intersectVertexSets(target, ma)
			}
		}
	}

	for _, kuple := range cartesianProductDesc(evensByDim) {
		var avoid []arena.Vertex
		sets := make([][]arena.Vertex, k)
		for _, v := range g.Vertices() {
			flag := false
			for f := 0; f < k; f++ {
				p := g.PriorityOf(v, f)
				if p%2 == 1 && p > kuple[f] {
					flag = true
				} else if p == kuple[f] {
					sets[f] = append(sets[f], v)
				}
			}
			if flag {
				avoid = append(avoid, v)
			}
		}

		win := buchi.GeneralizedInterSafety(g, sets, avoid)
		if len(win) != 0 {
			att, complement := attractor.Attractor(g, win, arena.Player0)
			w0 = append(w0, att...)
			return SolveBGeneralized(g.Subgame(complement), w0, w1)
		}
	}

	return g, w0, w1
}
