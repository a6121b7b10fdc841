package psol

import (
	"github.com/katalvlaran/genparity/arena"
	"github.com/katalvlaran/genparity/attractor"
)

// vertexPriority is a (vertex, priority) pair: priority records the
// largest priority seen so far along some play reaching vertex, the
// memory domain psolC's fixpoint is computed over (spec.md §4.5.4).
type vertexPriority struct {
	v arena.Vertex
	p int
}

func ascendingPriorities(g *arena.Arena) []int {
	seen := make(map[int]bool)
	for _, v := range g.Vertices() {
		seen[g.Priority(v)] = true
	}
	out := make([]int, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	// simple insertion sort is fine; priority domains are small.
	for i := 1; i < len(out); i++ {
		for k := i; k > 0 && out[k-1] > out[k]; k-- {
			out[k-1], out[k] = out[k], out[k-1]
		}
	}
	return out
}

// rSet is psolC's R_set: the attractor, for player j, of a target set of
// (vertex, worst-priority-seen) pairs, where a predecessor's admissible
// "worst priority seen so far" options are whichever priorities in the
// arena's domain lie between the predecessor's own priority and the
// successor's recorded worst priority (or, once past the successor's own
// priority, exactly that recorded worst priority).
func rSet(g *arena.Arena, target []vertexPriority, j arena.Player) map[arena.Vertex]bool {
	priorities := ascendingPriorities(g)
	out := make(map[vertexPriority]int)
	for _, v := range g.Vertices() {
		for _, p := range priorities {
			out[vertexPriority{v, p}] = g.OutDegree(v)
		}
	}
	regions := make(map[vertexPriority]arena.Player)
	inTarget := make(map[vertexPriority]bool, len(target))
	var queue []vertexPriority
	for _, t := range target {
		inTarget[t] = true
		queue = append(queue, t)
	}
	opponent := j.Opponent()

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		node, priority := cur.v, cur.p

		for _, pred := range g.Predecessors(node) {
			predPlayer := g.Owner(pred)
			predPriority := g.Priority(pred)
			if predPriority > priority {
				continue
			}

			var options []int
			nodePriority := g.Priority(node)
			if priority > nodePriority {
				options = []int{priority}
			} else {
				for _, p := range priorities {
					if p >= predPriority && p <= priority {
						options = append(options, p)
					}
				}
			}

			for _, p := range options {
				key := vertexPriority{pred, p}
				if _, ok := regions[key]; ok {
					continue
				}
				switch predPlayer {
				case j:
					regions[key] = j
					if !inTarget[key] {
						queue = append(queue, key)
					}
				case opponent:
					out[key]--
					if out[key] == 0 {
						regions[key] = j
						if !inTarget[key] {
							queue = append(queue, key)
						}
					}
				}
			}
		}
	}

	w := make(map[arena.Vertex]bool)
	for _, v := range g.Vertices() {
		if _, ok := regions[vertexPriority{v, g.Priority(v)}]; ok {
			w[v] = true
		}
	}
	return w
}

func vertexSetToSlice(m map[arena.Vertex]bool) []arena.Vertex {
	out := make([]arena.Vertex, 0, len(m))
	for v := range m {
		out = append(out, v)
	}
	return out
}

func vertexSetsEqual(a, b map[arena.Vertex]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for v := range a {
		if !b[v] {
			return false
		}
	}
	return true
}

func intersectVertexMaps(a, b map[arena.Vertex]bool) map[arena.Vertex]bool {
	out := make(map[arena.Vertex]bool)
	for v := range a {
		if b[v] {
			out[v] = true
		}
	}
	return out
}

// jfsAlgo is psolC's jfs_algo: the fatal-episode fixpoint for player j —
// an episode is a maximal run staying at or below some recorded worst
// priority and ending back at a vertex of priority >= that recording,
// forcing j's parity to be satisfied for as long as the episode holds.
func jfsAlgo(g *arena.Arena, j arena.Player) map[arena.Vertex]bool {
	jPriorities := filterParity(ascendingPriorities(g), j)
	t := targetFromSet(g, g.Vertices(), jPriorities)
	nextF := rSet(g, t, j)
	f := make(map[arena.Vertex]bool)

	for !vertexSetsEqual(nextF, f) {
		f = nextF
		t = targetFromSet(g, vertexSetToSlice(f), jPriorities)
		nextF = rSet(g, t, j)
		nextF = intersectVertexMaps(nextF, f)
	}
	return f
}

func filterParity(priorities []int, j arena.Player) []int {
	var out []int
	for _, p := range priorities {
		if arena.Parity(p) == j {
			out = append(out, p)
		}
	}
	return out
}

func targetFromSet(g *arena.Arena, vs []arena.Vertex, jPriorities []int) []vertexPriority {
	var out []vertexPriority
	for _, v := range vs {
		own := g.Priority(v)
		for _, p := range jPriorities {
			if p >= own {
				out = append(out, vertexPriority{v, p})
			}
		}
	}
	return out
}

// SolveC is psolC (spec.md §4.5.4): alternately computes jfsAlgo's fatal
// episode set for player 0 then player 1, attracting and recursing each
// time a non-empty episode set is found, until neither player has one
// left in the residual game.
func SolveC(g *arena.Arena, w0, w1 []arena.Vertex) (*arena.Arena, []arena.Vertex, []arena.Vertex) {
	subgame := g

	safe := jfsAlgo(subgame, arena.Player0)
	if len(safe) > 0 {
		att, complement := attractor.Attractor(subgame, vertexSetToSlice(safe), arena.Player0)
		w0 = append(w0, att...)
		subgame = subgame.Subgame(complement)
		return SolveC(subgame, w0, w1)
	}

	safe = jfsAlgo(subgame, arena.Player1)
	if len(safe) > 0 {
		att, complement := attractor.Attractor(subgame, vertexSetToSlice(safe), arena.Player1)
		w1 = append(w1, att...)
		subgame = subgame.Subgame(complement)
		return SolveC(subgame, w0, w1)
	}

	return subgame, w0, w1
}
