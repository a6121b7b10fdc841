package safety

import "github.com/katalvlaran/genparity/arena"

// State is a single antichain element (v, c_1, c_3, ..., c_d): a vertex
// paired with one counter per odd priority up to the game's maximum odd
// priority (spec.md §4.4).
type State struct {
	V        arena.Vertex
	Counters []int
}

// LessEq is the antichain order comparator: states at different vertices
// are incomparable; at the same vertex, x <= y iff every counter of x is
// <= the corresponding counter of y.
func LessEq(x, y State) bool {
	if x.V != y.V {
		return false
	}
	for i := range x.Counters {
		if x.Counters[i] > y.Counters[i] {
			return false
		}
	}
	return true
}

// Meet takes the componentwise minimum of two states at the same vertex;
// states at different vertices have no meet.
func Meet(x, y State) (State, bool) {
	if x.V != y.V {
		return State{}, false
	}
	res := make([]int, len(x.Counters))
	for i := range x.Counters {
		res[i] = x.Counters[i]
		if y.Counters[i] < res[i] {
			res[i] = y.Counters[i]
		}
	}
	return State{V: x.V, Counters: res}, true
}

// Equal reports exact equality of two states (same vertex, identical
// counter vector) — used as the antichain's exact-membership comparator.
func Equal(x, y State) bool {
	if x.V != y.V || len(x.Counters) != len(y.Counters) {
		return false
	}
	for i := range x.Counters {
		if x.Counters[i] != y.Counters[i] {
			return false
		}
	}
	return true
}

// down computes the largest state m at node such that applying priority
// to m would not exceed element's counters (spec.md §4.4): an even
// priority resets every counter for a smaller odd priority back up to
// the bound m; an odd priority decrements its own counter, reporting
// underflow (ok=false) if that counter is already at zero.
func down(element State, priority int, node arena.Vertex, bound int) (State, bool) {
	idx := priority / 2
	counters := make([]int, len(element.Counters))
	copy(counters, element.Counters)

	if priority%2 == 0 {
		for i := 0; i < idx && i < len(counters); i++ {
			counters[i] = bound
		}
		return State{V: node, Counters: counters}, true
	}

	if idx >= len(counters) || counters[idx] == 0 {
		return State{}, false
	}
	counters[idx]--
	return State{V: node, Counters: counters}, true
}

// numCounters returns the number of odd-priority counters needed for g:
// the game's maximum priority, rounded down to odd, determines both the
// highest counter index any odd priority addresses and the highest
// reset index any even priority addresses.
func numCounters(g *arena.Arena) int {
	max := g.MaxPriority()
	if max < 0 {
		return 0
	}
	maxOdd := max
	if max%2 == 0 {
		maxOdd = max - 1
	}
	if maxOdd < 0 {
		return 0
	}
	return maxOdd/2 + 1
}
