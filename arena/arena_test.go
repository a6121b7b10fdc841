package arena_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genparity/arena"
)

// triangle builds a 3-vertex cycle 0->1->2->0, single priority function.
func triangle(t *testing.T) *arena.Arena {
	t.Helper()
	owner := map[arena.Vertex]arena.Player{0: arena.Player0, 1: arena.Player1, 2: arena.Player0}
	pr := map[arena.Vertex][]int{0: {2}, 1: {1}, 2: {0}}
	edges := [][2]arena.Vertex{{0, 1}, {1, 2}, {2, 0}}
	a, err := arena.New([]arena.Vertex{0, 1, 2}, owner, pr, edges)
	require.NoError(t, err)
	return a
}

func TestNew_DeadEnd(t *testing.T) {
	owner := map[arena.Vertex]arena.Player{0: arena.Player0, 1: arena.Player1}
	pr := map[arena.Vertex][]int{0: {0}, 1: {0}}
	_, err := arena.New([]arena.Vertex{0, 1}, owner, pr, [][2]arena.Vertex{{0, 1}})
	require.ErrorIs(t, err, arena.ErrDeadEnd)
}

func TestNew_ArityMismatch(t *testing.T) {
	owner := map[arena.Vertex]arena.Player{0: arena.Player0, 1: arena.Player1}
	pr := map[arena.Vertex][]int{0: {0, 1}, 1: {0}}
	edges := [][2]arena.Vertex{{0, 1}, {1, 0}}
	_, err := arena.New([]arena.Vertex{0, 1}, owner, pr, edges)
	require.ErrorIs(t, err, arena.ErrArityMismatch)
}

func TestAdjacencyConsistency(t *testing.T) {
	a := triangle(t)
	for _, v := range a.Vertices() {
		for _, s := range a.Successors(v) {
			found := false
			for _, p := range a.Predecessors(s) {
				if p == v {
					found = true
				}
			}
			require.True(t, found, "succ(%d) has %d but pred(%d) lacks %d", v, s, s, v)
		}
	}
}

func TestSubgameDropsDanglingEdges(t *testing.T) {
	a := triangle(t)
	sg := a.Subgame([]arena.Vertex{0, 1})
	require.ElementsMatch(t, []arena.Vertex{0, 1}, sg.Vertices())
	require.Empty(t, sg.Successors(1)) // 1->2 dropped, 2 absent
	require.Equal(t, []arena.Vertex{1}, sg.Successors(0))
}

func TestComplementIncrementsPriorities(t *testing.T) {
	a := triangle(t)
	c := a.Complement()
	for _, v := range a.Vertices() {
		require.Equal(t, a.Priority(v)+1, c.Priority(v))
	}
	// Complement must not mutate the original.
	require.Equal(t, 2, a.Priority(0))
}

func TestMaxPriorityAndSelection(t *testing.T) {
	a := triangle(t)
	require.Equal(t, 2, a.MaxPriority())
	require.Equal(t, []arena.Vertex{0}, a.VerticesWithPriority(2))
}

func TestOpponentAndParity(t *testing.T) {
	require.Equal(t, arena.Player1, arena.Player0.Opponent())
	require.Equal(t, arena.Player0, arena.Parity(4))
	require.Equal(t, arena.Player1, arena.Parity(5))
}
