package safety_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genparity/arena"
	"github.com/katalvlaran/genparity/safety"
)

// selfLoop builds a single vertex with a self-loop carrying priority p.
func selfLoop(t *testing.T, owner arena.Player, p int) *arena.Arena {
	t.Helper()
	g, err := arena.New(
		[]arena.Vertex{0},
		map[arena.Vertex]arena.Player{0: owner},
		map[arena.Vertex][]int{0: {p}},
		[][2]arena.Vertex{{0, 0}},
	)
	require.NoError(t, err)
	return g
}

// ring3 is a 3-cycle, every vertex priority 0, owned in turn by player
// 1, player 0 and player 1: the only infinite play sees priority 0 forever, an even
// maximum, so the whole arena belongs to player 0 regardless of owner.
func ring3(t *testing.T) *arena.Arena {
	t.Helper()
	g, err := arena.New(
		[]arena.Vertex{0, 1, 2},
		map[arena.Vertex]arena.Player{0: arena.Player1, 1: arena.Player0, 2: arena.Player1},
		map[arena.Vertex][]int{0: {0}, 1: {0}, 2: {0}},
		[][2]arena.Vertex{{0, 1}, {1, 2}, {2, 0}},
	)
	require.NoError(t, err)
	return g
}

// alternating is the 2-cycle 0<->1 with priorities {1, 0}: the only
// infinite play sees max priority 1 (odd) infinitely often, so the
// entire arena belongs to player 1 no matter who owns which vertex.
func alternating(t *testing.T) *arena.Arena {
	t.Helper()
	g, err := arena.New(
		[]arena.Vertex{0, 1},
		map[arena.Vertex]arena.Player{0: arena.Player1, 1: arena.Player0},
		map[arena.Vertex][]int{0: {1}, 1: {0}},
		[][2]arena.Vertex{{0, 1}, {1, 0}},
	)
	require.NoError(t, err)
	return g
}

func TestSolve_SelfLoopEvenWonByPlayer0(t *testing.T) {
	g := selfLoop(t, arena.Player0, 0)
	w0, w1 := safety.Solve(g)
	require.ElementsMatch(t, []arena.Vertex{0}, w0)
	require.Empty(t, w1)
}

func TestSolve_SelfLoopOddWonByPlayer1(t *testing.T) {
	g := selfLoop(t, arena.Player1, 1)
	w0, w1 := safety.Solve(g)
	require.Empty(t, w0)
	require.ElementsMatch(t, []arena.Vertex{0}, w1)
}

func TestSolve_RingWonByPlayer0(t *testing.T) {
	g := ring3(t)
	w0, w1 := safety.Solve(g)
	require.ElementsMatch(t, []arena.Vertex{0, 1, 2}, w0)
	require.Empty(t, w1)
}

func TestSolve_AlternatingWonByPlayer1(t *testing.T) {
	g := alternating(t)
	w0, w1 := safety.Solve(g)
	require.Empty(t, w0)
	require.ElementsMatch(t, []arena.Vertex{0, 1}, w1)
}

func TestComputeFixpoint_StartsAtEveryVertexMaxBound(t *testing.T) {
	g := ring3(t)
	a := safety.ComputeFixpoint(g, 2)
	require.NotZero(t, a.Len())
	for _, v := range safety.GetWinningRegion(a) {
		require.True(t, v == 0 || v == 1 || v == 2)
	}
}

func TestGetWinningRegion_EmptyAntichainYieldsNoVertices(t *testing.T) {
	g := selfLoop(t, arena.Player1, 1)
	a := safety.ComputeFixpoint(g, 1)
	require.Empty(t, safety.GetWinningRegion(a))
}
