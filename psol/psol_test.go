package psol_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genparity/arena"
	"github.com/katalvlaran/genparity/psol"
)

// selfLoopEven builds a single Player0-owned vertex 0 (priority 0) with a
// self-loop: its own monotone attractor is trivially fatal, since the
// vertex is its own same-parity predecessor.
func selfLoopEven(t *testing.T) *arena.Arena {
	t.Helper()
	g, err := arena.New(
		[]arena.Vertex{0},
		map[arena.Vertex]arena.Player{0: arena.Player0},
		map[arena.Vertex][]int{0: {0}},
		[][2]arena.Vertex{{0, 0}},
	)
	require.NoError(t, err)
	return g
}

// ring3 builds the 3-cycle 0->1->2->0, every vertex owned by Player0 with
// priority 0 — every vertex is fatal for Player0.
func ring3(t *testing.T) *arena.Arena {
	t.Helper()
	g, err := arena.New(
		[]arena.Vertex{0, 1, 2},
		map[arena.Vertex]arena.Player{0: arena.Player0, 1: arena.Player0, 2: arena.Player0},
		map[arena.Vertex][]int{0: {0}, 1: {0}, 2: {0}},
		[][2]arena.Vertex{{0, 1}, {1, 2}, {2, 0}},
	)
	require.NoError(t, err)
	return g
}

// alternating builds two vertices of opposite ownership and opposite
// parity: 0 (Player1, priority 1) only reaches 1, and 1 (Player0,
// priority 0) only reaches 0. The only play sees priority 1 infinitely
// often, and vertex 0 lies in its own monotone attractor (1 is forced
// back to 0 at priority 0 <= 1), so it is a fatal attractor for Player1.
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

func TestSolve_SelfLoopDecidesPlayer0(t *testing.T) {
	g := selfLoopEven(t)
	residual, w0, w1 := psol.Solve(g, nil, nil)
	require.Equal(t, 0, residual.NumVertices())
	require.ElementsMatch(t, []arena.Vertex{0}, w0)
	require.Empty(t, w1)
}

func TestSolve_RingFullyDecided(t *testing.T) {
	g := ring3(t)
	residual, w0, w1 := psol.Solve(g, nil, nil)
	require.Equal(t, 0, residual.NumVertices())
	require.ElementsMatch(t, []arena.Vertex{0, 1, 2}, w0)
	require.Empty(t, w1)
}

func TestSolve_AlternatingCycleDecidesPlayer1(t *testing.T) {
	g := alternating(t)
	residual, w0, w1 := psol.Solve(g, nil, nil)
	require.Equal(t, 0, residual.NumVertices())
	require.Empty(t, w0)
	require.ElementsMatch(t, []arena.Vertex{0, 1}, w1)
}

func TestSolveEdgeRemoval_AgreesWithSolve(t *testing.T) {
	g := ring3(t)
	residual, w0, w1 := psol.SolveEdgeRemoval(g, nil, nil)
	require.Equal(t, 0, residual.NumVertices())
	require.ElementsMatch(t, []arena.Vertex{0, 1, 2}, w0)
	require.Empty(t, w1)
}

func TestSolveB_RingFullyDecided(t *testing.T) {
	g := ring3(t)
	residual, w0, w1 := psol.SolveB(g, nil, nil)
	require.Equal(t, 0, residual.NumVertices())
	require.ElementsMatch(t, []arena.Vertex{0, 1, 2}, w0)
	require.Empty(t, w1)
}

func TestSolveBModifiedAttractor_AgreesWithSolveB(t *testing.T) {
	g := ring3(t)
	residual, w0, w1 := psol.SolveBModifiedAttractor(g, nil, nil)
	require.Equal(t, 0, residual.NumVertices())
	require.ElementsMatch(t, []arena.Vertex{0, 1, 2}, w0)
	require.Empty(t, w1)
}

func TestSolveBBuchiCoBuchi_RingFullyDecided(t *testing.T) {
	g := ring3(t)
	residual, w0, w1 := psol.SolveBBuchiCoBuchi(g, nil, nil)
	require.Equal(t, 0, residual.NumVertices())
	require.ElementsMatch(t, []arena.Vertex{0, 1, 2}, w0)
	require.Empty(t, w1)
}

func TestSolveBBuchiSafety_RingFullyDecided(t *testing.T) {
	g := ring3(t)
	residual, w0, w1 := psol.SolveBBuchiSafety(g, nil, nil)
	require.Equal(t, 0, residual.NumVertices())
	require.ElementsMatch(t, []arena.Vertex{0, 1, 2}, w0)
	require.Empty(t, w1)
}

func TestSolveQ_RingFullyDecided(t *testing.T) {
	g := ring3(t)
	residual, w0, w1 := psol.SolveQ(g, nil, nil)
	require.Equal(t, 0, residual.NumVertices())
	require.ElementsMatch(t, []arena.Vertex{0, 1, 2}, w0)
	require.Empty(t, w1)
}

func TestPsolQClassical_AgreesWithSolveQ(t *testing.T) {
	g := ring3(t)
	residual, w0, w1 := psol.PsolQClassical(g, nil, nil)
	require.Equal(t, 0, residual.NumVertices())
	require.ElementsMatch(t, []arena.Vertex{0, 1, 2}, w0)
	require.Empty(t, w1)
}

func TestSolveC_RingFullyDecided(t *testing.T) {
	g := ring3(t)
	residual, w0, w1 := psol.SolveC(g, nil, nil)
	require.Equal(t, 0, residual.NumVertices())
	require.ElementsMatch(t, []arena.Vertex{0, 1, 2}, w0)
	require.Empty(t, w1)
}

// SolveC's episode-based memory domain decides the same two-vertex
// alternating cycle in favour of Player1 (the odd priority dominates),
// as Solve does (see TestSolve_AlternatingCycleDecidesPlayer1).
func TestSolveC_AlternatingCycleDecidesPlayer1(t *testing.T) {
	g := alternating(t)
	residual, w0, w1 := psol.SolveC(g, nil, nil)
	require.Equal(t, 0, residual.NumVertices())
	require.Empty(t, w0)
	require.ElementsMatch(t, []arena.Vertex{0, 1}, w1)
}
