package zielonka_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genparity/arena"
	"github.com/katalvlaran/genparity/zielonka"
)

func selfLoop(t *testing.T, owner arena.Player, priorities []int) *arena.Arena {
	t.Helper()
	g, err := arena.New(
		[]arena.Vertex{0},
		map[arena.Vertex]arena.Player{0: owner},
		map[arena.Vertex][]int{0: priorities},
		[][2]arena.Vertex{{0, 0}},
	)
	require.NoError(t, err)
	return g
}

func TestGeneralizedParitySolver_AllEvenWonByPlayer0(t *testing.T) {
	g := selfLoop(t, arena.Player0, []int{0, 0})
	w0, w1 := zielonka.GeneralizedParitySolver(g)
	require.ElementsMatch(t, []arena.Vertex{0}, w0)
	require.Empty(t, w1)
}

func TestGeneralizedParitySolver_OneOddWonByPlayer1(t *testing.T) {
	g := selfLoop(t, arena.Player1, []int{1, 1})
	w0, w1 := zielonka.GeneralizedParitySolver(g)
	require.Empty(t, w0)
	require.ElementsMatch(t, []arena.Vertex{0}, w1)
}

func TestGeneralizedParitySolver_SingleDimensionAgreesWithSolve(t *testing.T) {
	g, err := arena.New(
		[]arena.Vertex{0, 1},
		map[arena.Vertex]arena.Player{0: arena.Player1, 1: arena.Player0},
		map[arena.Vertex][]int{0: {1}, 1: {0}},
		[][2]arena.Vertex{{0, 1}, {1, 0}},
	)
	require.NoError(t, err)

	expected0, expected1 := zielonka.Solve(g)
	got0, got1 := zielonka.GeneralizedParitySolver(g)
	require.ElementsMatch(t, expected0, got0)
	require.ElementsMatch(t, expected1, got1)
}

// TestGeneralizedParitySolver_ChainWithDiversionsAgreesWithSolve uses a
// larger single-dimension arena, spanning priorities 0..5 with a main
// cycle plus a diversion edge from every odd-priority vertex to the
// lowest-priority vertex. DisjParityWin's dimension-0 maxVals entry
// starts at 7 (nextOdd(6) after complementing priority 5) and must walk
// down through 5, 3, 1, giving its inner while-loop several chances to
// run more than once per level — exactly the shape that silently broke
// under a cumulative (rather than fixed -2) decrement. Because
// DisjParityWin on a single dimension must always agree with the
// dedicated single-dimension Solve, this is a safe equivalence check
// regardless of how many inner-loop rounds the recursion actually takes.
func TestGeneralizedParitySolver_ChainWithDiversionsAgreesWithSolve(t *testing.T) {
	g, err := arena.New(
		[]arena.Vertex{0, 1, 2, 3, 4, 5},
		map[arena.Vertex]arena.Player{
			0: arena.Player1, 1: arena.Player0, 2: arena.Player1,
			3: arena.Player0, 4: arena.Player1, 5: arena.Player0,
		},
		map[arena.Vertex][]int{
			0: {5}, 1: {4}, 2: {3}, 3: {2}, 4: {1}, 5: {0},
		},
		[][2]arena.Vertex{
			{0, 1}, {0, 5},
			{1, 2}, {1, 5},
			{2, 3}, {2, 5},
			{3, 4}, {3, 5},
			{4, 5},
			{5, 0},
		},
	)
	require.NoError(t, err)

	expected0, expected1 := zielonka.Solve(g)
	got0, got1 := zielonka.GeneralizedParitySolver(g)
	require.ElementsMatch(t, expected0, got0)
	require.ElementsMatch(t, expected1, got1)
}
