package psol_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genparity/arena"
	"github.com/katalvlaran/genparity/psol"
)

// genRing3 builds a 3-cycle, every vertex owned by Player0, priority 0
// under both dimensions — trivially fatal for player 0 under any
// generalized partial solver, since every vertex's own priorities already
// satisfy both functions' thresholds.
func genRing3(t *testing.T) *arena.Arena {
	t.Helper()
	g, err := arena.New(
		[]arena.Vertex{0, 1, 2},
		map[arena.Vertex]arena.Player{0: arena.Player0, 1: arena.Player0, 2: arena.Player0},
		map[arena.Vertex][]int{0: {0, 0}, 1: {0, 0}, 2: {0, 0}},
		[][2]arena.Vertex{{0, 1}, {1, 2}, {2, 0}},
	)
	require.NoError(t, err)
	return g
}

// genSelfLoopNoEvenDim builds a single Player1-owned vertex whose first
// dimension never takes an even value: player 0 can never satisfy that
// function, so the whole game belongs to player 1 immediately.
func genSelfLoopNoEvenDim(t *testing.T) *arena.Arena {
	t.Helper()
	g, err := arena.New(
		[]arena.Vertex{0},
		map[arena.Vertex]arena.Player{0: arena.Player1},
		map[arena.Vertex][]int{0: {1, 3}},
		[][2]arena.Vertex{{0, 0}},
	)
	require.NoError(t, err)
	return g
}

func TestSolveBGeneralized_RingFullyDecided(t *testing.T) {
	g := genRing3(t)
	residual, w0, w1 := psol.SolveBGeneralized(g, nil, nil)
	require.Equal(t, 0, residual.NumVertices())
	require.ElementsMatch(t, []arena.Vertex{0, 1, 2}, w0)
	require.Empty(t, w1)
}

func TestSolveBGeneralized_NoEvenDimensionDecidesPlayer1(t *testing.T) {
	g := genSelfLoopNoEvenDim(t)
	residual, w0, w1 := psol.SolveBGeneralized(g, nil, nil)
	require.Equal(t, 0, residual.NumVertices())
	require.Empty(t, w0)
	require.ElementsMatch(t, []arena.Vertex{0}, w1)
}
