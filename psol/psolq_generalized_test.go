package psol_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genparity/arena"
	"github.com/katalvlaran/genparity/psol"
)

func TestSolveQGeneralized_RingFullyDecided(t *testing.T) {
	g := genRing3(t)
	residual, w0, w1 := psol.SolveQGeneralized(g, nil, nil)
	require.Equal(t, 0, residual.NumVertices())
	require.ElementsMatch(t, []arena.Vertex{0, 1, 2}, w0)
	require.Empty(t, w1)
}

func TestSolveQGeneralized_NoEvenDimensionDecidesPlayer1(t *testing.T) {
	g := genSelfLoopNoEvenDim(t)
	residual, w0, w1 := psol.SolveQGeneralized(g, nil, nil)
	require.Equal(t, 0, residual.NumVertices())
	require.Empty(t, w0)
	require.ElementsMatch(t, []arena.Vertex{0}, w1)
}
