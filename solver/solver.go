package solver

import (
	"fmt"

	"github.com/katalvlaran/genparity/arena"
	"github.com/katalvlaran/genparity/psol"
	"github.com/katalvlaran/genparity/safety"
	"github.com/katalvlaran/genparity/zielonka"
)

// PartialVariant selects which fatal-attractor-based partial solver
// backs SolveParityWithPartial.
type PartialVariant int

const (
	// VariantPsol is plain fatal-attractor peeling (psol.Solve).
	VariantPsol PartialVariant = iota
	// VariantPsolB narrows using the full set of a round's fatal colors
	// at once (psol.SolveB).
	VariantPsolB
	// VariantPsolC adds the (vertex, worst-priority-seen) episode memory
	// domain (psol.SolveC).
	VariantPsolC
	// VariantPsolQ narrows using psolQ's layered permissive monotone
	// attractor (psol.SolveQ).
	VariantPsolQ
	// VariantPsolBBuchiCoBuchi expresses psolB's inner loop as a
	// Büchi∩co-Büchi game (psol.SolveBBuchiCoBuchi).
	VariantPsolBBuchiCoBuchi
	// VariantPsolBBuchiSafety expresses psolB's inner loop as a
	// Büchi∩safety game (psol.SolveBBuchiSafety).
	VariantPsolBBuchiSafety
)

func (v PartialVariant) String() string {
	switch v {
	case VariantPsol:
		return "psol"
	case VariantPsolB:
		return "psolB"
	case VariantPsolC:
		return "psolC"
	case VariantPsolQ:
		return "psolQ"
	case VariantPsolBBuchiCoBuchi:
		return "psolB_buchi_cobuchi"
	case VariantPsolBBuchiSafety:
		return "psolB_buchi_safety"
	default:
		return fmt.Sprintf("PartialVariant(%d)", int(v))
	}
}

func asPartialSolver(v PartialVariant) zielonka.PartialSolver {
	switch v {
	case VariantPsolB:
		return psol.SolveB
	case VariantPsolC:
		return psol.SolveC
	case VariantPsolQ:
		return psol.SolveQ
	case VariantPsolBBuchiCoBuchi:
		return psol.SolveBBuchiCoBuchi
	case VariantPsolBBuchiSafety:
		return psol.SolveBBuchiSafety
	default:
		return psol.Solve
	}
}

// GeneralizedPartialVariant selects which multi-dimension fatal-attractor
// partial solver backs SolveGeneralizedParityWithPartial.
type GeneralizedPartialVariant int

const (
	// VariantPsolBGeneralized is psolB's generalized counterpart
	// (psol.SolveBGeneralized).
	VariantPsolBGeneralized GeneralizedPartialVariant = iota
	// VariantPsolQGeneralized is psolQ's generalized counterpart
	// (psol.SolveQGeneralized).
	VariantPsolQGeneralized
	// VariantPsolCGeneralized is psolC's generalized counterpart
	// (psol.SolveCGeneralized).
	VariantPsolCGeneralized
)

func (v GeneralizedPartialVariant) String() string {
	switch v {
	case VariantPsolBGeneralized:
		return "psolB_generalized"
	case VariantPsolQGeneralized:
		return "psolQ_generalized"
	case VariantPsolCGeneralized:
		return "psolC_generalized"
	default:
		return fmt.Sprintf("GeneralizedPartialVariant(%d)", int(v))
	}
}

func asGeneralizedPartialSolver(v GeneralizedPartialVariant) zielonka.PartialSolver {
	switch v {
	case VariantPsolQGeneralized:
		return psol.SolveQGeneralized
	case VariantPsolCGeneralized:
		return psol.SolveCGeneralized
	default:
		return psol.SolveBGeneralized
	}
}

// SolveParity solves a single-dimension parity game with plain recursive
// Zielonka (spec.md §4.6), returning the vertex sets won by player 0 and
// player 1.
func SolveParity(g *arena.Arena) (w0, w1 []arena.Vertex) {
	return zielonka.Solve(g)
}

// SolveParityWithPartial solves a single-dimension parity game using
// Zielonka's recursion accelerated by the named partial solver at every
// level (spec.md §4.6's "zielonka_with_partial" composition).
func SolveParityWithPartial(g *arena.Arena, variant PartialVariant) (w0, w1 []arena.Vertex) {
	return zielonka.WithPartial(g, asPartialSolver(variant))
}

// SolveParityWithSinglePsolBIteration solves a single-dimension parity
// game, narrowing the top priority class with one psolB-style pass
// before falling back to full recursion (spec.md §4.6).
func SolveParityWithSinglePsolBIteration(g *arena.Arena) (w0, w1 []arena.Vertex) {
	return zielonka.WithSinglePsolBIteration(g)
}

// SolveGeneralizedParity solves a multi-dimension (k priority functions)
// generalized parity game with the recursive disjunctive solver (spec.md
// §4.7): player 0 wins a vertex iff it lies in the region from which it
// can force, for every priority function, that function's maximum
// infinitely-recurring value to be even.
func SolveGeneralizedParity(g *arena.Arena) (w0, w1 []arena.Vertex) {
	return zielonka.GeneralizedParitySolver(g)
}

// SolveGeneralizedParityWithPartial solves a multi-dimension generalized
// parity game using the named generalized partial solver to peel off
// whatever it can decide outright before falling back to the recursive
// disjunctive solver on the residual (spec.md §6's second public entry
// point, §8 invariant 5: this must agree with SolveGeneralizedParity on
// every arena for every variant).
func SolveGeneralizedParityWithPartial(g *arena.Arena, variant GeneralizedPartialVariant) (w0, w1 []arena.Vertex) {
	return zielonka.GeneralizedWithPartial(g, asGeneralizedPartialSolver(variant))
}

// SolveParityAsSafetyGame solves a single-dimension parity game via the
// antichain-based backward safety-game reduction (spec.md §4.4), rather
// than Zielonka's recursion. It is provided as an independent solving
// strategy so its result can be cross-checked against SolveParity on the
// same arena.
func SolveParityAsSafetyGame(g *arena.Arena) (w0, w1 []arena.Vertex) {
	return safety.Solve(g)
}
