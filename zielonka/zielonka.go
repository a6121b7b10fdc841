package zielonka

import (
	"github.com/katalvlaran/genparity/arena"
	"github.com/katalvlaran/genparity/attractor"
)

// Solve is the strong parity game solver (spec.md §4.6): recurse on the
// complement of the attractor, for the player favoured by the maximum
// priority, of every maximum-priority vertex; if the opponent's share of
// the recursive solution is empty, the whole subgame belongs to the
// favoured player, otherwise peel off the opponent's attractor to its
// share and recurse once more on what remains.
func Solve(g *arena.Arena) (w0, w1 []arena.Vertex) {
	if g.NumVertices() == 0 {
		return nil, nil
	}

	i := g.MaxPriority()
	j := arena.Parity(i)
	opponent := j.Opponent()
	u := g.VerticesWithPriority(i)

	a, discard := attractor.Attractor(g, u, j)
	gA := g.Subgame(discard)

	solJ, solOpp := splitByPlayer(Solve(gA))
	wJ, wJBar := pick(j, solJ, solOpp)

	if len(wJBar) == 0 {
		return assemble(j, append(a, wJ...), nil)
	}

	b, discard2 := attractor.Attractor(g, wJBar, opponent)
	gB := g.Subgame(discard2)

	solJ2, solOpp2 := splitByPlayer(Solve(gB))
	wJJ, wJJBar := pick(j, solJ2, solOpp2)

	return assemble(j, wJJ, append(wJJBar, b...))
}

// splitByPlayer returns Solve's raw (w0, w1) unchanged — a naming helper
// so call sites read in terms of "the player under consideration" rather
// than hard-coded index 0/1.
func splitByPlayer(w0, w1 []arena.Vertex) ([]arena.Vertex, []arena.Vertex) {
	return w0, w1
}

// pick reorders (w0, w1) into (wJ, wJBar) depending on which player j is.
func pick(j arena.Player, w0, w1 []arena.Vertex) (wJ, wJBar []arena.Vertex) {
	if j == arena.Player0 {
		return w0, w1
	}
	return w1, w0
}

// assemble reorders (wJ, wJBar) back into (w0, w1) depending on which
// player j is.
func assemble(j arena.Player, wJ, wJBar []arena.Vertex) (w0, w1 []arena.Vertex) {
	if j == arena.Player0 {
		return wJ, wJBar
	}
	return wJBar, wJ
}

// PartialSolver matches the signature every psol-family solver in
// package psol exposes: given a game and the winning-region accumulators
// so far, return the unsolved residual arena plus the extended
// accumulators.
type PartialSolver func(g *arena.Arena, w0, w1 []arena.Vertex) (*arena.Arena, []arena.Vertex, []arena.Vertex)

// WithPartial is zielonka_with_partial (spec.md §4.6): at the top of
// every recursive call, first run partial once to peel off whatever it
// can decide outright, then run the plain recursive step on whatever
// residual game partial leaves behind.
func WithPartial(g *arena.Arena, partial PartialSolver) (w0, w1 []arena.Vertex) {
	rest, p0, p1 := partial(g, nil, nil)
	w0 = append(w0, p0...)
	w1 = append(w1, p1...)

	if rest.NumVertices() == 0 {
		return w0, w1
	}

	i := rest.MaxPriority()
	j := arena.Parity(i)
	opponent := j.Opponent()
	u := rest.VerticesWithPriority(i)

	a, discard := attractor.Attractor(rest, u, j)
	gA := rest.Subgame(discard)

	solJ, solOpp := WithPartial(gA, partial)
	wJ, wJBar := pick(j, solJ, solOpp)

	if len(wJBar) == 0 {
		r0, r1 := assemble(j, append(a, wJ...), nil)
		return append(w0, r0...), append(w1, r1...)
	}

	b, discard2 := attractor.Attractor(rest, wJBar, opponent)
	gB := rest.Subgame(discard2)

	solJ2, solOpp2 := WithPartial(gB, partial)
	wJJ, wJJBar := pick(j, solJ2, solOpp2)

	r0, r1 := assemble(j, wJJ, append(wJJBar, b...))
	return append(w0, r0...), append(w1, r1...)
}

// WithSinglePsolBIteration is zielonka_with_single_psolB_iteration
// (spec.md §4.6, supplemented): instead of delegating to a full partial
// solver, it inlines one psolB-style fatal-attractor narrowing over the
// top priority class before falling back to the plain recursive step —
// cheaper than a full psolB sweep since it only ever looks at the
// already-known maximum priority's class.
func WithSinglePsolBIteration(g *arena.Arena) (w0, w1 []arena.Vertex) {
	if g.NumVertices() == 0 {
		return nil, nil
	}

	i := g.MaxPriority()
	j := arena.Parity(i)
	u := g.VerticesWithPriority(i)

	rest := g
	var partialW0, partialW1 []arena.Vertex
	target := u
	var cache []arena.Vertex
	narrowed := false

	for !vertexSliceEqual(cache, target) && len(target) > 0 {
		cache = target
		ma, _ := attractor.Monotone(rest, target, i)

		if isSubsetSlice(target, ma) {
			att, complement := attractor.Attractor(rest, ma, j)
			if j == arena.Player0 {
				partialW0 = append(partialW0, att...)
			} else {
				partialW1 = append(partialW1, att...)
			}
			rest = g.Subgame(complement)

			if rest.NumVertices() == 0 {
				return partialW0, partialW1
			}

			i = rest.MaxPriority()
			j = arena.Parity(i)
			u = rest.VerticesWithPriority(i)
			narrowed = true
			break
		}
		target = intersectSlice(target, ma)
	}

	opponent := j.Opponent()
	a, discard := attractor.Attractor(rest, u, j)
	gA := rest.Subgame(discard)

	solJ, solOpp := WithSinglePsolBIteration(gA)
	wJ, wJBar := pick(j, solJ, solOpp)

	var resW0, resW1 []arena.Vertex
	if len(wJBar) == 0 {
		resW0, resW1 = assemble(j, append(a, wJ...), nil)
	} else {
		b, discard2 := attractor.Attractor(rest, wJBar, opponent)
		gB := rest.Subgame(discard2)

		solJ2, solOpp2 := WithSinglePsolBIteration(gB)
		wJJ, wJJBar := pick(j, solJ2, solOpp2)
		resW0, resW1 = assemble(j, wJJ, append(wJJBar, b...))
	}

	if narrowed {
		resW0 = append(resW0, partialW0...)
		resW1 = append(resW1, partialW1...)
	}
	return resW0, resW1
}

func vertexSliceEqual(a, b []arena.Vertex) bool {
	if len(a) != len(b) {
		return false
	}
	in := make(map[arena.Vertex]bool, len(a))
	for _, v := range a {
		in[v] = true
	}
	for _, v := range b {
		if !in[v] {
			return false
		}
	}
	return true
}

func isSubsetSlice(sub, super []arena.Vertex) bool {
	in := make(map[arena.Vertex]bool, len(super))
	for _, v := range super {
		in[v] = true
	}
	for _, v := range sub {
		if !in[v] {
			return false
		}
	}
	return true
}

func intersectSlice(a, b []arena.Vertex) []arena.Vertex {
	in := make(map[arena.Vertex]bool, len(b))
	for _, v := range b {
		in[v] = true
	}
	var out []arena.Vertex
	for _, v := range a {
		if in[v] {
			out = append(out, v)
		}
	}
	return out
}
