package arena

// Subgame returns a new Arena whose vertex set is keep and whose edges are
// this Arena restricted to keep x keep: any edge with an endpoint outside
// keep is dropped. This never mutates the receiver. The caller is
// responsible for keep inducing no dead ends (see spec.md invariant 9);
// callers within this module only ever call Subgame with attractor
// complements, which satisfy that property by construction.
func (a *Arena) Subgame(keep []Vertex) *Arena {
	in := make(map[Vertex]bool, len(keep))
	for _, v := range keep {
		in[v] = true
	}

	out := &Arena{
		vertices: append([]Vertex(nil), keep...),
		data:     make(map[Vertex]VertexData, len(keep)),
		succ:     make(map[Vertex][]Vertex, len(keep)),
		pred:     make(map[Vertex][]Vertex, len(keep)),
	}

	for _, v := range out.vertices {
		out.data[v] = a.data[v]

		var succ []Vertex
		for _, s := range a.succ[v] {
			if in[s] {
				succ = append(succ, s)
			}
		}
		out.succ[v] = succ

		var pred []Vertex
		for _, p := range a.pred[v] {
			if in[p] {
				pred = append(pred, p)
			}
		}
		out.pred[v] = pred
	}

	return out
}
