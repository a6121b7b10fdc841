package arena

// RemoveEdge deletes the edge from->to in place, from both the successor
// and predecessor adjacency. It is the one documented mutator on Arena
// (see doc.go): psol's edge-removal variant uses it to prune edges that
// provably cannot be part of any still-undecided play, and the caller
// that invokes it takes ownership of the Arena for the remainder of its
// lifetime — no other live reference may keep relying on immutability.
//
// RemoveEdge does not re-validate the dead-end invariant; a caller that
// removes a vertex's last outgoing edge is responsible for handling that
// vertex before any attractor computation runs over this Arena again.
func (a *Arena) RemoveEdge(from, to Vertex) {
	a.succ[from] = removeVertex(a.succ[from], to)
	a.pred[to] = removeVertex(a.pred[to], from)
}

func removeVertex(vs []Vertex, x Vertex) []Vertex {
	for i, v := range vs {
		if v == x {
			return append(vs[:i], vs[i+1:]...)
		}
	}
	return vs
}
