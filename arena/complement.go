package arena

// Complement returns a new Arena identical to the receiver except that
// every priority component of every vertex is incremented by one. It is
// used by the generalized Zielonka recursion (package zielonka) to make
// the parity of interest uniformly odd; it never mutates the receiver.
func (a *Arena) Complement() *Arena {
	out := &Arena{
		vertices: append([]Vertex(nil), a.vertices...),
		data:     make(map[Vertex]VertexData, len(a.vertices)),
		succ:     make(map[Vertex][]Vertex, len(a.vertices)),
		pred:     make(map[Vertex][]Vertex, len(a.vertices)),
	}
	for _, v := range a.vertices {
		d := a.data[v]
		p := make([]int, len(d.Priorities))
		for i, x := range d.Priorities {
			p[i] = x + 1
		}
		out.data[v] = VertexData{Owner: d.Owner, Priorities: p}
		out.succ[v] = append([]Vertex(nil), a.succ[v]...)
		out.pred[v] = append([]Vertex(nil), a.pred[v]...)
	}
	return out
}
