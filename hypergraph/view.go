// File: view.go
// Role: Cloning and non-mutating derived hypergraphs.
// Determinism:
//   - Preserves vertex and hyperedge IDs; ID counters carry over so later
//     AddVertex/AddEdge calls on the copy never collide with copied IDs.
// Concurrency:
//   - Read lock on the source; result is a fresh instance.

package hypergraph

// Clone returns a deep copy of h: configuration, vertices, hyperedges, counters.
//
// Complexity: O(V + Σ rank).
func (h *Hypergraph) Clone() *Hypergraph {
	return h.InducedSubhypergraph(nil)
}

// InducedSubhypergraph returns a new hypergraph holding the vertices v with
// keep[v] == true and every hyperedge whose endpoints are all kept.
// A nil keep map keeps everything. The input is not mutated.
//
// Complexity: O(V + Σ rank).
func (h *Hypergraph) InducedSubhypergraph(keep map[Vertex]bool) *Hypergraph {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := New()
	out.allowLoops = h.allowLoops
	out.allowMulti = h.allowMulti
	out.nextVertex = h.nextVertex
	out.nextEdgeID = h.nextEdgeID

	kept := func(v Vertex) bool { return keep == nil || keep[v] }
	for v := range h.vertices {
		if kept(v) {
			out.vertices[v] = struct{}{}
			out.incidence[v] = make(map[EdgeID]struct{})
		}
	}
	for id, e := range h.edges {
		all := true
		for _, v := range e.Elements {
			if !kept(v) {
				all = false
				break
			}
		}
		if all {
			out.storeEdgeLocked(id, e.Elements)
		}
	}

	return out
}
