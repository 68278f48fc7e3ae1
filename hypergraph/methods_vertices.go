// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs ascending.
//   - AddVertex hands out IDs 1, 2, 3, … and never reuses a removed ID.
//
// Concurrency:
//   - All catalogs protected by mu.

package hypergraph

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/treedec/sets"
)

// AddVertex creates a new vertex and returns its ID.
//
// Complexity: O(1) amortized.
func (h *Hypergraph) AddVertex() Vertex {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.addVertexLocked()
}

// AddVertices creates n vertices and returns them in ascending order.
// n <= 0 yields nil.
func (h *Hypergraph) AddVertices(n int) []Vertex {
	if n <= 0 {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Vertex, n)
	for i := range out {
		out[i] = h.addVertexLocked()
	}

	return out
}

func (h *Hypergraph) addVertexLocked() Vertex {
	h.nextVertex++
	v := h.nextVertex
	h.vertices[v] = struct{}{}
	h.incidence[v] = make(map[EdgeID]struct{})

	return v
}

// IsVertex reports whether v exists (NoVertex ⇒ false).
func (h *Hypergraph) IsVertex(v Vertex) bool {
	if v == NoVertex {
		return false
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.vertices[v]

	return ok
}

// VertexCount returns the number of vertices.
func (h *Hypergraph) VertexCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.vertices)
}

// Vertices returns all vertex IDs in ascending order.
//
// Complexity: O(V log V).
func (h *Hypergraph) Vertices() []Vertex {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Vertex, 0, len(h.vertices))
	for v := range h.vertices {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}

// RemoveVertex deletes v, strips it from every incident hyperedge and drops
// hyperedges left without endpoints.
//
// Errors:
//   - ErrInvalidVertex, ErrVertexNotFound.
//
// Complexity: O(deg(v) · rank).
func (h *Hypergraph) RemoveVertex(v Vertex) error {
	if v == NoVertex {
		return ErrInvalidVertex
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.vertices[v]; !ok {
		return fmt.Errorf("RemoveVertex(%d): %w", v, ErrVertexNotFound)
	}
	for id := range h.incidence[v] {
		e := h.edges[id]
		kept := e.Elements[:0]
		for _, x := range e.Elements {
			if x != v {
				kept = append(kept, x)
			}
		}
		e.Elements = kept
		if len(kept) == 0 {
			delete(h.edges, id)
		}
	}
	delete(h.incidence, v)
	delete(h.vertices, v)

	return nil
}

// Neighbors returns every vertex sharing a hyperedge with v, ascending,
// excluding v itself.
//
// Errors:
//   - ErrVertexNotFound.
func (h *Hypergraph) Neighbors(v Vertex) ([]Vertex, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	inc, ok := h.incidence[v]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexNotFound)
	}
	var out []Vertex
	for id := range inc {
		out = sets.Union(out, h.edges[id].Sorted())
	}

	return sets.Remove(out, v), nil
}

// Degree returns the number of hyperedges containing v.
func (h *Hypergraph) Degree(v Vertex) (int, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	inc, ok := h.incidence[v]
	if !ok {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrVertexNotFound)
	}

	return len(inc), nil
}
