// File: methods_edges.go
// Role: Hyperedge lifecycle & queries.
//
// Determinism:
//   - Hyperedges() / HyperedgesOf() return edges ordered by ID.
//   - Returned Hyperedge values are copies; mutating them never touches the graph.
//
// Concurrency:
//   - All catalogs protected by mu.

package hypergraph

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/treedec/sets"
)

// AddEdge inserts a hyperedge over the given endpoints and returns its ID.
//
// Implementation:
//   - Stage 1: Validate endpoints (non-empty, existing, loop policy).
//   - Stage 2: Reject parallel edges when multi-edges are disabled.
//   - Stage 3: Store a private copy and update incidence.
//
// Errors:
//   - ErrEmptyEdge, ErrInvalidVertex, ErrVertexNotFound,
//     ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(rank) plus O(E·rank) when multi-edges are disabled.
func (h *Hypergraph) AddEdge(elements ...Vertex) (EdgeID, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.checkEdgeLocked(elements); err != nil {
		return 0, fmt.Errorf("AddEdge(%v): %w", elements, err)
	}
	h.nextEdgeID++
	h.storeEdgeLocked(h.nextEdgeID, elements)

	return h.nextEdgeID, nil
}

// AddEdgeWithID inserts a hyperedge under a caller-chosen ID. Later AddEdge
// calls continue after the largest ID seen so far.
//
// Errors:
//   - everything AddEdge returns, plus ErrDuplicateEdgeID.
func (h *Hypergraph) AddEdgeWithID(id EdgeID, elements ...Vertex) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if id == 0 {
		return fmt.Errorf("AddEdgeWithID(0): %w", ErrDuplicateEdgeID)
	}
	if _, taken := h.edges[id]; taken {
		return fmt.Errorf("AddEdgeWithID(%d): %w", id, ErrDuplicateEdgeID)
	}
	if err := h.checkEdgeLocked(elements); err != nil {
		return fmt.Errorf("AddEdgeWithID(%d, %v): %w", id, elements, err)
	}
	h.storeEdgeLocked(id, elements)
	if id > h.nextEdgeID {
		h.nextEdgeID = id
	}

	return nil
}

func (h *Hypergraph) checkEdgeLocked(elements []Vertex) error {
	if len(elements) == 0 {
		return ErrEmptyEdge
	}
	for _, v := range elements {
		if v == NoVertex {
			return ErrInvalidVertex
		}
		if _, ok := h.vertices[v]; !ok {
			return ErrVertexNotFound
		}
	}
	set := sets.Normalize(elements)
	if !h.allowLoops && len(set) != len(elements) {
		return ErrLoopNotAllowed
	}
	if !h.allowMulti {
		// Every existing edge parallel to this one is incident to set[0].
		for id := range h.incidence[set[0]] {
			if slices.Equal(h.edges[id].Sorted(), set) {
				return ErrMultiEdgeNotAllowed
			}
		}
	}

	return nil
}

func (h *Hypergraph) storeEdgeLocked(id EdgeID, elements []Vertex) {
	h.edges[id] = &Hyperedge{ID: id, Elements: append([]Vertex(nil), elements...)}
	for _, v := range elements {
		h.incidence[v][id] = struct{}{}
	}
}

// RemoveEdge deletes the hyperedge with the given ID.
//
// Errors:
//   - ErrEdgeNotFound.
func (h *Hypergraph) RemoveEdge(id EdgeID) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	e, ok := h.edges[id]
	if !ok {
		return fmt.Errorf("RemoveEdge(%d): %w", id, ErrEdgeNotFound)
	}
	for _, v := range e.Elements {
		delete(h.incidence[v], id)
	}
	delete(h.edges, id)

	return nil
}

// Edge returns a copy of the hyperedge with the given ID.
func (h *Hypergraph) Edge(id EdgeID) (Hyperedge, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	e, ok := h.edges[id]
	if !ok {
		return Hyperedge{}, fmt.Errorf("Edge(%d): %w", id, ErrEdgeNotFound)
	}

	return e.Clone(), nil
}

// EdgeCount returns the number of hyperedges.
func (h *Hypergraph) EdgeCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.edges)
}

// Hyperedges returns copies of all hyperedges ordered by ID.
//
// Complexity: O(E log E + Σ rank).
func (h *Hypergraph) Hyperedges() []Hyperedge {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Hyperedge, 0, len(h.edges))
	for _, e := range h.edges {
		out = append(out, e.Clone())
	}
	sortByID(out)

	return out
}

// HyperedgesOf returns copies of the hyperedges containing v, ordered by ID.
// An unknown vertex yields nil.
func (h *Hypergraph) HyperedgesOf(v Vertex) []Hyperedge {
	h.mu.RLock()
	defer h.mu.RUnlock()

	inc := h.incidence[v]
	if len(inc) == 0 {
		return nil
	}
	out := make([]Hyperedge, 0, len(inc))
	for id := range inc {
		out = append(out, h.edges[id].Clone())
	}
	sortByID(out)

	return out
}

func sortByID(es []Hyperedge) {
	slices.SortFunc(es, func(a, b Hyperedge) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}

		return 0
	})
}
