// File: graph.go
// Role: Unrooted graph decompositions.
//
// Edges are undirected and simple; adjacency lists stay sorted so that
// Neighbors() is deterministic.

package decomposition

import (
	"fmt"
	"slices"
)

// Graph is a mutable graph decomposition.
type Graph struct {
	nodeStore
	edges int
}

// NewGraph returns an empty graph decomposition.
func NewGraph() *Graph {
	return &Graph{}
}

// AddNode creates a node with an empty bag.
func (g *Graph) AddNode() NodeID {
	return g.alloc(nil)
}

// RemoveNode deletes id and its incident edges.
func (g *Graph) RemoveNode(id NodeID) error {
	n, err := g.must("RemoveNode", id)
	if err != nil {
		return err
	}
	for _, nb := range n.adjacent {
		m := g.get(nb)
		m.adjacent = slices.DeleteFunc(m.adjacent, func(x NodeID) bool { return x == id })
		g.edges--
	}
	g.free(id)

	return nil
}

// AddEdge connects a and b. Adding an existing edge is a no-op.
//
// Errors:
//   - ErrNodeNotFound for unknown nodes.
//   - ErrInvalidOperation for a == b.
func (g *Graph) AddEdge(a, b NodeID) error {
	na, err := g.must("AddEdge", a)
	if err != nil {
		return err
	}
	nb, err := g.must("AddEdge", b)
	if err != nil {
		return err
	}
	if a == b {
		return fmt.Errorf("AddEdge(%d, %d): self loop: %w", a, b, ErrInvalidOperation)
	}
	pos, found := slices.BinarySearch(na.adjacent, b)
	if found {
		return nil
	}
	na.adjacent = slices.Insert(na.adjacent, pos, b)
	pos, _ = slices.BinarySearch(nb.adjacent, a)
	nb.adjacent = slices.Insert(nb.adjacent, pos, a)
	g.edges++

	return nil
}

// IsNeighbor reports whether a and b are adjacent.
func (g *Graph) IsNeighbor(a, b NodeID) bool {
	n := g.get(a)
	if n == nil {
		return false
	}
	_, found := slices.BinarySearch(n.adjacent, b)

	return found
}

// Neighbors returns the nodes adjacent to id, ascending.
func (g *Graph) Neighbors(id NodeID) []NodeID {
	n := g.get(id)
	if n == nil || len(n.adjacent) == 0 {
		return nil
	}

	return append([]NodeID(nil), n.adjacent...)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Clone returns a deep copy of g with identical node IDs.
func (g *Graph) Clone() *Graph {
	return &Graph{nodeStore: g.cloneStore(), edges: g.edges}
}
