// SPDX-License-Identifier: MIT
// Package: treedec/elimination
//
// ordering.go — elimination orderings and their validation.
//
// An Ordering is a permutation of the input vertices; position 0 is
// eliminated first. Orderings come from an OrderingAlgorithm so callers can
// plug in heuristics without touching the bucket builder.

package elimination

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/treedec/hypergraph"
)

// Sentinel errors for orderings.
var (
	// ErrInvalidOrdering is the umbrella error for every malformed ordering.
	ErrInvalidOrdering = errors.New("elimination: invalid ordering")

	// ErrMissingVertex indicates an input vertex absent from the ordering.
	ErrMissingVertex = errors.New("elimination: vertex missing from ordering")

	// ErrDuplicateVertex indicates a vertex listed twice.
	ErrDuplicateVertex = errors.New("elimination: vertex repeated in ordering")

	// ErrUnknownVertex indicates an ordering entry that is not an input vertex.
	ErrUnknownVertex = errors.New("elimination: ordering names unknown vertex")
)

// Ordering lists vertices in elimination order.
type Ordering []hypergraph.Vertex

// Positions maps each vertex to its index in o.
func (o Ordering) Positions() map[hypergraph.Vertex]int {
	pos := make(map[hypergraph.Vertex]int, len(o))
	for i, v := range o {
		pos[v] = i
	}

	return pos
}

// Validate checks that o is a permutation of g's vertices.
//
// Errors (all wrap ErrInvalidOrdering):
//   - ErrUnknownVertex, ErrDuplicateVertex, ErrMissingVertex.
func (o Ordering) Validate(g hypergraph.View) error {
	seen := make(map[hypergraph.Vertex]struct{}, len(o))
	for i, v := range o {
		if !g.IsVertex(v) {
			return fmt.Errorf("%w: position %d: vertex %d: %w", ErrInvalidOrdering, i, v, ErrUnknownVertex)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: position %d: vertex %d: %w", ErrInvalidOrdering, i, v, ErrDuplicateVertex)
		}
		seen[v] = struct{}{}
	}
	if len(seen) != g.VertexCount() {
		for _, v := range g.Vertices() {
			if _, ok := seen[v]; !ok {
				return fmt.Errorf("%w: vertex %d: %w", ErrInvalidOrdering, v, ErrMissingVertex)
			}
		}
	}

	return nil
}

// OrderingAlgorithm produces an elimination ordering for a hypergraph.
type OrderingAlgorithm interface {
	// ComputeOrdering returns a permutation of g.Vertices().
	ComputeOrdering(g hypergraph.View) (Ordering, error)

	// Name identifies the algorithm in logs and metrics.
	Name() string
}

// NaturalOrdering eliminates vertices in ascending ID order.
type NaturalOrdering struct{}

// ComputeOrdering implements OrderingAlgorithm.
func (NaturalOrdering) ComputeOrdering(g hypergraph.View) (Ordering, error) {
	return Ordering(g.Vertices()), nil
}

// Name implements OrderingAlgorithm.
func (NaturalOrdering) Name() string { return "natural" }

// FixedOrdering replays a caller-supplied sequence, validated against the graph.
type FixedOrdering struct {
	Sequence Ordering
}

// ComputeOrdering implements OrderingAlgorithm.
func (f FixedOrdering) ComputeOrdering(g hypergraph.View) (Ordering, error) {
	out := append(Ordering(nil), f.Sequence...)
	if err := out.Validate(g); err != nil {
		return nil, err
	}

	return out, nil
}

// Name implements OrderingAlgorithm.
func (FixedOrdering) Name() string { return "fixed" }
