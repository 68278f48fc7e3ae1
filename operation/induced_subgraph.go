// SPDX-License-Identifier: MIT
// Package: treedec/operation
//
// induced_subgraph.go — per-node "Induced Subgraph" labels.
//
// Every hyperedge moves through three states during one post-order sweep:
//
//	open      not yet contained in any visited bag
//	carried   contained in a visited bag, no endpoint forgotten yet
//	sealed    an endpoint was forgotten on the way up; never labeled again
//
// A non-root node that is a leaf, or introduces vertices relative to its last
// child, labels every open hyperedge its bag contains; those become carried.
// An open hyperedge found in a child's label is labeled again unless one of
// its endpoints is forgotten towards that child, in which case it is sealed.
// The root labels every hyperedge that is not sealed, then seals them all.
//
// Each hyperedge of a valid decomposition is therefore labeled by exactly one
// non-root node (its origin: the first node in post-order whose bag contains
// it), or by the root alone when no other bag contains it. The root also
// repeats every carried hyperedge that was never sealed.

package operation

import (
	"fmt"

	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/hypergraph"
	"github.com/katalvlaran/treedec/sets"
)

type edgeState uint8

const (
	edgeOpen edgeState = iota + 1
	edgeCarried
	edgeSealed
)

// InducedSubgraphLabeling attaches decomposition.InducedSubgraphLabel
// (a decomposition.HyperedgeSet) to every node of a tree or path.
type InducedSubgraphLabeling struct {
	graph hypergraph.View
}

// NewInducedSubgraphLabeling returns the operation for hyperedges of g.
func NewInducedSubgraphLabeling(g hypergraph.View) *InducedSubgraphLabeling {
	return &InducedSubgraphLabeling{graph: g}
}

// Name implements Operation.
func (op *InducedSubgraphLabeling) Name() string { return "InducedSubgraphLabeling" }

// Capabilities implements Operation.
func (op *InducedSubgraphLabeling) Capabilities() Capability {
	return TreeManipulation | PathManipulation
}

// Clone implements Operation. The graph is shared, not copied.
func (op *InducedSubgraphLabeling) Clone() Operation {
	return &InducedSubgraphLabeling{graph: op.graph}
}

// Properties implements Structural.
func (op *InducedSubgraphLabeling) Properties() Properties {
	return Properties{CreatesLocationDependentLabels: true}
}

// ApplyTree implements TreeOperation. The scope's focus is ignored: labels
// depend on the whole subtree below each node.
func (op *InducedSubgraphLabeling) ApplyTree(t *decomposition.Tree, _ Scope) error {
	if err := op.apply(t); err != nil {
		return fmt.Errorf("%s.ApplyTree: %w", op.Name(), err)
	}

	return nil
}

// ApplyPath implements PathOperation.
func (op *InducedSubgraphLabeling) ApplyPath(p *decomposition.Tree, _ Scope) error {
	if err := op.apply(p); err != nil {
		return fmt.Errorf("%s.ApplyPath: %w", op.Name(), err)
	}

	return nil
}

func (op *InducedSubgraphLabeling) apply(t *decomposition.Tree) error {
	if op.graph == nil {
		return ErrNilGraph
	}
	edges := op.graph.Hyperedges()
	sorted := make([][]hypergraph.Vertex, len(edges))
	index := make(map[hypergraph.EdgeID]int, len(edges))
	for i, e := range edges {
		sorted[i] = e.Sorted()
		index[e.ID] = i
	}
	state := make([]edgeState, len(edges))
	childState := make([]edgeState, len(edges))
	for i := range state {
		state[i] = edgeOpen
	}

	return t.PostOrder(func(n, _ decomposition.NodeID, _ int) error {
		var label decomposition.HyperedgeSet
		if t.IsRoot(n) {
			for i, e := range edges {
				if state[i] < edgeSealed {
					label = append(label, e.Clone())
				}
				state[i] = edgeSealed
			}

			return t.SetLabel(decomposition.InducedSubgraphLabel, n, label)
		}

		for i := range childState {
			childState[i] = edgeOpen
		}
		introduces := true
		for _, c := range t.Children(n) {
			forgotten := t.ForgottenVertices(n, c)
			carried, _ := decomposition.LabelOf[decomposition.HyperedgeSet](t, decomposition.InducedSubgraphLabel, c)
			for _, e := range carried {
				i, ok := index[e.ID]
				if !ok || childState[i] != edgeOpen {
					continue
				}
				if len(forgotten) > 0 && sets.Intersects(sorted[i], forgotten) {
					state[i] = edgeSealed
					childState[i] = edgeSealed
				} else {
					childState[i] = edgeCarried
				}
			}
			introduces = t.IntroducedVertexCount(n, c) > 0
		}

		bag := t.Bag(n)
		for i, e := range edges {
			if state[i] != edgeOpen {
				continue
			}
			switch {
			case childState[i] == edgeCarried:
				label = append(label, e.Clone())
			case introduces && sets.Includes(bag, sorted[i]):
				label = append(label, e.Clone())
				state[i] = edgeCarried
			}
		}

		return t.SetLabel(decomposition.InducedSubgraphLabel, n, label)
	})
}
