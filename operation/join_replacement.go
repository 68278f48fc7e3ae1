// SPDX-License-Identifier: MIT
// Package: treedec/operation
//
// join_replacement.go — turns a tree decomposition into a path-shaped tree.
//
// Join nodes are handled in post-order, so every child subtree of a join node
// N is already a path P_1 … P_k (in child order) when N is reached. The
// paths are chained below N as N → P_1 → P_2 → … → P_k, and every node of
// P_j receives bag(N) ∩ vars(P_{j+1} ∪ … ∪ P_k) so that each vertex shared
// between N and a later path stays connected.

package operation

import (
	"fmt"

	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/hypergraph"
	"github.com/katalvlaran/treedec/sets"
)

// JoinNodeReplacement removes every join node of a tree decomposition.
type JoinNodeReplacement struct {
	graph hypergraph.View
}

// NewJoinNodeReplacement returns the operation. g is used to recompute the
// induced hyperedges of grown bags; it may be nil when those are not needed.
func NewJoinNodeReplacement(g hypergraph.View) *JoinNodeReplacement {
	return &JoinNodeReplacement{graph: g}
}

// Name implements Operation.
func (op *JoinNodeReplacement) Name() string { return "JoinNodeReplacement" }

// Capabilities implements Operation.
func (op *JoinNodeReplacement) Capabilities() Capability { return TreeManipulation }

// Clone implements Operation.
func (op *JoinNodeReplacement) Clone() Operation {
	return &JoinNodeReplacement{graph: op.graph}
}

// Properties implements Structural.
func (op *JoinNodeReplacement) Properties() Properties {
	return Properties{ModifiesBagContents: true}
}

// ApplyTree implements TreeOperation. The focus is ignored.
func (op *JoinNodeReplacement) ApplyTree(t *decomposition.Tree, scope Scope) error {
	for _, n := range t.PostOrderNodes() {
		if !t.IsJoin(n) {
			continue
		}
		if err := op.chain(t, n, scope); err != nil {
			return fmt.Errorf("%s.ApplyTree: join %d: %w", op.Name(), n, err)
		}
	}

	return nil
}

func (op *JoinNodeReplacement) chain(t *decomposition.Tree, n decomposition.NodeID, scope Scope) error {
	children := t.Children(n)
	k := len(children)
	paths := make([][]decomposition.NodeID, k)
	for i, c := range children {
		p, err := pathBelow(t, c)
		if err != nil {
			return err
		}
		paths[i] = p
	}
	// suffix[i] = vars(P_i ∪ … ∪ P_k)
	suffix := make([][]hypergraph.Vertex, k+1)
	for i := k - 1; i >= 0; i-- {
		suffix[i] = suffix[i+1]
		for _, m := range paths[i] {
			suffix[i] = sets.Union(suffix[i], t.Bag(m))
		}
	}

	bag := t.Bag(n)
	for i := 0; i < k-1; i++ {
		add := sets.Intersection(bag, suffix[i+1])
		if len(add) == 0 {
			continue
		}
		for _, m := range paths[i] {
			old := t.Bag(m)
			grown := sets.Union(old, add)
			if len(grown) == len(old) {
				continue
			}
			if err := t.SetBag(m, grown); err != nil {
				return err
			}
			if op.graph != nil {
				if err := t.SetInducedHyperedges(m, inducedFrom(op.graph, grown)); err != nil {
					return err
				}
			}
			if err := scope.label(t, m); err != nil {
				return err
			}
		}
	}
	for i := 1; i < k; i++ {
		last := paths[i-1][len(paths[i-1])-1]
		if err := t.Reparent(children[i], last); err != nil {
			return err
		}
	}

	return nil
}

// pathBelow returns the nodes of the subtree rooted at top, which must not
// branch, from top down.
func pathBelow(t *decomposition.Tree, top decomposition.NodeID) ([]decomposition.NodeID, error) {
	out := []decomposition.NodeID{top}
	for cur := top; ; {
		switch t.ChildCount(cur) {
		case 0:
			return out, nil
		case 1:
			cur = t.Children(cur)[0]
			out = append(out, cur)
		default:
			return nil, fmt.Errorf("node %d still branches: %w", cur, decomposition.ErrInvalidOperation)
		}
	}
}
