// SPDX-License-Identifier: MIT
// Package: treedec/elimination
//
// assemble.go — turning linked buckets into decompositions.
//
// Tree rules:
//   - One root bucket ⇒ it becomes the decomposition root.
//   - Several root buckets (the graph is disconnected under this ordering)
//     ⇒ an extra root with an empty bag adopts them in elimination order.
//   - No buckets (empty graph) ⇒ a single root with an empty bag.
//   - Children of a bucket are attached in elimination order.
//
// Every node receives its bucket's bag and induced hyperedges.

package elimination

import (
	"fmt"

	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/hypergraph"
)

// AssembleGraph converts b into a graph decomposition. Node i+1 holds the
// bucket at elimination position i; edges follow the bucket links.
func AssembleGraph(b *Buckets) (*decomposition.Graph, error) {
	g := decomposition.NewGraph()
	ids := make([]decomposition.NodeID, b.Len())
	for i := range ids {
		ids[i] = g.AddNode()
		if err := fill(g, ids[i], b, i); err != nil {
			return nil, fmt.Errorf("AssembleGraph: %w", err)
		}
	}
	for i := range ids {
		if l, ok := b.Link(i); ok {
			if err := g.AddEdge(ids[i], ids[l]); err != nil {
				return nil, fmt.Errorf("AssembleGraph: %w", err)
			}
		}
	}

	return g, nil
}

// AssembleTree converts b into a rooted tree decomposition.
func AssembleTree(b *Buckets) (*decomposition.Tree, error) {
	t := decomposition.NewTree()
	root := t.InsertRoot()
	roots := b.Roots()
	children := b.Children()

	type item struct {
		bucket int
		parent decomposition.NodeID
	}
	var stack []item
	switch len(roots) {
	case 0:
		return t, nil
	case 1:
		if err := fill(t, root, b, roots[0]); err != nil {
			return nil, fmt.Errorf("AssembleTree: %w", err)
		}
		for i := len(children[roots[0]]) - 1; i >= 0; i-- {
			stack = append(stack, item{children[roots[0]][i], root})
		}
	default:
		for i := len(roots) - 1; i >= 0; i-- {
			stack = append(stack, item{roots[i], root})
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		id, err := t.AddChild(top.parent)
		if err != nil {
			return nil, fmt.Errorf("AssembleTree: %w", err)
		}
		if err = fill(t, id, b, top.bucket); err != nil {
			return nil, fmt.Errorf("AssembleTree: %w", err)
		}
		for i := len(children[top.bucket]) - 1; i >= 0; i-- {
			stack = append(stack, item{children[top.bucket][i], id})
		}
	}

	return t, nil
}

type bagSetter interface {
	SetBag(id decomposition.NodeID, bag []hypergraph.Vertex) error
	SetInducedHyperedges(id decomposition.NodeID, es []hypergraph.Hyperedge) error
}

func fill(d bagSetter, id decomposition.NodeID, b *Buckets, i int) error {
	if err := d.SetBag(id, b.bags[i]); err != nil {
		return err
	}

	return d.SetInducedHyperedges(id, b.induced[i])
}
