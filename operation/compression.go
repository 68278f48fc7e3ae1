// File: compression.go
// Role: Removes bags contained in a neighboring bag.
//
// Removing a node n whose bag is a subset of a neighbor m's bag is an edge
// contraction of (n, m): n's other neighbors attach to m. Every vertex of n
// is in m, so connectivity of each vertex's node set survives. Repeats until
// no such pair remains; the result is subset-maximal.

package operation

import (
	"fmt"

	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/sets"
)

// Compression makes every bag subset-maximal with respect to its neighbors.
type Compression struct{}

// NewCompression returns the operation.
func NewCompression() *Compression { return &Compression{} }

// Name implements Operation.
func (op *Compression) Name() string { return "Compression" }

// Capabilities implements Operation.
func (op *Compression) Capabilities() Capability {
	return GraphManipulation | TreeManipulation | PathManipulation
}

// Clone implements Operation.
func (op *Compression) Clone() Operation { return &Compression{} }

// Properties implements Structural.
func (op *Compression) Properties() Properties {
	return Properties{RemovesNodes: true, CreatesSubsetMaximalBags: true}
}

// ApplyTree implements TreeOperation. The focus is ignored.
func (op *Compression) ApplyTree(t *decomposition.Tree, scope Scope) error {
	if err := op.applyRooted(t, scope); err != nil {
		return fmt.Errorf("%s.ApplyTree: %w", op.Name(), err)
	}

	return nil
}

// ApplyPath implements PathOperation.
func (op *Compression) ApplyPath(p *decomposition.Tree, scope Scope) error {
	if err := op.applyRooted(p, scope); err != nil {
		return fmt.Errorf("%s.ApplyPath: %w", op.Name(), err)
	}

	return nil
}

// ApplyGraph implements GraphOperation.
func (op *Compression) ApplyGraph(g *decomposition.Graph, scope Scope) error {
	for changed := true; changed; {
		changed = false
		for _, n := range g.Nodes() {
			if !g.IsNode(n) {
				continue
			}
			bag := g.Bag(n)
			into := decomposition.NoNode
			for _, m := range g.Neighbors(n) {
				if sets.Includes(g.Bag(m), bag) {
					into = m
					break
				}
			}
			if into == decomposition.NoNode {
				continue
			}
			for _, m := range g.Neighbors(n) {
				if m == into {
					continue
				}
				if err := g.AddEdge(into, m); err != nil {
					return fmt.Errorf("%s.ApplyGraph: %w", op.Name(), err)
				}
			}
			if err := g.RemoveNode(n); err != nil {
				return fmt.Errorf("%s.ApplyGraph: %w", op.Name(), err)
			}
			scope.Log.remove(n)
			changed = true
		}
	}

	return nil
}

func (op *Compression) applyRooted(t *decomposition.Tree, scope Scope) error {
	for changed := true; changed; {
		changed = false
		for _, n := range t.PostOrderNodes() {
			if !t.IsNode(n) {
				continue
			}
			bag := t.Bag(n)
			if p := t.Parent(n); p == decomposition.NoNode || !sets.Includes(t.Bag(p), bag) {
				into := decomposition.NoNode
				children := t.Children(n)
				for _, c := range children {
					if sets.Includes(t.Bag(c), bag) {
						into = c
						break
					}
				}
				if into == decomposition.NoNode {
					continue
				}
				for _, c := range children {
					if c == into {
						continue
					}
					if err := t.Reparent(c, into); err != nil {
						return err
					}
				}
			}
			if err := t.RemoveVertex(n); err != nil {
				return err
			}
			scope.Log.remove(n)
			changed = true
		}
	}

	return nil
}
