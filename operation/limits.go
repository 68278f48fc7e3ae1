// File: limits.go
// Role: Bounding the number of vertices forgotten or introduced per node.
//
// Both operations replace one oversized step between a node N and its child
// C by a chain of intermediate nodes:
//   - forgotten F = bag(C) \ bag(N), ascending. Intermediate k holds
//     bag(C) minus the first k·limit vertices of F.
//   - introduced I = bag(N) \ bag(C), ascending. Intermediate k holds
//     bag(N) minus the vertices of I from position k·limit on.
// Every intermediate is a subset of the larger side, so its induced
// hyperedges are that side's list filtered by containment.

package operation

import (
	"fmt"

	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/hypergraph"
	"github.com/katalvlaran/treedec/sets"
)

// LimitMaximumForgottenVertexCount caps |bag(child) \ bag(node)| at Limit.
type LimitMaximumForgottenVertexCount struct {
	limit int
}

// NewLimitMaximumForgottenVertexCount returns the operation.
// Panics if limit < 1 (programmer error).
func NewLimitMaximumForgottenVertexCount(limit int) *LimitMaximumForgottenVertexCount {
	if limit < 1 {
		panic("operation: forgotten vertex limit must be >= 1")
	}

	return &LimitMaximumForgottenVertexCount{limit: limit}
}

// Limit returns the configured bound.
func (op *LimitMaximumForgottenVertexCount) Limit() int { return op.limit }

// Name implements Operation.
func (op *LimitMaximumForgottenVertexCount) Name() string {
	return "LimitMaximumForgottenVertexCount"
}

// Capabilities implements Operation.
func (op *LimitMaximumForgottenVertexCount) Capabilities() Capability {
	return TreeManipulation | PathManipulation
}

// Clone implements Operation.
func (op *LimitMaximumForgottenVertexCount) Clone() Operation {
	c := *op
	return &c
}

// Properties implements Structural.
func (op *LimitMaximumForgottenVertexCount) Properties() Properties {
	return Properties{IsLocal: true, CreatesNodes: true}
}

// ApplyTree implements TreeOperation.
func (op *LimitMaximumForgottenVertexCount) ApplyTree(t *decomposition.Tree, scope Scope) error {
	if err := op.apply(t, scope); err != nil {
		return fmt.Errorf("%s.ApplyTree: %w", op.Name(), err)
	}

	return nil
}

// ApplyPath implements PathOperation.
func (op *LimitMaximumForgottenVertexCount) ApplyPath(p *decomposition.Tree, scope Scope) error {
	if err := op.apply(p, scope); err != nil {
		return fmt.Errorf("%s.ApplyPath: %w", op.Name(), err)
	}

	return nil
}

func (op *LimitMaximumForgottenVertexCount) apply(t *decomposition.Tree, scope Scope) error {
	for _, n := range scope.candidates(t) {
		for _, c := range t.Children(n) {
			forgotten := t.ForgottenVertices(n, c)
			if len(forgotten) <= op.limit {
				continue
			}
			child := t.Bag(c)
			below := c
			for k := op.limit; k < len(forgotten); k += op.limit {
				id, err := scope.insertAbove(t, below, sets.Difference(child, forgotten[:k]), c)
				if err != nil {
					return err
				}
				below = id
			}
		}
	}

	return nil
}

// LimitMaximumIntroducedVertexCount caps |bag(node) \ bag(child)| at Limit,
// and optionally |bag(leaf)| as well.
type LimitMaximumIntroducedVertexCount struct {
	limit  int
	leaves bool
}

// NewLimitMaximumIntroducedVertexCount returns the operation. With
// treatLeavesAsIntroduce a leaf holding more than limit vertices grows a chain
// of children ending in a leaf of at most limit vertices.
// Panics if limit < 1 (programmer error).
func NewLimitMaximumIntroducedVertexCount(limit int, treatLeavesAsIntroduce bool) *LimitMaximumIntroducedVertexCount {
	if limit < 1 {
		panic("operation: introduced vertex limit must be >= 1")
	}

	return &LimitMaximumIntroducedVertexCount{limit: limit, leaves: treatLeavesAsIntroduce}
}

// Limit returns the configured bound.
func (op *LimitMaximumIntroducedVertexCount) Limit() int { return op.limit }

// LeafNodesTreatedAsIntroduceNodes reports whether leaves are bounded too.
func (op *LimitMaximumIntroducedVertexCount) LeafNodesTreatedAsIntroduceNodes() bool {
	return op.leaves
}

// Name implements Operation.
func (op *LimitMaximumIntroducedVertexCount) Name() string {
	return "LimitMaximumIntroducedVertexCount"
}

// Capabilities implements Operation.
func (op *LimitMaximumIntroducedVertexCount) Capabilities() Capability {
	return TreeManipulation | PathManipulation
}

// Clone implements Operation.
func (op *LimitMaximumIntroducedVertexCount) Clone() Operation {
	c := *op
	return &c
}

// Properties implements Structural.
func (op *LimitMaximumIntroducedVertexCount) Properties() Properties {
	return Properties{IsLocal: true, CreatesNodes: true}
}

// ApplyTree implements TreeOperation.
func (op *LimitMaximumIntroducedVertexCount) ApplyTree(t *decomposition.Tree, scope Scope) error {
	if err := op.apply(t, scope); err != nil {
		return fmt.Errorf("%s.ApplyTree: %w", op.Name(), err)
	}

	return nil
}

// ApplyPath implements PathOperation.
func (op *LimitMaximumIntroducedVertexCount) ApplyPath(p *decomposition.Tree, scope Scope) error {
	if err := op.apply(p, scope); err != nil {
		return fmt.Errorf("%s.ApplyPath: %w", op.Name(), err)
	}

	return nil
}

func (op *LimitMaximumIntroducedVertexCount) apply(t *decomposition.Tree, scope Scope) error {
	for _, n := range scope.candidates(t) {
		if op.leaves && t.IsLeaf(n) {
			if err := op.splitLeaf(t, n, scope); err != nil {
				return err
			}
			continue
		}
		for _, c := range t.Children(n) {
			introduced := t.IntroducedVertices(n, c)
			if len(introduced) <= op.limit {
				continue
			}
			bag := t.Bag(n)
			below := c
			for k := op.limit; k < len(introduced); k += op.limit {
				id, err := scope.insertAbove(t, below, sets.Difference(bag, introduced[k:]), n)
				if err != nil {
					return err
				}
				below = id
			}
		}
	}

	return nil
}

// splitLeaf hangs bag(leaf) minus growing suffixes below leaf until the new
// leaf holds at most limit vertices.
func (op *LimitMaximumIntroducedVertexCount) splitLeaf(t *decomposition.Tree, leaf decomposition.NodeID, scope Scope) error {
	bag := t.Bag(leaf)
	above := leaf
	for keep := len(bag) - op.limit; keep > 0; keep -= op.limit {
		id, err := scope.appendChild(t, above, append([]hypergraph.Vertex(nil), bag[:keep]...), leaf)
		if err != nil {
			return err
		}
		above = id
	}

	return nil
}
