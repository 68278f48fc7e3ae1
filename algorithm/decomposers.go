// File: decomposers.go
// Role: Graph, tree and path decomposers over the shared orchestrator.

package algorithm

import (
	"context"
	"fmt"

	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/elimination"
	"github.com/katalvlaran/treedec/hypergraph"
	"github.com/katalvlaran/treedec/operation"
)

// GraphDecomposer computes bucket elimination graph decompositions.
type GraphDecomposer struct {
	*orchestrator
}

// NewGraphDecomposer returns a decomposer configured by opts.
//
// Errors:
//   - operation.ErrCapabilityMismatch for an invalid WithOperations entry.
func NewGraphDecomposer(opts ...Option) (*GraphDecomposer, error) {
	o, err := newOrchestrator("graph", operation.GraphManipulation, opts)
	if err != nil {
		return nil, fmt.Errorf("NewGraphDecomposer: %w", err)
	}

	return &GraphDecomposer{o}, nil
}

// Clone returns an independent decomposer with cloned operations.
func (d *GraphDecomposer) Clone() *GraphDecomposer {
	return &GraphDecomposer{d.clone()}
}

// ComputeDecomposition decomposes g, applying the global and then the
// call-scoped operations.
//
// Errors:
//   - ErrNilGraph, ErrNilOrdering, operation.ErrCapabilityMismatch.
//   - Any stage error, wrapped with the stage name.
func (d *GraphDecomposer) ComputeDecomposition(ctx context.Context, g hypergraph.View, ops ...operation.Operation) (*decomposition.Graph, error) {
	r, err := d.begin(ctx, g, ops)
	if err != nil {
		return nil, fmt.Errorf("GraphDecomposer.ComputeDecomposition: %w", err)
	}
	out, err := d.compute(r)
	if err != nil {
		r.finish(nil, 0, err)
		return nil, fmt.Errorf("GraphDecomposer.ComputeDecomposition: %w", err)
	}
	r.finish(out, out.Width(), nil)

	return out, nil
}

func (d *GraphDecomposer) compute(r *run) (*decomposition.Graph, error) {
	b, err := r.buckets()
	if err != nil {
		return nil, err
	}
	var out *decomposition.Graph
	if err = r.stage("assemble", func() (err error) {
		out, err = elimination.AssembleGraph(b)
		return err
	}); err != nil {
		return nil, err
	}
	err = r.structural(func(op operation.Operation, scope operation.Scope) error {
		return op.(operation.GraphOperation).ApplyGraph(out, scope)
	})
	if err != nil {
		return nil, err
	}
	if err = r.label(out); err != nil {
		return nil, err
	}

	return out, nil
}

// TreeDecomposer computes bucket elimination tree decompositions.
type TreeDecomposer struct {
	*orchestrator
}

// NewTreeDecomposer returns a decomposer configured by opts.
//
// Errors:
//   - operation.ErrCapabilityMismatch for an invalid WithOperations entry.
func NewTreeDecomposer(opts ...Option) (*TreeDecomposer, error) {
	o, err := newOrchestrator("tree", operation.TreeManipulation, opts)
	if err != nil {
		return nil, fmt.Errorf("NewTreeDecomposer: %w", err)
	}

	return &TreeDecomposer{o}, nil
}

// Clone returns an independent decomposer with cloned operations.
func (d *TreeDecomposer) Clone() *TreeDecomposer {
	return &TreeDecomposer{d.clone()}
}

// ComputeDecomposition decomposes g into a rooted tree, applying the global
// and then the call-scoped operations.
//
// Errors:
//   - ErrNilGraph, ErrNilOrdering, operation.ErrCapabilityMismatch.
//   - Any stage error, wrapped with the stage name.
func (d *TreeDecomposer) ComputeDecomposition(ctx context.Context, g hypergraph.View, ops ...operation.Operation) (*decomposition.Tree, error) {
	r, err := d.begin(ctx, g, ops)
	if err != nil {
		return nil, fmt.Errorf("TreeDecomposer.ComputeDecomposition: %w", err)
	}
	out, err := d.compute(r)
	if err != nil {
		r.finish(nil, 0, err)
		return nil, fmt.Errorf("TreeDecomposer.ComputeDecomposition: %w", err)
	}
	r.finish(out, out.Width(), nil)

	return out, nil
}

func (d *TreeDecomposer) compute(r *run) (*decomposition.Tree, error) {
	out, err := assembleTree(r)
	if err != nil {
		return nil, err
	}
	err = r.structural(func(op operation.Operation, scope operation.Scope) error {
		return op.(operation.TreeOperation).ApplyTree(out, scope)
	})
	if err != nil {
		return nil, err
	}
	if err = r.label(out); err != nil {
		return nil, err
	}

	return out, nil
}

func assembleTree(r *run) (*decomposition.Tree, error) {
	b, err := r.buckets()
	if err != nil {
		return nil, err
	}
	var out *decomposition.Tree
	err = r.stage("assemble", func() (err error) {
		out, err = elimination.AssembleTree(b)
		return err
	})

	return out, err
}

// PathDecomposer computes path decompositions by linearizing the bucket
// elimination tree: Compression and JoinNodeReplacement until no join node
// remains, then a walk down the single remaining branch.
type PathDecomposer struct {
	*orchestrator
}

// NewPathDecomposer returns a decomposer configured by opts.
//
// Errors:
//   - operation.ErrCapabilityMismatch for an invalid WithOperations entry.
func NewPathDecomposer(opts ...Option) (*PathDecomposer, error) {
	o, err := newOrchestrator("path", operation.PathManipulation, opts)
	if err != nil {
		return nil, fmt.Errorf("NewPathDecomposer: %w", err)
	}

	return &PathDecomposer{o}, nil
}

// Clone returns an independent decomposer with cloned operations.
func (d *PathDecomposer) Clone() *PathDecomposer {
	return &PathDecomposer{d.clone()}
}

// ComputeDecomposition decomposes g into a path, applying the global and
// then the call-scoped operations.
//
// Errors:
//   - ErrNilGraph, ErrNilOrdering, operation.ErrCapabilityMismatch.
//   - ErrNotPath if linearization leaves a branching node.
//   - Any stage error, wrapped with the stage name.
func (d *PathDecomposer) ComputeDecomposition(ctx context.Context, g hypergraph.View, ops ...operation.Operation) (*decomposition.Tree, error) {
	r, err := d.begin(ctx, g, ops)
	if err != nil {
		return nil, fmt.Errorf("PathDecomposer.ComputeDecomposition: %w", err)
	}
	out, err := d.compute(r)
	if err != nil {
		r.finish(nil, 0, err)
		return nil, fmt.Errorf("PathDecomposer.ComputeDecomposition: %w", err)
	}
	r.finish(out, out.Width(), nil)

	return out, nil
}

func (d *PathDecomposer) compute(r *run) (*decomposition.Tree, error) {
	tree, err := assembleTree(r)
	if err != nil {
		return nil, err
	}
	var out *decomposition.Tree
	err = r.stage("linearize", func() (err error) {
		out, err = linearize(tree, r.graph)
		return err
	})
	if err != nil {
		return nil, err
	}
	err = r.structural(func(op operation.Operation, scope operation.Scope) error {
		return op.(operation.PathOperation).ApplyPath(out, scope)
	})
	if err != nil {
		return nil, err
	}
	if err = r.label(out); err != nil {
		return nil, err
	}

	return out, nil
}

// linearize turns a tree decomposition into a path decomposition.
func linearize(t *decomposition.Tree, g hypergraph.View) (*decomposition.Tree, error) {
	compress := operation.NewCompression()
	replace := operation.NewJoinNodeReplacement(g)
	for {
		if err := compress.ApplyTree(t, operation.Scope{}); err != nil {
			return nil, err
		}
		if decomposition.JoinNodeCount(t) == 0 {
			break
		}
		if err := replace.ApplyTree(t, operation.Scope{}); err != nil {
			return nil, err
		}
	}

	return toPath(t)
}

// toPath copies the single branch of t, root first, into a new path.
func toPath(t *decomposition.Tree) (*decomposition.Tree, error) {
	p := decomposition.NewPath()
	prev := decomposition.NoNode
	for cur := t.Root(); cur != decomposition.NoNode; {
		var (
			id  decomposition.NodeID
			err error
		)
		if prev == decomposition.NoNode {
			id = p.InsertRoot()
		} else if id, err = p.AddChild(prev); err != nil {
			return nil, err
		}
		if err = p.SetBag(id, t.Bag(cur)); err != nil {
			return nil, err
		}
		if err = p.SetInducedHyperedges(id, t.InducedHyperedges(cur)); err != nil {
			return nil, err
		}
		labels := t.ExportLabels(cur)
		for _, name := range labels.Names() {
			if err = p.SetLabel(name, id, labels[name]); err != nil {
				return nil, err
			}
		}

		switch children := t.Children(cur); len(children) {
		case 0:
			cur = decomposition.NoNode
		case 1:
			cur = children[0]
		default:
			return nil, fmt.Errorf("node %d has %d children: %w", cur, len(children), ErrNotPath)
		}
		prev = id
	}

	return p, nil
}
