// File: traversal.go
// Role: Iterative pre-/post-order walks over tree and path decompositions.
//
// Contract:
//   - fn receives (node, parent, depth) where depth is the distance to the
//     start node. Returning an error aborts the walk with that error.
//   - Children are read when a node is expanded, so fn may mutate nodes it
//     has already visited. Nodes removed before their turn are skipped.
//   - An explicit stack keeps memory proportional to depth × fan-out and
//     never grows the goroutine stack.

package decomposition

import "fmt"

// VisitFunc is the per-node callback of PreOrder and PostOrder.
type VisitFunc func(node, parent NodeID, depth int) error

// TraversalOptions controls a walk. Zero values mean "from the root, no limit".
type TraversalOptions struct {
	// Start is the subtree root to walk; NoNode means the tree root.
	Start NodeID

	// MaxDepth, if non-negative, stops descending below that depth.
	MaxDepth int
}

// TraversalOption mutates TraversalOptions.
type TraversalOption func(*TraversalOptions)

// WithStart restricts the walk to the subtree rooted at id.
func WithStart(id NodeID) TraversalOption {
	return func(o *TraversalOptions) {
		o.Start = id
	}
}

// WithMaxDepth limits the walk to nodes at most limit edges below the start.
func WithMaxDepth(limit int) TraversalOption {
	return func(o *TraversalOptions) {
		o.MaxDepth = limit
	}
}

type frame struct {
	id       NodeID
	depth    int
	expanded bool
}

// PostOrder visits every node of the selected subtree after all of its
// children, children in insertion order.
//
// Errors:
//   - ErrNodeNotFound if WithStart names a missing node.
//   - Any error returned by fn.
func (t *Tree) PostOrder(fn VisitFunc, opts ...TraversalOption) error {
	return t.walk("PostOrder", fn, false, opts)
}

// PreOrder visits every node of the selected subtree before its children.
func (t *Tree) PreOrder(fn VisitFunc, opts ...TraversalOption) error {
	return t.walk("PreOrder", fn, true, opts)
}

// PostOrderNodes returns the post-order node sequence.
func (t *Tree) PostOrderNodes(opts ...TraversalOption) []NodeID {
	var out []NodeID
	_ = t.PostOrder(func(id, _ NodeID, _ int) error {
		out = append(out, id)
		return nil
	}, opts...)

	return out
}

// PreOrderNodes returns the pre-order node sequence.
func (t *Tree) PreOrderNodes(opts ...TraversalOption) []NodeID {
	var out []NodeID
	_ = t.PreOrder(func(id, _ NodeID, _ int) error {
		out = append(out, id)
		return nil
	}, opts...)

	return out
}

func (t *Tree) walk(method string, fn VisitFunc, pre bool, opts []TraversalOption) error {
	o := TraversalOptions{MaxDepth: -1}
	for _, opt := range opts {
		opt(&o)
	}
	start := o.Start
	if start == NoNode {
		start = t.root
		if start == NoNode {
			return nil
		}
	} else if t.get(start) == nil {
		return fmt.Errorf("%s: start %d: %w", method, start, ErrNodeNotFound)
	}

	stack := []frame{{id: start}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		n := t.get(top.id)
		if n == nil {
			stack = stack[:len(stack)-1]
			continue
		}
		if top.expanded {
			stack = stack[:len(stack)-1]
			if !pre {
				if err := fn(top.id, n.parent, top.depth); err != nil {
					return err
				}
			}
			continue
		}
		top.expanded = true
		id, depth := top.id, top.depth
		if pre {
			if err := fn(id, n.parent, depth); err != nil {
				return err
			}
			// fn may have changed the node.
			if n = t.get(id); n == nil {
				continue
			}
		}
		if o.MaxDepth >= 0 && depth >= o.MaxDepth {
			continue
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{id: n.children[i], depth: depth + 1})
		}
	}

	return nil
}
