// File: limit_children.go
// Role: Caps the fan-out of join nodes.

package operation

import (
	"fmt"

	"github.com/katalvlaran/treedec/decomposition"
)

// LimitChildCount splits join nodes with more than Limit children into a
// chain of join nodes carrying the same bag. With limit 2 every join node
// becomes binary.
type LimitChildCount struct {
	limit int
}

// NewLimitChildCount returns the operation. Panics if limit < 2 (programmer error).
func NewLimitChildCount(limit int) *LimitChildCount {
	if limit < 2 {
		panic("operation: child count limit must be >= 2")
	}

	return &LimitChildCount{limit: limit}
}

// Limit returns the configured bound.
func (op *LimitChildCount) Limit() int { return op.limit }

// Name implements Operation.
func (op *LimitChildCount) Name() string { return "LimitChildCount" }

// Capabilities implements Operation.
func (op *LimitChildCount) Capabilities() Capability { return TreeManipulation }

// Clone implements Operation.
func (op *LimitChildCount) Clone() Operation {
	c := *op
	return &c
}

// Properties implements Structural.
func (op *LimitChildCount) Properties() Properties {
	return Properties{IsLocal: true, CreatesNodes: true}
}

// ApplyTree implements TreeOperation.
func (op *LimitChildCount) ApplyTree(t *decomposition.Tree, scope Scope) error {
	for _, n := range scope.candidates(t) {
		for cur := n; t.ChildCount(cur) > op.limit; {
			moved := t.Children(cur)[op.limit-1:]
			next, err := scope.appendChild(t, cur, t.Bag(cur), cur)
			if err != nil {
				return fmt.Errorf("%s.ApplyTree: %w", op.Name(), err)
			}
			for _, c := range moved {
				if err = t.Reparent(c, next); err != nil {
					return fmt.Errorf("%s.ApplyTree: %w", op.Name(), err)
				}
			}
			cur = next
		}
	}

	return nil
}
