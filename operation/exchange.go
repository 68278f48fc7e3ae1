// File: exchange.go
// Role: Splits exchange nodes, i.e. nodes that both forget and introduce
// vertices relative to their single child.

package operation

import (
	"fmt"

	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/sets"
)

// ExchangeNodeReplacement inserts bag(node) ∩ bag(child) between an exchange
// node and its child. Afterwards the child side only forgets and the node
// side only introduces.
type ExchangeNodeReplacement struct{}

// NewExchangeNodeReplacement returns the operation.
func NewExchangeNodeReplacement() *ExchangeNodeReplacement {
	return &ExchangeNodeReplacement{}
}

// Name implements Operation.
func (op *ExchangeNodeReplacement) Name() string { return "ExchangeNodeReplacement" }

// Capabilities implements Operation.
func (op *ExchangeNodeReplacement) Capabilities() Capability {
	return TreeManipulation | PathManipulation
}

// Clone implements Operation.
func (op *ExchangeNodeReplacement) Clone() Operation { return &ExchangeNodeReplacement{} }

// Properties implements Structural.
func (op *ExchangeNodeReplacement) Properties() Properties {
	return Properties{IsLocal: true, CreatesNodes: true}
}

// ApplyTree implements TreeOperation.
func (op *ExchangeNodeReplacement) ApplyTree(t *decomposition.Tree, scope Scope) error {
	if err := op.apply(t, scope); err != nil {
		return fmt.Errorf("%s.ApplyTree: %w", op.Name(), err)
	}

	return nil
}

// ApplyPath implements PathOperation.
func (op *ExchangeNodeReplacement) ApplyPath(p *decomposition.Tree, scope Scope) error {
	if err := op.apply(p, scope); err != nil {
		return fmt.Errorf("%s.ApplyPath: %w", op.Name(), err)
	}

	return nil
}

func (op *ExchangeNodeReplacement) apply(t *decomposition.Tree, scope Scope) error {
	for _, n := range scope.candidates(t) {
		if t.ChildCount(n) != 1 {
			continue
		}
		c := t.Children(n)[0]
		if t.ForgottenVertexCount(n, c) == 0 || t.IntroducedVertexCount(n, c) == 0 {
			continue
		}
		if _, err := scope.insertAbove(t, c, sets.Intersection(t.Bag(n), t.Bag(c)), c); err != nil {
			return err
		}
	}

	return nil
}
