// SPDX-License-Identifier: MIT
// Package: treedec/operation
//
// semi_normalization.go — join children, join parents, empty leaves, empty root.
//
// Steps, in order, over the candidate nodes:
//  1. Every join node child whose bag differs from the join bag is separated
//     from the join node by a new node carrying the join bag.
//  2. (optional) A join node whose parent bag differs gets a new parent with
//     its own bag.
//  3. (optional) Every leaf with a non-empty bag gets an empty child.
//  4. (optional) A root with a non-empty bag gets an empty parent.

package operation

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/treedec/decomposition"
)

// SemiNormalization is the first stage of Normalization.
type SemiNormalization struct {
	cfg normalizationConfig
}

// NewSemiNormalization builds the operation. Only WithEmptyRoot,
// WithEmptyLeaves and WithIdenticalJoinNodeParent have an effect here.
func NewSemiNormalization(opts ...NormalizationOption) *SemiNormalization {
	return &SemiNormalization{cfg: newNormalizationConfig(opts)}
}

// Name implements Operation.
func (op *SemiNormalization) Name() string { return "SemiNormalization" }

// Capabilities implements Operation.
func (op *SemiNormalization) Capabilities() Capability {
	return TreeManipulation | PathManipulation
}

// Clone implements Operation.
func (op *SemiNormalization) Clone() Operation {
	c := *op
	return &c
}

// Properties implements Structural.
func (op *SemiNormalization) Properties() Properties {
	return Properties{IsLocal: true, CreatesNodes: true}
}

// EmptyRootRequired reports whether WithEmptyRoot was given.
func (op *SemiNormalization) EmptyRootRequired() bool { return op.cfg.emptyRoot }

// EmptyLeavesRequired reports whether WithEmptyLeaves was given.
func (op *SemiNormalization) EmptyLeavesRequired() bool { return op.cfg.emptyLeaves }

// IdenticalJoinNodeParentRequired reports whether WithIdenticalJoinNodeParent was given.
func (op *SemiNormalization) IdenticalJoinNodeParentRequired() bool {
	return op.cfg.identicalJoinNodeParent
}

// ApplyTree implements TreeOperation.
func (op *SemiNormalization) ApplyTree(t *decomposition.Tree, scope Scope) error {
	if err := op.apply(t, scope); err != nil {
		return fmt.Errorf("%s.ApplyTree: %w", op.Name(), err)
	}

	return nil
}

// ApplyPath implements PathOperation. Paths have no join nodes, so only the
// leaf and root steps can fire.
func (op *SemiNormalization) ApplyPath(p *decomposition.Tree, scope Scope) error {
	if err := op.apply(p, scope); err != nil {
		return fmt.Errorf("%s.ApplyPath: %w", op.Name(), err)
	}

	return nil
}

func (op *SemiNormalization) apply(t *decomposition.Tree, scope Scope) error {
	if t.Root() == decomposition.NoNode {
		return nil
	}
	candidates := scope.candidates(t)

	for _, j := range candidates {
		if !t.IsJoin(j) {
			continue
		}
		bag := t.Bag(j)
		for _, c := range t.Children(j) {
			if slices.Equal(t.Bag(c), bag) {
				continue
			}
			if _, err := scope.insertAbove(t, c, bag, j); err != nil {
				return err
			}
		}
		if !op.cfg.identicalJoinNodeParent {
			continue
		}
		if p := t.Parent(j); p == decomposition.NoNode || !slices.Equal(t.Bag(p), bag) {
			if _, err := scope.insertAbove(t, j, bag, j); err != nil {
				return err
			}
		}
	}

	if op.cfg.emptyLeaves {
		for _, l := range candidates {
			if !t.IsLeaf(l) || t.BagSize(l) == 0 {
				continue
			}
			if _, err := scope.appendChild(t, l, nil, l); err != nil {
				return err
			}
		}
	}

	if op.cfg.emptyRoot && len(candidates) > 0 {
		if r := t.Root(); t.BagSize(r) > 0 {
			if _, err := scope.insertAbove(t, r, nil, r); err != nil {
				return err
			}
		}
	}

	return nil
}
