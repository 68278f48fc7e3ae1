// SPDX-License-Identifier: MIT
// Package: treedec/operation
//
// normalization.go — the four-stage normalization pipeline.
//
// Pipeline:
//   SemiNormalization → ExchangeNodeReplacement →
//   LimitMaximumForgottenVertexCount(1) → LimitMaximumIntroducedVertexCount(1)
//
// Focus chaining:
//   - With a whole-decomposition scope every stage inspects every node.
//   - With a focused scope, each stage sees the caller's relevant nodes plus
//     every node created by the stages before it.
//
// Result (whole-decomposition scope): every node with a single child
// forgets at most one and introduces at most one vertex relative to it, and
// every join node's children carry the join bag. On paths the leaf is
// left whole even when leaves count as introduce nodes.

package operation

import (
	"fmt"

	"github.com/katalvlaran/treedec/decomposition"
)

// Normalization runs the full normalization pipeline on trees and paths.
type Normalization struct {
	cfg        normalizationConfig
	stages     []stage
	pathStages []stage
}

type stage interface {
	Operation
	apply(t *decomposition.Tree, scope Scope) error
}

// NewNormalization assembles the pipeline for the given options.
func NewNormalization(opts ...NormalizationOption) *Normalization {
	cfg := newNormalizationConfig(opts)

	return &Normalization{
		cfg: cfg,
		stages: []stage{
			&SemiNormalization{cfg: cfg},
			NewExchangeNodeReplacement(),
			NewLimitMaximumForgottenVertexCount(1),
			NewLimitMaximumIntroducedVertexCount(1, cfg.leavesAsIntroduce),
		},
		// Path leaves are never split into introduce chains.
		pathStages: []stage{
			&SemiNormalization{cfg: cfg},
			NewExchangeNodeReplacement(),
			NewLimitMaximumForgottenVertexCount(1),
			NewLimitMaximumIntroducedVertexCount(1, false),
		},
	}
}

// Name implements Operation.
func (op *Normalization) Name() string { return "Normalization" }

// Capabilities implements Operation.
func (op *Normalization) Capabilities() Capability {
	return TreeManipulation | PathManipulation
}

// Clone implements Operation.
func (op *Normalization) Clone() Operation {
	return &Normalization{
		cfg:        op.cfg,
		stages:     append([]stage(nil), op.stages...),
		pathStages: append([]stage(nil), op.pathStages...),
	}
}

// Properties implements Structural.
func (op *Normalization) Properties() Properties {
	return Properties{IsLocal: true, CreatesNodes: true}
}

// EmptyRootRequired reports whether WithEmptyRoot was given.
func (op *Normalization) EmptyRootRequired() bool { return op.cfg.emptyRoot }

// EmptyLeavesRequired reports whether WithEmptyLeaves was given.
func (op *Normalization) EmptyLeavesRequired() bool { return op.cfg.emptyLeaves }

// IdenticalJoinNodeParentRequired reports whether WithIdenticalJoinNodeParent was given.
func (op *Normalization) IdenticalJoinNodeParentRequired() bool {
	return op.cfg.identicalJoinNodeParent
}

// LeafNodesTreatedAsIntroduceNodes reports whether WithLeafNodesAsIntroduceNodes
// was given. The flag applies to ApplyTree only.
func (op *Normalization) LeafNodesTreatedAsIntroduceNodes() bool {
	return op.cfg.leavesAsIntroduce
}

// ApplyTree implements TreeOperation.
func (op *Normalization) ApplyTree(t *decomposition.Tree, scope Scope) error {
	if err := op.apply(t, op.stages, scope); err != nil {
		return fmt.Errorf("%s.ApplyTree: %w", op.Name(), err)
	}

	return nil
}

// ApplyPath implements PathOperation.
func (op *Normalization) ApplyPath(p *decomposition.Tree, scope Scope) error {
	if err := op.apply(p, op.pathStages, scope); err != nil {
		return fmt.Errorf("%s.ApplyPath: %w", op.Name(), err)
	}

	return nil
}

func (op *Normalization) apply(t *decomposition.Tree, stages []stage, scope Scope) error {
	log := scope.Log
	if log == nil {
		log = &ChangeLog{}
	}
	relevant := scope.Relevant
	if relevant != nil {
		relevant = append([]decomposition.NodeID{}, relevant...)
	}
	for _, s := range stages {
		before := len(log.Created)
		if err := s.apply(t, Scope{Relevant: relevant, Log: log, Labelers: scope.Labelers}); err != nil {
			return fmt.Errorf("%s: %w", s.Name(), err)
		}
		if relevant != nil {
			relevant = append(relevant, log.Created[before:]...)
		}
	}

	return nil
}
