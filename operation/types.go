// SPDX-License-Identifier: MIT
// Package: treedec/operation
//
// types.go — capabilities, operation interfaces and sentinel errors.
//
// Classification model:
//   - Every Operation declares its capabilities up front (Capabilities()).
//   - A capability bit promises the matching method set:
//     Labeling → LabelingFunction, TreeManipulation → TreeOperation,
//     PathManipulation → PathOperation, GraphManipulation → GraphOperation.
//   - CheckCapabilities verifies the promise; algorithms classify by the
//     declared bits, never by concrete type.

package operation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/hypergraph"
)

// Sentinel errors for manipulation operations.
var (
	// ErrCapabilityMismatch indicates an operation declaring a capability it does not implement.
	ErrCapabilityMismatch = errors.New("operation: declared capability not implemented")

	// ErrNilGraph indicates an operation constructed without its input hypergraph.
	ErrNilGraph = errors.New("operation: hypergraph is nil")
)

// Capability is a bit set of the decomposition kinds an operation handles.
type Capability uint8

const (
	// Labeling marks a LabelingFunction.
	Labeling Capability = 1 << iota
	// GraphManipulation marks a GraphOperation.
	GraphManipulation
	// TreeManipulation marks a TreeOperation.
	TreeManipulation
	// PathManipulation marks a PathOperation.
	PathManipulation
)

// Has reports whether every bit of x is set in c.
func (c Capability) Has(x Capability) bool {
	return x != 0 && c&x == x
}

// String lists the set bits, e.g. "tree|path".
func (c Capability) String() string {
	var parts []string
	for _, p := range []struct {
		bit  Capability
		name string
	}{{Labeling, "labeling"}, {GraphManipulation, "graph"}, {TreeManipulation, "tree"}, {PathManipulation, "path"}} {
		if c.Has(p.bit) {
			parts = append(parts, p.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, "|")
}

// Operation is the common surface of every manipulation operation.
type Operation interface {
	// Name identifies the operation in logs, metrics and errors.
	Name() string

	// Capabilities declares the method sets the operation implements.
	Capabilities() Capability

	// Clone returns an independent operation with the same configuration.
	Clone() Operation
}

// LabelingFunction computes one label per node from the node's bag and a
// snapshot of its existing labels.
type LabelingFunction interface {
	Operation

	// LabelName is the name the computed label is stored under.
	LabelName() string

	// ComputeLabel derives the label of a node.
	ComputeLabel(bag []hypergraph.Vertex, labels decomposition.Labels) (decomposition.Label, error)
}

// TreeOperation rewrites or annotates a tree decomposition.
type TreeOperation interface {
	Operation
	ApplyTree(t *decomposition.Tree, scope Scope) error
}

// PathOperation rewrites or annotates a path decomposition.
type PathOperation interface {
	Operation
	ApplyPath(p *decomposition.Tree, scope Scope) error
}

// GraphOperation rewrites or annotates a graph decomposition.
type GraphOperation interface {
	Operation
	ApplyGraph(g *decomposition.Graph, scope Scope) error
}

// Properties describes what a structural operation may do to a decomposition.
type Properties struct {
	// IsLocal: only the relevant nodes and their parents are inspected.
	IsLocal bool
	// CreatesNodes: the operation may add nodes.
	CreatesNodes bool
	// RemovesNodes: the operation may remove nodes.
	RemovesNodes bool
	// ModifiesBagContents: existing bags may change.
	ModifiesBagContents bool
	// CreatesSubsetMaximalBags: the result has no bag contained in a neighbor's bag.
	CreatesSubsetMaximalBags bool
	// CreatesLocationDependentLabels: labels depend on a node's position, so
	// later structural changes invalidate them.
	CreatesLocationDependentLabels bool
}

// Structural is implemented by operations that publish Properties.
type Structural interface {
	Properties() Properties
}

// CheckCapabilities verifies that op implements every method set its
// declared capabilities promise.
//
// Errors:
//   - ErrCapabilityMismatch naming the first broken promise.
func CheckCapabilities(op Operation) error {
	caps := op.Capabilities()
	checks := []struct {
		bit Capability
		ok  bool
	}{
		{Labeling, is[LabelingFunction](op)},
		{GraphManipulation, is[GraphOperation](op)},
		{TreeManipulation, is[TreeOperation](op)},
		{PathManipulation, is[PathOperation](op)},
	}
	for _, c := range checks {
		if caps.Has(c.bit) && !c.ok {
			return fmt.Errorf("CheckCapabilities(%s): %s: %w", op.Name(), c.bit, ErrCapabilityMismatch)
		}
	}

	return nil
}

func is[T any](op Operation) bool {
	_, ok := op.(T)
	return ok
}
