// SPDX-License-Identifier: MIT
// Package: treedec/decomposition
//
// types.go — node identifiers, decomposition kinds, labels and sentinel errors.
//
// Policy:
//   - NodeIDs are arena slots + 1; 0 (NoNode) never names a node.
//   - A removed node's ID is never handed out again within the same container.
//   - Labels are stored by value: Label() returns a clone, SetLabel replaces.

package decomposition

import (
	"errors"
	"slices"

	"github.com/katalvlaran/treedec/hypergraph"
)

// Sentinel errors for decomposition containers.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("decomposition: node not found")

	// ErrPathBranching indicates a mutation that would give a path node a second child.
	ErrPathBranching = errors.New("decomposition: path node would branch")

	// ErrInvalidOperation indicates a structurally meaningless mutation, such as
	// re-parenting a node below itself or removing a root with several children.
	ErrInvalidOperation = errors.New("decomposition: invalid operation")

	// ErrInvalidDecomposition indicates a failed coverage or connectivity check.
	ErrInvalidDecomposition = errors.New("decomposition: invalid decomposition")

	// ErrLabelNotFound indicates a node lacks a required label.
	ErrLabelNotFound = errors.New("decomposition: label not found")
)

// NodeID identifies a node of a decomposition.
type NodeID int

// NoNode is the zero NodeID; it never names a real node.
const NoNode NodeID = 0

// Kind distinguishes rooted decompositions.
type Kind int

const (
	// KindTree allows any number of children per node.
	KindTree Kind = iota
	// KindPath allows at most one child per node.
	KindPath
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindTree:
		return "tree"
	case KindPath:
		return "path"
	}

	return "unknown"
}

// Label names shared by the operations that produce them.
const (
	// InducedSubgraphLabel holds, per node, the hyperedges induced by the bags below it.
	InducedSubgraphLabel = "Induced Subgraph"

	// CoveringEdgesLabel holds, per node, a set of hyperedges covering its bag.
	CoveringEdgesLabel = "Covering Edges"
)

// Label is a typed value attached to a node under a name.
type Label interface {
	// Clone returns an independent copy of the label.
	Clone() Label
}

// Labels is a snapshot of every label attached to one node.
type Labels map[string]Label

// Clone returns a deep copy of ls.
func (ls Labels) Clone() Labels {
	out := make(Labels, len(ls))
	for name, l := range ls {
		out[name] = l.Clone()
	}

	return out
}

// Names returns the label names in ascending order.
func (ls Labels) Names() []string {
	out := make([]string, 0, len(ls))
	for name := range ls {
		out = append(out, name)
	}
	slices.Sort(out)

	return out
}

// HyperedgeSet is a label holding hyperedges.
type HyperedgeSet []hypergraph.Hyperedge

// Clone implements Label.
func (s HyperedgeSet) Clone() Label {
	out := make(HyperedgeSet, len(s))
	for i, e := range s {
		out[i] = e.Clone()
	}

	return out
}

// IDs returns the hyperedge IDs in label order.
func (s HyperedgeSet) IDs() []hypergraph.EdgeID {
	out := make([]hypergraph.EdgeID, len(s))
	for i, e := range s {
		out[i] = e.ID
	}

	return out
}

// VertexSet is a label holding vertices.
type VertexSet []hypergraph.Vertex

// Clone implements Label.
func (s VertexSet) Clone() Label {
	return append(VertexSet(nil), s...)
}

// Value wraps any plain value as a Label. Clone copies V shallowly.
type Value[T any] struct {
	V T
}

// Clone implements Label.
func (v Value[T]) Clone() Label {
	return Value[T]{V: v.V}
}

// LabelSource is anything that stores node labels.
type LabelSource interface {
	Label(name string, id NodeID) (Label, bool)
}

// LabelOf fetches the label name of node id and asserts it to T.
// ok is false when the label is missing or has another type.
func LabelOf[T Label](src LabelSource, name string, id NodeID) (T, bool) {
	var zero T
	l, ok := src.Label(name, id)
	if !ok {
		return zero, false
	}
	t, ok := l.(T)

	return t, ok
}

// Decomposition is the surface shared by Graph and Tree: node catalog,
// bags, adjacency and labels. Validation and labeling sweeps consume it.
type Decomposition interface {
	LabelSource

	Nodes() []NodeID
	NodeCount() int
	IsNode(id NodeID) bool
	Bag(id NodeID) []hypergraph.Vertex
	InducedHyperedges(id NodeID) []hypergraph.Hyperedge
	Neighbors(id NodeID) []NodeID
	SetLabel(name string, id NodeID, l Label) error
	ExportLabels(id NodeID) Labels
	LabelNames() []string
}

var (
	_ Decomposition = (*Tree)(nil)
	_ Decomposition = (*Graph)(nil)
)
