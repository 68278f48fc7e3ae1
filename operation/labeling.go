// File: labeling.go
// Role: Labeling functions: a func adapter and the covering-edges label.

package operation

import (
	"fmt"

	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/hypergraph"
	"github.com/katalvlaran/treedec/sets"
)

// LabelFunc computes a label from a bag and the node's existing labels.
type LabelFunc func(bag []hypergraph.Vertex, labels decomposition.Labels) (decomposition.Label, error)

// FuncLabeling adapts a LabelFunc to LabelingFunction.
type FuncLabeling struct {
	name string
	fn   LabelFunc
}

// NewFuncLabeling returns a LabelingFunction storing fn's result under labelName.
// Panics if fn is nil (programmer error).
func NewFuncLabeling(labelName string, fn LabelFunc) *FuncLabeling {
	if fn == nil {
		panic("operation: NewFuncLabeling(nil)")
	}

	return &FuncLabeling{name: labelName, fn: fn}
}

// Name implements Operation.
func (f *FuncLabeling) Name() string { return "Labeling(" + f.name + ")" }

// Capabilities implements Operation.
func (f *FuncLabeling) Capabilities() Capability { return Labeling }

// Clone implements Operation.
func (f *FuncLabeling) Clone() Operation { return &FuncLabeling{name: f.name, fn: f.fn} }

// LabelName implements LabelingFunction.
func (f *FuncLabeling) LabelName() string { return f.name }

// ComputeLabel implements LabelingFunction.
func (f *FuncLabeling) ComputeLabel(bag []hypergraph.Vertex, labels decomposition.Labels) (decomposition.Label, error) {
	return f.fn(bag, labels)
}

// CoveringEdgesLabeling labels each node with hyperedges of a graph that
// together cover its bag (decomposition.CoveringEdgesLabel). The cover is
// greedy: repeatedly take the hyperedge covering most uncovered vertices,
// lowest ID on ties. Bag vertices on no hyperedge stay uncovered.
type CoveringEdgesLabeling struct {
	graph hypergraph.View
}

// NewCoveringEdgesLabeling returns the labeling function for hyperedges of g.
func NewCoveringEdgesLabeling(g hypergraph.View) *CoveringEdgesLabeling {
	return &CoveringEdgesLabeling{graph: g}
}

// Name implements Operation.
func (c *CoveringEdgesLabeling) Name() string { return "CoveringEdgesLabeling" }

// Capabilities implements Operation.
func (c *CoveringEdgesLabeling) Capabilities() Capability { return Labeling }

// Clone implements Operation.
func (c *CoveringEdgesLabeling) Clone() Operation { return &CoveringEdgesLabeling{graph: c.graph} }

// LabelName implements LabelingFunction.
func (c *CoveringEdgesLabeling) LabelName() string { return decomposition.CoveringEdgesLabel }

// ComputeLabel implements LabelingFunction.
func (c *CoveringEdgesLabeling) ComputeLabel(bag []hypergraph.Vertex, _ decomposition.Labels) (decomposition.Label, error) {
	if c.graph == nil {
		return nil, fmt.Errorf("%s: %w", c.Name(), ErrNilGraph)
	}
	uncovered := sets.Normalize(bag)
	seen := make(map[hypergraph.EdgeID]struct{})
	var pool []hypergraph.Hyperedge
	for _, v := range uncovered {
		for _, e := range c.graph.HyperedgesOf(v) {
			if _, dup := seen[e.ID]; !dup {
				seen[e.ID] = struct{}{}
				pool = append(pool, e)
			}
		}
	}
	sortEdges(pool)

	cover := decomposition.HyperedgeSet{}
	for len(uncovered) > 0 {
		best, gain := -1, 0
		for i, e := range pool {
			if g := sets.IntersectionSize(uncovered, e.Sorted()); g > gain {
				best, gain = i, g
			}
		}
		if best < 0 {
			break
		}
		cover = append(cover, pool[best])
		uncovered = sets.Difference(uncovered, pool[best].Sorted())
	}

	return cover, nil
}
