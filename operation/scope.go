// File: scope.go
// Role: Per-call focus, change tracking and node-creation helpers shared by
// the structural operations.
//
// Focus contract:
//   - Scope.Relevant == nil means "the whole decomposition".
//   - A non-nil Relevant restricts inspection to the listed nodes and their
//     parents; an empty non-nil slice inspects nothing.
//   - Every node an operation creates or removes is appended to Scope.Log.

package operation

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/hypergraph"
	"github.com/katalvlaran/treedec/sets"
)

// ChangeLog records the nodes created and removed by one or more operations,
// in the order the changes happened.
type ChangeLog struct {
	Created []decomposition.NodeID
	Removed []decomposition.NodeID
}

func (l *ChangeLog) create(id decomposition.NodeID) {
	if l != nil {
		l.Created = append(l.Created, id)
	}
}

func (l *ChangeLog) remove(id decomposition.NodeID) {
	if l != nil {
		l.Removed = append(l.Removed, id)
	}
}

// Scope is the per-call context of a structural operation.
type Scope struct {
	// Relevant lists the nodes the operation should look at; nil means all.
	Relevant []decomposition.NodeID

	// Log receives created and removed nodes; may be nil.
	Log *ChangeLog

	// Labelers label every node the operation creates.
	Labelers []LabelingFunction
}

// candidates returns the live nodes to inspect, ascending: every node when
// Relevant is nil, otherwise the relevant nodes plus their parents.
func (s Scope) candidates(t *decomposition.Tree) []decomposition.NodeID {
	if s.Relevant == nil {
		return t.Nodes()
	}
	var out []decomposition.NodeID
	for _, id := range s.Relevant {
		if !t.IsNode(id) {
			continue
		}
		out = append(out, id)
		if p := t.Parent(id); p != decomposition.NoNode {
			out = append(out, p)
		}
	}
	slices.Sort(out)

	return slices.Compact(out)
}

// created finishes a freshly allocated node: bag, induced hyperedges filtered
// from src (whose bag must contain bag), change log and labels.
func (s Scope) created(t *decomposition.Tree, id decomposition.NodeID, bag []hypergraph.Vertex, src decomposition.NodeID) error {
	if err := t.SetBag(id, bag); err != nil {
		return err
	}
	if err := t.SetInducedHyperedges(id, inducedWithin(t.InducedHyperedges(src), t.Bag(id))); err != nil {
		return err
	}
	s.Log.create(id)

	return s.label(t, id)
}

func (s Scope) label(d decomposition.Decomposition, id decomposition.NodeID) error {
	for _, lf := range s.Labelers {
		l, err := lf.ComputeLabel(d.Bag(id), d.ExportLabels(id))
		if err != nil {
			return fmt.Errorf("%s: node %d: %w", lf.Name(), id, err)
		}
		if err = d.SetLabel(lf.LabelName(), id, l); err != nil {
			return err
		}
	}

	return nil
}

// insertAbove places a new node with the given bag between child and its parent.
func (s Scope) insertAbove(t *decomposition.Tree, child decomposition.NodeID, bag []hypergraph.Vertex, src decomposition.NodeID) (decomposition.NodeID, error) {
	id, err := t.AddParent(child)
	if err != nil {
		return decomposition.NoNode, err
	}

	return id, s.created(t, id, bag, src)
}

// appendChild adds a new leaf with the given bag below parent.
func (s Scope) appendChild(t *decomposition.Tree, parent decomposition.NodeID, bag []hypergraph.Vertex, src decomposition.NodeID) (decomposition.NodeID, error) {
	id, err := t.AddChild(parent)
	if err != nil {
		return decomposition.NoNode, err
	}

	return id, s.created(t, id, bag, src)
}

// inducedWithin keeps the hyperedges whose endpoints all lie in bag.
func inducedWithin(es []hypergraph.Hyperedge, bag []hypergraph.Vertex) []hypergraph.Hyperedge {
	var out []hypergraph.Hyperedge
	for _, e := range es {
		if sets.Includes(bag, e.Sorted()) {
			out = append(out, e)
		}
	}

	return out
}

// inducedFrom collects the hyperedges of g whose endpoints all lie in bag,
// ordered by ID.
func inducedFrom(g hypergraph.View, bag []hypergraph.Vertex) []hypergraph.Hyperedge {
	seen := make(map[hypergraph.EdgeID]struct{})
	var out []hypergraph.Hyperedge
	for _, v := range bag {
		for _, e := range g.HyperedgesOf(v) {
			if _, dup := seen[e.ID]; dup {
				continue
			}
			seen[e.ID] = struct{}{}
			if sets.Includes(bag, e.Sorted()) {
				out = append(out, e)
			}
		}
	}
	sortEdges(out)

	return out
}

func sortEdges(es []hypergraph.Hyperedge) {
	slices.SortFunc(es, func(a, b hypergraph.Hyperedge) int { return cmp.Compare(a.ID, b.ID) })
}
