// File: store.go
// Role: Arena of decomposition nodes shared by Graph and Tree.
//
// Determinism:
//   - Nodes() returns IDs ascending; IDs are allocation order.
//   - Bags are kept sorted and duplicate-free.
//
// Concurrency:
//   - Not synchronized. A decomposition is owned by one goroutine at a time.

package decomposition

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/treedec/hypergraph"
	"github.com/katalvlaran/treedec/sets"
)

type node struct {
	bag      []hypergraph.Vertex
	induced  []hypergraph.Hyperedge
	labels   map[string]Label
	parent   NodeID   // tree kinds
	children []NodeID // tree kinds, insertion order
	adjacent []NodeID // graph kind, ascending
}

func (n *node) clone() *node {
	c := &node{
		bag:      append([]hypergraph.Vertex(nil), n.bag...),
		induced:  cloneEdges(n.induced),
		parent:   n.parent,
		children: append([]NodeID(nil), n.children...),
		adjacent: append([]NodeID(nil), n.adjacent...),
	}
	if len(n.labels) > 0 {
		c.labels = Labels(n.labels).Clone()
	}

	return c
}

// nodeStore owns every node record. Slot i holds NodeID i+1; a nil slot is a
// removed node.
type nodeStore struct {
	nodes []*node
	count int
}

func (s *nodeStore) alloc(bag []hypergraph.Vertex) NodeID {
	s.nodes = append(s.nodes, &node{bag: sets.Normalize(bag)})
	s.count++

	return NodeID(len(s.nodes))
}

func (s *nodeStore) free(id NodeID) {
	s.nodes[id-1] = nil
	s.count--
}

func (s *nodeStore) get(id NodeID) *node {
	if id <= NoNode || int(id) > len(s.nodes) {
		return nil
	}

	return s.nodes[id-1]
}

func (s *nodeStore) must(method string, id NodeID) (*node, error) {
	n := s.get(id)
	if n == nil {
		return nil, fmt.Errorf("%s(%d): %w", method, id, ErrNodeNotFound)
	}

	return n, nil
}

func (s *nodeStore) cloneStore() nodeStore {
	c := nodeStore{nodes: make([]*node, len(s.nodes)), count: s.count}
	for i, n := range s.nodes {
		if n != nil {
			c.nodes[i] = n.clone()
		}
	}

	return c
}

// IsNode reports whether id names a live node.
func (s *nodeStore) IsNode(id NodeID) bool {
	return s.get(id) != nil
}

// NodeCount returns the number of live nodes.
func (s *nodeStore) NodeCount() int {
	return s.count
}

// Nodes returns every live node ID in ascending order.
func (s *nodeStore) Nodes() []NodeID {
	out := make([]NodeID, 0, s.count)
	for i, n := range s.nodes {
		if n != nil {
			out = append(out, NodeID(i+1))
		}
	}

	return out
}

// Bag returns a copy of the bag of id. An unknown node yields nil.
func (s *nodeStore) Bag(id NodeID) []hypergraph.Vertex {
	n := s.get(id)
	if n == nil {
		return nil
	}

	return append([]hypergraph.Vertex(nil), n.bag...)
}

// BagSize returns |bag(id)|, 0 for an unknown node.
func (s *nodeStore) BagSize(id NodeID) int {
	n := s.get(id)
	if n == nil {
		return 0
	}

	return len(n.bag)
}

// SetBag replaces the bag of id; the input is normalized to a sorted set.
func (s *nodeStore) SetBag(id NodeID, bag []hypergraph.Vertex) error {
	n, err := s.must("SetBag", id)
	if err != nil {
		return err
	}
	n.bag = sets.Normalize(bag)

	return nil
}

// InducedHyperedges returns copies of the hyperedges whose endpoints all lie
// in bag(id). An unknown node yields nil.
func (s *nodeStore) InducedHyperedges(id NodeID) []hypergraph.Hyperedge {
	n := s.get(id)
	if n == nil {
		return nil
	}

	return cloneEdges(n.induced)
}

// SetInducedHyperedges replaces the induced hyperedge list of id.
func (s *nodeStore) SetInducedHyperedges(id NodeID, es []hypergraph.Hyperedge) error {
	n, err := s.must("SetInducedHyperedges", id)
	if err != nil {
		return err
	}
	n.induced = cloneEdges(es)

	return nil
}

// SetLabel attaches a clone of l to id under name, replacing any previous
// value. A nil l removes the label.
func (s *nodeStore) SetLabel(name string, id NodeID, l Label) error {
	n, err := s.must("SetLabel", id)
	if err != nil {
		return fmt.Errorf("%q: %w", name, err)
	}
	if l == nil {
		delete(n.labels, name)
		return nil
	}
	if n.labels == nil {
		n.labels = make(map[string]Label)
	}
	n.labels[name] = l.Clone()

	return nil
}

// Label returns a clone of the label name on id.
func (s *nodeStore) Label(name string, id NodeID) (Label, bool) {
	n := s.get(id)
	if n == nil {
		return nil, false
	}
	l, ok := n.labels[name]
	if !ok {
		return nil, false
	}

	return l.Clone(), true
}

// IsLabeled reports whether id carries a label called name.
func (s *nodeStore) IsLabeled(name string, id NodeID) bool {
	n := s.get(id)
	if n == nil {
		return false
	}
	_, ok := n.labels[name]

	return ok
}

// RemoveLabel drops the label name from id. Removing an absent label is a no-op.
func (s *nodeStore) RemoveLabel(name string, id NodeID) error {
	return s.SetLabel(name, id, nil)
}

// SwapLabels exchanges the complete label collections of a and b.
func (s *nodeStore) SwapLabels(a, b NodeID) error {
	na, err := s.must("SwapLabels", a)
	if err != nil {
		return err
	}
	nb, err := s.must("SwapLabels", b)
	if err != nil {
		return err
	}
	na.labels, nb.labels = nb.labels, na.labels

	return nil
}

// ExportLabels returns a snapshot of every label on id.
func (s *nodeStore) ExportLabels(id NodeID) Labels {
	n := s.get(id)
	if n == nil {
		return Labels{}
	}

	return Labels(n.labels).Clone()
}

// LabelNames returns every label name used by at least one node, ascending.
func (s *nodeStore) LabelNames() []string {
	seen := make(map[string]struct{})
	for _, n := range s.nodes {
		if n == nil {
			continue
		}
		for name := range n.labels {
			seen[name] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	slices.Sort(out)

	return out
}

// Vertices returns the union of all bags.
func (s *nodeStore) Vertices() []hypergraph.Vertex {
	var out []hypergraph.Vertex
	for _, n := range s.nodes {
		if n != nil {
			out = sets.Union(out, n.bag)
		}
	}

	return out
}

// MaxBagSize returns the size of the largest bag (0 without nodes).
func (s *nodeStore) MaxBagSize() int {
	best := 0
	for _, n := range s.nodes {
		if n != nil && len(n.bag) > best {
			best = len(n.bag)
		}
	}

	return best
}

// Width returns MaxBagSize()-1, the usual decomposition width.
func (s *nodeStore) Width() int {
	return s.MaxBagSize() - 1
}

func cloneEdges(es []hypergraph.Hyperedge) []hypergraph.Hyperedge {
	if es == nil {
		return nil
	}
	out := make([]hypergraph.Hyperedge, len(es))
	for i, e := range es {
		out[i] = e.Clone()
	}

	return out
}
