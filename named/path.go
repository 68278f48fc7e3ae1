// SPDX-License-Identifier: MIT
// Package: treedec/named
//
// path.go — Path[V, E]: named vertices and edges over a path decomposition.
//
// Invariants:
//   - byName and names are inverse maps; so are edgeByID and edgeNames.
//   - Every ID in the maps is a live node of the wrapped path. Removals
//     prune the maps before returning.

package named

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/hypergraph"
)

// Sentinel errors for named paths.
var (
	// ErrUnknownVertex indicates a node ID that is not part of the path.
	ErrUnknownVertex = errors.New("named: unknown vertex")

	// ErrUnknownName indicates a name bound to no vertex or edge, or a node
	// without a name.
	ErrUnknownName = errors.New("named: unknown name")

	// ErrDuplicateName indicates a name already bound to another vertex or edge.
	ErrDuplicateName = errors.New("named: duplicate name")

	// ErrNotPath indicates a wrapped decomposition that is not a path.
	ErrNotPath = errors.New("named: decomposition is not a path")

	// ErrNoParent indicates an edge name requested for the root.
	ErrNoParent = errors.New("named: root has no parent edge")
)

// Path is a path decomposition whose nodes and edges carry names.
type Path[V comparable, E comparable] struct {
	mu sync.RWMutex

	path *decomposition.Tree

	byName map[V]decomposition.NodeID
	names  map[decomposition.NodeID]V

	edgeByName map[E]decomposition.NodeID
	edgeNames  map[decomposition.NodeID]E
}

// New returns an empty named path.
func New[V comparable, E comparable]() *Path[V, E] {
	p, _ := Wrap[V, E](decomposition.NewPath())

	return p
}

// Wrap names the nodes of an existing path. All nodes start unnamed.
//
// Errors:
//   - ErrNotPath if t is nil or not of kind path.
func Wrap[V comparable, E comparable](t *decomposition.Tree) (*Path[V, E], error) {
	if t == nil || t.Kind() != decomposition.KindPath {
		return nil, ErrNotPath
	}

	return &Path[V, E]{
		path:       t,
		byName:     make(map[V]decomposition.NodeID),
		names:      make(map[decomposition.NodeID]V),
		edgeByName: make(map[E]decomposition.NodeID),
		edgeNames:  make(map[decomposition.NodeID]E),
	}, nil
}

// Internal returns the wrapped path. Mutating it directly bypasses the
// name bookkeeping.
func (p *Path[V, E]) Internal() *decomposition.Tree {
	return p.path
}

// Len returns the number of nodes.
func (p *Path[V, E]) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.path.NodeCount()
}

// InsertRoot creates the root under name, or names the existing root.
//
// Errors:
//   - ErrDuplicateName if name belongs to another node.
func (p *Path[V, E]) InsertRoot(name V) (decomposition.NodeID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if id, taken := p.byName[name]; taken && !p.path.IsRoot(id) {
		return decomposition.NoNode, fmt.Errorf("InsertRoot(%v): %w", name, ErrDuplicateName)
	}
	id := p.path.InsertRoot()
	p.bindLocked(id, name)

	return id, nil
}

// AddChild appends a node called child below the node called parent.
//
// Errors:
//   - ErrUnknownName, ErrDuplicateName.
//   - decomposition.ErrPathBranching if parent already has a child.
func (p *Path[V, E]) AddChild(parent, child V) (decomposition.NodeID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pid, err := p.lookupLocked(parent)
	if err != nil {
		return decomposition.NoNode, fmt.Errorf("AddChild(%v, %v): %w", parent, child, err)
	}
	if _, taken := p.byName[child]; taken {
		return decomposition.NoNode, fmt.Errorf("AddChild(%v, %v): %w", parent, child, ErrDuplicateName)
	}
	id, err := p.path.AddChild(pid)
	if err != nil {
		return decomposition.NoNode, fmt.Errorf("AddChild(%v, %v): %w", parent, child, err)
	}
	p.bindLocked(id, child)

	return id, nil
}

// AddParent inserts a node called parent directly above the node called of.
// Above the root it becomes the new root.
//
// Errors:
//   - ErrUnknownName, ErrDuplicateName.
func (p *Path[V, E]) AddParent(of, parent V) (decomposition.NodeID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	cid, err := p.lookupLocked(of)
	if err != nil {
		return decomposition.NoNode, fmt.Errorf("AddParent(%v, %v): %w", of, parent, err)
	}
	if _, taken := p.byName[parent]; taken {
		return decomposition.NoNode, fmt.Errorf("AddParent(%v, %v): %w", of, parent, ErrDuplicateName)
	}
	id, err := p.path.AddParent(cid)
	if err != nil {
		return decomposition.NoNode, fmt.Errorf("AddParent(%v, %v): %w", of, parent, err)
	}
	p.bindLocked(id, parent)

	return id, nil
}

// RemoveVertex deletes the node called name and joins its neighbours.
//
// Errors:
//   - ErrUnknownName.
func (p *Path[V, E]) RemoveVertex(name V) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	id, err := p.lookupLocked(name)
	if err != nil {
		return fmt.Errorf("RemoveVertex(%v): %w", name, err)
	}
	if err = p.path.RemoveVertex(id); err != nil {
		return fmt.Errorf("RemoveVertex(%v): %w", name, err)
	}
	p.pruneLocked()

	return nil
}

// RemoveSubpath deletes the node called name and everything below it.
//
// Errors:
//   - ErrUnknownName.
func (p *Path[V, E]) RemoveSubpath(name V) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	id, err := p.lookupLocked(name)
	if err != nil {
		return fmt.Errorf("RemoveSubpath(%v): %w", name, err)
	}
	if err = p.path.RemoveSubtree(id); err != nil {
		return fmt.Errorf("RemoveSubpath(%v): %w", name, err)
	}
	p.pruneLocked()

	return nil
}

// SetVertexName binds name to node id, replacing the node's previous name.
//
// Errors:
//   - ErrUnknownVertex, ErrDuplicateName.
func (p *Path[V, E]) SetVertexName(id decomposition.NodeID, name V) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.path.IsNode(id) {
		return fmt.Errorf("SetVertexName(%d): %w", id, ErrUnknownVertex)
	}
	if other, taken := p.byName[name]; taken && other != id {
		return fmt.Errorf("SetVertexName(%d, %v): %w", id, name, ErrDuplicateName)
	}
	p.bindLocked(id, name)

	return nil
}

// VertexName returns the name of node id.
//
// Errors:
//   - ErrUnknownVertex if id is not in the path.
//   - ErrUnknownName if id has no name.
func (p *Path[V, E]) VertexName(id decomposition.NodeID) (V, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var zero V
	if !p.path.IsNode(id) {
		return zero, fmt.Errorf("VertexName(%d): %w", id, ErrUnknownVertex)
	}
	n, ok := p.names[id]
	if !ok {
		return zero, fmt.Errorf("VertexName(%d): %w", id, ErrUnknownName)
	}

	return n, nil
}

// LookupVertex returns the node called name.
//
// Errors:
//   - ErrUnknownName.
func (p *Path[V, E]) LookupVertex(name V) (decomposition.NodeID, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	id, err := p.lookupLocked(name)
	if err != nil {
		return decomposition.NoNode, fmt.Errorf("LookupVertex(%v): %w", name, err)
	}

	return id, nil
}

// IsVertexName reports whether name is bound to a node.
func (p *Path[V, E]) IsVertexName(name V) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.byName[name]

	return ok
}

// Vertices returns the node names from the root down. Unnamed nodes are skipped.
func (p *Path[V, E]) Vertices() []V {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]V, 0, len(p.names))
	for _, id := range p.path.PreOrderNodes() {
		if n, ok := p.names[id]; ok {
			out = append(out, n)
		}
	}

	return out
}

// Neighbors returns the names of the nodes adjacent to name, parent first.
//
// Errors:
//   - ErrUnknownName, also when a neighbour is unnamed.
func (p *Path[V, E]) Neighbors(name V) ([]V, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	id, err := p.lookupLocked(name)
	if err != nil {
		return nil, fmt.Errorf("Neighbors(%v): %w", name, err)
	}
	ns := append(p.path.Children(id), p.path.Parent(id))
	if ns[len(ns)-1] == decomposition.NoNode {
		ns = ns[:len(ns)-1]
	} else {
		ns[0], ns[len(ns)-1] = ns[len(ns)-1], ns[0]
	}
	out := make([]V, 0, len(ns))
	for _, n := range ns {
		v, ok := p.names[n]
		if !ok {
			return nil, fmt.Errorf("Neighbors(%v): node %d: %w", name, n, ErrUnknownName)
		}
		out = append(out, v)
	}

	return out, nil
}

// IsNeighbor reports whether the nodes called a and b are adjacent.
func (p *Path[V, E]) IsNeighbor(a, b V) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	x, okA := p.byName[a]
	y, okB := p.byName[b]
	if !okA || !okB {
		return false
	}

	return p.path.Parent(x) == y || p.path.Parent(y) == x
}

// SetEdgeName names the edge between the node called child and its parent.
//
// Errors:
//   - ErrUnknownName, ErrDuplicateName.
//   - ErrNoParent if child is the root.
func (p *Path[V, E]) SetEdgeName(child V, edge E) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	id, err := p.lookupLocked(child)
	if err != nil {
		return fmt.Errorf("SetEdgeName(%v): %w", child, err)
	}
	if p.path.IsRoot(id) {
		return fmt.Errorf("SetEdgeName(%v): %w", child, ErrNoParent)
	}
	if other, taken := p.edgeByName[edge]; taken && other != id {
		return fmt.Errorf("SetEdgeName(%v, %v): %w", child, edge, ErrDuplicateName)
	}
	if old, ok := p.edgeNames[id]; ok {
		delete(p.edgeByName, old)
	}
	p.edgeNames[id] = edge
	p.edgeByName[edge] = id

	return nil
}

// EdgeName returns the name of the edge above the node called child.
//
// Errors:
//   - ErrUnknownName if child is unknown or its edge is unnamed.
func (p *Path[V, E]) EdgeName(child V) (E, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var zero E
	id, err := p.lookupLocked(child)
	if err != nil {
		return zero, fmt.Errorf("EdgeName(%v): %w", child, err)
	}
	e, ok := p.edgeNames[id]
	if !ok {
		return zero, fmt.Errorf("EdgeName(%v): edge: %w", child, ErrUnknownName)
	}

	return e, nil
}

// LookupEdge returns the names of the endpoints of the edge called edge.
//
// Errors:
//   - ErrUnknownName if the edge or one of its endpoints is unnamed.
func (p *Path[V, E]) LookupEdge(edge E) (parent, child V, err error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	id, ok := p.edgeByName[edge]
	if !ok {
		return parent, child, fmt.Errorf("LookupEdge(%v): %w", edge, ErrUnknownName)
	}
	child, okC := p.names[id]
	parent, okP := p.names[p.path.Parent(id)]
	if !okC || !okP {
		return parent, child, fmt.Errorf("LookupEdge(%v): endpoint: %w", edge, ErrUnknownName)
	}

	return parent, child, nil
}

// Bag returns the bag of the node called name.
//
// Errors:
//   - ErrUnknownName.
func (p *Path[V, E]) Bag(name V) ([]hypergraph.Vertex, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	id, err := p.lookupLocked(name)
	if err != nil {
		return nil, fmt.Errorf("Bag(%v): %w", name, err)
	}

	return p.path.Bag(id), nil
}

// SetBag replaces the bag of the node called name.
//
// Errors:
//   - ErrUnknownName.
func (p *Path[V, E]) SetBag(name V, bag []hypergraph.Vertex) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	id, err := p.lookupLocked(name)
	if err != nil {
		return fmt.Errorf("SetBag(%v): %w", name, err)
	}

	return p.path.SetBag(id, bag)
}

// SetLabel stores l under label on the node called name.
func (p *Path[V, E]) SetLabel(name V, label string, l decomposition.Label) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	id, err := p.lookupLocked(name)
	if err != nil {
		return fmt.Errorf("SetLabel(%v, %q): %w", name, label, err)
	}

	return p.path.SetLabel(label, id, l)
}

// Label returns the label stored under label on the node called name.
//
// Errors:
//   - ErrUnknownName.
//   - decomposition.ErrLabelNotFound.
func (p *Path[V, E]) Label(name V, label string) (decomposition.Label, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	id, err := p.lookupLocked(name)
	if err != nil {
		return nil, fmt.Errorf("Label(%v, %q): %w", name, label, err)
	}
	l, ok := p.path.Label(label, id)
	if !ok {
		return nil, fmt.Errorf("Label(%v, %q): %w", name, label, decomposition.ErrLabelNotFound)
	}

	return l, nil
}

func (p *Path[V, E]) lookupLocked(name V) (decomposition.NodeID, error) {
	id, ok := p.byName[name]
	if !ok {
		return decomposition.NoNode, ErrUnknownName
	}

	return id, nil
}

func (p *Path[V, E]) bindLocked(id decomposition.NodeID, name V) {
	if old, ok := p.names[id]; ok {
		delete(p.byName, old)
	}
	p.names[id] = name
	p.byName[name] = id
}

// pruneLocked drops names of removed nodes and edge names of nodes that
// became the root.
func (p *Path[V, E]) pruneLocked() {
	for id, n := range p.names {
		if !p.path.IsNode(id) {
			delete(p.names, id)
			delete(p.byName, n)
		}
	}
	for id, e := range p.edgeNames {
		if !p.path.IsNode(id) || p.path.IsRoot(id) {
			delete(p.edgeNames, id)
			delete(p.edgeByName, e)
		}
	}
}
