// File: tree.go
// Role: Rooted tree and path decompositions.
//
// Structure:
//   - Each node has at most one parent; children keep insertion order.
//   - KindPath additionally caps every node at one child; mutations that
//     would break the cap fail with ErrPathBranching and change nothing.
//   - An empty tree has Root() == NoNode.

package decomposition

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/treedec/hypergraph"
	"github.com/katalvlaran/treedec/sets"
)

// Tree is a mutable rooted decomposition. Use NewTree or NewPath.
type Tree struct {
	nodeStore
	kind Kind
	root NodeID
}

// NewTree returns an empty tree decomposition.
func NewTree() *Tree {
	return &Tree{kind: KindTree}
}

// NewPath returns an empty path decomposition.
func NewPath() *Tree {
	return &Tree{kind: KindPath}
}

// Kind reports whether t is a tree or a path decomposition.
func (t *Tree) Kind() Kind {
	return t.kind
}

// Root returns the root node, or NoNode when t is empty.
func (t *Tree) Root() NodeID {
	return t.root
}

// InsertRoot creates the root with an empty bag and returns it. On a
// non-empty tree the existing root is returned unchanged.
func (t *Tree) InsertRoot() NodeID {
	if t.root == NoNode {
		t.root = t.alloc(nil)
	}

	return t.root
}

// IsRoot reports whether id is the root.
func (t *Tree) IsRoot(id NodeID) bool {
	return id != NoNode && id == t.root
}

// Parent returns the parent of id (NoNode for the root or an unknown node).
func (t *Tree) Parent(id NodeID) NodeID {
	n := t.get(id)
	if n == nil {
		return NoNode
	}

	return n.parent
}

// Children returns the children of id in insertion order.
func (t *Tree) Children(id NodeID) []NodeID {
	n := t.get(id)
	if n == nil || len(n.children) == 0 {
		return nil
	}

	return append([]NodeID(nil), n.children...)
}

// ChildCount returns the number of children of id.
func (t *Tree) ChildCount(id NodeID) int {
	n := t.get(id)
	if n == nil {
		return 0
	}

	return len(n.children)
}

// IsLeaf reports whether id is a live node without children.
func (t *Tree) IsLeaf(id NodeID) bool {
	n := t.get(id)

	return n != nil && len(n.children) == 0
}

// IsJoin reports whether id has more than one child.
func (t *Tree) IsJoin(id NodeID) bool {
	return t.ChildCount(id) > 1
}

// Leaves returns every leaf in ascending order.
func (t *Tree) Leaves() []NodeID {
	var out []NodeID
	for _, id := range t.Nodes() {
		if t.IsLeaf(id) {
			out = append(out, id)
		}
	}

	return out
}

// Neighbors returns the parent and children of id, ascending.
func (t *Tree) Neighbors(id NodeID) []NodeID {
	n := t.get(id)
	if n == nil {
		return nil
	}
	out := append([]NodeID(nil), n.children...)
	if n.parent != NoNode {
		out = append(out, n.parent)
	}
	slices.Sort(out)

	return out
}

// EdgeCount returns the number of tree edges.
func (t *Tree) EdgeCount() int {
	if t.count == 0 {
		return 0
	}

	return t.count - 1
}

// Depth returns the number of edges between id and the root (-1 if unknown).
func (t *Tree) Depth(id NodeID) int {
	if t.get(id) == nil {
		return -1
	}
	d := 0
	for p := t.Parent(id); p != NoNode; p = t.Parent(p) {
		d++
	}

	return d
}

// AddChild appends a new node with an empty bag below parent.
//
// Errors:
//   - ErrNodeNotFound if parent does not exist.
//   - ErrPathBranching if t is a path and parent already has a child.
func (t *Tree) AddChild(parent NodeID) (NodeID, error) {
	p, err := t.must("AddChild", parent)
	if err != nil {
		return NoNode, err
	}
	if t.kind == KindPath && len(p.children) > 0 {
		return NoNode, fmt.Errorf("AddChild(%d): %w", parent, ErrPathBranching)
	}
	id := t.alloc(nil)
	t.get(id).parent = parent
	p.children = append(p.children, id)

	return id, nil
}

// AddParent inserts a new node with an empty bag between id and its parent,
// taking id's position among the parent's children. Above the root it
// becomes the new root.
func (t *Tree) AddParent(id NodeID) (NodeID, error) {
	n, err := t.must("AddParent", id)
	if err != nil {
		return NoNode, err
	}
	nid := t.alloc(nil)
	mid := t.get(nid)
	mid.parent = n.parent
	mid.children = []NodeID{id}
	if n.parent == NoNode {
		t.root = nid
	} else {
		p := t.get(n.parent)
		p.children[slices.Index(p.children, id)] = nid
	}
	n.parent = nid

	return nid, nil
}

// RemoveVertex deletes id and lifts its children into its place below its
// parent. Removing the root promotes its only child (or empties the tree).
//
// Errors:
//   - ErrNodeNotFound if id does not exist.
//   - ErrInvalidOperation when removing a root with several children.
func (t *Tree) RemoveVertex(id NodeID) error {
	n, err := t.must("RemoveVertex", id)
	if err != nil {
		return err
	}
	if n.parent == NoNode {
		switch len(n.children) {
		case 0:
			t.root = NoNode
		case 1:
			t.root = n.children[0]
			t.get(t.root).parent = NoNode
		default:
			return fmt.Errorf("RemoveVertex(%d): root has %d children: %w", id, len(n.children), ErrInvalidOperation)
		}
		t.free(id)

		return nil
	}

	p := t.get(n.parent)
	if t.kind == KindPath && len(p.children)-1+len(n.children) > 1 {
		return fmt.Errorf("RemoveVertex(%d): %w", id, ErrPathBranching)
	}
	pos := slices.Index(p.children, id)
	p.children = slices.Replace(p.children, pos, pos+1, n.children...)
	for _, c := range n.children {
		t.get(c).parent = n.parent
	}
	t.free(id)

	return nil
}

// RemoveChild deletes child and its whole subtree from below parent.
//
// Errors:
//   - ErrNodeNotFound if either node is missing or child is not a child of parent.
func (t *Tree) RemoveChild(parent, child NodeID) error {
	if _, err := t.must("RemoveChild", parent); err != nil {
		return err
	}
	c, err := t.must("RemoveChild", child)
	if err != nil {
		return err
	}
	if c.parent != parent {
		return fmt.Errorf("RemoveChild(%d, %d): not a child: %w", parent, child, ErrNodeNotFound)
	}

	return t.RemoveSubtree(child)
}

// RemoveSubtree deletes id and all of its descendants.
func (t *Tree) RemoveSubtree(id NodeID) error {
	n, err := t.must("RemoveSubtree", id)
	if err != nil {
		return err
	}
	if n.parent == NoNode {
		t.root = NoNode
	} else {
		p := t.get(n.parent)
		p.children = slices.DeleteFunc(p.children, func(c NodeID) bool { return c == id })
	}
	stack := []NodeID{id}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = append(stack, t.get(top).children...)
		t.free(top)
	}

	return nil
}

// Reparent moves the subtree rooted at id below newParent, appended as its
// last child.
//
// Errors:
//   - ErrNodeNotFound for unknown nodes.
//   - ErrInvalidOperation if id is the root or newParent lies in id's subtree.
//   - ErrPathBranching if t is a path and newParent already has another child.
func (t *Tree) Reparent(id, newParent NodeID) error {
	n, err := t.must("Reparent", id)
	if err != nil {
		return err
	}
	np, err := t.must("Reparent", newParent)
	if err != nil {
		return err
	}
	if n.parent == newParent {
		return nil
	}
	if n.parent == NoNode {
		return fmt.Errorf("Reparent(%d, %d): root: %w", id, newParent, ErrInvalidOperation)
	}
	for a := newParent; a != NoNode; a = t.Parent(a) {
		if a == id {
			return fmt.Errorf("Reparent(%d, %d): cycle: %w", id, newParent, ErrInvalidOperation)
		}
	}
	if t.kind == KindPath && len(np.children) > 0 {
		return fmt.Errorf("Reparent(%d, %d): %w", id, newParent, ErrPathBranching)
	}
	old := t.get(n.parent)
	old.children = slices.DeleteFunc(old.children, func(c NodeID) bool { return c == id })
	np.children = append(np.children, id)
	n.parent = newParent

	return nil
}

// ForgottenVertices returns bag(child) \ bag(node): the vertices node forgets
// with respect to child.
func (t *Tree) ForgottenVertices(node, child NodeID) []hypergraph.Vertex {
	a, b := t.get(node), t.get(child)
	if a == nil || b == nil {
		return nil
	}

	return sets.Difference(b.bag, a.bag)
}

// ForgottenVertexCount returns |ForgottenVertices(node, child)|.
func (t *Tree) ForgottenVertexCount(node, child NodeID) int {
	a, b := t.get(node), t.get(child)
	if a == nil || b == nil {
		return 0
	}

	return sets.DifferenceSize(b.bag, a.bag)
}

// IntroducedVertices returns bag(node) \ bag(child): the vertices node
// introduces with respect to child.
func (t *Tree) IntroducedVertices(node, child NodeID) []hypergraph.Vertex {
	a, b := t.get(node), t.get(child)
	if a == nil || b == nil {
		return nil
	}

	return sets.Difference(a.bag, b.bag)
}

// IntroducedVertexCount returns |IntroducedVertices(node, child)|.
func (t *Tree) IntroducedVertexCount(node, child NodeID) int {
	a, b := t.get(node), t.get(child)
	if a == nil || b == nil {
		return 0
	}

	return sets.DifferenceSize(a.bag, b.bag)
}

// Clone returns a deep copy of t with identical node IDs.
func (t *Tree) Clone() *Tree {
	return &Tree{nodeStore: t.cloneStore(), kind: t.kind, root: t.root}
}
