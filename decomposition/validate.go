// SPDX-License-Identifier: MIT
// Package: treedec/decomposition
//
// validate.go — decomposition invariants.
//
// Checks, in order:
//  1. Every bag vertex exists in the input graph.
//  2. Vertex coverage: every input vertex lies in some bag.
//  3. Edge coverage: every hyperedge's endpoint set lies in one bag.
//  4. Running intersection: for every vertex the nodes containing it induce
//     a connected subgraph of the decomposition.
//  5. Shape: a tree has |nodes|-1 edges reachable from the root; a path
//     never branches.
//
// Membership and reachability bookkeeping uses dense bit sets indexed by
// node position, keeping the connectivity check at O(|nodes|) words per vertex.

package decomposition

import (
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/treedec/hypergraph"
	"github.com/katalvlaran/treedec/sets"
)

// Validate reports the first invariant d violates with respect to g, wrapped
// around ErrInvalidDecomposition, or nil.
func Validate(g hypergraph.View, d Decomposition) error {
	nodes := d.Nodes()
	pos := make(map[NodeID]int, len(nodes))
	for i, id := range nodes {
		pos[id] = i
	}

	vertices := g.Vertices()
	vpos := make(map[hypergraph.Vertex]int, len(vertices))
	for i, v := range vertices {
		vpos[v] = i
	}

	// Node membership per vertex.
	members := make([]bits.Bits, len(vertices))
	for i := range members {
		members[i] = bits.New(len(nodes))
	}
	covered := bits.New(len(vertices))
	for i, id := range nodes {
		for _, v := range d.Bag(id) {
			j, ok := vpos[v]
			if !ok {
				return fmt.Errorf("Validate: node %d holds unknown vertex %d: %w", id, v, ErrInvalidDecomposition)
			}
			members[j].SetBit(i, 1)
			covered.SetBit(j, 1)
		}
	}
	if len(vertices) > 0 && !covered.AllOnes() {
		v := vertices[covered.ZeroFrom(0)]
		return fmt.Errorf("Validate: vertex %d not covered: %w", v, ErrInvalidDecomposition)
	}

	for _, e := range g.Hyperedges() {
		set := e.Sorted()
		found := false
		members[vpos[set[0]]].IterateOnes(func(i int) bool {
			found = sets.Includes(d.Bag(nodes[i]), set)
			return !found
		})
		if !found {
			return fmt.Errorf("Validate: hyperedge %d %v not covered: %w", e.ID, set, ErrInvalidDecomposition)
		}
	}

	for j, v := range vertices {
		if !connected(d, nodes, pos, members[j]) {
			return fmt.Errorf("Validate: nodes containing vertex %d are disconnected: %w", v, ErrInvalidDecomposition)
		}
	}

	if t, ok := d.(*Tree); ok {
		return validateShape(t)
	}

	return nil
}

// connected runs a search inside members starting from its lowest position.
func connected(d Decomposition, nodes []NodeID, pos map[NodeID]int, members bits.Bits) bool {
	first := members.OneFrom(0)
	if first < 0 {
		return true
	}
	seen := bits.New(len(nodes))
	seen.SetBit(first, 1)
	stack := []int{first}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range d.Neighbors(nodes[i]) {
			k := pos[nb]
			if members.Bit(k) == 1 && seen.Bit(k) == 0 {
				seen.SetBit(k, 1)
				stack = append(stack, k)
			}
		}
	}

	return seen.Equal(members)
}

func validateShape(t *Tree) error {
	if t.NodeCount() == 0 {
		return nil
	}
	if t.Root() == NoNode {
		return fmt.Errorf("Validate: nodes without root: %w", ErrInvalidDecomposition)
	}
	reached := 0
	err := t.PreOrder(func(id, _ NodeID, _ int) error {
		reached++
		if t.Kind() == KindPath && t.ChildCount(id) > 1 {
			return fmt.Errorf("Validate: path node %d has %d children: %w", id, t.ChildCount(id), ErrInvalidDecomposition)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if reached != t.NodeCount() {
		return fmt.Errorf("Validate: %d of %d nodes reachable from root: %w", reached, t.NodeCount(), ErrInvalidDecomposition)
	}

	return nil
}
