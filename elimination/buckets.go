// SPDX-License-Identifier: MIT
// Package: treedec/elimination
//
// buckets.go — bucket elimination.
//
// Stages:
//  1. Seed: bucket(v) = {v}; each hyperedge is added to the bucket of its
//     earliest-eliminated endpoint.
//  2. Eliminate: for v in order, if bucket(v) holds other vertices, forward
//     bucket(v) \ {v} into bucket(m), m being the earliest-eliminated of
//     those vertices, and link v → m. The forwarded set is the clique of
//     fill edges created by eliminating v. Buckets without a link are roots.
//  3. Distribute: each hyperedge walks the link tree from its seed bucket
//     with an explicit stack and is recorded at every bucket whose bag
//     contains it. lastAssigned[bucket] stops a second assignment.
//
// Complexity: O(Σ rank · log + n · w) for n vertices and width w.

package elimination

import (
	"fmt"

	"github.com/katalvlaran/treedec/hypergraph"
	"github.com/katalvlaran/treedec/sets"
)

// noBucket marks a root bucket in Buckets.link.
const noBucket = -1

// Buckets is the linked bucket structure. Buckets are addressed by
// elimination position; the struct is consumed by the assemblers.
type Buckets struct {
	order   Ordering
	bags    [][]hypergraph.Vertex
	link    []int // position of the bucket each bucket forwards to
	induced [][]hypergraph.Hyperedge
}

// Len returns the number of buckets (= vertices).
func (b *Buckets) Len() int { return len(b.order) }

// Order returns the elimination ordering the buckets were built from.
func (b *Buckets) Order() Ordering { return append(Ordering(nil), b.order...) }

// Bag returns the contents of the bucket at position i.
func (b *Buckets) Bag(i int) []hypergraph.Vertex {
	return append([]hypergraph.Vertex(nil), b.bags[i]...)
}

// Link returns the position bucket i forwards to, or false for a root bucket.
func (b *Buckets) Link(i int) (int, bool) {
	return b.link[i], b.link[i] != noBucket
}

// Induced returns the hyperedges contained in bucket i, ordered by ID.
func (b *Buckets) Induced(i int) []hypergraph.Hyperedge { return b.induced[i] }

// Roots returns the positions of root buckets, ascending.
func (b *Buckets) Roots() []int {
	var out []int
	for i, l := range b.link {
		if l == noBucket {
			out = append(out, i)
		}
	}

	return out
}

// Children returns, per position, the positions linking into it (ascending).
func (b *Buckets) Children() [][]int {
	out := make([][]int, len(b.link))
	for i, l := range b.link {
		if l != noBucket {
			out[l] = append(out[l], i)
		}
	}

	return out
}

// BuildBuckets runs bucket elimination over g in the given order.
//
// Errors:
//   - ErrInvalidOrdering (wrapping the precise cause) when order is not a
//     permutation of g's vertices. Nothing is built in that case.
func BuildBuckets(g hypergraph.View, order Ordering) (*Buckets, error) {
	if err := order.Validate(g); err != nil {
		return nil, fmt.Errorf("BuildBuckets: %w", err)
	}
	pos := order.Positions()
	n := len(order)
	b := &Buckets{
		order:   append(Ordering(nil), order...),
		bags:    make([][]hypergraph.Vertex, n),
		link:    make([]int, n),
		induced: make([][]hypergraph.Hyperedge, n),
	}
	for i, v := range order {
		b.bags[i] = []hypergraph.Vertex{v}
		b.link[i] = noBucket
	}

	edges := g.Hyperedges()
	sorted := make([][]hypergraph.Vertex, len(edges))
	seed := make([]int, len(edges))
	for i, e := range edges {
		sorted[i] = e.Sorted()
		seed[i] = minimumVertex(sorted[i], pos, hypergraph.NoVertex)
		b.bags[seed[i]] = sets.Union(b.bags[seed[i]], sorted[i])
	}

	for i, v := range order {
		bag := b.bags[i]
		if len(bag) <= 1 {
			continue
		}
		m := minimumVertex(bag, pos, v)
		b.bags[m] = sets.Union(b.bags[m], sets.Remove(bag, v))
		b.link[i] = m
	}

	b.distribute(edges, sorted, seed)

	return b, nil
}

// minimumVertex returns the elimination position of the earliest-eliminated
// vertex of set, skipping excluded. set must hold a non-excluded vertex.
func minimumVertex(set []hypergraph.Vertex, pos map[hypergraph.Vertex]int, excluded hypergraph.Vertex) int {
	best := -1
	for _, v := range set {
		if v == excluded {
			continue
		}
		if p := pos[v]; best < 0 || p < best {
			best = p
		}
	}

	return best
}

// distribute assigns every hyperedge to each bucket whose bag contains it.
func (b *Buckets) distribute(edges []hypergraph.Hyperedge, sorted [][]hypergraph.Vertex, seed []int) {
	children := b.Children()
	lastAssigned := make([]int, len(b.bags))
	for i := range lastAssigned {
		lastAssigned[i] = -1
	}

	var origin []int
	for ei, e := range edges {
		origin = append(origin[:0], seed[ei])
		lastAssigned[seed[ei]] = ei
		for len(origin) > 0 {
			cur := origin[len(origin)-1]
			origin = origin[:len(origin)-1]
			b.induced[cur] = append(b.induced[cur], e)

			next := children[cur]
			if l := b.link[cur]; l != noBucket {
				next = append(next[:len(next):len(next)], l)
			}
			for _, nb := range next {
				if lastAssigned[nb] != ei && sets.Includes(b.bags[nb], sorted[ei]) {
					lastAssigned[nb] = ei
					origin = append(origin, nb)
				}
			}
		}
	}
}
