// SPDX-License-Identifier: MIT

package operation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treedec/builder"
	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/elimination"
	"github.com/katalvlaran/treedec/hypergraph"
	"github.com/katalvlaran/treedec/sets"
)

type vs = []hypergraph.Vertex

func graph(t *testing.T, bopts []builder.BuilderOption, cons ...builder.Constructor) *hypergraph.Hypergraph {
	t.Helper()
	h, err := builder.BuildHypergraph(nil, bopts, cons...)
	require.NoError(t, err)

	return h
}

// decompose builds the bucket elimination tree of g for order (natural if nil).
func decompose(t *testing.T, g *hypergraph.Hypergraph, order elimination.Ordering) *decomposition.Tree {
	t.Helper()
	if order == nil {
		var err error
		order, err = elimination.NaturalOrdering{}.ComputeOrdering(g)
		require.NoError(t, err)
	}
	b, err := elimination.BuildBuckets(g, order)
	require.NoError(t, err)
	tr, err := elimination.AssembleTree(b)
	require.NoError(t, err)

	return tr
}

// build creates a tree (or path) where parents[i] is the index of node i's
// parent (-1 for the root, which must come first). With g non-nil every node
// gets the hyperedges its bag contains.
func build(t *testing.T, tr *decomposition.Tree, g hypergraph.View, parents []int, bags ...vs) []decomposition.NodeID {
	t.Helper()
	require.Len(t, bags, len(parents))
	ids := make([]decomposition.NodeID, len(bags))
	for i, p := range parents {
		if p < 0 {
			ids[i] = tr.InsertRoot()
		} else {
			id, err := tr.AddChild(ids[p])
			require.NoError(t, err)
			ids[i] = id
		}
		require.NoError(t, tr.SetBag(ids[i], bags[i]))
		if g != nil {
			require.NoError(t, tr.SetInducedHyperedges(ids[i], contained(g, bags[i])))
		}
	}

	return ids
}

func contained(g hypergraph.View, bag vs) []hypergraph.Hyperedge {
	var out []hypergraph.Hyperedge
	for _, e := range g.Hyperedges() {
		if sets.Includes(sets.Normalize(bag), e.Sorted()) {
			out = append(out, e)
		}
	}

	return out
}

func ids(es []hypergraph.Hyperedge) []hypergraph.EdgeID {
	var out []hypergraph.EdgeID
	for _, e := range es {
		out = append(out, e.ID)
	}

	return out
}

func bagsPreOrder(tr *decomposition.Tree) []vs {
	var out []vs
	for _, id := range tr.PreOrderNodes() {
		b := tr.Bag(id)
		if b == nil {
			b = vs{}
		}
		out = append(out, b)
	}

	return out
}

// assertNormalized checks the single-step property: a node with one child
// forgets and introduces at most one vertex each, and join children carry
// the join bag.
func assertNormalized(t *testing.T, tr *decomposition.Tree) {
	t.Helper()
	for _, n := range tr.Nodes() {
		children := tr.Children(n)
		switch {
		case len(children) == 1:
			c := children[0]
			assert.LessOrEqual(t, tr.ForgottenVertexCount(n, c), 1, "node %d forgets %v", n, tr.ForgottenVertices(n, c))
			assert.LessOrEqual(t, tr.IntroducedVertexCount(n, c), 1, "node %d introduces %v", n, tr.IntroducedVertices(n, c))
		case len(children) > 1:
			for _, c := range children {
				assert.Equal(t, tr.Bag(n), tr.Bag(c), "join %d child %d", n, c)
			}
		}
	}
}

// assertInduced checks that every node lists exactly the hyperedges its bag contains.
func assertInduced(t *testing.T, g hypergraph.View, tr *decomposition.Tree) {
	t.Helper()
	for _, n := range tr.Nodes() {
		assert.Equal(t, ids(contained(g, tr.Bag(n))), ids(tr.InducedHyperedges(n)), "node %d bag %v", n, tr.Bag(n))
	}
}
