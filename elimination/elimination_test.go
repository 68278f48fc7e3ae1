// SPDX-License-Identifier: MIT

package elimination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treedec/builder"
	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/elimination"
	"github.com/katalvlaran/treedec/hypergraph"
)

type vs = []hypergraph.Vertex

func build(t *testing.T, bopts []builder.BuilderOption, cons ...builder.Constructor) *hypergraph.Hypergraph {
	t.Helper()
	h, err := builder.BuildHypergraph(nil, bopts, cons...)
	require.NoError(t, err)

	return h
}

// bagsPreOrder lists bags in pre-order.
func bagsPreOrder(tr *decomposition.Tree) []vs {
	var out []vs
	for _, id := range tr.PreOrderNodes() {
		out = append(out, tr.Bag(id))
	}

	return out
}

func TestOrdering_Validate(t *testing.T) {
	h := build(t, nil, builder.Path(3))
	tests := []struct {
		name  string
		order elimination.Ordering
		cause error
	}{
		{name: "unknown", order: elimination.Ordering{1, 2, 3, 9}, cause: elimination.ErrUnknownVertex},
		{name: "duplicate", order: elimination.Ordering{1, 2, 2}, cause: elimination.ErrDuplicateVertex},
		{name: "missing", order: elimination.Ordering{3, 1}, cause: elimination.ErrMissingVertex},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := elimination.BuildBuckets(h, tc.order)
			assert.ErrorIs(t, err, elimination.ErrInvalidOrdering)
			assert.ErrorIs(t, err, tc.cause)

			_, err = elimination.FixedOrdering{Sequence: tc.order}.ComputeOrdering(h)
			assert.ErrorIs(t, err, tc.cause)
		})
	}

	o, err := elimination.NaturalOrdering{}.ComputeOrdering(h)
	require.NoError(t, err)
	assert.Equal(t, elimination.Ordering{1, 2, 3}, o)
	assert.Equal(t, map[hypergraph.Vertex]int{1: 0, 2: 1, 3: 2}, o.Positions())
}

func TestBuildBuckets_Path(t *testing.T) {
	h := build(t, nil, builder.Path(4))
	b, err := elimination.BuildBuckets(h, elimination.Ordering{1, 2, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, 4, b.Len())
	assert.Equal(t, []int{3}, b.Roots())
	for i, want := range []vs{{1, 2}, {2, 3}, {3, 4}, {4}} {
		assert.Equal(t, want, b.Bag(i), "bucket %d", i)
	}
	for i := 0; i < 3; i++ {
		l, ok := b.Link(i)
		require.True(t, ok)
		assert.Equal(t, i+1, l)
	}
	_, ok := b.Link(3)
	assert.False(t, ok)

	tr, err := elimination.AssembleTree(b)
	require.NoError(t, err)
	assert.Equal(t, []vs{{4}, {3, 4}, {2, 3}, {1, 2}}, bagsPreOrder(tr))
	assert.NoError(t, decomposition.Validate(h, tr))

	// Each hyperedge is induced exactly where the bag contains it.
	for _, id := range tr.Nodes() {
		for _, e := range tr.InducedHyperedges(id) {
			assert.Subset(t, tr.Bag(id), e.Elements)
		}
	}
	leaf := tr.Leaves()[0]
	require.Len(t, tr.InducedHyperedges(leaf), 1)
	assert.Equal(t, hypergraph.EdgeID(1), tr.InducedHyperedges(leaf)[0].ID)
	assert.Empty(t, tr.InducedHyperedges(tr.Root()))
}

// A star with center c eliminated last links every leaf bucket to c's
// bucket; minimal bags keep the root at {c} with one {c, leaf} child each.
func TestBuildBuckets_StarRootDetection(t *testing.T) {
	const k = 5
	h := build(t, nil, builder.Star(k+1)) // center 1, leaves 2..6
	order := elimination.Ordering{2, 3, 4, 5, 6, 1}
	b, err := elimination.BuildBuckets(h, order)
	require.NoError(t, err)
	assert.Equal(t, []int{k}, b.Roots())
	for i := 0; i < k; i++ {
		l, ok := b.Link(i)
		require.True(t, ok)
		assert.Equal(t, k, l, "every leaf bucket links to the center")
	}

	tr, err := elimination.AssembleTree(b)
	require.NoError(t, err)
	assert.Equal(t, vs{1}, tr.Bag(tr.Root()))
	assert.Equal(t, k, tr.ChildCount(tr.Root()))
	for i, c := range tr.Children(tr.Root()) {
		assert.Equal(t, vs{1, hypergraph.Vertex(i + 2)}, tr.Bag(c))
	}
	assert.NoError(t, decomposition.Validate(h, tr))
}

// Eliminating the center first creates the full fill clique.
func TestBuildBuckets_StarCenterFirst(t *testing.T) {
	h := build(t, nil, builder.Star(4))
	b, err := elimination.BuildBuckets(h, elimination.Ordering{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, vs{1, 2, 3, 4}, b.Bag(0))

	tr, err := elimination.AssembleTree(b)
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Width())
	assert.NoError(t, decomposition.Validate(h, tr))
}

func TestAssembleTree_ForestAndEmpty(t *testing.T) {
	h := build(t, nil, builder.Path(2), builder.Path(2))
	b, err := elimination.BuildBuckets(h, elimination.Ordering{1, 2, 3, 4})
	require.NoError(t, err)
	tr, err := elimination.AssembleTree(b)
	require.NoError(t, err)
	assert.Empty(t, tr.Bag(tr.Root()), "forest roots hang below an empty root")
	assert.Equal(t, 2, tr.ChildCount(tr.Root()))
	assert.Equal(t, []vs{{}, {2}, {1, 2}, {4}, {3, 4}}, normalizeEmpty(bagsPreOrder(tr)))
	assert.NoError(t, decomposition.Validate(h, tr))

	empty := build(t, nil)
	b, err = elimination.BuildBuckets(empty, nil)
	require.NoError(t, err)
	tr, err = elimination.AssembleTree(b)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.NodeCount())
	assert.Empty(t, tr.Bag(tr.Root()))
}

func normalizeEmpty(in []vs) []vs {
	for i := range in {
		if in[i] == nil {
			in[i] = vs{}
		}
	}

	return in
}

func TestAssembleGraph(t *testing.T) {
	h := build(t, nil, builder.Cycle(4))
	b, err := elimination.BuildBuckets(h, elimination.Ordering{1, 2, 3, 4})
	require.NoError(t, err)
	g, err := elimination.AssembleGraph(b)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.NoError(t, decomposition.Validate(h, g))
}

func TestBuildBuckets_Deterministic(t *testing.T) {
	h := build(t, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomUniform(30, 40, 3))
	order, err := elimination.NaturalOrdering{}.ComputeOrdering(h)
	require.NoError(t, err)

	first, err := elimination.BuildBuckets(h, order)
	require.NoError(t, err)
	t1, err := elimination.AssembleTree(first)
	require.NoError(t, err)
	for run := 0; run < 5; run++ {
		again, err := elimination.BuildBuckets(h, order)
		require.NoError(t, err)
		assert.Equal(t, first, again)
		t2, err := elimination.AssembleTree(again)
		require.NoError(t, err)
		assert.Equal(t, bagsPreOrder(t1), bagsPreOrder(t2))
		assert.Equal(t, t1.PreOrderNodes(), t2.PreOrderNodes())
	}
	assert.NoError(t, decomposition.Validate(h, t1))
}
