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
	"github.com/katalvlaran/treedec/operation"
	"github.com/katalvlaran/treedec/sets"
)

// assertSubsetMaximal checks that no bag is contained in a neighbor's bag.
func assertSubsetMaximal(t *testing.T, d decomposition.Decomposition) {
	t.Helper()
	for _, n := range d.Nodes() {
		for _, m := range d.Neighbors(n) {
			assert.False(t, sets.Includes(d.Bag(m), d.Bag(n)), "bag %v of %d inside %v of %d", d.Bag(n), n, d.Bag(m), m)
		}
	}
}

func TestCompression_Tree(t *testing.T) {
	tr := decomposition.NewTree()
	// r{1,2,3} → a{1,2} → b{1,2,5}; r → c{3,4} → d{3,4}
	n := build(t, tr, nil, []int{-1, 0, 1, 0, 3}, vs{1, 2, 3}, vs{1, 2}, vs{1, 2, 5}, vs{3, 4}, vs{3, 4})
	r, a, b, c, d := n[0], n[1], n[2], n[3], n[4]

	var log operation.ChangeLog
	require.NoError(t, operation.NewCompression().ApplyTree(tr, operation.Scope{Log: &log}))

	assert.Equal(t, []decomposition.NodeID{a, d}, log.Removed)
	assert.Equal(t, []decomposition.NodeID{b, c}, tr.Children(r))
	assertSubsetMaximal(t, tr)
}

func TestCompression_PathAndRandom(t *testing.T) {
	p := decomposition.NewPath()
	build(t, p, nil, []int{-1, 0, 1}, vs{1}, vs{1, 2}, vs{2})
	require.NoError(t, operation.NewCompression().ApplyPath(p, operation.Scope{}))
	assert.Equal(t, 1, p.NodeCount())
	assert.Equal(t, vs{1, 2}, p.Bag(p.Root()))

	for _, f := range fixtures(t) {
		tr := decompose(t, f.g, f.order)
		require.NoError(t, operation.NewNormalization(operation.WithEmptyRoot(), operation.WithEmptyLeaves()).ApplyTree(tr, operation.Scope{}))
		require.NoError(t, operation.NewCompression().ApplyTree(tr, operation.Scope{}))
		require.NoError(t, decomposition.Validate(f.g, tr), f.name)
		assertSubsetMaximal(t, tr)
	}
}

func TestCompression_Graph(t *testing.T) {
	g := decomposition.NewGraph()
	n := make([]decomposition.NodeID, 4)
	for i, bag := range []vs{{1, 2}, {1, 2, 3}, {3, 4}, {1, 5}} {
		n[i] = g.AddNode()
		require.NoError(t, g.SetBag(n[i], bag))
	}
	require.NoError(t, g.AddEdge(n[0], n[1]))
	require.NoError(t, g.AddEdge(n[1], n[2]))
	require.NoError(t, g.AddEdge(n[0], n[3]))

	var log operation.ChangeLog
	require.NoError(t, operation.NewCompression().ApplyGraph(g, operation.Scope{Log: &log}))

	assert.Equal(t, []decomposition.NodeID{n[0]}, log.Removed)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []decomposition.NodeID{n[2], n[3]}, g.Neighbors(n[1]))
	assertSubsetMaximal(t, g)
}

func TestJoinNodeReplacement(t *testing.T) {
	g := graph(t, nil, builder.Hyperedges([]int{0, 2}, []int{1, 3}, []int{0, 1, 4}, []int{0, 1}))
	tr := decomposition.NewTree()
	build(t, tr, g, []int{-1, 0, 0, 0}, vs{1, 2}, vs{1, 3}, vs{2, 4}, vs{1, 2, 5})

	require.NoError(t, operation.NewJoinNodeReplacement(g).ApplyTree(tr, operation.Scope{}))

	assert.Zero(t, decomposition.JoinNodeCount(tr))
	assert.Equal(t, []vs{{1, 2}, {1, 2, 3}, {1, 2, 4}, {1, 2, 5}}, bagsPreOrder(tr))
	assertInduced(t, g, tr)
	require.NoError(t, decomposition.Validate(g, tr))
}

func TestJoinNodeReplacement_Random(t *testing.T) {
	for _, f := range fixtures(t) {
		tr := decompose(t, f.g, f.order)
		require.NoError(t, operation.NewCompression().ApplyTree(tr, operation.Scope{}))
		require.NoError(t, operation.NewJoinNodeReplacement(f.g).ApplyTree(tr, operation.Scope{}))

		assert.Zero(t, decomposition.JoinNodeCount(tr), f.name)
		require.NoError(t, decomposition.Validate(f.g, tr), f.name)
		assertInduced(t, f.g, tr)
	}
}

type liar struct{}

func (liar) Name() string                       { return "liar" }
func (liar) Capabilities() operation.Capability { return operation.Labeling | operation.TreeManipulation }
func (l liar) Clone() operation.Operation       { return l }
func (liar) ApplyTree(*decomposition.Tree, operation.Scope) error {
	return nil
}

func TestLimitChildCount(t *testing.T) {
	g := graph(t, nil, builder.Star(7))
	leavesFirst := elimination.Ordering{2, 3, 4, 5, 6, 7, 1}

	tests := []struct {
		limit   int
		created int
		joins   int
	}{
		{limit: 2, created: 4, joins: 5},
		{limit: 3, created: 2, joins: 3},
		{limit: 6, created: 0, joins: 1},
	}
	for _, tt := range tests {
		tr := decompose(t, g, leavesFirst)
		require.Equal(t, 6, tr.ChildCount(tr.Root()))

		var log operation.ChangeLog
		require.NoError(t, operation.NewLimitChildCount(tt.limit).ApplyTree(tr, operation.Scope{Log: &log}))
		assert.Len(t, log.Created, tt.created, "limit %d", tt.limit)
		assert.Equal(t, tt.joins, decomposition.JoinNodeCount(tr), "limit %d", tt.limit)
		for _, n := range tr.Nodes() {
			assert.LessOrEqual(t, tr.ChildCount(n), tt.limit)
		}
		for _, id := range log.Created {
			assert.Equal(t, vs{1}, tr.Bag(id))
		}
		require.NoError(t, decomposition.Validate(g, tr))
	}
}

func TestCheckCapabilities(t *testing.T) {
	g := graph(t, nil, builder.Path(2))
	ops := []operation.Operation{
		operation.NewNormalization(),
		operation.NewSemiNormalization(),
		operation.NewExchangeNodeReplacement(),
		operation.NewLimitMaximumForgottenVertexCount(1),
		operation.NewLimitMaximumIntroducedVertexCount(1, true),
		operation.NewLimitChildCount(2),
		operation.NewCompression(),
		operation.NewJoinNodeReplacement(g),
		operation.NewInducedSubgraphLabeling(g),
		operation.NewCoveringEdgesLabeling(g),
		operation.NewFuncLabeling("x", func([]hypergraph.Vertex, decomposition.Labels) (decomposition.Label, error) { return nil, nil }),
	}
	for _, op := range ops {
		assert.NoError(t, operation.CheckCapabilities(op), op.Name())
		c := op.Clone()
		assert.Equal(t, op.Name(), c.Name())
		assert.Equal(t, op.Capabilities(), c.Capabilities())
	}

	// Clones keep the configuration of stateful operations.
	type limited interface{ Limit() int }
	for _, op := range []operation.Operation{
		operation.NewLimitMaximumForgottenVertexCount(3),
		operation.NewLimitMaximumIntroducedVertexCount(4, true),
		operation.NewLimitChildCount(5),
	} {
		assert.Equal(t, op.(limited).Limit(), op.Clone().(limited).Limit(), op.Name())
	}
	in := operation.NewLimitMaximumIntroducedVertexCount(2, true).Clone().(*operation.LimitMaximumIntroducedVertexCount)
	assert.True(t, in.LeafNodesTreatedAsIntroduceNodes())
	norm := operation.NewNormalization(operation.WithEmptyRoot(), operation.WithLeafNodesAsIntroduceNodes()).Clone().(*operation.Normalization)
	assert.True(t, norm.EmptyRootRequired())
	assert.True(t, norm.LeafNodesTreatedAsIntroduceNodes())
	assert.False(t, norm.EmptyLeavesRequired())

	err := operation.CheckCapabilities(liar{})
	assert.ErrorIs(t, err, operation.ErrCapabilityMismatch)
	assert.Contains(t, err.Error(), "labeling")

	assert.Equal(t, "tree|path", (operation.TreeManipulation | operation.PathManipulation).String())
	assert.Equal(t, "none", operation.Capability(0).String())
	assert.True(t, operation.NewCompression().Capabilities().Has(operation.GraphManipulation))
}

func TestCoveringEdgesLabeling(t *testing.T) {
	g := graph(t, nil, builder.Hyperedges([]int{0, 1, 2}, []int{2, 3}, []int{3}, []int{0}))
	lf := operation.NewCoveringEdgesLabeling(g)
	assert.Equal(t, decomposition.CoveringEdgesLabel, lf.LabelName())

	tests := []struct {
		bag  vs
		want []hypergraph.EdgeID
	}{
		{bag: vs{1, 2, 3, 4}, want: []hypergraph.EdgeID{1, 2}},
		{bag: vs{4}, want: []hypergraph.EdgeID{2}},
		{bag: vs{1, 9}, want: []hypergraph.EdgeID{1}},
		{bag: nil, want: nil},
	}
	for _, tc := range tests {
		l, err := lf.ComputeLabel(tc.bag, nil)
		require.NoError(t, err)
		set, ok := l.(decomposition.HyperedgeSet)
		require.True(t, ok)
		assert.Equal(t, tc.want, ids(set), "bag %v", tc.bag)
	}

	_, err := operation.NewCoveringEdgesLabeling(nil).ComputeLabel(vs{1}, nil)
	assert.ErrorIs(t, err, operation.ErrNilGraph)
}
