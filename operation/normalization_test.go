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
)

type fixture struct {
	name  string
	g     *hypergraph.Hypergraph
	order elimination.Ordering
}

func fixtures(t *testing.T) []fixture {
	return []fixture{
		{name: "grid", g: graph(t, nil, builder.Grid(3, 4))},
		{name: "wheel", g: graph(t, nil, builder.Wheel(7))},
		{name: "forest", g: graph(t, nil, builder.Path(3), builder.Path(3), builder.Star(3))},
		{name: "star-leaves-first", g: graph(t, nil, builder.Star(5)), order: elimination.Ordering{2, 3, 4, 5, 1}},
		{name: "random", g: graph(t, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomUniform(25, 35, 3))},
	}
}

func TestNormalization_Properties(t *testing.T) {
	options := []struct {
		name string
		opts []operation.NormalizationOption
	}{
		{name: "plain"},
		{name: "empty-root", opts: []operation.NormalizationOption{operation.WithEmptyRoot()}},
		{name: "empty-leaves", opts: []operation.NormalizationOption{operation.WithEmptyLeaves()}},
		{name: "join-parent", opts: []operation.NormalizationOption{operation.WithIdenticalJoinNodeParent()}},
		{name: "leaf-introduce", opts: []operation.NormalizationOption{operation.WithLeafNodesAsIntroduceNodes()}},
		{name: "all", opts: []operation.NormalizationOption{
			operation.WithEmptyRoot(), operation.WithEmptyLeaves(),
			operation.WithIdenticalJoinNodeParent(), operation.WithLeafNodesAsIntroduceNodes(),
		}},
	}
	for _, f := range fixtures(t) {
		for _, o := range options {
			t.Run(f.name+"/"+o.name, func(t *testing.T) {
				tr := decompose(t, f.g, f.order)
				norm := operation.NewNormalization(o.opts...)
				require.NoError(t, norm.ApplyTree(tr, operation.Scope{}))

				require.NoError(t, decomposition.Validate(f.g, tr))
				assertNormalized(t, tr)
				assertInduced(t, f.g, tr)

				if norm.EmptyRootRequired() {
					assert.Zero(t, tr.BagSize(tr.Root()))
				}
				for _, l := range tr.Leaves() {
					if norm.EmptyLeavesRequired() {
						assert.Zero(t, tr.BagSize(l), "leaf %d", l)
					}
					if norm.LeafNodesTreatedAsIntroduceNodes() {
						assert.LessOrEqual(t, tr.BagSize(l), 1, "leaf %d", l)
					}
				}
				if norm.IdenticalJoinNodeParentRequired() {
					for _, n := range tr.Nodes() {
						if tr.IsJoin(n) {
							p := tr.Parent(n)
							require.NotEqual(t, decomposition.NoNode, p, "join %d has a parent", n)
							assert.Equal(t, tr.Bag(n), tr.Bag(p))
						}
					}
				}
			})
		}
	}
}

func TestNormalization_Idempotent(t *testing.T) {
	g := graph(t, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomUniform(20, 30, 3))
	tr := decompose(t, g, nil)
	norm := operation.NewNormalization(operation.WithEmptyRoot(), operation.WithIdenticalJoinNodeParent())

	var first operation.ChangeLog
	require.NoError(t, norm.ApplyTree(tr, operation.Scope{Log: &first}))
	assert.NotEmpty(t, first.Created)
	assert.Empty(t, first.Removed)
	size := tr.NodeCount()

	var again operation.ChangeLog
	require.NoError(t, norm.ApplyTree(tr, operation.Scope{Log: &again}))
	assert.Empty(t, again.Created, "a normalized tree stays unchanged")

	var focused operation.ChangeLog
	require.NoError(t, norm.ApplyTree(tr, operation.Scope{Relevant: []decomposition.NodeID{}, Log: &focused}))
	assert.Empty(t, focused.Created)
	assert.Equal(t, size, tr.NodeCount())
}

// The focus grows with every stage: nodes created by one stage are inspected
// by the next.
func TestNormalization_FocusChaining(t *testing.T) {
	g := graph(t, nil, builder.Hyperedges([]int{0, 1, 2}, []int{2, 3, 4}))
	tr := decomposition.NewTree()
	n := build(t, tr, g, []int{-1, 0}, vs{1, 2, 3}, vs{3, 4, 5})

	var log operation.ChangeLog
	scope := operation.Scope{Relevant: []decomposition.NodeID{n[1]}, Log: &log}
	require.NoError(t, operation.NewNormalization().ApplyTree(tr, scope))

	assert.Len(t, log.Created, 3)
	assert.Equal(t, []vs{{1, 2, 3}, {1, 3}, {3}, {3, 5}, {3, 4, 5}}, bagsPreOrder(tr))
	assertNormalized(t, tr)
	assertInduced(t, g, tr)
	require.NoError(t, decomposition.Validate(g, tr))
}

// A join node with three children whose bags differ from it: each child gets
// a join-bag copy, an exchange split where both directions occur, and one
// chain node per surplus forgotten or introduced vertex.
func TestNormalization_ThreeChildJoin(t *testing.T) {
	g := graph(t, nil, builder.Hyperedges([]int{0, 1, 3, 4}, []int{1, 2, 5}, []int{0, 2}, []int{0, 1, 2}))
	bags := []vs{{1, 2, 3}, {1, 2, 4, 5}, {2, 3, 6}, {1, 3}}
	parents := []int{-1, 0, 0, 0}

	t.Run("normalization", func(t *testing.T) {
		tr := decomposition.NewTree()
		build(t, tr, g, parents, bags...)
		var log operation.ChangeLog
		require.NoError(t, operation.NewNormalization().ApplyTree(tr, operation.Scope{Log: &log}))

		// child 1: copy + exchange + one forget step; child 2: copy + exchange; child 3: copy.
		assert.Len(t, log.Created, 3+2+1)
		assert.Equal(t, 10, tr.NodeCount())
		assert.Equal(t, 1, decomposition.JoinNodeCount(tr))
		assertNormalized(t, tr)
		assertInduced(t, g, tr)
		require.NoError(t, decomposition.Validate(g, tr))
	})

	t.Run("binary joins first", func(t *testing.T) {
		tr := decomposition.NewTree()
		build(t, tr, g, parents, bags...)
		var log operation.ChangeLog
		require.NoError(t, operation.NewLimitChildCount(2).ApplyTree(tr, operation.Scope{Log: &log}))
		require.NoError(t, operation.NewNormalization().ApplyTree(tr, operation.Scope{Log: &log}))

		assert.Len(t, log.Created, 1+6)
		assert.Equal(t, 2, decomposition.JoinNodeCount(tr))
		for _, n := range tr.Nodes() {
			assert.LessOrEqual(t, tr.ChildCount(n), 2)
		}
		assertNormalized(t, tr)
		require.NoError(t, decomposition.Validate(g, tr))
	})
}

func TestNormalization_Path(t *testing.T) {
	g := graph(t, nil, builder.Path(4))
	p := decomposition.NewPath()
	build(t, p, g, []int{-1, 0, 1}, vs{3, 4}, vs{2, 3}, vs{1, 2})

	norm := operation.NewNormalization(operation.WithEmptyRoot(), operation.WithEmptyLeaves())
	require.NoError(t, norm.ApplyPath(p, operation.Scope{}))

	assert.Equal(t, decomposition.KindPath, p.Kind())
	assert.Equal(t, []vs{{}, {4}, {3, 4}, {3}, {2, 3}, {2}, {1, 2}, {1}, {}}, bagsPreOrder(p))
	assertInduced(t, g, p)
	require.NoError(t, decomposition.Validate(g, p))
}

func TestNormalization_LeavesAsIntroduceTreeOnly(t *testing.T) {
	g := graph(t, nil, builder.Path(4))
	norm := operation.NewNormalization(operation.WithLeafNodesAsIntroduceNodes())

	p := decomposition.NewPath()
	build(t, p, g, []int{-1, 0, 1}, vs{3, 4}, vs{2, 3}, vs{1, 2})
	require.NoError(t, norm.ApplyPath(p, operation.Scope{}))
	assert.Equal(t, []vs{{3, 4}, {3}, {2, 3}, {2}, {1, 2}}, bagsPreOrder(p))

	tr := decomposition.NewTree()
	build(t, tr, g, []int{-1, 0, 1}, vs{3, 4}, vs{2, 3}, vs{1, 2})
	require.NoError(t, norm.ApplyTree(tr, operation.Scope{}))
	assert.Equal(t, []vs{{3, 4}, {3}, {2, 3}, {2}, {1, 2}, {1}}, bagsPreOrder(tr))
	require.NoError(t, decomposition.Validate(g, tr))
}

func TestNormalization_LabelsCreatedNodes(t *testing.T) {
	g := graph(t, nil, builder.Cycle(5))
	tr := decompose(t, g, nil)
	before := tr.Nodes()

	size := operation.NewFuncLabeling("size", func(bag []hypergraph.Vertex, _ decomposition.Labels) (decomposition.Label, error) {
		return decomposition.Value[int]{V: len(bag)}, nil
	})
	var log operation.ChangeLog
	scope := operation.Scope{Log: &log, Labelers: []operation.LabelingFunction{size}}
	require.NoError(t, operation.NewNormalization(operation.WithEmptyLeaves()).ApplyTree(tr, scope))

	require.NotEmpty(t, log.Created)
	for _, id := range log.Created {
		l, ok := decomposition.LabelOf[decomposition.Value[int]](tr, "size", id)
		require.True(t, ok, "node %d", id)
		assert.Equal(t, tr.BagSize(id), l.V)
	}
	for _, id := range before {
		assert.False(t, tr.IsLabeled("size", id), "pre-existing node %d", id)
	}
}

func TestSemiNormalization_Joins(t *testing.T) {
	g := graph(t, nil, builder.Hyperedges([]int{0, 2}, []int{1, 3}, []int{0, 1}))
	bags := []vs{{1, 2}, {1, 3}, {2, 4}, {1, 2}}
	parents := []int{-1, 0, 0, 0}

	tests := []struct {
		name    string
		opts    []operation.NormalizationOption
		created int
	}{
		{name: "children only", created: 2},
		{name: "identical parent", opts: []operation.NormalizationOption{operation.WithIdenticalJoinNodeParent()}, created: 3},
		{name: "empty leaves", opts: []operation.NormalizationOption{operation.WithEmptyLeaves()}, created: 2 + 3},
		{name: "empty root", opts: []operation.NormalizationOption{operation.WithEmptyRoot()}, created: 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := decomposition.NewTree()
			n := build(t, tr, g, parents, bags...)
			var log operation.ChangeLog
			require.NoError(t, operation.NewSemiNormalization(tc.opts...).ApplyTree(tr, operation.Scope{Log: &log}))

			assert.Len(t, log.Created, tc.created)
			for _, c := range tr.Children(n[0]) {
				assert.Equal(t, vs{1, 2}, tr.Bag(c))
			}
			assertInduced(t, g, tr)
			require.NoError(t, decomposition.Validate(g, tr))
		})
	}
}

func TestExchangeNodeReplacement(t *testing.T) {
	tr := decomposition.NewTree()
	build(t, tr, nil, []int{-1, 0, 0}, vs{1, 2}, vs{2, 3}, vs{1, 4})

	var log operation.ChangeLog
	require.NoError(t, operation.NewExchangeNodeReplacement().ApplyTree(tr, operation.Scope{Log: &log}))
	assert.Empty(t, log.Created, "join children are left alone")

	p := decomposition.NewPath()
	build(t, p, nil, []int{-1, 0}, vs{1, 2}, vs{2, 3})
	require.NoError(t, operation.NewExchangeNodeReplacement().ApplyPath(p, operation.Scope{Log: &log}))
	assert.Len(t, log.Created, 1)
	assert.Equal(t, []vs{{1, 2}, {2}, {2, 3}}, bagsPreOrder(p))
}

func TestLimitMaximumForgottenVertexCount(t *testing.T) {
	tests := []struct {
		limit int
		want  []vs
	}{
		{limit: 1, want: []vs{{1}, {1, 4}, {1, 3, 4}, {1, 2, 3, 4}}},
		{limit: 2, want: []vs{{1}, {1, 4}, {1, 2, 3, 4}}},
		{limit: 3, want: []vs{{1}, {1, 2, 3, 4}}},
	}
	for _, tc := range tests {
		tr := decomposition.NewTree()
		build(t, tr, nil, []int{-1, 0}, vs{1}, vs{1, 2, 3, 4})
		op := operation.NewLimitMaximumForgottenVertexCount(tc.limit)
		require.NoError(t, op.ApplyTree(tr, operation.Scope{}))
		assert.Equal(t, tc.want, bagsPreOrder(tr), "limit %d", tc.limit)
	}
}

func TestLimitMaximumIntroducedVertexCount(t *testing.T) {
	tests := []struct {
		name   string
		limit  int
		leaves bool
		bags   []vs
		want   []vs
	}{
		{name: "limit 1", limit: 1, bags: []vs{{1, 2, 3, 4}, {1}}, want: []vs{{1, 2, 3, 4}, {1, 2, 3}, {1, 2}, {1}}},
		{name: "limit 2", limit: 2, bags: []vs{{1, 2, 3, 4}, {1}}, want: []vs{{1, 2, 3, 4}, {1, 2, 3}, {1}}},
		{name: "leaf ignored", limit: 1, bags: []vs{{1, 2, 3}}, want: []vs{{1, 2, 3}}},
		{name: "leaf limit 1", limit: 1, leaves: true, bags: []vs{{1, 2, 3}}, want: []vs{{1, 2, 3}, {1, 2}, {1}}},
		{name: "leaf limit 2", limit: 2, leaves: true, bags: []vs{{1, 2, 3}}, want: []vs{{1, 2, 3}, {1}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := decomposition.NewTree()
			parents := []int{-1, 0}[:len(tc.bags)]
			build(t, tr, nil, parents, tc.bags...)
			op := operation.NewLimitMaximumIntroducedVertexCount(tc.limit, tc.leaves)
			assert.Equal(t, tc.leaves, op.LeafNodesTreatedAsIntroduceNodes())
			require.NoError(t, op.ApplyTree(tr, operation.Scope{}))
			assert.Equal(t, tc.want, bagsPreOrder(tr))
		})
	}
}

func TestConstructors_PanicOnBadLimits(t *testing.T) {
	assert.Panics(t, func() { operation.NewLimitMaximumForgottenVertexCount(0) })
	assert.Panics(t, func() { operation.NewLimitMaximumIntroducedVertexCount(0, false) })
	assert.Panics(t, func() { operation.NewLimitChildCount(1) })
	assert.Panics(t, func() { operation.NewFuncLabeling("x", nil) })
}
