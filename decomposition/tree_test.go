// SPDX-License-Identifier: MIT
// Package decomposition_test verifies tree/path mutation contracts.

package decomposition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/hypergraph"
)

type vs = []hypergraph.Vertex

// chain builds root → c1 → c2 with the given bags.
func chain(t *testing.T, tr *decomposition.Tree, bags ...vs) []decomposition.NodeID {
	t.Helper()
	ids := []decomposition.NodeID{tr.InsertRoot()}
	require.NoError(t, tr.SetBag(ids[0], bags[0]))
	for _, b := range bags[1:] {
		id, err := tr.AddChild(ids[len(ids)-1])
		require.NoError(t, err)
		require.NoError(t, tr.SetBag(id, b))
		ids = append(ids, id)
	}

	return ids
}

func TestTree_InsertRootAndChildren(t *testing.T) {
	tr := decomposition.NewTree()
	assert.Equal(t, decomposition.NoNode, tr.Root())
	r := tr.InsertRoot()
	assert.Equal(t, r, tr.InsertRoot(), "second InsertRoot returns the existing root")
	assert.True(t, tr.IsRoot(r))

	a, err := tr.AddChild(r)
	require.NoError(t, err)
	b, err := tr.AddChild(r)
	require.NoError(t, err)
	assert.Equal(t, []decomposition.NodeID{a, b}, tr.Children(r))
	assert.True(t, tr.IsJoin(r))
	assert.Equal(t, []decomposition.NodeID{a, b}, tr.Leaves())
	assert.Equal(t, r, tr.Parent(a))
	assert.Equal(t, 1, tr.Depth(b))
	assert.Equal(t, 2, tr.EdgeCount())

	_, err = tr.AddChild(99)
	assert.ErrorIs(t, err, decomposition.ErrNodeNotFound)
}

func TestPath_RejectsBranching(t *testing.T) {
	p := decomposition.NewPath()
	assert.Equal(t, decomposition.KindPath, p.Kind())
	r := p.InsertRoot()
	c, err := p.AddChild(r)
	require.NoError(t, err)
	_, err = p.AddChild(r)
	assert.ErrorIs(t, err, decomposition.ErrPathBranching)
	assert.Equal(t, 2, p.NodeCount(), "failed mutation changes nothing")

	// Inserting above keeps the path linear.
	mid, err := p.AddParent(c)
	require.NoError(t, err)
	assert.Equal(t, []decomposition.NodeID{mid}, p.Children(r))
	assert.Equal(t, []decomposition.NodeID{c}, p.Children(mid))
}

func TestTree_AddParentAboveRoot(t *testing.T) {
	tr := decomposition.NewTree()
	ids := chain(t, tr, vs{1}, vs{1, 2})
	top, err := tr.AddParent(ids[0])
	require.NoError(t, err)
	assert.Equal(t, top, tr.Root())
	assert.Equal(t, []decomposition.NodeID{ids[0]}, tr.Children(top))
	assert.Empty(t, tr.Bag(top))
}

func TestTree_RemoveVertexLiftsChildren(t *testing.T) {
	tr := decomposition.NewTree()
	r := tr.InsertRoot()
	a, _ := tr.AddChild(r)
	b, _ := tr.AddChild(r)
	a1, _ := tr.AddChild(a)
	a2, _ := tr.AddChild(a)

	require.NoError(t, tr.RemoveVertex(a))
	assert.Equal(t, []decomposition.NodeID{a1, a2, b}, tr.Children(r), "children take the removed node's position")
	assert.Equal(t, r, tr.Parent(a1))
	assert.False(t, tr.IsNode(a))

	assert.ErrorIs(t, tr.RemoveVertex(r), decomposition.ErrInvalidOperation)
	require.NoError(t, tr.RemoveSubtree(a1))
	require.NoError(t, tr.RemoveChild(r, a2))
	require.NoError(t, tr.RemoveVertex(r))
	assert.Equal(t, b, tr.Root(), "a root with one child promotes it")
	require.NoError(t, tr.RemoveVertex(b))
	assert.Equal(t, decomposition.NoNode, tr.Root())
	assert.Zero(t, tr.NodeCount())
}

func TestTree_Reparent(t *testing.T) {
	tr := decomposition.NewTree()
	r := tr.InsertRoot()
	a, _ := tr.AddChild(r)
	b, _ := tr.AddChild(r)
	a1, _ := tr.AddChild(a)

	require.NoError(t, tr.Reparent(b, a1))
	assert.Equal(t, []decomposition.NodeID{a}, tr.Children(r))
	assert.Equal(t, a1, tr.Parent(b))

	assert.ErrorIs(t, tr.Reparent(a, b), decomposition.ErrInvalidOperation)
	assert.ErrorIs(t, tr.Reparent(r, a), decomposition.ErrInvalidOperation)
	assert.ErrorIs(t, tr.RemoveChild(r, b), decomposition.ErrNodeNotFound)
}

func TestTree_ForgottenIntroduced(t *testing.T) {
	tr := decomposition.NewTree()
	ids := chain(t, tr, vs{2, 3, 4}, vs{1, 2, 3})
	assert.Equal(t, vs{1}, tr.ForgottenVertices(ids[0], ids[1]))
	assert.Equal(t, 1, tr.ForgottenVertexCount(ids[0], ids[1]))
	assert.Equal(t, vs{4}, tr.IntroducedVertices(ids[0], ids[1]))
	assert.Equal(t, 1, tr.IntroducedVertexCount(ids[0], ids[1]))
	assert.Equal(t, 3, tr.MaxBagSize())
	assert.Equal(t, 2, tr.Width())
	assert.Equal(t, vs{1, 2, 3, 4}, tr.Vertices())
}

func TestTree_BagsAndLabels(t *testing.T) {
	tr := decomposition.NewTree()
	r := tr.InsertRoot()
	require.NoError(t, tr.SetBag(r, vs{3, 1, 3}))
	assert.Equal(t, vs{1, 3}, tr.Bag(r), "bags are normalized")

	bag := tr.Bag(r)
	bag[0] = 9
	assert.Equal(t, vs{1, 3}, tr.Bag(r), "Bag returns a copy")

	require.NoError(t, tr.SetLabel("cover", r, decomposition.VertexSet{1}))
	l, ok := decomposition.LabelOf[decomposition.VertexSet](tr, "cover", r)
	require.True(t, ok)
	l[0] = 7
	again, _ := decomposition.LabelOf[decomposition.VertexSet](tr, "cover", r)
	assert.Equal(t, decomposition.VertexSet{1}, again, "labels are cloned on read")

	_, ok = decomposition.LabelOf[decomposition.HyperedgeSet](tr, "cover", r)
	assert.False(t, ok, "wrong type")

	snap := tr.ExportLabels(r)
	require.NoError(t, tr.SetLabel("cover", r, decomposition.Value[int]{V: 5}))
	assert.Equal(t, decomposition.VertexSet{1}, snap["cover"], "snapshots do not see later writes")
	assert.Equal(t, []string{"cover"}, tr.LabelNames())

	require.NoError(t, tr.RemoveLabel("cover", r))
	assert.False(t, tr.IsLabeled("cover", r))
	assert.ErrorIs(t, tr.SetLabel("x", 42, decomposition.VertexSet{}), decomposition.ErrNodeNotFound)
}

func TestTree_SetLabelCopiesValue(t *testing.T) {
	tr := decomposition.NewTree()
	r := tr.InsertRoot()

	cover := decomposition.VertexSet{1, 2}
	require.NoError(t, tr.SetLabel("cover", r, cover))
	cover[0] = 9

	edges := decomposition.HyperedgeSet{{ID: 4}}
	require.NoError(t, tr.SetLabel("edges", r, edges))
	edges[0].ID = 8

	got, ok := decomposition.LabelOf[decomposition.VertexSet](tr, "cover", r)
	require.True(t, ok)
	assert.Equal(t, decomposition.VertexSet{1, 2}, got, "caller writes do not reach the stored label")
	gotEdges, ok := decomposition.LabelOf[decomposition.HyperedgeSet](tr, "edges", r)
	require.True(t, ok)
	assert.Equal(t, decomposition.HyperedgeSet{{ID: 4}}, gotEdges)
}

func TestTree_CloneIsIndependent(t *testing.T) {
	tr := decomposition.NewTree()
	ids := chain(t, tr, vs{1}, vs{1, 2})
	require.NoError(t, tr.SetLabel("l", ids[1], decomposition.VertexSet{2}))

	c := tr.Clone()
	require.NoError(t, c.SetBag(ids[1], vs{5}))
	_, err := c.AddChild(ids[1])
	require.NoError(t, err)

	assert.Equal(t, vs{1, 2}, tr.Bag(ids[1]))
	assert.Equal(t, 2, tr.NodeCount())
	assert.Equal(t, 3, c.NodeCount())
	assert.True(t, c.IsLabeled("l", ids[1]))
}
