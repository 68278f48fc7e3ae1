package decomposition_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treedec/decomposition"
)

// sample builds
//
//	  1
//	 / \
//	2   3
//	|
//	4
func sample(t *testing.T) *decomposition.Tree {
	t.Helper()
	tr := decomposition.NewTree()
	r := tr.InsertRoot()
	a, err := tr.AddChild(r)
	require.NoError(t, err)
	_, err = tr.AddChild(r)
	require.NoError(t, err)
	_, err = tr.AddChild(a)
	require.NoError(t, err)

	return tr
}

func TestTraversal_Orders(t *testing.T) {
	tr := sample(t)
	assert.Equal(t, []decomposition.NodeID{4, 2, 3, 1}, tr.PostOrderNodes())
	assert.Equal(t, []decomposition.NodeID{1, 2, 4, 3}, tr.PreOrderNodes())
	assert.Equal(t, []decomposition.NodeID{4, 2}, tr.PostOrderNodes(decomposition.WithStart(2)))
	assert.Equal(t, []decomposition.NodeID{1, 2, 3}, tr.PreOrderNodes(decomposition.WithMaxDepth(1)))
	assert.Nil(t, decomposition.NewTree().PostOrderNodes())
}

func TestTraversal_ParentAndDepth(t *testing.T) {
	tr := sample(t)
	type visit struct {
		node, parent decomposition.NodeID
		depth        int
	}
	var got []visit
	require.NoError(t, tr.PostOrder(func(n, p decomposition.NodeID, d int) error {
		got = append(got, visit{n, p, d})
		return nil
	}))
	assert.Equal(t, []visit{{4, 2, 2}, {2, 1, 1}, {3, 1, 1}, {1, decomposition.NoNode, 0}}, got)
}

func TestTraversal_ErrorsAndMutation(t *testing.T) {
	tr := sample(t)
	stop := errors.New("stop")
	err := tr.PostOrder(func(n, _ decomposition.NodeID, _ int) error {
		if n == 2 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.ErrorIs(t, tr.PreOrder(func(decomposition.NodeID, decomposition.NodeID, int) error { return nil },
		decomposition.WithStart(77)), decomposition.ErrNodeNotFound)

	// Inserting a parent above a visited node during a post-order walk is allowed.
	var order []decomposition.NodeID
	require.NoError(t, tr.PostOrder(func(n, _ decomposition.NodeID, _ int) error {
		order = append(order, n)
		if n == 4 {
			_, err := tr.AddParent(n)
			return err
		}
		return nil
	}))
	assert.Equal(t, []decomposition.NodeID{4, 2, 3, 1}, order)
	assert.Equal(t, 5, tr.NodeCount())
}
