package decomposition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treedec/builder"
	"github.com/katalvlaran/treedec/decomposition"
)

func TestValidate(t *testing.T) {
	// 1-2-3-4 path hypergraph.
	h, err := builder.BuildHypergraph(nil, nil, builder.Path(4))
	require.NoError(t, err)

	tests := []struct {
		name    string
		bags    []vs
		wantErr bool
		msg     string
	}{
		{name: "valid chain", bags: []vs{{4}, {3, 4}, {2, 3}, {1, 2}}},
		{name: "vertex missing", bags: []vs{{3, 4}, {2, 3}}, wantErr: true, msg: "vertex 1 not covered"},
		{name: "edge missing", bags: []vs{{3, 4}, {2, 3}, {1}}, wantErr: true, msg: "hyperedge 1"},
		{name: "disconnected", bags: []vs{{2, 4}, {3, 4}, {2, 3}, {1, 2}}, wantErr: true, msg: "vertex 2 are disconnected"},
		{name: "unknown vertex", bags: []vs{{9}, {3, 4}, {2, 3}, {1, 2}}, wantErr: true, msg: "unknown vertex 9"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := decomposition.NewTree()
			chain(t, tr, tc.bags...)
			err := decomposition.Validate(h, tr)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, decomposition.ErrInvalidDecomposition)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestValidate_Graph(t *testing.T) {
	h, err := builder.BuildHypergraph(nil, nil, builder.Hyperedges([]int{0, 1, 2}, []int{2, 3}))
	require.NoError(t, err)

	g := decomposition.NewGraph()
	a, b := g.AddNode(), g.AddNode()
	require.NoError(t, g.SetBag(a, vs{1, 2, 3}))
	require.NoError(t, g.SetBag(b, vs{3, 4}))
	assert.ErrorIs(t, decomposition.Validate(h, g), decomposition.ErrInvalidDecomposition, "vertex 3 split")

	require.NoError(t, g.AddEdge(a, b))
	assert.NoError(t, decomposition.Validate(h, g))
}

func TestValidate_EmptyGraph(t *testing.T) {
	h, err := builder.BuildHypergraph(nil, nil)
	require.NoError(t, err)
	tr := decomposition.NewTree()
	tr.InsertRoot()
	assert.NoError(t, decomposition.Validate(h, tr))
}
