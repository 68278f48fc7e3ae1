package hypergraph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/treedec/hypergraph"
)

// ExampleHypergraph builds a small hypergraph and inspects it.
func ExampleHypergraph() {
	h := hypergraph.New()
	v := h.AddVertices(4)
	_, _ = h.AddEdge(v[0], v[1], v[2])
	_, _ = h.AddEdge(v[2], v[3])

	nbs, _ := h.Neighbors(v[2])
	fmt.Println("vertices:", h.Vertices())
	fmt.Println("edges:", h.EdgeCount())
	fmt.Println("neighbors of 3:", nbs)

	// Output:
	// vertices: [1 2 3 4]
	// edges: 2
	// neighbors of 3: [1 2 4]
}

// ExampleReadPACE parses a PACE treewidth instance.
func ExampleReadPACE() {
	h, err := hypergraph.ReadPACE(strings.NewReader("p tw 3 2\n1 2\n2 3\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range h.Hyperedges() {
		fmt.Println(e.ID, e.Elements)
	}

	// Output:
	// 1 [1 2]
	// 2 [2 3]
}
