// SPDX-License-Identifier: MIT
// Package: treedec/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertices are added in row-major order; cell (r,c) is vertex
//     base + r*cols + c where base is the first vertex added.
//   • For each cell (r,c) emit Right then Bottom edges where they exist.
//
// Complexity: O(rows*cols) vertices and edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treedec/hypergraph"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
// Its treewidth is min(rows, cols), which makes it the standard stress
// fixture for elimination orderings.
func Grid(rows, cols int) Constructor {
	return func(h *hypergraph.Hypergraph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		vs := h.AddVertices(rows * cols)
		cell := func(r, c int) hypergraph.Vertex { return vs[r*cols+c] }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(h, cfg, MethodGrid, cell(r, c), cell(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(h, cfg, MethodGrid, cell(r, c), cell(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
