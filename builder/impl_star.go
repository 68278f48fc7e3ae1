// SPDX-License-Identifier: MIT
// Package: treedec/builder
//
// impl_star.go - Star(n) and Complete(n) constructors.
//
// Contract:
//   - Star: the center is the FIRST vertex added, leaves follow in order;
//     edges {center, leaf_i} are emitted by increasing i.
//   - Complete: every unordered pair {v_i, v_j}, i < j, in lexicographic order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treedec/hypergraph"
)

// Star returns a Constructor that builds a star with one center and n-1
// leaves (n ≥ 2).
func Star(n int) Constructor {
	return func(h *hypergraph.Hypergraph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		vs := h.AddVertices(n)
		for _, leaf := range vs[1:] {
			if err := addEdge(h, cfg, MethodStar, vs[0], leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds K_n (n ≥ 1).
// Complexity: O(n²) edges.
func Complete(n int) Constructor {
	return func(h *hypergraph.Hypergraph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodComplete, n, ErrTooFewVertices)
		}
		vs := h.AddVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(h, cfg, MethodComplete, vs[i], vs[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
