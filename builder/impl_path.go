// SPDX-License-Identifier: MIT
// Package: treedec/builder
//
// impl_path.go - Path(n), Cycle(n) and Wheel(n) constructors.
//
// Contract:
//   - Vertices are added in one AddVertices call; index i maps to the i-th
//     returned vertex.
//   - Path emits {v_{i-1}, v_i} for i = 1..n-1 in increasing order.
//   - Cycle adds the closing edge {v_{n-1}, v_0} last.
//   - Wheel is a Cycle over the first n-1 vertices plus spokes from hub v_{n-1}.
//
// Complexity: O(n) vertices and edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treedec/hypergraph"
)

// Path returns a Constructor that builds a simple path P_n (n ≥ 2).
func Path(n int) Constructor {
	return func(h *hypergraph.Hypergraph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		vs := h.AddVertices(n)
		for i := 1; i < n; i++ {
			if err := addEdge(h, cfg, MethodPath, vs[i-1], vs[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds a simple cycle C_n (n ≥ 3).
func Cycle(n int) Constructor {
	return func(h *hypergraph.Hypergraph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		return ring(h, cfg, MethodCycle, h.AddVertices(n))
	}
}

// Wheel returns a Constructor that builds W_n: a cycle over n-1 vertices and
// a hub joined to each of them (n ≥ 4). The hub is the last vertex added.
func Wheel(n int) Constructor {
	return func(h *hypergraph.Hypergraph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		vs := h.AddVertices(n)
		rim, hub := vs[:n-1], vs[n-1]
		if err := ring(h, cfg, MethodWheel, rim); err != nil {
			return err
		}
		for _, v := range rim {
			if err := addEdge(h, cfg, MethodWheel, hub, v); err != nil {
				return err
			}
		}

		return nil
	}
}

func ring(h *hypergraph.Hypergraph, cfg builderConfig, method string, vs []hypergraph.Vertex) error {
	for i := range vs {
		if err := addEdge(h, cfg, method, vs[i], vs[(i+1)%len(vs)]); err != nil {
			return err
		}
	}

	return nil
}
