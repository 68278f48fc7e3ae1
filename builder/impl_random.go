// SPDX-License-Identifier: MIT
// Package: treedec/builder
//
// impl_random.go - stochastic constructors.
//
//   - RandomSparse(n, p): Erdős–Rényi graph; each pair {i,j}, i<j, is kept
//     independently with probability p.
//   - RandomUniform(n, m, k): m hyperedges of rank k, each a uniform random
//     k-subset of the n new vertices.
//
// Determinism:
//   - Stable trial order (i asc, then j asc) and a seeded RNG ⇒ identical
//     output for identical options.

package builder

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/treedec/hypergraph"
)

// RandomSparse returns a Constructor sampling G(n, p).
//
// Errors:
//   - ErrTooFewVertices if n < 1.
//   - ErrInvalidProbability if p ∉ [0,1].
//   - ErrNeedRandSource if 0 < p < 1 and no RNG is configured.
func RandomSparse(n int, p float64) Constructor {
	return func(h *hypergraph.Hypergraph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomSparse, n, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		vs := h.AddVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == MaxProbability
				if cfg.rng != nil && p > MinProbability && p < MaxProbability {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(h, cfg, MethodRandomSparse, vs[i], vs[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomUniform returns a Constructor adding n vertices and m random
// hyperedges of rank k. Endpoints within a hyperedge are distinct; the same
// endpoint set may be drawn twice (rejected only by WithoutMultiEdges).
//
// Errors:
//   - ErrTooFewVertices if n < 1 or m < 0.
//   - ErrInvalidRank if k < 1 or k > n.
//   - ErrNeedRandSource without an RNG.
func RandomUniform(n, m, k int) Constructor {
	return func(h *hypergraph.Hypergraph, cfg builderConfig) error {
		if n < 1 || m < 0 {
			return fmt.Errorf("%s: n=%d, m=%d: %w", MethodRandomUniform, n, m, ErrTooFewVertices)
		}
		if k < 1 || k > n {
			return fmt.Errorf("%s: k=%d not in [1,%d]: %w", MethodRandomUniform, k, n, ErrInvalidRank)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomUniform, ErrNeedRandSource)
		}

		vs := h.AddVertices(n)
		for e := 0; e < m; e++ {
			picked := make([]hypergraph.Vertex, 0, k)
			for _, idx := range cfg.rng.Perm(n)[:k] {
				picked = append(picked, vs[idx])
			}
			slices.Sort(picked)
			if err := addEdge(h, cfg, MethodRandomUniform, picked...); err != nil {
				return err
			}
		}

		return nil
	}
}

// Hyperedges returns a Constructor adding max(vertex index)+1 vertices and
// one hyperedge per entry of edges, where entries are 0-based indices into
// the vertices added. It is the literal-fixture escape hatch for tests.
//
// Errors:
//   - ErrTooFewVertices for a negative index or an empty entry.
func Hyperedges(edges ...[]int) Constructor {
	return func(h *hypergraph.Hypergraph, cfg builderConfig) error {
		top := -1
		for _, e := range edges {
			if len(e) == 0 {
				return fmt.Errorf("%s: empty hyperedge: %w", MethodHyperedge, ErrTooFewVertices)
			}
			for _, i := range e {
				if i < 0 {
					return fmt.Errorf("%s: index %d < 0: %w", MethodHyperedge, i, ErrTooFewVertices)
				}
				top = max(top, i)
			}
		}
		vs := h.AddVertices(top + 1)
		for _, e := range edges {
			mapped := make([]hypergraph.Vertex, len(e))
			for j, i := range e {
				mapped[j] = vs[i]
			}
			if err := addEdge(h, cfg, MethodHyperedge, mapped...); err != nil {
				return err
			}
		}

		return nil
	}
}
