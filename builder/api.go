// SPDX-License-Identifier: MIT
// Package: treedec/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildHypergraph(hopts, bopts, cons...). Creates h,
//     resolves cfg, runs cons in order.
//   - Every constructor adds fresh vertices, so composing constructors
//     yields a disjoint union of the fixtures.
//   - Determinism: same inputs/options/seed and constructor order ⇒
//     identical hypergraphs (vertex IDs and edge IDs included).

package builder

import (
	"fmt"

	"github.com/katalvlaran/treedec/hypergraph"
)

// Constructor applies a deterministic hypergraph mutation using the resolved
// builderConfig. Constructors validate parameters before touching h and
// return sentinel errors (no panics).
type Constructor func(h *hypergraph.Hypergraph, cfg builderConfig) error

// BuildHypergraph creates a new hypergraph with options hopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildHypergraph: %w" and returned
// immediately.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Whatever a constructor returns (ErrTooFewVertices, ErrInvalidRank, ...).
func BuildHypergraph(hopts []hypergraph.Option, bopts []BuilderOption, cons ...Constructor) (*hypergraph.Hypergraph, error) {
	h := hypergraph.New(hopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildHypergraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(h, cfg); err != nil {
			return nil, fmt.Errorf("BuildHypergraph: %w", err)
		}
	}

	return h, nil
}

// addEdge inserts one hyperedge honoring cfg and wraps failures with method.
func addEdge(h *hypergraph.Hypergraph, cfg builderConfig, method string, vs ...hypergraph.Vertex) error {
	elements := cfg.endpoints(append([]hypergraph.Vertex(nil), vs...))
	if _, err := h.AddEdge(elements...); err != nil {
		return fmt.Errorf("%s: AddEdge(%v): %v: %w", method, elements, err, ErrConstructFailed)
	}

	return nil
}
