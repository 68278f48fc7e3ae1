// SPDX-License-Identifier: MIT
// Package: treedec/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng          = nil   (pure/deterministic unless seeded)
//   • shuffleEdges = false (edges emitted in documented order)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/treedec/hypergraph"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// shuffleEdges permutes each hyperedge's endpoint sequence before
	// insertion. Decompositions must not depend on endpoint order, which
	// this knob lets tests exercise.
	shuffleEdges bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// endpoints returns the endpoint sequence for a new hyperedge, shuffled when
// requested and an RNG is present.
func (c builderConfig) endpoints(vs []hypergraph.Vertex) []hypergraph.Vertex {
	if c.shuffleEdges && c.rng != nil {
		c.rng.Shuffle(len(vs), func(i, j int) { vs[i], vs[j] = vs[j], vs[i] })
	}

	return vs
}
