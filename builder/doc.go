// Package builder provides deterministic hypergraph fixtures for tests,
// benchmarks and the treedec CLI.
//
// Every constructor is a Constructor closure applied by BuildHypergraph:
//
//	h, err := builder.BuildHypergraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.Grid(4, 4),
//	    builder.RandomUniform(10, 12, 3),
//	)
//
// Constructors add fresh vertices, so several constructors yield a disjoint
// union. Topologies: Path, Cycle, Wheel, Star, Complete, Grid, RandomSparse,
// RandomUniform and the literal Hyperedges fixture.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrInvalidRank, ...) wrapped with the
//     constructor name for runtime parameter problems.
//   - Same options, seed and constructor order ⇒ identical vertex and edge IDs.
package builder
