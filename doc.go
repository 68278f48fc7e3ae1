// Package treedec computes graph, tree and path decompositions of
// hypergraphs by bucket elimination and reshapes them for dynamic
// programming.
//
// Layout:
//
//	sets/          — sorted-slice set algebra shared by every package
//	hypergraph/    — thread-safe hypergraph, PACE .gr/.hgr reader
//	builder/       — deterministic hypergraph constructors (grid, path, star, random…)
//	elimination/   — orderings, bucket elimination, tree/graph assembly
//	decomposition/ — Graph and Tree (tree or path) containers, labels, validation
//	operation/     — manipulation operations: normalization stages, compression,
//	                 join node replacement, labeling functions
//	algorithm/     — the graph, tree and path decomposers
//	named/         — caller-named nodes and edges over a path decomposition
//	config/        — viper configuration and zap logger construction
//	cmd/treedec/   — command line interface
//
// Quick example:
//
//	g, _ := builder.BuildHypergraph(nil, nil, builder.Grid(3, 3))
//	d, _ := algorithm.NewTreeDecomposer(
//		algorithm.WithOperations(operation.NewNormalization(operation.WithEmptyRoot())),
//	)
//	t, _ := d.ComputeDecomposition(ctx, g, operation.NewInducedSubgraphLabeling(g))
//	fmt.Println(t.Width())
//
// A normalized tree decomposition has only leaf, introduce, forget and join
// nodes: every join node's children repeat its bag, and every other edge
// introduces or forgets at most one vertex.
package treedec
