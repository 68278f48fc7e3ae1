// Package algorithm turns hypergraphs into graph, tree and path
// decompositions via bucket elimination, then applies manipulation
// operations and labeling functions.
//
// The three decomposers share one pipeline:
//
//	ordering → buckets → assembly → [linearization, paths only]
//	        → structural operations → labeling functions
//
// Operations are registered globally (WithOperations, SetManipulationOperations,
// AddManipulationOperation) or passed per call; global ones run first. Each
// operation is classified by its declared capabilities, and operations that
// do not apply to the decomposer's kind are skipped without error.
//
// Observability: every run gets a run_id (uuid) attached to its zap logger
// and otel span; stage spans are children of the run span. Metrics are
// recorded when WithMetrics is given.
//
// Runs are not cancellable: ctx carries tracing and logging context only.
package algorithm
