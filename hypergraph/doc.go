// Package hypergraph provides a thread-safe in-memory multi-hypergraph and
// the read-only View every decomposition algorithm in treedec consumes.
//
// A Hypergraph H = (V, E) stores:
//
//   - Vertices: positive uint32 IDs handed out 1, 2, 3, … by AddVertex.
//   - Hyperedges: an EdgeID plus the endpoint sequence exactly as supplied.
//     Duplicated endpoints (self-loops) and parallel hyperedges are
//     accepted unless WithoutLoops / WithoutMultiEdges are given.
//   - Incidence: vertex → set of incident hyperedge IDs, so HyperedgesOf is
//     proportional to the vertex degree.
//
// Determinism:
//
//	Vertices()        ascending by ID
//	Hyperedges()      ascending by EdgeID
//	HyperedgesOf(v)   ascending by EdgeID
//	Neighbors(v)      ascending by ID
//
// Returned Hyperedge values are copies; callers may mutate them freely.
//
// Reading PACE inputs:
//
//	h, err := hypergraph.ReadPACE(f) // "p tw n m" or "p htd n m"
//
// Errors are sentinels (ErrVertexNotFound, ErrEdgeNotFound, ErrParse, …)
// wrapped with the failing method; branch with errors.Is.
package hypergraph
