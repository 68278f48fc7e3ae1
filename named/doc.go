// Package named attaches caller-chosen names to the nodes and edges of a
// path decomposition.
//
// A Path[V, E] keeps a bijection between vertex names of type V and node IDs,
// and between edge names of type E and path edges. An edge is identified by
// its lower endpoint: the edge name of node n names the link between n and
// its parent, and it follows n when the path is restructured around it.
//
// Lookups of unnamed or missing nodes are logic errors, reported as
// ErrUnknownName and ErrUnknownVertex. All methods are safe for concurrent
// use; the wrapped decomposition.Tree returned by Internal is not.
package named
