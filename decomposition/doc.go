// Package decomposition provides the containers produced and rewritten by
// treedec: graph decompositions (Graph) and rooted tree and path
// decompositions (Tree with KindTree or KindPath).
//
// Storage model:
//
//   - Every container owns an arena of node records addressed by NodeID
//     (slot index + 1). Removing a node frees its slot; IDs are never reused.
//   - A node carries its bag (sorted, duplicate-free), the hyperedges
//     induced by the bag, and a collection of named labels.
//   - Labels are values: Label() clones, SetLabel() replaces, and
//     ExportLabels() hands out a snapshot of a node's whole collection.
//
// Tree mutations follow the manipulation pipeline's needs: AddChild,
// AddParent (insert above a node), RemoveVertex (lift the children),
// RemoveSubtree and Reparent. A path decomposition rejects any mutation
// that would give a node a second child with ErrPathBranching.
//
// Walks are iterative (PreOrder/PostOrder with a per-node VisitFunc), and
// Validate checks coverage, running intersection and shape against the
// input hypergraph.
//
// Containers are not safe for concurrent mutation.
package decomposition
