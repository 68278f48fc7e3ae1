// Package operation holds the manipulation operations applied to
// decompositions after construction.
//
// Two families:
//
//   - Structural operations (TreeOperation, PathOperation, GraphOperation)
//     rewrite the node structure: Normalization and its four stages,
//     Compression, JoinNodeReplacement, LimitChildCount. The
//     InducedSubgraphLabeling operation belongs here too, because its labels
//     depend on a node's position in the tree.
//   - Labeling functions (LabelingFunction) compute one label per node from
//     the node's bag and existing labels: CoveringEdgesLabeling, FuncLabeling.
//
// Every operation declares its capabilities; CheckCapabilities verifies the
// declaration against the implemented method sets. Structural operations take
// a Scope that narrows their focus, records created and removed nodes and
// labels new nodes.
//
// Example:
//
//	t, _ := elimination.AssembleTree(buckets)
//	norm := operation.NewNormalization(operation.WithEmptyRoot(), operation.WithEmptyLeaves())
//	var log operation.ChangeLog
//	_ = norm.ApplyTree(t, operation.Scope{Log: &log})
package operation
