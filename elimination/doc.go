// Package elimination implements bucket elimination: given a hypergraph and
// an elimination ordering it builds one bucket per vertex, links buckets
// along the fill edges created by eliminating each vertex, and assembles
// the linked buckets into a graph or tree decomposition.
//
//	order, _ := elimination.NaturalOrdering{}.ComputeOrdering(h)
//	b, err := elimination.BuildBuckets(h, order)
//	tree, err := elimination.AssembleTree(b)
//
// The construction is deterministic: the next bucket of a vertex is the
// earliest-eliminated remaining vertex of its bucket, and children are
// attached in elimination order, so equal inputs give identical bags and
// identical tree shapes.
package elimination
