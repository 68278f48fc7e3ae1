package decomposition

import "fmt"

// HypertreeWidth returns the largest CoveringEdgesLabel over all nodes of d.
// Every node must carry the label (see operation.CoveringEdgesLabeling).
//
// Errors:
//   - ErrLabelNotFound naming the first node without a cover.
func HypertreeWidth(d Decomposition) (int, error) {
	best := 0
	for _, id := range d.Nodes() {
		cover, ok := LabelOf[HyperedgeSet](d, CoveringEdgesLabel, id)
		if !ok {
			return 0, fmt.Errorf("HypertreeWidth: node %d: %w", id, ErrLabelNotFound)
		}
		best = max(best, len(cover))
	}

	return best, nil
}

// JoinNodeCount returns the number of nodes with more than one child.
func JoinNodeCount(t *Tree) int {
	c := 0
	for _, id := range t.Nodes() {
		if t.IsJoin(id) {
			c++
		}
	}

	return c
}
