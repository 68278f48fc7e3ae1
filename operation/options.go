// File: options.go
// Role: Functional options for the normalization family.

package operation

// NormalizationOption customizes SemiNormalization and Normalization.
type NormalizationOption func(*normalizationConfig)

type normalizationConfig struct {
	emptyRoot               bool
	emptyLeaves             bool
	identicalJoinNodeParent bool
	leavesAsIntroduce       bool
}

func newNormalizationConfig(opts []NormalizationOption) normalizationConfig {
	var cfg normalizationConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithEmptyRoot requests a root with an empty bag.
func WithEmptyRoot() NormalizationOption {
	return func(c *normalizationConfig) { c.emptyRoot = true }
}

// WithEmptyLeaves requests that every leaf has an empty bag.
func WithEmptyLeaves() NormalizationOption {
	return func(c *normalizationConfig) { c.emptyLeaves = true }
}

// WithIdenticalJoinNodeParent requests that every join node's parent carries
// the join node's bag.
func WithIdenticalJoinNodeParent() NormalizationOption {
	return func(c *normalizationConfig) { c.identicalJoinNodeParent = true }
}

// WithLeafNodesAsIntroduceNodes makes the introduce limit apply to leaves too:
// a leaf holding more vertices than the limit grows a chain of children.
func WithLeafNodesAsIntroduceNodes() NormalizationOption {
	return func(c *normalizationConfig) { c.leavesAsIntroduce = true }
}
