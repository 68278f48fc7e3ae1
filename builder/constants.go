// Package builder defines shared constants used by hypergraph builders,
// keeping method tags and minima consistent across constructors.
package builder

// Method tags prefixed to constructor errors.
const (
	MethodPath          = "Path"
	MethodCycle         = "Cycle"
	MethodStar          = "Star"
	MethodWheel         = "Wheel"
	MethodComplete      = "Complete"
	MethodGrid          = "Grid"
	MethodRandomSparse  = "RandomSparse"
	MethodRandomUniform = "RandomUniform"
	MethodHyperedge     = "Hyperedge"
)

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinCycleNodes is the smallest cycle without loops or multi-edges.
const MinCycleNodes = 3

// MinStarNodes is one center plus at least one leaf.
const MinStarNodes = 2

// MinWheelNodes is a 3-cycle plus one hub.
const MinWheelNodes = 4

// MinGridDim is the smallest allowed grid dimension; a 1×1 grid has no edges.
const MinGridDim = 1

// Probability bounds for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
