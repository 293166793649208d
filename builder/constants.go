// Package builder defines shared constants used by map constructors, ensuring
// consistent defaults and validation across generator runs.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildMap is the canonical name for the BuildMap orchestrator.
	MethodBuildMap = "BuildMap"
	// MethodRandomPositions is the canonical name for the RandomPositions constructor.
	MethodRandomPositions = "RandomPositions"
	// MethodRandomEdges is the canonical name for the RandomEdges constructor.
	MethodRandomEdges = "RandomEdges"
)

//-----------------------------------------------------------------------------
// Map Defaults
//-----------------------------------------------------------------------------

// DefaultNodeCount is the number of nodes of the reference map.
const DefaultNodeCount = 100

// DefaultEdgeCount is the number of edges of the reference map.
const DefaultEdgeCount = 150

// Default placement rectangle: an 800×600 canvas inset by a 50px margin on
// the top/left edges so nodes stay visible. Max values are exclusive.
const (
	DefaultMinX = 50.0
	DefaultMinY = 50.0
	DefaultMaxX = 800.0
	DefaultMaxY = 600.0
)

// Default inclusive edge-weight range.
const (
	DefaultMinWeight int64 = 1
	DefaultMaxWeight int64 = 20
)

//-----------------------------------------------------------------------------
// Rejection Sampling Budget
//-----------------------------------------------------------------------------

// AttemptsPerEdge is the per-requested-edge draw budget used when
// WithMaxAttempts is not given.
const AttemptsPerEdge = 1000

// DefaultMinAttempts is the floor of the derived draw budget.
const DefaultMinAttempts = 10000

// MinNodes is the smallest accepted node count.
const MinNodes = 1
