package gridgraph

// Maze markers understood by Parse.
const (
	WallRune  = '#'
	StartRune = 'S'
	GoalRune  = 'G'
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota

	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell represents a single grid cell with its coordinates and stored value.
type Cell struct {
	X, Y  int // Coordinates within the grid
	Value int // Original grid value at (X, Y)
}

// ID returns the vertex ID of c in the graph built by ToCoreGraph.
func (c Cell) ID() string { return CellID(c.X, c.Y) }

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// OpenThreshold specifies the minimum cell value considered walkable.
	OpenThreshold int

	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// OpenThreshold=1 (values ≥1 are open, 0 is wall), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		OpenThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// Start and Goal are set by Parse when the maze carries 'S' / 'G' markers.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	OpenThreshold   int
	Start, Goal     *Cell
	neighborOffsets [][2]int
}
