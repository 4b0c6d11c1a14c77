package gridgraph

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/stepwise/core"
)

// New constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func New(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		OpenThreshold:   opts.OpenThreshold,
		neighborOffsets: offsets,
	}, nil
}

// Parse builds a GridGraph from maze rows: '#' is a wall (value 0), every
// other rune is open (value 1). 'S' and 'G' additionally mark Start and Goal.
// Rows are measured in runes. A missing marker leaves Start or Goal nil.
func Parse(rows []string, conn Connectivity) (*GridGraph, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	values := make([][]int, len(rows))
	var start, goal *Cell
	for y, row := range rows {
		runes := []rune(row)
		values[y] = make([]int, len(runes))
		for x, r := range runes {
			if r == WallRune {
				continue
			}
			values[y][x] = 1
			switch r {
			case StartRune:
				if start != nil {
					return nil, fmt.Errorf("%w: second %q at %s", ErrDuplicateMarker, r, CellID(x, y))
				}
				start = &Cell{X: x, Y: y, Value: 1}
			case GoalRune:
				if goal != nil {
					return nil, fmt.Errorf("%w: second %q at %s", ErrDuplicateMarker, r, CellID(x, y))
				}
				goal = &Cell{X: x, Y: y, Value: 1}
			}
		}
	}

	opts := DefaultGridOptions()
	opts.Conn = conn
	gg, err := New(values, opts)
	if err != nil {
		return nil, err
	}
	gg.Start, gg.Goal = start, goal

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Open reports whether (x,y) is in bounds and walkable.
func (gg *GridGraph) Open(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.OpenThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets, clockwise from north.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// CellID formats the unique vertex identifier "x,y" for cell (x,y).
func CellID(x, y int) string {
	return strconv.Itoa(x) + "," + strconv.Itoa(y)
}

// ParseCellID is the inverse of CellID.
func ParseCellID(id string) (x, y int, err error) {
	xs, ys, ok := strings.Cut(id, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadCellID, id)
	}
	if x, err = strconv.Atoi(xs); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadCellID, id)
	}
	if y, err = strconv.Atoi(ys); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadCellID, id)
	}

	return x, y, nil
}

// ToCoreGraph converts the open cells of the grid into a weighted *core.Graph.
// Each open cell (x,y) becomes a vertex "x,y" with metadata {x,y,value}.
// Orthogonal moves cost 1 and diagonal moves (Conn8) cost √2.
//
// The graph is directed with an arc in each direction so that every cell's
// Neighbors come back in NeighborOffsets order (clockwise from north).
// Returns any error reported by the graph while building it.
// Complexity: O(W×H×d) time and memory.
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())

	// Add all open vertices, row-major
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Open(x, y) {
				continue
			}
			id := CellID(x, y)
			if err := g.AddVertex(id); err != nil {
				return nil, fmt.Errorf("gridgraph: add vertex %s: %w", id, err)
			}
			v, err := g.Vertex(id)
			if err != nil {
				return nil, fmt.Errorf("gridgraph: vertex %s: %w", id, err)
			}
			v.Metadata["x"] = x
			v.Metadata["y"] = y
			v.Metadata["value"] = gg.CellValues[y][x]
		}
	}

	// Add arcs for each open neighbor pair
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Open(x, y) {
				continue
			}
			uID := CellID(x, y)
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.Open(nx, ny) {
					continue
				}
				w := 1.0
				if d[0] != 0 && d[1] != 0 {
					w = math.Sqrt2
				}
				vID := CellID(nx, ny)
				if _, err := g.AddEdge(uID, vID, w); err != nil {
					return nil, fmt.Errorf("gridgraph: add edge %s->%s: %w", uID, vID, err)
				}
			}
		}
	}

	return g, nil
}

// Manhattan returns a heuristic estimating |dx|+|dy| to goal.
// It is admissible on Conn4 grids. Unparseable IDs estimate 0.
func Manhattan(goal Cell) func(id string) float64 {
	return func(id string) float64 {
		x, y, err := ParseCellID(id)
		if err != nil {
			return 0
		}

		return math.Abs(float64(x-goal.X)) + math.Abs(float64(y-goal.Y))
	}
}

// Octile returns a heuristic for Conn8 grids with √2 diagonals:
// max(dx,dy) + (√2-1)·min(dx,dy). Unparseable IDs estimate 0.
func Octile(goal Cell) func(id string) float64 {
	return func(id string) float64 {
		x, y, err := ParseCellID(id)
		if err != nil {
			return 0
		}
		dx := math.Abs(float64(x - goal.X))
		dy := math.Abs(float64(y - goal.Y))

		return math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
	}
}

// Heuristic picks Manhattan for Conn4 grids and Octile for Conn8.
func (gg *GridGraph) Heuristic(goal Cell) func(id string) float64 {
	if gg.Conn == Conn8 {
		return Octile(goal)
	}

	return Manhattan(goal)
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
