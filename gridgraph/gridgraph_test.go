package gridgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwise/gridgraph"
)

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.New(tc.grid, gridgraph.DefaultGridOptions())
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	in := [][]int{{1, 1}}
	gg, err := gridgraph.New(in, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	in[0][0] = 0
	assert.True(t, gg.Open(0, 0))
}

func TestInBoundsAndOpen(t *testing.T) {
	gg, err := gridgraph.New([][]int{{0, 1, 0}, {1, 0, 2}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, gg.InBounds(xy[0], xy[1]), "%v", xy)
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, gg.InBounds(xy[0], xy[1]), "%v", xy)
	}
	assert.True(t, gg.Open(2, 1))
	assert.False(t, gg.Open(0, 0))
	assert.False(t, gg.Open(5, 5))
}

func TestParse(t *testing.T) {
	gg, err := gridgraph.Parse([]string{
		"S.#",
		".#G",
	}, gridgraph.Conn4)
	require.NoError(t, err)
	assert.Equal(t, 3, gg.Width)
	assert.Equal(t, 2, gg.Height)
	require.NotNil(t, gg.Start)
	require.NotNil(t, gg.Goal)
	assert.Equal(t, "0,0", gg.Start.ID())
	assert.Equal(t, "2,1", gg.Goal.ID())
	assert.Equal(t, [][]int{{1, 1, 0}, {1, 0, 1}}, gg.CellValues)

	_, err = gridgraph.Parse(nil, gridgraph.Conn4)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
	_, err = gridgraph.Parse([]string{"S.", "S."}, gridgraph.Conn4)
	assert.ErrorIs(t, err, gridgraph.ErrDuplicateMarker)
	_, err = gridgraph.Parse([]string{"..", "."}, gridgraph.Conn4)
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)

	noMarkers, err := gridgraph.Parse([]string{"..."}, gridgraph.Conn4)
	require.NoError(t, err)
	assert.Nil(t, noMarkers.Start)
	assert.Nil(t, noMarkers.Goal)
}

func TestCellID(t *testing.T) {
	assert.Equal(t, "3,12", gridgraph.CellID(3, 12))
	x, y, err := gridgraph.ParseCellID("3,12")
	require.NoError(t, err)
	assert.Equal(t, 3, x)
	assert.Equal(t, 12, y)

	for _, bad := range []string{"", "3", "a,1", "1,b"} {
		_, _, err = gridgraph.ParseCellID(bad)
		assert.ErrorIs(t, err, gridgraph.ErrBadCellID, bad)
	}
}

func TestToCoreGraph_Conn4(t *testing.T) {
	gg, err := gridgraph.Parse([]string{
		"..",
		".#",
	}, gridgraph.Conn4)
	require.NoError(t, err)
	g, err := gg.ToCoreGraph()
	require.NoError(t, err)

	assert.Equal(t, []string{"0,0", "0,1", "1,0"}, g.Vertices())
	assert.False(t, g.HasVertex("1,1"), "walls are not vertices")
	// 0,0↔1,0 and 0,0↔0,1, one arc per direction
	assert.Equal(t, 4, g.EdgeCount())

	nbs, err := g.NeighborIDs("0,0")
	require.NoError(t, err)
	assert.Equal(t, []string{"1,0", "0,1"}, nbs, "east before south")

	v, err := g.Vertex("1,0")
	require.NoError(t, err)
	assert.Equal(t, 1, v.Metadata["x"])
	assert.Equal(t, 0, v.Metadata["y"])
}

func TestToCoreGraph_Conn8Weights(t *testing.T) {
	gg, err := gridgraph.New([][]int{{1, 1}, {1, 1}}, gridgraph.GridOptions{OpenThreshold: 1, Conn: gridgraph.Conn8})
	require.NoError(t, err)
	g, err := gg.ToCoreGraph()
	require.NoError(t, err)
	assert.Equal(t, 12, g.EdgeCount())

	edges, err := g.Neighbors("0,0")
	require.NoError(t, err)
	require.Len(t, edges, 3)
	assert.Equal(t, "1,0", edges[0].To)
	assert.Equal(t, 1.0, edges[0].Weight)
	assert.Equal(t, "1,1", edges[1].To)
	assert.InDelta(t, math.Sqrt2, edges[1].Weight, 1e-12)
}

func TestHeuristics(t *testing.T) {
	goal := gridgraph.Cell{X: 3, Y: 4}
	assert.Equal(t, 7.0, gridgraph.Manhattan(goal)("0,0"))
	assert.Equal(t, 0.0, gridgraph.Manhattan(goal)("3,4"))
	assert.InDelta(t, 4+3*(math.Sqrt2-1), gridgraph.Octile(goal)("0,0"), 1e-12)
	assert.Zero(t, gridgraph.Manhattan(goal)("garbage"))

	gg8, _ := gridgraph.New([][]int{{1}}, gridgraph.GridOptions{OpenThreshold: 1, Conn: gridgraph.Conn8})
	assert.InDelta(t, gridgraph.Octile(goal)("1,1"), gg8.Heuristic(goal)("1,1"), 1e-12)
}
