package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwise/gridgraph"
)

func TestConnectedComponents(t *testing.T) {
	gg, err := gridgraph.Parse([]string{
		"..#.",
		"#.#.",
		"##..",
	}, gridgraph.Conn4)
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 2)
	// first component: (0,0),(1,0),(1,1) in BFS order
	assert.Equal(t, []int{0, 1, 5}, comps[0])
	assert.Len(t, comps[1], 4)

	assert.Equal(t, 0, gg.ComponentOf(1, 1))
	assert.Equal(t, 1, gg.ComponentOf(3, 2))
	assert.Equal(t, -1, gg.ComponentOf(2, 0))
	assert.True(t, gg.Connected(gridgraph.Cell{X: 3, Y: 0}, gridgraph.Cell{X: 2, Y: 2}))
	assert.False(t, gg.Connected(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 3, Y: 0}))
}

func TestConnectedComponents_Diagonal(t *testing.T) {
	rows := []string{
		".#",
		"#.",
	}
	g4, _ := gridgraph.Parse(rows, gridgraph.Conn4)
	g8, _ := gridgraph.Parse(rows, gridgraph.Conn8)
	assert.Len(t, g4.ConnectedComponents(), 2)
	assert.Len(t, g8.ConnectedComponents(), 1)
}

func TestBreach(t *testing.T) {
	gg, err := gridgraph.Parse([]string{".###."}, gridgraph.Conn4)
	require.NoError(t, err)
	require.Len(t, gg.ConnectedComponents(), 2)

	path, walls, err := gg.Breach(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, walls)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, path)
	assert.Equal(t, []string{"1,0", "2,0", "3,0"}, gg.WallsOn(path))

	_, _, err = gg.Breach(0, 2)
	assert.ErrorIs(t, err, gridgraph.ErrComponentIndex)
}

func TestBreach_PrefersFewerWalls(t *testing.T) {
	// the direct route crosses two walls, the detour along the bottom only one
	gg, err := gridgraph.Parse([]string{
		".##.",
		"...#",
		"....",
	}, gridgraph.Conn4)
	require.NoError(t, err)
	comps := gg.ConnectedComponents()
	require.Len(t, comps, 2)

	_, walls, err := gg.Breach(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, walls)
}
