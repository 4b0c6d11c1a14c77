package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/dfs"
	"github.com/katalvlaran/stepwise/trace"
)

// position returns index of v in slice or -1 if not found
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

func TestTopo_NilGraph(t *testing.T) {
	res, err := dfs.TopologicalSort(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestTopo_UndirectedGraph(t *testing.T) {
	_, err := dfs.TopologicalSort(core.NewGraph())
	assert.ErrorIs(t, err, dfs.ErrUndirectedGraph)
}

func TestTopo_EmptyGraph(t *testing.T) {
	res, err := dfs.TopologicalSort(core.NewGraph(core.WithDirected(true)))
	require.NoError(t, err)
	assert.Empty(t, res.Order)
	assert.True(t, res.Trace.Empty())
}

func TestTopo_SimpleChain(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	res, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
	// enter ×3, emit ×3, complete
	assert.Equal(t, 7, res.Trace.Len())
	assert.Equal(t, 3, res.Trace.Count(dfs.KindEmit))
	last, _ := res.Trace.Last()
	assert.Equal(t, trace.KindComplete, last.Kind)
}

func TestTopo_Disconnected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("X", "Y", 0)
	_, _ = g.AddEdge("A", "B", 0)

	res, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Less(t, position(res.Order, "X"), position(res.Order, "Y"))
	assert.Less(t, position(res.Order, "A"), position(res.Order, "B"))
}

func TestTopo_Cycle(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "A", 0)

	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}
