package dijkstra_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/dijkstra"
	"github.com/katalvlaran/stepwise/search"
	"github.com/katalvlaran/stepwise/trace"
)

// network builds the weighted undirected graph
//
//	A–B 4, A–C 2, C–B 1, B–D 5, C–D 8, D–E 3, plus an isolated Z.
func network(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    float64
	}{
		{"A", "B", 4}, {"A", "C", 2}, {"C", "B", 1},
		{"B", "D", 5}, {"C", "D", 8}, {"D", "E", 3},
	} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("Z"))

	return g
}

func kinds(tr trace.Trace[search.State]) []trace.Kind {
	var out []trace.Kind
	for _, s := range tr.Steps() {
		out = append(out, s.Kind)
	}

	return out
}

func TestDijkstra_Errors(t *testing.T) {
	g := network(t)
	_, err := dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)
	_, err = dijkstra.Dijkstra(nil, dijkstra.Source("A"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
	_, err = dijkstra.Dijkstra(core.NewGraph(), dijkstra.Source("A"))
	assert.ErrorIs(t, err, dijkstra.ErrUnweightedGraph)
	_, err = dijkstra.Dijkstra(g, dijkstra.Source("nope"))
	assert.ErrorIs(t, err, dijkstra.ErrStartVertexNotFound)
	_, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
	_, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)

	neg := core.NewGraph(core.WithWeighted())
	_, _ = neg.AddEdge("A", "B", -1)
	_, err = dijkstra.Dijkstra(neg, dijkstra.Source("A"))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_AllDistances(t *testing.T) {
	res, err := dijkstra.Dijkstra(network(t), dijkstra.Source("A"))
	require.NoError(t, err)

	want := map[string]float64{"A": 0, "C": 2, "B": 3, "D": 8, "E": 11}
	if diff := cmp.Diff(want, res.Dist); diff != "" {
		t.Errorf("dist (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"A", "C", "B", "D", "E"}, res.Order)
	assert.Equal(t, "C", res.Prev["B"])
	assert.False(t, res.Found)

	last, ok := res.Trace.Last()
	require.True(t, ok)
	assert.Equal(t, search.KindExhausted, last.Kind)
}

func TestDijkstra_TargetTrace(t *testing.T) {
	res, err := dijkstra.Dijkstra(network(t), dijkstra.Source("A"), dijkstra.WithTarget("E"))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"A", "C", "B", "D", "E"}, res.Path)
	assert.Equal(t, 11.0, res.Cost)

	want := []trace.Kind{
		search.KindPush,
		search.KindVisit, search.KindRelax, search.KindRelax, // A
		search.KindVisit, search.KindRelax, search.KindRelax, // C
		search.KindVisit, search.KindRelax, // B
		search.KindVisit, search.KindRelax, // D
		search.KindVisit, search.KindFound, // E
	}
	if diff := cmp.Diff(want, kinds(res.Trace)); diff != "" {
		t.Fatalf("step kinds (-want +got):\n%s", diff)
	}

	// after settling C and improving B to 3, the stale B(4) entry is hidden
	s6, err := res.Trace.At(6)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "D"}, s6.Snapshot.Frontier)
	assert.Equal(t, []string{"A", "C"}, s6.Snapshot.Visited)
	assert.Equal(t, 3.0, s6.Snapshot.Dist["B"])
}

func TestDijkstra_StartIsGoalAndUnreachable(t *testing.T) {
	res, err := dijkstra.Dijkstra(network(t), dijkstra.Source("A"), dijkstra.WithTarget("A"))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"A"}, res.Path)
	assert.Zero(t, res.Cost)

	res, err = dijkstra.Dijkstra(network(t), dijkstra.Source("A"), dijkstra.WithTarget("Z"))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Len(t, res.Order, 5)
	_, reached := res.Dist["Z"]
	assert.False(t, reached)
}

func TestDijkstra_Thresholds(t *testing.T) {
	res, err := dijkstra.Dijkstra(network(t), dijkstra.Source("A"), dijkstra.WithMaxDistance(5))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B"}, res.Order)

	// C–D (8) is impassable; D is still reached through B
	res, err = dijkstra.Dijkstra(network(t), dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(8))
	require.NoError(t, err)
	assert.Equal(t, 8.0, res.Dist["D"])
	assert.Equal(t, "B", res.Prev["D"])
}

func TestDijkstra_TieBreakFirstPushed(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("S", "Y", 1)
	_, _ = g.AddEdge("S", "X", 1)
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("S"))
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "Y", "X"}, res.Order)
}

func TestAStar_HeuristicPrunes(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("S", "A", 1)
	_, _ = g.AddEdge("S", "B", 1)
	_, _ = g.AddEdge("A", "G", 1)

	plain, err := dijkstra.Dijkstra(g, dijkstra.Source("S"), dijkstra.WithTarget("G"))
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "B", "G"}, plain.Order)

	h := map[string]float64{"S": 2, "A": 1, "B": 5, "G": 0}
	astar, err := dijkstra.Dijkstra(g, dijkstra.Source("S"), dijkstra.WithTarget("G"),
		dijkstra.WithHeuristic(func(id string) float64 { return h[id] }))
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "G"}, astar.Order)
	assert.Equal(t, plain.Path, astar.Path)
	assert.Equal(t, plain.Cost, astar.Cost)
}

func TestDijkstra_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "A", 1)
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestDijkstra_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := dijkstra.Dijkstra(network(t), dijkstra.Source("A"), dijkstra.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Equal(t, 1, res.Trace.Len())
}

func TestDijkstra_Deterministic(t *testing.T) {
	a, _ := dijkstra.Dijkstra(network(t), dijkstra.Source("A"), dijkstra.WithTarget("E"))
	b, _ := dijkstra.Dijkstra(network(t), dijkstra.Source("A"), dijkstra.WithTarget("E"))
	if diff := cmp.Diff(a.Trace.Steps(), b.Trace.Steps()); diff != "" {
		t.Errorf("traces differ:\n%s", diff)
	}
}
