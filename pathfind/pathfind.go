// Package pathfind runs the traced graph searches over a gridgraph maze and
// reports the outcome in grid terms.
//
// Find(grid, algorithm) converts the open cells with ToCoreGraph and then
// dispatches:
//
//	bfs      – bfs.BFS with the goal as target
//	dfs      – dfs.DFS with the goal as target
//	dijkstra – dijkstra.Dijkstra with the goal as target
//	astar    – dijkstra.Dijkstra plus grid.Heuristic(goal)
//
// A grid without a start or goal, or whose start or goal is a wall, yields an
// empty Result and no error. When start and goal lie in different open
// regions the search still runs to exhaustion so the trace shows everything
// reachable; Reachable is false and Breach lists the fewest walls that would
// have to go.
package pathfind

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/stepwise/bfs"
	"github.com/katalvlaran/stepwise/dfs"
	"github.com/katalvlaran/stepwise/dijkstra"
	"github.com/katalvlaran/stepwise/gridgraph"
	"github.com/katalvlaran/stepwise/search"
	"github.com/katalvlaran/stepwise/trace"
)

// Algorithm names a grid search strategy.
type Algorithm string

const (
	BFS      Algorithm = "bfs"
	DFS      Algorithm = "dfs"
	Dijkstra Algorithm = "dijkstra"
	AStar    Algorithm = "astar"
)

// ErrUnknownAlgorithm is returned for an unsupported Algorithm.
var ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")

// Algorithms lists the supported strategies in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, Dijkstra, AStar}
}

// Result is the outcome of one grid search.
//
// Path lists cell IDs start→goal and is nil when Found is false; a start that
// equals the goal yields Found with a one-cell Path. Cost is the path cost
// (hops for bfs/dfs). Visited is the expansion order.
type Result struct {
	Algorithm Algorithm                 `json:"algorithm"`
	Path      []string                  `json:"path"`
	Found     bool                      `json:"found"`
	Cost      float64                   `json:"cost"`
	Visited   []string                  `json:"visited"`
	Reachable bool                      `json:"reachable"`
	Breach    []string                  `json:"breach,omitempty"`
	Trace     trace.Trace[search.State] `json:"-" yaml:"-"`
}

// Find runs algo over grid from grid.Start to grid.Goal.
func Find(grid *gridgraph.GridGraph, algo Algorithm) (*Result, error) {
	return FindContext(context.Background(), grid, algo)
}

// FindContext is Find with cancellation.
func FindContext(ctx context.Context, grid *gridgraph.GridGraph, algo Algorithm) (*Result, error) {
	switch algo {
	case BFS, DFS, Dijkstra, AStar:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
	res := &Result{Algorithm: algo}
	if grid == nil || grid.Start == nil || grid.Goal == nil {
		return res, nil
	}
	start, goal := *grid.Start, *grid.Goal
	if !grid.Open(start.X, start.Y) || !grid.Open(goal.X, goal.Y) {
		return res, nil
	}

	res.Reachable = grid.Connected(start, goal)
	if !res.Reachable {
		path, _, err := grid.Breach(grid.ComponentOf(start.X, start.Y), grid.ComponentOf(goal.X, goal.Y))
		if err == nil {
			res.Breach = grid.WallsOn(path)
		}
	}

	g, err := grid.ToCoreGraph()
	if err != nil {
		return nil, err
	}
	switch algo {
	case BFS:
		r, err := bfs.BFS(g, start.ID(), bfs.WithTarget(goal.ID()), bfs.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		res.Path, res.Found, res.Visited, res.Trace = r.Path, r.Found, r.Order, r.Trace
		res.Cost = float64(r.Depth[goal.ID()])
	case DFS:
		r, err := dfs.DFS(g, start.ID(), dfs.WithTarget(goal.ID()), dfs.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		res.Path, res.Found, res.Visited, res.Trace = r.Path, r.Found, r.Order, r.Trace
		res.Cost = float64(r.Depth[goal.ID()])
	default:
		opts := []dijkstra.Option{
			dijkstra.Source(start.ID()),
			dijkstra.WithTarget(goal.ID()),
			dijkstra.WithContext(ctx),
		}
		if algo == AStar {
			opts = append(opts, dijkstra.WithHeuristic(grid.Heuristic(goal)))
		}
		r, err := dijkstra.Dijkstra(g, opts...)
		if err != nil {
			return nil, err
		}
		res.Path, res.Found, res.Visited, res.Trace, res.Cost = r.Path, r.Found, r.Order, r.Trace, r.Cost
	}
	if !res.Found {
		res.Cost = 0
	}

	return res, nil
}
