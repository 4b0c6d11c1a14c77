// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once), plus O(V) per traced step
//   - Memory: O(V)     (recursion stack and state map)
package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/search"
	"github.com/katalvlaran/stepwise/trace"
)

// KindEmit marks a vertex appended to the (reversed) topological order.
const KindEmit trace.Kind = "emit"

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// TopoResult holds the ordering and the trace of a TopologicalSort.
// Snapshot.Frontier is the gray stack top-first, Snapshot.Visited the black set.
type TopoResult struct {
	Order []string
	Trace trace.Trace[search.State]
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph // the graph being sorted
	ctx   context.Context
	state map[string]int // visitation state: White, Gray, Black
	stack []string       // gray vertices, bottom first
	done  map[string]bool
	order []string // recorded post-order sequence
	rec   *trace.Recorder[search.State]
}

// TopologicalSort computes a topological ordering of all vertices in g,
// rooting the DFS forest at vertices in sorted ID order.
// Returns ErrGraphNil, ErrUndirectedGraph, ErrCycleDetected (wrapped with the
// offending vertex), ErrNeighborFetch or ctx.Err().
func TopologicalSort(g *core.Graph, options ...TopoOption) (*TopoResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}

	verts := g.Vertices()
	t := &topoSorter{
		graph: g,
		ctx:   opts.ctx,
		state: make(map[string]int, len(verts)),
		done:  make(map[string]bool, len(verts)),
		order: make([]string, 0, len(verts)),
		rec:   trace.NewRecorder[search.State](),
	}
	for _, v := range verts {
		if t.state[v] == White {
			if err := t.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// Reverse post-order to produce topological order
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}
	if len(verts) > 0 {
		t.rec.Record(trace.KindComplete, fmt.Sprintf("Topological order of %d vertices", len(t.order)),
			t.snapshot(""), t.order...)
	}

	return &TopoResult{Order: t.order, Trace: t.rec.Trace()}, nil
}

func (t *topoSorter) snapshot(current string) search.State {
	frontier := make([]string, len(t.stack))
	for i, id := range t.stack {
		frontier[len(t.stack)-1-i] = id
	}

	return search.State{Current: current, Frontier: frontier, Visited: search.SortedKeys(t.done)}
}

// visit performs a DFS from id, marking states and detecting back-edges.
func (t *topoSorter) visit(id string) error {
	select {
	case <-t.ctx.Done():
		return t.ctx.Err()
	default:
	}
	// Gray again means a back-edge
	if t.state[id] == Gray {
		return fmt.Errorf("%w: back-edge into %q", ErrCycleDetected, id)
	}
	if t.state[id] == Black {
		return nil
	}
	t.state[id] = Gray
	t.stack = append(t.stack, id)
	t.rec.Record(search.KindVisit, fmt.Sprintf("Enter %s", id), t.snapshot(id), id)

	neighbors, err := t.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, e := range neighbors {
		if err = t.visit(e.To); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.done[id] = true
	t.stack = t.stack[:len(t.stack)-1]
	t.order = append(t.order, id)
	t.rec.Record(KindEmit, fmt.Sprintf("Finish %s", id), t.snapshot(id), id)

	return nil
}
