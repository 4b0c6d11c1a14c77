package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/search"
	"github.com/katalvlaran/stepwise/trace"
)

// errFound unwinds the recursion once the target is discovered.
var errFound = errors.New("dfs: target found")

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	stack []string    // recursion stack, bottom first
	rec   *trace.Recorder[search.State]
	res   *DFSResult // result collector
}

// DFS performs a traced depth-first search on g from startID.
// Neighbors are explored in core insertion order. Returns the result or an
// error if aborted by context or hook; on abort the partial result, with the
// trace recorded so far, is returned alongside the error.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Verify startID
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result with capacity hint
	n := g.VertexCount()
	res := &DFSResult{
		Order:   make([]string, 0, n),
		Finish:  make([]string, 0, n),
		Depth:   make(map[string]int, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}
	w := &dfsWalker{graph: g, opts: dopts, rec: trace.NewRecorder[search.State](), res: res}

	// 5. Traverse and close the trace
	err := w.traverse(startID, 0)
	switch {
	case errors.Is(err, errFound):
		err = nil
		res.Found = true
		res.Path = search.Path(res.Parent, startID, dopts.Target)
		w.rec.Record(search.KindFound,
			fmt.Sprintf("Discovered %s at depth %d", dopts.Target, res.Depth[dopts.Target]),
			w.snapshot(dopts.Target), res.Path...)
	case err == nil:
		desc := fmt.Sprintf("Traversal complete: %d vertices visited", len(res.Order))
		if dopts.Target != "" {
			desc = fmt.Sprintf("Stack empty: %s is unreachable", dopts.Target)
		}
		w.rec.Record(search.KindExhausted, desc, w.snapshot(""))
	}
	res.Trace = w.rec.Trace()

	return res, err
}

// snapshot reports the recursion stack top-first as the frontier.
func (w *dfsWalker) snapshot(current string) search.State {
	frontier := make([]string, len(w.stack))
	for i, id := range w.stack {
		frontier[len(w.stack)-1-i] = id
	}

	return search.State{
		Current:  current,
		Frontier: frontier,
		Visited:  search.SortedKeys(w.res.Visited),
	}
}

// traverse visits vertex id at given depth, recursing to neighbors.
// It honors context cancellation, depth limit, hooks and filtering.
func (w *dfsWalker) traverse(id string, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited, record depth and push onto the stack
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)
	w.stack = append(w.stack, id)
	w.rec.Record(search.KindVisit, fmt.Sprintf("Visit %s (depth %d)", id, depth), w.snapshot(id), id)

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}
	if w.opts.Target != "" && id == w.opts.Target {
		return errFound
	}

	// 4. Explore each neighbor unless the depth limit is reached
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		nbs, err := w.graph.Neighbors(id)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrNeighborFetch, id, err)
		}
		for _, e := range nbs {
			nid := e.Other(id)
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				continue
			}
			if w.res.Visited[nid] {
				continue
			}
			w.res.Parent[nid] = id
			w.rec.Record(search.KindPush, fmt.Sprintf("Descend %s → %s", id, nid), w.snapshot(id), id, nid)
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	// 5. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	// 6. Pop and record finish order
	w.stack = w.stack[:len(w.stack)-1]
	w.res.Finish = append(w.res.Finish, id)
	w.rec.Record(KindBacktrack, fmt.Sprintf("Backtrack from %s", id), w.snapshot(id), id)

	return nil
}
