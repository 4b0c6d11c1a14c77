package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/search"
	"github.com/katalvlaran/stepwise/trace"
)

// queueItem pairs a vertex ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	seen    map[string]bool // discovered (enqueued at least once)
	visited map[string]bool // dequeued and expanded
	rec     *trace.Recorder[search.State]
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// ctx.Err() on cancellation, or any user-supplied hook error. On abort the
// partial result (with the trace so far) is returned alongside the error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		seen:    make(map[string]bool, n),
		visited: make(map[string]bool, n),
		rec:     trace.NewRecorder[search.State](),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(startID, 0, "")
	err := w.loop()
	if err == nil && !w.res.Found {
		w.exhausted()
	}
	w.res.Trace = w.rec.Trace()

	return w.res, err
}

// snapshot captures the queue front-first and the visited set.
func (w *walker) snapshot(current string) search.State {
	frontier := make([]string, len(w.queue))
	for i, it := range w.queue {
		frontier[i] = it.id
	}

	return search.State{
		Current:  current,
		Frontier: frontier,
		Visited:  search.SortedKeys(w.visited),
	}
}

// enqueue marks id seen at depth d, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.seen[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})

	desc := fmt.Sprintf("Enqueue %s (depth %d)", id, d)
	if parent != "" {
		desc = fmt.Sprintf("Enqueue %s from %s (depth %d)", id, parent, d)
	}
	w.rec.Record(search.KindEnqueue, desc, w.snapshot(parent), id)
}

// loop processes the queue until empty, target found, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.opts.Target != "" && item.id == w.opts.Target {
			w.found(item)

			return nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// visit records the vertex in Order, emits a visit step and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.visited[item.id] = true
	w.res.Order = append(w.res.Order, item.id)
	w.rec.Record(search.KindVisit,
		fmt.Sprintf("Visit %s (depth %d)", item.id, item.depth),
		w.snapshot(item.id), item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}

	return nil
}

// found fills Path and records the terminal step.
func (w *walker) found(item queueItem) {
	path, _ := w.res.PathTo(item.id)
	w.res.Path = path
	w.res.Found = true
	w.rec.Record(search.KindFound,
		fmt.Sprintf("Reached %s in %d hops", item.id, item.depth),
		w.snapshot(item.id), path...)
}

// exhausted records that the queue ran dry.
func (w *walker) exhausted() {
	desc := fmt.Sprintf("Queue empty: %d vertices visited", len(w.res.Order))
	if w.opts.Target != "" {
		desc = fmt.Sprintf("Queue empty: %s is unreachable", w.opts.Target)
	}
	w.rec.Record(search.KindExhausted, desc, w.snapshot(""))
}

// enqueueNeighbors retrieves neighbors, applies filtering and MaxDepth,
// and enqueues each unseen neighbor. Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		// first time seen?
		if !w.seen[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}

	return nil
}
