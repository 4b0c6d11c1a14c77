package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/pqueue"
	"github.com/katalvlaran/stepwise/search"
	"github.com/katalvlaran/stepwise/trace"
)

// Dijkstra computes shortest paths from the configured Source using
// Dijkstra's algorithm, or A* when WithHeuristic is given, and records a
// Trace of every push, settle and successful relaxation.
//
// Steps:
//  1. Validate options and graph: non-empty Source, non-nil weighted graph,
//     Source present, no negative weights.
//  2. Push Source with priority 0.
//  3. Pop the minimum entry (ties: first pushed wins). Skip stale entries.
//  4. Settle it; stop if it is the Target.
//  5. Relax each outgoing edge; on improvement push v with dist(v) [+ h(v)].
//  6. When the frontier empties, record an exhausted step.
//
// Complexity:
//   - Time:  O((V + E) log V) plus O(V) per recorded step for snapshots.
//   - Space: O(V + E) plus the trace.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, ErrStartVertexNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, V),
		prev:    make(map[string]string, V),
		settled: make(map[string]bool, V),
		pq:      pqueue.NewHeap[string, float64](),
		rec:     trace.NewRecorder[search.State](),
		res:     &Result{Order: make([]string, 0, V)},
	}

	r.init()
	err := r.process()
	r.res.Dist = r.dist
	r.res.Prev = r.prev
	r.res.Trace = r.rec.Trace()

	return r.res, err
}

// runner holds the mutable state of one search.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64            // best known distance per reached vertex
	prev    map[string]string             // predecessor on the shortest path
	settled map[string]bool               // distance finalized
	pq      *pqueue.Heap[string, float64] // lazy frontier, priority dist (+h)
	rec     *trace.Recorder[search.State]
	res     *Result
}

func (r *runner) priority(v string, d float64) float64 {
	if r.options.Heuristic == nil {
		return d
	}

	return d + r.options.Heuristic(v)
}

// snapshot lists the live frontier in pop order, skipping settled and
// superseded entries.
func (r *runner) snapshot(current string) search.State {
	items := r.pq.Items()
	frontier := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if r.settled[it.Item] || seen[it.Item] {
			continue
		}
		seen[it.Item] = true
		frontier = append(frontier, it.Item)
	}
	dist := make(map[string]float64, len(r.dist))
	for k, v := range r.dist {
		dist[k] = v
	}

	return search.State{
		Current:  current,
		Frontier: frontier,
		Visited:  search.SortedKeys(r.settled),
		Dist:     dist,
	}
}

func (r *runner) init() {
	src := r.options.Source
	r.dist[src] = 0
	p := r.priority(src, 0)
	r.pq.Push(src, p)
	r.rec.Record(search.KindPush, fmt.Sprintf("Push %s with priority %v", src, p), r.snapshot(""), src)
}

func (r *runner) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		u, _, _ := r.pq.PopMin()
		if r.settled[u] {
			continue
		}
		d := r.dist[u]
		if d > r.options.MaxDistance {
			break
		}
		r.settled[u] = true
		r.res.Order = append(r.res.Order, u)
		r.rec.Record(search.KindVisit, fmt.Sprintf("Settle %s at distance %v", u, d), r.snapshot(u), u)

		if r.options.Target != "" && u == r.options.Target {
			r.res.Found = true
			r.res.Cost = d
			r.res.Path = search.Path(r.prev, r.options.Source, u)
			r.rec.Record(search.KindFound, fmt.Sprintf("Reached %s with cost %v", u, d), r.snapshot(u), r.res.Path...)

			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	desc := fmt.Sprintf("Frontier empty: %d vertices settled", len(r.res.Order))
	if r.options.Target != "" {
		desc = fmt.Sprintf("Frontier empty: %s is unreachable", r.options.Target)
	}
	r.rec.Record(search.KindExhausted, desc, r.snapshot(""))

	return nil
}

// relax tries every edge leaving u and pushes improved neighbors.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}
	for _, e := range neighbors {
		v := e.Other(u)
		if r.settled[v] || e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		if old, ok := r.dist[v]; ok && newDist >= old {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		p := r.priority(v, newDist)
		r.pq.Push(v, p)
		r.rec.Record(search.KindRelax,
			fmt.Sprintf("Relax %s→%s: dist[%s] = %v (priority %v)", u, v, v, newDist, p),
			r.snapshot(u), u, v)
	}

	return nil
}
