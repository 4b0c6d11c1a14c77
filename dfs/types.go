package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/stepwise/search"
	"github.com/katalvlaran/stepwise/trace"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

// KindBacktrack marks a vertex leaving the recursion stack.
const KindBacktrack trace.Kind = "backtrack"

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS
	// or TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")

	// ErrUndirectedGraph is returned by TopologicalSort on undirected graphs.
	ErrUndirectedGraph = errors.New("dfs: topological sort requires directed graph")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Target, if non-empty, stops the traversal when it is discovered.
	Target string

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order), before appending to result.Finish.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor ID before recursing.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(id string) bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No target, no hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTarget stops the traversal once id is discovered and fills Path.
func WithTarget(id string) Option {
	return func(o *DFSOptions) {
		o.Target = id
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited; negative disables the limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbor IDs.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in discovery sequence (pre-order).
	Order []string

	// Finish records vertices in the sequence they finished (post-order).
	Finish []string

	// Depth maps each vertex ID to its tree depth from the start.
	Depth map[string]int

	// Parent maps each vertex ID to the ID of the vertex from which it was first discovered.
	// The start vertex does not appear in this map.
	Parent map[string]string

	// Visited flags which vertices were reached during the traversal.
	Visited map[string]bool

	// Path is the tree path start→Target when Found; nil otherwise.
	Path []string

	// Found reports whether Target was discovered.
	Found bool

	// Trace holds one step per discovery, descent, backtrack and terminal event.
	Trace trace.Trace[search.State]
}
