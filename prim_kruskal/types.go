// Package prim_kruskal defines configuration options, sentinel errors and the
// traced result types for MST computation.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/trace"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected, weighted graph.
// Returned when graph is nil, directed, or unweighted.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod is returned by Compute for a Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Step kinds recorded by both algorithms.
const (
	KindConsider trace.Kind = "consider"
	KindAccept   trace.Kind = "accept"
	KindReject   trace.Kind = "reject"
	KindComplete            = trace.KindComplete
)

// State is the snapshot carried by every MST step.
//
// Accepted lists tree edge IDs in acceptance order. Frontier lists the
// candidate edge IDs in the order they would be examined next: the rest of
// the sorted edge list for Kruskal, the heap in pop order for Prim.
type State struct {
	Accepted []string `json:"accepted"`
	Frontier []string `json:"frontier"`
	Total    float64  `json:"total"`
}

// Result is the spanning tree, its weight and the recorded steps.
type Result struct {
	Edges []core.Edge        `json:"edges"`
	Total float64            `json:"total"`
	Trace trace.Trace[State] `json:"-"`
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	// Empty means the lexicographically smallest vertex.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal, then applies opts.
func DefaultOptions(opts ...Option) MSTOptions {
	o := MSTOptions{Method: MethodKruskal}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
// For Prim with an empty Root, the smallest vertex ID is used.
func Compute(graph *core.Graph, opts MSTOptions) (*Result, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		root := opts.Root
		if root == "" && graph != nil {
			if vs := graph.Vertices(); len(vs) > 0 {
				root = vs[0]
			}
		}
		return Prim(graph, root)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// validate applies the shared graph checks of both algorithms.
func validate(graph *core.Graph) error {
	if graph == nil || !graph.Weighted() || graph.Directed() {
		return ErrInvalidGraph
	}

	return nil
}

// edgeLabel renders e as "A–B (w)".
func edgeLabel(e *core.Edge) string {
	return fmt.Sprintf("%s–%s (%v)", e.From, e.To, e.Weight)
}

// recorder wraps the trace recorder with the accepted-edge bookkeeping.
type recorder struct {
	rec      *trace.Recorder[State]
	accepted []string
	edges    []core.Edge
	total    float64
}

func newRecorder() *recorder {
	return &recorder{rec: trace.NewRecorder[State]()}
}

func (r *recorder) record(kind trace.Kind, desc string, frontier []string, highlighted ...string) {
	r.rec.Record(kind, desc, State{
		Accepted: append([]string{}, r.accepted...),
		Frontier: frontier,
		Total:    r.total,
	}, highlighted...)
}

func (r *recorder) accept(e *core.Edge) {
	r.accepted = append(r.accepted, e.ID)
	r.edges = append(r.edges, *e)
	r.total += e.Weight
}

func (r *recorder) result() *Result {
	r.record(KindComplete,
		fmt.Sprintf("Spanning tree complete: %d edges, total weight %v", len(r.edges), r.total),
		[]string{}, r.accepted...)
	edges := r.edges
	if edges == nil {
		edges = []core.Edge{}
	}

	return &Result{Edges: edges, Total: r.total, Trace: r.rec.Trace()}
}
