// Package dijkstra defines core types and configuration options
// for the traced Dijkstra / A* shortest-path search on weighted graphs.
//
// Options:
//
//	– Source:           ID of the starting vertex (must be non-empty and present in the graph).
//	– WithTarget:       stop once the target is settled and fill Path/Cost.
//	– WithHeuristic:    A* mode; frontier priority becomes dist + h(v).
//	– WithContext:      cancellation, checked once per settled vertex.
//	– WithMaxDistance:  optional cap on distances to explore; vertices beyond this are skipped.
//	– WithInfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource          if the provided source ID is empty.
//	– ErrNilGraph             if the provided graph pointer is nil.
//	– ErrUnweightedGraph      if the graph is not configured to support weights.
//	– ErrStartVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrNegativeWeight       if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance       if MaxDistance < 0.
//	– ErrBadInfThreshold      if InfEdgeThreshold <= 0.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/stepwise/search"
	"github.com/katalvlaran/stepwise/trace"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrStartVertexNotFound indicates that the source vertex does not exist
	// in the provided graph.
	ErrStartVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Heuristic estimates the remaining cost from a vertex to the target.
// It must be admissible and consistent for A* to return shortest paths.
type Heuristic func(id string) float64

// Options configures the behavior of the search.
type Options struct {
	Source           string          // The ID of the source vertex
	Target           string          // Optional goal; empty explores everything reachable
	Heuristic        Heuristic       // nil for plain Dijkstra
	Ctx              context.Context // cancellation
	MaxDistance      float64         // Maximum distance to explore
	InfEdgeThreshold float64         // Weight threshold at or above which edges are non-traversable

	err error // first invalid option
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithTarget stops the search once id is settled.
func WithTarget(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithHeuristic switches the search to A*: vertices are popped by
// dist(v) + h(v). A nil h keeps plain Dijkstra.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Negative values surface as ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. Zero or negative values surface as ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: %v", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source vertex ID.
//
// Defaults:
//   - Source:           <as passed> (validated in Dijkstra).
//   - Target:           none.
//   - Heuristic:        none (plain Dijkstra).
//   - MaxDistance:      +Inf (explore all reachable).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		Ctx:              context.Background(),
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Result is the outcome of a traced search.
//
//   - Order: vertices in the order they were settled.
//   - Dist: shortest known distance per reached vertex (unreached are absent).
//   - Prev: predecessor on the shortest-path tree.
//   - Path, Cost, Found: route to Target; Path is nil when not found.
type Result struct {
	Order []string
	Dist  map[string]float64
	Prev  map[string]string
	Path  []string
	Cost  float64
	Found bool
	Trace trace.Trace[search.State]
}
