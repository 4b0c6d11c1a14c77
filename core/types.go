package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data (e.g. grid coordinates).
	// It is shared, not deep-copied, by Clone.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
// Edges are immutable once added; engines treat them as read-only.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string `json:"id"`

	// Seq is the insertion sequence number backing ID.
	Seq uint64 `json:"-"`

	// From is the source vertex ID.
	From string `json:"from"`

	// To is the destination vertex ID.
	To string `json:"to"`

	// Weight is the cost of traversing the edge.
	Weight float64 `json:"weight"`

	// Directed indicates this edge is one-way.
	Directed bool `json:"directed"`
}

// Other returns the endpoint of e opposite to id. For a self-loop it
// returns id itself.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all new edges.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// muVert protects vertices; muEdgeAdj protects edges, adjacency and the
// edge counter. Locks are always taken in that order.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, adjacency and nextEdgeID

	// Configuration flags
	directed   bool // edge directedness
	weighted   bool // allow non-zero weights
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // last issued edge sequence number
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[vertexID] lists incident edge IDs in insertion order.
	// Undirected edges appear under both endpoints; a loop appears once.
	adjacency map[string][]string
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero weights are allowed.
func (g *Graph) Weighted() bool { return g.weighted }

// Looped reports whether self-loops are allowed.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are allowed.
func (g *Graph) Multigraph() bool { return g.allowMulti }
