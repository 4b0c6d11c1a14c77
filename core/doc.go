// Package core provides the thread-safe in-memory Graph that the traced
// graph engines (bfs, dfs, dijkstra, prim_kruskal) run on.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj) so readers do not contend with each other.
//
// Determinism
//
//	Traces are replayed and asserted step by step, so iteration order is part
//	of the contract:
//	  – Vertices() returns IDs sorted lexicographically.
//	  – Edges() returns edges in insertion order.
//	  – Neighbors(id) returns incident edges in insertion order.
//	Edge IDs are "e1", "e2", … in insertion order; Edge.Seq carries the
//	numeric sequence so ordering never depends on string comparison.
//
// Core Methods:
//
//	AddVertex(id string) error                                  // O(1)
//	HasVertex(id string) bool                                   // O(1)
//	AddEdge(from, to string, weight float64) (string, error)    // O(1)
//	HasEdge(from, to string) bool                               // O(d)
//	Neighbors(id string) ([]*Edge, error)                       // O(d)
//	NeighborIDs(id string) ([]string, error)                    // O(d)
//	Vertices() []string                                         // O(V log V)
//	Edges() []*Edge                                             // O(E log E)
//	Clone() *Graph                                              // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
