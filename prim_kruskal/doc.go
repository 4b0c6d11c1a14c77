// Package prim_kruskal computes the Minimum Spanning Tree (MST) of an
// undirected, weighted *core.Graph with Prim's and Kruskal's algorithms and
// records every decision as a trace.Step[State].
//
// What:
//
//   - Kruskal(g) sorts all edges by weight (stable, so ties keep insertion
//     order) and accepts each edge that joins two disjoint components of a
//     union-find forest.
//   - Prim(g, root) grows one tree from root, always taking the lightest edge
//     leaving the tree from a pqueue.Heap.
//   - Compute(g, opts) dispatches on MSTOptions.Method.
//
// Both algorithms reach the same minimum total weight on a connected graph;
// the accepted edge sets may differ when weights tie.
//
// Trace:
//
//   - "consider" when an edge is examined.
//   - "accept" when it joins the tree, "reject" when it would close a cycle.
//   - "complete" once |V|-1 edges are accepted.
//
// Complexity:
//
//   - Kruskal: O(E log E + α(V)·E), Memory: O(V + E).
//   - Prim:    O(E log E),           Memory: O(V + E).
//
// Errors:
//
//   - ErrInvalidGraph: nil, directed or unweighted graph.
//   - ErrEmptyRoot: Prim called with an empty root.
//   - core.ErrVertexNotFound: Prim root not in the graph.
//   - ErrDisconnected: no spanning tree covers all vertices.
//   - ErrUnknownMethod: Compute with an unsupported Method.
package prim_kruskal
