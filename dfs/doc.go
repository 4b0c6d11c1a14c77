// Package dfs implements traced depth-first search and topological sort on a
// core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before backtracking.
//     Records pre-order (Order) and post-order (Finish), supports an optional
//     target (WithTarget), pre- and post-order hooks, cancellation, depth
//     limiting and neighbor filtering.
//   - TopologicalSort: linear ordering of a DAG via reverse post-order, with
//     ErrCycleDetected on a back-edge.
//
// Steps (DFS):
//
//	visit     – a vertex is discovered and pushed on the recursion stack
//	push      – descent along a tree edge u → v
//	backtrack – a vertex is fully explored and popped
//	found     – the target was discovered; traversal stops
//	exhausted – the stack emptied without finding the target
//
// Snapshots are search.State values whose Frontier is the recursion stack
// read top-first.
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (visitation markers)
//   - DFSOptions: Context, Target, hooks, MaxDepth, FilterNeighbor
//   - DFSResult: Order, Finish, Depth, Parent, Visited, Path, Found, Trace
//
// Complexity:
//
//   - DFS:             Time O(V+E) plus O(V) per recorded step, Memory O(V) per step
//   - TopologicalSort: same bounds
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrCycleDetected        back-edge found by TopologicalSort
//   - ErrUndirectedGraph      TopologicalSort on an undirected graph
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
