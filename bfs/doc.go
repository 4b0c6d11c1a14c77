// Package bfs provides a traced breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, visit order and
// a step-by-step Trace that a UI can replay.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit (dequeue) sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Path / Found: route to the optional target (WithTarget)
//   - Trace: one step per enqueue, visit and terminal event
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Edge weights are ignored; every edge counts as one hop.
//
// Steps
//
//	enqueue   – a vertex is discovered and appended to the queue
//	visit     – a vertex is dequeued and expanded
//	found     – the target was dequeued; the search stops
//	exhausted – the queue ran dry (target unreachable, or no target given)
//
// Every step carries a search.State snapshot: the current vertex, the queue
// contents front-first, and the sorted set of visited vertices.
//
// Determinism
//
//	core.Neighbors returns edges in insertion order and BFS enqueues neighbors
//	in that order, so the visit sequence and the trace are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O((V + E) · V) with tracing (each step snapshots O(V) state)
//   - Memory: O(V) per step
//
// Usage
//
//	res, err := bfs.BFS(g, "S", bfs.WithTarget("G"))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors,
//	    // ctx.Err() or a wrapped OnVisit error
//	}
//	if res.Found { fmt.Println(res.Path) }
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.Neighbors fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
