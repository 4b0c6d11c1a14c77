// Package dijkstra provides a traced implementation of Dijkstra's
// shortest-path algorithm on weighted graphs with non-negative edge weights,
// with an A* mode enabled by WithHeuristic.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices, or stops early at WithTarget.
//   - The frontier is a pqueue.Heap with lazy decrease-key; equal priorities
//     are popped in push order, so traces are reproducible.
//   - Every push, settle and successful relaxation records one step whose
//     search.State snapshot carries the live frontier, the settled set and the
//     current distance table.
//
// Steps:
//
//	push      – the source enters the frontier
//	visit     – a vertex is popped and its distance finalized
//	relax     – an edge improved a neighbor's distance (neighbor re-pushed)
//	found     – the target was settled
//	exhausted – the frontier emptied
//
// A*:
//
//	With a heuristic h, entries are prioritised by dist(v) + h(v). Dist and
//	Cost remain true path costs. h must be consistent (e.g. Manhattan distance
//	on a 4-connected unit grid) for the first settle of the target to be optimal.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) for the search itself.
//   - Each recorded step copies O(V) state.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithTarget("E"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path, res.Cost)
package dijkstra
