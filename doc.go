// Package stepwise is a collection of classical algorithms that record every
// state change as an immutable step, so that a viewer can replay the run
// forward, backward or at any speed without re-running it.
//
// Each engine is a pure function: input in, result plus trace.Trace out.
//
//	trace        Step, Trace and Recorder, generic over the snapshot type
//	playback     Controller stepping through a finished trace
//	pqueue       stable min-priority queues (heap and linear scan)
//	huffman      Huffman tree construction, codes, encode/decode
//	strmatch     naive, KMP, Boyer–Moore, Rabin–Karp, Z search, Manacher
//	sorting      bubble, selection, insertion, merge, quick, heap sort
//	core         thread-safe Graph, Vertex and Edge
//	bfs, dfs     traced traversals; dfs also sorts topologically
//	dijkstra     Dijkstra and A* with a heuristic
//	gridgraph    mazes and integer grids as graphs, regions, wall breach
//	pathfind     bfs/dfs/dijkstra/astar from S to G on a maze
//	prim_kruskal minimum spanning trees
//	hashring     consistent hashing ring with virtual nodes
//	engine       Run(ctx, Request) over every algorithm by name
//	server       HTTP API storing runs and serving their steps
//
// Determinism: for the same input every engine produces the same trace.
// Ties in priority selection go to the entry pushed first, graph neighbors
// are visited in insertion order, and visited sets in snapshots are sorted.
//
// The command in cmd/stepwise runs one algorithm from the shell or serves
// the HTTP API:
//
//	stepwise -algo dijkstra -input 'S..#;.#..;...G' -play
//	stepwise -serve -config stepwise.yaml
package stepwise
