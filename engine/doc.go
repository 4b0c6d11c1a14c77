// Package engine is the single invocation point for every traced algorithm.
//
// Run(ctx, Request) looks the algorithm up in a fixed registry, decodes the
// plain-data Input and Params, runs the engine and returns its result with
// the type-erased step list:
//
//	Request{Algorithm: "kmp", Input: "ABABDABACDABABCABAB", Params: {"pattern": "ABABCABAB"}}
//	→ Response{Algorithm: "kmp", Result: {...}, Steps: [...]}
//
// Input formats by category:
//
//   - text      (huffman, matchers, manacher): the raw string.
//   - sort      (bubble … heap): integers separated by commas or whitespace.
//   - grid      (bfs, dfs, dijkstra, astar): maze rows separated by newlines
//     or ';' with '#' walls, 'S' start and 'G' goal. Param "conn": 4 or 8.
//   - graph     (kruskal, prim, toposort): edges "from to [weight]" separated
//     by newlines or ','. Param "root" for prim.
//   - hashring: keys separated by whitespace. Params "servers", "replicas".
//
// Empty input yields an empty Response; outside the text category a
// whitespace-only input counts as empty. Unparsable input returns
// ErrBadInput, malformed params ErrBadParams, an unregistered name
// ErrUnknownAlgorithm. Input or params over the run Limits fail the same
// way before the engine starts. Engines themselves never log.
package engine
