// Package gridgraph treats a 2D maze or integer grid as a graph for the
// traced pathfinding engines.
//
// What:
//
//   - Parse builds a grid from maze rows ('#' wall, 'S' start, 'G' goal).
//   - New wraps a rectangular [][]int grid; cells ≥ OpenThreshold are open.
//   - ToCoreGraph converts open cells to a *core.Graph with "x,y" vertex IDs.
//   - Manhattan / Octile heuristics for A* over that graph.
//   - ConnectedComponents labels open regions; Breach computes the fewest
//     walls to knock down (0-1 BFS) to join two regions.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Breach:              O(W×H×d), Memory: O(W×H).
//   - ToCoreGraph:         O(W×H×d), Memory: O(W×H×d).
//
// Options:
//
//   - GridOptions.OpenThreshold: minimum value considered walkable.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrDuplicateMarker: more than one 'S' or 'G'.
//   - ErrBadCellID: vertex ID not of the form "x,y".
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no breach path exists between specified components.
package gridgraph
