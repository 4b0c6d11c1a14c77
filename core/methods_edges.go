// File: methods_edges.go
// Role: Edge lifecycle & adjacency queries.
//
// Determinism:
//   - Edges() is ordered by insertion sequence.
//   - Neighbors(id) is ordered by insertion sequence of the incident edges.
package core

import (
	"sort"
	"strconv"
)

// AddEdge creates a new edge from→to with the given weight and returns its ID.
// Missing endpoints are added implicitly.
//
// Errors:
//   - ErrEmptyVertexID if from or to is empty.
//   - ErrBadWeight if weight != 0 on an unweighted graph.
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed if an edge from→to exists and multi-edges are disabled.
//
// Complexity: O(1) amortized, O(d) for the parallel-edge check.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return "", ErrMultiEdgeNotAllowed
	}

	g.nextEdgeID++
	e := &Edge{
		ID:       "e" + strconv.FormatUint(g.nextEdgeID, 10),
		Seq:      g.nextEdgeID,
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
	}
	g.edges[e.ID] = e
	g.adjacency[from] = append(g.adjacency[from], e.ID)
	if !g.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], e.ID)
	}

	return e.ID, nil
}

// HasEdge reports whether at least one edge from→to exists.
// On undirected graphs the direction is ignored.
// Complexity: O(d).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.hasEdgeLocked(from, to)
}

// hasEdgeLocked assumes muEdgeAdj is held.
func (g *Graph) hasEdgeLocked(from, to string) bool {
	for _, eid := range g.adjacency[from] {
		e := g.edges[eid]
		if e.From == from && e.To == to {
			return true
		}
		if !e.Directed && e.To == from && e.From == to {
			return true
		}
	}

	return false
}

// Neighbors returns the edges leaving id (for undirected graphs: all incident
// edges) in insertion order. Use Edge.Other(id) to find the far endpoint.
// Returns ErrVertexNotFound if id is unknown.
// Complexity: O(d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	ids := g.adjacency[id]
	out := make([]*Edge, 0, len(ids))
	for _, eid := range ids {
		out = append(out, g.edges[eid])
	}

	return out, nil
}

// NeighborIDs returns the distinct far endpoints of Neighbors(id), in order
// of first appearance.
// Complexity: O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		nb := e.Other(id)
		if _, dup := seen[nb]; dup {
			continue
		}
		seen[nb] = struct{}{}
		out = append(out, nb)
	}

	return out, nil
}

// Edges returns all edges ordered by insertion.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}
