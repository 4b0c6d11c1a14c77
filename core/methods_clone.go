package core

// Clone returns a deep copy of the graph structure: vertices, edges and
// adjacency are copied, configuration flags and the edge counter are kept.
// Vertex metadata maps are shallow-copied.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := &Graph{
		directed:   g.directed,
		weighted:   g.weighted,
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		nextEdgeID: g.nextEdgeID,
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string][]string, len(g.adjacency)),
	}
	for id, v := range g.vertices {
		md := make(map[string]interface{}, len(v.Metadata))
		for k, val := range v.Metadata {
			md[k] = val
		}
		out.vertices[id] = &Vertex{ID: id, Metadata: md}
	}
	for id, e := range g.edges {
		cp := *e
		out.edges[id] = &cp
	}
	for id, ids := range g.adjacency {
		out.adjacency[id] = append([]string(nil), ids...)
	}

	return out
}
