package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/stepwise/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph  : if graph is nil, or graph.Directed() == true, or graph.Weighted() == false.
//   - ErrDisconnected  : if |V| == 0 or |V| > 1 but graph is not fully connected.
//
// Steps:
//  1. Validate graph.
//  2. Retrieve sorted vertex IDs; if none → ErrDisconnected. One vertex → empty tree.
//  3. Collect all edges via graph.Edges(), skip self-loops.
//  4. Stable-sort edges by ascending Weight (ties keep insertion order).
//  5. Initialize DSU parent[] and rank[] for each vertex.
//  6. For each sorted edge record "consider", then "accept" if it joins two
//     components or "reject" if it would close a cycle.
//  7. Stop at |V|-1 edges; fewer after the loop → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V), plus O(E) per recorded step.
func Kruskal(graph *core.Graph) (*Result, error) {
	if err := validate(graph); err != nil {
		return nil, err
	}
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, ErrDisconnected
	}
	r := newRecorder()
	if len(vertices) == 1 {
		return r.result(), nil
	}

	all := graph.Edges()
	edges := make([]*core.Edge, 0, len(all))
	for _, e := range all {
		if e.From == e.To {
			continue // loops never belong to a spanning tree
		}
		edges = append(edges, e)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, vid := range vertices {
		parent[vid] = vid
	}
	// Iterative find with path compression to avoid deep recursion.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	// Union by rank merges two disjoint roots.
	union := func(rootU, rootV string) {
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}
	remaining := func(from int) []string {
		ids := make([]string, 0, len(edges)-from)
		for _, e := range edges[from:] {
			ids = append(ids, e.ID)
		}
		return ids
	}

	n := len(vertices)
	for i, e := range edges {
		r.record(KindConsider, "Consider "+edgeLabel(e), remaining(i+1), e.ID)
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			r.record(KindReject,
				fmt.Sprintf("Reject %s: %s and %s are already connected", edgeLabel(e), e.From, e.To),
				remaining(i+1), e.ID)
			continue
		}
		union(ru, rv)
		r.accept(e)
		r.record(KindAccept, "Accept "+edgeLabel(e), remaining(i+1), e.ID)
		if len(r.edges) == n-1 {
			break
		}
	}
	if len(r.edges) < n-1 {
		return nil, ErrDisconnected
	}

	return r.result(), nil
}
