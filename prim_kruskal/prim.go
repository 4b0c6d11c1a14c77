package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/pqueue"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from a specified root vertex.
//
// Error Conditions:
//   - ErrInvalidGraph        : if graph is nil, directed or unweighted.
//   - ErrEmptyRoot           : if the provided root string is empty.
//   - core.ErrVertexNotFound : if the root vertex does not exist in the graph.
//   - ErrDisconnected        : if |V| == 0 or the graph is not fully connected.
//
// Steps:
//  1. Validate graph and root.
//  2. Mark root as in-tree and push its incident edges onto a pqueue.Heap
//     (equal weights pop in push order).
//  3. While the heap is non-empty and the tree has < |V|-1 edges:
//     a. Pop the lightest edge and record "consider".
//     b. If both endpoints are in the tree, record "reject".
//     c. Otherwise accept it, add the new vertex and push its edges to
//     vertices outside the tree.
//  4. Fewer than |V|-1 edges → ErrDisconnected.
//
// Complexity: O(E log E) time, O(V + E) memory, plus O(E) per recorded step.
func Prim(graph *core.Graph, root string) (*Result, error) {
	if err := validate(graph); err != nil {
		return nil, err
	}
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, ErrDisconnected
	}
	if root == "" {
		return nil, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, fmt.Errorf("%w: root %q", core.ErrVertexNotFound, root)
	}

	n := len(vertices)
	inTree := make(map[string]bool, n)
	pq := pqueue.NewHeap[*core.Edge, float64]()
	r := newRecorder()

	frontier := func() []string {
		items := pq.Items()
		ids := make([]string, len(items))
		for i, it := range items {
			ids[i] = it.Item.ID
		}
		return ids
	}
	grow := func(v string) error {
		inTree[v] = true
		nbs, err := graph.Neighbors(v)
		if err != nil {
			return err
		}
		for _, e := range nbs {
			if !inTree[e.Other(v)] {
				pq.Push(e, e.Weight)
			}
		}
		return nil
	}

	if err := grow(root); err != nil {
		return nil, err
	}
	for pq.Len() > 0 && len(r.edges) < n-1 {
		e, _, _ := pq.PopMin()
		r.record(KindConsider, "Consider "+edgeLabel(e), frontier(), e.ID)
		if inTree[e.From] && inTree[e.To] {
			r.record(KindReject,
				fmt.Sprintf("Reject %s: both endpoints already in the tree", edgeLabel(e)),
				frontier(), e.ID)
			continue
		}
		v := e.To
		if inTree[v] {
			v = e.From
		}
		r.accept(e)
		if err := grow(v); err != nil {
			return nil, err
		}
		r.record(KindAccept, fmt.Sprintf("Accept %s: add %s to the tree", edgeLabel(e), v), frontier(), e.ID, v)
	}
	if len(r.edges) < n-1 {
		return nil, ErrDisconnected
	}

	return r.result(), nil
}
