// Package search holds the snapshot type and step kinds shared by the traced
// graph searches (bfs, dfs, dijkstra) so that a UI can render any of them
// with one renderer.
package search

import (
	"sort"

	"github.com/katalvlaran/stepwise/trace"
)

// Step kinds emitted by the graph searches.
const (
	KindVisit     trace.Kind = trace.KindVisit
	KindEnqueue   trace.Kind = "enqueue"
	KindPush      trace.Kind = "push"
	KindRelax     trace.Kind = "relax"
	KindFound     trace.Kind = "found"
	KindExhausted trace.Kind = "exhausted"
)

// State is the snapshot carried by every search step.
//
// Frontier is in selection order (queue order for BFS, top-of-stack first for
// DFS, pop order for Dijkstra/A*). Visited is sorted. Dist is set by the
// weighted searches only.
type State struct {
	Current  string             `json:"current"`
	Frontier []string           `json:"frontier"`
	Visited  []string           `json:"visited"`
	Dist     map[string]float64 `json:"dist,omitempty" yaml:"dist,omitempty"`
}

// SortedKeys returns the keys of a visited set in ascending order.
func SortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k, ok := range set {
		if ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)

	return out
}

// Path rebuilds start→goal from predecessor links. It returns nil when goal
// has no chain back to start.
func Path(parent map[string]string, start, goal string) []string {
	path := []string{goal}
	for cur := goal; cur != start; {
		prev, ok := parent[cur]
		if !ok {
			return nil
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
