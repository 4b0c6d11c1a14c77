package engine

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/dfs"
	"github.com/katalvlaran/stepwise/gridgraph"
	"github.com/katalvlaran/stepwise/hashring"
	"github.com/katalvlaran/stepwise/huffman"
	"github.com/katalvlaran/stepwise/pathfind"
	"github.com/katalvlaran/stepwise/prim_kruskal"
	"github.com/katalvlaran/stepwise/sorting"
	"github.com/katalvlaran/stepwise/strmatch"
	"github.com/katalvlaran/stepwise/trace"
)

// registry is filled once in init and read-only afterwards.
var registry = map[string]entry{}

func register(info Info, run runFunc) {
	registry[info.Name] = entry{info: info, run: run}
}

func init() {
	register(Info{Name: "huffman", Category: CategoryText,
		Summary: "Huffman tree construction, encode and decode"}, runHuffman)
	register(Info{Name: "manacher", Category: CategoryText,
		Summary: "longest palindromic substring (Manacher)"}, runManacher)
	for _, a := range strmatch.Algorithms() {
		register(Info{Name: string(a), Category: CategoryText,
			Summary: "exact string matching (" + string(a) + ")", Params: []string{"pattern"}}, runMatcher)
	}
	for _, a := range sorting.Algorithms() {
		register(Info{Name: string(a), Category: CategorySort,
			Summary: string(a) + " sort over integers"}, runSort)
	}
	for _, a := range pathfind.Algorithms() {
		register(Info{Name: string(a), Category: CategoryGrid,
			Summary: string(a) + " from S to G on a maze", Params: []string{"conn"}}, runGrid)
	}
	register(Info{Name: prim_kruskal.MethodKruskal, Category: CategoryGraph,
		Summary: "minimum spanning tree (Kruskal)"}, runMST)
	register(Info{Name: prim_kruskal.MethodPrim, Category: CategoryGraph,
		Summary: "minimum spanning tree (Prim)", Params: []string{"root"}}, runMST)
	register(Info{Name: "toposort", Category: CategoryGraph,
		Summary: "topological order of a directed graph"}, runTopo)
	register(Info{Name: "hashring", Category: CategoryHashring,
		Summary: "consistent hashing ring assignment", Params: []string{"servers", "replicas"}}, runHashring)
}

// HuffmanResult is the Result of "huffman".
type HuffmanResult struct {
	Symbols []huffman.Symbol  `json:"symbols" yaml:"symbols"`
	Codes   map[string]string `json:"codes" yaml:"codes"`
	Encoded string            `json:"encoded" yaml:"encoded"`
	Decoded string            `json:"decoded" yaml:"decoded"`
	Stats   huffman.Stats     `json:"stats" yaml:"stats"`
}

func runHuffman(_ context.Context, _, input string, _ Params, lim Limits) (any, trace.Trace[any], error) {
	if err := lim.checkText(input, ""); err != nil {
		return nil, trace.Trace[any]{}, err
	}
	b := huffman.Build(input)
	bits, err := huffman.Encode(input, b.Codes)
	if err != nil {
		return nil, trace.Trace[any]{}, err
	}
	decoded, err := huffman.Decode(bits, b.Root)
	if err != nil {
		return nil, trace.Trace[any]{}, err
	}
	codes := make(map[string]string, len(b.Codes))
	for r, c := range b.Codes {
		codes[string(r)] = c
	}

	return &HuffmanResult{
		Symbols: b.Symbols,
		Codes:   codes,
		Encoded: bits,
		Decoded: decoded,
		Stats:   b.Stats(),
	}, erase(b.Trace), nil
}

// MatchResult is the Result of the string matchers.
type MatchResult struct {
	Pattern     string `json:"pattern" yaml:"pattern"`
	Matches     []int  `json:"matches" yaml:"matches"`
	Comparisons int    `json:"comparisons" yaml:"comparisons"`
}

func runMatcher(_ context.Context, name, input string, p Params, lim Limits) (any, trace.Trace[any], error) {
	pattern, err := p.String("pattern")
	if err != nil {
		return nil, trace.Trace[any]{}, err
	}
	if err = lim.checkText(input, pattern); err != nil {
		return nil, trace.Trace[any]{}, err
	}
	res, err := strmatch.Match(input, pattern, strmatch.Algorithm(name))
	if err != nil {
		return nil, trace.Trace[any]{}, err
	}

	return &MatchResult{Pattern: pattern, Matches: res.Matches, Comparisons: res.Comparisons}, erase(res.Trace), nil
}

// PalindromeResult is the Result of "manacher".
type PalindromeResult struct {
	Start      int    `json:"start" yaml:"start"`
	Length     int    `json:"length" yaml:"length"`
	Palindrome string `json:"palindrome" yaml:"palindrome"`
}

func runManacher(_ context.Context, _, input string, _ Params, lim Limits) (any, trace.Trace[any], error) {
	if err := lim.checkText(input, ""); err != nil {
		return nil, trace.Trace[any]{}, err
	}
	res := strmatch.LongestPalindrome(input)

	return &PalindromeResult{Start: res.Start, Length: res.Length, Palindrome: res.Palindrome}, erase(res.Trace), nil
}

// SortResult is the Result of the sorting engines.
type SortResult struct {
	Sorted      []int `json:"sorted" yaml:"sorted"`
	Comparisons int   `json:"comparisons" yaml:"comparisons"`
	Swaps       int   `json:"swaps" yaml:"swaps"`
	Writes      int   `json:"writes" yaml:"writes"`
}

func runSort(_ context.Context, name, input string, _ Params, lim Limits) (any, trace.Trace[any], error) {
	values, err := parseInts(input)
	if err != nil {
		return nil, trace.Trace[any]{}, err
	}
	if err = atMost(ErrBadInput, "sort values", len(values), lim.MaxSortValues); err != nil {
		return nil, trace.Trace[any]{}, err
	}
	res, err := sorting.Sort(values, sorting.Algorithm(name))
	if err != nil {
		return nil, trace.Trace[any]{}, err
	}

	return &SortResult{
		Sorted:      res.Sorted,
		Comparisons: res.Comparisons,
		Swaps:       res.Swaps,
		Writes:      res.Writes,
	}, erase(res.Trace), nil
}

func runGrid(ctx context.Context, name, input string, p Params, lim Limits) (any, trace.Trace[any], error) {
	conn, err := p.Int("conn", 4)
	if err != nil {
		return nil, trace.Trace[any]{}, err
	}
	var c gridgraph.Connectivity
	switch conn {
	case 4:
		c = gridgraph.Conn4
	case 8:
		c = gridgraph.Conn8
	default:
		return nil, trace.Trace[any]{}, fmt.Errorf("%w: conn must be 4 or 8, got %d", ErrBadParams, conn)
	}
	rows := parseRows(input)
	if err = lim.checkGrid(rows); err != nil {
		return nil, trace.Trace[any]{}, err
	}
	grid, err := gridgraph.Parse(rows, c)
	if err != nil {
		return nil, trace.Trace[any]{}, fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	res, err := pathfind.FindContext(ctx, grid, pathfind.Algorithm(name))
	if err != nil {
		return nil, trace.Trace[any]{}, err
	}

	return res, erase(res.Trace), nil
}

// buildGraph adds the parsed edges to g in input order.
func buildGraph(g *core.Graph, input string, weighted bool, lim Limits) error {
	edges, err := parseEdges(input)
	if err != nil {
		return err
	}
	if err = atMost(ErrBadInput, "edges", len(edges), lim.MaxEdges); err != nil {
		return err
	}
	for i, e := range edges {
		w := e.weight
		if !weighted {
			w = 0
		}
		if _, err = g.AddEdge(e.from, e.to, w); err != nil {
			return fmt.Errorf("%w: edge %d (%s %s): %v", ErrBadInput, i, e.from, e.to, err)
		}
	}

	return nil
}

// MSTResult is the Result of "kruskal" and "prim".
type MSTResult struct {
	Edges []core.Edge `json:"edges" yaml:"edges"`
	Total float64     `json:"total" yaml:"total"`
}

func runMST(_ context.Context, name, input string, p Params, lim Limits) (any, trace.Trace[any], error) {
	root, err := p.String("root")
	if err != nil {
		return nil, trace.Trace[any]{}, err
	}
	g := core.NewGraph(core.WithWeighted())
	if err = buildGraph(g, input, true, lim); err != nil {
		return nil, trace.Trace[any]{}, err
	}
	res, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions(
		prim_kruskal.WithMethod(name), prim_kruskal.WithRoot(root)))
	if err != nil {
		return nil, trace.Trace[any]{}, err
	}

	return &MSTResult{Edges: res.Edges, Total: res.Total}, erase(res.Trace), nil
}

// TopoResult is the Result of "toposort".
type TopoResult struct {
	Order []string `json:"order" yaml:"order"`
}

func runTopo(ctx context.Context, _, input string, _ Params, lim Limits) (any, trace.Trace[any], error) {
	g := core.NewGraph(core.WithDirected(true))
	if err := buildGraph(g, input, false, lim); err != nil {
		return nil, trace.Trace[any]{}, err
	}
	res, err := dfs.TopologicalSort(g, dfs.WithCancelContext(ctx))
	if err != nil {
		return nil, trace.Trace[any]{}, err
	}

	return &TopoResult{Order: res.Order}, erase(res.Trace), nil
}

// RingResult is the Result of "hashring".
type RingResult struct {
	Nodes       []hashring.VirtualNode `json:"nodes" yaml:"nodes"`
	Assignments map[string]string      `json:"assignments" yaml:"assignments"`
	Load        map[string]int         `json:"load" yaml:"load"`
}

// runHashring tracks the keys first, then adds the servers one at a time;
// the steps are the concatenated rebuild traces.
func runHashring(_ context.Context, _, input string, p Params, lim Limits) (any, trace.Trace[any], error) {
	servers, err := p.Strings("servers")
	if err != nil {
		return nil, trace.Trace[any]{}, err
	}
	if err = atMost(ErrBadParams, "servers", len(servers), lim.MaxServers); err != nil {
		return nil, trace.Trace[any]{}, err
	}
	replicas, err := p.Int("replicas", 1)
	if err != nil {
		return nil, trace.Trace[any]{}, err
	}
	if replicas < 1 {
		return nil, trace.Trace[any]{}, fmt.Errorf("%w: %v", ErrBadParams, hashring.ErrBadReplicas)
	}
	if err = atMost(ErrBadParams, "replicas", replicas, min(lim.MaxReplicas, hashring.MaxReplicas)); err != nil {
		return nil, trace.Trace[any]{}, err
	}
	keys := splitAny(input, " ,\t\r\n")
	if err = atMost(ErrBadInput, "keys", len(keys), lim.MaxKeys); err != nil {
		return nil, trace.Trace[any]{}, err
	}

	ring := hashring.New(hashring.WithReplicas(replicas))
	for _, k := range keys {
		if _, err = ring.AddKey(k); err != nil {
			return nil, trace.Trace[any]{}, fmt.Errorf("%w: %v", ErrBadInput, err)
		}
	}
	rec := trace.NewRecorder[any]()
	for _, s := range servers {
		reb, err := ring.AddServer(s)
		if err != nil {
			return nil, trace.Trace[any]{}, fmt.Errorf("%w: %v", ErrBadParams, err)
		}
		appendSteps(rec, reb.Trace)
	}

	return &RingResult{
		Nodes:       ring.VirtualNodes(),
		Assignments: ring.Assignments(),
		Load:        ring.Load(),
	}, rec.Trace(), nil
}
