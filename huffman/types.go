package huffman

import (
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/stepwise/trace"
)

// Sentinel errors for encoding and decoding.
var (
	// ErrUnknownSymbol indicates a rune in the text has no code in the table.
	ErrUnknownSymbol = errors.New("huffman: symbol has no code")

	// ErrEmptyTree indicates decoding was attempted without a tree.
	ErrEmptyTree = errors.New("huffman: tree is empty")

	// ErrInvalidBit indicates a character other than '0' or '1' in a bit string.
	ErrInvalidBit = errors.New("huffman: invalid bit")

	// ErrTrailingBits indicates the bit string ended in the middle of a code.
	ErrTrailingBits = errors.New("huffman: trailing bits do not form a code")
)

// Step kinds emitted by Build.
const (
	KindLeaves   trace.Kind = "leaves"
	KindSelect   trace.Kind = "select"
	KindMerge    trace.Kind = "merge"
	KindComplete trace.Kind = trace.KindComplete
)

// Symbol is a distinct rune of the input and its occurrence count.
type Symbol struct {
	Rune rune `json:"rune" yaml:"rune"`
	Freq int  `json:"freq" yaml:"freq"`
}

// Node is a Huffman tree node: a leaf holding a symbol, or an internal node
// owning two children whose frequencies sum to its own.
// Nodes are immutable; use the accessors.
type Node struct {
	id          int
	symbol      rune
	freq        int
	left, right *Node
}

// ID returns the node identifier: leaves are numbered first, in the order
// they entered the forest, then internal nodes in creation order.
func (n *Node) ID() int { return n.id }

// Key returns the highlight ID used in trace steps ("n<ID>").
func (n *Node) Key() string { return "n" + strconv.Itoa(n.id) }

// Freq returns the node weight.
func (n *Node) Freq() int { return n.freq }

// IsLeaf reports whether n holds a symbol.
func (n *Node) IsLeaf() bool { return n.left == nil && n.right == nil }

// Symbol returns the leaf symbol; for internal nodes it returns 0.
func (n *Node) Symbol() rune { return n.symbol }

// Left returns the 0-branch child (nil for leaves).
func (n *Node) Left() *Node { return n.left }

// Right returns the 1-branch child (nil for leaves).
func (n *Node) Right() *Node { return n.right }

// Label renders the node for step descriptions: 'a':3 or n7:5.
func (n *Node) Label() string {
	if n.IsLeaf() {
		return strconv.QuoteRune(n.symbol) + ":" + strconv.Itoa(n.freq)
	}

	return n.Key() + ":" + strconv.Itoa(n.freq)
}

// nodeJSON is the wire form of a node for UI rendering.
type nodeJSON struct {
	ID     string `json:"id" yaml:"id"`
	Freq   int    `json:"freq" yaml:"freq"`
	Symbol string `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Left   *Node  `json:"left,omitempty" yaml:"left,omitempty"`
	Right  *Node  `json:"right,omitempty" yaml:"right,omitempty"`
}

func (n *Node) wire() nodeJSON {
	v := nodeJSON{ID: n.Key(), Freq: n.freq, Left: n.left, Right: n.right}
	if n.IsLeaf() {
		v.Symbol = string(n.symbol)
	}

	return v
}

// MarshalJSON encodes the subtree rooted at n.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.wire())
}

// MarshalYAML encodes the subtree rooted at n in the same shape as MarshalJSON.
func (n *Node) MarshalYAML() (interface{}, error) {
	return n.wire(), nil
}

// Forest is the working collection of subtrees at one step, in the order
// they would be removed (ascending frequency, stable).
type Forest []*Node

// Keys returns the highlight IDs of the forest roots.
func (f Forest) Keys() []string {
	out := make([]string, len(f))
	for i, n := range f {
		out[i] = n.Key()
	}

	return out
}

// CodeTable maps each symbol to its code, a string of '0' and '1'.
type CodeTable map[rune]string

// Symbols returns the table's symbols in ascending rune order.
func (c CodeTable) Symbols() []rune {
	out := make([]rune, 0, len(c))
	for r := range c {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// PrefixFree reports whether no code is a prefix of another.
// Complexity: O(k log k · L) via sorting; adjacent codes suffice.
func (c CodeTable) PrefixFree() bool {
	codes := make([]string, 0, len(c))
	for _, code := range c {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for i := 1; i < len(codes); i++ {
		if strings.HasPrefix(codes[i], codes[i-1]) {
			return false
		}
	}

	return true
}

// Result is the outcome of Build.
type Result struct {
	// Text is the input that was encoded.
	Text string `json:"text" yaml:"text"`

	// Symbols lists symbol frequencies in first-appearance order.
	Symbols []Symbol `json:"symbols" yaml:"symbols"`

	// Root is the finished tree; nil for empty input.
	Root *Node `json:"root" yaml:"root"`

	// Codes is the code table derived from Root.
	Codes CodeTable `json:"codes" yaml:"codes"`

	// Trace records the construction.
	Trace trace.Trace[Forest] `json:"trace" yaml:"trace"`
}

// Stats summarizes compression of the input text.
type Stats struct {
	OriginalBits int     `json:"originalBits"`
	EncodedBits  int     `json:"encodedBits"`
	PackedBytes  int     `json:"packedBytes"`
	Ratio        float64 `json:"ratio"`
}
