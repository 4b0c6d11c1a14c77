package huffman

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/stepwise/pqueue"
	"github.com/katalvlaran/stepwise/trace"
)

// Frequencies counts each distinct rune of text.
// The result is in first-appearance order; empty text yields an empty slice.
// Complexity: O(n).
func Frequencies(text string) []Symbol {
	index := make(map[rune]int)
	out := make([]Symbol, 0)
	for _, r := range text {
		if i, ok := index[r]; ok {
			out[i].Freq++
			continue
		}
		index[r] = len(out)
		out = append(out, Symbol{Rune: r, Freq: 1})
	}

	return out
}

// Build constructs the Huffman tree of text and records its construction.
//
// Steps:
//  1. Count frequencies and create one leaf per symbol ("leaves").
//  2. While the forest holds more than one tree: remove the two lowest
//     ("select"), join them under a new node, left = first removed, and put
//     the new node back after equal-frequency trees ("merge").
//  3. Record "complete" and derive the code table.
//
// Empty text yields a Result with nil Root, empty Codes and an empty Trace.
func Build(text string) *Result {
	symbols := Frequencies(text)
	res := &Result{Text: text, Symbols: symbols, Codes: CodeTable{}}
	if len(symbols) == 0 {
		return res
	}

	rec := trace.NewRecorder[Forest]()
	forest := pqueue.NewHeap[*Node, int]()

	// Leaves enter sorted by frequency, first appearance breaking ties.
	ordered := pqueue.NewLinear[Symbol, int]()
	for _, s := range symbols {
		ordered.Push(s, s.Freq)
	}
	nextID := 0
	for ordered.Len() > 0 {
		s, _, _ := ordered.PopMin()
		forest.Push(&Node{id: nextID, symbol: s.Rune, freq: s.Freq}, s.Freq)
		nextID++
	}
	snap := snapshot(forest)
	rec.Record(KindLeaves, fmt.Sprintf("Created %d leaf nodes", len(snap)), snap, snap.Keys()...)

	for forest.Len() > 1 {
		left, _, _ := forest.PopMin()
		right, _, _ := forest.PopMin()
		rec.Record(KindSelect,
			fmt.Sprintf("Selected the two lowest nodes %s and %s", left.Label(), right.Label()),
			append(Forest{left, right}, snapshot(forest)...),
			left.Key(), right.Key())

		parent := &Node{id: nextID, freq: left.freq + right.freq, left: left, right: right}
		nextID++
		forest.Push(parent, parent.freq)
		rec.Record(KindMerge,
			fmt.Sprintf("Merged %s and %s into %s", left.Label(), right.Label(), parent.Label()),
			snapshot(forest),
			parent.Key(), left.Key(), right.Key())
	}

	root, _, _ := forest.PopMin()
	rec.Record(KindComplete,
		fmt.Sprintf("Huffman tree complete: root %s", root.Label()),
		Forest{root}, root.Key())

	res.Root = root
	res.Codes = Codes(root)
	res.Trace = rec.Trace()

	return res
}

// snapshot copies the current forest roots in removal order.
func snapshot(q pqueue.Queue[*Node, int]) Forest {
	items := q.Items()
	out := make(Forest, len(items))
	for i, e := range items {
		out[i] = e.Item
	}

	return out
}

// Codes walks the tree depth-first, appending '0' on left edges and '1' on
// right edges. A single-leaf tree gets code "0". A nil root yields an empty
// table.
func Codes(root *Node) CodeTable {
	table := CodeTable{}
	if root == nil {
		return table
	}
	if root.IsLeaf() {
		table[root.symbol] = "0"
		return table
	}
	var walk func(n *Node, prefix []byte)
	walk = func(n *Node, prefix []byte) {
		if n.IsLeaf() {
			table[n.symbol] = string(prefix)
			return
		}
		walk(n.left, append(prefix, '0'))
		walk(n.right, append(prefix, '1'))
	}
	walk(root, make([]byte, 0, 16))

	return table
}

// Encode concatenates the code of every rune of text, in input order.
// Returns ErrUnknownSymbol if a rune has no code.
func Encode(text string, codes CodeTable) (string, error) {
	var b strings.Builder
	for i, r := range text {
		code, ok := codes[r]
		if !ok {
			return "", fmt.Errorf("%w: %s at byte %d", ErrUnknownSymbol, strconv.QuoteRune(r), i)
		}
		b.WriteString(code)
	}

	return b.String(), nil
}

// Decode walks the tree from the root for each bit, emitting a symbol and
// restarting at the root whenever a leaf is reached.
//
// Errors:
//   - ErrEmptyTree if root is nil and bits is non-empty.
//   - ErrInvalidBit for characters other than '0' and '1'.
//   - ErrTrailingBits if the input ends mid-code; the decoded prefix is returned.
//
// A single-leaf tree decodes every '0' to its symbol; '1' is ErrInvalidBit.
// Every internal node has two children, so decoding always terminates.
func Decode(bits string, root *Node) (string, error) {
	if bits == "" {
		return "", nil
	}
	if root == nil {
		return "", ErrEmptyTree
	}

	var out strings.Builder
	if root.IsLeaf() {
		for i := 0; i < len(bits); i++ {
			if bits[i] != '0' {
				return out.String(), fmt.Errorf("%w: %q at %d", ErrInvalidBit, bits[i], i)
			}
			out.WriteRune(root.symbol)
		}

		return out.String(), nil
	}

	cur := root
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			cur = cur.left
		case '1':
			cur = cur.right
		default:
			return out.String(), fmt.Errorf("%w: %q at %d", ErrInvalidBit, bits[i], i)
		}
		if cur.IsLeaf() {
			out.WriteRune(cur.symbol)
			cur = root
		}
	}
	if cur != root {
		return out.String(), ErrTrailingBits
	}

	return out.String(), nil
}

// Pack packs a '0'/'1' string into bytes, most significant bit first; the
// last byte is zero-padded. Characters other than '1' are packed as 0.
func Pack(bits string) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i := 0; i < len(bits); i++ {
		if bits[i] == '1' {
			out[i/8] |= 0x80 >> (i % 8)
		}
	}

	return out
}

// Stats reports how well the text compresses with its own code table.
// Original size counts 8 bits per UTF-8 byte.
func (r *Result) Stats() Stats {
	st := Stats{OriginalBits: 8 * len(r.Text)}
	for _, s := range r.Symbols {
		st.EncodedBits += s.Freq * len(r.Codes[s.Rune])
	}
	st.PackedBytes = (st.EncodedBits + 7) / 8
	if st.OriginalBits > 0 {
		st.Ratio = float64(st.EncodedBits) / float64(st.OriginalBits)
	}

	return st
}

// MarshalJSON encodes the table with string keys so that UIs can index it
// by character.
func (c CodeTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.byString())
}

// MarshalYAML mirrors MarshalJSON.
func (c CodeTable) MarshalYAML() (interface{}, error) {
	return c.byString(), nil
}

func (c CodeTable) byString() map[string]string {
	m := make(map[string]string, len(c))
	for r, code := range c {
		m[string(r)] = code
	}

	return m
}
