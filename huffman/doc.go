// Package huffman builds Huffman trees from text while recording every merge
// as a trace.Step, and encodes/decodes text with the resulting code table.
//
// What
//
//   - Frequencies counts distinct runes in first-appearance order.
//   - Build constructs the tree and its Trace:
//     "leaves" → ("select" → "merge")* → "complete".
//   - Codes assigns 0 to left edges and 1 to right edges; a tree with a
//     single distinct symbol gets code "0".
//   - Encode/Decode convert between text and '0'/'1' strings.
//
// Determinism
//
//	The working forest is a pqueue.Queue: the two lowest frequencies are
//	removed first, ties go to the node that entered the forest first. Leaves
//	enter in ascending frequency, first appearance breaking ties, and a
//	merged node enters after every existing node of equal frequency. The
//	first node removed becomes the left child, the second the right child.
//
// Immutability
//
//	Nodes expose read-only accessors and are never modified once created,
//	so forest snapshots in the trace share nodes safely.
//
// Errors
//
//	Build never fails: empty text yields a nil Root, an empty code table and
//	an empty Trace. Encode reports ErrUnknownSymbol for a rune missing from
//	the table. Decode reports ErrEmptyTree, ErrInvalidBit or ErrTrailingBits.
//
// Complexity
//
//   - Build:  O(n + k log k) for n runes and k distinct symbols.
//   - Encode: O(n · L) for maximum code length L.
//   - Decode: O(b) for b bits.
package huffman
