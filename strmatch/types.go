// Package strmatch implements traced exact string matching.
//
// What
//
//   - Naive:      slide the pattern one position at a time.
//   - KMP:        failure-function (longest proper prefix-suffix) + linear scan.
//   - BoyerMoore: last-occurrence (bad character) table, right-to-left compare.
//   - RabinKarp:  rolling hash (base 256, modulus 101), verified on hash hit.
//   - ZSearch:    Z-array over pattern + separator + text.
//   - LongestPalindrome: Manacher's algorithm over the interleaved string.
//
// Every engine returns the same match positions for the same input; they
// differ only in the comparisons they perform and therefore in their traces.
//
// Positions
//
//	Text and pattern are processed as runes; match positions are rune
//	offsets into the text, ascending. Empty text or empty pattern yields an
//	empty Result, never an error.
package strmatch

import (
	"errors"

	"github.com/katalvlaran/stepwise/trace"
)

// ErrUnknownAlgorithm is returned by Match for an unsupported Algorithm.
var ErrUnknownAlgorithm = errors.New("strmatch: unknown algorithm")

// Algorithm names a matching engine.
type Algorithm string

// Supported algorithms.
const (
	Naive      Algorithm = "naive"
	KMP        Algorithm = "kmp"
	BoyerMoore Algorithm = "boyer-moore"
	RabinKarp  Algorithm = "rabin-karp"
	Z          Algorithm = "z"
)

// Algorithms lists the engines accepted by Match, in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{Naive, KMP, BoyerMoore, RabinKarp, Z}
}

// Step kinds emitted by the matchers.
const (
	KindTable   trace.Kind = "table"
	KindCompare trace.Kind = trace.KindCompare
	KindMatch   trace.Kind = "match"
	KindShift   trace.Kind = "shift"
	KindHash    trace.Kind = "hash"
	KindDone    trace.Kind = trace.KindComplete
)

// Rabin–Karp parameters.
const (
	rkBase = 256
	rkMod  = 101
)

// State is the snapshot of a matcher step.
type State struct {
	// Window is the text offset the pattern is aligned with (-1 while
	// building tables).
	Window int `json:"window"`

	// TextIndex and PatternIndex are the positions being compared, -1 if none.
	TextIndex    int `json:"textIndex"`
	PatternIndex int `json:"patternIndex"`

	// Table is the auxiliary table (KMP failure function, Z-array, bad
	// character shifts per pattern position, or nil).
	Table []int `json:"table,omitempty"`

	// Hash holds the window hash and pattern hash for Rabin–Karp.
	Hash *HashPair `json:"hash,omitempty"`

	// Matches found so far.
	Matches []int `json:"matches"`
}

// HashPair is the Rabin–Karp state of one window.
type HashPair struct {
	Window  int `json:"window"`
	Pattern int `json:"pattern"`
}

// Result is the outcome of a matcher run.
type Result struct {
	Algorithm   Algorithm          `json:"algorithm"`
	Matches     []int              `json:"matches"`
	Comparisons int                `json:"comparisons"`
	Trace       trace.Trace[State] `json:"trace"`
}

// PalindromeResult is the outcome of LongestPalindrome.
type PalindromeResult struct {
	// Start is the rune offset of the longest palindrome; Length its rune count.
	Start  int `json:"start"`
	Length int `json:"length"`

	// Palindrome is the substring itself.
	Palindrome string `json:"palindrome"`

	// Radii is Manacher's radius array over the interleaved string.
	Radii []int `json:"radii"`

	Trace trace.Trace[PalindromeState] `json:"trace"`
}

// PalindromeState is the snapshot of a Manacher step.
type PalindromeState struct {
	Center int   `json:"center"`
	Right  int   `json:"right"`
	Index  int   `json:"index"`
	Radii  []int `json:"radii"`
}
