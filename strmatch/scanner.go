package strmatch

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/stepwise/trace"
)

// scanner holds the mutable state of one matcher run.
type scanner struct {
	algo        Algorithm
	text, pat   []rune
	rec         *trace.Recorder[State]
	table       []int
	hash        *HashPair
	matches     []int
	comparisons int
}

func newScanner(algo Algorithm, text, pattern string) *scanner {
	return &scanner{
		algo:    algo,
		text:    []rune(text),
		pat:     []rune(pattern),
		rec:     trace.NewRecorder[State](),
		matches: []int{},
	}
}

// empty reports whether there is nothing to match.
func (s *scanner) empty() bool {
	return len(s.text) == 0 || len(s.pat) == 0
}

// record appends a step with a private copy of the table and matches.
func (s *scanner) record(kind trace.Kind, desc string, window, ti, pj int) {
	st := State{
		Window:       window,
		TextIndex:    ti,
		PatternIndex: pj,
		Matches:      append([]int{}, s.matches...),
	}
	if s.table != nil {
		st.Table = append([]int{}, s.table...)
	}
	if s.hash != nil {
		h := *s.hash
		st.Hash = &h
	}
	var hl []string
	if ti >= 0 {
		hl = append(hl, textKey(ti))
	}
	if pj >= 0 {
		hl = append(hl, patternKey(pj))
	}
	s.rec.Record(kind, desc, st, hl...)
}

// compare compares text[ti] with pattern[pj], records the comparison and
// reports equality.
func (s *scanner) compare(window, ti, pj int) bool {
	s.comparisons++
	eq := s.text[ti] == s.pat[pj]
	op := "≠"
	if eq {
		op = "="
	}
	s.record(KindCompare, fmt.Sprintf("Compare text[%d]=%s %s pattern[%d]=%s",
		ti, strconv.QuoteRune(s.text[ti]), op, pj, strconv.QuoteRune(s.pat[pj])), window, ti, pj)

	return eq
}

// match records an occurrence at window.
func (s *scanner) match(window int) {
	s.matches = append(s.matches, window)
	s.record(KindMatch, fmt.Sprintf("Pattern found at index %d", window), window, -1, -1)
}

// shift records a window move.
func (s *scanner) shift(from, to int) {
	s.record(KindShift, fmt.Sprintf("Shift window from %d to %d", from, to), to, -1, -1)
}

// finish records the final step and builds the Result.
func (s *scanner) finish() *Result {
	if !s.empty() {
		s.record(KindDone, fmt.Sprintf("%s search complete: %d match(es), %d comparisons",
			s.algo, len(s.matches), s.comparisons), -1, -1, -1)
	}

	return &Result{
		Algorithm:   s.algo,
		Matches:     s.matches,
		Comparisons: s.comparisons,
		Trace:       s.rec.Trace(),
	}
}

func textKey(i int) string    { return "t" + strconv.Itoa(i) }
func patternKey(j int) string { return "p" + strconv.Itoa(j) }
