package strmatch

import (
	"fmt"
	"strconv"
)

// Match runs the named algorithm.
// Returns ErrUnknownAlgorithm for an unsupported name.
func Match(text, pattern string, algo Algorithm) (*Result, error) {
	switch algo {
	case Naive:
		return NaiveSearch(text, pattern), nil
	case KMP:
		return KMPSearch(text, pattern), nil
	case BoyerMoore:
		return BoyerMooreSearch(text, pattern), nil
	case RabinKarp:
		return RabinKarpSearch(text, pattern), nil
	case Z:
		return ZSearch(text, pattern), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}

// NaiveSearch aligns the pattern at every window and compares left to right
// until the first mismatch.
// Complexity: O(n·m).
func NaiveSearch(text, pattern string) *Result {
	s := newScanner(Naive, text, pattern)
	if s.empty() {
		return s.finish()
	}
	n, m := len(s.text), len(s.pat)
	for w := 0; w+m <= n; w++ {
		j := 0
		for j < m && s.compare(w, w+j, j) {
			j++
		}
		if j == m {
			s.match(w)
		}
		if w+1+m <= n {
			s.shift(w, w+1)
		}
	}

	return s.finish()
}

// Failure returns the KMP failure function of pattern: fail[j] is the length
// of the longest proper prefix of pattern[:j+1] that is also its suffix.
func Failure(pattern string) []int {
	s := newScanner(KMP, "", pattern)
	s.buildFailure()

	return s.table
}

// buildFailure computes the failure table into s.table, recording a
// "table" step per entry.
func (s *scanner) buildFailure() {
	m := len(s.pat)
	s.table = make([]int, m)
	k := 0
	for j := 1; j < m; j++ {
		for k > 0 && s.pat[j] != s.pat[k] {
			k = s.table[k-1]
		}
		if s.pat[j] == s.pat[k] {
			k++
		}
		s.table[j] = k
		s.record(KindTable, fmt.Sprintf("failure[%d] = %d", j, k), -1, -1, j)
	}
}

// KMPSearch scans the text once, falling back through the failure function
// on a mismatch instead of re-reading text.
// Complexity: O(n + m).
func KMPSearch(text, pattern string) *Result {
	s := newScanner(KMP, text, pattern)
	if s.empty() {
		return s.finish()
	}
	s.buildFailure()

	n, m := len(s.text), len(s.pat)
	j := 0
	for i := 0; i < n; i++ {
		for {
			if s.compare(i-j, i, j) {
				j++
				break
			}
			if j == 0 {
				break
			}
			from := i - j
			j = s.table[j-1]
			s.record(KindShift, fmt.Sprintf("Mismatch: fall back to pattern index %d (window %d → %d)",
				j, from, i-j), i-j, i, j)
		}
		if j == m {
			s.match(i - m + 1)
			j = s.table[m-1]
		}
	}

	return s.finish()
}

// BoyerMooreSearch compares right to left and shifts by the bad character
// rule: align the mismatched text rune with its last occurrence in the
// pattern, or move past it.
// Complexity: O(n·m) worst case, sublinear on typical text.
func BoyerMooreSearch(text, pattern string) *Result {
	s := newScanner(BoyerMoore, text, pattern)
	if s.empty() {
		return s.finish()
	}
	n, m := len(s.text), len(s.pat)

	last := make(map[rune]int, m)
	s.table = make([]int, m)
	for j, r := range s.pat {
		last[r] = j
	}
	for j, r := range s.pat {
		s.table[j] = last[r]
		s.record(KindTable, fmt.Sprintf("last[%s] = %d", strconv.QuoteRune(r), last[r]), -1, -1, j)
	}
	lastOf := func(r rune) int {
		if j, ok := last[r]; ok {
			return j
		}
		return -1
	}

	w := 0
	for w+m <= n {
		j := m - 1
		for j >= 0 && s.compare(w, w+j, j) {
			j--
		}
		var step int
		if j < 0 {
			s.match(w)
			step = 1
			if w+m < n {
				step = m - lastOf(s.text[w+m])
			}
		} else {
			step = j - lastOf(s.text[w+j])
		}
		if step < 1 {
			step = 1
		}
		if w+step+m <= n {
			s.shift(w, w+step)
		}
		w += step
	}

	return s.finish()
}

// RabinKarpSearch compares rolling hashes of each window with the pattern
// hash and verifies rune by rune only on a hash hit.
// Complexity: O(n + m) expected, O(n·m) worst case.
func RabinKarpSearch(text, pattern string) *Result {
	s := newScanner(RabinKarp, text, pattern)
	if s.empty() {
		return s.finish()
	}
	n, m := len(s.text), len(s.pat)
	if m > n {
		return s.finish()
	}

	// high = base^(m-1) mod q, the weight of the window's leading rune.
	high := 1
	for i := 0; i < m-1; i++ {
		high = (high * rkBase) % rkMod
	}
	ph, th := 0, 0
	for i := 0; i < m; i++ {
		ph = (rkBase*ph + int(s.pat[i])) % rkMod
		th = (rkBase*th + int(s.text[i])) % rkMod
	}
	s.hash = &HashPair{Pattern: ph}

	for w := 0; w+m <= n; w++ {
		s.hash.Window = th
		if th == ph {
			s.record(KindHash, fmt.Sprintf("Window %d hash %d equals pattern hash: verify", w, th), w, -1, -1)
			j := 0
			for j < m && s.compare(w, w+j, j) {
				j++
			}
			if j == m {
				s.match(w)
			}
		} else {
			s.record(KindHash, fmt.Sprintf("Window %d hash %d ≠ pattern hash %d", w, th, ph), w, -1, -1)
		}
		if w+m < n {
			th = (rkBase*(th-int(s.text[w])*high) + int(s.text[w+m])) % rkMod
			if th < 0 {
				th += rkMod
			}
			s.shift(w, w+1)
		}
	}

	return s.finish()
}
