package strmatch

import (
	"fmt"

	"github.com/katalvlaran/stepwise/trace"
)

// separator joins pattern and text in ZSearch; it is not a valid rune, so
// no Z-box can extend across it.
const separator rune = -1

// ZArray returns the Z-array of s: z[i] is the length of the longest common
// prefix of s and s[i:]. By convention z[0] = 0.
// Complexity: O(n).
func ZArray(s string) []int {
	return zFunction([]rune(s), nil)
}

// zFunction computes the Z-array of r. When onStep is non-nil it is called
// once per finished position with (i, l, r).
func zFunction(r []rune, onStep func(i, l, right int, z []int)) []int {
	n := len(r)
	z := make([]int, n)
	l, right := 0, 0
	for i := 1; i < n; i++ {
		if i < right {
			z[i] = min(right-i, z[i-l])
		}
		for i+z[i] < n && r[z[i]] == r[i+z[i]] {
			z[i]++
		}
		if i+z[i] > right {
			l, right = i, i+z[i]
		}
		if onStep != nil {
			onStep(i, l, right, z)
		}
	}

	return z
}

// ZSearch finds pattern in text with the Z-algorithm over
// pattern + separator + text: every text position whose Z value equals the
// pattern length starts a match.
// Complexity: O(n + m).
func ZSearch(text, pattern string) *Result {
	s := newScanner(Z, text, pattern)
	if s.empty() {
		return s.finish()
	}
	m := len(s.pat)
	combined := make([]rune, 0, m+1+len(s.text))
	combined = append(combined, s.pat...)
	combined = append(combined, separator)
	combined = append(combined, s.text...)

	s.table = make([]int, len(combined))
	zFunction(combined, func(i, l, right int, z []int) {
		s.comparisons += z[i] + 1
		copy(s.table, z)
		if i <= m {
			s.record(KindTable, fmt.Sprintf("Z[%d] = %d (box [%d, %d))", i, z[i], l, right), -1, -1, min(i, m-1))
			return
		}
		pos := i - m - 1
		s.record(KindCompare, fmt.Sprintf("Z[%d] = %d at text index %d", i, z[i], pos), pos, pos, -1)
		if z[i] == m {
			s.match(pos)
		}
	})

	return s.finish()
}

// LongestPalindrome finds the longest palindromic substring of s with
// Manacher's algorithm. The string is interleaved with separators so that
// even and odd palindromes share one radius array; the first longest
// palindrome wins ties. Empty input yields an empty result.
// Complexity: O(n).
func LongestPalindrome(s string) *PalindromeResult {
	runes := []rune(s)
	res := &PalindromeResult{Radii: []int{}}
	if len(runes) == 0 {
		return res
	}

	t := make([]rune, 0, 2*len(runes)+1)
	t = append(t, separator)
	for _, r := range runes {
		t = append(t, r, separator)
	}

	rec := trace.NewRecorder[PalindromeState]()
	p := make([]int, len(t))
	center, right := 0, 0
	best := 0
	for i := range t {
		if i < right {
			p[i] = min(right-i, p[2*center-i])
		}
		for i-p[i]-1 >= 0 && i+p[i]+1 < len(t) && t[i-p[i]-1] == t[i+p[i]+1] {
			p[i]++
		}
		if i+p[i] > right {
			center, right = i, i+p[i]
		}
		if p[i] > p[best] {
			best = i
		}
		rec.Record(trace.KindVisit,
			fmt.Sprintf("Radius at %d is %d (center %d, right %d)", i, p[i], center, right),
			PalindromeState{Center: center, Right: right, Index: i, Radii: append([]int{}, p...)},
			fmt.Sprintf("c%d", i))
	}

	res.Start = (best - p[best]) / 2
	res.Length = p[best]
	res.Palindrome = string(runes[res.Start : res.Start+res.Length])
	res.Radii = p
	rec.Record(trace.KindComplete,
		fmt.Sprintf("Longest palindrome %q at %d, length %d", res.Palindrome, res.Start, res.Length),
		PalindromeState{Center: best, Right: best + p[best], Index: best, Radii: append([]int{}, p...)},
		fmt.Sprintf("c%d", best))
	res.Trace = rec.Trace()

	return res
}
