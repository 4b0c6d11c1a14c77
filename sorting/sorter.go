package sorting

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/stepwise/trace"
)

// sorter holds the working array and counters of one run.
type sorter[T cmp.Ordered] struct {
	a                          []T
	rec                        *trace.Recorder[ArrayState[T]]
	lo, hi, pivot              int
	comparisons, swaps, writes int
}

// record appends a step with a copy of the working array.
func (s *sorter[T]) record(kind trace.Kind, desc string, idx ...int) {
	s.rec.Record(kind, desc, ArrayState[T]{
		Values: append([]T{}, s.a...),
		Lo:     s.lo,
		Hi:     s.hi,
		Pivot:  s.pivot,
	}, trace.Indices(idx...)...)
}

// less records the comparison of positions i and j and reports a[i] < a[j].
func (s *sorter[T]) less(i, j int) bool {
	s.comparisons++
	lt := s.a[i] < s.a[j]
	op := ">="
	if lt {
		op = "<"
	}
	s.record(KindCompare, fmt.Sprintf("Compare a[%d]=%v %s a[%d]=%v", i, s.a[i], op, j, s.a[j]), i, j)

	return lt
}

// swap transposes positions i and j. i == j is not a transposition and is
// neither performed nor recorded.
func (s *sorter[T]) swap(i, j int) {
	if i == j {
		return
	}
	s.a[i], s.a[j] = s.a[j], s.a[i]
	s.swaps++
	s.record(KindSwap, fmt.Sprintf("Swap a[%d] and a[%d]", i, j), i, j)
}

// write overwrites position i with v.
func (s *sorter[T]) write(i int, v T) {
	s.a[i] = v
	s.writes++
	s.record(KindWrite, fmt.Sprintf("Write %v to a[%d]", v, i), i)
}

func (s *sorter[T]) bubble() {
	n := len(s.a)
	for pass := 0; pass < n-1; pass++ {
		swapped := false
		for j := 0; j < n-1-pass; j++ {
			if s.less(j+1, j) {
				s.swap(j, j+1)
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

func (s *sorter[T]) selection() {
	n := len(s.a)
	for i := 0; i < n-1; i++ {
		m := i
		for j := i + 1; j < n; j++ {
			if s.less(j, m) {
				m = j
			}
		}
		s.swap(i, m)
	}
}

func (s *sorter[T]) insertion() {
	for i := 1; i < len(s.a); i++ {
		for j := i; j > 0 && s.less(j, j-1); j-- {
			s.swap(j, j-1)
		}
	}
}

func (s *sorter[T]) merge() {
	buf := make([]T, len(s.a))
	s.mergeSort(buf, 0, len(s.a)-1)
}

// mergeSort sorts a[lo..hi] (inclusive).
func (s *sorter[T]) mergeSort(buf []T, lo, hi int) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	s.mergeSort(buf, lo, mid)
	s.mergeSort(buf, mid+1, hi)

	s.lo, s.hi = lo, hi
	copy(buf[lo:hi+1], s.a[lo:hi+1])
	i, j := lo, mid+1
	for k := lo; k <= hi; k++ {
		switch {
		case i > mid:
			s.write(k, buf[j])
			j++
		case j > hi:
			s.write(k, buf[i])
			i++
		default:
			s.comparisons++
			takeRight := buf[j] < buf[i]
			s.record(KindCompare, fmt.Sprintf("Compare left %v with right %v", buf[i], buf[j]), i, j)
			if takeRight {
				s.write(k, buf[j])
				j++
			} else {
				s.write(k, buf[i])
				i++
			}
		}
	}
}

func (s *sorter[T]) quick() {
	s.quickSort(0, len(s.a)-1)
}

// quickSort sorts a[lo..hi] (inclusive) with a[hi] as pivot.
func (s *sorter[T]) quickSort(lo, hi int) {
	if lo >= hi {
		return
	}
	s.lo, s.hi, s.pivot = lo, hi, hi
	s.record(KindPivot, fmt.Sprintf("Pivot a[%d]=%v for range [%d, %d]", hi, s.a[hi], lo, hi), hi)
	i := lo
	for j := lo; j < hi; j++ {
		if s.less(j, hi) {
			s.swap(i, j)
			i++
		}
	}
	s.swap(i, hi)
	s.pivot = -1
	s.quickSort(lo, i-1)
	s.quickSort(i+1, hi)
}

func (s *sorter[T]) heap() {
	n := len(s.a)
	for i := n/2 - 1; i >= 0; i-- {
		s.siftDown(i, n)
	}
	for end := n - 1; end > 0; end-- {
		s.swap(0, end)
		s.siftDown(0, end)
	}
}

// siftDown restores the max-heap property for the subtree at i within a[:n].
func (s *sorter[T]) siftDown(i, n int) {
	s.lo, s.hi = 0, n-1
	for {
		largest := i
		l, r := 2*i+1, 2*i+2
		if l < n && s.less(largest, l) {
			largest = l
		}
		if r < n && s.less(largest, r) {
			largest = r
		}
		if largest == i {
			return
		}
		s.swap(i, largest)
		i = largest
	}
}
