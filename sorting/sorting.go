// Package sorting implements comparison sorts that record every comparison,
// transposition and overwrite as a trace.Step.
//
// What
//
//   - Bubble, Selection, Insertion: quadratic sorts built on adjacent or
//     long-range swaps.
//   - Merge: top-down merge sort; elements are overwritten from a buffer
//     ("write" steps), never swapped.
//   - Quick: Lomuto partition with the last element as pivot.
//   - Heap: max-heap construction, then repeated root extraction.
//
// Trace contract
//
//	Each "swap" step is exactly one transposition of two distinct positions,
//	and Result.Swaps equals the number of swap steps. Replaying swap and
//	write steps on the input array reproduces Result.Sorted. Every step
//	snapshot owns a copy of the working array. The input slice is never
//	modified.
//
// Empty input yields an empty Result with an empty trace.
package sorting

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/katalvlaran/stepwise/trace"
)

// ErrUnknownAlgorithm is returned by Sort for an unsupported Algorithm.
var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

// Algorithm names a sorting engine.
type Algorithm string

// Supported algorithms.
const (
	Bubble    Algorithm = "bubble"
	Selection Algorithm = "selection"
	Insertion Algorithm = "insertion"
	Merge     Algorithm = "merge"
	Quick     Algorithm = "quick"
	Heap      Algorithm = "heap"
)

// Algorithms lists the engines accepted by Sort, in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{Bubble, Selection, Insertion, Merge, Quick, Heap}
}

// Step kinds emitted by the sorters.
const (
	KindInit                = trace.KindInit
	KindCompare             = trace.KindCompare
	KindSwap                = trace.KindSwap
	KindWrite               = trace.KindWrite
	KindPivot    trace.Kind = "pivot"
	KindComplete            = trace.KindComplete
)

// ArrayState is the snapshot of a sorting step.
type ArrayState[T cmp.Ordered] struct {
	// Values is a copy of the working array.
	Values []T `json:"values"`

	// Lo and Hi bound the active subarray (inclusive), or -1.
	Lo int `json:"lo"`
	Hi int `json:"hi"`

	// Pivot is the pivot index for quick sort, -1 otherwise.
	Pivot int `json:"pivot"`
}

// Result is the outcome of a sort.
type Result[T cmp.Ordered] struct {
	Algorithm   Algorithm                  `json:"algorithm"`
	Sorted      []T                        `json:"sorted"`
	Comparisons int                        `json:"comparisons"`
	Swaps       int                        `json:"swaps"`
	Writes      int                        `json:"writes"`
	Trace       trace.Trace[ArrayState[T]] `json:"trace"`
}

// Sort runs the named algorithm on a copy of values.
// Returns ErrUnknownAlgorithm for an unsupported name.
func Sort[T cmp.Ordered](values []T, algo Algorithm) (*Result[T], error) {
	var run func(*sorter[T])
	switch algo {
	case Bubble:
		run = (*sorter[T]).bubble
	case Selection:
		run = (*sorter[T]).selection
	case Insertion:
		run = (*sorter[T]).insertion
	case Merge:
		run = (*sorter[T]).merge
	case Quick:
		run = (*sorter[T]).quick
	case Heap:
		run = (*sorter[T]).heap
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}

	return execute(values, algo, run), nil
}

// BubbleSort sorts by repeatedly swapping adjacent inversions; it stops after
// a pass without swaps.
func BubbleSort[T cmp.Ordered](values []T) *Result[T] {
	return execute(values, Bubble, (*sorter[T]).bubble)
}

// SelectionSort moves the minimum of the unsorted suffix into place.
func SelectionSort[T cmp.Ordered](values []T) *Result[T] {
	return execute(values, Selection, (*sorter[T]).selection)
}

// InsertionSort sinks each element leftwards by adjacent swaps.
func InsertionSort[T cmp.Ordered](values []T) *Result[T] {
	return execute(values, Insertion, (*sorter[T]).insertion)
}

// MergeSort sorts top-down, merging through a buffer.
func MergeSort[T cmp.Ordered](values []T) *Result[T] {
	return execute(values, Merge, (*sorter[T]).merge)
}

// QuickSort sorts with Lomuto partitioning.
func QuickSort[T cmp.Ordered](values []T) *Result[T] {
	return execute(values, Quick, (*sorter[T]).quick)
}

// HeapSort sorts with an in-place binary max-heap.
func HeapSort[T cmp.Ordered](values []T) *Result[T] {
	return execute(values, Heap, (*sorter[T]).heap)
}

// execute copies the input, runs the algorithm and seals the trace.
func execute[T cmp.Ordered](values []T, algo Algorithm, run func(*sorter[T])) *Result[T] {
	s := &sorter[T]{
		a:   append([]T{}, values...),
		rec: trace.NewRecorder[ArrayState[T]](),
		lo:  -1, hi: -1, pivot: -1,
	}
	res := &Result[T]{Algorithm: algo, Sorted: s.a}
	if len(s.a) == 0 {
		return res
	}
	s.record(KindInit, fmt.Sprintf("Initial array of %d elements", len(s.a)))
	run(s)
	s.lo, s.hi, s.pivot = -1, -1, -1
	s.record(KindComplete, fmt.Sprintf("%s sort complete: %d comparisons, %d swaps, %d writes",
		algo, s.comparisons, s.swaps, s.writes))

	res.Comparisons = s.comparisons
	res.Swaps = s.swaps
	res.Writes = s.writes
	res.Trace = s.rec.Trace()

	return res
}
