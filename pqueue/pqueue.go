// Package pqueue provides stable minimum-selection queues.
//
// Engines that repeatedly take the lowest-weight candidate (Huffman merges,
// Dijkstra/A* frontier, Prim frontier) go through a Queue so that the tie
// break is the same everywhere: among equal weights, the item pushed first
// is popped first. The tie break is part of every trace built on top of it,
// so both strategies below must behave identically:
//
//   - NewHeap:   binary heap (container/heap), O(log n) push and pop.
//   - NewLinear: unsorted slice with a linear scan, O(n) pop.
package pqueue

import (
	"cmp"
	"container/heap"
	"sort"
)

// Entry is an item with its weight, as reported by Items.
type Entry[T any, W cmp.Ordered] struct {
	Item   T
	Weight W
	seq    uint64
}

// Queue selects the minimum-weight item, first-pushed on ties.
type Queue[T any, W cmp.Ordered] interface {
	// Push inserts item with the given weight.
	Push(item T, weight W)
	// PopMin removes and returns the minimum. ok is false when empty.
	PopMin() (item T, weight W, ok bool)
	// PeekMin returns the minimum without removing it.
	PeekMin() (item T, weight W, ok bool)
	// Len returns the number of queued items.
	Len() int
	// Items returns the queued entries in pop order. The result is a copy.
	Items() []Entry[T, W]
}

// less orders entries by weight, then by insertion sequence.
func less[T any, W cmp.Ordered](a, b *Entry[T, W]) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}

	return a.seq < b.seq
}

// sortedCopy returns entries in pop order.
func sortedCopy[T any, W cmp.Ordered](src []Entry[T, W]) []Entry[T, W] {
	out := make([]Entry[T, W], len(src))
	copy(out, src)
	sort.Slice(out, func(i, j int) bool { return less(&out[i], &out[j]) })

	return out
}

// Heap is a binary-heap Queue.
type Heap[T any, W cmp.Ordered] struct {
	h   entryHeap[T, W]
	seq uint64
}

// NewHeap returns an empty heap-backed Queue.
func NewHeap[T any, W cmp.Ordered]() *Heap[T, W] {
	return &Heap[T, W]{}
}

// Push inserts item. Complexity: O(log n).
func (q *Heap[T, W]) Push(item T, weight W) {
	q.seq++
	heap.Push(&q.h, Entry[T, W]{Item: item, Weight: weight, seq: q.seq})
}

// PopMin removes the minimum. Complexity: O(log n).
func (q *Heap[T, W]) PopMin() (T, W, bool) {
	if len(q.h) == 0 {
		var zt T
		var zw W
		return zt, zw, false
	}
	e := heap.Pop(&q.h).(Entry[T, W])

	return e.Item, e.Weight, true
}

// PeekMin returns the minimum without removing it. Complexity: O(1).
func (q *Heap[T, W]) PeekMin() (T, W, bool) {
	if len(q.h) == 0 {
		var zt T
		var zw W
		return zt, zw, false
	}

	return q.h[0].Item, q.h[0].Weight, true
}

// Len returns the number of items.
func (q *Heap[T, W]) Len() int { return len(q.h) }

// Items returns the entries in pop order. Complexity: O(n log n).
func (q *Heap[T, W]) Items() []Entry[T, W] { return sortedCopy(q.h) }

// entryHeap implements heap.Interface over entries.
type entryHeap[T any, W cmp.Ordered] []Entry[T, W]

func (h entryHeap[T, W]) Len() int           { return len(h) }
func (h entryHeap[T, W]) Less(i, j int) bool { return less(&h[i], &h[j]) }
func (h entryHeap[T, W]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *entryHeap[T, W]) Push(x any)        { *h = append(*h, x.(Entry[T, W])) }
func (h *entryHeap[T, W]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// Linear is a linear-scan Queue. It is the textbook "scan for the smallest"
// selection and is convenient for the small inputs of a visualization.
type Linear[T any, W cmp.Ordered] struct {
	items []Entry[T, W]
	seq   uint64
}

// NewLinear returns an empty scan-based Queue.
func NewLinear[T any, W cmp.Ordered]() *Linear[T, W] {
	return &Linear[T, W]{}
}

// Push appends item. Complexity: O(1) amortized.
func (q *Linear[T, W]) Push(item T, weight W) {
	q.seq++
	q.items = append(q.items, Entry[T, W]{Item: item, Weight: weight, seq: q.seq})
}

// minIndex returns the position of the minimum entry, or -1.
func (q *Linear[T, W]) minIndex() int {
	best := -1
	for i := range q.items {
		if best < 0 || less(&q.items[i], &q.items[best]) {
			best = i
		}
	}

	return best
}

// PopMin removes the minimum. Complexity: O(n).
func (q *Linear[T, W]) PopMin() (T, W, bool) {
	i := q.minIndex()
	if i < 0 {
		var zt T
		var zw W
		return zt, zw, false
	}
	e := q.items[i]
	q.items = append(q.items[:i], q.items[i+1:]...)

	return e.Item, e.Weight, true
}

// PeekMin returns the minimum without removing it. Complexity: O(n).
func (q *Linear[T, W]) PeekMin() (T, W, bool) {
	i := q.minIndex()
	if i < 0 {
		var zt T
		var zw W
		return zt, zw, false
	}

	return q.items[i].Item, q.items[i].Weight, true
}

// Len returns the number of items.
func (q *Linear[T, W]) Len() int { return len(q.items) }

// Items returns the entries in pop order.
func (q *Linear[T, W]) Items() []Entry[T, W] { return sortedCopy(q.items) }

var (
	_ Queue[string, int] = (*Heap[string, int])(nil)
	_ Queue[string, int] = (*Linear[string, int])(nil)
)
