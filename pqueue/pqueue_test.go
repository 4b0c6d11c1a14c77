package pqueue_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwise/pqueue"
)

type queueCtor func() pqueue.Queue[string, int]

var strategies = map[string]queueCtor{
	"heap":   func() pqueue.Queue[string, int] { return pqueue.NewHeap[string, int]() },
	"linear": func() pqueue.Queue[string, int] { return pqueue.NewLinear[string, int]() },
}

func TestQueue_EmptyPop(t *testing.T) {
	for name, ctor := range strategies {
		t.Run(name, func(t *testing.T) {
			q := ctor()
			_, _, ok := q.PopMin()
			assert.False(t, ok)
			_, _, ok = q.PeekMin()
			assert.False(t, ok)
			assert.Zero(t, q.Len())
		})
	}
}

func TestQueue_TieBreakFirstSeen(t *testing.T) {
	for name, ctor := range strategies {
		t.Run(name, func(t *testing.T) {
			q := ctor()
			q.Push("c", 2)
			q.Push("a", 1)
			q.Push("b", 1)
			q.Push("d", 2)
			q.Push("e", 1)

			var got []string
			for q.Len() > 0 {
				item, _, ok := q.PopMin()
				require.True(t, ok)
				got = append(got, item)
			}
			assert.Equal(t, []string{"a", "b", "e", "c", "d"}, got)
		})
	}
}

func TestQueue_ItemsInPopOrder(t *testing.T) {
	for name, ctor := range strategies {
		t.Run(name, func(t *testing.T) {
			q := ctor()
			q.Push("x", 5)
			q.Push("y", 3)
			q.Push("z", 5)
			items := q.Items()
			require.Len(t, items, 3)
			assert.Equal(t, "y", items[0].Item)
			assert.Equal(t, "x", items[1].Item)
			assert.Equal(t, "z", items[2].Item)
			assert.Equal(t, 3, q.Len(), "Items must not consume the queue")

			peek, w, ok := q.PeekMin()
			require.True(t, ok)
			assert.Equal(t, "y", peek)
			assert.Equal(t, 3, w)
		})
	}
}

// TestQueue_StrategiesAgree interleaves pushes and pops with many ties and
// checks both strategies produce the same pop sequence.
func TestQueue_StrategiesAgree(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	h := pqueue.NewHeap[int, int]()
	l := pqueue.NewLinear[int, int]()
	for i := 0; i < 500; i++ {
		if r.Intn(3) == 0 && h.Len() > 0 {
			hi, hw, hok := h.PopMin()
			li, lw, lok := l.PopMin()
			require.Equal(t, hok, lok)
			require.Equal(t, hw, lw)
			require.Equal(t, hi, li, "pop %d", i)
			continue
		}
		w := r.Intn(5)
		h.Push(i, w)
		l.Push(i, w)
	}
	for h.Len() > 0 {
		hi, _, _ := h.PopMin()
		li, _, _ := l.PopMin()
		require.Equal(t, hi, li)
	}
	assert.Zero(t, l.Len())
}
