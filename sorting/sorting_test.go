package sorting_test

import (
	"math/rand"
	"slices"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwise/sorting"
	"github.com/katalvlaran/stepwise/trace"
)

var inputs = [][]int{
	{5},
	{2, 1},
	{3, 2, 1},
	{1, 2, 3, 4},
	{64, 34, 25, 12, 22, 11, 90},
	{5, 1, 4, 2, 8, 5, 1},
	{7, 7, 7, 7},
	{-3, 10, 0, -3, 8, 2, 2, -1},
}

// inversions counts pairs i<j with a[i] > a[j].
func inversions(a []int) int {
	n := 0
	for i := range a {
		for j := i + 1; j < len(a); j++ {
			if a[i] > a[j] {
				n++
			}
		}
	}

	return n
}

// replay applies swap and write steps to a copy of input and checks that each
// step's snapshot matches the replayed array.
func replay(t *testing.T, input []int, tr trace.Trace[sorting.ArrayState[int]]) []int {
	t.Helper()
	a := append([]int{}, input...)
	for _, s := range tr.Steps() {
		switch s.Kind {
		case sorting.KindSwap:
			require.Len(t, s.Highlighted, 2)
			i, _ := strconv.Atoi(s.Highlighted[0])
			j, _ := strconv.Atoi(s.Highlighted[1])
			require.NotEqual(t, i, j, "swap step must transpose distinct positions")
			a[i], a[j] = a[j], a[i]
		case sorting.KindWrite:
			require.Len(t, s.Highlighted, 1)
			i, _ := strconv.Atoi(s.Highlighted[0])
			a[i] = s.Snapshot.Values[i]
		default:
			continue
		}
		require.Equal(t, a, s.Snapshot.Values, "step %d", s.Index)
	}

	return a
}

func TestSort_AllAlgorithms(t *testing.T) {
	for _, algo := range sorting.Algorithms() {
		for _, in := range inputs {
			orig := append([]int{}, in...)
			res, err := sorting.Sort(in, algo)
			require.NoError(t, err)

			want := append([]int{}, in...)
			slices.Sort(want)
			assert.Equal(t, want, res.Sorted, "%s %v", algo, in)
			assert.Equal(t, orig, in, "input must not be mutated")

			last, ok := res.Trace.Last()
			require.True(t, ok)
			assert.Equal(t, sorting.KindComplete, last.Kind)
			assert.Equal(t, want, last.Snapshot.Values)

			assert.Equal(t, res.Swaps, res.Trace.Count(sorting.KindSwap), algo)
			assert.Equal(t, res.Writes, res.Trace.Count(sorting.KindWrite), algo)
			assert.Equal(t, res.Sorted, replay(t, in, res.Trace), algo)
		}
	}
}

func TestSort_Random(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for k := 0; k < 50; k++ {
		in := make([]int, r.Intn(25))
		for i := range in {
			in[i] = r.Intn(20) - 10
		}
		want := append([]int{}, in...)
		slices.Sort(want)
		for _, algo := range sorting.Algorithms() {
			res, err := sorting.Sort(in, algo)
			require.NoError(t, err)
			require.Equal(t, want, res.Sorted, "%s %v", algo, in)
			require.Equal(t, res.Sorted, replay(t, in, res.Trace))
		}
	}
}

// TestSort_AdjacentSwapCounts checks the swap policy of the adjacent-swap
// sorts: each swap removes exactly one inversion.
func TestSort_AdjacentSwapCounts(t *testing.T) {
	for _, in := range inputs {
		assert.Equal(t, inversions(in), sorting.BubbleSort(in).Swaps, "bubble %v", in)
		assert.Equal(t, inversions(in), sorting.InsertionSort(in).Swaps, "insertion %v", in)
	}
	assert.Zero(t, sorting.MergeSort([]int{3, 2, 1}).Swaps)
	// [3 2] merges with 2 writes, then [2 3]+[1] with 3.
	assert.Equal(t, 5, sorting.MergeSort([]int{3, 2, 1}).Writes)
}

func TestSort_SelectionAtMostNMinusOneSwaps(t *testing.T) {
	for _, in := range inputs {
		res := sorting.SelectionSort(in)
		assert.LessOrEqual(t, res.Swaps, max(len(in)-1, 0))
	}
}

func TestSort_BubbleEarlyExit(t *testing.T) {
	res := sorting.BubbleSort([]int{1, 2, 3, 4})
	assert.Equal(t, 3, res.Comparisons)
	assert.Zero(t, res.Swaps)
}

func TestSort_QuickPivotSteps(t *testing.T) {
	res := sorting.QuickSort([]int{3, 1, 2})
	pivots := res.Trace.Filter(sorting.KindPivot)
	require.NotEmpty(t, pivots)
	assert.Equal(t, 2, pivots[0].Snapshot.Pivot)
}

func TestSort_Empty(t *testing.T) {
	for _, algo := range sorting.Algorithms() {
		res, err := sorting.Sort([]int{}, algo)
		require.NoError(t, err)
		assert.Empty(t, res.Sorted)
		assert.True(t, res.Trace.Empty())
	}
	res := sorting.HeapSort[int](nil)
	assert.Empty(t, res.Sorted)
}

func TestSort_Strings(t *testing.T) {
	res := sorting.HeapSort([]string{"pear", "apple", "fig"})
	assert.Equal(t, []string{"apple", "fig", "pear"}, res.Sorted)
}

func TestSort_Unknown(t *testing.T) {
	_, err := sorting.Sort([]int{1}, "bogo")
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
}

func TestSort_Deterministic(t *testing.T) {
	in := []int{64, 34, 25, 12, 22, 11, 90}
	for _, algo := range sorting.Algorithms() {
		a, _ := sorting.Sort(in, algo)
		b, _ := sorting.Sort(in, algo)
		if diff := cmp.Diff(a.Trace.Steps(), b.Trace.Steps()); diff != "" {
			t.Errorf("%s traces differ:\n%s", algo, diff)
		}
	}
}
