package hashring_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwise/hashring"
)

// fixedHash places the listed labels at fixed angles and falls back to
// DefaultHash for anything else.
func fixedHash(angles map[string]int) hashring.HashFunc {
	return func(s string) int {
		if a, ok := angles[s]; ok {
			return a
		}
		return hashring.DefaultHash(s)
	}
}

func TestDefaultHash(t *testing.T) {
	assert.Equal(t, 0, hashring.DefaultHash(""))
	assert.Equal(t, 97, hashring.DefaultHash("a"))
	assert.Equal(t, 225, hashring.DefaultHash("ab")) // (97*31 + 98) % 360
	for _, s := range []string{"server-1", "key-42", "ünïcode", "a much longer string that overflows uint32"} {
		h := hashring.DefaultHash(s)
		assert.GreaterOrEqual(t, h, 0)
		assert.Less(t, h, hashring.Circumference)
		assert.Equal(t, h, hashring.DefaultHash(s))
	}
}

func TestLocate_WrapsPastZero(t *testing.T) {
	r := hashring.New(hashring.WithHash(fixedHash(map[string]int{
		"s90": 90, "s210": 210, "s330": 330, "k340": 340, "k10": 10, "k210": 210,
	})))
	for _, s := range []string{"s90", "s210", "s330"} {
		_, err := r.AddServer(s)
		require.NoError(t, err)
	}

	node, err := r.Locate("k340")
	require.NoError(t, err)
	assert.Equal(t, "s90", node.Server)
	assert.Equal(t, 90, node.Angle)

	node, err = r.Locate("k10")
	require.NoError(t, err)
	assert.Equal(t, "s90", node.Server)

	// an exact angle hit belongs to that node
	node, err = r.Locate("k210")
	require.NoError(t, err)
	assert.Equal(t, "s210", node.Server)
}

func TestLocate_Errors(t *testing.T) {
	r := hashring.New()
	_, err := r.Locate("k")
	assert.ErrorIs(t, err, hashring.ErrNoServers)
	_, err = r.Locate("")
	assert.ErrorIs(t, err, hashring.ErrEmptyKey)
}

func TestServerErrors(t *testing.T) {
	r := hashring.New()
	_, err := r.AddServer("")
	assert.ErrorIs(t, err, hashring.ErrEmptyName)
	_, err = r.AddServer("a")
	require.NoError(t, err)
	_, err = r.AddServer("a")
	assert.ErrorIs(t, err, hashring.ErrServerExists)
	_, err = r.RemoveServer("zzz")
	assert.ErrorIs(t, err, hashring.ErrServerNotFound)
	_, err = r.SetReplicas(0)
	assert.ErrorIs(t, err, hashring.ErrBadReplicas)
	_, err = r.SetReplicas(hashring.MaxReplicas + 1)
	assert.ErrorIs(t, err, hashring.ErrBadReplicas)
	assert.Equal(t, 1, r.Replicas())
	assert.ErrorIs(t, r.RemoveKey("nope"), hashring.ErrKeyNotFound)
	_, err = r.AddKey("")
	assert.ErrorIs(t, err, hashring.ErrEmptyKey)
}

func TestRebalance_ListsExactlyMovedKeys(t *testing.T) {
	r := hashring.New(hashring.WithHash(fixedHash(map[string]int{
		"A": 100, "B": 200, "C": 300,
		"k50": 50, "k150": 150, "k250": 250, "k350": 350,
	})))
	_, _ = r.AddServer("A")
	_, _ = r.AddServer("B")
	for _, k := range []string{"k50", "k150", "k250", "k350"} {
		_, err := r.AddKey(k)
		require.NoError(t, err)
	}
	want := map[string]string{"k50": "A", "k150": "B", "k250": "A", "k350": "A"}
	if diff := cmp.Diff(want, r.Assignments()); diff != "" {
		t.Fatalf("assignments (-want +got):\n%s", diff)
	}

	reb, err := r.AddServer("C")
	require.NoError(t, err)
	assert.Equal(t, map[string]hashring.Move{"k250": {From: "A", To: "C"}}, reb.Moved)
	assert.Equal(t, 3, reb.Trace.Count(hashring.KindPlace))
	assert.Equal(t, 4, reb.Trace.Count(hashring.KindAssign))
	last, ok := reb.Trace.Last()
	require.True(t, ok)
	assert.Equal(t, hashring.KindComplete, last.Kind)
	assert.Equal(t, []string{"k250"}, last.Highlighted)
	assert.Equal(t, "C", last.Snapshot.Assignments["k250"])

	// removing it moves the same key back
	reb, err = r.RemoveServer("C")
	require.NoError(t, err)
	assert.Equal(t, map[string]hashring.Move{"k250": {From: "C", To: "A"}}, reb.Moved)

	// removing everything leaves keys unowned
	_, _ = r.RemoveServer("A")
	reb, err = r.RemoveServer("B")
	require.NoError(t, err)
	assert.Equal(t, hashring.Move{From: "B", To: ""}, reb.Moved["k150"])
	assert.Empty(t, r.VirtualNodes())
}

func TestRebuild_TraceSnapshotsAreIndependent(t *testing.T) {
	r := hashring.New(hashring.WithHash(fixedHash(map[string]int{"A": 10, "B": 20})))
	_, _ = r.AddServer("A")
	reb, err := r.AddServer("B")
	require.NoError(t, err)

	first, err := reb.Trace.At(0)
	require.NoError(t, err)
	assert.Len(t, first.Snapshot.Nodes, 1)
	second, err := reb.Trace.At(1)
	require.NoError(t, err)
	assert.Len(t, second.Snapshot.Nodes, 2)
	assert.Equal(t, "Place B at 20°", second.Description)
}

func TestVirtualNodes_ReplicasAndOrder(t *testing.T) {
	r := hashring.New(hashring.WithReplicas(3))
	_, _ = r.AddServer("alpha")
	_, _ = r.AddServer("beta")

	nodes := r.VirtualNodes()
	require.Len(t, nodes, 6)
	assert.True(t, sort.SliceIsSorted(nodes, func(i, j int) bool { return nodes[i].Angle < nodes[j].Angle }))

	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
		assert.Equal(t, hashring.DefaultHash(n.ID()), n.Angle)
	}
	sort.Strings(ids)
	assert.Equal(t, []string{"alpha", "alpha#1", "alpha#2", "beta", "beta#1", "beta#2"}, ids)

	reb, err := r.SetReplicas(1)
	require.NoError(t, err)
	assert.Len(t, r.VirtualNodes(), 2)
	assert.Equal(t, 2, reb.Trace.Count(hashring.KindPlace))
	assert.Equal(t, 1, r.Replicas())
}

func TestWithReplicas_OutOfRangeIgnored(t *testing.T) {
	assert.Equal(t, 1, hashring.New(hashring.WithReplicas(0)).Replicas())
	assert.Equal(t, 1, hashring.New(hashring.WithReplicas(hashring.MaxReplicas+1)).Replicas())
	assert.Equal(t, hashring.MaxReplicas, hashring.New(hashring.WithReplicas(hashring.MaxReplicas)).Replicas())
}

func TestVirtualNodes_EqualAnglesOrderedByNameThenReplica(t *testing.T) {
	r := hashring.New(hashring.WithHash(func(string) int { return 7 }), hashring.WithReplicas(2))
	_, _ = r.AddServer("b")
	_, _ = r.AddServer("a")

	want := []hashring.VirtualNode{
		{Server: "a", Replica: 0, Angle: 7},
		{Server: "a", Replica: 1, Angle: 7},
		{Server: "b", Replica: 0, Angle: 7},
		{Server: "b", Replica: 1, Angle: 7},
	}
	assert.Equal(t, want, r.VirtualNodes())

	node, err := r.Locate("anything")
	require.NoError(t, err)
	assert.Equal(t, "a", node.Server)
}

func TestKeys_AddRemoveAndLoad(t *testing.T) {
	r := hashring.New()
	owner, err := r.AddKey("orphan")
	require.NoError(t, err)
	assert.Empty(t, owner)

	_, _ = r.AddServer("only")
	assert.Equal(t, "only", r.Assignments()["orphan"])

	owner, err = r.AddKey("k2")
	require.NoError(t, err)
	assert.Equal(t, "only", owner)
	owner, err = r.AddKey("k2")
	require.NoError(t, err)
	assert.Equal(t, "only", owner)
	assert.Equal(t, []string{"orphan", "k2"}, r.Keys())
	assert.Equal(t, map[string]int{"only": 2}, r.Load())

	require.NoError(t, r.RemoveKey("orphan"))
	assert.Equal(t, []string{"k2"}, r.Keys())
	assert.Equal(t, []string{"only"}, r.Servers())
}

func TestRing_ConcurrentUse(t *testing.T) {
	r := hashring.New(hashring.WithReplicas(4))
	_, _ = r.AddServer("s0")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i))
			_, _ = r.AddKey(key)
			_, _ = r.Locate(key)
			_ = r.Assignments()
		}(i)
	}
	wg.Wait()
	assert.Len(t, r.Keys(), 8)
}
