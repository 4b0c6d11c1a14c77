package hashring

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/stepwise/trace"
)

// Ring is a consistent-hashing ring of servers and tracked keys.
type Ring struct {
	mu       sync.RWMutex
	hash     HashFunc
	replicas int
	servers  map[string]bool
	keys     []string // insertion order
	owner    map[string]string
	nodes    []VirtualNode // sorted by angle, server, replica
}

// New returns an empty Ring with one virtual node per server and DefaultHash.
func New(opts ...Option) *Ring {
	r := &Ring{
		hash:     DefaultHash,
		replicas: 1,
		servers:  make(map[string]bool),
		owner:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Replicas returns the number of virtual nodes per server.
func (r *Ring) Replicas() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.replicas
}

// Servers returns the server names in ascending order.
func (r *Ring) Servers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedServers()
}

// Keys returns the tracked keys in insertion order.
func (r *Ring) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string{}, r.keys...)
}

// Angle returns the ring angle of s under the ring's hash.
func (r *Ring) Angle(s string) int {
	return normalize(r.hash(s))
}

// AddServer puts name on the ring and rebuilds.
// Returns ErrEmptyName or ErrServerExists.
func (r *Ring) AddServer(name string) (*Rebalance, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.servers[name] {
		return nil, fmt.Errorf("%w: %q", ErrServerExists, name)
	}
	r.servers[name] = true

	return r.rebuild(), nil
}

// RemoveServer takes name off the ring and rebuilds.
// Returns ErrServerNotFound if name is not on the ring.
func (r *Ring) RemoveServer(name string) (*Rebalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.servers[name] {
		return nil, fmt.Errorf("%w: %q", ErrServerNotFound, name)
	}
	delete(r.servers, name)

	return r.rebuild(), nil
}

// SetReplicas changes the virtual-node count per server and rebuilds.
// Returns ErrBadReplicas if n is outside [1, MaxReplicas].
func (r *Ring) SetReplicas(n int) (*Rebalance, error) {
	if n < 1 || n > MaxReplicas {
		return nil, fmt.Errorf("%w: got %d", ErrBadReplicas, n)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replicas = n

	return r.rebuild(), nil
}

// AddKey tracks key and returns its owner ("" while the ring has no servers).
// Adding a tracked key again only reports its owner.
func (r *Ring) AddKey(key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.owner[key]; ok {
		return r.owner[key], nil
	}
	r.keys = append(r.keys, key)
	node, ok := r.locate(r.Angle(key))
	if !ok {
		r.owner[key] = ""
		return "", nil
	}
	r.owner[key] = node.Server

	return node.Server, nil
}

// RemoveKey stops tracking key. Returns ErrKeyNotFound if it was not tracked.
func (r *Ring) RemoveKey(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.owner[key]; !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	delete(r.owner, key)
	for i, k := range r.keys {
		if k == key {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}

	return nil
}

// Locate returns the virtual node responsible for key, whether or not key
// is tracked. Returns ErrEmptyKey or ErrNoServers.
func (r *Ring) Locate(key string) (VirtualNode, error) {
	if key == "" {
		return VirtualNode{}, ErrEmptyKey
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	node, ok := r.locate(r.Angle(key))
	if !ok {
		return VirtualNode{}, ErrNoServers
	}

	return node, nil
}

// Assignments returns a copy of the key → server map.
func (r *Ring) Assignments() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyOwners(r.owner)
}

// VirtualNodes returns the ring positions sorted by angle.
func (r *Ring) VirtualNodes() []VirtualNode {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]VirtualNode{}, r.nodes...)
}

// Load returns the number of tracked keys per server, including servers
// that own none.
func (r *Ring) Load() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]int, len(r.servers))
	for s := range r.servers {
		out[s] = 0
	}
	for _, s := range r.owner {
		if s != "" {
			out[s]++
		}
	}

	return out
}

// locate finds the first node with Angle >= angle, wrapping to nodes[0].
func (r *Ring) locate(angle int) (VirtualNode, bool) {
	if len(r.nodes) == 0 {
		return VirtualNode{}, false
	}
	i := sort.Search(len(r.nodes), func(i int) bool {
		return r.nodes[i].Angle >= angle
	})
	if i == len(r.nodes) {
		i = 0
	}

	return r.nodes[i], true
}

// rebuild recomputes every virtual node and every key owner from scratch.
//
// Steps:
//  1. For each server (ascending) and replica, hash the label and insert the
//     node in sorted position; record "place".
//  2. For each tracked key in insertion order, locate its owner; record "assign".
//  3. Diff old and new owners into Rebalance.Moved; record "complete".
//
// Complexity: O(S·R·log(S·R) + K·log(S·R)), plus O(S·R + K) per recorded step.
func (r *Ring) rebuild() *Rebalance {
	rec := trace.NewRecorder[State]()
	old := r.owner
	r.owner = make(map[string]string, len(r.keys))
	r.nodes = r.nodes[:0:0]

	for _, s := range r.sortedServers() {
		for i := 0; i < r.replicas; i++ {
			v := VirtualNode{Server: s, Replica: i, Angle: r.Angle(replicaLabel(s, i))}
			at := sort.Search(len(r.nodes), func(j int) bool { return nodeLess(v, r.nodes[j]) })
			r.nodes = append(r.nodes, VirtualNode{})
			copy(r.nodes[at+1:], r.nodes[at:])
			r.nodes[at] = v
			rec.Record(KindPlace, fmt.Sprintf("Place %s at %d°", v.ID(), v.Angle), r.snapshot(), v.ID())
		}
	}

	moved := make(map[string]Move)
	for _, k := range r.keys {
		angle := r.Angle(k)
		node, ok := r.locate(angle)
		if !ok {
			r.owner[k] = ""
			rec.Record(KindAssign, fmt.Sprintf("Key %s at %d°: no server", k, angle), r.snapshot(), k)
		} else {
			r.owner[k] = node.Server
			rec.Record(KindAssign,
				fmt.Sprintf("Key %s at %d° → %s (node %s at %d°)", k, angle, node.Server, node.ID(), node.Angle),
				r.snapshot(), k, node.ID())
		}
		if old[k] != r.owner[k] {
			moved[k] = Move{From: old[k], To: r.owner[k]}
		}
	}

	movedKeys := make([]string, 0, len(moved))
	for _, k := range r.keys {
		if _, ok := moved[k]; ok {
			movedKeys = append(movedKeys, k)
		}
	}
	rec.Record(KindComplete,
		fmt.Sprintf("Ring rebuilt: %d virtual nodes, %d of %d keys moved", len(r.nodes), len(moved), len(r.keys)),
		r.snapshot(), movedKeys...)

	return &Rebalance{Moved: moved, Trace: rec.Trace()}
}

func (r *Ring) snapshot() State {
	return State{
		Nodes:       append([]VirtualNode{}, r.nodes...),
		Assignments: copyOwners(r.owner),
	}
}

func (r *Ring) sortedServers() []string {
	out := make([]string, 0, len(r.servers))
	for s := range r.servers {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// nodeLess orders by angle, then server name, then replica.
func nodeLess(a, b VirtualNode) bool {
	if a.Angle != b.Angle {
		return a.Angle < b.Angle
	}
	if a.Server != b.Server {
		return a.Server < b.Server
	}

	return a.Replica < b.Replica
}

func normalize(angle int) int {
	angle %= Circumference
	if angle < 0 {
		angle += Circumference
	}

	return angle
}

func copyOwners(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}

	return out
}
