package hashring

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/stepwise/trace"
)

// Circumference is the number of distinct angles on the ring.
const Circumference = 360

// MaxReplicas bounds the virtual nodes per server. More replicas than
// angles cannot spread a server any further.
const MaxReplicas = Circumference

// Sentinel errors for ring operations.
var (
	ErrEmptyName      = errors.New("hashring: empty server name")
	ErrEmptyKey       = errors.New("hashring: empty key")
	ErrServerExists   = errors.New("hashring: server already on the ring")
	ErrServerNotFound = errors.New("hashring: server not found")
	ErrKeyNotFound    = errors.New("hashring: key not found")
	ErrBadReplicas    = errors.New("hashring: replicas must be in [1, MaxReplicas]")
	ErrNoServers      = errors.New("hashring: ring has no servers")
)

// Step kinds recorded while rebuilding the ring.
const (
	KindPlace    trace.Kind = "place"
	KindAssign   trace.Kind = "assign"
	KindComplete            = trace.KindComplete
)

// HashFunc maps a string to an angle in [0, Circumference).
type HashFunc func(s string) int

// VirtualNode is one ring position of a server.
type VirtualNode struct {
	Server  string `json:"server" yaml:"server"`
	Replica int    `json:"replica" yaml:"replica"`
	Angle   int    `json:"angle" yaml:"angle"`
}

// ID returns the hashed label: the server name for replica 0, "name#i" otherwise.
func (v VirtualNode) ID() string { return replicaLabel(v.Server, v.Replica) }

func replicaLabel(server string, replica int) string {
	if replica == 0 {
		return server
	}

	return server + "#" + strconv.Itoa(replica)
}

// Move is the owner change of one key.
type Move struct {
	From string `json:"from"` // "" when the key had no owner
	To   string `json:"to"`   // "" when no server is left
}

// State is the snapshot carried by every rebuild step.
// Nodes are sorted by angle; Assignments maps key to server.
type State struct {
	Nodes       []VirtualNode     `json:"nodes"`
	Assignments map[string]string `json:"assignments"`
}

// Rebalance describes the effect of one topology change.
type Rebalance struct {
	Moved map[string]Move    `json:"moved"`
	Trace trace.Trace[State] `json:"-"`
}

// Option configures a Ring at construction.
type Option func(*Ring)

// WithHash replaces DefaultHash. A nil fn is ignored.
func WithHash(fn HashFunc) Option {
	return func(r *Ring) {
		if fn != nil {
			r.hash = fn
		}
	}
}

// WithReplicas sets the number of virtual nodes per server. Values outside
// [1, MaxReplicas] are ignored; use SetReplicas to get an error instead.
func WithReplicas(n int) Option {
	return func(r *Ring) {
		if n >= 1 && n <= MaxReplicas {
			r.replicas = n
		}
	}
}

// DefaultHash is h = h*31 + b over the bytes of s, reduced mod Circumference.
func DefaultHash(s string) int {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = h*31 + uint32(s[i])
	}

	return int(h % Circumference)
}
