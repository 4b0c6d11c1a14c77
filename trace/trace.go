package trace

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrStepOutOfRange is returned when a step index is outside [0, Len()).
var ErrStepOutOfRange = errors.New("trace: step index out of range")

// Kind classifies a Step. Engines define the kinds they emit; the common
// ones are declared here so that consumers can count them uniformly.
type Kind string

// Step kinds shared by several engines.
const (
	KindInit     Kind = "init"
	KindCompare  Kind = "compare"
	KindSwap     Kind = "swap"
	KindWrite    Kind = "write"
	KindVisit    Kind = "visit"
	KindComplete Kind = "complete"
)

// Step is one immutable snapshot of an algorithm's state.
type Step[S any] struct {
	// Index is the position of this step in its Trace, starting at 0.
	Index int `json:"index" yaml:"index"`

	// Kind classifies the transition this step records.
	Kind Kind `json:"kind" yaml:"kind"`

	// Description is a human-readable sentence about the transition.
	Description string `json:"description" yaml:"description"`

	// Highlighted lists the IDs (or decimal indices) that changed or are
	// being compared. Never nil in a recorded step.
	Highlighted []string `json:"highlighted" yaml:"highlighted"`

	// Snapshot is the working state needed to re-render this step.
	Snapshot S `json:"snapshot" yaml:"snapshot"`
}

// Trace is the ordered list of Steps of one algorithm run.
// The zero value is an empty trace.
type Trace[S any] struct {
	steps []Step[S]
}

// Len returns the number of steps.
func (t Trace[S]) Len() int { return len(t.steps) }

// Empty reports whether the trace holds no steps.
func (t Trace[S]) Empty() bool { return len(t.steps) == 0 }

// At returns a copy of the step at index i; see Steps for what is copied.
// Returns ErrStepOutOfRange if i < 0 or i >= Len().
func (t Trace[S]) At(i int) (Step[S], error) {
	if i < 0 || i >= len(t.steps) {
		var zero Step[S]
		return zero, fmt.Errorf("%w: %d (len %d)", ErrStepOutOfRange, i, len(t.steps))
	}

	return t.steps[i].clone(), nil
}

// Last returns the final step, or false if the trace is empty.
func (t Trace[S]) Last() (Step[S], bool) {
	if len(t.steps) == 0 {
		var zero Step[S]
		return zero, false
	}

	return t.steps[len(t.steps)-1].clone(), true
}

// Steps returns a copy of the steps, Highlighted included. Snapshots are
// not deep-copied: a snapshot holding a slice, map or pointer still shares
// memory with the trace and must be treated as read-only.
func (t Trace[S]) Steps() []Step[S] {
	out := make([]Step[S], len(t.steps))
	for i := range t.steps {
		out[i] = t.steps[i].clone()
	}

	return out
}

func (s Step[S]) clone() Step[S] {
	s.Highlighted = append([]string(nil), s.Highlighted...)
	if s.Highlighted == nil {
		s.Highlighted = []string{}
	}

	return s
}

// Count returns the number of steps with the given kind.
// Complexity: O(n).
func (t Trace[S]) Count(kind Kind) int {
	n := 0
	for i := range t.steps {
		if t.steps[i].Kind == kind {
			n++
		}
	}

	return n
}

// Filter returns the steps with the given kind, in trace order.
func (t Trace[S]) Filter(kind Kind) []Step[S] {
	var out []Step[S]
	for i := range t.steps {
		if t.steps[i].Kind == kind {
			out = append(out, t.steps[i].clone())
		}
	}

	return out
}

// Descriptions returns the description of every step in order.
func (t Trace[S]) Descriptions() []string {
	out := make([]string, len(t.steps))
	for i := range t.steps {
		out[i] = t.steps[i].Description
	}

	return out
}

// MarshalJSON encodes the trace as a JSON array of steps.
func (t Trace[S]) MarshalJSON() ([]byte, error) {
	if t.steps == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(t.steps)
}

// UnmarshalJSON decodes a JSON array of steps. It is used by clients of the
// HTTP API and by tests; engines never decode traces.
func (t *Trace[S]) UnmarshalJSON(data []byte) error {
	var steps []Step[S]
	if err := json.Unmarshal(data, &steps); err != nil {
		return fmt.Errorf("trace: decode: %w", err)
	}
	for i := range steps {
		if steps[i].Index != i {
			return fmt.Errorf("trace: decode: step %d has index %d", i, steps[i].Index)
		}
	}
	t.steps = steps

	return nil
}

// MarshalYAML encodes the trace as a YAML sequence of steps.
func (t Trace[S]) MarshalYAML() (interface{}, error) {
	if t.steps == nil {
		return []Step[S]{}, nil
	}

	return t.steps, nil
}

// Indices formats integer positions as highlight IDs.
func Indices(idx ...int) []string {
	out := make([]string, len(idx))
	for i, v := range idx {
		out[i] = strconv.Itoa(v)
	}

	return out
}
