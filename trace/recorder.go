package trace

// Recorder appends steps in execution order and seals them into a Trace.
// A Recorder is not safe for concurrent use; each engine run owns one.
type Recorder[S any] struct {
	steps  []Step[S]
	sealed bool
}

// NewRecorder returns an empty Recorder.
func NewRecorder[S any]() *Recorder[S] {
	return &Recorder[S]{}
}

// Record appends a step. The snapshot must already be a private copy.
// Calling Record after Trace panics: a sealed trace is append-only history
// and engines must not extend it.
func (r *Recorder[S]) Record(kind Kind, description string, snapshot S, highlighted ...string) {
	if r.sealed {
		panic("trace: Record called on a sealed recorder")
	}
	hl := make([]string, len(highlighted))
	copy(hl, highlighted)
	r.steps = append(r.steps, Step[S]{
		Index:       len(r.steps),
		Kind:        kind,
		Description: description,
		Highlighted: hl,
		Snapshot:    snapshot,
	})
}

// Len returns the number of steps recorded so far.
func (r *Recorder[S]) Len() int { return len(r.steps) }

// Trace seals the recorder and returns the finished Trace.
// Subsequent calls return the same Trace.
func (r *Recorder[S]) Trace() Trace[S] {
	r.sealed = true

	return Trace[S]{steps: r.steps}
}
