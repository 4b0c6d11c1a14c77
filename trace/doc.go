// Package trace records the step-by-step history of an algorithm run.
//
// What
//
//   - A Step is one immutable snapshot of algorithm state: an index, a kind
//     ("compare", "swap", "visit", ...), a human-readable description, the IDs
//     or indices that changed, and an algorithm-specific Snapshot value.
//   - A Trace is the ordered, finite list of Steps for one run. It is fully
//     materialized before playback begins and never mutated afterwards.
//   - A Recorder builds a Trace; engines call Record after every state change
//     and Trace once the algorithm has completed.
//
// Ownership
//
//	The Snapshot passed to Record must be owned by the step: engines copy
//	their working slices before recording. Sharing is only allowed for
//	values that are themselves immutable (e.g. finished Huffman nodes).
//
// Determinism
//
//	Recorder assigns indices 0,1,2,... in call order and does not consult
//	clocks or random sources, so identical inputs produce identical traces.
//
// Usage
//
//	rec := trace.NewRecorder[[]int]()
//	rec.Record(trace.KindCompare, "compare 3 and 1", snapshot, trace.Indices(0, 1)...)
//	tr := rec.Trace()
//	last, _ := tr.Last()
package trace
