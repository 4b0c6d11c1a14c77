package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/stepwise/trace"
)

// Sentinel errors for Run.
var (
	ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")
	ErrBadParams        = errors.New("engine: bad params")
	ErrBadInput         = errors.New("engine: bad input")
)

// Category groups algorithms that share an input format.
type Category string

const (
	CategoryText     Category = "text"
	CategorySort     Category = "sort"
	CategoryGrid     Category = "grid"
	CategoryGraph    Category = "graph"
	CategoryHashring Category = "hashring"
)

// Request is one algorithm invocation. All fields are plain data.
type Request struct {
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Input     string `json:"input" yaml:"input"`
	Params    Params `json:"params,omitempty" yaml:"params,omitempty"`
}

// Response is the result of Run.
// Steps carries the snapshots of the algorithm-specific state type.
type Response struct {
	Algorithm string           `json:"algorithm" yaml:"algorithm"`
	Result    any              `json:"result" yaml:"result"`
	Steps     trace.Trace[any] `json:"steps" yaml:"steps"`
}

// Info describes a registered algorithm.
type Info struct {
	Name     string   `json:"name" yaml:"name"`
	Category Category `json:"category" yaml:"category"`
	Summary  string   `json:"summary" yaml:"summary"`
	Params   []string `json:"params,omitempty" yaml:"params,omitempty"`
}

type runFunc func(ctx context.Context, name, input string, p Params, lim Limits) (any, trace.Trace[any], error)

type entry struct {
	info Info
	run  runFunc
}

// Run executes req.Algorithm.
//
// Steps:
//  1. Return ctx.Err() if the context is already done.
//  2. Resolve the registry entry; unknown names → ErrUnknownAlgorithm.
//  3. Empty input → empty Response. Text algorithms take the input as is;
//     the other categories treat whitespace as a separator, so blank input
//     counts as empty there.
//  4. Decode input and params, check them against the Limits (see
//     WithLimits), run the engine, erase the trace type.
func Run(ctx context.Context, req Request, opts ...Option) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := strings.ToLower(strings.TrimSpace(req.Algorithm))
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, req.Algorithm)
	}
	if isEmpty(e.info.Category, req.Input) {
		return &Response{Algorithm: name}, nil
	}

	o := newOptions(opts)
	result, steps, err := e.run(ctx, name, req.Input, req.Params, o.limits)
	if err != nil {
		return nil, err
	}

	return &Response{Algorithm: name, Result: result, Steps: steps}, nil
}

func isEmpty(c Category, input string) bool {
	if c == CategoryText {
		return input == ""
	}

	return strings.TrimSpace(input) == ""
}

// Algorithms lists the registered algorithms ordered by category, then name.
func Algorithms() []Info {
	out := make([]Info, 0, len(registry))
	for _, e := range registry {
		out = append(out, e.info)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})

	return out
}

// Lookup returns the Info of a registered algorithm.
func Lookup(name string) (Info, bool) {
	e, ok := registry[strings.ToLower(name)]

	return e.info, ok
}

// erase re-records a typed trace as trace.Trace[any].
func erase[S any](tr trace.Trace[S]) trace.Trace[any] {
	rec := trace.NewRecorder[any]()
	appendSteps(rec, tr)

	return rec.Trace()
}

// appendSteps copies tr onto rec, renumbering indices.
func appendSteps[S any](rec *trace.Recorder[any], tr trace.Trace[S]) {
	for _, s := range tr.Steps() {
		rec.Record(s.Kind, s.Description, s.Snapshot, s.Highlighted...)
	}
}
