package engine

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stepwise/strmatch"
)

// Comparison reports how the string matchers fared on one input.
type Comparison struct {
	Text        string           `json:"text" yaml:"text"`
	Pattern     string           `json:"pattern" yaml:"pattern"`
	Matches     map[string][]int `json:"matches" yaml:"matches"`
	Comparisons map[string]int   `json:"comparisons" yaml:"comparisons"`
	Agree       bool             `json:"agree" yaml:"agree"`
}

// CompareMatchers runs every string matcher concurrently on the same input
// and reports whether they found the same positions.
// Returns ctx.Err() if ctx is cancelled before all matchers finish, and
// ErrBadInput or ErrBadParams if text or pattern exceed the Limits.
func CompareMatchers(ctx context.Context, text, pattern string, opts ...Option) (*Comparison, error) {
	if err := newOptions(opts).limits.checkText(text, pattern); err != nil {
		return nil, err
	}
	algos := strmatch.Algorithms()
	results := make([]*strmatch.Result, len(algos))

	g, gctx := errgroup.WithContext(ctx)
	for i, a := range algos {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := strmatch.Match(text, pattern, a)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cmp := &Comparison{
		Text:        text,
		Pattern:     pattern,
		Matches:     make(map[string][]int, len(algos)),
		Comparisons: make(map[string]int, len(algos)),
		Agree:       true,
	}
	for i, a := range algos {
		cmp.Matches[string(a)] = results[i].Matches
		cmp.Comparisons[string(a)] = results[i].Comparisons
		if !slices.Equal(results[i].Matches, results[0].Matches) {
			cmp.Agree = false
		}
	}

	return cmp, nil
}
