package engine

import (
	"fmt"
	"unicode/utf8"
)

// Limits caps the size of one run. Every recorded step copies the working
// state, so trace memory grows faster than the input; a run over a cap
// fails with ErrBadInput (input) or ErrBadParams (params) before the engine
// starts. Fields left at zero take the DefaultLimits value.
type Limits struct {
	MaxTextRunes    int `json:"maxTextRunes" yaml:"max_text_runes"`       // text algorithms
	MaxPatternRunes int `json:"maxPatternRunes" yaml:"max_pattern_runes"` // "pattern" param
	MaxSortValues   int `json:"maxSortValues" yaml:"max_sort_values"`
	MaxGridCells    int `json:"maxGridCells" yaml:"max_grid_cells"` // width × height
	MaxEdges        int `json:"maxEdges" yaml:"max_edges"`
	MaxServers      int `json:"maxServers" yaml:"max_servers"`
	MaxKeys         int `json:"maxKeys" yaml:"max_keys"`
	MaxReplicas     int `json:"maxReplicas" yaml:"max_replicas"`
}

// DefaultLimits keeps the worst case of every engine to tens of megabytes.
func DefaultLimits() Limits {
	return Limits{
		MaxTextRunes:    1000,
		MaxPatternRunes: 50,
		MaxSortValues:   100,
		MaxGridCells:    400,
		MaxEdges:        200,
		MaxServers:      16,
		MaxKeys:         100,
		MaxReplicas:     16,
	}
}

// WithDefaults fills zero or negative fields from DefaultLimits.
func (l Limits) WithDefaults() Limits {
	d := DefaultLimits()
	fill := func(v *int, def int) {
		if *v <= 0 {
			*v = def
		}
	}
	fill(&l.MaxTextRunes, d.MaxTextRunes)
	fill(&l.MaxPatternRunes, d.MaxPatternRunes)
	fill(&l.MaxSortValues, d.MaxSortValues)
	fill(&l.MaxGridCells, d.MaxGridCells)
	fill(&l.MaxEdges, d.MaxEdges)
	fill(&l.MaxServers, d.MaxServers)
	fill(&l.MaxKeys, d.MaxKeys)
	fill(&l.MaxReplicas, d.MaxReplicas)

	return l
}

// Option configures Run and CompareMatchers.
type Option func(*options)

type options struct {
	limits Limits
}

// WithLimits replaces DefaultLimits. Zero fields keep their default.
func WithLimits(l Limits) Option {
	return func(o *options) {
		o.limits = l.WithDefaults()
	}
}

func newOptions(opts []Option) options {
	o := options{limits: DefaultLimits()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// atMost returns a wrapped sentinel when n exceeds max.
func atMost(sentinel error, what string, n, max int) error {
	if n > max {
		return fmt.Errorf("%w: %s: %d exceeds the limit of %d", sentinel, what, n, max)
	}

	return nil
}

// checkText bounds a text input and its pattern, counted in runes.
func (l Limits) checkText(text, pattern string) error {
	if err := atMost(ErrBadInput, "text runes", utf8.RuneCountInString(text), l.MaxTextRunes); err != nil {
		return err
	}

	return atMost(ErrBadParams, "pattern runes", utf8.RuneCountInString(pattern), l.MaxPatternRunes)
}

// checkGrid bounds the bounding box of parsed maze rows.
func (l Limits) checkGrid(rows []string) error {
	width := 0
	for _, r := range rows {
		if n := utf8.RuneCountInString(r); n > width {
			width = n
		}
	}

	return atMost(ErrBadInput, "grid cells", width*len(rows), l.MaxGridCells)
}
