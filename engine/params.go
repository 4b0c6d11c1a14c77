package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Params holds algorithm parameters decoded from JSON or YAML.
type Params map[string]any

// String returns p[key] as a string, or "" if absent.
func (p Params) String(key string) (string, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q must be a string, got %T", ErrBadParams, key, v)
	}

	return s, nil
}

// Int returns p[key] as an int, or def if absent. JSON numbers must be integral.
func (p Params) Int(key string, def int) (int, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%w: %q must be an integer, got %v", ErrBadParams, key, n)
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrBadParams, key, err)
		}
		return int(i), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrBadParams, key, err)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("%w: %q must be an integer, got %T", ErrBadParams, key, v)
	}
}

// Strings returns p[key] as a list. A single string is split on commas.
func (p Params) Strings(key string) ([]string, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return nil, nil
	}
	var raw []string
	switch list := v.(type) {
	case string:
		raw = strings.Split(list, ",")
	case []string:
		raw = list
	case []any:
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %q must hold strings, got %T", ErrBadParams, key, item)
			}
			raw = append(raw, s)
		}
	default:
		return nil, fmt.Errorf("%w: %q must be a list of strings, got %T", ErrBadParams, key, v)
	}
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}

	return out, nil
}

// splitAny splits s on any of the separator runes and drops blank parts.
func splitAny(s, seps string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return strings.ContainsRune(seps, r) })
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}

	return out
}

// parseInts reads integers separated by commas or whitespace.
func parseInts(input string) ([]int, error) {
	fields := splitAny(input, ", \t\r\n")
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: value %d: %q is not an integer", ErrBadInput, i, f)
		}
		out[i] = n
	}

	return out, nil
}

// edgeSpec is one parsed "from to [weight]" entry.
type edgeSpec struct {
	from, to string
	weight   float64
}

// parseEdges reads "from to [weight]" entries separated by newlines or ','.
// A missing weight defaults to 1.
func parseEdges(input string) ([]edgeSpec, error) {
	var out []edgeSpec
	for i, line := range splitAny(input, ",\n") {
		f := strings.Fields(line)
		if len(f) < 2 || len(f) > 3 {
			return nil, fmt.Errorf("%w: edge %d: want \"from to [weight]\", got %q", ErrBadInput, i, strings.TrimSpace(line))
		}
		e := edgeSpec{from: f[0], to: f[1], weight: 1}
		if len(f) == 3 {
			w, err := strconv.ParseFloat(f[2], 64)
			if err != nil || math.IsNaN(w) {
				return nil, fmt.Errorf("%w: edge %d: bad weight %q", ErrBadInput, i, f[2])
			}
			e.weight = w
		}
		out = append(out, e)
	}

	return out, nil
}

// parseRows splits maze input on newlines or ';', keeping interior spaces.
func parseRows(input string) []string {
	var rows []string
	for _, r := range splitAny(input, "\n;") {
		if r = strings.TrimRight(r, "\r"); strings.TrimSpace(r) != "" {
			rows = append(rows, strings.TrimSpace(r))
		}
	}

	return rows
}
