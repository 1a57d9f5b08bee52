// Package feed provides defensive accessors over the loosely-typed upstream
// scoring document. Every accessor tolerates missing, null, or misshapen
// input and falls back to a zero value instead of panicking.
package feed

import (
	"math"
	"strings"
)

// Doc is a decoded JSON object from the upstream feed.
type Doc map[string]any

// AsDoc converts an arbitrary decoded value to a Doc.
// Returns nil when the value is not a JSON object.
func AsDoc(v any) Doc {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return nil
}

// Object walks nested objects along path. Any missing or non-object hop
// yields nil, which every other accessor accepts.
func (d Doc) Object(path ...string) Doc {
	cur := d
	for _, key := range path {
		if cur == nil {
			return nil
		}
		cur = AsDoc(cur[key])
	}
	return cur
}

// Text returns the trimmed string at key, or "" when absent or not a string.
func (d Doc) Text(key string) string {
	if d == nil {
		return ""
	}
	if s, ok := d[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// Flag returns the boolean at key, or false when absent or not a boolean.
func (d Doc) Flag(key string) bool {
	if d == nil {
		return false
	}
	b, _ := d[key].(bool)
	return b
}

// NumberOK returns the finite numeric value at key.
// Non-numeric and non-finite values report ok=false.
func (d Doc) NumberOK(key string) (float64, bool) {
	if d == nil {
		return 0, false
	}
	switch n := d[key].(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Number returns the finite numeric value at key, or fallback.
func (d Doc) Number(key string, fallback float64) float64 {
	if n, ok := d.NumberOK(key); ok {
		return n
	}
	return fallback
}

// Seq returns the ordered sequence at key. Anything other than an actual
// JSON array yields an empty sequence.
func (d Doc) Seq(key string) []any {
	if d == nil {
		return nil
	}
	if s, ok := d[key].([]any); ok {
		return s
	}
	return nil
}

// First returns the first object of the sequence at key, or nil.
func (d Doc) First(key string) Doc {
	seq := d.Seq(key)
	if len(seq) == 0 {
		return nil
	}
	return AsDoc(seq[0])
}

// FullName joins the participant's non-empty first/middle/last name parts
// with single spaces.
func FullName(p Doc) string {
	parts := make([]string, 0, 3)
	for _, key := range []string{"firstName", "middleName", "lastName"} {
		if s := p.Text(key); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
