// Package provider holds helpers shared by the reseller API clients.
//
// Reseller responses are not stable: the same value can show up at the top
// level, under data, or one level deeper depending on the endpoint and the
// provider's mood. Callers declare the candidate locations in order of
// preference and take the first hit instead of chaining nil checks.
package provider

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FirstString returns the first path that resolves to a non-empty
// string-convertible value. Paths are dot-separated keys, e.g.
// "data.order.status".
func FirstString(doc map[string]any, paths ...string) (string, bool) {
	for _, path := range paths {
		if v, ok := lookup(doc, path); ok {
			if s, ok := stringify(v); ok && s != "" {
				return s, true
			}
		}
	}
	return "", false
}

// AnyTrue reports whether any path holds a literal true. A false at one
// location never vetoes a true at another: hubnet has been seen sending a
// stale top-level status next to a fresh nested one.
func AnyTrue(doc map[string]any, paths ...string) bool {
	for _, path := range paths {
		if v, ok := lookup(doc, path); ok {
			if b, ok := v.(bool); ok && b {
				return true
			}
		}
	}
	return false
}

func lookup(doc map[string]any, path string) (any, bool) {
	keys := strings.Split(path, ".")
	var cur any = doc
	for _, key := range keys {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func stringify(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		// JSON numbers decode as float64; ids are integral in practice.
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t)), true
		}
		return fmt.Sprintf("%v", t), true
	case int:
		return fmt.Sprintf("%d", t), true
	case int64:
		return fmt.Sprintf("%d", t), true
	default:
		return "", false
	}
}
