package validation

import "strings"

// FieldWithFallback returns obj[primary] if truthy; else the first truthy
// obj[fallback]; else def. Empty string counts as falsy — this is
// load-bearing for section emitters, which rely on fallbacks when a key
// exists but is blank (spec.md §4.1).
func FieldWithFallback(obj map[string]any, primary string, fallbacks []string, def string) string {
	if v, ok := asTruthyString(obj[primary]); ok {
		return v
	}
	for _, fb := range fallbacks {
		if v, ok := asTruthyString(obj[fb]); ok {
			return v
		}
	}
	return def
}

// FieldAnyWithFallback is the untyped counterpart of FieldWithFallback, used
// where the value is not necessarily a string (e.g. a nested list or map).
func FieldAnyWithFallback(obj map[string]any, primary string, fallbacks []string, def any) any {
	if v, ok := obj[primary]; ok && isTruthy(v) {
		return v
	}
	for _, fb := range fallbacks {
		if v, ok := obj[fb]; ok && isTruthy(v) {
			return v
		}
	}
	return def
}

func asTruthyString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	if s == "" {
		return "", false
	}
	return s, true
}

func isTruthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	case bool:
		return val
	case float64:
		return val != 0
	case int:
		return val != 0
	default:
		return true
	}
}

// DotPath navigates a dotted path (e.g. "personalInfo.email" or
// "experience.0.startDate") through nested maps/slices, returning nil if any
// segment is missing. Array indices are plain decimal segments.
func DotPath(obj any, path string) any {
	cur := obj
	for _, seg := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil
			}
			cur = v
		case []any:
			idx, ok := parseIndex(seg)
			if !ok || idx < 0 || idx >= len(node) {
				return nil
			}
			cur = node[idx]
		default:
			return nil
		}
	}
	return cur
}

func parseIndex(seg string) (int, bool) {
	if seg == "" {
		return 0, false
	}
	n := 0
	for _, r := range seg {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// AsMap is a defensive cast: returns the map and true when v is a
// map[string]any, else an empty map and false.
func AsMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return map[string]any{}, false
	}
	return m, true
}

// AsSlice is a defensive cast: returns the slice and true when v is a
// []any, else an empty slice and false.
func AsSlice(v any) ([]any, bool) {
	s, ok := v.([]any)
	if !ok {
		return nil, false
	}
	return s, true
}
