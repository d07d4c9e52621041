package formval

import (
	"fmt"
	"strconv"
)

// truthy mirrors the emptiness notion the required rule works with:
// nil, empty strings, false, numeric zero, and files without a name are
// all considered absent.
func truthy(v any) bool {
	if f, ok := asFile(v); ok {
		return f.Name != ""
	}
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	}
	if n, ok := toFloat(v); ok {
		return n != 0
	}
	return true
}

// isEmptyScalar reports whether v is an absent or empty scalar value.
// Files are never empty scalars; their emptiness is a required-rule
// concern only.
func isEmptyScalar(v any) bool {
	if _, ok := asFile(v); ok {
		return false
	}
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	}
	return false
}

// str returns the string form of a scalar value.
func str(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(v)
	}
}

// length is the byte length of the string form of a value.
func length(v any) int {
	return len(str(v))
}

// toFloat coerces numeric values and numeric strings to float64.
func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case string:
		n, err := strconv.ParseFloat(t, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// looseEq compares two scalars the way a form would: numerically when
// both sides coerce to numbers, by string form otherwise, so "5" equals 5.
func looseEq(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return fa == fb
		}
	}
	return str(a) == str(b)
}

// toList normalizes membership-rule parameters to a []any.
func toList(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case []string:
		list := make([]any, len(t))
		for i, s := range t {
			list[i] = s
		}
		return list, true
	case []int:
		list := make([]any, len(t))
		for i, n := range t {
			list[i] = n
		}
		return list, true
	case []int64:
		list := make([]any, len(t))
		for i, n := range t {
			list[i] = n
		}
		return list, true
	case []float64:
		list := make([]any, len(t))
		for i, n := range t {
			list[i] = n
		}
		return list, true
	default:
		return nil, false
	}
}

// contains reports membership of v in list under loose equality.
func contains(list []any, v any) bool {
	for _, item := range list {
		if looseEq(v, item) {
			return true
		}
	}
	return false
}
