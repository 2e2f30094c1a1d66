package template

import (
	"fmt"
	"reflect"
)

// IsTruthy reports whether a resolved value satisfies a conditional block.
//
// Falsy values are exactly: nil (including unresolved paths), false, the
// empty string, and numeric zero of any width. Everything else is truthy,
// including empty sequences and empty mappings.
func IsTruthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case int:
		return val != 0
	case int8:
		return val != 0
	case int16:
		return val != 0
	case int32:
		return val != 0
	case int64:
		return val != 0
	case uint:
		return val != 0
	case uint8:
		return val != 0
	case uint16:
		return val != 0
	case uint32:
		return val != 0
	case uint64:
		return val != 0
	case float32:
		return val != 0
	case float64:
		return val != 0
	default:
		return true
	}
}

// formatValue renders a resolved value as output text.
// nil renders as the empty string; everything else uses its default
// string form.
func formatValue(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// fieldsOf returns the string-keyed fields of a mapping value.
// Returns ok=false for anything that is not a mapping.
func fieldsOf(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// walkPath descends into nested mappings one segment at a time.
// A missing key or a non-mapping intermediate value short-circuits to
// not found; it never fails hard.
func walkPath(v any, segs []string) (any, bool) {
	for _, seg := range segs {
		fields, ok := fieldsOf(v)
		if !ok {
			return nil, false
		}
		v, ok = fields[seg]
		if !ok {
			return nil, false
		}
	}
	return v, true
}

// sequenceOf returns the elements of an ordered sequence value.
// Strings and byte slices are not sequences; neither is anything that is
// not a slice or array.
func sequenceOf(v any) ([]any, bool) {
	switch s := v.(type) {
	case nil:
		return nil, false
	case []any:
		return s, true
	case []map[string]any:
		out := make([]any, len(s))
		for i, elem := range s {
			out[i] = elem
		}
		return out, true
	case []string:
		out := make([]any, len(s))
		for i, elem := range s {
			out[i] = elem
		}
		return out, true
	case string, []byte:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	default:
		return nil, false
	}
}
