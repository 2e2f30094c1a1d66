package vars

import "maps"

// Vars wraps a map[string]any variable context for type-safe value
// extraction. All accessor methods return default values if the key is
// missing or the value cannot be converted to the requested type.
type Vars struct {
	data map[string]any
}

// New creates a Vars from the given map.
// If data is nil, an empty Vars is returned.
func New(data map[string]any) Vars {
	if data == nil {
		data = make(map[string]any)
	}
	return Vars{data: data}
}

// String returns the string value for key, or defaultVal if missing or not a string.
func (v Vars) String(key, defaultVal string) string {
	val, ok := v.data[key]
	if !ok {
		return defaultVal
	}
	if s, ok := val.(string); ok {
		return s
	}
	return defaultVal
}

// Bool returns the boolean value for key, or defaultVal if missing or not a bool.
func (v Vars) Bool(key string, defaultVal bool) bool {
	val, ok := v.data[key]
	if !ok {
		return defaultVal
	}
	if b, ok := val.(bool); ok {
		return b
	}
	return defaultVal
}

// Int returns the integer value for key, or defaultVal if missing or not convertible.
//
// Accepts:
//   - int: used directly
//   - int64: converted to int
//   - float64: converted to int (only if no fractional part)
func (v Vars) Int(key string, defaultVal int) int {
	val, ok := v.data[key]
	if !ok {
		return defaultVal
	}
	switch n := val.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		if n == float64(int(n)) {
			return int(n)
		}
	}
	return defaultVal
}

// Float returns the float64 value for key, or defaultVal if missing or not convertible.
//
// Accepts:
//   - float64: used directly
//   - int: converted to float64
//   - int64: converted to float64
func (v Vars) Float(key string, defaultVal float64) float64 {
	val, ok := v.data[key]
	if !ok {
		return defaultVal
	}
	switch n := val.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return defaultVal
}

// StringSlice returns the string slice for key, or defaultVal if missing or not convertible.
//
// Accepts:
//   - []string: used directly
//   - []any: each element converted to string if possible
func (v Vars) StringSlice(key string, defaultVal []string) []string {
	val, ok := v.data[key]
	if !ok {
		return defaultVal
	}
	switch s := val.(type) {
	case []string:
		return s
	case []any:
		result := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return defaultVal
			}
			result = append(result, str)
		}
		return result
	}
	return defaultVal
}

// Any returns the raw value for key, or defaultVal if missing.
func (v Vars) Any(key string, defaultVal any) any {
	val, ok := v.data[key]
	if !ok {
		return defaultVal
	}
	return val
}

// Has returns true if the key exists.
func (v Vars) Has(key string) bool {
	_, ok := v.data[key]
	return ok
}

// Raw returns the underlying map, suitable for passing to a render call.
// The returned map should not be modified.
func (v Vars) Raw() map[string]any {
	return v.data
}

// Merge returns a new map combining base with the overlays, later maps
// winning on key collisions. The inputs are never modified; nil maps are
// skipped. Used to layer manifest defaults under caller-supplied values.
func Merge(base map[string]any, overlays ...map[string]any) map[string]any {
	merged := make(map[string]any, len(base))
	maps.Copy(merged, base)
	for _, overlay := range overlays {
		maps.Copy(merged, overlay)
	}
	return merged
}

// Clone returns a deep copy of a variable context: nested map[string]any
// and []any values are copied recursively, everything else is shared.
func Clone(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	out := make(map[string]any, len(data))
	for k, val := range data {
		out[k] = cloneValue(val)
	}
	return out
}

func cloneValue(val any) any {
	switch tv := val.(type) {
	case map[string]any:
		return Clone(tv)
	case []any:
		out := make([]any, len(tv))
		for i, elem := range tv {
			out[i] = cloneValue(elem)
		}
		return out
	default:
		return val
	}
}
