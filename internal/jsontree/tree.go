// Package jsontree provides predicates and transforms over the generic
// JSON-like value tree (nil/bool/number/string/[]any/map[string]any) that the
// uec package operates on. Values may originate from different decoders, so
// numeric helpers tolerate float64, the integer kinds, and json.Number.
package jsontree

import (
	"encoding/json"
	"math"
	"sort"
)

// Object reports v as a JSON object.
func Object(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// Array reports v as a JSON array.
func Array(v any) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}

// String reports v as a JSON string.
func String(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// Bool reports v as a JSON boolean.
func Bool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// Number reports v as a finite JSON number and yields its float64 value.
// bool is explicitly excluded even though Go would not confuse the two; the
// YAML decoder produces ints and go-json may produce json.Number, so all
// numeric kinds funnel through here.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case float32:
		return Number(float64(n))
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return Number(f)
	default:
		return 0, false
	}
}

// IsObject reports whether v is a JSON object.
func IsObject(v any) bool { _, ok := Object(v); return ok }

// IsArray reports whether v is a JSON array.
func IsArray(v any) bool { _, ok := Array(v); return ok }

// IsString reports whether v is a JSON string.
func IsString(v any) bool { _, ok := String(v); return ok }

// IsBool reports whether v is a JSON boolean.
func IsBool(v any) bool { _, ok := Bool(v); return ok }

// IsNumber reports whether v is a finite JSON number.
func IsNumber(v any) bool { _, ok := Number(v); return ok }

// IsZeroNumber reports whether v is the number 0. Used for the v2 scene
// selectedVariant sentinel.
func IsZeroNumber(v any) bool {
	f, ok := Number(v)
	return ok && f == 0
}

// OptionalString accepts absent (nil) or string.
func OptionalString(v any) bool { return v == nil || IsString(v) }

// OptionalNumber accepts absent (nil) or a finite number.
func OptionalNumber(v any) bool { return v == nil || IsNumber(v) }

// OptionalBool accepts absent (nil) or bool.
func OptionalBool(v any) bool { return v == nil || IsBool(v) }

// OptionalObject accepts absent (nil) or an object.
func OptionalObject(v any) bool { return v == nil || IsObject(v) }

// IsStringList reports whether v is an array whose elements are all strings.
func IsStringList(v any) bool {
	a, ok := Array(v)
	if !ok {
		return false
	}
	for _, item := range a {
		if !IsString(item) {
			return false
		}
	}
	return true
}

// OptionalStringList accepts absent (nil) or an array of strings.
func OptionalStringList(v any) bool { return v == nil || IsStringList(v) }

// Clone deep-copies a value tree. Scalars are returned as-is; arrays and
// objects are rebuilt so the result shares no mutable structure with v.
func Clone(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Clone(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = Clone(item)
		}
		return out
	default:
		return v
	}
}

// Equal compares two value trees. Numbers compare by value regardless of the
// concrete numeric kind, so trees from different decoders compare cleanly.
// Everything else is type-strict.
func Equal(a, b any) bool {
	if af, ok := Number(a); ok {
		bf, ok := Number(b)
		return ok && af == bf
	}
	switch at := a.(type) {
	case nil:
		return b == nil
	case string:
		bs, ok := b.(string)
		return ok && at == bs
	case bool:
		bb, ok := b.(bool)
		return ok && at == bb
	case []any:
		bt, ok := b.([]any)
		if !ok || len(at) != len(bt) {
			return false
		}
		for i := range at {
			if !Equal(at[i], bt[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bt, ok := b.(map[string]any)
		if !ok || len(at) != len(bt) {
			return false
		}
		for k, av := range at {
			bv, present := bt[k]
			if !present || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// UnionKeys returns the sorted union of both objects' keys.
func UnionKeys(a, b map[string]any) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		if _, dup := seen[k]; !dup {
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	for k := range b {
		if _, dup := seen[k]; !dup {
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
