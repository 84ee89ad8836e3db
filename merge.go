package uec

import (
	"sort"

	jt "github.com/uecformat/uec/internal/jsontree"
)

// Merge folds incoming into base and reports where the two disagreed.
//
// A null incoming value is a no-op (base wins, no conflict), and the mirror
// holds: a null or absent base takes the incoming value without conflict.
// Objects merge over the union of their keys, but a key incoming omits is
// kept from base verbatim; omission can never delete. Arrays either concat or
// replace atomically per opts.Array, replacement of unequal arrays counting
// as a conflict. Every other unequal pair is a conflict resolved per
// opts.Conflict (incoming wins by default).
//
// Conflict paths come back deduplicated and sorted; a conflict at the
// document root is never reported as a path.
func Merge(base, incoming any, opts MergeOptions) MergeResult {
	conflicts := map[string]struct{}{}
	value := mergeValues(jt.Clone(base), jt.Clone(incoming), "", opts, conflicts)

	paths := make([]string, 0, len(conflicts))
	for path := range conflicts {
		if path != "" {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)

	return MergeResult{Value: value, Conflicts: paths}
}

func mergeValues(base, incoming any, path string, opts MergeOptions, conflicts map[string]struct{}) any {
	if incoming == nil {
		return base
	}
	if base == nil {
		return incoming
	}

	if left, ok := jt.Array(base); ok {
		if right, ok := jt.Array(incoming); ok {
			if opts.Array == ArrayConcat {
				merged := make([]any, 0, len(left)+len(right))
				merged = append(merged, left...)
				merged = append(merged, right...)
				return merged
			}
			if !jt.Equal(left, right) {
				conflicts[path] = struct{}{}
			}
			return right
		}
	}

	if left, ok := jt.Object(base); ok {
		if right, ok := jt.Object(incoming); ok {
			out := make(map[string]any, len(left)+len(right))
			for _, key := range jt.UnionKeys(left, right) {
				nextPath := jt.Join(path, key)
				if _, inRight := right[key]; !inRight {
					out[key] = left[key]
					continue
				}
				out[key] = mergeValues(left[key], right[key], nextPath, opts, conflicts)
			}
			return out
		}
	}

	if !jt.Equal(base, incoming) {
		conflicts[path] = struct{}{}
	}
	if opts.Conflict == ConflictBase {
		return base
	}
	return incoming
}
