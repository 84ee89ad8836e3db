package uec

import (
	jt "github.com/uecformat/uec/internal/jsontree"
)

// Diff reports the structural differences between two documents. Both sides
// are normalized first, so container defaults and key order never show up as
// changes. Arrays compare index-wise up to the longer length with missing
// trailing elements treated as null; objects compare over the sorted union of
// their keys; any other unequal pair is a single "changed" entry carrying
// both values. A scalar difference at the document root reports path "root".
func Diff(a, b any) []DiffEntry {
	out := []DiffEntry{}
	walkDiff(Normalize(a), Normalize(b), "", &out)
	return out
}

func walkDiff(a, b any, path string, out *[]DiffEntry) {
	if jt.Equal(a, b) {
		return
	}

	if left, ok := jt.Array(a); ok {
		if right, ok := jt.Array(b); ok {
			n := len(left)
			if len(right) > n {
				n = len(right)
			}
			for i := 0; i < n; i++ {
				var av, bv any
				if i < len(left) {
					av = left[i]
				}
				if i < len(right) {
					bv = right[i]
				}
				walkDiff(av, bv, jt.Index(path, i), out)
			}
			return
		}
	}

	if left, ok := jt.Object(a); ok {
		if right, ok := jt.Object(b); ok {
			for _, key := range jt.UnionKeys(left, right) {
				nextPath := jt.Join(path, key)
				av, inLeft := left[key]
				bv, inRight := right[key]
				switch {
				case !inLeft:
					*out = append(*out, DiffEntry{Path: nextPath, Type: ChangeAdded, After: bv})
				case !inRight:
					*out = append(*out, DiffEntry{Path: nextPath, Type: ChangeRemoved, Before: av})
				default:
					walkDiff(av, bv, nextPath, out)
				}
			}
			return
		}
	}

	if path == "" {
		path = "root"
	}
	*out = append(*out, DiffEntry{Path: path, Type: ChangeChanged, Before: a, After: b})
}
