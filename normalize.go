package uec

import (
	jt "github.com/uecformat/uec/internal/jsontree"
)

// Normalize returns a deep copy of v with the three free-form containers
// (app_specific_settings, meta, extensions) defaulted to empty objects when
// absent or not objects. Key ordering is handled at encode time (Serialize
// emits sorted keys), so normalization is purely structural here.
func Normalize(v any) any {
	normalized := jt.Clone(v)

	root, ok := jt.Object(normalized)
	if !ok {
		return normalized
	}

	for _, key := range []string{"app_specific_settings", "meta", "extensions"} {
		if !jt.IsObject(root[key]) {
			root[key] = map[string]any{}
		}
	}

	return normalized
}
