package uec

import (
	jt "github.com/uecformat/uec/internal/jsontree"
)

// ExtractAssets walks the document in pre-order and collects every asset
// reference: bare http/https/data strings, and objects tagged with a locator
// type. A recognized asset is terminal; the walk does not descend into a
// locator object's fields, so a url inside one is reported once, as part of
// the locator.
func ExtractAssets(v any) []AssetRef {
	refs := []AssetRef{}
	walkAssets(v, "", func(ref AssetRef) { refs = append(refs, ref) })
	return refs
}

func walkAssets(v any, path string, visit func(AssetRef)) {
	if jt.IsAssetString(v) {
		visit(AssetRef{Path: path, Kind: AssetString, Value: v})
		return
	}
	if jt.IsAssetLocator(v) {
		visit(AssetRef{Path: path, Kind: AssetLocator, Value: v})
		return
	}

	if items, ok := jt.Array(v); ok {
		for i, item := range items {
			walkAssets(item, jt.Index(path, i), visit)
		}
		return
	}
	if obj, ok := jt.Object(v); ok {
		for _, key := range jt.SortedKeys(obj) {
			walkAssets(obj[key], jt.Join(path, key), visit)
		}
	}
}

// RewriteAssets reconstructs the tree, substituting each recognized asset
// with the mapper's return value and leaving all non-asset structure alone.
// The mapper's output is taken as-is: rewriting a URL's host or even changing
// an asset's kind is the caller's business, and the identity mapper returns a
// tree deep-equal to the input.
func RewriteAssets(v any, mapper func(AssetRef) any) any {
	return rewriteAssets(v, "", mapper)
}

func rewriteAssets(v any, path string, mapper func(AssetRef) any) any {
	if jt.IsAssetString(v) {
		return mapper(AssetRef{Path: path, Kind: AssetString, Value: v})
	}
	if jt.IsAssetLocator(v) {
		return mapper(AssetRef{Path: path, Kind: AssetLocator, Value: v})
	}

	if items, ok := jt.Array(v); ok {
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = rewriteAssets(item, jt.Index(path, i), mapper)
		}
		return out
	}
	if obj, ok := jt.Object(v); ok {
		out := make(map[string]any, len(obj))
		for key, item := range obj {
			out[key] = rewriteAssets(item, jt.Join(path, key), mapper)
		}
		return out
	}
	return v
}
