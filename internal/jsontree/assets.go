package jsontree

import "strings"

// LocatorTypes enumerates the structured asset locator tags.
var LocatorTypes = map[string]struct{}{
	"inline_base64": {},
	"remote_url":    {},
	"asset_ref":     {},
}

// IsAssetString reports whether v is a bare URL-like asset reference.
func IsAssetString(v any) bool {
	s, ok := String(v)
	if !ok {
		return false
	}
	return strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "data:")
}

// IsAssetLocator reports whether v is an object tagged with one of the
// structured locator types. Field-name independent: any object carrying such
// a type tag is treated as a locator wherever it sits in the tree.
func IsAssetLocator(v any) bool {
	m, ok := Object(v)
	if !ok {
		return false
	}
	t, ok := String(m["type"])
	if !ok {
		return false
	}
	_, known := LocatorTypes[t]
	return known
}
