package jsontree

import "strconv"

// Join appends an object member to a dot-notation path. The empty path is the
// document root, so the first member stands alone ("payload", not ".payload").
func Join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// Index appends an array element to a path using bracket notation, e.g.
// "payload.scenes[0]".
func Index(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
