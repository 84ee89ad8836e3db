package uec

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType      = "invalid_type"
	CodeRequired         = "required"
	CodeInvalidEnum      = "invalid_enum"
	CodeUnknownVersion   = "unknown_version"
	CodeUnsupportedField = "unsupported_field"
	CodeVersionMismatch  = "version_mismatch"
	CodeParseError       = "parse_error"
)

// Issue represents a single validation entry. Path uses dot notation for
// object members and bracket indices for array elements, e.g.
// payload.scenes[0].variants[1].id. The document root is "root".
type Issue struct {
	Path    string
	Code    string
	Message string
}

// String renders the canonical "path: message" form.
func (i Issue) String() string { return i.Path + ": " + i.Message }

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].String())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Strings renders every issue as "path: message".
func (iss Issues) Strings() []string {
	out := make([]string, len(iss))
	for i, it := range iss {
		out[i] = it.String()
	}
	return out
}

// Contains reports whether any rendered issue contains the substring sub.
func (iss Issues) Contains(sub string) bool {
	for _, it := range iss {
		if strings.Contains(it.String(), sub) {
			return true
		}
	}
	return false
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// Structural precondition sentinels. Conversion entry points wrap these with
// context via fmt.Errorf("%w: ..."); callers match with errors.Is.
var (
	// ErrInvalidCard indicates the input is not an object or fails v1/v2
	// validation where a valid card is a precondition.
	ErrInvalidCard = errors.New("uec: invalid card")
	// ErrUnsupportedVersion indicates a conversion was asked to read from or
	// write to a schema generation this package does not support.
	ErrUnsupportedVersion = errors.New("uec: unsupported version")
)
