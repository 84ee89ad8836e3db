package uec

// ValidationResult is the outcome of Validate. OK is true exactly when Errors
// is empty; validation never fails with a Go error.
type ValidationResult struct {
	OK     bool
	Errors Issues
}

// ParseResult is the outcome of Parse/ParseYAML: decode followed by
// validation. Value is nil unless both steps succeed.
type ParseResult struct {
	OK     bool
	Value  any
	Errors Issues
}

// DowngradeResult carries a downgraded card together with one human-readable
// warning per field that had no v1 representation. Data loss on downgrade is
// expected and must be visible, never silent.
type DowngradeResult struct {
	Card     map[string]any
	Warnings []string
}

// ChangeType tags a DiffEntry.
type ChangeType string

const (
	ChangeAdded   ChangeType = "added"
	ChangeRemoved ChangeType = "removed"
	ChangeChanged ChangeType = "changed"
)

// DiffEntry records one structural difference between two documents. Before
// is set for removed/changed entries, After for added/changed ones.
type DiffEntry struct {
	Path   string
	Type   ChangeType
	Before any
	After  any
}

// ArrayMode selects how Merge combines two arrays.
type ArrayMode string

const (
	// ArrayReplace treats arrays as atomic: incoming replaces base, flagged
	// as a conflict when the two are unequal. This is the default.
	ArrayReplace ArrayMode = "replace"
	// ArrayConcat appends incoming elements after base elements.
	ArrayConcat ArrayMode = "concat"
)

// ConflictMode selects which side wins a merge conflict.
type ConflictMode string

const (
	// ConflictIncoming lets the incoming value win. This is the default.
	ConflictIncoming ConflictMode = "incoming"
	// ConflictBase keeps the base value.
	ConflictBase ConflictMode = "base"
)

// MergeOptions tunes Merge. The zero value means replace arrays and let
// incoming win conflicts.
type MergeOptions struct {
	Array    ArrayMode
	Conflict ConflictMode
}

// MergeResult carries the merged tree and the deduplicated, path-sorted set
// of conflict paths. Root-level conflicts are never reported as paths.
type MergeResult struct {
	Value     any
	Conflicts []string
}

// AssetKind distinguishes the two recognized asset shapes.
type AssetKind string

const (
	// AssetString is a bare http://, https://, or data: string.
	AssetString AssetKind = "string"
	// AssetLocator is an object tagged inline_base64, remote_url, or
	// asset_ref.
	AssetLocator AssetKind = "locator"
)

// AssetRef is one asset reference found by ExtractAssets, or handed to a
// RewriteAssets mapper.
type AssetRef struct {
	Path  string
	Kind  AssetKind
	Value any
}

// LintResult carries advisory warnings. OK is true when Warnings is empty.
type LintResult struct {
	OK       bool
	Warnings []string
}
