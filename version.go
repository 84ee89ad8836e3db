package uec

// SchemaName is the literal every document's schema.name must carry.
const SchemaName = "UEC"

// Schema generations. Validation rule sets, and several payload field names,
// are selected by this version string.
const (
	VersionV1 = "1.0"
	VersionV2 = "2.0"
)

// Kind is the closed document-kind tag selecting which payload shape applies.
type Kind string

const (
	KindCharacter Kind = "character"
	KindPersona   Kind = "persona"
)

// KnownVersions lists the schema generations this package understands. An
// unrecognized version short-circuits payload checks during validation.
var KnownVersions = []string{VersionV1, VersionV2}

// IsKnownVersion reports whether v names a supported schema generation.
func IsKnownVersion(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	for _, known := range KnownVersions {
		if s == known {
			return true
		}
	}
	return false
}
