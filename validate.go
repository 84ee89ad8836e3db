package uec

import (
	"fmt"

	jt "github.com/uecformat/uec/internal/jsontree"
)

// Validate checks a candidate document against the rule set selected by its
// schema.version and kind. It never fails with a Go error: the result carries
// a (possibly empty) list of path-qualified issues.
//
// Strict mode layers "required" checks on top of the type-only baseline; both
// may fire for the same field. An unrecognized schema.version yields a single
// unknown-version issue and suppresses all payload-specific checks so a
// future generation never cascades into meaningless payload errors.
func Validate(v any, strict bool) ValidationResult {
	var iss Issues

	root, ok := jt.Object(v)
	if !ok {
		push(&iss, "root", CodeInvalidType, "must be an object")
		return ValidationResult{OK: false, Errors: iss}
	}

	version := validateSchema(root["schema"], &iss)

	kind, _ := jt.String(root["kind"])
	if kind != string(KindCharacter) && kind != string(KindPersona) {
		push(&iss, "kind", CodeInvalidEnum, `must be "character" or "persona"`)
	}

	isV2 := version == VersionV2
	known := IsKnownVersion(version)

	if payload, ok := jt.Object(root["payload"]); !ok {
		push(&iss, "payload", CodeInvalidType, "must be an object")
	} else if known {
		switch Kind(kind) {
		case KindCharacter:
			if isV2 {
				validateCharacterPayloadV2(payload, &iss, strict)
			} else {
				validateCharacterPayloadV1(payload, &iss, strict)
			}
		case KindPersona:
			if isV2 {
				validatePersonaPayloadV2(payload, &iss, strict)
			} else {
				validatePersonaPayloadV1(payload, &iss, strict)
			}
		}
	}

	if !jt.OptionalObject(root["app_specific_settings"]) {
		push(&iss, "app_specific_settings", CodeInvalidType, "must be an object")
	}

	if isV2 && known {
		validateMetaV2(root["meta"], &iss, strict)
	} else {
		validateMeta(root["meta"], &iss)
	}

	if root["extensions"] != nil && !jt.IsObject(root["extensions"]) {
		push(&iss, "extensions", CodeInvalidType, "must be an object")
	}

	return ValidationResult{OK: len(iss) == 0, Errors: iss}
}

// ValidateStrict is Validate with strict mode enabled.
func ValidateStrict(v any) ValidationResult { return Validate(v, true) }

// ValidateAtVersion validates v and additionally requires its schema.version
// to equal version, appending a mismatch issue when it does not.
func ValidateAtVersion(v any, version string, strict bool) ValidationResult {
	result := Validate(v, strict)

	if root, ok := jt.Object(v); ok {
		if schema, ok := jt.Object(root["schema"]); ok {
			if current, ok := jt.String(schema["version"]); ok && current != version {
				result.OK = false
				result.Errors = AppendIssues(result.Errors, Issue{
					Path:    "schema.version",
					Code:    CodeVersionMismatch,
					Message: fmt.Sprintf("expected %q but received %q", version, current),
				})
			}
		}
	}

	return result
}

// Is reports whether v is a valid document.
func Is(v any, strict bool) bool { return Validate(v, strict).OK }

// IsCharacter reports whether v is a valid character document.
func IsCharacter(v any, strict bool) bool { return isKind(v, strict, KindCharacter) }

// IsPersona reports whether v is a valid persona document.
func IsPersona(v any, strict bool) bool { return isKind(v, strict, KindPersona) }

func isKind(v any, strict bool, want Kind) bool {
	if !Is(v, strict) {
		return false
	}
	root, ok := jt.Object(v)
	if !ok {
		return false
	}
	kind, _ := jt.String(root["kind"])
	return Kind(kind) == want
}

func push(iss *Issues, path, code, msg string) {
	*iss = AppendIssues(*iss, Issue{Path: path, Code: code, Message: msg})
}

// validateSchema checks the schema block and returns the version string when
// one is present, "" otherwise. Payload rule selection keys off the result.
func validateSchema(v any, iss *Issues) string {
	schema, ok := jt.Object(v)
	if !ok {
		push(iss, "schema", CodeInvalidType, "must be an object")
		return ""
	}

	if name, ok := jt.String(schema["name"]); !ok {
		push(iss, "schema.name", CodeInvalidType, "must be a string")
	} else if name != SchemaName {
		push(iss, "schema.name", CodeInvalidEnum, fmt.Sprintf("must be %q", SchemaName))
	}

	version, versionIsString := jt.String(schema["version"])
	if !versionIsString {
		push(iss, "schema.version", CodeInvalidType, "must be a string")
	} else if !IsKnownVersion(version) {
		push(iss, "schema.version", CodeUnknownVersion, fmt.Sprintf("unknown version %q", version))
	}

	if schema["compat"] != nil && !jt.IsString(schema["compat"]) {
		push(iss, "schema.compat", CodeInvalidType, "must be a string if provided")
	}

	return version
}

// validateMeta is the base meta rule, shared by v1 and applied before the v2
// provenance layer.
func validateMeta(v any, iss *Issues) {
	if v == nil {
		return
	}
	meta, ok := jt.Object(v)
	if !ok {
		push(iss, "meta", CodeInvalidType, "must be an object")
		return
	}

	if !jt.OptionalNumber(meta["createdAt"]) {
		push(iss, "meta.createdAt", CodeInvalidType, "must be a number")
	}
	if !jt.OptionalNumber(meta["updatedAt"]) {
		push(iss, "meta.updatedAt", CodeInvalidType, "must be a number")
	}
	if !jt.OptionalString(meta["source"]) {
		push(iss, "meta.source", CodeInvalidType, "must be a string")
	}
	if !jt.OptionalStringList(meta["authors"]) {
		push(iss, "meta.authors", CodeInvalidType, "must be an array of strings")
	}
	if !jt.OptionalString(meta["license"]) {
		push(iss, "meta.license", CodeInvalidType, "must be a string")
	}
}

// validateMetaV2 layers the provenance-field checks over the base meta rule.
// Strict v2 requires the original timestamps captured during v1 conversion.
func validateMetaV2(v any, iss *Issues, strict bool) {
	validateMeta(v, iss)

	meta, isObject := jt.Object(v)
	if !isObject {
		if strict {
			push(iss, "meta.originalCreatedAt", CodeRequired, "is required in strict mode")
			push(iss, "meta.originalUpdatedAt", CodeRequired, "is required in strict mode")
		}
		return
	}

	if !jt.OptionalNumber(meta["originalCreatedAt"]) {
		push(iss, "meta.originalCreatedAt", CodeInvalidType, "must be a number")
	}
	if !jt.OptionalNumber(meta["originalUpdatedAt"]) {
		push(iss, "meta.originalUpdatedAt", CodeInvalidType, "must be a number")
	}
	if !jt.OptionalString(meta["originalSource"]) {
		push(iss, "meta.originalSource", CodeInvalidType, "must be a string")
	}

	if strict {
		if !jt.IsNumber(meta["originalCreatedAt"]) {
			push(iss, "meta.originalCreatedAt", CodeRequired, "is required in strict mode")
		}
		if !jt.IsNumber(meta["originalUpdatedAt"]) {
			push(iss, "meta.originalUpdatedAt", CodeRequired, "is required in strict mode")
		}
	}
}
