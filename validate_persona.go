package uec

import (
	jt "github.com/uecformat/uec/internal/jsontree"
)

func validatePersonaPayloadV1(payload map[string]any, iss *Issues, strict bool) {
	if !jt.IsString(payload["id"]) {
		push(iss, "payload.id", CodeInvalidType, "must be a string")
	}
	if !jt.IsString(payload["title"]) {
		push(iss, "payload.title", CodeInvalidType, "must be a string")
	}
	if !jt.OptionalString(payload["description"]) {
		push(iss, "payload.description", CodeInvalidType, "must be a string")
	}
	if !jt.OptionalString(payload["avatar"]) {
		push(iss, "payload.avatar", CodeInvalidType, "must be a string or null")
	}

	validatePersonaCommon(payload, iss, strict)
}

func validatePersonaPayloadV2(payload map[string]any, iss *Issues, strict bool) {
	if !jt.IsString(payload["id"]) {
		push(iss, "payload.id", CodeInvalidType, "must be a string")
	}
	if !jt.IsString(payload["title"]) {
		push(iss, "payload.title", CodeInvalidType, "must be a string")
	}
	if !jt.OptionalString(payload["description"]) {
		push(iss, "payload.description", CodeInvalidType, "must be a string")
	}

	// v2 upgrades avatar from a bare string to a full asset locator.
	validateAssetLocator(payload["avatar"], "payload.avatar", iss)

	validatePersonaCommon(payload, iss, strict)
}

// validatePersonaCommon covers the trailing fields whose rules are identical
// across generations.
func validatePersonaCommon(payload map[string]any, iss *Issues, strict bool) {
	if !jt.OptionalBool(payload["isDefault"]) {
		push(iss, "payload.isDefault", CodeInvalidType, "must be a boolean")
	}
	if !jt.OptionalNumber(payload["createdAt"]) {
		push(iss, "payload.createdAt", CodeInvalidType, "must be a number")
	}
	if !jt.OptionalNumber(payload["updatedAt"]) {
		push(iss, "payload.updatedAt", CodeInvalidType, "must be a number")
	}

	if strict {
		if !jt.IsString(payload["description"]) {
			push(iss, "payload.description", CodeRequired, "is required in strict mode")
		}
		if !jt.IsNumber(payload["createdAt"]) {
			push(iss, "payload.createdAt", CodeRequired, "is required in strict mode")
		}
		if !jt.IsNumber(payload["updatedAt"]) {
			push(iss, "payload.updatedAt", CodeRequired, "is required in strict mode")
		}
	}
}
