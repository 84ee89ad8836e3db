package uec

import (
	jt "github.com/uecformat/uec/internal/jsontree"
)

// validateAssetLocator accepts null, a bare string, or a structured locator
// object. Locator objects carry a type tag with a type-specific required
// field; everything else about the object is left alone.
func validateAssetLocator(v any, path string, iss *Issues) {
	if v == nil || jt.IsString(v) {
		return
	}

	locator, ok := jt.Object(v)
	if !ok {
		push(iss, path, CodeInvalidType, "must be a string, object, or null")
		return
	}

	if !jt.IsAssetLocator(locator) {
		push(iss, path+".type", CodeInvalidEnum, "must be one of: inline_base64, remote_url, asset_ref")
		return
	}

	if !jt.OptionalString(locator["mimeType"]) {
		push(iss, path+".mimeType", CodeInvalidType, "must be a string if provided")
	}

	locatorType, _ := jt.String(locator["type"])
	switch locatorType {
	case "inline_base64":
		if !jt.IsString(locator["data"]) {
			push(iss, path+".data", CodeRequired, "is required for inline_base64")
		}
	case "remote_url":
		if !jt.IsString(locator["url"]) {
			push(iss, path+".url", CodeRequired, "is required for remote_url")
		}
	case "asset_ref":
		if !jt.IsString(locator["assetId"]) {
			push(iss, path+".assetId", CodeRequired, "is required for asset_ref")
		}
	}
}

func validateCharacterBook(v any, iss *Issues) {
	if v == nil {
		return
	}

	book, ok := jt.Object(v)
	if !ok {
		push(iss, "payload.characterBook", CodeInvalidType, "must be an object")
		return
	}

	if !jt.OptionalString(book["name"]) {
		push(iss, "payload.characterBook.name", CodeInvalidType, "must be a string or null")
	}
	if !jt.OptionalString(book["description"]) {
		push(iss, "payload.characterBook.description", CodeInvalidType, "must be a string or null")
	}

	if book["entries"] == nil {
		return
	}
	entries, ok := jt.Array(book["entries"])
	if !ok {
		push(iss, "payload.characterBook.entries", CodeInvalidType, "must be an array")
		return
	}

	for i, v := range entries {
		path := jt.Index("payload.characterBook.entries", i)
		entry, ok := jt.Object(v)
		if !ok {
			push(iss, path, CodeInvalidType, "must be an object")
			continue
		}

		if !jt.OptionalString(entry["name"]) {
			push(iss, path+".name", CodeInvalidType, "must be a string or null")
		}
		if !jt.OptionalStringList(entry["keys"]) {
			push(iss, path+".keys", CodeInvalidType, "must be an array of strings")
		}
		if !jt.OptionalStringList(entry["secondary_keys"]) {
			push(iss, path+".secondary_keys", CodeInvalidType, "must be an array of strings")
		}
		if !jt.IsString(entry["content"]) {
			push(iss, path+".content", CodeInvalidType, "must be a string")
		}
		if !jt.OptionalBool(entry["enabled"]) {
			push(iss, path+".enabled", CodeInvalidType, "must be a boolean")
		}
		if !jt.OptionalNumber(entry["insertion_order"]) {
			push(iss, path+".insertion_order", CodeInvalidType, "must be a number")
		}
		if !jt.OptionalBool(entry["case_sensitive"]) {
			push(iss, path+".case_sensitive", CodeInvalidType, "must be a boolean")
		}
		if !jt.OptionalNumber(entry["priority"]) {
			push(iss, path+".priority", CodeInvalidType, "must be a number")
		}
		if !jt.OptionalBool(entry["constant"]) {
			push(iss, path+".constant", CodeInvalidType, "must be a boolean")
		}
	}
}

// validateSceneBase checks the fields common to both generations. It returns
// false when the scene is not an object at all, so version-specific checks
// know to stop.
func validateSceneBase(v any, path string, iss *Issues, strict bool) (map[string]any, bool) {
	scene, ok := jt.Object(v)
	if !ok {
		push(iss, path, CodeInvalidType, "must be an object")
		return nil, false
	}

	if !jt.IsString(scene["id"]) {
		push(iss, path+".id", CodeInvalidType, "must be a string")
	}
	if !jt.IsString(scene["content"]) {
		push(iss, path+".content", CodeInvalidType, "must be a string")
	}
	if !jt.OptionalString(scene["direction"]) {
		push(iss, path+".direction", CodeInvalidType, "must be a string")
	}
	if !jt.OptionalNumber(scene["createdAt"]) {
		push(iss, path+".createdAt", CodeInvalidType, "must be a number")
	}

	if scene["variants"] != nil {
		variants, ok := jt.Array(scene["variants"])
		if !ok {
			push(iss, path+".variants", CodeInvalidType, "must be an array")
		} else {
			for i, v := range variants {
				variantPath := jt.Index(path+".variants", i)
				variant, ok := jt.Object(v)
				if !ok {
					push(iss, variantPath, CodeInvalidType, "must be an object")
					continue
				}
				// Variant fields are required regardless of strictness.
				if !jt.IsString(variant["id"]) {
					push(iss, variantPath+".id", CodeInvalidType, "must be a string")
				}
				if !jt.IsString(variant["content"]) {
					push(iss, variantPath+".content", CodeInvalidType, "must be a string")
				}
				if !jt.IsNumber(variant["createdAt"]) {
					push(iss, variantPath+".createdAt", CodeInvalidType, "must be a number")
				}
			}
		}
	}

	if strict {
		if !jt.IsString(scene["id"]) {
			push(iss, path+".id", CodeRequired, "is required")
		}
		if !jt.IsString(scene["content"]) {
			push(iss, path+".content", CodeRequired, "is required")
		}
	}

	return scene, true
}

func validateSceneV1(v any, path string, iss *Issues, strict bool) {
	scene, ok := validateSceneBase(v, path, iss, strict)
	if !ok {
		return
	}
	if scene["selectedVariantId"] != nil && !jt.IsString(scene["selectedVariantId"]) {
		push(iss, path+".selectedVariantId", CodeInvalidType, "must be a string or null")
	}
}

func validateSceneV2(v any, path string, iss *Issues, strict bool) {
	scene, ok := validateSceneBase(v, path, iss, strict)
	if !ok {
		return
	}
	// selectedVariant is either the sentinel 0 ("use base content") or a
	// variant id string.
	selected := scene["selectedVariant"]
	if selected != nil && !jt.IsZeroNumber(selected) && !jt.IsString(selected) {
		push(iss, path+".selectedVariant", CodeInvalidType, "must be 0 or a variant ID string")
	}
}

func validateVoiceConfigV1(v any, iss *Issues) {
	if v == nil {
		return
	}
	voice, ok := jt.Object(v)
	if !ok {
		push(iss, "payload.voiceConfig", CodeInvalidType, "must be an object")
		return
	}

	if !jt.IsString(voice["source"]) {
		push(iss, "payload.voiceConfig.source", CodeInvalidType, "must be a string")
	}
	if !jt.IsString(voice["providerId"]) {
		push(iss, "payload.voiceConfig.providerId", CodeInvalidType, "must be a string")
	}
	if !jt.IsString(voice["voiceId"]) {
		push(iss, "payload.voiceConfig.voiceId", CodeInvalidType, "must be a string")
	}
}

func validateVoiceConfigV2(v any, iss *Issues) {
	if v == nil {
		return
	}
	voice, ok := jt.Object(v)
	if !ok {
		push(iss, "payload.voiceConfig", CodeInvalidType, "must be an object")
		return
	}

	if !jt.IsString(voice["source"]) {
		push(iss, "payload.voiceConfig.source", CodeInvalidType, "must be a string")
	}
	for _, field := range []string{"providerId", "voiceId", "userVoiceId", "modelId", "voiceName"} {
		if !jt.OptionalString(voice[field]) {
			push(iss, "payload.voiceConfig."+field, CodeInvalidType, "must be a string if provided")
		}
	}
}

func validateCharacterPayloadV1(payload map[string]any, iss *Issues, strict bool) {
	if !jt.IsString(payload["id"]) {
		push(iss, "payload.id", CodeInvalidType, "must be a string")
	}
	if !jt.IsString(payload["name"]) {
		push(iss, "payload.name", CodeInvalidType, "must be a string")
	}
	if !jt.OptionalString(payload["description"]) {
		push(iss, "payload.description", CodeInvalidType, "must be a string")
	}
	if !jt.OptionalString(payload["definitions"]) {
		push(iss, "payload.definitions", CodeInvalidType, "must be a string")
	}
	if !jt.OptionalStringList(payload["tags"]) {
		push(iss, "payload.tags", CodeInvalidType, "must be an array of strings")
	}
	if !jt.OptionalString(payload["avatar"]) {
		push(iss, "payload.avatar", CodeInvalidType, "must be a string or null")
	}
	if !jt.OptionalString(payload["chatBackground"]) {
		push(iss, "payload.chatBackground", CodeInvalidType, "must be a string or null")
	}
	if !jt.OptionalStringList(payload["rules"]) {
		push(iss, "payload.rules", CodeInvalidType, "must be an array of strings")
	}

	if payload["scenes"] != nil {
		scenes, ok := jt.Array(payload["scenes"])
		if !ok {
			push(iss, "payload.scenes", CodeInvalidType, "must be an array")
		} else {
			for i, scene := range scenes {
				validateSceneV1(scene, jt.Index("payload.scenes", i), iss, strict)
			}
		}
	}

	if !jt.OptionalString(payload["defaultSceneId"]) {
		push(iss, "payload.defaultSceneId", CodeInvalidType, "must be a string or null")
	}
	if !jt.OptionalString(payload["defaultModelId"]) {
		push(iss, "payload.defaultModelId", CodeInvalidType, "must be a string or null")
	}
	if !jt.OptionalString(payload["systemPrompt"]) {
		push(iss, "payload.systemPrompt", CodeInvalidType, "must be a string or null")
	}

	validateVoiceConfigV1(payload["voiceConfig"], iss)

	if !jt.OptionalBool(payload["voiceAutoplay"]) {
		push(iss, "payload.voiceAutoplay", CodeInvalidType, "must be a boolean")
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
		if !jt.IsArray(payload["rules"]) {
			push(iss, "payload.rules", CodeRequired, "is required in strict mode")
		}
		if !jt.IsArray(payload["scenes"]) {
			push(iss, "payload.scenes", CodeRequired, "is required in strict mode")
		}
		if !jt.IsNumber(payload["createdAt"]) {
			push(iss, "payload.createdAt", CodeRequired, "is required in strict mode")
		}
		if !jt.IsNumber(payload["updatedAt"]) {
			push(iss, "payload.updatedAt", CodeRequired, "is required in strict mode")
		}
	}
}

func validateCharacterPayloadV2(payload map[string]any, iss *Issues, strict bool) {
	if !jt.IsString(payload["id"]) {
		push(iss, "payload.id", CodeInvalidType, "must be a string")
	}
	if !jt.IsString(payload["name"]) {
		push(iss, "payload.name", CodeInvalidType, "must be a string")
	}
	if !jt.OptionalString(payload["description"]) {
		push(iss, "payload.description", CodeInvalidType, "must be a string")
	}
	if !jt.OptionalString(payload["definitions"]) {
		push(iss, "payload.definitions", CodeInvalidType, "must be a string")
	}
	if !jt.OptionalStringList(payload["tags"]) {
		push(iss, "payload.tags", CodeInvalidType, "must be an array of strings")
	}

	validateAssetLocator(payload["avatar"], "payload.avatar", iss)
	validateAssetLocator(payload["chatBackground"], "payload.chatBackground", iss)

	// rules is superseded by systemPrompt/characterBook in v2. Rejecting it
	// only under strict mode is deliberate policy.
	if strict && payload["rules"] != nil {
		push(iss, "payload.rules", CodeUnsupportedField,
			"is not a valid field in v2; use systemPrompt or characterBook instead")
	}

	if payload["scene"] != nil {
		validateSceneV2(payload["scene"], "payload.scene", iss, strict)
	}

	if !jt.OptionalString(payload["defaultModelId"]) {
		push(iss, "payload.defaultModelId", CodeInvalidType, "must be a string or null")
	}
	if !jt.OptionalString(payload["fallbackModelId"]) {
		push(iss, "payload.fallbackModelId", CodeInvalidType, "must be a string or null")
	}
	if !jt.OptionalString(payload["systemPrompt"]) {
		push(iss, "payload.systemPrompt", CodeInvalidType, "must be a string or null")
	}
	if !jt.OptionalString(payload["promptTemplateId"]) {
		push(iss, "payload.promptTemplateId", CodeInvalidType, "must be a string or null")
	}
	if !jt.OptionalString(payload["nickname"]) {
		push(iss, "payload.nickname", CodeInvalidType, "must be a string or null")
	}
	if !jt.OptionalString(payload["creator"]) {
		push(iss, "payload.creator", CodeInvalidType, "must be a string or null")
	}
	if !jt.OptionalString(payload["creatorNotes"]) {
		push(iss, "payload.creatorNotes", CodeInvalidType, "must be a string or null")
	}
	if !jt.OptionalObject(payload["creatorNotesMultilingual"]) {
		push(iss, "payload.creatorNotesMultilingual", CodeInvalidType, "must be an object if provided")
	}
	if !jt.OptionalStringList(payload["source"]) {
		push(iss, "payload.source", CodeInvalidType, "must be an array of strings")
	}

	validateVoiceConfigV2(payload["voiceConfig"], iss)

	if !jt.OptionalBool(payload["voiceAutoplay"]) {
		push(iss, "payload.voiceAutoplay", CodeInvalidType, "must be a boolean")
	}

	validateCharacterBook(payload["characterBook"], iss)

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
		if !jt.IsObject(payload["scene"]) {
			push(iss, "payload.scene", CodeRequired, "is required in strict mode")
		}
		if !jt.IsNumber(payload["createdAt"]) {
			push(iss, "payload.createdAt", CodeRequired, "is required in strict mode")
		}
		if !jt.IsNumber(payload["updatedAt"]) {
			push(iss, "payload.updatedAt", CodeRequired, "is required in strict mode")
		}
	}
}
