package uec

import (
	"fmt"

	jt "github.com/uecformat/uec/internal/jsontree"
)

// downgradedFields are the v2-only payload fields with no v1 representation.
// Each one present during a downgrade is dropped with a warning.
var downgradedFields = []string{
	"fallbackModelId",
	"nickname",
	"creator",
	"creatorNotes",
	"creatorNotesMultilingual",
	"source",
	"characterBook",
}

// Downgrade converts a v2 document back to v1 shape. The structural inverse
// of ConvertV1ToV2 is applied where one exists; v2-only fields are dropped,
// one warning per dropped field, so the lossy path stays auditable. A v1
// input is normalized and returned untouched. An empty rules array is
// synthesized when the payload carries none, unless keepRules is set.
func Downgrade(v any, targetVersion string, keepRules bool) (DowngradeResult, error) {
	var zero DowngradeResult

	if targetVersion != VersionV1 {
		return zero, fmt.Errorf("%w: unsupported target version: %s", ErrUnsupportedVersion, targetVersion)
	}

	version, ok := schemaVersionOf(v)
	if !ok {
		return zero, fmt.Errorf("%w: card must be an object with a schema", ErrInvalidCard)
	}

	if version == VersionV1 {
		card, _ := jt.Object(Normalize(v))
		return DowngradeResult{Card: card, Warnings: []string{}}, nil
	}
	if version != VersionV2 {
		return zero, fmt.Errorf("%w: unsupported source version: %s", ErrUnsupportedVersion, version)
	}

	warnings := []string{}
	card, _ := jt.Object(jt.Clone(v))

	if schema, ok := jt.Object(card["schema"]); ok {
		schema["version"] = VersionV1
	}

	if payload, ok := jt.Object(card["payload"]); ok {
		downgradeScene(payload)

		templateID := payload["promptTemplateId"]
		delete(payload, "promptTemplateId")
		if templateID != nil {
			if payload["systemPrompt"] == nil {
				if id, ok := jt.String(templateID); ok {
					payload["systemPrompt"] = "_ID:" + id
				}
			}
			warnings = append(warnings, "payload.promptTemplateId was mapped to v1 systemPrompt and then removed")
		}

		for _, field := range downgradedFields {
			if _, present := payload[field]; present {
				delete(payload, field)
				warnings = append(warnings, fmt.Sprintf("payload.%s is not supported in v1 and was removed", field))
			}
		}

		if _, present := payload["rules"]; !keepRules && !present {
			payload["rules"] = []any{}
		}
	}

	if meta, ok := jt.Object(card["meta"]); ok {
		for _, field := range []string{"originalCreatedAt", "originalUpdatedAt", "originalSource"} {
			if _, present := meta[field]; present {
				delete(meta, field)
				warnings = append(warnings, fmt.Sprintf("meta.%s was removed for v1 compatibility", field))
			}
		}
	}

	return DowngradeResult{Card: card, Warnings: warnings}, nil
}

// downgradeScene unfolds the single v2 scene into a one-element scenes array
// with defaultSceneId pointing at it, mapping the selectedVariant sentinel 0
// back to a null selectedVariantId.
func downgradeScene(payload map[string]any) {
	raw, present := payload["scene"]
	if !present {
		return
	}
	delete(payload, "scene")

	scene, ok := jt.Object(raw)
	if !ok {
		return
	}

	if selected, present := scene["selectedVariant"]; present {
		delete(scene, "selectedVariant")
		if jt.IsZeroNumber(selected) {
			scene["selectedVariantId"] = nil
		} else {
			scene["selectedVariantId"] = selected
		}
	}

	payload["scenes"] = []any{scene}
	if id, present := scene["id"]; present && id != nil {
		payload["defaultSceneId"] = id
	}
}

// Upgrade dispatches to the converter matching targetVersion, normalizing in
// place of converting when the document is already there.
func Upgrade(v any, targetVersion string) (map[string]any, error) {
	version, ok := schemaVersionOf(v)
	if !ok {
		return nil, fmt.Errorf("%w: card must be an object with a schema", ErrInvalidCard)
	}

	switch targetVersion {
	case VersionV2:
		switch version {
		case VersionV2:
			card, _ := jt.Object(Normalize(v))
			return card, nil
		case VersionV1:
			return ConvertV1ToV2(v)
		default:
			return nil, fmt.Errorf("%w: unsupported source version: %s", ErrUnsupportedVersion, version)
		}
	case VersionV1:
		result, err := Downgrade(v, VersionV1, false)
		if err != nil {
			return nil, err
		}
		return result.Card, nil
	default:
		return nil, fmt.Errorf("%w: unsupported target version: %s", ErrUnsupportedVersion, targetVersion)
	}
}

func schemaVersionOf(v any) (string, bool) {
	root, ok := jt.Object(v)
	if !ok {
		return "", false
	}
	schema, ok := jt.Object(root["schema"])
	if !ok {
		return "", false
	}
	return jt.String(schema["version"])
}
