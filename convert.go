package uec

import (
	"fmt"

	jt "github.com/uecformat/uec/internal/jsontree"
)

// ConvertV1ToV2 transforms a valid v1 document into v2 shape. Preconditions
// are checked explicitly and each violation yields its own descriptive error:
// the input must be an object, must pass non-strict v1 validation, and must
// carry schema.version "1.0". The input is never mutated; the transform works
// on a deep copy.
func ConvertV1ToV2(v any) (map[string]any, error) {
	if _, ok := jt.Object(v); !ok {
		return nil, fmt.Errorf("%w: card must be an object", ErrInvalidCard)
	}

	if result := Validate(v, false); !result.OK {
		return nil, fmt.Errorf("%w: card must be a valid v1 card: %s", ErrInvalidCard, result.Errors.Error())
	}

	card, _ := jt.Object(jt.Clone(v))

	schema, _ := jt.Object(card["schema"])
	version, _ := jt.String(schema["version"])
	if version != VersionV1 {
		return nil, fmt.Errorf("%w: card must be schema version %q to convert", ErrUnsupportedVersion, VersionV1)
	}
	schema["version"] = VersionV2

	payload, ok := jt.Object(card["payload"])
	if !ok {
		payload = map[string]any{}
		card["payload"] = payload
	}

	// rules has no v2 representation.
	delete(payload, "rules")

	convertScenes(payload)

	// A "_ID:"-prefixed systemPrompt is the v1 encoding of a prompt-template
	// reference; v2 carries it as its own field.
	if prompt, ok := jt.String(payload["systemPrompt"]); ok && len(prompt) >= 4 && prompt[:4] == "_ID:" {
		payload["promptTemplateId"] = prompt[4:]
		payload["systemPrompt"] = nil
	}

	meta, ok := jt.Object(card["meta"])
	if !ok {
		meta = map[string]any{}
	}
	card["meta"] = copyProvenance(meta)

	return card, nil
}

// convertScenes folds the v1 scenes array into the single v2 scene: the
// defaultSceneId match when one exists, else the first element. scenes and
// defaultSceneId are always removed, even when scenes was empty (no scene is
// produced in that case).
func convertScenes(payload map[string]any) {
	scenes, hadScenes := jt.Array(payload["scenes"])
	if _, present := payload["scenes"]; present && hadScenes && len(scenes) > 0 {
		var picked any
		if defaultID, ok := jt.String(payload["defaultSceneId"]); ok {
			for _, candidate := range scenes {
				if scene, ok := jt.Object(candidate); ok {
					if id, ok := jt.String(scene["id"]); ok && id == defaultID {
						picked = candidate
						break
					}
				}
			}
		}
		if picked == nil {
			picked = scenes[0]
		}

		if scene, ok := jt.Object(picked); ok {
			next, _ := jt.Object(jt.Clone(scene))
			if selected, present := next["selectedVariantId"]; present {
				delete(next, "selectedVariantId")
				if selected == nil {
					// Sentinel 0: no variant selected, use base content.
					next["selectedVariant"] = float64(0)
				} else {
					next["selectedVariant"] = selected
				}
			}
			payload["scene"] = next
		}
	}

	delete(payload, "scenes")
	delete(payload, "defaultSceneId")
}

// copyProvenance fills the v2-only provenance fields from the v1 meta, once:
// an existing target is never overwritten, and a source of the wrong type is
// ignored.
func copyProvenance(meta map[string]any) map[string]any {
	if meta["originalCreatedAt"] == nil && jt.IsNumber(meta["createdAt"]) {
		meta["originalCreatedAt"] = meta["createdAt"]
	}
	if meta["originalUpdatedAt"] == nil && jt.IsNumber(meta["updatedAt"]) {
		meta["originalUpdatedAt"] = meta["updatedAt"]
	}
	if meta["originalSource"] == nil && jt.IsString(meta["source"]) {
		meta["originalSource"] = meta["source"]
	}
	return meta
}
