package uec

import (
	"strings"

	jt "github.com/uecformat/uec/internal/jsontree"
)

// maxInlineBase64 is the advisory ceiling on an inline_base64 asset's encoded
// payload, in characters.
const maxInlineBase64 = 200_000

// Lint runs advisory quality heuristics over a document. Warnings never gate
// correctness; a card can lint dirty and still validate clean. Each heuristic
// fires independently:
//
//   - whitespace-only payload description
//   - createdAt later than updatedAt, payload and meta checked separately
//   - a v2 scene selectedVariant naming no existing variant id
//   - inline_base64 assets whose encoded payload is oversized
func Lint(v any) LintResult {
	root, ok := jt.Object(v)
	if !ok {
		return LintResult{OK: false, Warnings: []string{"root: not a valid UEC object shape"}}
	}
	payload, ok := jt.Object(root["payload"])
	if !ok {
		return LintResult{OK: false, Warnings: []string{"root: not a valid UEC object shape"}}
	}

	warnings := []string{}

	if description, ok := jt.String(payload["description"]); ok && strings.TrimSpace(description) == "" {
		warnings = append(warnings, "payload.description is an empty string")
	}

	if timestampsInverted(payload) {
		warnings = append(warnings, "payload.createdAt is greater than payload.updatedAt")
	}
	if meta, ok := jt.Object(root["meta"]); ok && timestampsInverted(meta) {
		warnings = append(warnings, "meta.createdAt is greater than meta.updatedAt")
	}

	if version, _ := schemaVersionOf(root); version == VersionV2 {
		if warning, ok := danglingSelectedVariant(payload); ok {
			warnings = append(warnings, warning)
		}
	}

	for _, asset := range ExtractAssets(root) {
		if asset.Kind != AssetLocator {
			continue
		}
		locator, ok := jt.Object(asset.Value)
		if !ok {
			continue
		}
		if t, _ := jt.String(locator["type"]); t != "inline_base64" {
			continue
		}
		if data, ok := jt.String(locator["data"]); ok && len(data) > maxInlineBase64 {
			warnings = append(warnings, asset.Path+": inline_base64 asset is very large")
		}
	}

	return LintResult{OK: len(warnings) == 0, Warnings: warnings}
}

func timestampsInverted(obj map[string]any) bool {
	created, ok := jt.Number(obj["createdAt"])
	if !ok {
		return false
	}
	updated, ok := jt.Number(obj["updatedAt"])
	if !ok {
		return false
	}
	return created > updated
}

// danglingSelectedVariant flags a string selectedVariant that matches none of
// the scene's variant ids. The sentinel 0 and absent variants are fine.
func danglingSelectedVariant(payload map[string]any) (string, bool) {
	scene, ok := jt.Object(payload["scene"])
	if !ok {
		return "", false
	}
	selected, ok := jt.String(scene["selectedVariant"])
	if !ok {
		return "", false
	}
	variants, ok := jt.Array(scene["variants"])
	if !ok {
		return "", false
	}

	for _, candidate := range variants {
		if variant, ok := jt.Object(candidate); ok {
			if id, ok := jt.String(variant["id"]); ok && id == selected {
				return "", false
			}
		}
	}
	return "payload.scene.selectedVariant does not match any variant id", true
}
