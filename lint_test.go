package uec_test

import (
	"strings"
	"testing"

	uec "github.com/uecformat/uec"
)

func TestLint_CleanCardHasNoWarnings(t *testing.T) {
	result := uec.Lint(minimalV1Character())
	if !result.OK || len(result.Warnings) != 0 {
		t.Fatalf("expected a clean lint, got %v", result.Warnings)
	}
}

func TestLint_ThreeIndependentHeuristics(t *testing.T) {
	card := map[string]any{
		"schema": map[string]any{"name": "UEC", "version": "2.0"},
		"kind":   "character",
		"payload": map[string]any{
			"id":          "c1",
			"name":        "A",
			"description": " ",
			"createdAt":   float64(20),
			"updatedAt":   float64(10),
			"scene": map[string]any{
				"id":              "sc1",
				"content":         "scene",
				"selectedVariant": "missing",
				"variants": []any{
					map[string]any{"id": "v1", "content": "x", "createdAt": float64(1)},
				},
			},
		},
	}

	result := uec.Lint(card)
	if result.OK {
		t.Fatalf("expected warnings")
	}
	if len(result.Warnings) != 3 {
		t.Fatalf("expected exactly three warnings, got %v", result.Warnings)
	}
	for _, sub := range []string{
		"payload.description is an empty string",
		"payload.createdAt is greater than payload.updatedAt",
		"payload.scene.selectedVariant does not match any variant id",
	} {
		if !warningsContain(result.Warnings, sub) {
			t.Fatalf("missing warning %q in %v", sub, result.Warnings)
		}
	}
}

func TestLint_MetaTimestampsCheckedSeparately(t *testing.T) {
	card := minimalV1Character()
	card["meta"] = map[string]any{"createdAt": float64(5), "updatedAt": float64(1)}

	result := uec.Lint(card)
	if !warningsContain(result.Warnings, "meta.createdAt is greater than meta.updatedAt") {
		t.Fatalf("expected a meta timestamp warning, got %v", result.Warnings)
	}
}

func TestLint_SelectedVariantHeuristicIsV2Only(t *testing.T) {
	card := minimalV1Character()
	card["payload"].(map[string]any)["scene"] = map[string]any{
		"id":              "sc1",
		"content":         "x",
		"selectedVariant": "missing",
		"variants":        []any{},
	}

	result := uec.Lint(card)
	if warningsContain(result.Warnings, "selectedVariant") {
		t.Fatalf("variant heuristic only applies to v2, got %v", result.Warnings)
	}
}

func TestLint_SelectedVariantMatchIsClean(t *testing.T) {
	card := minimalV2Persona()
	card["kind"] = "character"
	card["payload"].(map[string]any)["scene"] = map[string]any{
		"id":              "sc1",
		"content":         "x",
		"selectedVariant": "v1",
		"variants": []any{
			map[string]any{"id": "v1", "content": "x", "createdAt": float64(1)},
		},
	}

	result := uec.Lint(card)
	if warningsContain(result.Warnings, "selectedVariant") {
		t.Fatalf("a matching variant id is clean, got %v", result.Warnings)
	}
}

func TestLint_OversizedInlineAsset(t *testing.T) {
	card := minimalV2Persona()
	card["payload"].(map[string]any)["avatar"] = map[string]any{
		"type": "inline_base64",
		"data": strings.Repeat("A", 200_001),
	}

	result := uec.Lint(card)
	if !warningsContain(result.Warnings, "payload.avatar: inline_base64 asset is very large") {
		t.Fatalf("expected an oversized asset warning, got %v", result.Warnings)
	}

	card["payload"].(map[string]any)["avatar"].(map[string]any)["data"] = strings.Repeat("A", 100)
	if result := uec.Lint(card); !result.OK {
		t.Fatalf("small inline asset is clean, got %v", result.Warnings)
	}
}

func TestLint_NonObjectShapes(t *testing.T) {
	for _, bad := range []any{"nope", []any{}, map[string]any{"payload": "scalar"}} {
		result := uec.Lint(bad)
		if result.OK || !warningsContain(result.Warnings, "not a valid UEC object shape") {
			t.Fatalf("expected shape warning for %v, got %v", bad, result.Warnings)
		}
	}
}
