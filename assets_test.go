package uec_test

import (
	"strings"
	"testing"

	uec "github.com/uecformat/uec"
)

func assetFixture() map[string]any {
	return map[string]any{
		"schema": map[string]any{"name": "UEC", "version": "2.0"},
		"kind":   "character",
		"payload": map[string]any{
			"id":     "c1",
			"name":   "A",
			"avatar": "https://example.com/a.png",
			"gallery": []any{
				map[string]any{"type": "asset_ref", "assetId": "asset-1"},
				"data:image/png;base64,AAAA",
			},
			"background": map[string]any{"type": "remote_url", "url": "http://example.com/bg.jpg"},
		},
	}
}

func TestExtractAssets_FindsStringsAndLocators(t *testing.T) {
	refs := uec.ExtractAssets(assetFixture())

	byPath := map[string]uec.AssetRef{}
	for _, ref := range refs {
		byPath[ref.Path] = ref
	}

	avatar, ok := byPath["payload.avatar"]
	if !ok || avatar.Kind != uec.AssetString {
		t.Fatalf("expected an asset string at payload.avatar, got %v", refs)
	}
	if item, ok := byPath["payload.gallery[0]"]; !ok || item.Kind != uec.AssetLocator {
		t.Fatalf("expected a locator at payload.gallery[0], got %v", refs)
	}
	if item, ok := byPath["payload.gallery[1]"]; !ok || item.Kind != uec.AssetString {
		t.Fatalf("expected a data URI string at payload.gallery[1], got %v", refs)
	}
	if item, ok := byPath["payload.background"]; !ok || item.Kind != uec.AssetLocator {
		t.Fatalf("expected a locator at payload.background, got %v", refs)
	}
}

func TestExtractAssets_LocatorsAreTerminal(t *testing.T) {
	refs := uec.ExtractAssets(assetFixture())
	for _, ref := range refs {
		if strings.HasPrefix(ref.Path, "payload.background.") {
			t.Fatalf("walk must not descend into a locator, found %s", ref.Path)
		}
	}
}

func TestExtractAssets_IgnoresPlainStrings(t *testing.T) {
	card := map[string]any{"payload": map[string]any{"name": "not an asset", "note": "httpish"}}
	if refs := uec.ExtractAssets(card); len(refs) != 0 {
		t.Fatalf("plain strings are not assets, got %v", refs)
	}
}

func TestRewriteAssets_IdentityIsDeepEqual(t *testing.T) {
	input := assetFixture()
	out := uec.RewriteAssets(input, func(ref uec.AssetRef) any { return ref.Value })

	if len(uec.Diff(input, out)) != 0 {
		t.Fatalf("identity rewrite must return a deep-equal tree")
	}
}

func TestRewriteAssets_MapsEveryAsset(t *testing.T) {
	out := uec.RewriteAssets(assetFixture(), func(ref uec.AssetRef) any {
		if ref.Kind == uec.AssetString {
			return map[string]any{"type": "asset_ref", "assetId": "uploaded"}
		}
		return ref.Value
	})

	payload := out.(map[string]any)["payload"].(map[string]any)
	avatar, ok := payload["avatar"].(map[string]any)
	if !ok || avatar["assetId"] != "uploaded" {
		t.Fatalf("string asset must be rewritten, got %v", payload["avatar"])
	}
	if payload["name"] != "A" {
		t.Fatalf("non-asset structure must be untouched, got %v", payload["name"])
	}
}

func TestRewriteAssets_DoesNotMutateInput(t *testing.T) {
	input := assetFixture()
	uec.RewriteAssets(input, func(uec.AssetRef) any { return "rewritten" })
	if input["payload"].(map[string]any)["avatar"] != "https://example.com/a.png" {
		t.Fatalf("rewrite must not mutate its input")
	}
}
