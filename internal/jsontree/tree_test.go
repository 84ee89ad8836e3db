package jsontree

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNumber_AcceptsDecoderKinds(t *testing.T) {
	cases := []any{float64(3), float32(3), int(3), int64(3), uint8(3), json.Number("3")}
	for _, v := range cases {
		f, ok := Number(v)
		if !ok || f != 3 {
			t.Fatalf("Number(%T %v) = %v, %v", v, v, f, ok)
		}
	}
}

func TestNumber_RejectsNonNumbers(t *testing.T) {
	for _, v := range []any{"3", true, nil, []any{}, math.NaN(), math.Inf(1), json.Number("x")} {
		if _, ok := Number(v); ok {
			t.Fatalf("Number(%T %v) must fail", v, v)
		}
	}
}

func TestIsZeroNumber(t *testing.T) {
	if !IsZeroNumber(float64(0)) || !IsZeroNumber(0) || !IsZeroNumber(json.Number("0")) {
		t.Fatalf("all zero kinds must match")
	}
	if IsZeroNumber(float64(1)) || IsZeroNumber("0") || IsZeroNumber(false) {
		t.Fatalf("non-zero values must not match")
	}
}

func TestIsStringList(t *testing.T) {
	if !IsStringList([]any{"a", "b"}) || !IsStringList([]any{}) {
		t.Fatalf("string arrays must match")
	}
	if IsStringList([]any{"a", 1}) || IsStringList("a") {
		t.Fatalf("mixed arrays and scalars must not match")
	}
}

func TestClone_SharesNoStructure(t *testing.T) {
	src := map[string]any{"a": []any{map[string]any{"k": "v"}}}
	dup := Clone(src).(map[string]any)

	dup["a"].([]any)[0].(map[string]any)["k"] = "changed"
	if src["a"].([]any)[0].(map[string]any)["k"] != "v" {
		t.Fatalf("clone must not alias the source")
	}
}

func TestEqual_NumbersByValue(t *testing.T) {
	if !Equal(float64(2), int(2)) || !Equal(json.Number("2"), float64(2)) {
		t.Fatalf("numeric kinds must compare by value")
	}
	if Equal(float64(2), "2") || Equal(float64(2), true) {
		t.Fatalf("numbers never equal non-numbers")
	}
}

func TestEqual_Containers(t *testing.T) {
	a := map[string]any{"x": []any{1, "s", nil}}
	b := map[string]any{"x": []any{float64(1), "s", nil}}
	if !Equal(a, b) {
		t.Fatalf("equivalent trees must compare equal")
	}

	if Equal(map[string]any{"x": 1}, map[string]any{"x": 1, "y": 2}) {
		t.Fatalf("extra keys break equality")
	}
	if Equal([]any{1}, []any{1, 2}) {
		t.Fatalf("length mismatch breaks equality")
	}
}

func TestPathHelpers(t *testing.T) {
	if got := Join("", "payload"); got != "payload" {
		t.Fatalf("Join at root: %q", got)
	}
	if got := Join("payload", "scenes"); got != "payload.scenes" {
		t.Fatalf("Join nested: %q", got)
	}
	if got := Index("payload.scenes", 2); got != "payload.scenes[2]" {
		t.Fatalf("Index: %q", got)
	}
	if got := Index("", 0); got != "[0]" {
		t.Fatalf("Index at root: %q", got)
	}
}

func TestUnionKeys(t *testing.T) {
	keys := UnionKeys(map[string]any{"b": 1, "a": 1}, map[string]any{"c": 1, "a": 1})
	want := []string{"a", "b", "c"}
	if len(keys) != len(want) {
		t.Fatalf("got %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, keys)
		}
	}
}

func TestAssetPredicates(t *testing.T) {
	for _, s := range []any{"http://x", "https://x/y", "data:image/png;base64,AA"} {
		if !IsAssetString(s) {
			t.Fatalf("%v must be an asset string", s)
		}
	}
	for _, s := range []any{"ftp://x", "hello", 42, nil} {
		if IsAssetString(s) {
			t.Fatalf("%v must not be an asset string", s)
		}
	}

	if !IsAssetLocator(map[string]any{"type": "asset_ref", "assetId": "a"}) {
		t.Fatalf("tagged object must be a locator")
	}
	if IsAssetLocator(map[string]any{"type": "mystery"}) || IsAssetLocator(map[string]any{}) {
		t.Fatalf("unknown or missing tags are not locators")
	}
}
