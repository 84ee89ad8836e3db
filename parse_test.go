package uec_test

import (
	"testing"

	uec "github.com/uecformat/uec"
)

func TestParse_ValidDocument(t *testing.T) {
	res := uec.Parse(`{
		"schema": {"name": "UEC", "version": "1.0"},
		"kind": "character",
		"payload": {"id": "c1", "name": "Aster"}
	}`, false)
	if !res.OK {
		t.Fatalf("expected a parse to succeed, got %v", res.Errors.Strings())
	}
	payload := res.Value.(map[string]any)["payload"].(map[string]any)
	if payload["name"] != "Aster" {
		t.Fatalf("unexpected payload: %v", payload)
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	res := uec.Parse(`{"schema":`, false)
	if res.OK {
		t.Fatalf("expected failure")
	}
	if len(res.Errors) != 1 || res.Errors[0].Code != uec.CodeParseError {
		t.Fatalf("malformed input must yield one parse issue, got %v", res.Errors.Strings())
	}
	hasIssue(t, res.Errors, "invalid JSON")
	if res.Value != nil {
		t.Fatalf("value must be unset on failure")
	}
}

func TestParse_InvalidDocumentCarriesValidationIssues(t *testing.T) {
	res := uec.Parse(`{"schema": {"name": "UEC", "version": "1.0"}, "kind": "robot", "payload": {}}`, false)
	if res.OK {
		t.Fatalf("expected failure")
	}
	hasIssue(t, res.Errors, "kind")
	hasIssue(t, res.Errors, "payload.id")
}

func TestSerialize_RoundTrip(t *testing.T) {
	out, err := uec.Serialize(minimalV1Character(), true)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	res := uec.Parse(out, false)
	if !res.OK {
		t.Fatalf("serialized output must parse back, got %v", res.Errors.Strings())
	}
	if len(uec.Diff(uec.Normalize(minimalV1Character()), res.Value)) != 0 {
		t.Fatalf("round trip must preserve the normalized document")
	}
}

func TestSerialize_IsDeterministic(t *testing.T) {
	card := conversionFixture()
	first, err := uec.Serialize(card, false)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	second, err := uec.Serialize(card, false)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if first != second {
		t.Fatalf("serialization must be stable:\n%s\n%s", first, second)
	}
}

func TestNormalize_DefaultsContainers(t *testing.T) {
	out := uec.Normalize(minimalV1Character())
	card := out.(map[string]any)
	for _, key := range []string{"app_specific_settings", "meta", "extensions"} {
		obj, ok := card[key].(map[string]any)
		if !ok || len(obj) != 0 {
			t.Fatalf("%s must default to an empty object, got %v", key, card[key])
		}
	}
}

func TestNormalize_PreservesValidity(t *testing.T) {
	valid := minimalV1Character()
	if res := uec.Validate(uec.Normalize(valid), false); !res.OK {
		t.Fatalf("normalizing a valid card must stay valid, got %v", res.Errors.Strings())
	}

	invalid := minimalV1Character()
	invalid["kind"] = "robot"
	if res := uec.Validate(uec.Normalize(invalid), false); res.OK {
		t.Fatalf("normalizing must not repair an invalid card")
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	card := minimalV1Character()
	uec.Normalize(card)
	if _, present := card["meta"]; present {
		t.Fatalf("normalize must copy, not mutate")
	}
}
