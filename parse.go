package uec

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Parse decodes text as JSON and validates the result. Malformed input yields
// a single parse issue; validation failures carry the full issue list. Value
// is only set when both steps pass.
func Parse(text string, strict bool) ParseResult {
	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return ParseResult{
			OK: false,
			Errors: Issues{{
				Path:    "root",
				Code:    CodeParseError,
				Message: fmt.Sprintf("invalid JSON (%v)", err),
			}},
		}
	}

	result := Validate(parsed, strict)
	if !result.OK {
		return ParseResult{OK: false, Errors: result.Errors}
	}
	return ParseResult{OK: true, Value: parsed, Errors: Issues{}}
}

// Serialize normalizes v and encodes it as JSON. Map keys are emitted in
// sorted order, so two normalized-equal documents serialize identically.
func Serialize(v any, pretty bool) (string, error) {
	normalized := Normalize(v)

	var (
		raw []byte
		err error
	)
	if pretty {
		raw, err = json.MarshalIndent(normalized, "", "  ")
	} else {
		raw, err = json.Marshal(normalized)
	}
	if err != nil {
		return "", fmt.Errorf("uec: serialize: %w", err)
	}
	return string(raw), nil
}
