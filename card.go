package uec

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// SchemaInfo is the typed view of a document's schema block.
type SchemaInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Compat  string `json:"compat,omitempty"`
}

// Card is the typed view of a validated document. Payload stays a generic
// object because its shape is kind- and version-dependent; the envelope is
// what typed callers care about.
type Card struct {
	Schema              SchemaInfo     `json:"schema"`
	Kind                Kind           `json:"kind"`
	Payload             map[string]any `json:"payload"`
	AppSpecificSettings map[string]any `json:"app_specific_settings,omitempty"`
	Meta                map[string]any `json:"meta,omitempty"`
	Extensions          map[string]any `json:"extensions,omitempty"`
}

// DecodeCard validates v and deserializes it into a Card. A passing document
// that still fails to map onto the record is reported with a descriptive
// error; that path guards against drift between the validator and this type.
func DecodeCard(v any, strict bool) (Card, error) {
	var zero Card

	result := Validate(v, strict)
	if !result.OK {
		return zero, fmt.Errorf("%w: %s", ErrInvalidCard, result.Errors.Error())
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return zero, fmt.Errorf("%w: encoding card: %v", ErrInvalidCard, err)
	}
	var card Card
	if err := json.Unmarshal(raw, &card); err != nil {
		return zero, fmt.Errorf("%w: card does not map onto typed form: %v", ErrInvalidCard, err)
	}
	return card, nil
}

// Value converts the typed card back into the generic tree form the rest of
// the package operates on.
func (c Card) Value() (map[string]any, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("uec: encoding card: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("uec: decoding card: %w", err)
	}
	return out, nil
}
