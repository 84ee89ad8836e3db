package uec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes text as YAML and validates the result. The decoded tree
// is remapped into the JSON value model (string-keyed objects) before
// validation so every downstream operation sees the same shapes.
func ParseYAML(text string, strict bool) ParseResult {
	var parsed any
	if err := yaml.Unmarshal([]byte(text), &parsed); err != nil {
		return ParseResult{
			OK: false,
			Errors: Issues{{
				Path:    "root",
				Code:    CodeParseError,
				Message: fmt.Sprintf("invalid YAML (%v)", err),
			}},
		}
	}

	value := yamlToValue(parsed)
	result := Validate(value, strict)
	if !result.OK {
		return ParseResult{OK: false, Errors: result.Errors}
	}
	return ParseResult{OK: true, Value: value, Errors: Issues{}}
}

// SerializeYAML normalizes v and encodes it as YAML.
func SerializeYAML(v any) (string, error) {
	raw, err := yaml.Marshal(Normalize(v))
	if err != nil {
		return "", fmt.Errorf("uec: serialize yaml: %w", err)
	}
	return string(raw), nil
}

// yamlToValue rewrites a yaml.v3 tree into the JSON value model. yaml.v3
// already yields map[string]any for string keys; non-string keys are
// stringified so validation can still report a sensible path.
func yamlToValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = yamlToValue(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[fmt.Sprintf("%v", k)] = yamlToValue(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = yamlToValue(item)
		}
		return out
	default:
		return v
	}
}
