package uec

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	jt "github.com/uecformat/uec/internal/jsontree"
)

// CreateOptions carries the optional envelope blocks for New. Nil blocks
// default to empty objects; Version defaults to v1.
type CreateOptions struct {
	Schema              map[string]any
	AppSpecificSettings map[string]any
	Meta                map[string]any
	Extensions          map[string]any
	// SystemPromptIsID marks a v1 character systemPrompt as a prompt-template
	// id, prefixing it with "_ID:" unless it already carries the prefix.
	SystemPromptIsID bool
}

// New assembles a document envelope around a caller-supplied payload. It does
// no validation beyond the two hard requirements; run Validate on the result
// before trusting it.
func New(kind Kind, payload map[string]any, opts CreateOptions) (map[string]any, error) {
	if kind == "" {
		return nil, errors.New("uec: kind is required")
	}
	if payload == nil {
		return nil, errors.New("uec: payload must be an object")
	}

	schema := map[string]any{
		"name":    SchemaName,
		"version": VersionV1,
	}
	for k, v := range opts.Schema {
		schema[k] = v
	}
	isV2 := schema["version"] == VersionV2

	if kind == KindCharacter && !isV2 && opts.SystemPromptIsID {
		payload = prefixSystemPromptID(payload)
	}

	return map[string]any{
		"schema":                schema,
		"kind":                  string(kind),
		"payload":               payload,
		"app_specific_settings": orEmpty(opts.AppSpecificSettings),
		"meta":                  orEmpty(opts.Meta),
		"extensions":            orEmpty(opts.Extensions),
	}, nil
}

// NewCharacter assembles a v1 character document.
func NewCharacter(payload map[string]any, opts CreateOptions) (map[string]any, error) {
	return New(KindCharacter, payload, opts)
}

// NewPersona assembles a v1 persona document.
func NewPersona(payload map[string]any, opts CreateOptions) (map[string]any, error) {
	return New(KindPersona, payload, opts)
}

// NewCharacterV2 assembles a v2 character document.
func NewCharacterV2(payload map[string]any, opts CreateOptions) (map[string]any, error) {
	return New(KindCharacter, payload, forceV2(opts))
}

// NewPersonaV2 assembles a v2 persona document.
func NewPersonaV2(payload map[string]any, opts CreateOptions) (map[string]any, error) {
	return New(KindPersona, payload, forceV2(opts))
}

// NewID returns a fresh payload id.
func NewID() string {
	return "uec-" + uuid.NewString()
}

func forceV2(opts CreateOptions) CreateOptions {
	schema := make(map[string]any, len(opts.Schema)+1)
	for k, v := range opts.Schema {
		schema[k] = v
	}
	schema["version"] = VersionV2
	opts.Schema = schema
	return opts
}

func prefixSystemPromptID(payload map[string]any) map[string]any {
	prompt, ok := jt.String(payload["systemPrompt"])
	if !ok || strings.HasPrefix(prompt, "_ID:") {
		return payload
	}
	next, _ := jt.Object(jt.Clone(payload))
	next["systemPrompt"] = "_ID:" + prompt
	return next
}

func orEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
