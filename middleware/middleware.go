// Package middleware carries the framework-neutral pieces shared by the HTTP
// integrations: context storage for a validated card and the error payload
// shape.
package middleware

import (
	"context"

	uec "github.com/uecformat/uec"
)

// ctxKeyCard is a typed context key for storing a validated card.
type ctxKeyCard struct{}

// ContextWithCard attaches a validated card value to the context.
func ContextWithCard(ctx context.Context, card any) context.Context {
	return context.WithValue(ctx, ctxKeyCard{}, card)
}

// CardFromContext retrieves a validated card from the context.
func CardFromContext(ctx context.Context) (any, bool) {
	v := ctx.Value(ctxKeyCard{})
	if v == nil {
		return nil, false
	}
	return v, true
}

// ErrorPayload shapes validation issues for JSON responses.
func ErrorPayload(issues uec.Issues) map[string]any {
	return map[string]any{"issues": issues.Strings()}
}
