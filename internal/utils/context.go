// Package utils provides general-purpose helpers used across the
// application: context keys, JSON response writing, the resty client
// wrapper, write token signing and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TokenSubjectCtxKey stores the subject of a verified proxy write token.
var TokenSubjectCtxKey = contextKey("tokenSubject")

// GetTokenSubjectFromContext returns the write token subject stored by the
// auth middleware.
func GetTokenSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(TokenSubjectCtxKey).(string)
	return subject, ok
}
