package model

import "context"

// ContextManager moves authenticated token claims in and out of a request context.
type ContextManager interface {
	SetClaimsToContext(ctx context.Context, claims *TokenClaims) context.Context
	GetClaimsFromContext(ctx context.Context) (*TokenClaims, bool)
}
