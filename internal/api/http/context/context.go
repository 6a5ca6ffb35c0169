// Package context carries authenticated token claims through request contexts.
package context

import (
	"context"

	"github.com/bookly-app/bookly-server/internal/model"
)

type claimsContextKey struct{}

// Manager implements model.ContextManager over a plain context value.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetClaimsToContext returns a child context carrying the token claims.
func (m *Manager) SetClaimsToContext(ctx context.Context, claims *model.TokenClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey{}, claims)
}

// GetClaimsFromContext retrieves the token claims set by the guard middleware.
// The boolean is false for requests that never passed the guard.
func (m *Manager) GetClaimsFromContext(ctx context.Context) (*model.TokenClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(*model.TokenClaims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}
