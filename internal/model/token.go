package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Subject is the opaque payload identifying a token's owner.
type Subject struct {
	UID   uuid.UUID `json:"uid"`
	Email string    `json:"email"`
}

// TokenClaims is the decoded view of one issued token.
type TokenClaims struct {
	Subject   Subject
	JTI       string
	ExpiresAt time.Time
	Refresh   bool
}

// TokenManager issues and decodes signed bearer tokens.
type TokenManager interface {
	Issue(subject Subject, refresh bool, ttl time.Duration) (string, error)
	Decode(token string) (*TokenClaims, error)
}

// TokenBlocklist records revoked token IDs until their validity window lapses.
type TokenBlocklist interface {
	Revoke(ctx context.Context, jti string) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
