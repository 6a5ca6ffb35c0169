// Package redis implements the token blocklist on a Redis key-value store.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bookly-app/bookly-server/internal/model"
)

const keyPrefix = "blocklist:"

var _ model.TokenBlocklist = (*Blocklist)(nil)

// Blocklist records revoked token IDs. Entries carry a fixed TTL equal to the
// access-token lifetime, independent of the individual token's remaining life,
// so a revoked jti stays listed at least as long as its token could validate.
type Blocklist struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBlocklist creates a Blocklist writing through the given client.
func NewBlocklist(client *redis.Client, ttl time.Duration) *Blocklist {
	return &Blocklist{client: client, ttl: ttl}
}

// Revoke records jti as revoked. The value is a sentinel; only key presence matters.
func (b *Blocklist) Revoke(ctx context.Context, jti string) error {
	if err := b.client.Set(ctx, keyPrefix+jti, "", b.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", model.ErrBlocklistUnavailable, err)
	}
	return nil
}

// IsRevoked reports whether jti has been revoked. A store outage is surfaced
// as ErrBlocklistUnavailable rather than "not revoked", since treating an
// unreachable blocklist as empty would defeat revocation.
func (b *Blocklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, keyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", model.ErrBlocklistUnavailable, err)
	}
	return n > 0, nil
}
