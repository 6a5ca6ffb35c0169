package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookly-app/bookly-server/internal/model"
)

func newTestBlocklist(t *testing.T, ttl time.Duration) (*Blocklist, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewBlocklist(client, ttl), mr
}

func TestBlocklist_RevokeAndCheck(t *testing.T) {
	ctx := context.Background()
	bl, _ := newTestBlocklist(t, time.Hour)

	revoked, err := bl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, bl.Revoke(ctx, "jti-1"))

	revoked, err = bl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = bl.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestBlocklist_RevokeIdempotent(t *testing.T) {
	ctx := context.Background()
	bl, _ := newTestBlocklist(t, time.Hour)

	require.NoError(t, bl.Revoke(ctx, "jti-1"))
	require.NoError(t, bl.Revoke(ctx, "jti-1"))

	revoked, err := bl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestBlocklist_EntryExpires(t *testing.T) {
	ctx := context.Background()
	bl, mr := newTestBlocklist(t, time.Hour)

	require.NoError(t, bl.Revoke(ctx, "jti-1"))
	assert.True(t, mr.TTL(keyPrefix+"jti-1") > 0)

	mr.FastForward(time.Hour + time.Minute)

	revoked, err := bl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestBlocklist_StoreUnavailable(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	bl := NewBlocklist(client, time.Hour)
	mr.Close()

	err := bl.Revoke(ctx, "jti-1")
	require.ErrorIs(t, err, model.ErrBlocklistUnavailable)

	_, err = bl.IsRevoked(ctx, "jti-1")
	require.ErrorIs(t, err, model.ErrBlocklistUnavailable)
}
