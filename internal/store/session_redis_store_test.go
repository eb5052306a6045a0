package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loginflow/internal/store"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestRedisSession_SetLoadClear(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newTestRedis(t)
	sessions := store.NewRedisSessionStore(rdb, "lf", "work", "pass", fastKDF)
	assert.Equal(t, "lf:session:work", sessions.Key())

	require.NoError(t, sessions.SetSession(ctx, alice, "opaque-token"))
	assert.True(t, mr.Exists("lf:session:work"))
	assert.Zero(t, mr.TTL("lf:session:work"), "opaque tokens are stored without ttl")

	raw, err := mr.Get("lf:session:work")
	require.NoError(t, err)
	assert.NotContains(t, raw, "opaque-token")

	got, ok, err := sessions.LoadSession(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, alice, got.User)

	require.NoError(t, sessions.ClearSession(ctx))
	_, ok, err = sessions.LoadSession(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisSession_TTLFollowsTokenExpiry(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newTestRedis(t)
	clock := clockwork.NewFakeClockAt(epoch)
	sessions := store.NewRedisSessionStore(rdb, "", "", "pass", fastKDF, store.WithClock(clock))

	require.NoError(t, sessions.SetSession(ctx, alice, signedToken(t, epoch.Add(30*time.Minute))))
	assert.Equal(t, 30*time.Minute, mr.TTL(sessions.Key()))

	mr.FastForward(31 * time.Minute)
	_, ok, err := sessions.LoadSession(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisSession_ProfilesAreIsolated(t *testing.T) {
	ctx := context.Background()
	_, rdb := newTestRedis(t)
	work := store.NewRedisSessionStore(rdb, "lf", "work", "pass", fastKDF)
	home := store.NewRedisSessionStore(rdb, "lf", "home", "pass", fastKDF)

	require.NoError(t, work.SetSession(ctx, alice, "tok"))

	_, ok, err := home.LoadSession(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisSession_WrongPassphrase(t *testing.T) {
	ctx := context.Background()
	_, rdb := newTestRedis(t)
	require.NoError(t, store.NewRedisSessionStore(rdb, "lf", "p", "right", fastKDF).SetSession(ctx, alice, "tok"))

	_, _, err := store.NewRedisSessionStore(rdb, "lf", "p", "wrong", fastKDF).LoadSession(ctx)
	assert.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestRedisSession_BackendDown(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newTestRedis(t)
	sessions := store.NewRedisSessionStore(rdb, "lf", "p", "pass", fastKDF)
	mr.Close()

	assert.Error(t, sessions.SetSession(ctx, alice, "tok"))
	_, _, err := sessions.LoadSession(ctx)
	assert.Error(t, err)
}

func TestRedisSession_ExpiredTokenRemovesSession(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newTestRedis(t)
	clock := clockwork.NewFakeClockAt(epoch)
	sessions := store.NewRedisSessionStore(rdb, "lf", "p", "pass", fastKDF, store.WithClock(clock))

	require.NoError(t, sessions.SetSession(ctx, alice, "opaque-token"))
	require.True(t, mr.Exists(sessions.Key()))

	require.NoError(t, sessions.SetSession(ctx, alice, signedToken(t, epoch.Add(-time.Minute))))
	assert.False(t, mr.Exists(sessions.Key()), "no key without expiry is left behind")

	_, ok, err := sessions.LoadSession(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
