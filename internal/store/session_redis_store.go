package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"loginflow/internal/domain"
)

// RedisSessionStore keeps the sealed session in Redis so several headless
// clients on one host share a login. The key expires with the access token.
type RedisSessionStore struct {
	rdb        redis.UniversalClient
	key        string
	passphrase string
	opts       options
}

// NewRedisSessionStore stores the session for profile under
// "<prefix>:session:<profile>".
func NewRedisSessionStore(rdb redis.UniversalClient, prefix, profile, passphrase string, opts ...Option) *RedisSessionStore {
	if prefix == "" {
		prefix = "loginflow"
	}
	if profile == "" {
		profile = defaultProfile
	}
	return &RedisSessionStore{
		rdb:        rdb,
		key:        fmt.Sprintf("%s:session:%s", prefix, profile),
		passphrase: passphrase,
		opts:       buildOptions(opts),
	}
}

// Key returns the Redis key the session lives under.
func (s *RedisSessionStore) Key() string { return s.key }

// SetSession seals the session and writes it with a TTL matching the token
// expiry. Tokens without an expiry are stored without a TTL; a token that
// has already expired removes the stored session instead.
func (s *RedisSessionStore) SetSession(ctx context.Context, user domain.User, accessToken string) error {
	now := s.opts.clock.Now()
	sess := newSession(user, accessToken, now)

	var ttl time.Duration
	if !sess.ExpiresAt.IsZero() {
		ttl = sess.ExpiresAt.Sub(now)
		if ttl <= 0 {
			return s.ClearSession(ctx)
		}
	}

	blob, err := sealSession(s.passphrase, sess, s.opts.kdf)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, s.key, blob, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

// LoadSession returns the stored session. A missing or expired session is
// reported as ok == false.
func (s *RedisSessionStore) LoadSession(ctx context.Context) (domain.Session, bool, error) {
	blob, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, fmt.Errorf("redis get session: %w", err)
	}

	sess, err := openSession(s.passphrase, blob)
	if err != nil {
		return domain.Session{}, false, err
	}
	if sess.Expired(s.opts.clock.Now()) {
		return domain.Session{}, false, nil
	}
	return sess, true, nil
}

// ClearSession deletes the stored session.
func (s *RedisSessionStore) ClearSession(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}

var _ domain.SessionStore = (*RedisSessionStore)(nil)
