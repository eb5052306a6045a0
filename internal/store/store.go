package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"

	"loginflow/internal/domain"
)

const defaultProfile = "default"

// Option customises a session store.
type Option func(*options)

type options struct {
	clock clockwork.Clock
	kdf   KDFParams
}

func buildOptions(opts []Option) options {
	o := options{
		clock: clockwork.NewRealClock(),
		kdf:   DefaultKDFParams(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock replaces the wall clock used for saved-at and expiry checks.
func WithClock(c clockwork.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithKDFParams overrides the scrypt cost parameters.
func WithKDFParams(p KDFParams) Option {
	return func(o *options) { o.kdf = p }
}

// newSession builds the record persisted for user and token.
func newSession(user domain.User, token string, now time.Time) domain.Session {
	return domain.Session{
		User:        user,
		AccessToken: token,
		SavedAt:     now.UTC(),
		ExpiresAt:   tokenExpiry(token),
	}
}

// tokenExpiry reads the exp claim of a JWT access token without verifying
// its signature; opaque tokens and tokens without exp yield the zero time.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.UTC()
}

func sealSession(passphrase string, s domain.Session, kdf KDFParams) ([]byte, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return seal(passphrase, raw, kdf)
}

func openSession(passphrase string, blob []byte) (domain.Session, error) {
	raw, err := open(passphrase, blob)
	if err != nil {
		return domain.Session{}, err
	}
	var s domain.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return domain.Session{}, fmt.Errorf("decode session: %w", err)
	}
	return s, nil
}
