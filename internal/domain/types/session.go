package types

import "time"

// Session is the persisted authenticated identity plus its access token.
type Session struct {
	User        User      `json:"user"`
	AccessToken string    `json:"access_token"`
	SavedAt     time.Time `json:"saved_at"`
	// ExpiresAt is zero when the token carries no expiry.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// Expired reports whether the session expired at or before now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
