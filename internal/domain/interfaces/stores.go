package interfaces

import (
	"context"

	domaintypes "loginflow/internal/domain/types"
)

// SessionWriter is the write side of the current-session handle.
type SessionWriter interface {
	SetSession(ctx context.Context, user domaintypes.User, accessToken string) error
}

// SessionStore persists the authenticated session between runs.
type SessionStore interface {
	SessionWriter
	LoadSession(ctx context.Context) (domaintypes.Session, bool, error)
	ClearSession(ctx context.Context) error
}
