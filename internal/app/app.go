package app

import (
	"context"

	"go.uber.org/zap"

	"loginflow/internal/domain"
)

// CurrentSession returns the stored session, if one is present and not
// expired.
func (w *Wire) CurrentSession(ctx context.Context) (domain.Session, bool, error) {
	sess, ok, err := w.Sessions.LoadSession(w.Context(ctx))
	if err != nil {
		return domain.Session{}, false, err
	}
	return sess, ok, nil
}

// Logout forgets the stored session.
func (w *Wire) Logout(ctx context.Context) error {
	if err := w.Sessions.ClearSession(w.Context(ctx)); err != nil {
		return err
	}
	w.Logger.Info("session cleared", zap.String("profile", w.Config.Profile))
	return nil
}
