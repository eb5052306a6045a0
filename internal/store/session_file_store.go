package store

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"loginflow/internal/domain"
)

// SessionFileStore persists the current session to a sealed file on disk,
// one file per profile.
type SessionFileStore struct {
	dir        string
	filename   string
	passphrase string
	opts       options
	mu         sync.Mutex
}

// NewSessionFileStore returns a SessionFileStore keeping the session for
// profile in "<dir>/session.<profile>.json.enc".
func NewSessionFileStore(dir, profile, passphrase string, opts ...Option) *SessionFileStore {
	if profile == "" {
		profile = defaultProfile
	}
	return &SessionFileStore{
		dir:        dir,
		filename:   "session." + profile + ".json.enc",
		passphrase: passphrase,
		opts:       buildOptions(opts),
	}
}

func (s *SessionFileStore) path() string {
	return filepath.Join(s.dir, s.filename)
}

// SetSession seals and writes the session for user, replacing any previous one.
func (s *SessionFileStore) SetSession(_ context.Context, user domain.User, accessToken string) error {
	sess := newSession(user, accessToken, s.opts.clock.Now())
	blob, err := sealSession(s.passphrase, sess, s.opts.kdf)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return writeFile(s.path(), blob, 0o600)
}

// LoadSession returns the stored session. A missing or expired session is
// reported as ok == false.
func (s *SessionFileStore) LoadSession(_ context.Context) (domain.Session, bool, error) {
	s.mu.Lock()
	blob, err := readFile(s.path())
	s.mu.Unlock()
	if err != nil || blob == nil {
		return domain.Session{}, false, err
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

// ClearSession removes the stored session.
func (s *SessionFileStore) ClearSession(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return removeFile(s.path())
}

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)
