package preferences

import (
	"context"

	"github.com/gin-contrib/sessions"
	"github.com/pkg/errors"
)

const sessionKeyPrefix = "pref:"

// SessionStore reads and writes preferences in a gin session.
type SessionStore struct {
	session sessions.Session
}

func NewSessionStore(session sessions.Session) *SessionStore {
	return &SessionStore{session: session}
}

func (s *SessionStore) Get(_ context.Context, key string) (bool, error) {
	switch v := s.session.Get(sessionKeyPrefix + key).(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	default:
		return false, errors.Errorf("session preference %q holds %T", key, v)
	}
}

func (s *SessionStore) Set(_ context.Context, key string, value bool) error {
	s.session.Set(sessionKeyPrefix+key, value)
	return errors.Wrap(s.session.Save(), "save session")
}
