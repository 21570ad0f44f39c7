package auth

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/cms-admin/internal/app/navpanel"
)

// SessionStorage is the application storage of one request: the gin session
// and the auth cookie.
type SessionStorage struct {
	c      *gin.Context
	logger *zap.Logger
}

var _ navpanel.SessionClearer = (*SessionStorage)(nil)

func NewSessionStorage(c *gin.Context, logger *zap.Logger) *SessionStorage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionStorage{c: c, logger: logger}
}

// ClearAppStorage drops every session value and expires the auth cookie.
// Failures are logged; logout proceeds regardless.
func (s *SessionStorage) ClearAppStorage() {
	session := sessions.Default(s.c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1, HttpOnly: true, SameSite: http.SameSiteLaxMode})
	if err := session.Save(); err != nil {
		s.logger.Error("Failed to clear session", zap.Error(err))
	}

	http.SetCookie(s.c.Writer, &http.Cookie{
		Name:     TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.logger.Info("Application storage cleared")
}
