package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/cms-admin/internal/app/designsystem"
	"github.com/FACorreiaa/cms-admin/internal/app/domain/auth"
	"github.com/FACorreiaa/cms-admin/internal/app/menu"
	"github.com/FACorreiaa/cms-admin/internal/app/navpanel"
	"github.com/FACorreiaa/cms-admin/internal/app/preferences"
	"github.com/FACorreiaa/cms-admin/internal/pkg/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const menuWithCollisions = `
general:
  - {to: /settings, icon: cog, label: {default: Settings}}
  - {to: /me, icon: users, label: {default: Me again}}
  - {to: /auth/login, icon: lock, label: {default: Login}}
`

func newEngine(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	links, err := menu.Parse([]byte(menuWithCollisions))
	require.NoError(t, err)

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-key-with-at-least-32-chars",
			TokenExpiration: time.Hour,
		},
		Menu: config.MenuConfig{Logo: "/assets/static/logo.svg"},
	}

	r := gin.New()
	r.Use(sessions.Sessions("test", cookie.NewStore([]byte("0123456789abcdef0123456789abcdef"))))
	require.NotPanics(t, func() {
		Setup(r, Dependencies{
			Config:      cfg,
			Mounts:      navpanel.NewMounts(time.Minute, nil),
			Widgets:     designsystem.New(),
			Preferences: preferences.SessionResolver(),
			Menu:        links,
		}, zap.NewNop())
	})
	return r, cfg
}

func signedIn(t *testing.T, cfg *config.Config, req *http.Request) *http.Request {
	t.Helper()
	token, err := auth.NewTokens(auth.JWTConfig{
		SecretKey: cfg.Auth.JWTSecret, TokenExpiration: time.Hour,
	}).Issue(auth.UserID("jane@example.com"), "Jane Doe")
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: auth.TokenCookie, Value: token})
	return req
}

func TestSetup_AdminPagesRequireLogin(t *testing.T) {
	r, cfg := newEngine(t)

	for _, path := range []string{"/admin", "/content-manager", "/me", "/settings"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, navpanel.LoginPath, w.Header().Get("Location"), path)

		w = httptest.NewRecorder()
		r.ServeHTTP(w, signedIn(t, cfg, httptest.NewRequest(http.MethodGet, path, nil)))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestSetup_LoginPageIsPublic(t *testing.T) {
	r, _ := newEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, navpanel.LoginPath, nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetup_UnmountSkipsAuth(t *testing.T) {
	r, _ := newEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/nav/4b8c4a0e-3f3e-4d8e-9d7a-1f1f1f1f1f1f/unmount", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestReserved(t *testing.T) {
	assert.True(t, reserved("/"))
	assert.True(t, reserved("/auth"))
	assert.True(t, reserved("/nav/x"))
	assert.True(t, reserved("/assets/css/admin.css"))
	assert.False(t, reserved("/authors"))
	assert.False(t, reserved("/settings"))
}
