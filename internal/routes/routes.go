package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/cms-admin/internal/app/domain/auth"
	"github.com/FACorreiaa/cms-admin/internal/app/handlers"
	"github.com/FACorreiaa/cms-admin/internal/app/menu"
	"github.com/FACorreiaa/cms-admin/internal/app/middleware"
	"github.com/FACorreiaa/cms-admin/internal/app/navpanel"
	"github.com/FACorreiaa/cms-admin/internal/app/preferences"
	"github.com/FACorreiaa/cms-admin/internal/pkg/config"
)

var (
	msgHomeTitle    = navpanel.Message{ID: "app.components.HomePage.title", DefaultMessage: "Home"}
	msgContentTitle = navpanel.Message{ID: "content-manager.plugin.name", DefaultMessage: "Content manager"}
	msgProfileTitle = navpanel.Message{ID: "app.components.LeftMenu.profile", DefaultMessage: "Profile"}
)

// Dependencies are the long-lived collaborators the routes are built from.
type Dependencies struct {
	Config      *config.Config
	Mounts      *navpanel.Mounts
	Widgets     navpanel.Widgets
	Preferences preferences.Resolver
	Menu        *menu.Provider
}

type AppHandlers struct {
	Nav  *handlers.NavHandler
	Auth *auth.Handler
}

func Setup(r *gin.Engine, deps Dependencies, log *zap.Logger) {
	jwtConfig := auth.JWTConfig{
		SecretKey:       deps.Config.Auth.JWTSecret,
		TokenExpiration: deps.Config.Auth.TokenExpiration,
		Logger:          log,
	}

	h := &AppHandlers{
		Nav: handlers.NewNavHandler(handlers.NavDeps{
			Mounts:      deps.Mounts,
			Widgets:     deps.Widgets,
			Preferences: deps.Preferences,
			Links:       deps.Menu,
			Config:      deps.Config,
			Logger:      log.Named("nav"),
		}),
		Auth: auth.NewHandler(jwtConfig, deps.Config.Auth.DevLogin, log.Named("auth")),
	}

	r.Use(middleware.OptionalAuthMiddleware(jwtConfig))
	setupRouter(r, h, deps.Menu, log)
}

func setupRouter(r *gin.Engine, h *AppHandlers, links *menu.Provider, log *zap.Logger) {
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, auth.AfterLoginPath)
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.GET("/login", h.Auth.ShowLogin)
		authGroup.POST("/login", h.Auth.Login)
	}

	requireAuth := middleware.RequireAuthMiddleware(navpanel.LoginPath)

	admin := r.Group("", requireAuth)
	pages := map[string]navpanel.Message{
		auth.AfterLoginPath:         msgHomeTitle,
		navpanel.ContentManagerPath: msgContentTitle,
		navpanel.ProfilePath:        msgProfileTitle,
	}
	for path, title := range pages {
		admin.GET(path, h.Nav.Page(title))
	}
	for _, path := range links.Paths() {
		if _, taken := pages[path]; taken || reserved(path) {
			log.Warn("Menu link shadows a built-in page", zap.String("path", path))
			continue
		}
		title, _ := links.Label(path)
		pages[path] = title
		admin.GET(path, h.Nav.Page(title))
	}

	nav := r.Group(handlers.NavBasePath)
	{
		// Unload beacons arrive after logout too, so unmount skips the auth check.
		nav.DELETE("/:mount", h.Nav.Unmount)
		nav.POST("/:mount/unmount", h.Nav.Unmount)

		actions := nav.Group("/:mount", requireAuth)
		actions.POST("/user-menu", h.Nav.ToggleUserMenu)
		actions.POST("/focusout", h.Nav.FocusOut)
		actions.POST("/escape", h.Nav.Escape)
		actions.POST("/logout", h.Nav.Logout)
		actions.POST("/condense", h.Nav.ToggleCondensed)
	}
}

// reserved reports whether path belongs to a route that is not an admin page.
func reserved(path string) bool {
	if path == "/" || path == "/health" {
		return true
	}
	for _, prefix := range []string{"/auth/", handlers.NavBasePath + "/", "/assets/"} {
		if strings.HasPrefix(path+"/", prefix) {
			return true
		}
	}
	return false
}
