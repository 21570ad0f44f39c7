package handlers

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/FACorreiaa/cms-admin/internal/app/designsystem"
	"github.com/FACorreiaa/cms-admin/internal/app/domain/auth"
	"github.com/FACorreiaa/cms-admin/internal/app/middleware"
	"github.com/FACorreiaa/cms-admin/internal/app/navpanel"
	"github.com/FACorreiaa/cms-admin/internal/app/observability/metrics"
	"github.com/FACorreiaa/cms-admin/internal/app/preferences"
	"github.com/FACorreiaa/cms-admin/internal/pkg/i18n"
)

// NavBasePath prefixes every panel action endpoint.
const NavBasePath = "/nav"

type NavDeps struct {
	Mounts      *navpanel.Mounts
	Widgets     navpanel.Widgets
	Preferences preferences.Resolver
	Links       navpanel.LinkSource
	Config      navpanel.Configuration
	Logger      *zap.Logger
}

// NavHandler serves the admin shell pages and the events of their navigation panels.
type NavHandler struct {
	*BaseHandler
	deps NavDeps
}

func NewNavHandler(deps NavDeps) *NavHandler {
	base := NewBaseHandler(deps.Logger)
	deps.Logger = base.Logger
	return &NavHandler{BaseHandler: base, deps: deps}
}

func (h *NavHandler) panel(c *gin.Context, id uuid.UUID, state *navpanel.UIState) *navpanel.Panel {
	var prefs navpanel.PreferenceStore
	if h.deps.Preferences != nil {
		prefs = h.deps.Preferences(c)
	}
	var user navpanel.UserInfo
	if u := middleware.GetUserFromContext(c); u != nil {
		user = u
	}

	return navpanel.New(navpanel.Options{
		Widgets:     h.deps.Widgets,
		State:       state,
		Actions:     navpanel.ActionsFor(NavBasePath, id),
		Preferences: prefs,
		Session:     auth.NewSessionStorage(c, h.Logger),
		User:        user,
		Config:      h.deps.Config,
		Localizer:   i18n.FromContext(c),
		Links:       h.deps.Links,
		CurrentPath: currentPath(c),
		Logger:      h.Logger.With(zap.String("mount_id", id.String())),
	})
}

// currentPath is the page the panel lives on. htmx requests report it in
// HX-Current-URL since their own path is the action endpoint.
func currentPath(c *gin.Context) string {
	if raw := c.GetHeader("HX-Current-URL"); raw != "" {
		if u, err := url.Parse(raw); err == nil {
			return u.Path
		}
	}
	return c.Request.URL.Path
}

// Page returns a handler that mounts a fresh panel and renders the admin shell
// with title as the screen heading.
func (h *NavHandler) Page(title navpanel.Message) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, state := h.deps.Mounts.Mount()
		p := h.panel(c, id, state)
		p.Mount(ctx)
		metrics.Get().NavMountsTotal.Add(ctx, 1)

		loc := i18n.FromContext(c)
		heading := loc.FormatMessage(title.ID, title.DefaultMessage)
		h.Render(c, http.StatusOK, designsystem.Templ(adminPage(pageProps{
			Title:    heading,
			Language: loc.Tag().String(),
			Nav:      h.timed(ctx, p),
			Content:  screen(heading),
		})))
	}
}

// timed renders the panel eagerly so its duration lands in the histogram.
func (h *NavHandler) timed(ctx context.Context, p *navpanel.Panel) g.Node {
	start := time.Now()
	n := p.Render()
	metrics.Get().NavRenderDuration.Record(ctx, time.Since(start).Seconds())
	return n
}

// lookup resolves the :mount parameter. It writes the error response itself
// and reports false when the request cannot continue. The panel carries the
// condensed flag read by Page, the preference store is not consulted again.
func (h *NavHandler) lookup(c *gin.Context) (uuid.UUID, *navpanel.Panel, bool) {
	id, err := uuid.Parse(c.Param("mount"))
	if err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return uuid.Nil, nil, false
	}
	state, err := h.deps.Mounts.Lookup(id)
	if err != nil {
		h.Logger.Debug("Navigation panel action for unknown mount", zap.String("mount_id", id.String()))
		c.Header("HX-Refresh", "true")
		c.AbortWithStatus(http.StatusNotFound)
		return uuid.Nil, nil, false
	}
	return id, h.panel(c, id, state), true
}

func (h *NavHandler) fragment(c *gin.Context, p *navpanel.Panel) {
	h.Render(c, http.StatusOK, designsystem.Templ(h.timed(c.Request.Context(), p)))
}

func (h *NavHandler) ToggleUserMenu(c *gin.Context) {
	_, p, ok := h.lookup(c)
	if !ok {
		return
	}
	open := p.ToggleUserMenu()
	metrics.Get().NavUserMenuToggles.Add(c.Request.Context(), 1,
		metric.WithAttributes(attribute.Bool("open", open), attribute.String("trigger", "button")))
	h.fragment(c, p)
}

func (h *NavHandler) FocusOut(c *gin.Context) {
	_, p, ok := h.lookup(c)
	if !ok {
		return
	}
	var change navpanel.FocusChange
	if err := c.ShouldBind(&change); err != nil {
		h.Logger.Debug("Invalid focus change", zap.Error(err))
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	if !p.FocusOut(change) {
		// swapping the nav would replace the element that just took focus
		c.Header("HX-Reswap", "none")
		c.Status(http.StatusNoContent)
		return
	}
	metrics.Get().NavUserMenuToggles.Add(c.Request.Context(), 1,
		metric.WithAttributes(attribute.Bool("open", false), attribute.String("trigger", "focusout")))
	h.fragment(c, p)
}

func (h *NavHandler) Escape(c *gin.Context) {
	_, p, ok := h.lookup(c)
	if !ok {
		return
	}
	open := p.Escape()
	metrics.Get().NavUserMenuToggles.Add(c.Request.Context(), 1,
		metric.WithAttributes(attribute.Bool("open", open), attribute.String("trigger", "escape")))
	h.fragment(c, p)
}

func (h *NavHandler) Logout(c *gin.Context) {
	id, p, ok := h.lookup(c)
	if !ok {
		return
	}
	p.Logout()
	h.deps.Mounts.Unmount(id)
	metrics.Get().NavLogoutsTotal.Add(c.Request.Context(), 1)
	h.Logger.Info("User logged out from navigation panel", zap.String("mount_id", id.String()))

	if middleware.IsHTMX(c) {
		c.Header("HX-Redirect", navpanel.LoginPath)
		c.Status(http.StatusOK)
		return
	}
	c.Redirect(http.StatusFound, navpanel.LoginPath)
}

func (h *NavHandler) ToggleCondensed(c *gin.Context) {
	_, p, ok := h.lookup(c)
	if !ok {
		return
	}
	condensed, err := p.ToggleCondensed(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to persist navbar preference", zap.Error(err))
		metrics.Get().PreferenceErrorsTotal.Add(c.Request.Context(), 1)
		c.Header("HX-Reswap", "none")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	metrics.Get().NavCondenseToggles.Add(c.Request.Context(), 1,
		metric.WithAttributes(attribute.Bool("condensed", condensed)))
	h.fragment(c, p)
}

// Unmount discards the panel state. Unknown mounts are ignored so page unload
// beacons never error.
func (h *NavHandler) Unmount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("mount"))
	if err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	h.deps.Mounts.Unmount(id)
	c.Status(http.StatusNoContent)
}
