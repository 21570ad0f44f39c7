package server

import (
	"fmt"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/FACorreiaa/cms-admin/internal/app/middleware"
	"github.com/FACorreiaa/cms-admin/internal/pkg/i18n"
	"github.com/FACorreiaa/cms-admin/internal/routes"
)

const sessionName = "cms_admin_session"

// SetupRouter configures and returns the Gin router with all middleware and routes
func SetupRouter(deps routes.Dependencies, logger *zap.Logger) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(middleware.OTELGinMiddleware(deps.Config.Observability.ServiceName))
	r.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		UTC:        true,
		TimeFormat: time.RFC3339,
		Context:    zapContextFunc(),
		SkipPaths:  []string{"/health"},
	}))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(middleware.SecurityMiddleware(middleware.ImageOrigin(deps.Config.MenuLogo())))

	hashKey, blockKey, err := sessionKeys(deps.Config.Auth.SessionSecret)
	if err != nil {
		return nil, fmt.Errorf("derive session keys: %w", err)
	}
	store := cookie.NewStore(hashKey, blockKey)
	store.Options(sessions.Options{Path: "/", MaxAge: 30 * 24 * 60 * 60, HttpOnly: true})
	r.Use(sessions.Sessions(sessionName, store))
	r.Use(i18n.Middleware())

	routes.Setup(r, deps, logger)

	return r, nil
}

// zapContextFunc adds the request and trace ids to each access log line.
func zapContextFunc() ginzap.Fn {
	return func(c *gin.Context) []zapcore.Field {
		fields := []zapcore.Field{}

		if requestID := c.Writer.Header().Get("X-Request-Id"); requestID != "" {
			fields = append(fields, zap.String("request_id", requestID))
		}

		if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().IsValid() {
			fields = append(fields,
				zap.String("trace_id", span.SpanContext().TraceID().String()),
				zap.String("span_id", span.SpanContext().SpanID().String()),
			)
		}

		if mount := c.Param("mount"); mount != "" {
			fields = append(fields, zap.String("mount_id", mount))
		}

		return fields
	}
}
