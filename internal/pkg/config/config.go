package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Preference backends understood by PREFERENCES_BACKEND.
const (
	BackendSession  = "session"
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type PostgresConfig struct {
	Host     string
	Port     string
	DB       string
	Username string
	Password string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

type RepositoriesConfig struct {
	Postgres PostgresConfig
}

type AuthConfig struct {
	JWTSecret       string
	TokenExpiration time.Duration
	SessionSecret   string
	// DevLogin enables the built-in login form that signs any display name in.
	DevLogin bool
}

type MenuConfig struct {
	Logo string
	// File is an optional YAML file with the plugin and general link groups.
	File string
}

type ObservabilityConfig struct {
	ServiceName  string
	MetricsAddr  string
	OTLPEndpoint string
	PprofAddr    string
}

type Config struct {
	Repositories       RepositoriesConfig
	Auth               AuthConfig
	Menu               MenuConfig
	Observability      ObservabilityConfig
	ServerPort         string
	PreferencesBackend string
	NavMountTTL        time.Duration
}

func Load() (*Config, error) {
	mountTTL, err := time.ParseDuration(getEnvOrDefault("NAV_MOUNT_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid NAV_MOUNT_TTL: %w", err)
	}
	if mountTTL <= 0 {
		return nil, fmt.Errorf("NAV_MOUNT_TTL must be positive, got %s", mountTTL)
	}
	tokenTTL, err := time.ParseDuration(getEnvOrDefault("JWT_EXPIRATION", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION: %w", err)
	}
	devLogin, err := strconv.ParseBool(getEnvOrDefault("AUTH_DEV_LOGIN", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_DEV_LOGIN: %w", err)
	}

	cfg := &Config{
		Repositories: RepositoriesConfig{
			Postgres: PostgresConfig{
				Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
				Port:     getEnvOrDefault("POSTGRES_PORT", "5454"),
				DB:       getEnvOrDefault("POSTGRES_DB", "cms_admin"),
				Username: getEnvOrDefault("POSTGRES_USER", "postgres"),
				Password: getEnvOrDefault("POSTGRES_PASSWORD", ""),
				SSLMode:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
				MaxConns: 10,
				MinConns: 2,
			},
		},
		Auth: AuthConfig{
			JWTSecret:       getEnvOrDefault("JWT_SECRET_KEY", "default-secret-key-change-in-production-min-32-chars"),
			TokenExpiration: tokenTTL,
			SessionSecret:   getEnvOrDefault("SESSION_SECRET", "default-session-secret-change-me"),
			DevLogin:        devLogin,
		},
		Menu: MenuConfig{
			Logo: getEnvOrDefault("MENU_LOGO", "/assets/static/logo.svg"),
			File: os.Getenv("MENU_FILE"),
		},
		Observability: ObservabilityConfig{
			ServiceName:  getEnvOrDefault("OTEL_SERVICE_NAME", "cms-admin"),
			MetricsAddr:  getEnvOrDefault("METRICS_ADDR", ":9092"),
			OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			PprofAddr:    os.Getenv("PPROF_ADDR"),
		},
		ServerPort:         getEnvOrDefault("SERVER_PORT", "8091"),
		PreferencesBackend: strings.ToLower(getEnvOrDefault("PREFERENCES_BACKEND", BackendSession)),
		NavMountTTL:        mountTTL,
	}

	switch cfg.PreferencesBackend {
	case BackendSession, BackendMemory:
	case BackendPostgres:
		if cfg.Repositories.Postgres.Password == "" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD environment variable is required for the postgres preferences backend")
		}
	default:
		return nil, fmt.Errorf("unknown PREFERENCES_BACKEND %q", cfg.PreferencesBackend)
	}

	return cfg, nil
}

// MenuLogo returns the image reference shown in the navigation brand block.
// An absolute http(s) URL is allowed as an image source by the security headers.
func (c *Config) MenuLogo() string {
	return c.Menu.Logo
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
