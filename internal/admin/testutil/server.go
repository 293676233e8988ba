package testutil

import (
	"net/http/httptest"
	"testing"

	"inkwellcms.org/inkwell-admin/internal/admin/dashboard"
	"inkwellcms.org/inkwell-admin/internal/admin/history"
	"inkwellcms.org/inkwell-admin/internal/admin/httpserver"
	"inkwellcms.org/inkwell-admin/internal/admin/httpserver/middleware"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithAuthenticator overrides the authenticator used by the admin server.
func WithAuthenticator(auth middleware.Authenticator) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Authenticator = auth
	}
}

// WithBasePath sets a custom base path for the admin routes.
func WithBasePath(path string) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.BasePath = path
	}
}

// WithHistoryService wires a custom history service implementation.
func WithHistoryService(service history.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.HistoryService = service
	}
}

// WithDashboardService wires a custom dashboard service implementation.
func WithDashboardService(service dashboard.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.DashboardService = service
	}
}

// WithEnvironment sets the environment label rendered in the admin chrome.
func WithEnvironment(env string) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Environment = env
	}
}

// NewServer constructs an httptest server running the admin HTTP stack with sensible defaults.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		Address:          ":0",
		BasePath:         "/admin",
		LoginPath:        "",
		CSRFCookieName:   "csrf_token",
		CSRFHeaderName:   "X-CSRF-Token",
		SessionHashKey:   []byte("test-session-hash-key-0123456789"),
		Authenticator:    middleware.DefaultAuthenticator(),
		HistoryService:   history.NewStaticService(),
		DashboardService: dashboard.NewStaticService(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	srv := httpserver.New(cfg)
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
