// Package httpserver assembles the admin HTTP server: middleware stack,
// embedded static assets, and the page and fragment routes.
package httpserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"inkwellcms.org/inkwell-admin/internal/admin/dashboard"
	"inkwellcms.org/inkwell-admin/internal/admin/history"
	custommw "inkwellcms.org/inkwell-admin/internal/admin/httpserver/middleware"
	"inkwellcms.org/inkwell-admin/internal/admin/httpserver/ui"
	"inkwellcms.org/inkwell-admin/internal/admin/rbac"
	appsession "inkwellcms.org/inkwell-admin/internal/admin/session"
	"inkwellcms.org/inkwell-admin/public"
)

// Config holds runtime options for the admin HTTP server.
type Config struct {
	Address     string
	BasePath    string
	LoginPath   string
	Environment string

	Authenticator custommw.Authenticator

	SessionHashKey      []byte
	SessionBlockKey     []byte
	SessionCookieSecure bool

	CSRFCookieName   string
	CSRFCookiePath   string
	CSRFCookieSecure bool
	CSRFHeaderName   string

	HistoryService   history.Service
	DashboardService dashboard.Service
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) *http.Server {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(custommw.RequestLog(log.Logger))
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(60 * time.Second))

	staticContent, err := public.StaticFS()
	if err != nil {
		log.Fatal().Err(err).Msg("embed static assets")
	}
	router.Handle("/public/static/*", http.StripPrefix("/public/static/", http.FileServer(http.FS(staticContent))))

	basePath := normalizeBasePath(cfg.BasePath)
	loginPath := resolveLoginPath(basePath, cfg.LoginPath)

	authenticator := cfg.Authenticator
	if authenticator == nil {
		authenticator = custommw.DefaultAuthenticator()
	}

	sessionHashKey := cfg.SessionHashKey
	if len(sessionHashKey) == 0 {
		sessionHashKey = []byte("inkwell-dev-session-hash-key-0001")
	}
	sessions, err := appsession.NewManager(appsession.Config{
		HashKey:      sessionHashKey,
		BlockKey:     cfg.SessionBlockKey,
		CookiePath:   basePath,
		CookieSecure: cfg.SessionCookieSecure,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("configure session manager")
	}

	csrfCfg := custommw.CSRFConfig{
		CookieName: cfg.CSRFCookieName,
		CookiePath: firstNonEmpty(cfg.CSRFCookiePath, basePath),
		HeaderName: cfg.CSRFHeaderName,
		Secure:     cfg.CSRFCookieSecure,
	}

	handlers := ui.NewHandlers(ui.Dependencies{
		HistoryService:   cfg.HistoryService,
		DashboardService: cfg.DashboardService,
	})

	mountAdminRoutes(router, basePath, routeOptions{
		Authenticator: authenticator,
		LoginPath:     loginPath,
		Environment:   cfg.Environment,
		Sessions:      sessions,
		CSRF:          csrfCfg,
		Handlers:      handlers,
	})

	return &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

type routeOptions struct {
	Authenticator custommw.Authenticator
	LoginPath     string
	Environment   string
	Sessions      *appsession.Manager
	CSRF          custommw.CSRFConfig
	Handlers      *ui.Handlers
}

func mountAdminRoutes(router chi.Router, base string, opts routeOptions) {
	auth := newAuthHandlers(opts.Authenticator, base, opts.LoginPath)

	router.Route(base, func(r chi.Router) {
		r.Use(custommw.RequestInfoMiddleware(base))
		r.Use(custommw.Environment(opts.Environment))
		r.Use(custommw.HTMX())
		r.Use(custommw.NoStore())
		r.Use(custommw.Session(opts.Sessions))
		r.Use(custommw.CSRF(opts.CSRF))

		r.Get("/login", auth.LoginForm)
		r.Post("/login", auth.LoginSubmit)
		r.Post("/logout", auth.Logout)

		r.Group(func(r chi.Router) {
			r.Use(custommw.Auth(opts.Authenticator, opts.LoginPath))

			r.With(custommw.RequireCapability(rbac.CapDashboardView)).
				Get("/", opts.Handlers.Dashboard)
			RegisterFragment(r.With(custommw.RequireCapability(rbac.CapDashboardView)),
				"/fragments/stats", opts.Handlers.DashboardStats)

			r.Route("/content/{pageID}/history", func(r chi.Router) {
				r.Use(custommw.RequireCapability(rbac.CapHistoryView))

				r.Get("/", opts.Handlers.HistoryPage)
				RegisterFragment(r, "/table", opts.Handlers.HistoryTable)
				RegisterFragment(r.With(custommw.RequireCapability(rbac.CapHistoryCompare)),
					"/compare", opts.Handlers.HistoryCompare)
				r.With(custommw.RequireCapability(rbac.CapHistoryRevert)).
					Post("/revert", opts.Handlers.HistoryRevert)
			})
		})
	})
}

func normalizeBasePath(path string) string {
	p := strings.TrimSpace(path)
	if p == "" {
		return "/admin"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
	}
	if p == "" {
		return "/"
	}
	return p
}

func resolveLoginPath(base string, override string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	if base == "/" {
		return "/login"
	}
	return base + "/login"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// RegisterFragment registers a GET handler intended for htmx fragment rendering.
func RegisterFragment(r chi.Router, pattern string, handler http.HandlerFunc) {
	r.With(custommw.RequireHTMX()).Get(pattern, handler)
}
