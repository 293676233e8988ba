// Package ui holds the HTTP handlers for admin pages and htmx fragments.
package ui

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/rs/zerolog/log"

	"inkwellcms.org/inkwell-admin/internal/admin/dashboard"
	"inkwellcms.org/inkwell-admin/internal/admin/history"
	custommw "inkwellcms.org/inkwell-admin/internal/admin/httpserver/middleware"
	dashboardtpl "inkwellcms.org/inkwell-admin/internal/admin/templates/dashboard"
)

// Dependencies collects external services required by the UI handlers.
type Dependencies struct {
	HistoryService   history.Service
	DashboardService dashboard.Service
}

// Handlers exposes HTTP handlers for admin UI pages and fragments.
type Handlers struct {
	history   history.Service
	dashboard dashboard.Service
}

// NewHandlers wires the UI handler set. Missing services fall back to the
// static in-memory implementations.
func NewHandlers(deps Dependencies) *Handlers {
	historyService := deps.HistoryService
	if historyService == nil {
		historyService = history.NewStaticService()
	}
	dashboardService := deps.DashboardService
	if dashboardService == nil {
		dashboardService = dashboard.NewStaticService()
	}
	return &Handlers{
		history:   historyService,
		dashboard: dashboardService,
	}
}

// Dashboard renders the editorial overview page.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := custommw.UserFromContext(ctx)
	if !ok || user == nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	lang := requestLang(r)
	basePath := custommw.BasePathFromContext(ctx)

	stats, statsErr := h.dashboard.FetchStats(ctx, user.Token)
	if statsErr != nil {
		log.Error().Err(statsErr).Msg("dashboard: fetch stats failed")
	}
	edits, err := h.dashboard.FetchRecentEdits(ctx, user.Token, 10)
	if err != nil {
		log.Error().Err(err).Msg("dashboard: fetch recent edits failed")
		edits = nil
	}

	page := dashboardtpl.BuildPageData(basePath, lang, stats, edits)
	if statsErr != nil {
		page.StatsFragment.Error = "Stats are temporarily unavailable."
	}
	templ.Handler(dashboardtpl.Index(page)).ServeHTTP(w, r)
}

// DashboardStats renders the stat card fragment for htmx polling.
func (h *Handlers) DashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := custommw.UserFromContext(ctx)
	if !ok || user == nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	lang := requestLang(r)
	basePath := custommw.BasePathFromContext(ctx)

	stats, err := h.dashboard.FetchStats(ctx, user.Token)
	page := dashboardtpl.BuildPageData(basePath, lang, stats, nil)
	if err != nil {
		log.Error().Err(err).Msg("dashboard: fetch stats failed")
		page.StatsFragment.Error = "Stats are temporarily unavailable."
	}
	templ.Handler(dashboardtpl.StatsFragment(page)).ServeHTTP(w, r)
}
