package ui

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"inkwellcms.org/inkwell-admin/internal/admin/history"
	custommw "inkwellcms.org/inkwell-admin/internal/admin/httpserver/middleware"
	"inkwellcms.org/inkwell-admin/internal/admin/i18n"
	historytpl "inkwellcms.org/inkwell-admin/internal/admin/templates/history"
)

const defaultHistoryLimit = 50

// HistoryPage renders the full version history page for a content page.
func (h *Handlers) HistoryPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := custommw.UserFromContext(ctx)
	if !ok || user == nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	req := buildHistoryRequest(r)
	page, err := h.buildHistoryPage(r, user.Token, req)
	if err != nil {
		writeHistoryError(w, err)
		return
	}

	templ.Handler(historytpl.Index(page)).ServeHTTP(w, r)
}

// HistoryTable renders the version table fragment for htmx requests.
func (h *Handlers) HistoryTable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := custommw.UserFromContext(ctx)
	if !ok || user == nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	req := buildHistoryRequest(r)
	page, err := h.buildHistoryPage(r, user.Token, req)
	if err != nil {
		writeHistoryError(w, err)
		return
	}

	basePath := custommw.BasePathFromContext(ctx)
	if canonical := canonicalHistoryURL(basePath, req); canonical != "" {
		w.Header().Set("HX-Push-Url", canonical)
	}

	templ.Handler(historytpl.Table(page)).ServeHTTP(w, r)
}

// HistoryCompare renders the diff panel fragment for two selected versions.
func (h *Handlers) HistoryCompare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := custommw.UserFromContext(ctx)
	if !ok || user == nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	req := buildHistoryRequest(r)
	if req.from <= 0 || req.to <= 0 {
		http.Error(w, "both from and to versions are required", http.StatusBadRequest)
		return
	}

	from, err := h.history.GetVersion(ctx, user.Token, req.pageID, req.from)
	if err != nil {
		writeHistoryError(w, err)
		return
	}
	to, err := h.history.GetVersion(ctx, user.Token, req.pageID, req.to)
	if err != nil {
		writeHistoryError(w, err)
		return
	}

	lines, err := history.DiffLines(from, to)
	if err != nil {
		log.Error().Err(err).Str("page_id", req.pageID).Msg("history: diff failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	panel := historytpl.ComparePanelData{From: from, To: to, Lines: lines, Lang: req.lang}
	templ.Handler(historytpl.ComparePanel(panel)).ServeHTTP(w, r)
}

// HistoryRevert records a historical version as a new draft and redirects back
// to the history page.
func (h *Handlers) HistoryRevert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := custommw.UserFromContext(ctx)
	if !ok || user == nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}

	pageID := chi.URLParam(r, "pageID")
	number, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("version")))
	if err != nil || number <= 0 {
		http.Error(w, "a version number is required", http.StatusBadRequest)
		return
	}

	reverted, err := h.history.Revert(ctx, user.Token, pageID, number)
	if err != nil {
		writeHistoryError(w, err)
		return
	}

	log.Info().
		Str("page_id", pageID).
		Int("source_version", number).
		Int("new_version", reverted.Version).
		Str("uid", user.UID).
		Msg("history: version reverted")

	basePath := custommw.BasePathFromContext(ctx)
	target := joinBasePath(basePath, "/content/"+url.PathEscape(pageID)+"/history") + "?notice=reverted"

	if custommw.IsHTMXRequest(ctx) {
		w.Header().Set("HX-Trigger", "history:refresh")
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

type historyRequest struct {
	pageID   string
	author   string
	selected int
	from     int
	to       int
	notice   string
	lang     string
}

func buildHistoryRequest(r *http.Request) historyRequest {
	values := r.URL.Query()
	return historyRequest{
		pageID:   chi.URLParam(r, "pageID"),
		author:   strings.TrimSpace(values.Get("author")),
		selected: parseVersionParam(values.Get("selected")),
		from:     parseVersionParam(values.Get("from")),
		to:       parseVersionParam(values.Get("to")),
		notice:   strings.TrimSpace(values.Get("notice")),
		lang:     requestLang(r),
	}
}

func (h *Handlers) buildHistoryPage(r *http.Request, token string, req historyRequest) (historytpl.PageData, error) {
	ctx := r.Context()

	feed, err := h.history.ListVersions(ctx, token, history.Query{
		PageID: req.pageID,
		Author: req.author,
		Limit:  defaultHistoryLimit,
	})
	if err != nil {
		return historytpl.PageData{}, err
	}

	current, err := h.history.CurrentVersion(ctx, token, req.pageID)
	if err != nil && !errors.Is(err, history.ErrNotFound) {
		return historytpl.PageData{}, err
	}

	state := historytpl.ViewState{CurrentVersion: current}
	if req.selected > 0 {
		if v, ok := feed.FindVersion(req.selected); ok {
			selected := v
			state.CurrentVersion = &selected
		}
	}

	var compareFrom, compareTo *history.Version
	if req.from > 0 && req.to > 0 {
		vf, okFrom := feed.FindVersion(req.from)
		vt, okTo := feed.FindVersion(req.to)
		if okFrom && okTo {
			compareFrom, compareTo = &vf, &vt
			state.CompareMode = true
			state.VersionFrom = compareFrom
			state.VersionTo = compareTo
		}
	}

	props := historytpl.NewListProps()
	props.Versions = feed.Items
	props.State = state
	props.Lang = req.lang
	props.Now = time.Now()
	if req.notice == "reverted" {
		props.Messages = []history.Message{{
			ID:   "notice-reverted",
			Type: history.MessageSuccess,
			Text: i18n.T(req.lang, "history.revert.success"),
		}}
	}

	basePath := custommw.BasePathFromContext(ctx)
	page := historytpl.BuildPageData(basePath, req.lang, feed, props)

	if state.CompareMode {
		lines, err := history.DiffLines(*compareFrom, *compareTo)
		if err != nil {
			return historytpl.PageData{}, err
		}
		page.Compare = &historytpl.ComparePanelData{
			From:  *compareFrom,
			To:    *compareTo,
			Lines: lines,
			Lang:  req.lang,
		}
	} else if state.CurrentVersion != nil && state.CurrentVersion.Body != "" {
		page.Detail = &historytpl.DetailData{Version: *state.CurrentVersion, Lang: req.lang}
	}

	return page, nil
}

func canonicalHistoryURL(basePath string, req historyRequest) string {
	path := joinBasePath(basePath, "/content/"+url.PathEscape(req.pageID)+"/history")

	values := url.Values{}
	if req.author != "" {
		values.Set("author", req.author)
	}
	if req.selected > 0 {
		values.Set("selected", strconv.Itoa(req.selected))
	}
	if req.from > 0 && req.to > 0 {
		values.Set("from", strconv.Itoa(req.from))
		values.Set("to", strconv.Itoa(req.to))
	}

	if encoded := values.Encode(); encoded != "" {
		return path + "?" + encoded
	}
	return path
}

func parseVersionParam(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0
	}
	return value
}

func requestLang(r *http.Request) string {
	if lang := strings.TrimSpace(r.URL.Query().Get("lang")); lang != "" {
		return i18n.Normalize(lang)
	}
	accept := r.Header.Get("Accept-Language")
	if accept == "" {
		return i18n.DefaultLang
	}
	first := strings.SplitN(accept, ",", 2)[0]
	first = strings.SplitN(first, ";", 2)[0]
	return i18n.Normalize(first)
}

func writeHistoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, history.ErrNotFound):
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	case errors.Is(err, history.ErrNotConfigured):
		log.Error().Err(err).Msg("history: service unavailable")
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
	default:
		log.Error().Err(err).Msg("history: request failed")
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
	}
}
