// Package dashboard renders the editorial overview page: content stats and
// the recent version activity feed.
package dashboard

import (
	"fmt"
	"strings"
	"time"

	admindashboard "inkwellcms.org/inkwell-admin/internal/admin/dashboard"
	"inkwellcms.org/inkwell-admin/internal/admin/i18n"
)

// PageData represents the full dashboard SSR payload.
type PageData struct {
	Title              string
	Lang               string
	StatsFragment      StatsFragmentData
	RecentEdits        []RecentEditView
	StatsEndpoint      string
	PollIntervalSecond int
}

// StatsFragmentData holds the stat cards payload.
type StatsFragmentData struct {
	Stats []StatView
	Error string
}

// StatView is the rendered representation of a metric card.
type StatView struct {
	ID        string
	Label     string
	Value     string
	DeltaText string
	Trend     string
	UpdatedAt time.Time
}

// RecentEditView is one row of the recent activity feed, with the resolved
// link into the page's version history.
type RecentEditView struct {
	ID         string
	PageTitle  string
	Version    int
	Author     string
	Published  bool
	EditedAt   time.Time
	HistoryURL string
}

// BuildPageData prepares the template payload for SSR rendering.
func BuildPageData(basePath, lang string, stats []admindashboard.Stat, edits []admindashboard.RecentEdit) PageData {
	return PageData{
		Title:              i18n.T(lang, "dashboard.title"),
		Lang:               lang,
		StatsFragment:      StatsFragmentPayload(stats),
		RecentEdits:        toRecentEditViews(basePath, edits),
		StatsEndpoint:      joinBase(basePath, "/fragments/stats"),
		PollIntervalSecond: 60,
	}
}

// StatsFragmentPayload prepares stat data for rendering.
func StatsFragmentPayload(list []admindashboard.Stat) StatsFragmentData {
	return StatsFragmentData{Stats: toStatViews(list)}
}

func toStatViews(list []admindashboard.Stat) []StatView {
	result := make([]StatView, 0, len(list))
	for _, item := range list {
		result = append(result, StatView{
			ID:        item.ID,
			Label:     item.Label,
			Value:     item.Value,
			DeltaText: item.DeltaText,
			Trend:     string(item.Trend),
			UpdatedAt: item.UpdatedAt,
		})
	}
	return result
}

func toRecentEditViews(basePath string, list []admindashboard.RecentEdit) []RecentEditView {
	result := make([]RecentEditView, 0, len(list))
	for _, item := range list {
		result = append(result, RecentEditView{
			ID:         item.ID,
			PageTitle:  item.PageTitle,
			Version:    item.Version,
			Author:     item.Author,
			Published:  item.Published,
			EditedAt:   item.EditedAt,
			HistoryURL: joinBase(basePath, fmt.Sprintf("/content/%s/history", item.PageID)),
		})
	}
	return result
}

func joinBase(base, suffix string) string {
	base = strings.TrimSpace(base)
	if base == "" || base == "/" {
		base = ""
	}
	if !strings.HasPrefix(suffix, "/") {
		suffix = "/" + suffix
	}
	path := base + suffix
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}
