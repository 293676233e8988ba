package dashboard

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"inkwellcms.org/inkwell-admin/internal/admin/i18n"
	"inkwellcms.org/inkwell-admin/internal/admin/templates/helpers"
	"inkwellcms.org/inkwell-admin/internal/admin/templates/partials"
)

// Index renders the complete dashboard inside the admin shell.
func Index(data PageData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="dashboard"><h1>%s</h1>`, templ.EscapeString(data.Title)); err != nil {
			return err
		}
		if err := StatsFragment(data).Render(ctx, w); err != nil {
			return err
		}
		if err := recentEdits(data).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})

	return partials.Shell(partials.Chrome{
		Title:       data.Title,
		Lang:        data.Lang,
		Breadcrumbs: []partials.Breadcrumb{{Label: data.Title}},
	}, body)
}

// StatsFragment renders the htmx-swappable stat card grid.
func StatsFragment(data PageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var err error
		writef := func(format string, args ...any) {
			if err != nil {
				return
			}
			_, err = fmt.Fprintf(w, format, args...)
		}

		writef(`<div id="dashboard-stats" hx-get="%s" hx-trigger="every %ds" hx-swap="outerHTML">`,
			templ.EscapeString(data.StatsEndpoint), data.PollIntervalSecond)
		if data.StatsFragment.Error != "" {
			writef(`<p class="dashboard__error" role="alert">%s</p>`, templ.EscapeString(data.StatsFragment.Error))
		}
		writef(`<ul class="dashboard__stats">`)
		for _, stat := range data.StatsFragment.Stats {
			writef(`<li class="dashboard__stat dashboard__stat--%s" data-stat-id="%s">`,
				templ.EscapeString(stat.Trend), templ.EscapeString(stat.ID))
			writef(`<span class="dashboard__stat-label">%s</span>`, templ.EscapeString(stat.Label))
			writef(`<span class="dashboard__stat-value">%s</span>`, templ.EscapeString(stat.Value))
			if stat.DeltaText != "" {
				writef(`<span class="dashboard__stat-delta">%s</span>`, templ.EscapeString(stat.DeltaText))
			}
			writef(`</li>`)
		}
		writef(`</ul></div>`)
		return err
	})
}

func recentEdits(data PageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var err error
		writef := func(format string, args ...any) {
			if err != nil {
				return
			}
			_, err = fmt.Fprintf(w, format, args...)
		}

		writef(`<section class="dashboard__recent"><h2>%s</h2>`,
			templ.EscapeString(i18n.T(data.Lang, "dashboard.recent")))
		if len(data.RecentEdits) == 0 {
			writef(`<p class="dashboard__recent-empty">%s</p></section>`,
				templ.EscapeString(i18n.T(data.Lang, "dashboard.recent.empty")))
			return err
		}
		writef(`<ul class="dashboard__recent-list">`)
		for _, edit := range data.RecentEdits {
			status := i18n.T(data.Lang, "history.row.draft")
			tone := "warning"
			if edit.Published {
				status = i18n.T(data.Lang, "history.row.published")
				tone = "success"
			}
			writef(`<li class="dashboard__recent-item" data-edit-id="%s">`, templ.EscapeString(edit.ID))
			writef(`<a href="%s">%s</a>`, templ.EscapeString(edit.HistoryURL), templ.EscapeString(edit.PageTitle))
			writef(` <span class="dashboard__recent-version">v%d</span>`, edit.Version)
			writef(` <span class="%s">%s</span>`, templ.EscapeString(helpers.BadgeClass(tone)), templ.EscapeString(status))
			writef(` <span class="dashboard__recent-author">%s</span>`, templ.EscapeString(edit.Author))
			writef(` <time datetime="%s">%s</time>`,
				templ.EscapeString(edit.EditedAt.UTC().Format("2006-01-02T15:04:05Z07:00")),
				templ.EscapeString(helpers.Date(edit.EditedAt, "2006-01-02 15:04")))
			writef(`</li>`)
		}
		writef(`</ul></section>`)
		return err
	})
}
