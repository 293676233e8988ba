package history

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"inkwellcms.org/inkwell-admin/internal/admin/history"
	"inkwellcms.org/inkwell-admin/internal/admin/i18n"
	"inkwellcms.org/inkwell-admin/internal/admin/markdown"
	"inkwellcms.org/inkwell-admin/internal/admin/templates/partials"
)

// PageData contains the full SSR payload for the version history page.
type PageData struct {
	Title           string
	Lang            string
	Breadcrumbs     []partials.Breadcrumb
	PageID          string
	PageTitle       string
	TableEndpoint   string
	CompareEndpoint string
	List            ListProps
	Compare         *ComparePanelData
	Detail          *DetailData
}

// ComparePanelData feeds the diff panel shown in compare mode.
type ComparePanelData struct {
	From  history.Version
	To    history.Version
	Lines []history.DiffLine
	Lang  string
}

// DetailData previews a single version's content outside compare mode.
type DetailData struct {
	Version history.Version
	Lang    string
}

// BuildPageData assembles the history page payload.
func BuildPageData(basePath, lang string, feed history.Feed, list ListProps) PageData {
	historyPath := fmt.Sprintf("/content/%s/history", feed.PageID)
	return PageData{
		Title:           i18n.T(lang, "history.title"),
		Lang:            lang,
		PageID:          feed.PageID,
		PageTitle:       feed.PageTitle,
		TableEndpoint:   joinBase(basePath, historyPath+"/table"),
		CompareEndpoint: joinBase(basePath, historyPath+"/compare"),
		Breadcrumbs: []partials.Breadcrumb{
			{Label: i18n.T(lang, "nav.content"), Href: joinBase(basePath, "/content")},
			{Label: feed.PageTitle},
		},
		List: list,
	}
}

// Index renders the complete history page inside the admin shell.
func Index(data PageData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.writef(`<section class="history-viewer" data-page-id="%s">`, templ.EscapeString(data.PageID))
		hw.writef(`<header class="history-viewer__heading"><h1>%s</h1><p>%s</p></header>`,
			templ.EscapeString(data.Title),
			templ.EscapeString(i18n.T(data.Lang, "history.description")))
		if hw.err != nil {
			return hw.err
		}

		if err := Table(data).Render(ctx, w); err != nil {
			return err
		}
		if data.Compare != nil {
			if err := ComparePanel(*data.Compare).Render(ctx, w); err != nil {
				return err
			}
		} else if data.Detail != nil {
			if err := DetailPanel(*data.Detail).Render(ctx, w); err != nil {
				return err
			}
		}

		hw.writef(`</section>`)
		return hw.err
	})

	return partials.Shell(partials.Chrome{
		Title:       data.Title,
		Lang:        data.Lang,
		Breadcrumbs: data.Breadcrumbs,
	}, body)
}

// Table renders the htmx-swappable fragment around the version list.
func Table(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.writef(`<div id="history-table" hx-get="%s" hx-trigger="history:refresh from:body" hx-swap="outerHTML">`,
			templ.EscapeString(data.TableEndpoint))
		if hw.err != nil {
			return hw.err
		}
		if len(data.List.Versions) == 0 {
			hw.writef(`<p class="history-viewer__empty">%s</p>`,
				templ.EscapeString(i18n.T(data.Lang, "history.empty")))
		} else if err := VersionList(data.List).Render(ctx, w); err != nil {
			return err
		}
		hw.writef(`</div>`)
		return hw.err
	})
}

// ComparePanel renders the unified diff between the two compared versions.
func ComparePanel(data ComparePanelData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.writef(`<section class="history-viewer__compare" data-compare-from="%d" data-compare-to="%d">`,
			data.From.Version, data.To.Version)
		hw.writef(`<h2>%s</h2>`, templ.EscapeString(i18n.T(data.Lang, "history.compare.title")))
		hw.writef(`<p class="history-viewer__compare-range">%d &rarr; %d</p>`, data.From.Version, data.To.Version)
		if len(data.Lines) == 0 {
			hw.writef(`<p class="history-viewer__compare-empty">%s</p>`,
				templ.EscapeString(i18n.T(data.Lang, "history.compare.empty")))
		} else {
			hw.writef(`<ol class="history-viewer__diff">`)
			for _, line := range data.Lines {
				hw.writef(`<li class="history-viewer__diff-line history-viewer__diff-line--%s">%s</li>`,
					line.Kind, templ.EscapeString(line.Text))
			}
			hw.writef(`</ol>`)
		}
		hw.writef(`</section>`)
		return hw.err
	})
}

// DetailPanel previews the selected version's note and content body.
func DetailPanel(data DetailData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		v := data.Version
		hw := &htmlWriter{w: w}
		hw.writef(`<aside class="history-viewer__detail" data-version="%d">`, v.Version)
		hw.writef(`<h2>%s %d</h2>`, templ.EscapeString(i18n.T(data.Lang, "history.header.version")), v.Version)
		if v.Note != "" {
			hw.writef(`<p class="history-viewer__detail-note">%s</p>`, templ.EscapeString(v.Note))
		}
		hw.writef(`<div class="history-viewer__detail-body">`)
		if hw.err != nil {
			return hw.err
		}
		if err := markdown.Component(v.Body).Render(ctx, w); err != nil {
			return err
		}
		hw.writef(`</div></aside>`)
		return hw.err
	})
}

func joinBase(base, suffix string) string {
	if base == "" || base == "/" {
		return suffix
	}
	return base + suffix
}
