// Package partials holds the shared page chrome used by every admin page:
// the document shell, topbar, navigation rail, and breadcrumbs.
package partials

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"inkwellcms.org/inkwell-admin/internal/admin/httpserver/middleware"
	"inkwellcms.org/inkwell-admin/internal/admin/i18n"
	"inkwellcms.org/inkwell-admin/internal/admin/rbac"
	"inkwellcms.org/inkwell-admin/internal/admin/templates/helpers"
)

// Breadcrumb is one entry of the breadcrumb trail. A Breadcrumb without Href
// renders as the current page.
type Breadcrumb struct {
	Label string
	Href  string
}

// Chrome configures the document shell around a page body.
type Chrome struct {
	Title       string
	Lang        string
	Breadcrumbs []Breadcrumb
}

type navItem struct {
	labelKey   string
	href       string
	capability rbac.Capability
	prefix     bool
}

// Shell wraps the body component in the full admin document: head, topbar
// with environment badge, navigation rail, and breadcrumb trail.
func Shell(chrome Chrome, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := chrome.Lang
		if lang == "" {
			lang = i18n.DefaultLang
		}
		base := middleware.BasePathFromContext(ctx)
		brand := i18n.T(lang, "brand.name")

		title := chrome.Title
		if title == "" {
			title = brand
		} else {
			title = title + " | " + brand
		}

		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="` + templ.EscapeString(lang) + `"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString(`<title>` + templ.EscapeString(title) + `</title>`)
		b.WriteString(`<link rel="stylesheet" href="/public/static/css/admin.css">`)
		b.WriteString(`<script src="/public/static/js/history.js" defer></script>`)
		b.WriteString(`</head><body class="bg-slate-50 text-slate-900">`)

		b.WriteString(`<header class="admin-topbar" data-environment-badge>`)
		b.WriteString(`<a class="admin-topbar__brand" href="` + templ.EscapeString(rootHref(base)) + `">` + templ.EscapeString(brand) + `</a>`)
		env := middleware.EnvironmentFromContext(ctx)
		b.WriteString(`<span class="admin-topbar__environment" aria-hidden="true">` + templ.EscapeString(environmentBadge(env)) + `</span>`)
		b.WriteString(`</header>`)

		b.WriteString(`<div class="admin-layout">`)
		writeNav(ctx, &b, base, lang)

		b.WriteString(`<main class="admin-main">`)
		writeBreadcrumbs(&b, chrome.Breadcrumbs)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</main></div></body></html>`)
		return err
	})
}

func writeNav(ctx context.Context, b *strings.Builder, base, lang string) {
	items := []navItem{
		{labelKey: "nav.dashboard", href: rootHref(base), capability: rbac.CapDashboardView},
		{labelKey: "nav.history", href: joinBase(base, "/content/page-4021/history"), capability: rbac.CapHistoryView, prefix: true},
	}

	b.WriteString(`<nav class="admin-nav" aria-label="Admin">`)
	b.WriteString(`<ul class="admin-nav__list">`)
	for _, item := range items {
		if !helpers.HasCapability(ctx, string(item.capability)) {
			continue
		}
		active := helpers.NavActive(ctx, item.href, item.prefix)
		b.WriteString(`<li><a class="` + templ.EscapeString(helpers.NavClass(active)) + `" href="` + templ.EscapeString(item.href) + `"`)
		if active {
			b.WriteString(` aria-current="page"`)
		}
		b.WriteString(`>` + templ.EscapeString(i18n.T(lang, item.labelKey)) + `</a></li>`)
	}
	b.WriteString(`</ul></nav>`)
}

func writeBreadcrumbs(b *strings.Builder, crumbs []Breadcrumb) {
	if len(crumbs) == 0 {
		return
	}
	b.WriteString(`<ol class="admin-breadcrumbs">`)
	for _, crumb := range crumbs {
		if crumb.Href != "" {
			fmt.Fprintf(b, `<li><a href="%s">%s</a></li>`, templ.EscapeString(crumb.Href), templ.EscapeString(crumb.Label))
			continue
		}
		fmt.Fprintf(b, `<li aria-current="page">%s</li>`, templ.EscapeString(crumb.Label))
	}
	b.WriteString(`</ol>`)
}

func environmentBadge(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "production":
		return "PRD"
	case "staging":
		return "STG"
	default:
		return "DEV"
	}
}

func rootHref(base string) string {
	if strings.TrimSpace(base) == "" {
		return "/"
	}
	return base
}

func joinBase(base, suffix string) string {
	base = strings.TrimSpace(base)
	if base == "" || base == "/" {
		return suffix
	}
	return strings.TrimRight(base, "/") + suffix
}
