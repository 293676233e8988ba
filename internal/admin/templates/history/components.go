package history

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"inkwellcms.org/inkwell-admin/internal/admin/history"
	"inkwellcms.org/inkwell-admin/internal/admin/i18n"
	"inkwellcms.org/inkwell-admin/internal/admin/templates/helpers"
)

// Components is the capability set of collaborator renderers the version list
// delegates to. Nil fields fall back to the defaults shipped with this
// package; callers may override any subset.
type Components struct {
	Alert          func(m history.Message, lang string) templ.Component
	Header         func(compareModeAvailable bool, lang string) templ.Component
	FullVersionRow func(p FullRowProps) templ.Component
	SnapshotRow    func(p RowProps) templ.Component
}

func (c Components) withDefaults() Components {
	if c.Alert == nil {
		c.Alert = DefaultAlert
	}
	if c.Header == nil {
		c.Header = DefaultHeader
	}
	if c.FullVersionRow == nil {
		c.FullVersionRow = DefaultFullVersionRow
	}
	if c.SnapshotRow == nil {
		c.SnapshotRow = DefaultSnapshotRow
	}
	return c
}

// VersionList renders the message panel followed by the version table: the
// header (when enabled) and one row per version in input order. Full versions
// dispatch to the full-version row component, snapshots to the snapshot row
// component. No filtering, sorting, or pagination happens here.
func VersionList(props ListProps) templ.Component {
	comps := props.Components.withDefaults()
	extraClass := props.ExtraClass
	if extraClass == nil {
		extraClass = DefaultExtraClass
	}
	if props.Lang == "" {
		props.Lang = i18n.DefaultLang
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := MessagePanel(props.Messages, props.Lang, comps.Alert).Render(ctx, w); err != nil {
			return err
		}

		hw := &htmlWriter{w: w}
		hw.writef(`<ul class="%s" role="table">`, templ.EscapeString(ListClassName(extraClass, props.ShowHeader)))
		if hw.err != nil {
			return hw.err
		}

		if props.ShowHeader {
			if err := comps.Header(props.CompareModeAvailable, props.Lang).Render(ctx, w); err != nil {
				return err
			}
		}

		for _, v := range props.Versions {
			active := IsVersionActive(v, props.State)
			var row templ.Component
			if v.IsFullVersion {
				row = comps.FullVersionRow(FullRowProps{
					Version:              v,
					Active:               active,
					Compare:              props.State,
					CompareModeAvailable: props.CompareModeAvailable,
					Lang:                 props.Lang,
					Now:                  props.Now,
				})
			} else {
				row = comps.SnapshotRow(RowProps{
					Version: v,
					Active:  active,
					Lang:    props.Lang,
					Now:     props.Now,
				})
			}
			if err := row.Render(ctx, w); err != nil {
				return err
			}
		}

		hw.writef(`</ul>`)
		return hw.err
	})
}

// MessagePanel wraps one alert per message in input order. An empty message
// slice renders nothing at all.
func MessagePanel(messages []history.Message, lang string, alert func(history.Message, string) templ.Component) templ.Component {
	if alert == nil {
		alert = DefaultAlert
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(messages) == 0 {
			return nil
		}
		hw := &htmlWriter{w: w}
		hw.writef(`<div class="history-viewer__messages">`)
		if hw.err != nil {
			return hw.err
		}
		for _, m := range messages {
			if err := alert(m, lang).Render(ctx, w); err != nil {
				return err
			}
		}
		hw.writef(`</div>`)
		return hw.err
	})
}

// DefaultAlert renders a dismissible alert row for one message.
func DefaultAlert(m history.Message, lang string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.writef(`<div class="history-viewer__message alert alert--%s" data-message-id="%s">`,
			templ.EscapeString(string(m.Type)), templ.EscapeString(m.ID))
		hw.writef(`<span class="alert__text">%s</span>`, templ.EscapeString(m.Text))
		hw.writef(`<button type="button" class="alert__close" aria-label="%s">&times;</button>`,
			templ.EscapeString(i18n.T(lang, "history.alert.close")))
		hw.writef(`</div>`)
		return hw.err
	})
}

// DefaultHeader renders the column header row. The compare column only
// appears when compare mode is available.
func DefaultHeader(compareModeAvailable bool, lang string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.writef(`<li class="history-viewer__row history-viewer__row--header" role="row">`)
		hw.writef(`<span class="history-viewer__cell history-viewer__cell--version" role="columnheader">%s</span>`,
			templ.EscapeString(i18n.T(lang, "history.header.version")))
		hw.writef(`<span class="history-viewer__cell" role="columnheader">%s</span>`,
			templ.EscapeString(i18n.T(lang, "history.header.record")))
		hw.writef(`<span class="history-viewer__cell" role="columnheader">%s</span>`,
			templ.EscapeString(i18n.T(lang, "history.header.author")))
		if compareModeAvailable {
			hw.writef(`<span class="history-viewer__cell history-viewer__cell--compare" role="columnheader">%s</span>`,
				templ.EscapeString(i18n.T(lang, "history.header.compare")))
		}
		hw.writef(`</li>`)
		return hw.err
	})
}

// DefaultFullVersionRow renders a full version entry with its publication
// badge, author, edit time, and compare affordance.
func DefaultFullVersionRow(p FullRowProps) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		v := p.Version
		badgeLabel, badgeTone := statusBadge(v, p.Lang)

		hw := &htmlWriter{w: w}
		hw.writef(`<li class="%s" role="row" data-key="%s" data-version="%d" aria-selected="%t"`,
			templ.EscapeString(rowClass("full", p.Active)), templ.EscapeString(RowKey(v)), v.Version, p.Active)
		if role := compareRole(v, p.Compare); role != "" {
			hw.writef(` data-compare-role="%s"`, role)
		}
		hw.writef(`>`)

		hw.writef(`<span class="history-viewer__cell history-viewer__cell--version" role="cell">%d</span>`, v.Version)
		hw.writef(`<span class="history-viewer__cell" role="cell">`)
		hw.writef(`<span class="%s">%s</span>`, templ.EscapeString(helpers.BadgeClass(badgeTone)), templ.EscapeString(badgeLabel))
		if v.Note != "" {
			hw.writef(` <span class="history-viewer__note">%s</span>`, templ.EscapeString(v.Note))
		}
		hw.writef(`</span>`)
		hw.writef(`<span class="history-viewer__cell history-viewer__cell--author" role="cell">%s</span>`,
			templ.EscapeString(v.Author))
		hw.writef(`<span class="history-viewer__cell history-viewer__cell--time" role="cell" title="%s">%s</span>`,
			templ.EscapeString(helpers.Date(v.LastEdited, "2006-01-02 15:04")),
			templ.EscapeString(helpers.Relative(v.LastEdited, p.Now)))
		if p.CompareModeAvailable {
			hw.writef(`<span class="history-viewer__cell history-viewer__cell--compare" role="cell">`)
			hw.writef(`<button type="button" class="history-viewer__compare-select" data-version="%d">&#8644;</button>`, v.Version)
			hw.writef(`</span>`)
		}
		hw.writef(`</li>`)
		return hw.err
	})
}

// DefaultSnapshotRow renders a snapshot entry. Snapshots carry no publication
// state and receive no comparison context.
func DefaultSnapshotRow(p RowProps) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		v := p.Version

		hw := &htmlWriter{w: w}
		hw.writef(`<li class="%s" role="row" data-key="%s" data-version="%d" aria-selected="%t">`,
			templ.EscapeString(rowClass("snapshot", p.Active)), templ.EscapeString(RowKey(v)), v.Version, p.Active)
		hw.writef(`<span class="history-viewer__cell history-viewer__cell--version" role="cell">%d</span>`, v.Version)
		hw.writef(`<span class="history-viewer__cell" role="cell">%s</span>`,
			templ.EscapeString(i18n.T(p.Lang, "history.row.snapshot")))
		hw.writef(`<span class="history-viewer__cell history-viewer__cell--author" role="cell">%s</span>`,
			templ.EscapeString(v.Author))
		hw.writef(`<span class="history-viewer__cell history-viewer__cell--time" role="cell" title="%s">%s</span>`,
			templ.EscapeString(helpers.Date(v.LastEdited, "2006-01-02 15:04")),
			templ.EscapeString(helpers.Relative(v.LastEdited, p.Now)))
		hw.writef(`</li>`)
		return hw.err
	})
}

// htmlWriter accumulates the first write error so component bodies stay flat.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) writef(format string, args ...any) {
	if hw.err != nil {
		return
	}
	_, hw.err = fmt.Fprintf(hw.w, format, args...)
}
