// Package history renders the content version history viewer: a list of full
// versions and snapshots with single-version browsing and a two-version
// compare mode.
package history

import (
	"fmt"
	"time"

	"inkwellcms.org/inkwell-admin/internal/admin/history"
	"inkwellcms.org/inkwell-admin/internal/admin/i18n"
	"inkwellcms.org/inkwell-admin/internal/admin/templates/helpers"
)

// DefaultExtraClass is merged into the list class attribute when the caller
// supplies no extra class of its own.
const DefaultExtraClass = "history-viewer__table"

// headerlessClass marks the list when the header row is hidden.
const headerlessClass = "history-viewer__table--headerless"

// ViewState carries the selection context the viewer derives row highlighting
// from. CompareMode gates only CurrentVersion matching: VersionFrom and
// VersionTo take part in the active check whenever they are set, which
// mirrors how the selection sources are expected to be populated (both nil
// outside compare mode).
type ViewState struct {
	CurrentVersion *history.Version
	CompareMode    bool
	VersionFrom    *history.Version
	VersionTo      *history.Version
}

// IsVersionActive reports whether the given version should be highlighted as
// selected. Equality is by version number only; nil selection sources never
// match.
func IsVersionActive(v history.Version, state ViewState) bool {
	isCurrent := state.CurrentVersion != nil && state.CurrentVersion.Version == v.Version
	isCompareFrom := state.VersionFrom != nil && state.VersionFrom.Version == v.Version
	isCompareTo := state.VersionTo != nil && state.VersionTo.Version == v.Version

	return (!state.CompareMode && isCurrent) || isCompareFrom || isCompareTo
}

// ListProps is the configuration surface of the version list component.
type ListProps struct {
	Versions []history.Version
	Messages []history.Message
	State    ViewState

	// ExtraClass accepts a string, []string, or map[string]bool and is
	// merged verbatim into the list class attribute.
	ExtraClass           any
	ShowHeader           bool
	CompareModeAvailable bool

	Lang       string
	Now        time.Time
	Components Components
}

// NewListProps returns ListProps with the documented defaults applied.
func NewListProps() ListProps {
	return ListProps{
		ExtraClass:           DefaultExtraClass,
		ShowHeader:           true,
		CompareModeAvailable: true,
		Lang:                 i18n.DefaultLang,
	}
}

// ListClassName combines the base table class, the headerless modifier, and
// any caller-supplied extra classes.
func ListClassName(extraClass any, showHeader bool) string {
	return helpers.ClassNames(
		"table",
		map[string]bool{headerlessClass: !showHeader},
		extraClass,
	)
}

// RowKey derives the row identity attribute from the ID and LastEdited pair.
// It keeps a stable association between a version and its rendered row across
// re-renders; it is not a uniqueness guarantee beyond that pair.
func RowKey(v history.Version) string {
	return fmt.Sprintf("%d-%s", v.ID, v.LastEdited.UTC().Format(time.RFC3339))
}

// RowProps is passed to snapshot row components.
type RowProps struct {
	Version history.Version
	Active  bool
	Lang    string
	Now     time.Time
}

// FullRowProps is passed to full-version row components. Unlike snapshots,
// full versions additionally receive the comparison context.
type FullRowProps struct {
	Version              history.Version
	Active               bool
	Compare              ViewState
	CompareModeAvailable bool
	Lang                 string
	Now                  time.Time
}

// compareRole labels a version's part in the active comparison for row markup.
func compareRole(v history.Version, state ViewState) string {
	if state.VersionFrom != nil && state.VersionFrom.Version == v.Version {
		return "from"
	}
	if state.VersionTo != nil && state.VersionTo.Version == v.Version {
		return "to"
	}
	return ""
}

// statusBadge resolves the publication badge label and tone for a full version.
func statusBadge(v history.Version, lang string) (label, tone string) {
	if v.Published {
		return i18n.T(lang, "history.row.published"), "success"
	}
	return i18n.T(lang, "history.row.draft"), "warning"
}

// rowClass builds the class attribute for a version row.
func rowClass(kind string, active bool) string {
	return helpers.ClassNames(
		"history-viewer__row",
		"history-viewer__row--"+kind,
		map[string]bool{"history-viewer__row--active": active},
	)
}
