package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"inkwellcms.org/inkwell-admin/internal/admin/history"
)

func version(number int) *history.Version {
	return &history.Version{
		ID:            100 + number,
		Version:       number,
		LastEdited:    time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC),
		IsFullVersion: true,
	}
}

func TestIsVersionActive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		v     history.Version
		state ViewState
		want  bool
	}{
		{
			name:  "current version outside compare mode",
			v:     *version(12),
			state: ViewState{CurrentVersion: version(12)},
			want:  true,
		},
		{
			name:  "non-current version outside compare mode",
			v:     *version(10),
			state: ViewState{CurrentVersion: version(12)},
			want:  false,
		},
		{
			name:  "current version suppressed in compare mode",
			v:     *version(12),
			state: ViewState{CurrentVersion: version(12), CompareMode: true},
			want:  false,
		},
		{
			name: "compare endpoints active in compare mode",
			v:    *version(10),
			state: ViewState{
				CompareMode: true,
				VersionFrom: version(10),
				VersionTo:   version(12),
			},
			want: true,
		},
		{
			name: "version between compare endpoints",
			v:    *version(11),
			state: ViewState{
				CompareMode: true,
				VersionFrom: version(10),
				VersionTo:   version(12),
			},
			want: false,
		},
		{
			// The from/to selections are not gated on CompareMode: a
			// stale endpoint still matches after compare mode is left.
			name:  "stale compare-from matches outside compare mode",
			v:     *version(10),
			state: ViewState{CompareMode: false, VersionFrom: version(10)},
			want:  true,
		},
		{
			name:  "stale compare-to matches outside compare mode",
			v:     *version(12),
			state: ViewState{CompareMode: false, VersionTo: version(12)},
			want:  true,
		},
		{
			name:  "empty state matches nothing",
			v:     *version(12),
			state: ViewState{},
			want:  false,
		},
		{
			// Identity is the version number, not the record ID.
			name: "matches on version number despite differing IDs",
			v:    history.Version{ID: 999, Version: 12},
			state: ViewState{
				CurrentVersion: &history.Version{ID: 1, Version: 12},
			},
			want: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, IsVersionActive(tc.v, tc.state))
		})
	}
}

func TestListClassName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		extraClass any
		showHeader bool
		want       string
	}{
		{
			name:       "default extra class with header",
			extraClass: DefaultExtraClass,
			showHeader: true,
			want:       "table history-viewer__table",
		},
		{
			name:       "headerless modifier applied",
			extraClass: DefaultExtraClass,
			showHeader: false,
			want:       "table history-viewer__table--headerless history-viewer__table",
		},
		{
			name:       "extra class slice",
			extraClass: []string{"grid", "grid--compact"},
			showHeader: true,
			want:       "table grid grid--compact",
		},
		{
			name:       "extra class map keeps only true keys",
			extraClass: map[string]bool{"wide": true, "narrow": false},
			showHeader: true,
			want:       "table wide",
		},
		{
			name:       "nil extra class",
			extraClass: nil,
			showHeader: true,
			want:       "table",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ListClassName(tc.extraClass, tc.showHeader))
		})
	}
}

func TestRowKey(t *testing.T) {
	t.Parallel()

	v := history.Version{
		ID:         160,
		Version:    8,
		LastEdited: time.Date(2026, time.July, 2, 14, 30, 0, 0, time.UTC),
	}
	require.Equal(t, "160-2026-07-02T14:30:00Z", RowKey(v))

	// The key is tied to ID and edit time, so a new edit yields a new key.
	edited := v
	edited.LastEdited = edited.LastEdited.Add(time.Hour)
	require.NotEqual(t, RowKey(v), RowKey(edited))
}

func TestCompareRole(t *testing.T) {
	t.Parallel()

	state := ViewState{
		CompareMode: true,
		VersionFrom: version(8),
		VersionTo:   version(12),
	}

	require.Equal(t, "from", compareRole(*version(8), state))
	require.Equal(t, "to", compareRole(*version(12), state))
	require.Equal(t, "", compareRole(*version(10), state))
	require.Equal(t, "", compareRole(*version(8), ViewState{}))
}

func TestNewListPropsDefaults(t *testing.T) {
	t.Parallel()

	props := NewListProps()
	require.Equal(t, DefaultExtraClass, props.ExtraClass)
	require.True(t, props.ShowHeader)
	require.True(t, props.CompareModeAvailable)
	require.Equal(t, "en", props.Lang)
}
