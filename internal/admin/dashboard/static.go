package dashboard

import (
	"context"
	"time"
)

var staticNow = time.Date(2026, time.August, 24, 9, 0, 0, 0, time.UTC)

// StaticService provides canned responses for development and tests.
type StaticService struct {
	Stats       []Stat
	RecentEdits []RecentEdit
}

// NewStaticService returns a StaticService populated with sample data.
func NewStaticService() *StaticService {
	defaultStats := []Stat{
		{
			ID:        "pages",
			Label:     "Published pages",
			Value:     "482",
			DeltaText: "+6 this week",
			Trend:     TrendUp,
			UpdatedAt: staticNow,
		},
		{
			ID:        "drafts",
			Label:     "Open drafts",
			Value:     "37",
			DeltaText: "4 awaiting review",
			Trend:     TrendFlat,
			UpdatedAt: staticNow,
		},
		{
			ID:        "versions",
			Label:     "Versions recorded",
			Value:     "12,940",
			DeltaText: "+118 this week",
			Trend:     TrendUp,
			UpdatedAt: staticNow,
		},
		{
			ID:        "reverts",
			Label:     "Reverts this month",
			Value:     "9",
			DeltaText: "-3 vs last month",
			Trend:     TrendDown,
			UpdatedAt: staticNow,
		},
	}

	defaultEdits := []RecentEdit{
		{
			ID:        "edit-210",
			PageID:    "page-4021",
			PageTitle: "Sustainability guide",
			Version:   12,
			Author:    "Mari Ishida",
			Published: true,
			EditedAt:  staticNow.Add(-40 * time.Hour),
		},
		{
			ID:        "edit-188",
			PageID:    "page-4021",
			PageTitle: "Sustainability guide",
			Version:   10,
			Author:    "Tom Okabe",
			EditedAt:  staticNow.Add(-70 * time.Hour),
		},
		{
			ID:        "edit-301",
			PageID:    "page-5188",
			PageTitle: "Press kit",
			Version:   3,
			Author:    "Elena Wirth",
			Published: true,
			EditedAt:  staticNow.Add(-90 * time.Hour),
		},
	}

	return &StaticService{
		Stats:       defaultStats,
		RecentEdits: defaultEdits,
	}
}

// FetchStats returns configured stat cards.
func (s *StaticService) FetchStats(ctx context.Context, token string) ([]Stat, error) {
	if len(s.Stats) == 0 {
		return []Stat{}, nil
	}
	return s.Stats, nil
}

// FetchRecentEdits returns configured recent edit entries.
func (s *StaticService) FetchRecentEdits(ctx context.Context, token string, limit int) ([]RecentEdit, error) {
	if limit > 0 && len(s.RecentEdits) > limit {
		return s.RecentEdits[:limit], nil
	}
	return s.RecentEdits, nil
}
