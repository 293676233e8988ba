package history

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// staticNow anchors the seeded history so rendered timestamps and tests stay
// deterministic across runs.
var staticNow = time.Date(2026, time.August, 24, 9, 0, 0, 0, time.UTC)

// StaticService provides deterministic version history suitable for local
// development and tests.
type StaticService struct {
	mu    sync.RWMutex
	pages map[string]*staticPage
}

type staticPage struct {
	title    string
	versions []Version
	nextID   int
}

// NewStaticService returns a StaticService populated with a representative
// content page and its history.
func NewStaticService() *StaticService {
	svc := &StaticService{pages: make(map[string]*staticPage)}
	svc.pages["page-4021"] = seedGuidePage()
	return svc
}

// ListVersions implements Service. Versions are returned newest first.
func (s *StaticService) ListVersions(_ context.Context, _ string, q Query) (Feed, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	page, ok := s.pages[strings.TrimSpace(q.PageID)]
	if !ok {
		return Feed{}, ErrNotFound
	}

	items := make([]Version, 0, len(page.versions))
	for _, v := range page.versions {
		if q.Author != "" && v.Author != q.Author {
			continue
		}
		items = append(items, v)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Version > items[j].Version
	})
	total := len(items)
	if q.Limit > 0 && len(items) > q.Limit {
		items = items[:q.Limit]
	}

	return Feed{
		PageID:    q.PageID,
		PageTitle: page.title,
		Items:     items,
		Total:     total,
	}, nil
}

// GetVersion implements Service.
func (s *StaticService) GetVersion(_ context.Context, _ string, pageID string, number int) (Version, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	page, ok := s.pages[strings.TrimSpace(pageID)]
	if !ok {
		return Version{}, ErrNotFound
	}
	for _, v := range page.versions {
		if v.Version == number {
			return v, nil
		}
	}
	return Version{}, ErrNotFound
}

// CurrentVersion implements Service. The current version is the newest
// published full version.
func (s *StaticService) CurrentVersion(_ context.Context, _ string, pageID string) (*Version, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	page, ok := s.pages[strings.TrimSpace(pageID)]
	if !ok {
		return nil, ErrNotFound
	}
	var current *Version
	for i := range page.versions {
		v := page.versions[i]
		if !v.IsFullVersion || !v.Published {
			continue
		}
		if current == nil || v.Version > current.Version {
			current = &page.versions[i]
		}
	}
	if current == nil {
		return nil, nil
	}
	clone := *current
	return &clone, nil
}

// Revert implements Service by appending a new full version copied from the
// given historical version.
func (s *StaticService) Revert(_ context.Context, _ string, pageID string, number int) (Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, ok := s.pages[strings.TrimSpace(pageID)]
	if !ok {
		return Version{}, ErrNotFound
	}

	var source *Version
	highest := 0
	for i := range page.versions {
		if page.versions[i].Version == number {
			source = &page.versions[i]
		}
		if page.versions[i].Version > highest {
			highest = page.versions[i].Version
		}
	}
	if source == nil {
		return Version{}, ErrNotFound
	}

	page.nextID++
	reverted := Version{
		ID:            page.nextID,
		Version:       highest + 1,
		LastEdited:    staticNow,
		IsFullVersion: true,
		Author:        source.Author,
		Note:          "Reverted to version " + strconv.Itoa(number),
		Body:          source.Body,
	}
	page.versions = append(page.versions, reverted)
	return reverted, nil
}

func seedGuidePage() *staticPage {
	versions := []Version{
		{
			ID:            160,
			Version:       8,
			LastEdited:    staticNow.Add(-33 * 24 * time.Hour),
			IsFullVersion: true,
			Author:        "Mari Ishida",
			Note:          "Initial draft seeded from the editorial template.",
			Body: strings.Join([]string{
				"# Sustainability guide",
				"",
				"Our studio sources all materials from certified suppliers.",
				"",
				"## Materials",
				"",
				"- Recycled silver",
				"- FSC-certified packaging",
			}, "\n"),
		},
		{
			ID:            171,
			Version:       9,
			LastEdited:    staticNow.Add(-18 * 24 * time.Hour),
			IsFullVersion: false,
			Author:        "Autosave",
			Body: strings.Join([]string{
				"# Sustainability guide",
				"",
				"Our studio sources all materials from certified suppliers.",
				"",
				"## Materials",
				"",
				"- Recycled silver",
				"- Recycled gold",
				"- FSC-certified packaging",
			}, "\n"),
		},
		{
			ID:            188,
			Version:       10,
			LastEdited:    staticNow.Add(-9 * 24 * time.Hour),
			IsFullVersion: true,
			Author:        "Tom Okabe",
			Publisher:     "Mari Ishida",
			Published:     false,
			Note:          "Added the recycled gold programme and reworded the intro.",
			Body: strings.Join([]string{
				"# Sustainability guide",
				"",
				"Every piece we ship is traceable back to a certified supplier.",
				"",
				"## Materials",
				"",
				"- Recycled silver",
				"- Recycled gold",
				"- FSC-certified packaging",
			}, "\n"),
		},
		{
			ID:            194,
			Version:       11,
			LastEdited:    staticNow.Add(-4 * 24 * time.Hour),
			IsFullVersion: false,
			Author:        "Autosave",
			Body: strings.Join([]string{
				"# Sustainability guide",
				"",
				"Every piece we ship is traceable back to a certified supplier.",
				"",
				"## Materials",
				"",
				"- Recycled silver",
				"- Recycled gold",
				"- FSC-certified packaging",
				"",
				"## Repairs",
				"",
				"Lifetime repairs on all engraved items.",
			}, "\n"),
		},
		{
			ID:            210,
			Version:       12,
			LastEdited:    staticNow.Add(-2 * time.Hour),
			IsFullVersion: true,
			Author:        "Mari Ishida",
			Publisher:     "Mari Ishida",
			Published:     true,
			Note:          "Published the repairs programme section.",
			Body: strings.Join([]string{
				"# Sustainability guide",
				"",
				"Every piece we ship is traceable back to a certified supplier.",
				"",
				"## Materials",
				"",
				"- Recycled silver",
				"- Recycled gold",
				"- FSC-certified packaging",
				"",
				"## Repairs",
				"",
				"Lifetime repairs on all engraved items, free of charge.",
			}, "\n"),
		},
	}

	return &staticPage{
		title:    "Sustainability guide",
		versions: versions,
		nextID:   210,
	}
}
