package dashboard

import (
	"context"
	"errors"
	"time"
)

// ErrNotConfigured indicates the dashboard service dependency has not been provided.
var ErrNotConfigured = errors.New("dashboard service not configured")

// Service exposes data retrieval for the editorial dashboard.
type Service interface {
	// FetchStats returns summary metrics for the content inventory.
	FetchStats(ctx context.Context, token string) ([]Stat, error)
	// FetchRecentEdits returns the most recent version activity across pages.
	FetchRecentEdits(ctx context.Context, token string, limit int) ([]RecentEdit, error)
}

// Stat represents a dashboard metric card.
type Stat struct {
	ID        string
	Label     string
	Value     string
	DeltaText string
	Trend     Trend
	UpdatedAt time.Time
}

// Trend describes the direction of a stat delta.
type Trend string

const (
	// TrendFlat indicates no significant change.
	TrendFlat Trend = "flat"
	// TrendUp indicates a positive change.
	TrendUp Trend = "up"
	// TrendDown indicates a negative change.
	TrendDown Trend = "down"
)

// RecentEdit is one row of the recent version activity feed.
type RecentEdit struct {
	ID        string
	PageID    string
	PageTitle string
	Version   int
	Author    string
	Published bool
	EditedAt  time.Time
}
