package history

import (
	"context"
	"errors"
)

// ErrNotFound indicates the requested page or version does not exist.
var ErrNotFound = errors.New("history: not found")

// ErrNotConfigured indicates the history service dependency has not been provided.
var ErrNotConfigured = errors.New("history service not configured")

// Service exposes version history retrieval for admin UI pages and fragments.
type Service interface {
	// ListVersions returns the recorded versions for a page, newest first.
	ListVersions(ctx context.Context, token string, q Query) (Feed, error)
	// GetVersion returns a single version of a page by version number.
	GetVersion(ctx context.Context, token string, pageID string, number int) (Version, error)
	// CurrentVersion returns the version the page currently serves, or nil
	// when the page has never been published.
	CurrentVersion(ctx context.Context, token string, pageID string) (*Version, error)
	// Revert records a new full version whose content is copied from the
	// given historical version and returns it.
	Revert(ctx context.Context, token string, pageID string, number int) (Version, error)
}
