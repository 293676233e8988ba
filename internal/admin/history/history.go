package history

import (
	"time"
)

// Version is a single historical record of a content page. Full versions are
// complete saved revisions; snapshots are lighter-weight point-in-time
// captures taken between saves.
type Version struct {
	ID            int
	Version       int
	LastEdited    time.Time
	IsFullVersion bool

	Author    string
	Publisher string
	Published bool
	// Note is an optional author-supplied summary in markdown.
	Note string
	// Body is the markdown payload the version captured, used for diffing.
	Body string
}

// MessageType categorises a transient alert shown above the version list.
type MessageType string

const (
	MessageSuccess MessageType = "success"
	MessageWarning MessageType = "warning"
	MessageError   MessageType = "error"
)

// Message is a transient alert displayed above the history table. Ordering is
// insertion order; the viewer performs no de-duplication or sorting.
type Message struct {
	ID   string
	Type MessageType
	Text string
}

// Query narrows a version listing.
type Query struct {
	PageID string
	Author string
	Limit  int
}

// Feed is the result of listing versions for a page, newest first.
type Feed struct {
	PageID    string
	PageTitle string
	Items     []Version
	Total     int
}

// FindVersion returns the entry with the given version number, if present.
func (f Feed) FindVersion(number int) (Version, bool) {
	for _, v := range f.Items {
		if v.Version == number {
			return v, true
		}
	}
	return Version{}, false
}
