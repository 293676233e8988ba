package history

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DiffLineKind classifies a rendered diff line.
type DiffLineKind string

const (
	DiffContext DiffLineKind = "context"
	DiffAdded   DiffLineKind = "added"
	DiffRemoved DiffLineKind = "removed"
	DiffHunk    DiffLineKind = "hunk"
)

// DiffLine is one display line of a unified diff between two versions.
type DiffLine struct {
	Kind DiffLineKind
	Text string
}

// UnifiedDiff returns the unified diff of the two versions' bodies.
func UnifiedDiff(from, to Version) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(from.Body),
		B:        difflib.SplitLines(to.Body),
		FromFile: fmt.Sprintf("Version %d", from.Version),
		ToFile:   fmt.Sprintf("Version %d", to.Version),
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("history: diff versions %d..%d: %w", from.Version, to.Version, err)
	}
	return text, nil
}

// DiffLines renders the unified diff of two versions as typed display lines.
// Identical bodies yield an empty slice.
func DiffLines(from, to Version) ([]DiffLine, error) {
	text, err := UnifiedDiff(from, to)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	// The file header pair precedes the first hunk marker; body lines that
	// happen to start with "---" or "+++" must survive.
	var lines []DiffLine
	inHeader := true
	for _, raw := range strings.Split(text, "\n") {
		if raw == "" {
			continue
		}
		if inHeader && (strings.HasPrefix(raw, "---") || strings.HasPrefix(raw, "+++")) {
			continue
		}
		switch {
		case strings.HasPrefix(raw, "@@"):
			inHeader = false
			lines = append(lines, DiffLine{Kind: DiffHunk, Text: raw})
		case strings.HasPrefix(raw, "+"):
			lines = append(lines, DiffLine{Kind: DiffAdded, Text: strings.TrimPrefix(raw, "+")})
		case strings.HasPrefix(raw, "-"):
			lines = append(lines, DiffLine{Kind: DiffRemoved, Text: strings.TrimPrefix(raw, "-")})
		default:
			lines = append(lines, DiffLine{Kind: DiffContext, Text: strings.TrimPrefix(raw, " ")})
		}
	}
	return lines, nil
}
