// Package markdown renders author-supplied markdown (version notes, content
// bodies) into sanitized HTML for admin templates.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)
	policy = bluemonday.UGCPolicy()
)

// Render converts markdown into sanitized HTML.
func Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("markdown: convert: %w", err)
	}
	return policy.Sanitize(buf.String()), nil
}

// Component returns a templ component rendering the markdown source.
// Conversion errors surface through the component's Render call.
func Component(source string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		html, err := Render(source)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, html)
		return err
	})
}
