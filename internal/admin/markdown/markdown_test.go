package markdown

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderBasicMarkdown(t *testing.T) {
	t.Parallel()

	html, err := Render("# Heading\n\nSome **bold** text.")
	require.NoError(t, err)
	require.Contains(t, html, "<h1")
	require.Contains(t, html, "Heading")
	require.Contains(t, html, "<strong>bold</strong>")
}

func TestRenderGFMTable(t *testing.T) {
	t.Parallel()

	html, err := Render("| a | b |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)
	require.Contains(t, html, "<table>")
	require.Contains(t, html, "<td>1</td>")
}

func TestRenderStripsScripts(t *testing.T) {
	t.Parallel()

	html, err := Render("hello <script>alert('x')</script> world")
	require.NoError(t, err)
	require.NotContains(t, html, "<script")
	require.NotContains(t, html, "alert('x')")
	require.Contains(t, html, "hello")
}

func TestRenderStripsEventHandlers(t *testing.T) {
	t.Parallel()

	html, err := Render(`<a href="https://example.com" onclick="steal()">link</a>`)
	require.NoError(t, err)
	require.NotContains(t, html, "onclick")
	require.Contains(t, html, "link")
}

func TestComponentWritesRenderedHTML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Component("*emphasis*").Render(context.Background(), &buf))
	require.Contains(t, buf.String(), "<em>emphasis</em>")
}
