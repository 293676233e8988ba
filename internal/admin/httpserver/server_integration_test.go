package httpserver_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"inkwellcms.org/inkwell-admin/internal/admin/httpserver/middleware"
	"inkwellcms.org/inkwell-admin/internal/admin/testutil"
)

const historyPath = "/admin/content/page-4021/history"

func TestDashboardRedirectsWithoutAuth(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := client.Get(ts.URL + "/admin")
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/admin/login", resp.Header.Get("Location"))
}

func TestDashboardRendersForAuthenticatedUser(t *testing.T) {
	t.Parallel()

	auth := &tokenAuthenticator{Token: "test-token"}
	ts := testutil.NewServer(t, testutil.WithAuthenticator(auth))

	doc := testutil.ParseHTML(t, fetchOK(t, ts.URL+"/admin", auth.Token, nil))

	require.Equal(t, "Dashboard | Inkwell Admin", doc.Find("title").First().Text())
	require.Equal(t, "Dashboard", doc.Find("h1").First().Text())
	require.Greater(t, doc.Find(".dashboard__stat").Length(), 0, "dashboard should render stat cards")
	require.Greater(t, doc.Find(".dashboard__recent-item").Length(), 0, "dashboard should render recent edits")
}

func TestHistoryPageRendersVersionList(t *testing.T) {
	t.Parallel()

	auth := &tokenAuthenticator{Token: "test-token"}
	ts := testutil.NewServer(t, testutil.WithAuthenticator(auth))

	doc := testutil.ParseHTML(t, fetchOK(t, ts.URL+historyPath, auth.Token, nil))

	require.Equal(t, "Version history", doc.Find("h1").First().Text())

	rows := doc.Find(`li[role="row"]`).Not(".history-viewer__row--header")
	require.Equal(t, 5, rows.Length())

	// Newest first; the published current version carries the highlight.
	require.Equal(t, "12", rows.First().AttrOr("data-version", ""))
	active := doc.Find(".history-viewer__row--active")
	require.Equal(t, 1, active.Length())
	require.Equal(t, "12", active.AttrOr("data-version", ""))
}

func TestHistoryTableFragmentRequiresHTMX(t *testing.T) {
	t.Parallel()

	auth := &tokenAuthenticator{Token: "test-token"}
	ts := testutil.NewServer(t, testutil.WithAuthenticator(auth))

	req, err := http.NewRequest(http.MethodGet, ts.URL+historyPath+"/table", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+auth.Token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHistoryTableFragmentPushesCanonicalURL(t *testing.T) {
	t.Parallel()

	auth := &tokenAuthenticator{Token: "test-token"}
	ts := testutil.NewServer(t, testutil.WithAuthenticator(auth))

	req, err := http.NewRequest(http.MethodGet, ts.URL+historyPath+"/table?author=Autosave&page=9", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+auth.Token)
	req.Header.Set("HX-Request", "true")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, historyPath+"?author=Autosave", resp.Header.Get("HX-Push-Url"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	doc := testutil.ParseHTML(t, body)

	rows := doc.Find(`li[role="row"]`).Not(".history-viewer__row--header")
	require.Equal(t, 2, rows.Length(), "author filter should keep only autosave snapshots")
}

func TestHistoryCompareFragmentRendersDiff(t *testing.T) {
	t.Parallel()

	auth := &tokenAuthenticator{Token: "test-token"}
	ts := testutil.NewServer(t, testutil.WithAuthenticator(auth))

	req, err := http.NewRequest(http.MethodGet, ts.URL+historyPath+"/compare?from=8&to=12", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+auth.Token)
	req.Header.Set("HX-Request", "true")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	doc := testutil.ParseHTML(t, body)

	panel := doc.Find(".history-viewer__compare")
	require.Equal(t, 1, panel.Length())
	require.Equal(t, "8", panel.AttrOr("data-compare-from", ""))
	require.Equal(t, "12", panel.AttrOr("data-compare-to", ""))
	require.Greater(t, doc.Find(".history-viewer__diff-line--added").Length(), 0)
}

func TestHistoryComparePageHighlightsEndpoints(t *testing.T) {
	t.Parallel()

	auth := &tokenAuthenticator{Token: "test-token"}
	ts := testutil.NewServer(t, testutil.WithAuthenticator(auth))

	doc := testutil.ParseHTML(t, fetchOK(t, ts.URL+historyPath+"?from=8&to=12", auth.Token, nil))

	require.Equal(t, "from", doc.Find(`li[data-version="8"]`).AttrOr("data-compare-role", ""))
	require.Equal(t, "to", doc.Find(`li[data-version="12"]`).AttrOr("data-compare-role", ""))
	require.Equal(t, 2, doc.Find(".history-viewer__row--active").Length())
	require.Equal(t, 1, doc.Find(".history-viewer__compare").Length())
}

func TestHistoryRevertRequiresEditorRole(t *testing.T) {
	t.Parallel()

	auth := &tokenAuthenticator{Token: "viewer-token", Roles: []string{"viewer"}}
	ts := testutil.NewServer(t, testutil.WithAuthenticator(auth))

	resp := postForm(t, ts, historyPath+"/revert", auth.Token, url.Values{"version": {"8"}})
	defer resp.Body.Close()

	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHistoryRevertRedirectsWithNotice(t *testing.T) {
	t.Parallel()

	auth := &tokenAuthenticator{Token: "editor-token", Roles: []string{"editor"}}
	ts := testutil.NewServer(t, testutil.WithAuthenticator(auth))

	resp := postForm(t, ts, historyPath+"/revert", auth.Token, url.Values{"version": {"8"}})
	defer resp.Body.Close()

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, historyPath+"?notice=reverted", resp.Header.Get("Location"))
}

// fetchOK issues an authenticated GET and returns the body.
func fetchOK(t *testing.T, rawURL, token string, headers map[string]string) []byte {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return body
}

// postForm issues an authenticated POST with a fresh CSRF token pair.
func postForm(t *testing.T, ts *httptest.Server, path, token string, form url.Values) *http.Response {
	t.Helper()

	// Prime the CSRF cookie with a safe request first.
	prime, err := http.NewRequest(http.MethodGet, ts.URL+historyPath, nil)
	require.NoError(t, err)
	prime.Header.Set("Authorization", "Bearer "+token)

	primeResp, err := http.DefaultClient.Do(prime)
	require.NoError(t, err)
	primeResp.Body.Close()

	var csrf *http.Cookie
	for _, c := range primeResp.Cookies() {
		if c.Name == "csrf_token" {
			csrf = c
		}
	}
	require.NotNil(t, csrf, "expected csrf cookie from safe request")

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-CSRF-Token", csrf.Value)
	req.AddCookie(csrf)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

type tokenAuthenticator struct {
	Token string
	Roles []string
}

func (t *tokenAuthenticator) Authenticate(_ *http.Request, token string) (*middleware.User, error) {
	if token != t.Token {
		return nil, middleware.ErrUnauthorized
	}
	roles := t.Roles
	if len(roles) == 0 {
		roles = []string{"admin"}
	}
	return &middleware.User{
		UID:   "tester",
		Email: "tester@example.com",
		Token: token,
		Roles: append([]string(nil), roles...),
	}, nil
}
