package admin

import (
	"context"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/tracking"
)

const testTemplates = `
{{define "admin-login.html"}}login {{.error}}{{end}}
{{define "admin-error.html"}}error {{.error}}{{end}}
{{define "admin-dashboard.html"}}visitors {{.stats.TotalVisitors}}{{range .projects}} {{.Title}}={{.Count}}{{end}}{{end}}
`

type fakeStore struct {
	stats      *tracking.Stats
	err        error
	cleanedFor time.Duration
}

func (f *fakeStore) Stats(context.Context) (*tracking.Stats, error) { return f.stats, f.err }

func (f *fakeStore) Cleanup(_ context.Context, retention time.Duration) (int64, error) {
	f.cleanedFor = retention
	return 3, f.err
}

func (f *fakeStore) Hash(string) string { return "hashed" }

func newTestHandler(t *testing.T, store Store) (*Handler, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h, err := New(Config{
		Username:  "zach",
		Password:  "correct horse",
		Secret:    "test-secret",
		Retention: 24 * time.Hour,
	}, store, content.Default(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	engine := gin.New()
	engine.SetHTMLTemplate(template.Must(template.New("").Parse(testTemplates)))
	h.Register(engine)
	return h, engine
}

func login(engine *gin.Engine, username, password string) *httptest.ResponseRecorder {
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	t.Fatal("no admin cookie set")
	return nil
}

func TestCheckCredentials(t *testing.T) {
	h, _ := newTestHandler(t, &fakeStore{})
	assert.True(t, h.CheckCredentials("zach", "correct horse"))
	assert.False(t, h.CheckCredentials("zach", "wrong"))
	assert.False(t, h.CheckCredentials("admin", "correct horse"))
}

func TestTokenRoundTrip(t *testing.T) {
	h, _ := newTestHandler(t, &fakeStore{})
	token, err := h.IssueToken("zach")
	require.NoError(t, err)
	assert.NoError(t, h.VerifyToken(token))

	assert.ErrorIs(t, h.VerifyToken(token+"x"), ErrInvalidToken)
	assert.ErrorIs(t, h.VerifyToken("garbage"), ErrInvalidToken)
}

func TestTokenExpires(t *testing.T) {
	h, _ := newTestHandler(t, &fakeStore{})
	issued := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return issued }
	token, err := h.IssueToken("zach")
	require.NoError(t, err)

	h.now = func() time.Time { return issued.Add(25 * time.Hour) }
	assert.ErrorIs(t, h.VerifyToken(token), ErrInvalidToken)
}

func TestTokenFromOtherSecretRejected(t *testing.T) {
	h, _ := newTestHandler(t, &fakeStore{})
	other, err := New(Config{Username: "zach", Password: "correct horse", Secret: "other"}, &fakeStore{}, content.Default(), h.log)
	require.NoError(t, err)

	token, err := other.IssueToken("zach")
	require.NoError(t, err)
	assert.ErrorIs(t, h.VerifyToken(token), ErrInvalidToken)
}

func TestLoginFlow(t *testing.T) {
	store := &fakeStore{stats: &tracking.Stats{
		TotalVisitors: 12,
		TopProjects:   []tracking.ProjectCount{{ProjectID: 4, Count: 5}, {ProjectID: 99, Count: 1}},
	}}
	_, engine := newTestHandler(t, store)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	w = login(engine, "zach", "nope")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	w = login(engine, "zach", "correct horse")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
	cookie := sessionCookie(t, w)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/admin", cookie.Path)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "visitors 12")
	assert.Contains(t, w.Body.String(), "Portfolio Website=5")
	assert.Contains(t, w.Body.String(), "Removed project=1")
}

func TestStatsEndpoints(t *testing.T) {
	store := &fakeStore{stats: &tracking.Stats{TotalVisitors: 7}}
	h, engine := newTestHandler(t, store)
	token, err := h.IssueToken("zach")
	require.NoError(t, err)
	cookie := &http.Cookie{Name: cookieName, Value: token}

	req := httptest.NewRequest(http.MethodGet, "/admin/api/stats", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_visitors":7`)

	req = httptest.NewRequest(http.MethodGet, "/admin/export/stats", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "portfolio-stats.json")

	req = httptest.NewRequest(http.MethodPost, "/admin/privacy/cleanup", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"removed":3`)
	assert.Equal(t, 24*time.Hour, store.cleanedFor)
}

func TestDashboardStoreError(t *testing.T) {
	store := &fakeStore{err: errors.New("disk full")}
	h, engine := newTestHandler(t, store)
	token, err := h.IssueToken("zach")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to load statistics")
}

func TestLogoutClearsCookie(t *testing.T) {
	_, engine := newTestHandler(t, &fakeStore{})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/logout", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	cookie := sessionCookie(t, w)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}
