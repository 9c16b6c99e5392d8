package server

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai-rd1/website/internal/config"
	"github.com/ai-rd1/website/internal/content"
	"github.com/ai-rd1/website/internal/handlers"
	"github.com/ai-rd1/website/internal/lead"
	"github.com/ai-rd1/website/internal/session"
	"github.com/ai-rd1/website/pkg/logger"
)

type okSubmitter struct{ calls int }

func (s *okSubmitter) Submit(_ context.Context, id string, _ lead.LeadRequest) (*lead.CallResponse, error) {
	s.calls++
	return &lead.CallResponse{ID: id}, nil
}

func newTestServer(t *testing.T, sub lead.Submitter) *httptest.Server {
	t.Helper()
	cfg := &config.Config{Session: config.SessionConfig{
		Secret:  "0123456789abcdef0123456789abcdef",
		CSRFKey: "test-csrf-key",
	}}
	catalog, err := content.Load()
	require.NoError(t, err)

	h := handlers.NewHandler(
		lead.NewController(sub, nil, nil, logger.Discard()),
		session.NewStore(cfg, logger.Discard()),
		catalog,
		logger.Discard(),
	)
	router := NewRouter(RouterParams{
		Config:  cfg,
		Log:     logger.Discard(),
		Handler: h,
		Assets: Assets{FS: fstest.MapFS{
			"styles.css": {Data: []byte("body{margin:0}")},
		}},
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T) *http.Client {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

var tokenPattern = regexp.MustCompile(`name="csrf-token" content="([^"]+)"`)

func TestRouter_PublicEndpoints(t *testing.T) {
	srv := newTestServer(t, &okSubmitter{})

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), `"status":"ok"`)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "go_goroutines")

	resp, err = http.Get(srv.URL + "/static/styles.css")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "body{margin:0}", readBody(t, resp))
}

func TestRouter_PostWithoutCSRFTokenRejected(t *testing.T) {
	sub := &okSubmitter{}
	srv := newTestServer(t, sub)

	resp, err := http.PostForm(srv.URL+"/lead", url.Values{"first_name": {"Steven"}})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "csrf_failed")
	assert.Zero(t, sub.calls)
}

func TestRouter_SubmitLeadFlow(t *testing.T) {
	sub := &okSubmitter{}
	srv := newTestServer(t, sub)
	client := newClient(t)

	resp, err := client.Get(srv.URL + "/")
	require.NoError(t, err)
	page := readBody(t, resp)
	m := tokenPattern.FindStringSubmatch(page)
	require.Len(t, m, 2, "page carries a csrf token")
	token := m[1]

	form := url.Values{
		"gorilla.csrf.Token": {token},
		"first_name":         {"Steven"},
		"dial_code":          {"+1"},
		"phone":              {"555 000 1234"},
		"company_name":       {"Acme Inc."},
		"company_size":       {"0-5"},
		"consent":            {"on"},
		"mode":               {"call"},
	}
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/lead", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err = client.Do(req)
	require.NoError(t, err)
	_ = readBody(t, resp)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/#cta", resp.Header.Get("Location"))
	assert.Equal(t, 1, sub.calls)

	resp, err = client.Get(srv.URL + "/")
	require.NoError(t, err)
	page = readBody(t, resp)
	assert.Contains(t, page, `id="cta-call-success"`)
	assert.Contains(t, page, "+15550001234")
}

func TestRouter_CrossOriginPostRejected(t *testing.T) {
	sub := &okSubmitter{}
	srv := newTestServer(t, sub)
	client := newClient(t)

	resp, err := client.Get(srv.URL + "/")
	require.NoError(t, err)
	m := tokenPattern.FindStringSubmatch(readBody(t, resp))
	require.Len(t, m, 2)

	post := func(origin string) *http.Response {
		form := url.Values{
			"gorilla.csrf.Token": {m[1]},
			"switch_to":          {"schedule"},
		}
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/lead/mode", strings.NewReader(form.Encode()))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Origin", origin)
		resp, err := client.Do(req)
		require.NoError(t, err)
		_ = readBody(t, resp)
		return resp
	}

	assert.Equal(t, http.StatusForbidden, post("http://evil.example").StatusCode)
	assert.Equal(t, http.StatusSeeOther, post(srv.URL).StatusCode)
}

func TestCSRFKey(t *testing.T) {
	k := csrfKey(&config.Config{Session: config.SessionConfig{CSRFKey: "short"}}, logger.Discard())
	assert.Len(t, k, 32)

	again := csrfKey(&config.Config{Session: config.SessionConfig{CSRFKey: "short"}}, logger.Discard())
	assert.Equal(t, k, again)

	random := csrfKey(&config.Config{}, logger.Discard())
	assert.Len(t, random, 32)
	assert.NotEqual(t, k, random)
}

func TestMiddleware_PanicIsLoggedAndRecovered(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	h := requestLogger(log)(middleware.Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/lead", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	out := buf.String()
	assert.Contains(t, out, "panic recovered")
	assert.Contains(t, out, "panic=boom")
	assert.Contains(t, out, "request failed")
	assert.Contains(t, out, "status=500")
	assert.Contains(t, out, "uri=/lead")
}

func TestRequestLogger_SkipsQuietPaths(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	h := requestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	for _, path := range []string{"/health", "/metrics", "/static/styles.css"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
	assert.Empty(t, buf.String())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, buf.String(), "status=204")
}

func TestQuiet(t *testing.T) {
	assert.True(t, quiet("/health"))
	assert.True(t, quiet("/static/js/cta.js"))
	assert.False(t, quiet("/"))
	assert.False(t, quiet("/api/leads"))
}
