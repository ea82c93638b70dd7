package system

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (f fakePinger) PingContext(ctx context.Context) error { return f.err }

func newTestRouter(opts Options) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, opts)
	return r
}

func do(h http.Handler, path, accept string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIndex_JSON(t *testing.T) {
	h := newTestRouter(Options{APIVersion: "v1"})

	for _, accept := range []string{"", "*/*", "application/json", "text/html, application/json"} {
		rec := do(h, "/", accept)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"message":"Welcome to Pet Store API"}`, rec.Body.String(), "accept=%q", accept)
	}
}

func TestIndex_HTML(t *testing.T) {
	h := newTestRouter(Options{APIVersion: "v1"})

	rec := do(h, "/", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "<h1>Welcome to Pet Store API</h1>")
	assert.Contains(t, rec.Body.String(), "API v1")
}

func TestHealth(t *testing.T) {
	rec := do(newTestRouter(Options{}), "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestReady(t *testing.T) {
	tests := []struct {
		name   string
		db     Pinger
		status int
		body   string
	}{
		{"no database", nil, http.StatusOK, `{"status":"ready"}`},
		{"database up", fakePinger{}, http.StatusOK, `{"status":"ready"}`},
		{"database down", fakePinger{err: errors.New("dial tcp: refused")}, http.StatusServiceUnavailable,
			`{"status":"unavailable","error":"database unreachable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(newTestRouter(Options{DB: tt.db}), "/ready", "")
			require.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestWantsHTML(t *testing.T) {
	assert.True(t, wantsHTML("text/html"))
	assert.False(t, wantsHTML("*/*"))
	assert.False(t, wantsHTML(""))
	assert.False(t, wantsHTML("text/html, application/json"))
}
