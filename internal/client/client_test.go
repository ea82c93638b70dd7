package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pet-store-api/internal/platform/httpclient"
	"pet-store-api/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	c, err := New(ts.URL+"/", time.Second)
	require.NoError(t, err)
	return c
}

func TestNew_InvalidURL(t *testing.T) {
	for _, u := range []string{"", "localhost:5000", "ftp://host", "http://"} {
		_, err := New(u, 0)
		assert.Error(t, err, "url=%q", u)
	}
}

func TestHealth_AgainstRouter(t *testing.T) {
	c := newClient(t, router.NewRouter(router.Options{}))
	require.NoError(t, c.Health(context.Background()))
}

func TestHealth_Unhealthy(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"degraded"}`))
	}))

	err := c.Health(context.Background())
	require.ErrorIs(t, err, ErrUnhealthy)
}

func TestGeneratePets_AgainstRouter(t *testing.T) {
	c := newClient(t, router.NewRouter(router.Options{}))

	res, err := c.GeneratePets(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Count)
	assert.Len(t, res.Pets, 5)
	assert.Contains(t, string(res.Raw), `"pets"`)
}

func TestGeneratePets_ValidationErrorIsTyped(t *testing.T) {
	c := newClient(t, router.NewRouter(router.Options{}))

	_, err := c.GeneratePets(context.Background(), 101)
	require.Error(t, err)

	var httpErr *httpclient.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, "count cannot exceed 100", httpErr.Message)
	assert.Contains(t, err.Error(), "count cannot exceed 100")
}
