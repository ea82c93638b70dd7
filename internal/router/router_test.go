package router_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"pet-store-api/internal/domain/pets"
	"pet-store-api/internal/router"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type generated struct {
	Pets []struct {
		ID      int    `json:"id"`
		Name    string `json:"name"`
		Species string `json:"species"`
		Age     int    `json:"age"`
		Color   string `json:"color"`
	} `json:"pets"`
	Count int `json:"count"`
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{APIVersion: "v1"}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd(t *testing.T) {
	ts := newServer(t)

	// 1) Mensaje de bienvenida
	{
		st, _, body := doReq(t, ts.URL, http.MethodGet, "/")
		require.Equal(t, http.StatusOK, st)
		assert.JSONEq(t, `{"message":"Welcome to Pet Store API"}`, string(body))
	}

	// 2) Health exacto
	{
		st, _, body := doReq(t, ts.URL, http.MethodGet, "/health")
		require.Equal(t, http.StatusOK, st)
		assert.JSONEq(t, `{"status":"healthy"}`, string(body))
	}

	// 3) Ready sin base
	{
		st, _, body := doReq(t, ts.URL, http.MethodGet, "/ready")
		require.Equal(t, http.StatusOK, st)
		assert.JSONEq(t, `{"status":"ready"}`, string(body))
	}

	// 4) Generar sin count => 1
	{
		st, _, body := doReq(t, ts.URL, http.MethodGet, "/pets/generate")
		require.Equal(t, http.StatusOK, st, "body=%s", body)

		var resp generated
		require.NoError(t, json.Unmarshal(body, &resp))
		assert.Equal(t, 1, resp.Count)
		assert.Len(t, resp.Pets, 1)
	}

	// 5) Generar con count válido
	for _, n := range []int{1, 10, 100} {
		st, _, body := doReq(t, ts.URL, http.MethodGet, "/pets/generate?count="+strconv.Itoa(n))
		require.Equal(t, http.StatusOK, st)

		var resp generated
		require.NoError(t, json.Unmarshal(body, &resp))
		assert.Equal(t, n, resp.Count)
		require.Len(t, resp.Pets, n)
		for _, p := range resp.Pets {
			assert.True(t, pets.IsValidSpecies(pets.Species(p.Species)))
			assert.True(t, pets.IsValidName(p.Name))
			assert.True(t, pets.IsValidColor(p.Color))
			assert.True(t, p.Age >= pets.MinAge && p.Age <= pets.MaxAge, "age=%d", p.Age)
			assert.True(t, p.ID >= pets.MinID && p.ID <= pets.MaxID, "id=%d", p.ID)
		}
	}

	// 6) Count inválido => 400
	{
		st, _, body := doReq(t, ts.URL, http.MethodGet, "/pets/generate?count=0")
		require.Equal(t, http.StatusBadRequest, st)
		assert.Contains(t, string(body), "positive")

		st, _, body = doReq(t, ts.URL, http.MethodGet, "/pets/generate?count=101")
		require.Equal(t, http.StatusBadRequest, st)
		assert.Contains(t, string(body), "exceed 100")
	}
}

func TestHTTP_CommonHeaders(t *testing.T) {
	ts := newServer(t)

	for _, path := range []string{"/", "/health", "/pets/generate?count=2", "/pets/generate?count=-1", "/nope"} {
		_, h, _ := doReq(t, ts.URL, http.MethodGet, path)

		_, err := uuid.Parse(h.Get("X-Request-Id"))
		assert.NoError(t, err, "path=%s", path)
		assert.Equal(t, "v1", h.Get("X-API-Version"), "path=%s", path)
	}
}

func TestHTTP_NotFoundAndMethodNotAllowed(t *testing.T) {
	ts := newServer(t)

	st, _, _ := doReq(t, ts.URL, http.MethodGet, "/pets")
	assert.Equal(t, http.StatusNotFound, st)

	st, _, _ = doReq(t, ts.URL, http.MethodPost, "/pets/generate")
	assert.Equal(t, http.StatusMethodNotAllowed, st)
}

func TestHTTP_Metrics(t *testing.T) {
	ts := newServer(t)

	_, _, _ = doReq(t, ts.URL, http.MethodGet, "/pets/generate?count=3")

	st, _, body := doReq(t, ts.URL, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), `petstore_http_requests_total{method="GET",route="/pets/generate",status="200"}`)
	assert.Contains(t, string(body), "petstore_pets_generated_total")
}

func TestHTTP_SwaggerDoc(t *testing.T) {
	ts := newServer(t)

	st, _, body := doReq(t, ts.URL, http.MethodGet, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, st)

	var doc struct {
		Swagger string                    `json:"swagger"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(body, &doc))
	assert.Equal(t, "2.0", doc.Swagger)
	assert.Contains(t, doc.Paths, "/pets/generate")
	assert.Contains(t, doc.Paths, "/health")
}

func doReq(t *testing.T, baseURL, method, path string) (int, http.Header, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, baseURL+path, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, res.Header, []byte(strings.TrimSpace(string(respBody)))
}
