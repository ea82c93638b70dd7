package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"pet-store-api/internal/platform/httpclient"
)

var ErrUnhealthy = errors.New("service unhealthy")

// Pet es la mascota tal como la serializa la API.
type Pet struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Age     int    `json:"age"`
	Color   string `json:"color"`
}

// GenerateResult es la respuesta de GET /pets/generate.
// Raw conserva el JSON tal cual para imprimirlo sin reordenar.
type GenerateResult struct {
	Pets  []Pet `json:"pets"`
	Count int   `json:"count"`

	Raw json.RawMessage `json:"-"`
}

// Client consume la API de pet store.
type Client struct {
	http *httpclient.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	hc, err := httpclient.New(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// Health devuelve nil solo si /health responde {"status":"healthy"}.
func (c *Client) Health(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.http.GetJSON(ctx, "/health", nil, &resp); err != nil {
		return err
	}
	if resp.Status != "healthy" {
		return fmt.Errorf("%w: status=%q", ErrUnhealthy, resp.Status)
	}
	return nil
}

// GeneratePets pide count mascotas. Un count fuera de rango vuelve como *httpclient.HTTPError (400).
func (c *Client) GeneratePets(ctx context.Context, count int) (GenerateResult, error) {
	q := url.Values{"count": []string{strconv.Itoa(count)}}

	var raw json.RawMessage
	if err := c.http.GetJSON(ctx, "/pets/generate", q, &raw); err != nil {
		return GenerateResult{}, err
	}

	var out GenerateResult
	if err := json.Unmarshal(raw, &out); err != nil {
		return GenerateResult{}, fmt.Errorf("decode generate response: %w", err)
	}
	out.Raw = raw
	return out, nil
}
