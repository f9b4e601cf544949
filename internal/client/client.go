// Package client talks to the comparison API over HTTP.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"pricecompare/internal/product"
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method string
	URL    string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code: %d", e.Method, e.URL, e.Code)
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New returns a client for the API at baseURL, e.g. http://localhost:5000.
// Requests are never retried and carry no timeout beyond the caller's
// context.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListProducts(ctx context.Context) ([]product.Product, error) {
	var res []product.Product
	if err := c.get(ctx, c.baseURL+"/api/products", &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) SearchProducts(ctx context.Context, query string) ([]product.Product, error) {
	u := fmt.Sprintf("%s/api/products/search?q=%s", c.baseURL, url.QueryEscape(query))

	var res []product.Product
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}
	return res, nil
}

type HealthResponse struct {
	Message string `json:"message"`
}

func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var res HealthResponse
	if err := c.get(ctx, c.baseURL+"/api/test", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) get(ctx context.Context, u string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: http.MethodGet, URL: u, Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode %s: %w", u, err)
	}
	return nil
}
