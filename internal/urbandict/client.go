// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package urbandict talks to the Urban Dictionary define endpoint: it builds
// the request, performs a single GET, and decodes the JSON body into
// definition records.
package urbandict

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/pdiddy/urban-define/internal/httputil"
	"github.com/pdiddy/urban-define/internal/lookup"
	"github.com/pdiddy/urban-define/pkg/types"
)

// DefaultBaseURL is the public define endpoint.
const DefaultBaseURL = "http://api.urbandictionary.com/v0/define"

// Client queries the define endpoint.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from cfg. An empty BaseURL selects
// DefaultBaseURL; a zero Timeout leaves the transport default.
func NewClient(cfg types.LookupConfig, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    baseURL,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "urbandict"),
	}
}

// RequestURL returns the define URL for term with the term query-encoded.
func (c *Client) RequestURL(term string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base URL %q: %w", c.baseURL, err)
	}
	q := u.Query()
	q.Set("term", term)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Define performs one GET for term and returns the raw body of a 200
// response. A transport failure yields *lookup.ConnectionError and any other
// status yields *lookup.APIError. There are no retries.
func (c *Client) Define(ctx context.Context, term string) ([]byte, error) {
	reqURL, err := c.RequestURL(term)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.log.DebugContext(ctx, "urbandict request", slog.String("term", term), slog.String("url", reqURL))

	resp, err := httputil.Fetch(ctx, c.httpClient, req)
	if err != nil {
		c.log.DebugContext(ctx, "urbandict request failed", slog.String("term", term), slog.String("error", err.Error()))
		return nil, &lookup.ConnectionError{URL: reqURL, Err: err}
	}

	c.log.DebugContext(ctx, "urbandict response",
		slog.String("term", term),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(resp.Body)),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, &lookup.APIError{StatusCode: resp.StatusCode}
	}
	return resp.Body, nil
}

// Lookup calls Define and decodes the body.
func (c *Client) Lookup(ctx context.Context, term string) (types.SearchResponse, error) {
	body, err := c.Define(ctx, term)
	if err != nil {
		return types.SearchResponse{}, err
	}
	return Decode(body)
}
