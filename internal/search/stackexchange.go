// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries the Stack Exchange search API one page at a time.
// See https://api.stackexchange.com/docs/search.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/go-querystring/query"
)

const (
	// DefaultBaseURL is the Stack Exchange API host.
	DefaultBaseURL = "https://api.stackexchange.com"

	apiVersion = "2.2"
	route      = "search"

	// maxErrorBody bounds how much of a failed response is read for diagnostics.
	maxErrorBody = 1 << 20
)

// Query holds the parameters sent with every page request.
type Query struct {
	InTitle  string `url:"intitle"`
	Site     string `url:"site"`
	Sort     string `url:"sort"`
	Order    string `url:"order"`
	Min      string `url:"min"`
	PageSize int    `url:"pagesize,omitempty"`
	Key      string `url:"key,omitempty"`
}

// Result is one page of the API's common response wrapper.
type Result struct {
	Items          []Record `json:"items"`
	HasMore        bool     `json:"has_more"`
	QuotaMax       int      `json:"quota_max"`
	QuotaRemaining int      `json:"quota_remaining"`

	// Backoff is the number of seconds the API asks clients to wait before
	// calling the same method again. It is decoded for logging only.
	Backoff int `json:"backoff,omitempty"`
}

// Client fetches search result pages.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	Query   Query

	// RequestLog, when set, receives a "request: <url>" line per request.
	RequestLog io.Writer
}

// URL returns the request URL for page.
func (c *Client) URL(page int) (string, error) {
	params, err := query.Values(c.Query)
	if err != nil {
		return "", fmt.Errorf("encoding query: %w", err)
	}
	params.Set("page", strconv.Itoa(page))

	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "/") + "/" + apiVersion + "/" + route + "?" + params.Encode(), nil
}

// Search requests a single page. A non-2xx response is returned as a
// *RequestError.
func (c *Client) Search(ctx context.Context, page int) (*Result, error) {
	reqURL, err := c.URL(page)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Stack Exchange API request: %w", err)
	}
	defer resp.Body.Close()

	if c.RequestLog != nil {
		fmt.Fprintf(c.RequestLog, "request: %s\n", resp.Request.URL)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, newRequestError(resp.StatusCode, resp.Request.URL.String(), body)
	}

	var res Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("parsing Stack Exchange response: %w", err)
	}
	return &res, nil
}
