// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil builds the HTTP client used for API requests.
package httputil

import (
	"net/http"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/pdiddy/stackexchange-best/pkg/types"
)

// NewClient returns a client with its own transport that sends
// cfg.UserAgent on every request. A zero cfg.Timeout means no timeout.
func NewClient(cfg types.HTTPConfig) *http.Client {
	client := cleanhttp.DefaultClient()
	client.Timeout = cfg.Timeout
	if cfg.UserAgent != "" {
		client.Transport = &userAgentTransport{
			next:      client.Transport,
			userAgent: cfg.UserAgent,
		}
	}
	return client
}

// userAgentTransport sets the User-Agent header unless the request has one.
type userAgentTransport struct {
	next      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.next.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.next.RoundTrip(r)
}
