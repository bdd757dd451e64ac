// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/stackexchange-best/pkg/types"
)

func TestNewClient_SetsUserAgent(t *testing.T) {
	got := make(chan string, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewClient(types.HTTPConfig{UserAgent: "stackexchange-best/test"})
	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "stackexchange-best/test", <-got)
}

func TestNewClient_KeepsExplicitUserAgent(t *testing.T) {
	got := make(chan string, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- r.Header.Get("User-Agent")
	}))
	defer ts.Close()

	client := NewClient(types.HTTPConfig{UserAgent: "default-agent"})
	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "custom")

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "custom", <-got)
}

func TestNewClient_Timeout(t *testing.T) {
	assert.Zero(t, NewClient(types.HTTPConfig{}).Timeout)
	assert.Equal(t, 5*time.Second, NewClient(types.HTTPConfig{Timeout: 5 * time.Second}).Timeout)
}
