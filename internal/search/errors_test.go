// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequestError_Detail(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantDetail string
		wantName   string
	}{
		{
			name:       "structured message",
			body:       `{"error_id":502,"error_message":"too many requests from this IP","error_name":"throttle_violation"}`,
			wantDetail: "too many requests from this IP",
			wantName:   "throttle_violation",
		},
		{
			name:       "json without message falls back to body",
			body:       `{"error_id":400}`,
			wantDetail: `{"error_id":400}`,
		},
		{
			name:       "json of another shape falls back to body",
			body:       `["unexpected"]`,
			wantDetail: `["unexpected"]`,
		},
		{
			name:       "html body",
			body:       "<html><body>Bad Request</body></html>\n",
			wantDetail: "<html><body>Bad Request</body></html>",
		},
		{
			name:       "empty body",
			body:       "",
			wantDetail: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newRequestError(400, "https://api.example.com/2.2/search?page=1", []byte(tt.body))
			assert.Equal(t, tt.wantDetail, e.Detail)
			assert.Equal(t, tt.wantName, e.Name)
		})
	}
}

func TestRequestErrorDiagnostic(t *testing.T) {
	e := &RequestError{
		StatusCode: 400,
		URL:        "https://api.stackexchange.com/2.2/search?page=1&site=nope",
		Detail:     "No site found for name `nope`",
	}
	want := "400 Client Error: Bad Request for url: https://api.stackexchange.com/2.2/search?page=1&site=nope\n" +
		"The request for https://api.stackexchange.com/2.2/search?page=1&site=nope failed.\n" +
		"Response says No site found for name `nope`."
	assert.Equal(t, want, e.Diagnostic())
}
