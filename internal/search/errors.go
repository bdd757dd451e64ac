// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// RequestError is returned for a response with a non-2xx status.
type RequestError struct {
	StatusCode int
	URL        string

	// Detail is the error_message from the API's error wrapper, or the raw
	// response body when no structured message could be extracted.
	Detail string

	// Name is the API's error_name, empty if the body was not structured.
	Name string
}

func (e *RequestError) Error() string {
	class := "Client"
	if e.StatusCode >= 500 {
		class = "Server"
	}
	return fmt.Sprintf("%d %s Error: %s for url: %s",
		e.StatusCode, class, http.StatusText(e.StatusCode), e.URL)
}

// Diagnostic returns the multi-line message shown to the user.
func (e *RequestError) Diagnostic() string {
	return fmt.Sprintf("%s\nThe request for %s failed.\nResponse says %s.", e.Error(), e.URL, e.Detail)
}

// apiError is the Stack Exchange error wrapper.
type apiError struct {
	ErrorID      int    `json:"error_id"`
	ErrorMessage string `json:"error_message"`
	ErrorName    string `json:"error_name"`
}

// newRequestError builds a RequestError from a failed response body.
// The detail comes from the structured error message when the body has one,
// and from the raw body text otherwise.
func newRequestError(status int, url string, body []byte) *RequestError {
	e := &RequestError{StatusCode: status, URL: url}
	if ae, ok := structuredError(body); ok {
		e.Detail = ae.ErrorMessage
		e.Name = ae.ErrorName
		return e
	}
	e.Detail = strings.TrimSpace(string(body))
	return e
}

// structuredError decodes body as the API error wrapper. It reports false
// when the body is not JSON or carries no error message.
func structuredError(body []byte) (apiError, bool) {
	var ae apiError
	if err := json.Unmarshal(body, &ae); err != nil {
		return apiError{}, false
	}
	if ae.ErrorMessage == "" {
		return apiError{}, false
	}
	return ae, true
}
