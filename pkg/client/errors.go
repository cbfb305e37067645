package client

import (
	"encoding/json"
	"errors"
	"net/http"
)

// APIError is the typed error returned for every failed API call
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    string

	cause error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "An unexpected error occurred. Please try again."
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// IsNotFound reports whether err is an API error with a 404 status
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// errorEnvelope matches the server's error body plus the flat shapes older
// deployments and proxies produce
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
	Message string `json:"message"`
	Details string `json:"details"`
}

// normalizeError turns a non-2xx response into an APIError. The user-facing
// message is resolved in priority order: top-level message, nested error
// message, details, then a generic fallback.
func normalizeError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var env errorEnvelope
	if len(body) > 0 && json.Unmarshal(body, &env) == nil {
		apiErr.Code = env.Error.Code
		switch {
		case env.Message != "":
			apiErr.Message = env.Message
		case env.Error.Message != "":
			apiErr.Message = env.Error.Message
		case env.Error.Details != "":
			apiErr.Message = env.Error.Details
		case env.Details != "":
			apiErr.Message = env.Details
		}
		if env.Error.Details != "" {
			apiErr.Details = env.Error.Details
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = "An unexpected error occurred. Please try again."
	}
	return apiErr
}
