package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError represents a non-2xx response from the backend. Message is the
// normalized human-readable form of the backend's "detail" payload, which is
// either a plain string or a list of field validation errors.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("api request failed (%d): %s", e.StatusCode, e.Message)
}

// newAPIError parses the backend error body into an APIError.
func newAPIError(status int, body []byte) *APIError {
	return &APIError{StatusCode: status, Message: parseDetail(body)}
}

// parseDetail extracts a human-readable message from {"detail": ...} where
// detail is a string, or a list whose entries are strings or {"msg": ...}
// objects. Field errors are concatenated into one message.
func parseDetail(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return strings.TrimSpace(string(body))
	}

	var single string
	if err := json.Unmarshal(payload.Detail, &single); err == nil {
		return single
	}

	var list []json.RawMessage
	if err := json.Unmarshal(payload.Detail, &list); err != nil {
		return strings.TrimSpace(string(payload.Detail))
	}
	parts := make([]string, 0, len(list))
	for _, raw := range list {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			parts = append(parts, s)
			continue
		}
		var field struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(raw, &field); err == nil && field.Msg != "" {
			parts = append(parts, field.Msg)
			continue
		}
		parts = append(parts, "Validation error")
	}
	return strings.Join(parts, ", ")
}

// ErrorMessage returns the backend's message for err when it carries one,
// otherwise the fallback. Callers use it to build user-facing toasts.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// IsUnauthorized reports whether err is a 401 from the backend.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 401
}
