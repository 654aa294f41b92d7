package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDetail(t *testing.T) {
	t.Run("plain string detail", func(t *testing.T) {
		err := newAPIError(401, []byte(`{"detail": "Incorrect email or password"}`))
		assert.Equal(t, "Incorrect email or password", err.Message)
	})

	t.Run("validation error list", func(t *testing.T) {
		body := `{"detail": [{"msg": "email: field required", "type": "value_error"}, {"msg": "password: field required", "type": "value_error"}]}`
		err := newAPIError(422, []byte(body))
		assert.Equal(t, "email: field required, password: field required", err.Message)
	})

	t.Run("list of bare strings", func(t *testing.T) {
		err := newAPIError(422, []byte(`{"detail": ["first", "second"]}`))
		assert.Equal(t, "first, second", err.Message)
	})

	t.Run("non-json body falls back to raw text", func(t *testing.T) {
		err := newAPIError(502, []byte("Bad Gateway\n"))
		assert.Equal(t, "Bad Gateway", err.Message)
	})

	t.Run("empty body", func(t *testing.T) {
		err := newAPIError(500, nil)
		assert.Equal(t, "api request failed with status 500", err.Error())
	})
}

func TestErrorMessage(t *testing.T) {
	apiErr := &APIError{StatusCode: 401, Message: "Incorrect email or password"}
	assert.Equal(t, "Incorrect email or password", ErrorMessage(apiErr, "Login failed"))
	assert.Equal(t, "Incorrect email or password", ErrorMessage(fmt.Errorf("wrapped: %w", apiErr), "Login failed"))

	// Transport errors carry no backend message; the caller's fallback wins.
	assert.Equal(t, "Failed to create task", ErrorMessage(errors.New("dial tcp: connection refused"), "Failed to create task"))
	assert.Equal(t, "Login failed", ErrorMessage(&APIError{StatusCode: 500}, "Login failed"))
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&APIError{StatusCode: 401}))
	assert.True(t, IsUnauthorized(fmt.Errorf("call: %w", &APIError{StatusCode: 401})))
	assert.False(t, IsUnauthorized(&APIError{StatusCode: 403}))
	assert.False(t, IsUnauthorized(errors.New("nope")))
}
