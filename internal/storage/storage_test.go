package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/quickbird-app/quickbird-go/internal/domain"
)

func TestSessionHelpers(t *testing.T) {
	s := NewMemoryStorage()

	assert.False(t, HasToken(s))
	_, err := LoadToken(s)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, SaveToken(s, &oauth2.Token{AccessToken: "tok", RefreshToken: "ref", TokenType: "bearer"}))
	require.NoError(t, SaveUser(s, &domain.User{ID: 7, Email: "dev@example.com", Username: "dev"}))
	require.NoError(t, s.Set(KeyThemeMode, "dark"))

	tok, err := LoadToken(s)
	require.NoError(t, err)
	assert.Equal(t, "tok", tok.AccessToken)
	assert.Equal(t, "ref", tok.RefreshToken)
	assert.True(t, HasToken(s))

	u, err := LoadUser(s)
	require.NoError(t, err)
	assert.Equal(t, int64(7), u.ID)

	require.NoError(t, ClearSession(s))
	assert.False(t, HasToken(s))
	_, err = LoadUser(s)
	assert.ErrorIs(t, err, ErrNotFound)

	// Theme preference is not session state.
	theme, err := s.Get(KeyThemeMode)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}

func TestClearSession_EmptyStoreIsNotAnError(t *testing.T) {
	s := NewMemoryStorage()
	require.NoError(t, ClearSession(s))
}
