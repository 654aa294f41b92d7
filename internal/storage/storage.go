// Package storage persists client-side session state (credential, cached
// profile, theme preference) under fixed keys, behind one interface so the
// gateway and session store never care which backend is configured.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/quickbird-app/quickbird-go/internal/domain"
)

// Fixed storage keys. These match the keys the backend's web client uses for
// its local storage, so state written by either is mutually readable.
const (
	KeyAccessToken = "access_token"
	KeyUser        = "user"
	KeyThemeMode   = "theme_mode"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// Storage is a small key-value store for session state. Writes only happen
// from user-initiated, serialized actions; reads happen on every API call.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// SaveToken persists the bearer credential.
func SaveToken(s Storage, tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}
	return s.Set(KeyAccessToken, string(data))
}

// LoadToken returns the persisted credential, or ErrNotFound.
func LoadToken(s Storage) (*oauth2.Token, error) {
	data, err := s.Get(KeyAccessToken)
	if err != nil {
		return nil, err
	}
	var tok oauth2.Token
	if err := json.Unmarshal([]byte(data), &tok); err != nil {
		return nil, fmt.Errorf("unmarshal token: %w", err)
	}
	return &tok, nil
}

// SaveUser caches the profile returned by the backend.
func SaveUser(s Storage, u *domain.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	return s.Set(KeyUser, string(data))
}

// LoadUser returns the cached profile, or ErrNotFound.
func LoadUser(s Storage) (*domain.User, error) {
	data, err := s.Get(KeyUser)
	if err != nil {
		return nil, err
	}
	var u domain.User
	if err := json.Unmarshal([]byte(data), &u); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}
	return &u, nil
}

// ClearSession removes the credential and cached profile. The theme
// preference is not session state and survives.
func ClearSession(s Storage) error {
	if err := s.Delete(KeyAccessToken); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if err := s.Delete(KeyUser); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

// HasToken reports whether a credential is currently persisted.
func HasToken(s Storage) bool {
	_, err := s.Get(KeyAccessToken)
	return err == nil
}
