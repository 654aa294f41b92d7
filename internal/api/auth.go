package api

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/quickbird-app/quickbird-go/internal/domain"
	"github.com/quickbird-app/quickbird-go/internal/storage"
)

// Login exchanges credentials for a bearer token. On success the credential
// and profile are persisted as a side effect of the call, so callers need no
// second step before issuing authenticated requests.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.AuthSession, error) {
	var out domain.AuthSession
	body := domain.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, c.defaultClient, http.MethodPost, "/auth/login", nil, body, &out); err != nil {
		return nil, err
	}
	if err := c.saveSession(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account. Registration implies login: the returned
// credential is persisted exactly as for Login.
func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthSession, error) {
	var out domain.AuthSession
	if err := c.do(ctx, c.defaultClient, http.MethodPost, "/auth/register", nil, req, &out); err != nil {
		return nil, err
	}
	if err := c.saveSession(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout tells the backend to invalidate the session, then clears local
// state. Local cleanup happens even when the remote call fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, c.defaultClient, http.MethodPost, "/auth/logout", nil, nil, nil)
	if clearErr := storage.ClearSession(c.store); clearErr != nil && err == nil {
		err = clearErr
	}
	return err
}

// CurrentUser fetches the authoritative profile for the stored credential.
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, c.defaultClient, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RefreshToken rotates the credential using the stored refresh token. The new
// credential and profile are persisted as a side effect.
func (c *Client) RefreshToken(ctx context.Context) (*domain.AuthSession, error) {
	body := map[string]string{}
	if tok, err := storage.LoadToken(c.store); err == nil && tok.RefreshToken != "" {
		body["refresh_token"] = tok.RefreshToken
	}
	var out domain.AuthSession
	if err := c.do(ctx, c.defaultClient, http.MethodPost, "/auth/refresh", nil, body, &out); err != nil {
		return nil, err
	}
	if err := c.saveSession(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IsAuthenticated reports whether a credential is currently persisted. Only
// the backend can say whether it is still valid.
func (c *Client) IsAuthenticated() bool {
	return storage.HasToken(c.store)
}

// CachedUser returns the locally cached profile without a network call.
func (c *Client) CachedUser() (*domain.User, error) {
	return storage.LoadUser(c.store)
}

// UpdateProfile edits the current user's profile and returns the canonical
// record; the cached copy is replaced with it.
func (c *Client) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, c.defaultClient, http.MethodPut, "/users/me", nil, req, &out); err != nil {
		return nil, err
	}
	if err := storage.SaveUser(c.store, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// saveSession persists the credential and profile and re-arms the 401 hook
// for the new credential lifetime.
func (c *Client) saveSession(s *domain.AuthSession) error {
	tok := &oauth2.Token{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		TokenType:    s.TokenType,
	}
	if err := storage.SaveToken(c.store, tok); err != nil {
		return err
	}
	if err := storage.SaveUser(c.store, &s.User); err != nil {
		return err
	}
	c.unauthorizedFired.Store(false)
	return nil
}
