package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbird-app/quickbird-go/internal/api"
	"github.com/quickbird-app/quickbird-go/internal/domain"
)

type fakeGateway struct {
	loginFn       func(email, password string) (*domain.AuthSession, error)
	registerFn    func(req domain.RegisterRequest) (*domain.AuthSession, error)
	logoutErr     error
	currentUser   *domain.User
	currentErr    error
	authenticated bool
	cachedUser    *domain.User

	loginCalls  int
	logoutCalls int
}

func (f *fakeGateway) Login(_ context.Context, email, password string) (*domain.AuthSession, error) {
	f.loginCalls++
	return f.loginFn(email, password)
}

func (f *fakeGateway) Register(_ context.Context, req domain.RegisterRequest) (*domain.AuthSession, error) {
	return f.registerFn(req)
}

func (f *fakeGateway) Logout(context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeGateway) CurrentUser(context.Context) (*domain.User, error) {
	return f.currentUser, f.currentErr
}

func (f *fakeGateway) IsAuthenticated() bool { return f.authenticated }

func (f *fakeGateway) CachedUser() (*domain.User, error) {
	if f.cachedUser == nil {
		return nil, errors.New("no cached user")
	}
	return f.cachedUser, nil
}

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (r *recordingNotifier) Success(message string) { r.successes = append(r.successes, message) }
func (r *recordingNotifier) Error(message string)   { r.errors = append(r.errors, message) }

func user(id int64, email string) *domain.User {
	return &domain.User{ID: id, Email: email, Username: "dev"}
}

func TestInitialize_NoCredential(t *testing.T) {
	gw := &fakeGateway{authenticated: false}
	s := New(gw, nil)

	require.Equal(t, StateUnknown, s.State())
	s.Initialize(context.Background())

	assert.Equal(t, StateAnonymous, s.State())
	assert.Nil(t, s.User())
	assert.Equal(t, 0, gw.logoutCalls)
}

func TestInitialize_ValidCredential(t *testing.T) {
	gw := &fakeGateway{
		authenticated: true,
		cachedUser:    user(1, "stale@example.com"),
		currentUser:   user(1, "fresh@example.com"),
	}
	s := New(gw, nil)

	s.Initialize(context.Background())

	assert.Equal(t, StateAuthenticated, s.State())
	// The authoritative profile wins over the cached one.
	assert.Equal(t, "fresh@example.com", s.User().Email)
}

func TestInitialize_InvalidCredentialClearsSession(t *testing.T) {
	gw := &fakeGateway{
		authenticated: true,
		cachedUser:    user(1, "stale@example.com"),
		currentErr:    &api.APIError{StatusCode: 401, Message: "Could not validate credentials"},
	}
	s := New(gw, nil)

	s.Initialize(context.Background())

	assert.Equal(t, StateAnonymous, s.State())
	assert.Nil(t, s.User())
	assert.Equal(t, 1, gw.logoutCalls, "a rejected credential must be cleared locally")
}

func TestLogin_Success(t *testing.T) {
	gw := &fakeGateway{
		loginFn: func(email, password string) (*domain.AuthSession, error) {
			return &domain.AuthSession{AccessToken: "tok", User: *user(7, email)}, nil
		},
	}
	notify := &recordingNotifier{}
	s := New(gw, notify)

	err := s.Login(context.Background(), "dev@example.com", "hunter2")
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticated, s.State())
	assert.Equal(t, int64(7), s.User().ID)
	assert.Equal(t, 1, gw.loginCalls, "a valid submission issues exactly one login call")
	assert.Equal(t, []string{"Welcome back!"}, notify.successes)
	assert.Empty(t, notify.errors)
}

func TestLogin_FailureLeavesStateUnchanged(t *testing.T) {
	gw := &fakeGateway{
		loginFn: func(email, password string) (*domain.AuthSession, error) {
			return nil, &api.APIError{StatusCode: 401, Message: "Incorrect email or password"}
		},
	}
	notify := &recordingNotifier{}
	s := New(gw, notify)
	s.Initialize(context.Background())
	require.Equal(t, StateAnonymous, s.State())

	err := s.Login(context.Background(), "dev@example.com", "wrong")
	require.Error(t, err)

	assert.Equal(t, StateAnonymous, s.State())
	assert.Nil(t, s.User())
	assert.Equal(t, []string{"Incorrect email or password"}, notify.errors)
	assert.Empty(t, notify.successes)
}

func TestLogin_TransportFailureUsesFallbackMessage(t *testing.T) {
	gw := &fakeGateway{
		loginFn: func(email, password string) (*domain.AuthSession, error) {
			return nil, errors.New("dial tcp: connection refused")
		},
	}
	notify := &recordingNotifier{}
	s := New(gw, notify)

	err := s.Login(context.Background(), "dev@example.com", "hunter2")
	require.Error(t, err)
	assert.Equal(t, []string{"Login failed"}, notify.errors)
}

func TestRegister_Success(t *testing.T) {
	gw := &fakeGateway{
		registerFn: func(req domain.RegisterRequest) (*domain.AuthSession, error) {
			return &domain.AuthSession{AccessToken: "tok", User: *user(9, req.Email)}, nil
		},
	}
	notify := &recordingNotifier{}
	s := New(gw, notify)

	err := s.Register(context.Background(), domain.RegisterRequest{
		Email: "new@example.com", Password: "hunter2", Username: "new",
	})
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticated, s.State())
	assert.Equal(t, []string{"Account created successfully!"}, notify.successes)
}

func TestLogout_ClearsLocallyEvenWhenRemoteFails(t *testing.T) {
	gw := &fakeGateway{
		authenticated: true,
		currentUser:   user(1, "dev@example.com"),
		logoutErr:     errors.New("backend unreachable"),
	}
	notify := &recordingNotifier{}
	s := New(gw, notify)
	s.Initialize(context.Background())
	require.Equal(t, StateAuthenticated, s.State())

	err := s.Logout(context.Background())
	require.Error(t, err)

	assert.Equal(t, StateAnonymous, s.State())
	assert.Nil(t, s.User())
	assert.Empty(t, notify.successes, "no success toast when the remote call failed")
}

func TestLogout_Success(t *testing.T) {
	gw := &fakeGateway{authenticated: true, currentUser: user(1, "dev@example.com")}
	notify := &recordingNotifier{}
	s := New(gw, notify)
	s.Initialize(context.Background())

	require.NoError(t, s.Logout(context.Background()))
	assert.Equal(t, StateAnonymous, s.State())
	assert.Equal(t, []string{"Logged out successfully"}, notify.successes)
}

func TestRefresh_AdoptsAuthoritativeProfile(t *testing.T) {
	gw := &fakeGateway{authenticated: true, currentUser: user(1, "old@example.com")}
	s := New(gw, nil)
	s.Initialize(context.Background())

	gw.currentUser = user(1, "edited@example.com")
	require.NoError(t, s.Refresh(context.Background()))
	assert.Equal(t, "edited@example.com", s.User().Email)
}

func TestInvalidate(t *testing.T) {
	gw := &fakeGateway{authenticated: true, currentUser: user(1, "dev@example.com")}
	s := New(gw, nil)
	s.Initialize(context.Background())
	require.True(t, s.IsAuthenticated())

	s.Invalidate()
	assert.Equal(t, StateAnonymous, s.State())
	assert.Nil(t, s.User())
}
