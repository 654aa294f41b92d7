// Package session holds the single source of truth for "who is logged in".
// The store is constructed once at application start and injected into every
// consumer; there are no module-level globals and its lifecycle is testable
// without any UI.
package session

import (
	"context"
	"log"
	"sync"

	"github.com/quickbird-app/quickbird-go/internal/api"
	"github.com/quickbird-app/quickbird-go/internal/domain"
)

// State is the session lifecycle position. The only transitions are
// Unknown -> {Authenticated, Anonymous} during Initialize, and
// Authenticated -> Anonymous on logout or an observed 401.
type State int

const (
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Gateway is the slice of the API client the session store depends on.
type Gateway interface {
	Login(ctx context.Context, email, password string) (*domain.AuthSession, error)
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthSession, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*domain.User, error)
	IsAuthenticated() bool
	CachedUser() (*domain.User, error)
}

// Store tracks the authenticated user for the lifetime of the process.
type Store struct {
	mu     sync.RWMutex
	state  State
	user   *domain.User
	gw     Gateway
	notify Notifier
}

// New constructs a session store over the given gateway. A nil notifier
// falls back to discarding outcomes.
func New(gw Gateway, notify Notifier) *Store {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Store{state: StateUnknown, gw: gw, notify: notify}
}

// Initialize resolves the startup state. When a credential is persisted, the
// cached profile is adopted immediately so consumers have something to show,
// then the credential is validated against the backend: the authoritative
// profile replaces the cached one, or a failed validation clears everything.
// After Initialize returns, the state is never Unknown.
func (s *Store) Initialize(ctx context.Context) {
	if !s.gw.IsAuthenticated() {
		s.set(StateAnonymous, nil)
		return
	}

	if cached, err := s.gw.CachedUser(); err == nil {
		s.set(StateAuthenticated, cached)
	}

	current, err := s.gw.CurrentUser(ctx)
	if err != nil {
		// Credential confirmed invalid. Never leave a stale authenticated
		// view behind; local cleanup must not depend on the backend.
		_ = s.gw.Logout(ctx)
		s.set(StateAnonymous, nil)
		return
	}
	s.set(StateAuthenticated, current)
}

// Login authenticates and adopts the returned profile. On failure the
// session state is left unchanged and the backend's message is surfaced.
func (s *Store) Login(ctx context.Context, email, password string) error {
	auth, err := s.gw.Login(ctx, email, password)
	if err != nil {
		s.notify.Error(api.ErrorMessage(err, "Login failed"))
		return err
	}
	s.set(StateAuthenticated, &auth.User)
	s.notify.Success("Welcome back!")
	return nil
}

// Register creates an account; registration implies login.
func (s *Store) Register(ctx context.Context, req domain.RegisterRequest) error {
	auth, err := s.gw.Register(ctx, req)
	if err != nil {
		s.notify.Error(api.ErrorMessage(err, "Registration failed"))
		return err
	}
	s.set(StateAuthenticated, &auth.User)
	s.notify.Success("Account created successfully!")
	return nil
}

// Logout ends the session. The remote call is best-effort: local state is
// cleared unconditionally.
func (s *Store) Logout(ctx context.Context) error {
	err := s.gw.Logout(ctx)
	s.set(StateAnonymous, nil)
	if err != nil {
		log.Printf("[warn] component=session operation=logout error=%v", err)
		return err
	}
	s.notify.Success("Logged out successfully")
	return nil
}

// Refresh re-fetches the authoritative profile without touching the
// credential; used after profile edits elsewhere in the app.
func (s *Store) Refresh(ctx context.Context) error {
	current, err := s.gw.CurrentUser(ctx)
	if err != nil {
		log.Printf("[warn] component=session operation=refresh error=%v", err)
		return err
	}
	s.set(StateAuthenticated, current)
	return nil
}

// Invalidate drops the in-memory session. Wired to the gateway's 401 hook,
// which has already cleared the persisted credential.
func (s *Store) Invalidate() {
	s.set(StateAnonymous, nil)
}

// State returns the current lifecycle position.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns the cached profile, or nil when anonymous.
func (s *Store) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated reports whether the session is in the authenticated state.
func (s *Store) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

func (s *Store) set(state State, user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.user = user
}
