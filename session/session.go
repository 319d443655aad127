package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kyunghoonkook/directional/consts"
	"github.com/kyunghoonkook/directional/ctxutil"
	"github.com/kyunghoonkook/directional/ecode"
	"github.com/kyunghoonkook/directional/logging/logger"
	"github.com/kyunghoonkook/directional/storage"
	"github.com/kyunghoonkook/directional/types"
	"github.com/kyunghoonkook/directional/validation"
)

// State of the session
type State int

const (
	Bootstrapping State = iota
	Authenticated
	Anonymous
)

func (s State) String() string {
	switch s {
	case Bootstrapping:
		return "bootstrapping"
	case Authenticated:
		return "authenticated"
	case Anonymous:
		return "anonymous"
	}
	return "unknown"
}

// AuthAPI is the login transport, satisfied by *api.Auth
type AuthAPI interface {
	Login(ctx context.Context, req types.LoginRequest) (*types.LoginResponse, error)
}

// Navigator moves the user between locations
type Navigator interface {
	Location() string
	Navigate(path string)
}

// Snapshot is a copy of the session state
type Snapshot struct {
	State           State
	User            *types.User
	Token           string
	IsAuthenticated bool
	IsLoading       bool
}

// Session process-wide auth state. Every transition replaces user and token together.
type Session struct {
	mu          sync.Mutex
	creds       *storage.Credentials
	auth        AuthAPI
	nav         Navigator
	loginPath   string
	state       State
	user        *types.User
	token       string
	redirecting bool
}

// Option configures a Session
type Option func(*Session)

// WithLoginPath overrides the login entry point
func WithLoginPath(path string) Option {
	return func(s *Session) {
		if path != "" {
			s.loginPath = path
		}
	}
}

// New creates a session in the Bootstrapping state
func New(store storage.Store, auth AuthAPI, nav Navigator, opts ...Option) *Session {
	s := &Session{
		creds:     storage.NewCredentials(store),
		auth:      auth,
		nav:       nav,
		loginPath: consts.LoginPath,
		state:     Bootstrapping,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Credentials returns the persisted credential view, usable as a token source
func (s *Session) Credentials() *storage.Credentials { return s.creds }

// Bootstrap restores the persisted session. Both token and user must be
// present, anything else leaves the session Anonymous.
func (s *Session) Bootstrap(ctx context.Context) Snapshot {
	token := s.creds.Token(ctx)
	user := s.creds.User(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != "" && user != nil {
		s.setLocked(Authenticated, user, token)
	} else {
		s.setLocked(Anonymous, nil, "")
	}
	logger.Debugf(ctx, "session bootstrapped: %s", s.state)
	return s.snapshotLocked()
}

// Login authenticates and persists the returned credentials. On failure the
// state is unchanged and nothing is persisted.
func (s *Session) Login(ctx context.Context, email, password string) (*types.User, error) {
	req := types.LoginRequest{Email: strings.TrimSpace(email), Password: password}
	if errs := validation.ValidateStruct(req); errs != nil {
		for _, field := range []string{"email", "password"} {
			if msg, ok := errs[field]; ok {
				return nil, ecode.New(ecode.Validation, msg)
			}
		}
		return nil, ecode.New(ecode.Validation)
	}

	resp, err := s.auth.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, ecode.New(ecode.Unknown, "login response carried no token")
	}
	if err := s.creds.Save(ctx, resp.Token, resp.User); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	user := resp.User
	s.mu.Lock()
	s.setLocked(Authenticated, &user, resp.Token)
	s.mu.Unlock()

	logger.Infof(ctx, "logged in as %s", user.Email)
	return &user, nil
}

// Logout drops the session and purges the persisted credentials
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.setLocked(Anonymous, nil, "")
	s.mu.Unlock()

	if err := s.creds.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// HandleUnauthorized is invoked by the transport on a 401. Outside the login
// location it logs out and navigates to login, once until the next login.
func (s *Session) HandleUnauthorized(ctx context.Context) {
	if s.nav != nil && strings.Contains(s.nav.Location(), s.loginPath) {
		return
	}

	s.mu.Lock()
	if s.redirecting {
		s.mu.Unlock()
		return
	}
	s.redirecting = true
	s.setLocked(Anonymous, nil, "")
	s.mu.Unlock()

	logger.Warnf(ctx, "session expired, redirecting to %s", s.loginPath)
	clearCtx, cancel := ctxutil.WithAsyncContext(ctx, 0)
	defer cancel()
	if err := s.creds.Clear(clearCtx); err != nil {
		logger.Errorf(ctx, "failed to clear session: %v", err)
	}
	if s.nav != nil {
		s.nav.Navigate(s.loginPath)
	}
}

// IsAuthenticated is true iff both token and user are present
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.user != nil
}

func (s *Session) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == Bootstrapping
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns a copy of the current user, nil when anonymous
func (s *Session) User() *types.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// ErrNoExpiry is returned when the token carries no exp claim or is not a JWT
var ErrNoExpiry = errors.New("session: token has no expiry")

// TokenExpiry reads the exp claim of a JWT token without verifying it
func (s *Session) TokenExpiry() (time.Time, error) {
	token := s.Token()
	if token == "" {
		return time.Time{}, ErrNoExpiry
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, ErrNoExpiry
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, ErrNoExpiry
	}
	return exp.Time, nil
}

// setLocked replaces the state. Entering Authenticated re-arms the 401 guard.
func (s *Session) setLocked(state State, user *types.User, token string) {
	s.state = state
	s.user = user
	s.token = token
	if state == Authenticated {
		s.redirecting = false
	}
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:           s.state,
		Token:           s.token,
		IsAuthenticated: s.token != "" && s.user != nil,
		IsLoading:       s.state == Bootstrapping,
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}
