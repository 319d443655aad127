package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kyunghoonkook/directional/consts"
	"github.com/kyunghoonkook/directional/ecode"
	"github.com/kyunghoonkook/directional/storage"
	"github.com/kyunghoonkook/directional/types"
)

type fakeAuth struct {
	resp *types.LoginResponse
	err  error
	reqs []types.LoginRequest
}

func (f *fakeAuth) Login(_ context.Context, req types.LoginRequest) (*types.LoginResponse, error) {
	f.reqs = append(f.reqs, req)
	return f.resp, f.err
}

type fakeNav struct {
	mu       sync.Mutex
	location string
	visited  []string
}

func (n *fakeNav) Location() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.location
}

func (n *fakeNav) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.location = path
	n.visited = append(n.visited, path)
}

func alice() *types.LoginResponse {
	return &types.LoginResponse{Token: "tok-1", User: types.User{ID: "u1", Email: "alice@example.com"}}
}

func TestStartsBootstrapping(t *testing.T) {
	s := New(storage.NewMemoryStore(), &fakeAuth{}, &fakeNav{})
	snap := s.Snapshot()
	if snap.State != Bootstrapping || !snap.IsLoading || snap.IsAuthenticated {
		t.Errorf("unexpected initial snapshot %+v", snap)
	}
}

func TestBootstrap(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		values map[string]string
		want   State
	}{
		{"both present", map[string]string{consts.TokenKey: "t", consts.UserKey: `{"id":"u1","email":"a@b.c"}`}, Authenticated},
		{"token only", map[string]string{consts.TokenKey: "t"}, Anonymous},
		{"user only", map[string]string{consts.UserKey: `{"id":"u1"}`}, Anonymous},
		{"corrupt user", map[string]string{consts.TokenKey: "t", consts.UserKey: `{not json`}, Anonymous},
		{"empty", map[string]string{}, Anonymous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			if len(tt.values) > 0 {
				if err := store.Set(ctx, tt.values); err != nil {
					t.Fatalf("seed: %v", err)
				}
			}
			s := New(store, &fakeAuth{}, &fakeNav{})
			snap := s.Bootstrap(ctx)
			if snap.State != tt.want {
				t.Errorf("expected %s, got %s", tt.want, snap.State)
			}
			if snap.IsLoading {
				t.Errorf("loading must be false after bootstrap")
			}
			if snap.IsAuthenticated != (tt.want == Authenticated) {
				t.Errorf("isAuthenticated must follow token and user")
			}
		})
	}
}

func TestLoginPersists(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	s := New(store, &fakeAuth{resp: alice()}, &fakeNav{})
	s.Bootstrap(ctx)

	user, err := s.Login(ctx, " alice@example.com ", "alice1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Email != "alice@example.com" || !s.IsAuthenticated() || s.State() != Authenticated {
		t.Errorf("unexpected state after login %+v", s.Snapshot())
	}

	restored := New(store, &fakeAuth{}, &fakeNav{})
	if restored.Bootstrap(ctx).State != Authenticated {
		t.Errorf("credentials should survive a restart")
	}
	if restored.Token() != "tok-1" || restored.User().ID != "u1" {
		t.Errorf("unexpected restored session %+v", restored.Snapshot())
	}
}

func TestLoginFailureLeavesState(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	auth := &fakeAuth{err: ecode.New(ecode.BadRequest, "invalid credentials")}
	s := New(store, auth, &fakeNav{})
	s.Bootstrap(ctx)

	if _, err := s.Login(ctx, "alice@example.com", "wrong"); !ecode.Is(err, ecode.BadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
	if s.State() != Anonymous || s.IsAuthenticated() {
		t.Errorf("failed login must not change state")
	}
	if _, err := store.Get(ctx, consts.TokenKey); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("failed login must not persist anything")
	}
}

func TestLoginValidatesInput(t *testing.T) {
	auth := &fakeAuth{resp: alice()}
	s := New(storage.NewMemoryStore(), auth, &fakeNav{})

	if _, err := s.Login(context.Background(), "not-an-email", "pw"); !ecode.Is(err, ecode.Validation) {
		t.Errorf("expected validation error, got %v", err)
	}
	if _, err := s.Login(context.Background(), "bob@example.com", ""); !ecode.Is(err, ecode.Validation) {
		t.Errorf("expected validation error for empty password, got %v", err)
	}
	if len(auth.reqs) != 0 {
		t.Errorf("invalid input reached the api")
	}
}

func TestLogoutPurges(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	s := New(store, &fakeAuth{resp: alice()}, &fakeNav{})
	s.Bootstrap(ctx)
	if _, err := s.Login(ctx, "alice@example.com", "alice1234"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := s.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if s.IsAuthenticated() || s.User() != nil || s.Token() != "" {
		t.Errorf("logout left state behind %+v", s.Snapshot())
	}
	for _, k := range []string{consts.TokenKey, consts.UserKey} {
		if _, err := store.Get(ctx, k); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("%s still persisted", k)
		}
	}

	if err := s.Logout(ctx); err != nil {
		t.Errorf("logout should be unconditional, got %v", err)
	}
}

func TestHandleUnauthorizedOnce(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	nav := &fakeNav{location: "/posts"}
	s := New(store, &fakeAuth{resp: alice()}, nav)
	s.Bootstrap(ctx)
	_, _ = s.Login(ctx, "alice@example.com", "alice1234")

	nav.location = "/posts"
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.HandleUnauthorized(ctx)
		}()
	}
	wg.Wait()

	if len(nav.visited) != 1 || nav.visited[0] != "/login" {
		t.Fatalf("expected exactly one redirect to /login, got %v", nav.visited)
	}
	if s.IsAuthenticated() {
		t.Errorf("401 must drop the session")
	}
	if _, err := store.Get(ctx, consts.TokenKey); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("401 must purge the token")
	}

	nav.location = "/posts/1"
	s.HandleUnauthorized(ctx)
	if len(nav.visited) != 1 {
		t.Errorf("guard should hold until the next login, got %v", nav.visited)
	}

	_, _ = s.Login(ctx, "alice@example.com", "alice1234")
	nav.location = "/posts"
	s.HandleUnauthorized(ctx)
	if len(nav.visited) != 2 {
		t.Errorf("guard should re-arm after login, got %v", nav.visited)
	}
}

func TestHandleUnauthorizedOnLoginPage(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	nav := &fakeNav{}
	s := New(store, &fakeAuth{resp: alice()}, nav)
	s.Bootstrap(ctx)
	_, _ = s.Login(ctx, "alice@example.com", "alice1234")

	nav.location = "/login"
	s.HandleUnauthorized(ctx)
	if len(nav.visited) != 0 {
		t.Errorf("no redirect expected on the login page, got %v", nav.visited)
	}
	if !s.IsAuthenticated() {
		t.Errorf("401 on the login page must not purge the session")
	}
}

func TestHandleUnauthorizedRearmsAfterBootstrap(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	creds := storage.NewCredentials(store)
	user := types.User{ID: "u1", Email: "alice@example.com"}
	if err := creds.Save(ctx, "T1", user); err != nil {
		t.Fatal(err)
	}
	nav := &fakeNav{location: "/posts"}
	s := New(store, &fakeAuth{}, nav)

	s.Bootstrap(ctx)
	s.HandleUnauthorized(ctx)
	if s.IsAuthenticated() || len(nav.visited) != 1 {
		t.Fatalf("first 401: authenticated=%v visited=%v", s.IsAuthenticated(), nav.visited)
	}

	if err := creds.Save(ctx, "T2", user); err != nil {
		t.Fatal(err)
	}
	nav.location = "/posts"
	if snap := s.Bootstrap(ctx); snap.State != Authenticated || snap.Token != "T2" {
		t.Fatalf("second bootstrap = %+v", snap)
	}

	s.HandleUnauthorized(ctx)
	if s.IsAuthenticated() {
		t.Errorf("401 after a restored session must drop it")
	}
	if len(nav.visited) != 2 {
		t.Errorf("expected a second redirect, got %v", nav.visited)
	}
	if creds.Token(ctx) != "" {
		t.Errorf("401 after a restored session must purge the token")
	}
}

func TestTokenExpiry(t *testing.T) {
	ctx := context.Background()
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	s := New(storage.NewMemoryStore(), &fakeAuth{resp: &types.LoginResponse{Token: signed, User: types.User{ID: "u1", Email: "a@b.c"}}}, &fakeNav{})
	if _, err := s.TokenExpiry(); !errors.Is(err, ErrNoExpiry) {
		t.Errorf("expected no expiry without a token")
	}
	if _, err := s.Login(ctx, "bob@example.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	got, err := s.TokenExpiry()
	if err != nil || !got.Equal(exp) {
		t.Errorf("expected %v, got %v %v", exp, got, err)
	}

	opaque := New(storage.NewMemoryStore(), &fakeAuth{resp: alice()}, &fakeNav{})
	_, _ = opaque.Login(ctx, "alice@example.com", "alice1234")
	if _, err := opaque.TokenExpiry(); !errors.Is(err, ErrNoExpiry) {
		t.Errorf("opaque token should have no expiry, got %v", err)
	}
}
