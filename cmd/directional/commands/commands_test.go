package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kyunghoonkook/directional/ecode"
	"github.com/kyunghoonkook/directional/mockserver"
	"github.com/kyunghoonkook/directional/types"
	"github.com/kyunghoonkook/directional/validation"
)

type harness struct {
	mock *mockserver.Server
	conf string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	mock := mockserver.New(&mockserver.Options{Seed: true})
	srv := httptest.NewServer(mock.Engine())
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	conf := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf(`api:
  base_url: %s
storage:
  driver: file
  path: %s
query:
  retry: 0
`, srv.URL, filepath.Join(dir, "session.json"))
	if err := os.WriteFile(conf, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return &harness{mock: mock, conf: conf}
}

func (h *harness) run(args ...string) (string, string, error) {
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--conf", h.conf}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func (h *harness) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, _, err := h.run(args...)
	if err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out
}

func TestLoginWhoamiLogout(t *testing.T) {
	h := newHarness(t)

	if _, _, err := h.run("whoami"); !errors.Is(err, errNotLoggedIn) {
		t.Fatalf("whoami before login: %v", err)
	}

	out := h.mustRun(t, "login")
	if !strings.Contains(out, "logged in as alice@example.com") {
		t.Errorf("login output = %q", out)
	}

	out = h.mustRun(t, "whoami")
	if !strings.Contains(out, "alice@example.com") || !strings.Contains(out, "token expires") {
		t.Errorf("whoami output = %q", out)
	}

	h.mustRun(t, "logout")
	if _, _, err := h.run("whoami"); !errors.Is(err, errNotLoggedIn) {
		t.Fatalf("whoami after logout: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	h := newHarness(t)
	_, _, err := h.run("login", "--password", "nope")
	if ecode.CodeOf(err) != ecode.BadRequest {
		t.Fatalf("code = %v, err = %v", ecode.CodeOf(err), err)
	}
	if _, _, err := h.run("whoami"); !errors.Is(err, errNotLoggedIn) {
		t.Fatalf("failed login must not persist a session: %v", err)
	}
}

func TestPostsList(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, "login")

	out := h.mustRun(t, "posts", "list", "--limit", "5")
	if !strings.Contains(out, "next: ") {
		t.Errorf("first page should print a next cursor:\n%s", out)
	}
	if strings.Contains(out, "prev: ") {
		t.Errorf("first page should not print a prev cursor:\n%s", out)
	}

	out = h.mustRun(t, "--json", "posts", "list", "--category", "qna")
	var page types.PostListResponse
	if err := json.Unmarshal([]byte(out), &page); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(page.Items) != 8 {
		t.Fatalf("qna posts = %d, want 8", len(page.Items))
	}
	for _, p := range page.Items {
		if p.Category != types.CategoryQnA {
			t.Errorf("category = %s", p.Category)
		}
	}

	out = h.mustRun(t, "posts", "list", "--pages", "5")
	if n := strings.Count(out, "CATEGORY"); n != 3 {
		t.Errorf("walked %d pages, want 3 for 24 posts:\n%s", n, out)
	}
	if strings.Count(out, "next: ") != 2 {
		t.Errorf("last page should have no next cursor:\n%s", out)
	}

	if _, _, err := h.run("posts", "list", "--sort", "author"); ecode.CodeOf(err) != ecode.Validation {
		t.Errorf("bad sort: %v", err)
	}
}

func TestPostLifecycle(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, "login")

	_, _, err := h.run("posts", "create", "--title", "t", "--body", "b", "--tag", "go", "--tag", "go")
	if validation.KindOf(err) != validation.Duplicate {
		t.Fatalf("duplicate tag: %v", err)
	}

	out := h.mustRun(t, "--json", "posts", "create",
		"--title", "Cold brew ratio", "--body", "1:8 overnight", "--category", "qna", "--tag", "coffee")
	var post types.Post
	if err := json.Unmarshal([]byte(out), &post); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if post.ID == "" || post.Category != types.CategoryQnA || len(post.Tags) != 1 {
		t.Fatalf("created = %+v", post)
	}

	out = h.mustRun(t, "posts", "update", post.ID, "--title", "Cold brew ratio (updated)", "--clear-tags")
	if !strings.Contains(out, "Cold brew ratio (updated)") || strings.Contains(out, "tags:") {
		t.Errorf("update output = %q", out)
	}

	out = h.mustRun(t, "posts", "get", post.ID)
	if !strings.Contains(out, "1:8 overnight") {
		t.Errorf("get output = %q", out)
	}

	if _, _, err := h.run("posts", "delete", post.ID); !errors.Is(err, errNotConfirmed) {
		t.Fatalf("delete without --yes: %v", err)
	}
	out = h.mustRun(t, "posts", "delete", post.ID, "--yes")
	if !strings.Contains(out, "deleted 1 post(s)") {
		t.Errorf("delete output = %q", out)
	}
	if _, _, err := h.run("posts", "get", post.ID); ecode.CodeOf(err) != ecode.NotFound {
		t.Errorf("get after delete: %v", err)
	}

	out = h.mustRun(t, "posts", "delete-all", "--yes")
	if !strings.Contains(out, "deleted 24 post(s)") {
		t.Errorf("delete-all output = %q", out)
	}
}

func TestCreateRejectsForbiddenWord(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, "login")

	_, _, err := h.run("posts", "create", "--title", "프놈펜 여행", "--body", "hello")
	if ecode.CodeOf(err) != ecode.Validation {
		t.Fatalf("code = %v, err = %v", ecode.CodeOf(err), err)
	}
}

func TestExpiredSessionAsksForLogin(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, "login")
	h.mock.RevokeAll()

	_, stderr, err := h.run("posts", "list")
	if ecode.CodeOf(err) != ecode.AuthExpired {
		t.Fatalf("code = %v, err = %v", ecode.CodeOf(err), err)
	}
	if strings.Count(stderr, "session expired") != 1 {
		t.Errorf("stderr = %q", stderr)
	}
	if _, _, err := h.run("whoami"); !errors.Is(err, errNotLoggedIn) {
		t.Fatalf("session should be dropped: %v", err)
	}
}

func TestCharts(t *testing.T) {
	h := newHarness(t)
	if _, _, err := h.run("charts"); !errors.Is(err, errNotLoggedIn) {
		t.Fatalf("charts are private: %v", err)
	}
	h.mustRun(t, "login")

	out := h.mustRun(t, "charts")
	for _, header := range []string{"TEAM", "WEEK", "BRAND"} {
		if !strings.Contains(out, header) {
			t.Errorf("missing %s table:\n%s", header, out)
		}
	}

	out = h.mustRun(t, "--json", "charts", "brands")
	var brands types.TopCoffeeBrandsResponse
	if err := json.Unmarshal([]byte(out), &brands); err != nil || len(brands) == 0 {
		t.Fatalf("brands = %v, err = %v", brands, err)
	}

	if _, _, err := h.run("charts", "latte"); err == nil {
		t.Error("unknown chart should fail")
	}
}

func TestHealthAndVersion(t *testing.T) {
	h := newHarness(t)
	if out := h.mustRun(t, "health"); !strings.HasPrefix(out, "ok ") {
		t.Errorf("health output = %q", out)
	}
	out := h.mustRun(t, "--json", "version")
	if !strings.Contains(out, `"goVersion"`) {
		t.Errorf("version output = %q", out)
	}
}

func TestNavigator(t *testing.T) {
	var buf bytes.Buffer
	nav := newNavigator(&buf, "/posts", "/login")
	if nav.Location() != "/posts" {
		t.Fatalf("location = %q", nav.Location())
	}
	nav.Navigate("/posts/1")
	if buf.Len() != 0 {
		t.Errorf("navigating away from login should print nothing, got %q", buf.String())
	}
	nav.Navigate("/login")
	if nav.Location() != "/login" || !strings.Contains(buf.String(), "directional login") {
		t.Errorf("location = %q, out = %q", nav.Location(), buf.String())
	}
}

func TestInitializeApp(t *testing.T) {
	h := newHarness(t)
	var errOut bytes.Buffer
	out := &renderer{w: &bytes.Buffer{}}

	a, cleanup, err := initializeApp(&globalOptions{configFile: h.conf, baseURL: "http://override"}, route(postsPath), &errOut, out)
	if err != nil {
		t.Fatal(err)
	}
	defer cleanup()

	if a.cfg.API.BaseURL != "http://override" {
		t.Errorf("base url = %q", a.cfg.API.BaseURL)
	}
	if a.out != out {
		t.Error("renderer not passed through")
	}
	if a.nav.Location() != postsPath {
		t.Errorf("location = %q", a.nav.Location())
	}
	if a.api == nil || a.session == nil || a.posts == nil || a.charts == nil || a.log == nil {
		t.Fatalf("incomplete app: %+v", a)
	}
}

func TestInitializeAppBadStorage(t *testing.T) {
	conf := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(conf, []byte("storage:\n  driver: floppy\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := initializeApp(&globalOptions{configFile: conf}, route("/"), &bytes.Buffer{}, &renderer{w: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected unsupported driver error")
	}
}
