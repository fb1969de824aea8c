package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"

	"shopdrive/internal/content"
	"shopdrive/internal/domain"
	"shopdrive/internal/http/router"
	"shopdrive/internal/memstore"
	"shopdrive/internal/search"
	"shopdrive/internal/services"
)

const (
	adminEmail    = "admin@shopanddrive.com"
	adminPassword = "Adm1n!Pass"
)

type testApp struct {
	*fiber.App
	store *memstore.Store
	auth  *services.AuthService
}

// newTestApp serves the seeded in-memory store. opts may tweak router options
// before the app is built.
func newTestApp(t *testing.T, opts ...func(*router.Options)) *testApp {
	t.Helper()
	store := memstore.Seeded()
	auth := &services.AuthService{Users: store.Users()}
	if err := auth.EnsureAdmin(context.Background(), adminEmail, adminPassword); err != nil {
		t.Fatalf("ensure admin: %v", err)
	}
	o := router.Options{
		Store:  store,
		Search: search.NewService(content.Listing{Store: store}),
		Auth:   auth,
		Views:  html.New("../../web/templates", ".html"),
	}
	for _, fn := range opts {
		fn(&o)
	}
	return &testApp{App: router.New(o), store: store, auth: auth}
}

// brokenSource fails every read, standing in for an unreachable store.
type brokenSource struct{}

var errStoreDown = errors.New("connection refused")

func (brokenSource) ListPromotions(context.Context) ([]domain.Promo, error) { return nil, errStoreDown }
func (brokenSource) ListArticles(context.Context) ([]domain.Article, error) { return nil, errStoreDown }
func (brokenSource) ListProducts(context.Context) ([]domain.Product, error) { return nil, errStoreDown }

func withBrokenSearch(o *router.Options) { o.Search = search.NewService(brokenSource{}) }

func (a *testApp) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := a.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL, err)
	}
	return resp
}

func (a *testApp) get(t *testing.T, target string) *http.Response {
	t.Helper()
	return a.do(t, httptest.NewRequest("GET", target, nil))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func resultIDs(rs []domain.SearchResult) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func cookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// csrfToken fetches the login form and returns the token from the CSRF cookie.
func (a *testApp) csrfToken(t *testing.T) string {
	t.Helper()
	tok := cookie(a.get(t, "/login"), "csrf_")
	if tok == "" {
		t.Fatal("csrf token missing")
	}
	return tok
}

func (a *testApp) postLogin(t *testing.T, tok, email, password string) *http.Response {
	t.Helper()
	form := url.Values{"csrf": {tok}, "email": {email}, "password": {password}}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: tok})
	return a.do(t, req)
}

// loginAdmin returns the admin's session id.
func (a *testApp) loginAdmin(t *testing.T) string {
	t.Helper()
	resp := a.postLogin(t, a.csrfToken(t), adminEmail, adminPassword)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("admin login: want 302, got %d", resp.StatusCode)
	}
	sid := cookie(resp, "sid")
	if sid == "" {
		t.Fatal("sid cookie missing after login")
	}
	return sid
}

func jsonRequest(method, target, sid string, body any) *http.Request {
	var r io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	return req
}

type logEntry struct {
	Level  string         `json:"level"`
	Action string         `json:"action"`
	UserID string         `json:"user_id"`
	Err    string         `json:"err"`
	Fields map[string]any `json:"fields"`
}

type lockedBuf struct {
	b  *bytes.Buffer
	mu *sync.Mutex
}

func (l *lockedBuf) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

// captureLogs collects the JSON log entries written while fn runs.
func captureLogs(t *testing.T, fn func()) []logEntry {
	t.Helper()
	var buf bytes.Buffer
	var mu sync.Mutex
	oldW := log.Writer()
	oldFlags := log.Flags()
	log.SetOutput(&lockedBuf{b: &buf, mu: &mu})
	log.SetFlags(0)
	defer func() {
		log.SetOutput(oldW)
		log.SetFlags(oldFlags)
	}()

	fn()

	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "{") {
			continue
		}
		var e logEntry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			t.Fatalf("log line is not JSON: %q", line)
		}
		entries = append(entries, e)
	}
	return entries
}

func findLog(entries []logEntry, action string) *logEntry {
	for i := range entries {
		if entries[i].Action == action {
			return &entries[i]
		}
	}
	return nil
}

func searchOver(store content.Store) *search.Service {
	return search.NewService(content.Listing{Store: store})
}
