package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"inkwell-blog/app/server/constants"
	"inkwell-blog/app/server/models"
	"inkwell-blog/app/server/sessions"
	"inkwell-blog/app/server/templates"
)

type stubRelay struct {
	sent []string
	err  error
}

func (r *stubRelay) Send(name, email, phone, message string) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, name)
	return nil
}

func newTestApp(t *testing.T) (*echo.Echo, *App, *stubRelay) {
	t.Helper()
	return newTestAppWithPolicy(t, constants.CommentDeleteAnyUser)
}

func newTestAppWithPolicy(t *testing.T, policy string) (*echo.Echo, *App, *stubRelay) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("db open: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.BlogPost{}, &models.Comment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	sess, err := sessions.New(rdb, "test-secret", constants.SessionDuration)
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}

	relay := &stubRelay{}
	a := NewApp(zap.NewNop(), db, sess, relay, policy)

	e := echo.New()
	renderer, err := templates.New()
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	e.Renderer = renderer
	Register(e, a)

	return e, a, relay
}

func doGet(t *testing.T, e *echo.Echo, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func doPost(t *testing.T, e *echo.Echo, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

// registerUser signs up a new account and returns its session cookie. The
// first registration per test app becomes the admin.
func registerUser(t *testing.T, e *echo.Echo, name, email, password string) *http.Cookie {
	t.Helper()

	w := doPost(t, e, "/register", url.Values{
		"name":     {name},
		"email":    {email},
		"password": {password},
	})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("register %s: code %d", email, w.Code)
	}
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == constants.SessionCookieName && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatalf("register %s: no session cookie", email)
	return nil
}

func createPost(t *testing.T, e *echo.Echo, cookie *http.Cookie, title string) {
	t.Helper()

	w := doPost(t, e, "/new-post", url.Values{
		"title":    {title},
		"subtitle": {"a subtitle"},
		"body":     {"<p>some body text</p>"},
		"img_url":  {"http://example.com/header.png"},
	}, cookie)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("create post %q: code %d", title, w.Code)
	}
}
