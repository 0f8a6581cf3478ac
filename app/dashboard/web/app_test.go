package web

import (
	"context"
	"encoding/json"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"smart-mockdata/app/dashboard/auth"
	"smart-mockdata/app/dashboard/client"
	"smart-mockdata/app/dashboard/dashboard"
	"smart-mockdata/app/dashboard/middlewares"
	"smart-mockdata/app/dashboard/notice"
	"smart-mockdata/app/dashboard/session"
	"strings"
	"sync"
	"testing"
)

const (
	testToken = "test-token"
	testCSRF  = "test-csrf-token"
)

// backend 模拟后端 REST 接口
type backend struct {
	mu           sync.Mutex
	srv          *httptest.Server
	calls        []string
	unauthorized bool
	bookBody     map[string]any
}

func (b *backend) count(call string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for _, c := range b.calls {
		if c == call {
			n++
		}
	}
	return n
}

func newBackend(t *testing.T) *backend {
	b := &backend{}
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	// 需要登录的接口
	authed := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			b.mu.Lock()
			b.calls = append(b.calls, r.Method+" "+r.URL.Path)
			deny := b.unauthorized
			b.mu.Unlock()

			if deny || r.Header.Get("Authorization") != "Bearer "+testToken {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
				return
			}
			h(w, r)
		}
	}

	mux.HandleFunc("POST /api/auth/signin", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls = append(b.calls, "POST /api/auth/signin")
		b.mu.Unlock()

		var req struct{ Username, Password string }
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Username != "admin" || req.Password != "admin123" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid username or password"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"accessToken": testToken, "tokenType": "Bearer", "id": 1, "username": "admin", "email": "admin@example.com", "roles": []string{"ADMIN"},
		})
	})
	mux.HandleFunc("GET /api/users", authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{"id": 1, "username": "admin", "email": "admin@example.com", "role": "ADMIN", "isActive": true}})
	}))
	mux.HandleFunc("GET /api/books", authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{"id": 1, "title": "Dune", "author": "Frank Herbert", "category": map[string]any{"id": 1, "name": "Fiction"}}})
	}))
	mux.HandleFunc("GET /api/categories", authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{"id": 1, "name": "Fiction", "isActive": true}})
	}))
	mux.HandleFunc("GET /api/apis", authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{"id": 1, "name": "List users", "url": "/api/users", "method": "GET"}})
	}))
	mux.HandleFunc("GET /api/apis/{id}", authed(func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "1" {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Api endpoint not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": 1, "name": "List users", "url": "/api/users", "method": "GET", "requiresAuth": true})
	}))
	mux.HandleFunc("POST /api/books", authed(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.mu.Lock()
		b.bookBody = body
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"id": 2, "title": body["title"]})
	}))

	b.srv = httptest.NewServer(mux)
	t.Cleanup(b.srv.Close)
	return b
}

func newTestApp(t *testing.T, b *backend) (*echo.Echo, *auth.Auth) {
	l := zap.NewNop()
	n := notice.NewBoard()

	api := client.New(l, b.srv.URL+"/api")
	a := auth.New(l, session.NewMemoryStore(), api)
	api.UseSession(a)
	d := dashboard.New(l, api, n)

	r, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}

	e := echo.New()
	e.Renderer = r
	NewApp(l, a, api, d, n).Register(e)
	return e, a
}

// send 模拟浏览器请求，带上 CSRF cookie，表单里附上同样的 token
func send(e *echo.Echo, method, target string, form url.Values) *httptest.ResponseRecorder {
	if form != nil {
		form.Set(middlewares.CSRFField, testCSRF)
	}
	return sendRaw(e, method, target, form, &http.Cookie{Name: middlewares.CSRFField, Value: testCSRF})
}

func sendRaw(e *echo.Echo, method, target string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo) {
	t.Helper()
	rec := send(e, http.MethodPost, "/login", url.Values{"username": {"admin"}, "password": {"admin123"}})
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != PathDashboard {
		t.Fatalf("login: code = %d, location = %q, body = %s", rec.Code, rec.Header().Get("Location"), rec.Body.String())
	}
}

func TestDashboardRequiresLogin(t *testing.T) {
	e, _ := newTestApp(t, newBackend(t))

	for _, target := range []string{"/dashboard", "/apis/1", "/dashboard/book/new"} {
		rec := send(e, http.MethodGet, target, nil)
		if rec.Code != http.StatusFound || rec.Header().Get("Location") != PathLogin {
			t.Errorf("%s: code = %d, location = %q", target, rec.Code, rec.Header().Get("Location"))
		}
	}
}

func TestLoginValidation(t *testing.T) {
	b := newBackend(t)
	e, _ := newTestApp(t, b)

	rec := send(e, http.MethodPost, "/login", url.Values{"username": {"ab"}, "password": {"123"}})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("code = %d", rec.Code)
	}
	for _, want := range []string{"Username must be at least 3 characters", "Password must be at least 6 characters"} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("body missing %q", want)
		}
	}
	if b.count("POST /api/auth/signin") != 0 {
		t.Error("invalid login reached the backend")
	}
}

func TestLoginRejected(t *testing.T) {
	e, a := newTestApp(t, newBackend(t))

	rec := send(e, http.MethodPost, "/login", url.Values{"username": {"admin"}, "password": {"wrong-password"}})

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Invalid username or password") {
		t.Errorf("code = %d, body = %s", rec.Code, rec.Body.String())
	}
	if a.IsAuthenticated(context.Background()) {
		t.Error("rejected login left a session")
	}
}

func TestLoginLoadsDashboard(t *testing.T) {
	b := newBackend(t)
	e, a := newTestApp(t, b)

	login(t, e)
	if !a.IsAuthenticated(context.Background()) {
		t.Fatal("session not persisted")
	}

	rec := send(e, http.MethodGet, "/dashboard", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	for _, want := range []string{"Login successful!", "Data loaded successfully!", "admin@example.com", "Users Data"} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("dashboard missing %q", want)
		}
	}

	// 已加载后再次访问不重新请求
	send(e, http.MethodGet, "/dashboard", nil)
	if n := b.count("GET /api/users"); n != 1 {
		t.Errorf("users fetched %d times", n)
	}
}

func TestUnauthorizedResponseLogsOut(t *testing.T) {
	b := newBackend(t)
	e, a := newTestApp(t, b)
	login(t, e)

	b.mu.Lock()
	b.unauthorized = true
	b.mu.Unlock()

	rec := send(e, http.MethodGet, "/dashboard", nil)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != PathLogin {
		t.Errorf("code = %d, location = %q", rec.Code, rec.Header().Get("Location"))
	}
	if a.IsAuthenticated(context.Background()) {
		t.Error("401 did not clear the session")
	}
}

func TestApiDetails(t *testing.T) {
	e, _ := newTestApp(t, newBackend(t))
	login(t, e)

	rec := send(e, http.MethodGet, "/apis/1", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "List users") {
		t.Errorf("code = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = send(e, http.MethodGet, "/apis/99", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("code = %d", rec.Code)
	}
	for _, want := range []string{"Failed to load API details", "Failed to fetch API details"} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestInvalidBookFormStaysOpen(t *testing.T) {
	b := newBackend(t)
	e, _ := newTestApp(t, b)
	login(t, e)

	rec := send(e, http.MethodPost, "/dashboard/book/save", url.Values{"title": {""}, "author": {"Herbert"}, "isbn": {"1"}})

	if rec.Code != http.StatusUnprocessableEntity || !strings.Contains(rec.Body.String(), "Title is required") {
		t.Errorf("code = %d, body = %s", rec.Code, rec.Body.String())
	}
	if b.count("POST /api/books") != 0 {
		t.Error("invalid form reached the backend")
	}
}

func TestCreateBookFromDialog(t *testing.T) {
	b := newBackend(t)
	e, _ := newTestApp(t, b)
	login(t, e)

	rec := send(e, http.MethodPost, "/dashboard/create", url.Values{
		"kind": {"book"}, "title": {"Dune"}, "author": {"Herbert"}, "categoryId": {"1"}, "published": {"true"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}

	b.mu.Lock()
	body := b.bookBody
	b.mu.Unlock()

	if _, ok := body["categoryId"]; ok {
		t.Error("categoryId posted")
	}
	category, _ := body["category"].(map[string]any)
	if id, _ := category["id"].(float64); id != 1 {
		t.Errorf("category = %v", body["category"])
	}
	if b.count("GET /api/books") != 1 {
		t.Error("create did not refresh the lists")
	}
}

func TestDialogMock(t *testing.T) {
	e, _ := newTestApp(t, newBackend(t))
	login(t, e)

	rec := send(e, http.MethodGet, "/dashboard/create?mock=1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	for _, want := range []string{"Create New User", "AI mock data generated!", `value="password123"`} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("dialog missing %q", want)
		}
	}
}

func TestFormsCarryCSRFToken(t *testing.T) {
	e, _ := newTestApp(t, newBackend(t))
	field := `<input type="hidden" name="` + middlewares.CSRFField + `" value="` + testCSRF + `">`

	rec := send(e, http.MethodGet, PathLogin, nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), field) {
		t.Errorf("code = %d, login form missing csrf field", rec.Code)
	}

	login(t, e)
	rec = send(e, http.MethodGet, "/dashboard", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), field) {
		t.Errorf("code = %d, dashboard forms missing csrf field", rec.Code)
	}
}

func TestCrossSiteFormRejected(t *testing.T) {
	b := newBackend(t)
	e, a := newTestApp(t, b)
	login(t, e)

	// 其它站点提交的表单拿不到 cookie 里的 token
	forged := []struct {
		target string
		form   url.Values
		cookie *http.Cookie
	}{
		{"/dashboard/search/mode", url.Values{"mode": {"author"}}, nil},
		{"/dashboard/book/1/delete", url.Values{middlewares.CSRFField: {"guess"}}, nil},
		{"/logout", url.Values{middlewares.CSRFField: {"guess"}}, &http.Cookie{Name: middlewares.CSRFField, Value: testCSRF}},
	}
	for _, f := range forged {
		rec := sendRaw(e, http.MethodPost, f.target, f.form, f.cookie)
		if rec.Code != http.StatusBadRequest && rec.Code != http.StatusForbidden {
			t.Errorf("%s: code = %d", f.target, rec.Code)
		}
	}

	if !a.IsAuthenticated(context.Background()) {
		t.Error("forged logout cleared the session")
	}
	if n := b.count("DELETE /api/books/1"); n != 0 {
		t.Errorf("forged delete reached the backend %d times", n)
	}
}
