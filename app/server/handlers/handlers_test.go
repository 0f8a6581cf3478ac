package handlers

import (
	"encoding/json"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"net/http/httptest"
	"smart-mockdata/app/server/models"
	"strings"
	"testing"
	"time"
)

func newTestApp() *App {
	// 这里的用例都在访问数据库之前返回
	return NewApp(zap.NewNop(), nil, nil, nil, time.Hour)
}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var m Message
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return m.Message
}

func TestErrorReturn(t *testing.T) {
	a := newTestApp()
	c, rec := newContext(http.MethodGet, "/", "")

	if err := a.er(c, http.StatusNotFound); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusNotFound || decodeMessage(t, rec) != "Not Found" {
		t.Errorf("got %d %s", rec.Code, rec.Body.String())
	}
}

func TestSignInRequiresCredentials(t *testing.T) {
	a := newTestApp()

	for name, body := range map[string]string{
		"malformed": `{"username":`,
		"empty":     `{"username":"admin","password":""}`,
	} {
		t.Run(name, func(t *testing.T) {
			c, rec := newContext(http.MethodPost, "/api/auth/signin", body)
			if err := a.AuthSignIn(c); err != nil {
				t.Fatal(err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d", rec.Code)
			}
		})
	}
}

func TestCreateValidatesBeforeStore(t *testing.T) {
	a := newTestApp()

	cases := []struct {
		name    string
		handler echo.HandlerFunc
		body    string
		message string
	}{
		{"book title", a.BookCreate, `{"author":"Harper Lee"}`, "Title is required"},
		{"book price", a.BookCreate, `{"title":"T","author":"A","price":-1}`, "Price must not be negative"},
		{"category name", a.CategoryCreate, `{"description":"x"}`, "Name is required"},
		{"api method", a.ApiCreate, `{"name":"n","url":"/x","method":"fetch"}`, "Unsupported HTTP method"},
		{"user password", a.UserCreate, `{"username":"u","email":"u@example.com"}`, "Password is required"},
		{"signup email", a.AuthSignUp, `{"username":"u","password":"secret"}`, "Email is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newContext(http.MethodPost, "/", tc.body)
			if err := tc.handler(c); err != nil {
				t.Fatal(err)
			}
			if rec.Code != http.StatusBadRequest || decodeMessage(t, rec) != tc.message {
				t.Errorf("got %d %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestParseID(t *testing.T) {
	for raw, ok := range map[string]bool{"1": true, "42": true, "0": false, "-3": false, "abc": false} {
		c, _ := newContext(http.MethodGet, "/", "")
		c.SetParamNames("id")
		c.SetParamValues(raw)

		if _, err := parseID(c); (err == nil) != ok {
			t.Errorf("parseID(%q) err = %v", raw, err)
		}
	}
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		query   string
		showAll bool
		page    int
		limit   int
		bad     bool
	}{
		{"", true, -1, -1, false},
		{"page=2&limit=10", false, 1, 10, false},
		{"page=0", false, 0, defaultPageLimit, false},
		{"limit=5", false, 0, 5, false},
		{"page=x", false, 0, 0, true},
	}
	for _, tc := range cases {
		c, _ := newContext(http.MethodGet, "/books?"+tc.query, "")
		showAll, page, limit, err := parsePagination(c)
		if (err != nil) != tc.bad {
			t.Errorf("%q: err = %v", tc.query, err)
			continue
		}
		if !tc.bad && (showAll != tc.showAll || page != tc.page || limit != tc.limit) {
			t.Errorf("%q: got %v %d %d", tc.query, showAll, page, limit)
		}
	}
}

func TestUserMapping(t *testing.T) {
	active := false
	user := models.User{IsActive: true}
	(&UserInfoInput{Username: " alice ", Email: "a@example.com", Role: "admin", IsActive: &active}).mapFields(&user)

	info := userInfo(&user)
	if info.Username != "alice" || info.Role != models.RoleAdmin || info.IsActive {
		t.Errorf("info = %+v", info)
	}

	// 不带角色的更新保留原有角色
	(&UserInfoInput{Username: "alice", Email: "a@example.com"}).mapFields(&user)
	if user.Role() != models.RoleAdmin {
		t.Errorf("roles = %v", user.Roles)
	}

	if info := userInfo(&models.User{}); info.Roles == nil || info.Role != models.RoleUser {
		t.Errorf("empty roles = %+v", info)
	}
}

func TestBookMapping(t *testing.T) {
	published := true
	book := models.Book{Published: false}
	(&BookInfoInput{Title: "Sapiens", Author: "Harari", ISBN: " ", Published: &published, Category: &Ref{ID: 3}}).mapFields(&book)

	if book.ISBN != nil {
		t.Errorf("blank isbn stored as %q", *book.ISBN)
	}
	if !book.Published || book.CategoryID == nil || *book.CategoryID != 3 {
		t.Errorf("book = %+v", book)
	}

	// 没有 published 时保持原值，没有分类时清除
	(&BookInfoInput{Title: "Sapiens", Author: "Harari", ISBN: "978"}).mapFields(&book)
	if !book.Published || book.CategoryID != nil || book.ISBN == nil {
		t.Errorf("book = %+v", book)
	}

	book.Category = &models.Category{Name: "Non-Fiction"}
	info := bookInfo(&book)
	if info.ISBN != "978" || info.Category == nil || info.Category.Name != "Non-Fiction" {
		t.Errorf("info = %+v", info)
	}
}

func TestApiMapping(t *testing.T) {
	api := models.ApiEndpoint{IsActive: true}
	(&ApiEndpointInfoInput{Name: "n", URL: "/x", Method: " post "}).mapFields(&api)

	if api.Method != "POST" || !api.IsActive || api.RequiresAuth {
		t.Errorf("api = %+v", api)
	}
}

func TestRoutes(t *testing.T) {
	e := echo.New()
	newTestApp().RegisterHandlers(e, "/api", func(next echo.HandlerFunc) echo.HandlerFunc { return next })

	registered := map[string]bool{}
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, route := range []string{
		"POST /api/auth/signin",
		"GET /api/healthcheck",
		"DELETE /api/users/:id",
		"GET /api/books/search/query",
		"GET /api/categories/active",
		"GET /api/apis/method/:method",
	} {
		if !registered[route] {
			t.Errorf("route %s missing", route)
		}
	}
}

func TestLike(t *testing.T) {
	cases := map[string]string{
		"gat":      "%gat%",
		"100%":     `%100\%%`,
		"snake_ca": `%snake\_ca%`,
		`a\b`:      `%a\\b%`,
	}
	for in, want := range cases {
		if got := like(in); got != want {
			t.Errorf("like(%q) = %q, want %q", in, got, want)
		}
	}
}
