package middlewares

import (
	"context"
	"github.com/labstack/echo/v4"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeAuth bool

func (f *fakeAuth) IsAuthenticated(context.Context) bool { return bool(*f) }

func TestGuard(t *testing.T) {
	e := echo.New()
	auth := fakeAuth(false)
	calls := 0
	h := Guard(&auth, "/login")(func(c echo.Context) error {
		calls++
		return c.String(http.StatusOK, "dashboard")
	})

	run := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/dashboard", nil), rec)
		if err := h(c); err != nil {
			t.Fatal(err)
		}
		return rec
	}

	rec := run()
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Errorf("unauthenticated: code = %d, location = %q", rec.Code, rec.Header().Get("Location"))
	}
	if calls != 0 {
		t.Error("wrapped handler ran while unauthenticated")
	}

	auth = true
	rec = run()
	if rec.Code != http.StatusOK || rec.Body.String() != "dashboard" {
		t.Errorf("authenticated: code = %d, body = %q", rec.Code, rec.Body.String())
	}

	// 登录状态在两次请求之间失效
	auth = false
	if rec = run(); rec.Code != http.StatusFound {
		t.Errorf("session loss not detected, code = %d", rec.Code)
	}
}
