package middlewares

import (
	"github.com/labstack/echo/v4"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestCSRF(t *testing.T) {
	e := echo.New()
	g := e.Group("", CSRF())
	g.GET("/form", func(c echo.Context) error {
		token, _ := c.Get(CSRFContextKey).(string)
		return c.String(http.StatusOK, token)
	})
	posts := 0
	g.POST("/form", func(c echo.Context) error {
		posts++
		return c.NoContent(http.StatusSeeOther)
	})

	// GET 发放 token，cookie 和页面里的值一致
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/form", nil))
	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == CSRFField {
			cookie = ck
		}
	}
	if cookie == nil || cookie.Value == "" || cookie.Value != rec.Body.String() {
		t.Fatalf("cookie = %v, body = %q", cookie, rec.Body.String())
	}
	if !cookie.HttpOnly || cookie.SameSite != http.SameSiteStrictMode {
		t.Errorf("cookie flags = %+v", cookie)
	}

	post := func(token string, withCookie bool) int {
		form := url.Values{"mode": {"author"}}
		if token != "" {
			form.Set(CSRFField, token)
		}
		req := httptest.NewRequest(http.MethodPost, "/form", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		req.Header.Set(echo.HeaderOrigin, "http://evil.example")
		if withCookie {
			req.AddCookie(cookie)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := post("", false); code != http.StatusBadRequest {
		t.Errorf("missing token: code = %d", code)
	}
	if code := post("forged", true); code != http.StatusForbidden {
		t.Errorf("forged token: code = %d", code)
	}
	if code := post(cookie.Value, false); code != http.StatusForbidden {
		t.Errorf("token without cookie: code = %d", code)
	}
	if posts != 0 {
		t.Fatalf("rejected posts reached the handler %d times", posts)
	}

	if code := post(cookie.Value, true); code != http.StatusSeeOther || posts != 1 {
		t.Errorf("valid token: code = %d, posts = %d", code, posts)
	}
}
