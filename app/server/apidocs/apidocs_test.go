package apidocs

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestSwaggerValidates(t *testing.T) {
	swagger, err := Swagger()
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range []string{"/auth/signin", "/books/search", "/categories/active", "/apis/method/{method}"} {
		if swagger.Paths.Find(p) == nil {
			t.Errorf("path %s missing", p)
		}
	}

	if _, err := swagger.MarshalJSON(); err != nil {
		t.Fatal(err)
	}
}

func TestDocServesPageAndSpec(t *testing.T) {
	spec := []byte(`{"openapi":"3.0.3"}`)
	mw := Doc("/api", spec, WithAuthorizer(func(r *http.Request) bool {
		return r.Header.Get("X-Deny") == ""
	}))
	h := mw(func(c echo.Context) error { return c.NoContent(http.StatusTeapot) })

	cases := []struct {
		path   string
		deny   bool
		status int
		body   string
	}{
		{"/api/apidocs", false, http.StatusOK, `data-url="/api/apispec.json"`},
		{"/api/apispec.json", false, http.StatusOK, `"openapi"`},
		{"/api/apispec.json", true, http.StatusForbidden, "Forbidden"},
		{"/api/books", false, http.StatusTeapot, ""},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		if tc.deny {
			req.Header.Set("X-Deny", "1")
		}
		rec := httptest.NewRecorder()

		if err := h(echo.New().NewContext(req, rec)); err != nil {
			t.Fatal(err)
		}
		if rec.Code != tc.status || !strings.Contains(rec.Body.String(), tc.body) {
			t.Errorf("%s: got %d %q", tc.path, rec.Code, rec.Body.String())
		}
	}
}
