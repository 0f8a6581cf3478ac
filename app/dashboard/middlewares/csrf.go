package middlewares

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"net/http"
)

const (
	// CSRFField 表单中隐藏字段的名字，同时也是 cookie 名
	CSRFField      = "_csrf"
	// CSRFContextKey 当前请求的 token 在 echo.Context 中的键
	CSRFContextKey = "csrf"
)

// CSRF 所有修改状态的表单都必须带上和 cookie 一致的 token
func CSRF() echo.MiddlewareFunc {
	return middleware.CSRFWithConfig(middleware.CSRFConfig{
		TokenLookup:    "form:" + CSRFField,
		ContextKey:     CSRFContextKey,
		CookieName:     CSRFField,
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSameSite: http.SameSiteStrictMode,
	})
}
