package middlewares

import (
	"context"
	"github.com/labstack/echo/v4"
	"net/http"
)

type Authenticator interface {
	IsAuthenticated(ctx context.Context) bool
}

// Guard 每次请求都重新检查登录状态，未登录时跳转到登录页
func Guard(a Authenticator, loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !a.IsAuthenticated(c.Request().Context()) {
				return c.Redirect(http.StatusFound, loginPath)
			}

			// 继续处理
			return next(c)
		}
	}
}
