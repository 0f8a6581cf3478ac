package handlers

import (
	"github.com/labstack/echo/v4"
	"net/http"
)

type Message struct {
	Message string `json:"message"`
}

func (a *App) er(c echo.Context, statusCode int) error {
	return a.erm(c, statusCode, http.StatusText(statusCode))
}

// erm 带有可以直接展示给用户的说明
func (a *App) erm(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, &Message{
		Message: message,
	})
}
