package web

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"smart-mockdata/app/dashboard/client"
	"smart-mockdata/app/dashboard/models"
)

type Detail struct {
	Api   *models.ApiEndpoint
	Error string
}

func (a *App) ApiDetails(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	api, err := a.api.GetApi(c.Request().Context(), id)
	if err != nil {
		if unauthorized(err) {
			return c.Redirect(http.StatusSeeOther, PathLogin)
		}

		a.l.Error("error fetching API details", zap.Uint("id", id), zap.Error(err))
		a.n.Error("Failed to load API details")

		status := http.StatusBadGateway
		if client.StatusCode(err) == http.StatusNotFound {
			status = http.StatusNotFound
		}
		return a.render(c, status, "detail", "API Details", &Detail{Error: "Failed to fetch API details"})
	}

	return a.render(c, http.StatusOK, "detail", api.Name, &Detail{Api: api})
}
