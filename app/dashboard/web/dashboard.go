package web

import (
	"github.com/labstack/echo/v4"
	"net/http"
	"smart-mockdata/app/dashboard/models"
	"smart-mockdata/app/dashboard/search"
)

func (a *App) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	// 首次进入时加载数据
	if !a.d.Loaded() {
		_ = a.d.Refresh(ctx)
		if !a.auth.IsAuthenticated(ctx) {
			return c.Redirect(http.StatusFound, PathLogin)
		}
	}

	return a.render(c, http.StatusOK, "dashboard", "Smart MockData Generator Dashboard", a.d.View())
}

func (a *App) Refresh(c echo.Context) error {
	_ = a.d.Refresh(c.Request().Context())
	return a.back(c)
}

func (a *App) SetTab(c echo.Context) error {
	kind, ok := models.ParseKind(c.Param("kind"))
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}

	a.d.SetTab(kind)
	return c.Redirect(http.StatusSeeOther, PathDashboard)
}

func (a *App) Search(c echo.Context) error {
	a.d.Bar().Commit(c.Request().Context(), c.FormValue("q"))
	return a.back(c)
}

func (a *App) ClearSearch(c echo.Context) error {
	a.d.Bar().Clear(c.Request().Context())
	return a.back(c)
}

func (a *App) RecallSearch(c echo.Context) error {
	a.d.Bar().Recall(c.Request().Context(), c.QueryParam("q"))
	return a.back(c)
}

func (a *App) SetSearchMode(c echo.Context) error {
	mode, ok := search.ParseMode(c.FormValue("mode"))
	if !ok {
		return c.NoContent(http.StatusBadRequest)
	}

	a.d.Bar().SetMode(c.Request().Context(), mode)
	return c.Redirect(http.StatusSeeOther, PathDashboard)
}

func (a *App) Delete(c echo.Context) error {
	kind, ok := models.ParseKind(c.Param("kind"))
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	_ = a.d.Delete(c.Request().Context(), kind, id)
	return a.back(c)
}
