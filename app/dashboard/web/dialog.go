package web

import (
	"errors"
	"github.com/labstack/echo/v4"
	"html/template"
	"net/http"
	"smart-mockdata/app/dashboard/dashboard"
	"smart-mockdata/app/dashboard/forms"
	"smart-mockdata/app/dashboard/models"
	"smart-mockdata/app/dashboard/schema"
)

// Dialog 通用创建对话框
type Dialog struct {
	Tab    dashboard.Tab
	Fields template.HTML
}

func (a *App) DialogPage(c echo.Context) error {
	kind := a.d.Active()
	s := a.d.Structure(kind)

	values := s.Empty()
	if c.QueryParam("mock") == "1" {
		values = a.d.MockValues(kind)
	}

	return a.renderDialog(c, http.StatusOK, kind, s, values, nil)
}

func (a *App) CreateFromDialog(c echo.Context) error {
	ctx := c.Request().Context()

	kind, ok := models.ParseKind(c.FormValue("kind"))
	if !ok {
		return c.NoContent(http.StatusBadRequest)
	}

	values, err := c.FormParams()
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	s := a.d.Structure(kind)
	decoded := s.Decode(values)

	if err := a.d.CreateFromDialog(ctx, kind, decoded); err != nil {
		switch {
		case unauthorized(err):
			return c.Redirect(http.StatusSeeOther, PathLogin)
		case errors.Is(err, forms.ErrInvalid):
			return a.renderDialog(c, http.StatusUnprocessableEntity, kind, s, decoded, a.d.ValidateDialog(kind, decoded))
		default:
			return a.renderDialog(c, http.StatusOK, kind, s, decoded, nil)
		}
	}

	return a.back(c)
}

func (a *App) renderDialog(c echo.Context, status int, kind models.Kind, s schema.Structure, values schema.Values, errs forms.Errors) error {
	d := &Dialog{
		Tab:    dashboard.TabOf(kind),
		Fields: schema.Render(s, values, errs),
	}
	return a.render(c, status, "dialog", "Create New "+d.Tab.Noun, d)
}
