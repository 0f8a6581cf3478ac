package web

import (
	"context"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"net/url"
	"smart-mockdata/app/dashboard/dashboard"
	"smart-mockdata/app/dashboard/forms"
	"smart-mockdata/app/dashboard/models"
	"strconv"
)

type resourceForm interface {
	Set(form url.Values)
	Submit(ctx context.Context, onSuccess forms.OnSuccess) error
	Editing() bool
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// openForm 打开专用表单，编辑时优先使用已加载的记录，找不到再向后端查询
func (a *App) openForm(ctx context.Context, kind models.Kind, id uint) (resourceForm, error) {
	switch kind {
	case models.KindBook:
		var existing *models.Book
		if id != 0 {
			var ok bool
			if existing, ok = a.d.FindBook(id); !ok {
				var err error
				if existing, err = a.api.GetBook(ctx, id); err != nil {
					return nil, err
				}
			}
		}
		f := forms.NewBookForm(a.l, a.api, a.n)
		f.Open(ctx, existing)
		return f, nil
	case models.KindCategory:
		var existing *models.Category
		if id != 0 {
			var ok bool
			if existing, ok = a.d.FindCategory(id); !ok {
				var err error
				if existing, err = a.api.GetCategory(ctx, id); err != nil {
					return nil, err
				}
			}
		}
		f := forms.NewCategoryForm(a.l, a.api, a.n)
		f.Open(ctx, existing)
		return f, nil
	case models.KindApi:
		var existing *models.ApiEndpoint
		if id != 0 {
			var ok bool
			if existing, ok = a.d.FindApi(id); !ok {
				var err error
				if existing, err = a.api.GetApi(ctx, id); err != nil {
					return nil, err
				}
			}
		}
		f := forms.NewApiForm(a.l, a.api, a.n)
		f.Open(ctx, existing)
		return f, nil
	case models.KindUser:
		var existing *models.User
		if id != 0 {
			var ok bool
			if existing, ok = a.d.FindUser(id); !ok {
				var err error
				if existing, err = a.api.GetUser(ctx, id); err != nil {
					return nil, err
				}
			}
		}
		f := forms.NewUserForm(a.l, a.api, a.n)
		f.Open(ctx, existing)
		return f, nil
	}
	return nil, fmt.Errorf("unknown kind %q", kind)
}

func (a *App) renderForm(c echo.Context, status int, kind models.Kind, f resourceForm) error {
	tab := dashboard.TabOf(kind)
	title := "Create New " + tab.Noun
	if f.Editing() {
		title = "Edit " + tab.Noun
	}
	return a.render(c, status, string(kind)+"_form", title, f)
}

func (a *App) NewForm(c echo.Context) error {
	kind, ok := models.ParseKind(c.Param("kind"))
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}

	f, err := a.openForm(c.Request().Context(), kind, 0)
	if err != nil {
		return err
	}
	return a.renderForm(c, http.StatusOK, kind, f)
}

func (a *App) EditForm(c echo.Context) error {
	ctx := c.Request().Context()

	kind, ok := models.ParseKind(c.Param("kind"))
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	f, err := a.openForm(ctx, kind, id)
	if err != nil {
		if unauthorized(err) {
			return c.Redirect(http.StatusSeeOther, PathLogin)
		}
		a.l.Error("failed to load record for editing", zap.String("kind", string(kind)), zap.Uint("id", id), zap.Error(err))
		a.n.Error("Failed to load " + string(kind))
		return a.back(c)
	}
	return a.renderForm(c, http.StatusOK, kind, f)
}

func (a *App) SaveForm(c echo.Context) error {
	ctx := c.Request().Context()

	kind, ok := models.ParseKind(c.Param("kind"))
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}
	values, err := c.FormParams()
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	var id uint
	if raw := values.Get("id"); raw != "" {
		if id, err = parseID(raw); err != nil {
			return c.NoContent(http.StatusBadRequest)
		}
	}

	f, err := a.openForm(ctx, kind, id)
	if err != nil {
		if unauthorized(err) {
			return c.Redirect(http.StatusSeeOther, PathLogin)
		}
		a.n.Error("Failed to load " + string(kind))
		return a.back(c)
	}
	f.Set(values)

	if err := f.Submit(ctx, a.d.OnFormSuccess); err != nil {
		switch {
		case unauthorized(err):
			return c.Redirect(http.StatusSeeOther, PathLogin)
		case errors.Is(err, forms.ErrInvalid):
			return a.renderForm(c, http.StatusUnprocessableEntity, kind, f)
		default:
			// 保持表单打开，提示已经在 Submit 中给出
			return a.renderForm(c, http.StatusOK, kind, f)
		}
	}

	return a.back(c)
}
