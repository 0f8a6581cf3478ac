package web

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"smart-mockdata/app/dashboard/client"
	"smart-mockdata/app/dashboard/forms"
)

func (a *App) LoginPage(c echo.Context) error {
	if a.auth.IsAuthenticated(c.Request().Context()) {
		return c.Redirect(http.StatusFound, PathDashboard)
	}
	return a.render(c, http.StatusOK, "login", "Sign in", &forms.LoginForm{Errors: forms.Errors{}})
}

func (a *App) Login(c echo.Context) error {
	ctx := c.Request().Context()

	form := &forms.LoginForm{}
	if values, err := c.FormParams(); err == nil {
		form.Set(values)
	}
	if !form.Validate() {
		return a.render(c, http.StatusUnprocessableEntity, "login", "Sign in", form)
	}

	if _, err := a.auth.Login(ctx, form.Username, form.Password); err != nil {
		a.l.Info("login failed", zap.String("username", form.Username), zap.Error(err))
		form.Message = client.Message(err, "Login failed. Please try again.")
		a.n.Error(form.Message)
		return a.render(c, http.StatusOK, "login", "Sign in", form)
	}

	// 新会话从空白状态开始
	a.d.Reset()
	a.n.Success("Login successful!")
	return c.Redirect(http.StatusSeeOther, PathDashboard)
}

func (a *App) SignUpPage(c echo.Context) error {
	return a.render(c, http.StatusOK, "register", "Sign up", &forms.RegisterForm{Errors: forms.Errors{}})
}

func (a *App) SignUp(c echo.Context) error {
	ctx := c.Request().Context()

	form := &forms.RegisterForm{}
	if values, err := c.FormParams(); err == nil {
		form.Set(values)
	}
	if !form.Validate() {
		return a.render(c, http.StatusUnprocessableEntity, "register", "Sign up", form)
	}

	if err := a.auth.Register(ctx, form.Username, form.Email, form.Password); err != nil {
		a.l.Info("registration failed", zap.String("username", form.Username), zap.Error(err))
		form.Message = client.Message(err, "Registration failed. Please try again.")
		a.n.Error(form.Message)
		return a.render(c, http.StatusOK, "register", "Sign up", form)
	}

	a.n.Success("Registration successful! Please sign in.")
	return c.Redirect(http.StatusSeeOther, PathLogin)
}

func (a *App) Logout(c echo.Context) error {
	a.auth.Logout(c.Request().Context())
	a.d.Reset()
	return c.Redirect(http.StatusSeeOther, PathLogin)
}
