package web

import (
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"smart-mockdata/app/dashboard/auth"
	"smart-mockdata/app/dashboard/client"
	"smart-mockdata/app/dashboard/dashboard"
	"smart-mockdata/app/dashboard/middlewares"
	"smart-mockdata/app/dashboard/models"
	"smart-mockdata/app/dashboard/notice"
	"time"
)

const (
	PathLogin     = "/login"
	PathDashboard = "/dashboard"
)

type App struct {
	l    *zap.Logger          // 日志
	auth *auth.Auth           // 登录状态
	api  *client.Client       // 后端 API
	d    *dashboard.Dashboard // 控制台状态
	n    *notice.Board        // 页面提示
}

func NewApp(l *zap.Logger, a *auth.Auth, api *client.Client, d *dashboard.Dashboard, n *notice.Board) *App {
	return &App{
		l:    l,
		auth: a,
		api:  api,
		d:    d,
		n:    n,
	}
}

// Register 注册所有路由，表单提交都校验 CSRF token，控制台相关的页面都需要登录
func (a *App) Register(e *echo.Echo) {
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, PathDashboard)
	})

	site := e.Group("", middlewares.CSRF())

	site.GET(PathLogin, a.LoginPage)
	site.POST(PathLogin, a.Login)
	site.GET("/register", a.SignUpPage)
	site.POST("/register", a.SignUp)
	site.POST("/logout", a.Logout)

	guarded := site.Group("", middlewares.Guard(a.auth, PathLogin))

	guarded.GET(PathDashboard, a.Dashboard)
	guarded.POST("/dashboard/refresh", a.Refresh)
	guarded.GET("/dashboard/tab/:kind", a.SetTab)

	guarded.POST("/dashboard/search", a.Search)
	guarded.POST("/dashboard/search/clear", a.ClearSearch)
	guarded.GET("/dashboard/search/recall", a.RecallSearch)
	guarded.POST("/dashboard/search/mode", a.SetSearchMode)

	guarded.GET("/dashboard/create", a.DialogPage)
	guarded.POST("/dashboard/create", a.CreateFromDialog)

	guarded.GET("/dashboard/:kind/new", a.NewForm)
	guarded.GET("/dashboard/:kind/:id/edit", a.EditForm)
	guarded.POST("/dashboard/:kind/save", a.SaveForm)
	guarded.POST("/dashboard/:kind/:id/delete", a.Delete)

	guarded.GET("/apis/:id", a.ApiDetails)
}

// Page 所有页面共用的外层数据
type Page struct {
	Title   string
	User    *models.Session
	Expires string
	Notices []notice.Notice
	Body    any
}

func (a *App) render(c echo.Context, status int, name, title string, body any) error {
	ctx := c.Request().Context()

	p := &Page{
		Title: title,
		Body:  body,
	}
	if user, ok := a.auth.CurrentUser(ctx); ok {
		p.User = user
		if exp, ok := auth.ExpiresAt(user); ok {
			p.Expires = exp.Local().Format(time.DateTime)
		}
	}
	p.Notices = a.n.Drain()

	return c.Render(status, name, p)
}

// back 操作完成后返回控制台；会话在操作过程中失效时跳转到登录页
func (a *App) back(c echo.Context) error {
	if !a.auth.IsAuthenticated(c.Request().Context()) {
		return c.Redirect(http.StatusSeeOther, PathLogin)
	}
	return c.Redirect(http.StatusSeeOther, PathDashboard)
}

func unauthorized(err error) bool {
	return errors.Is(err, client.ErrUnauthorized)
}
