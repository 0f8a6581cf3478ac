package main

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"log"
	"net/http"
	"smart-mockdata/app/dashboard/auth"
	"smart-mockdata/app/dashboard/client"
	"smart-mockdata/app/dashboard/dashboard"
	"smart-mockdata/app/dashboard/inits"
	"smart-mockdata/app/dashboard/notice"
	"smart-mockdata/app/dashboard/web"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd, "dashboard")
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化会话存储
	store, closer, err := inits.Session(cfg)
	if err != nil {
		l.Fatal("error initializing session store", zap.Error(err))
	}
	defer closer.Close()

	// 准备后端客户端和控制台状态
	var d *dashboard.Dashboard
	n := notice.NewBoard()
	api := client.New(l, cfg.Backend.Endpoint,
		client.WithHTTPClient(&http.Client{Timeout: cfg.Backend.RequestTimeout}),
		client.WithUnauthorizedHandler(func() {
			// 会话失效，下一次请求会被重定向到登录页
			d.Reset()
		}),
	)
	a := auth.New(l, store, api)
	api.UseSession(a)
	d = dashboard.New(l, api, n)

	// 准备页面渲染
	renderer, err := web.NewRenderer()
	if err != nil {
		l.Fatal("error initializing templates", zap.Error(err))
	}

	// 准备 echo 服务
	e := echo.New()
	e.Renderer = renderer
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())

	// 绑定路由
	web.NewApp(l, a, api, d, n).Register(e)

	// 启动 echo 服务
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
