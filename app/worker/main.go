package main

import (
	"context"
	"fmt"
	"go.uber.org/zap"
	"log"
	"net/http"
	"os"
	"os/signal"
	"smart-mockdata/app/dashboard/auth"
	"smart-mockdata/app/dashboard/client"
	"smart-mockdata/app/dashboard/session"
	"smart-mockdata/app/worker/handlers"
	"smart-mockdata/app/worker/inits"
	"syscall"
	"time"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.IsProd, "worker")
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	// 准备后端客户端，会话只保存在内存中
	api := client.New(l, cfg.BackendEndpoint, client.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}))
	a := auth.New(l, session.NewMemoryStore(), api)
	api.UseSession(a)

	// 开启生成循环，收到退出信号后结束
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handlerApp := handlers.NewApp(cfg, l, api, a, uint64(time.Now().UnixNano()))
	handlerApp.Run(ctx)

	l.Info("worker stopped", zap.String("backend", cfg.BackendEndpoint))
}
