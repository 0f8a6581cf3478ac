package handlers

import (
	"context"
	"go.uber.org/zap"
	"math/rand/v2"
	"smart-mockdata/app/dashboard/models"
	"smart-mockdata/app/worker/config"
	"sync"
	"time"
)

// Backend 生成记录需要用到的后端接口
type Backend interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateUser(ctx context.Context, in *models.UserInput) (*models.User, error)
	CreateBook(ctx context.Context, in *models.BookInput) (*models.Book, error)
	CreateCategory(ctx context.Context, in *models.CategoryInput) (*models.Category, error)
	CreateApi(ctx context.Context, in *models.ApiEndpointInput) (*models.ApiEndpoint, error)
}

// Authenticator 会话失效后重新登录
type Authenticator interface {
	IsAuthenticated(ctx context.Context) bool
	Login(ctx context.Context, username, password string) (*models.Session, error)
}

type App struct {
	cfg  *config.Config
	l    *zap.Logger
	b    Backend
	auth Authenticator

	rng  *rand.Rand
	lock sync.Mutex
}

func NewApp(cfg *config.Config, l *zap.Logger, b Backend, auth Authenticator, seed uint64) *App {
	return &App{
		cfg:  cfg,
		l:    l,
		b:    b,
		auth: auth,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Run 立即生成一轮，之后按间隔循环，直到 ctx 结束
func (a *App) Run(ctx context.Context) {
	ticker := time.NewTicker(a.cfg.SeedInterval)
	defer ticker.Stop()

	a.seed(ctx)
	for {
		select {
		case <-ticker.C:
			a.l.Debug("seed loop")
			a.seed(ctx)
		case <-ctx.Done():
			a.l.Debug("stop seed loop")
			return
		}
	}
}
