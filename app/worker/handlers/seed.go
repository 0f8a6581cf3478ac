package handlers

import (
	"context"
	"fmt"
	"go.uber.org/zap"
	"smart-mockdata/app/dashboard/mockdata"
	"smart-mockdata/app/dashboard/models"
	"smart-mockdata/app/dashboard/schema"
)

// seed 生成一轮记录，返回成功创建的数量
func (a *App) seed(ctx context.Context) int {
	// 设置并发锁，避免读写冲突
	if !a.lock.TryLock() {
		// 上一轮正在处理，跳过这一轮
		return 0
	}
	defer a.lock.Unlock()

	// 会话不存在或被 401 清除后重新登录
	if !a.auth.IsAuthenticated(ctx) {
		if _, err := a.auth.Login(ctx, a.cfg.Username, a.cfg.Password); err != nil {
			a.l.Error("failed to sign in", zap.String("username", a.cfg.Username), zap.Error(err))
			return 0
		}
	}

	created := 0
	for _, kind := range a.cfg.SeedKinds {
		// 书籍需要引用已有的分类，前面刚生成的分类也算在内
		var categories []models.Category
		if kind == models.KindBook {
			var err error
			if categories, err = a.b.ListCategories(ctx); err != nil {
				a.l.Error("failed to load categories", zap.Error(err))
				continue
			}
		}

		for range a.cfg.SeedBatch {
			if err := a.create(ctx, kind, mockdata.Generate(kind, categories, a.rng)); err != nil {
				a.l.Error("failed to create mock record", zap.String("kind", string(kind)), zap.Error(err))
				continue
			}
			created++
		}
	}

	a.l.Info("seed round finished", zap.Int("created", created))
	return created
}

func (a *App) create(ctx context.Context, kind models.Kind, values schema.Values) (err error) {
	payload, err := schema.Payload(kind, values)
	if err != nil {
		return fmt.Errorf("build payload: %w", err)
	}

	switch in := payload.(type) {
	case *models.UserInput:
		_, err = a.b.CreateUser(ctx, in)
	case *models.BookInput:
		_, err = a.b.CreateBook(ctx, in)
	case *models.CategoryInput:
		_, err = a.b.CreateCategory(ctx, in)
	case *models.ApiEndpointInput:
		_, err = a.b.CreateApi(ctx, in)
	default:
		err = fmt.Errorf("unsupported payload %T", payload)
	}
	return err
}
