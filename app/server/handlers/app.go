package handlers

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"smart-mockdata/app/server/jwt"
	"time"
)

type App struct {
	l   *zap.Logger   // 日志
	db  *gorm.DB      // 数据库
	rdb *redis.Client // Redis ，缓存认证过的用户
	jwt *jwt.JWT      // JWT ，用于无状态验证
	ttl time.Duration // 访问令牌有效期
}

func NewApp(l *zap.Logger, db *gorm.DB, rdb *redis.Client, j *jwt.JWT, tokenDuration time.Duration) *App {
	return &App{
		l:   l,
		db:  db,
		rdb: rdb,
		jwt: j,
		ttl: tokenDuration,
	}
}
