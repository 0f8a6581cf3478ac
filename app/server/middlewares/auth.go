package middlewares

import (
	"encoding/json"
	"errors"
	"fmt"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"smart-mockdata/app/server/constants"
	"smart-mockdata/app/server/jwt"
	"smart-mockdata/app/server/models"
)

const (
	// ContextKeyToken 令牌解析结果在 echo.Context 中的键
	ContextKeyToken = "token"
	// ContextKeyUser 认证通过后当前用户在 echo.Context 中的键
	ContextKeyUser  = "user"
)

type message struct {
	Message string `json:"message"`
}

func reject(c echo.Context, statusCode int) error {
	return c.JSON(statusCode, &message{Message: http.StatusText(statusCode)})
}

// verify 通过 echo-jwt 提取并校验访问令牌，解析出的用户放在 ContextKeyToken 下
func verify(j *jwt.JWT, l *zap.Logger) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ContextKeyToken,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":" + constants.AuthTokenType + " ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return j.ParseUser(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			l.Debug("failed to verify token", zap.Error(err))
			return reject(c, http.StatusUnauthorized)
		},
	})
}

// Auth 校验访问令牌并加载用户，用户优先从缓存读取
func Auth(db *gorm.DB, rdb *redis.Client, j *jwt.JWT, l *zap.Logger) echo.MiddlewareFunc {
	load := loadUser(db, rdb, l)
	token := verify(j, l)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return token(load(next))
	}
}

func loadUser(db *gorm.DB, rdb *redis.Client, l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			jwtUser, ok := c.Get(ContextKeyToken).(*jwt.User)
			if !ok {
				return reject(c, http.StatusUnauthorized)
			}

			id := jwtUser.ID

			var user models.User

			rctx := c.Request().Context()

			// 查询缓存
			cacheKey := fmt.Sprintf(constants.CacheKeyUserInfo, id)
			if cacheBytes, err := rdb.Get(rctx, cacheKey).Bytes(); err != nil {
				if !errors.Is(err, redis.Nil) {
					l.Error("failed to query cache for user info", zap.Uint("id", id), zap.Error(err))
				}
			} else if err = json.Unmarshal(cacheBytes, &user); err != nil {
				l.Error("failed to unmarshal user info", zap.Uint("id", id), zap.ByteString("cacheBytes", cacheBytes), zap.Error(err))
				// 可能是无效的缓存，清理掉
				rdb.Del(rctx, cacheKey)
			} else {
				// 成功拉取到并格式化
				return pass(c, next, &user)
			}

			// 查询数据库
			if err := db.WithContext(rctx).First(&user, "id = ?", id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return reject(c, http.StatusUnauthorized)
				} else {
					l.Error("failed to get user", zap.Uint("id", id), zap.Error(err))
					return reject(c, http.StatusInternalServerError)
				}
			}

			// 格式化并加入缓存，方便下一次查询
			if cacheBytes, err := json.Marshal(&user); err != nil {
				l.Error("failed to marshal user info", zap.Uint("id", id), zap.Error(err))
			} else {
				rdb.Set(rctx, cacheKey, cacheBytes, constants.CacheExpireUserInfo)
			}

			return pass(c, next, &user)
		}
	}
}

func pass(c echo.Context, next echo.HandlerFunc, user *models.User) error {
	// 停用的用户视为未登录
	if !user.IsActive {
		return reject(c, http.StatusUnauthorized)
	}

	// 设置 context
	c.Set(ContextKeyUser, user)

	// 继续处理
	return next(c)
}

// CurrentUser 取出认证中间件放入的用户
func CurrentUser(c echo.Context) (*models.User, bool) {
	user, ok := c.Get(ContextKeyUser).(*models.User)
	return user, ok
}
