package handlers

import (
	"fmt"
	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"smart-mockdata/app/server/constants"
	"smart-mockdata/app/server/models"
)

// usernameTaken 检查用户名是否已被其他用户使用，已删除的用户仍然占用唯一索引
func (a *App) usernameTaken(c echo.Context, username string, exceptID uint) (bool, error) {
	var count int64
	if err := a.db.WithContext(c.Request().Context()).
		Unscoped().
		Model(&models.User{}).
		Where("username = ? AND id <> ?", username, exceptID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// dropUserCache 用户信息变化后清理认证缓存
func (a *App) dropUserCache(c echo.Context, id uint) {
	if err := a.rdb.Del(c.Request().Context(), fmt.Sprintf(constants.CacheKeyUserInfo, id)).Err(); err != nil {
		a.l.Error("failed to drop user cache", zap.Uint("id", id), zap.Error(err))
	}
}

func (a *App) UserList(c echo.Context) error {
	rctx := c.Request().Context()

	query, err := a.paginate(c, a.db.WithContext(rctx).Model(&models.User{}).Order("id ASC"))
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		a.l.Error("failed to get user list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, mapList(users, userInfo))
}

func (a *App) UserGet(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	user, err, statusCode := findByID[models.User](c.Request().Context(), a.db, id)
	if err != nil {
		if statusCode != http.StatusNotFound {
			a.l.Error("failed to get user", zap.Uint("id", id), zap.Error(err))
		}
		return a.er(c, statusCode)
	}

	return c.JSON(http.StatusOK, userInfo(user))
}

func (a *App) UserCreate(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req UserInfoInput
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if msg := req.validate(true); msg != "" {
		return a.erm(c, http.StatusBadRequest, msg)
	}

	if taken, err := a.usernameTaken(c, req.Username, 0); err != nil {
		a.l.Error("failed to check username", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	} else if taken {
		return a.erm(c, http.StatusBadRequest, "Username is already taken")
	}

	// 处理密码
	passwordHash, err := argon2id.CreateHash(req.Password, argon2id.DefaultParams)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 创建用户，默认启用
	user := models.User{
		Password: passwordHash,
		IsActive: true,
	}
	req.mapFields(&user)

	if err := a.db.WithContext(rctx).Create(&user).Error; err != nil {
		a.l.Error("failed to create user", zap.String("username", user.Username), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, userInfo(&user))
}

func (a *App) UserUpdate(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req UserInfoInput
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 从数据库中获得指定的用户
	user, err, statusCode := findByID[models.User](rctx, a.db, id)
	if err != nil {
		if statusCode != http.StatusNotFound {
			a.l.Error("failed to get user", zap.Uint("id", id), zap.Error(err))
		}
		return a.er(c, statusCode)
	}

	if msg := req.validate(false); msg != "" {
		return a.erm(c, http.StatusBadRequest, msg)
	}
	if taken, err := a.usernameTaken(c, req.Username, id); err != nil {
		a.l.Error("failed to check username", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	} else if taken {
		return a.erm(c, http.StatusBadRequest, "Username is already taken")
	}

	req.mapFields(user)
	if req.Password != "" {
		if user.Password, err = argon2id.CreateHash(req.Password, argon2id.DefaultParams); err != nil {
			a.l.Error("failed to hash password", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// 更新用户信息
	if err := a.db.WithContext(rctx).Save(user).Error; err != nil {
		a.l.Error("failed to update user", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	a.dropUserCache(c, id)

	return c.JSON(http.StatusOK, userInfo(user))
}

func (a *App) UserDelete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// 删除用户
	res := a.db.WithContext(rctx).Delete(&models.User{}, id)
	if res.Error != nil {
		a.l.Error("failed to delete user", zap.Uint("id", id), zap.Error(res.Error))
		return a.er(c, http.StatusInternalServerError)
	} else if res.RowsAffected == 0 {
		return a.er(c, http.StatusNotFound)
	}
	a.dropUserCache(c, id)

	return c.NoContent(http.StatusOK)
}
