package handlers

import (
	"errors"
	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"smart-mockdata/app/server/constants"
	"smart-mockdata/app/server/jwt"
	"smart-mockdata/app/server/models"
	"strings"
	"time"
)

const messageInvalidCredentials = "Invalid username or password"

func (a *App) AuthSignIn(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 没有写用户名或密码
	if req.Username == "" || req.Password == "" {
		return a.erm(c, http.StatusBadRequest, "Username and password are required")
	}

	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "username = ?", req.Username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erm(c, http.StatusUnauthorized, messageInvalidCredentials)
		} else {
			a.l.Error("failed to find user", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// 提取密码 hash 并进行校验
	if match, _, err := argon2id.CheckHash(req.Password, user.Password); err != nil {
		a.l.Error("failed to check password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	} else if !match || !user.IsActive {
		// 密码不一致或用户已停用
		return a.erm(c, http.StatusUnauthorized, messageInvalidCredentials)
	}

	// 签出 JWT
	expires := time.Now().Add(a.ttl)
	token, err := a.jwt.SignToken(&jwt.User{
		ID:      user.ID,
		Expires: expires.Unix(),
	})
	if err != nil {
		a.l.Error("failed to sign token", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 返回
	info := userInfo(&user)
	return c.JSON(http.StatusOK, &LoginToken{
		AccessToken: token,
		TokenType:   constants.AuthTokenType,
		ID:          info.ID,
		Username:    info.Username,
		Email:       info.Email,
		Roles:       info.Roles,
	})
}

func (a *App) AuthSignUp(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	input := UserInfoInput{
		Username: strings.TrimSpace(req.Username),
		Email:    req.Email,
		Password: req.Password,
		Role:     models.RoleUser,
	}
	if msg := input.validate(true); msg != "" {
		return a.erm(c, http.StatusBadRequest, msg)
	}

	if taken, err := a.usernameTaken(c, input.Username, 0); err != nil {
		a.l.Error("failed to check username", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	} else if taken {
		return a.erm(c, http.StatusBadRequest, "Username is already taken")
	}

	// 处理密码
	passwordHash, err := argon2id.CreateHash(input.Password, argon2id.DefaultParams)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 自助注册的总是启用的普通用户
	user := models.User{
		Password: passwordHash,
		IsActive: true,
	}
	input.mapFields(&user)

	if err := a.db.WithContext(rctx).Create(&user).Error; err != nil {
		a.l.Error("failed to create user", zap.String("username", user.Username), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, &Message{Message: "User registered successfully!"})
}
