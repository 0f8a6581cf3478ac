// Package auth keeps the signed-in operator's session and exposes it to the API client and route guard.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"net/http"
	"smart-mockdata/app/dashboard/models"
	"smart-mockdata/app/dashboard/session"
)

// Signer 后端的登录注册接口
type Signer interface {
	SignIn(ctx context.Context, req *models.LoginRequest) (*models.Session, error)
	SignUp(ctx context.Context, req *models.SignupRequest) error
}

type Auth struct {
	l      *zap.Logger
	store  session.Store
	signer Signer
}

func New(l *zap.Logger, store session.Store, signer Signer) *Auth {
	return &Auth{
		l:      l,
		store:  store,
		signer: signer,
	}
}

// Login 登录成功且带有 token 时持久化会话，后端错误原样返回
func (a *Auth) Login(ctx context.Context, username, password string) (*models.Session, error) {
	s, err := a.signer.SignIn(ctx, &models.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	if s.AccessToken != "" {
		data, err := json.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("encode session: %w", err)
		}
		if err := a.store.Save(ctx, data); err != nil {
			a.l.Error("failed to persist session", zap.String("username", s.Username), zap.Error(err))
			return nil, fmt.Errorf("persist session: %w", err)
		}
	}

	return s, nil
}

func (a *Auth) Register(ctx context.Context, username, email, password string) error {
	return a.signer.SignUp(ctx, &models.SignupRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
}

// Logout 无条件清除本地会话，不请求后端
func (a *Auth) Logout(ctx context.Context) {
	if err := a.store.Clear(ctx); err != nil {
		a.l.Error("failed to clear session", zap.Error(err))
	}
}

// CurrentUser 返回持久化的会话，不存在或无法解析时视为未登录
func (a *Auth) CurrentUser(ctx context.Context) (*models.Session, bool) {
	data, err := a.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			a.l.Error("failed to load session", zap.Error(err))
		}
		return nil, false
	}

	var s models.Session
	if err := json.Unmarshal(data, &s); err != nil {
		a.l.Error("failed to decode stored session", zap.ByteString("data", data), zap.Error(err))
		return nil, false
	}
	return &s, true
}

func (a *Auth) Token(ctx context.Context) (string, bool) {
	s, ok := a.CurrentUser(ctx)
	if !ok || s.AccessToken == "" {
		return "", false
	}
	return s.AccessToken, true
}

func (a *Auth) IsAuthenticated(ctx context.Context) bool {
	_, ok := a.Token(ctx)
	return ok
}

// AuthHeader 已登录时返回 Bearer 认证头，否则为空
func (a *Auth) AuthHeader(ctx context.Context) http.Header {
	h := http.Header{}
	if token, ok := a.Token(ctx); ok {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
