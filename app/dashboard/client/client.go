// Package client talks to the Smart MockData backend REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"go.uber.org/zap"
	"io"
	"net/http"
	"net/url"
)

// 最多读取的错误响应体大小
const maxErrorBody = 1 << 20

// SessionProvider 提供当前 token，并在授权失败时清除会话
type SessionProvider interface {
	Token(ctx context.Context) (string, bool)
	Logout(ctx context.Context)
}

type Client struct {
	l        *zap.Logger
	endpoint string // 后端 API 基础地址，例如 http://localhost:8080/api
	hc       *http.Client
	session  SessionProvider

	onUnauthorized func() // 401 之后的全局跳转
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

func WithUnauthorizedHandler(f func()) Option {
	return func(c *Client) {
		c.onUnauthorized = f
	}
}

func New(l *zap.Logger, endpoint string, opts ...Option) *Client {
	c := &Client{
		l:        l,
		endpoint: endpoint,
		hc:       http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UseSession 绑定会话来源，之后的请求都会带上 token
func (c *Client) UseSession(p SessionProvider) {
	c.session = p
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	public bool // 认证接口：不附加 token，也不触发 401 登出
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	// 准备请求的基础信息
	reqUrl, err := url.JoinPath(c.endpoint, r.path)
	if err != nil {
		c.l.Error("failed to join request url", zap.String("endpoint", c.endpoint), zap.String("path", r.path), zap.Error(err))
		return fmt.Errorf("join request url: %w", err)
	}
	if len(r.query) > 0 {
		reqUrl += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			c.l.Error("failed to encode request body", zap.String("url", reqUrl), zap.Error(err))
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, reqUrl, body)
	if err != nil {
		c.l.Error("failed to prepare request", zap.String("url", reqUrl), zap.Error(err))
		return fmt.Errorf("prepare request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !r.public {
		c.beforeRequest(ctx, req)
	}

	// 发送请求
	res, err := c.hc.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s %s: %w", r.method, r.path, ctxErr)
		}
		c.l.Error("backend connection failed, please ensure the backend is running",
			zap.String("method", r.method), zap.String("url", reqUrl), zap.Error(err))
		return fmt.Errorf("%w: %s %s: %v", ErrNetwork, r.method, r.path, err)
	}
	defer res.Body.Close()

	if err := c.afterResponse(ctx, res, r.public); err != nil {
		return err
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}

	// 解析响应体
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		c.l.Error("failed to decode response", zap.String("method", r.method), zap.String("url", reqUrl), zap.Error(err))
		return fmt.Errorf("decode response of %s %s: %w", r.method, r.path, err)
	}
	return nil
}

// beforeRequest 有 token 时附加 Bearer 认证头，未登录时直接发送
func (c *Client) beforeRequest(ctx context.Context, req *http.Request) {
	if c.session == nil {
		return
	}
	if token, ok := c.session.Token(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// afterResponse 把非 2xx 响应转为 *Error，401 时清除会话并执行全局跳转
func (c *Client) afterResponse(ctx context.Context, res *http.Response, public bool) error {
	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}

	apiErr := &Error{
		StatusCode: res.StatusCode,
		Message:    readMessage(res.Body),
	}

	if res.StatusCode == http.StatusUnauthorized && !public {
		c.l.Warn("backend rejected the session, logging out", zap.String("url", res.Request.URL.String()))
		if c.session != nil {
			c.session.Logout(context.WithoutCancel(ctx))
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}

	return apiErr
}

func readMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
