package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized 后端返回 401，会话已被清除
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNetwork 无法连接后端
	ErrNetwork = errors.New("backend connection failed")
)

// Error 后端拒绝了请求
type Error struct {
	StatusCode int
	Message    string // 后端响应体中的 message 字段，可能为空
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// Message 提取后端给出的错误信息，没有则使用 fallback
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// StatusCode 提取后端响应状态码，非后端错误时为 0
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
