// Package session persists the signed-in operator's session record.
package session

import (
	"context"
	"errors"
)

// Key 会话记录固定使用的键
const Key = "user"

var ErrNotFound = errors.New("session not found")

// Store 保存唯一一条会话记录，记录不存在即为未登录
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Clear(ctx context.Context) error
}
