package inits

import (
	"fmt"
	"io"
	"smart-mockdata/app/dashboard/config"
	"smart-mockdata/app/dashboard/session"
)

// Session 按配置打开会话存储，返回的 io.Closer 在退出时关闭
func Session(cfg *config.Config) (session.Store, io.Closer, error) {
	switch cfg.Session.Store {
	case SessionStoreRedis:
		s, err := session.NewRedisStore(cfg.Session.RedisConnectionString)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open redis session store: %w", err)
		}
		return s, s, nil
	case SessionStoreMemory:
		return session.NewMemoryStore(), io.NopCloser(nil), nil
	default:
		s, err := session.NewSQLiteStore(cfg.Session.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite session store: %w", err)
		}
		return s, s, nil
	}
}
