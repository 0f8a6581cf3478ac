package inits

import (
	"fmt"
	"github.com/joho/godotenv"
	"os"
	"smart-mockdata/app/dashboard/config"
	"strings"
	"time"
)

const (
	SessionStoreSQLite = "sqlite"
	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"
)

func Config() (*config.Config, error) {
	// 存在 .env 时先载入，已有的环境变量不会被覆盖
	for _, file := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(file); err == nil {
			break
		}
	}

	var cfg config.Config
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = "127.0.0.1:3000" // 默认只监听本机
	} else {
		cfg.System.Listen = listen
	}

	if endpoint, exist := os.LookupEnv("BACKEND_ENDPOINT"); !exist {
		cfg.Backend.Endpoint = "http://localhost:8080/api"
	} else {
		cfg.Backend.Endpoint = endpoint
	}

	if timeoutStr, exist := os.LookupEnv("REQUEST_TIMEOUT"); !exist {
		cfg.Backend.RequestTimeout = 10 * time.Second
	} else if timeout, err := time.ParseDuration(timeoutStr); err != nil {
		return nil, fmt.Errorf("REQUEST_TIMEOUT should be a valid duration")
	} else {
		cfg.Backend.RequestTimeout = timeout
	}

	if store, exist := os.LookupEnv("SESSION_STORE"); !exist {
		cfg.Session.Store = SessionStoreSQLite
	} else {
		switch store = strings.ToLower(store); store {
		case SessionStoreSQLite, SessionStoreRedis, SessionStoreMemory:
			cfg.Session.Store = store
		default:
			return nil, fmt.Errorf("SESSION_STORE should be one of sqlite, redis, memory")
		}
	}

	if dbPath, exist := os.LookupEnv("SESSION_DB_PATH"); !exist {
		cfg.Session.DBPath = "./dashboard-session.db"
	} else {
		cfg.Session.DBPath = dbPath
	}

	if redisconn, exist := os.LookupEnv("REDIS_CONN"); exist {
		cfg.Session.RedisConnectionString = redisconn
	} else if cfg.Session.Store == SessionStoreRedis {
		return nil, fmt.Errorf("REDIS_CONN environment variable not set")
	}

	return &cfg, nil
}
