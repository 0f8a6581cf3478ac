package inits

import (
	"fmt"
	"github.com/joho/godotenv"
	"os"
	"smart-mockdata/app/server/config"
	"smart-mockdata/app/server/constants"
	"strings"
	"time"
)

func Config() (*config.Config, error) {
	// 存在 .env 时先载入，已有的环境变量不会被覆盖
	for _, file := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(file); err == nil {
			break
		}
	}

	// 手动配置映射
	var cfg config.Config
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":8080" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	if redisconn, exist := os.LookupEnv("REDIS_CONN"); !exist {
		return nil, fmt.Errorf("REDIS_CONN environment variable not set")
	} else {
		cfg.System.RedisConnectionString = redisconn
	}

	if sigsk, exist := os.LookupEnv("SIGNATURE_SECRET_KEY"); !exist {
		return nil, fmt.Errorf("SIGNATURE_SECRET_KEY environment variable not set")
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	if durationStr, exist := os.LookupEnv("AUTH_TOKEN_DURATION"); !exist {
		cfg.Security.AuthTokenDuration = constants.DefaultAuthTokenDuration
	} else if duration, err := time.ParseDuration(durationStr); err != nil || duration <= 0 {
		return nil, fmt.Errorf("AUTH_TOKEN_DURATION should be a positive duration")
	} else {
		cfg.Security.AuthTokenDuration = duration
	}

	return &cfg, nil
}
