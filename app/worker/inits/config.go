package inits

import (
	"fmt"
	"github.com/joho/godotenv"
	"os"
	"smart-mockdata/app/dashboard/models"
	"smart-mockdata/app/worker/config"
	"strconv"
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

	var cfg config.Config
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if endpoint, exist := os.LookupEnv("BACKEND_ENDPOINT"); !exist {
		cfg.BackendEndpoint = "http://localhost:8080/api"
	} else {
		cfg.BackendEndpoint = endpoint
	}

	if username, exist := os.LookupEnv("SEED_USERNAME"); !exist {
		return nil, fmt.Errorf("SEED_USERNAME environment variable not set")
	} else {
		cfg.Username = username
	}

	if password, exist := os.LookupEnv("SEED_PASSWORD"); !exist {
		return nil, fmt.Errorf("SEED_PASSWORD environment variable not set")
	} else {
		cfg.Password = password
	}

	if timeoutStr, exist := os.LookupEnv("REQUEST_TIMEOUT"); !exist {
		cfg.RequestTimeout = 10 * time.Second
	} else if timeout, err := time.ParseDuration(timeoutStr); err != nil {
		return nil, fmt.Errorf("REQUEST_TIMEOUT should be a valid duration")
	} else {
		cfg.RequestTimeout = timeout
	}

	if intervalStr, exist := os.LookupEnv("SEED_INTERVAL"); !exist {
		cfg.SeedInterval = 1 * time.Minute // 默认每分钟一次
	} else if interval, err := time.ParseDuration(intervalStr); err != nil || interval <= 0 {
		return nil, fmt.Errorf("SEED_INTERVAL should be a positive duration")
	} else {
		cfg.SeedInterval = interval
	}

	if kindsStr, exist := os.LookupEnv("SEED_KINDS"); !exist {
		cfg.SeedKinds = []models.Kind{models.KindCategory, models.KindBook}
	} else {
		for _, s := range strings.Split(kindsStr, ",") {
			kind, ok := models.ParseKind(strings.ToLower(strings.TrimSpace(s)))
			if !ok {
				return nil, fmt.Errorf("SEED_KINDS contains unknown kind %q", s)
			}
			cfg.SeedKinds = append(cfg.SeedKinds, kind)
		}
	}

	if batchStr, exist := os.LookupEnv("SEED_BATCH"); !exist {
		cfg.SeedBatch = 1
	} else if batch, err := strconv.Atoi(batchStr); err != nil || batch < 1 {
		return nil, fmt.Errorf("SEED_BATCH should be a positive integer")
	} else {
		cfg.SeedBatch = batch
	}

	return &cfg, nil
}
