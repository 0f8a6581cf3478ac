package config

import (
	"time"
)

type Config struct {
	System struct {
		IsProd bool   // 是否为生产环境
		Listen string // 监听地址
	}
	Backend struct {
		Endpoint       string        // 后端 API 基础地址
		RequestTimeout time.Duration // 单个请求的超时时间
	}
	Session struct {
		Store                 string // 会话存储：sqlite / redis / memory
		DBPath                string // SQLite 文件路径
		RedisConnectionString string // Redis 数据库的连接字符串
	}
}
