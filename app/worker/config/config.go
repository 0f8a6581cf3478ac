package config

import (
	"smart-mockdata/app/dashboard/models"
	"time"
)

type Config struct {
	// 基础配置
	IsProd bool

	// 与后端通信配置
	BackendEndpoint string
	Username        string
	Password        string
	RequestTimeout  time.Duration

	// 生成配置
	SeedInterval time.Duration
	SeedKinds    []models.Kind // 每一轮依次生成的资源类型
	SeedBatch    int           // 每一轮每种资源生成的数量
}
