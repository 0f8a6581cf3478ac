package models

import "gorm.io/gorm"

type ApiEndpoint struct {
	gorm.Model

	Name         string `gorm:"column:name"`
	Description  string `gorm:"column:description;type:text"`
	URL          string `gorm:"column:url"`
	Method       string `gorm:"column:method"` // 大写的 HTTP 方法
	RequiresAuth bool   `gorm:"column:requires_auth"`
	IsActive     bool   `gorm:"column:is_active"`
}
