package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
	"slices"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	gorm.Model

	// 基础信息
	Username string         `gorm:"column:username;uniqueIndex" json:"username"` // 用户名，全局唯一
	Email    string         `gorm:"column:email" json:"email"`
	Roles    pq.StringArray `gorm:"column:roles;type:text[]" json:"roles"`
	IsActive bool           `gorm:"column:is_active" json:"isActive"` // 停用的用户无法通过认证

	// 密码，使用 argon2id 储存，不进入缓存
	Password string `gorm:"column:password" json:"-"`
}

// Role 展示用的单一角色，有 ADMIN 就是 ADMIN
func (u *User) Role() string {
	if slices.Contains(u.Roles, RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}
