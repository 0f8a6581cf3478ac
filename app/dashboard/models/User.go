package models

type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// UserInput 创建或更新用户时提交的内容，更新时密码留空表示不修改
type UserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
	IsActive bool   `json:"isActive"`
}

var UserRoles = []string{"USER", "ADMIN"}
