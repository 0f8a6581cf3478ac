package models

// Session 登录成功后后端返回的会话，持久化保存，是否登录只看这里的 token
type Session struct {
	AccessToken string   `json:"accessToken"`
	TokenType   string   `json:"tokenType,omitempty"`
	ID          uint     `json:"id,omitempty"`
	Username    string   `json:"username"`
	Email       string   `json:"email,omitempty"`
	Roles       []string `json:"roles,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
