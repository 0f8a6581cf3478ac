package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"smart-mockdata/app/dashboard/models"
	"time"
)

// ExpiresAt 读取 token 的 exp 声明，仅用于展示，不做签名校验
func ExpiresAt(s *models.Session) (time.Time, bool) {
	if s == nil || s.AccessToken == "" {
		return time.Time{}, false
	}

	token, _, err := jwt.NewParser().ParseUnverified(s.AccessToken, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
