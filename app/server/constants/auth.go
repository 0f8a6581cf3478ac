package constants

import "time"

const (
	AuthTokenType            = "Bearer"
	DefaultAuthTokenDuration = 24 * time.Hour
)
