package constants

import "time"

const (
	CacheKeyUserInfo = "mockdata:user:info:%d"
)

const (
	CacheExpireUserInfo = 1 * time.Hour
)
