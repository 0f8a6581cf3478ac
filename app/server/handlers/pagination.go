package handlers

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"strconv"
)

const defaultPageLimit = 100

// parsePagination 没有 page 和 limit 时展示全部，page 从 1 开始
func parsePagination(c echo.Context) (showAll bool, page int, limit int, err error) {
	pageStr, limitStr := c.QueryParam("page"), c.QueryParam("limit")
	if pageStr == "" && limitStr == "" {
		return true, -1, -1, nil
	}

	// 映射前：第几页，每页限制多少个
	// 映射后：页减一，限制不变
	if pageStr != "" {
		if page, err = strconv.Atoi(pageStr); err != nil {
			return false, 0, 0, fmt.Errorf("invalid page: %w", err)
		}
	}
	if page < 1 {
		page = 0
	} else {
		page--
	}

	if limitStr != "" {
		if limit, err = strconv.Atoi(limitStr); err != nil {
			return false, 0, 0, fmt.Errorf("invalid limit: %w", err)
		}
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}

	return false, page, limit, nil
}

// paginate 对查询应用分页，总数写入 X-Total-Count 响应头
func (a *App) paginate(c echo.Context, query *gorm.DB) (*gorm.DB, error) {
	showAll, page, limit, err := parsePagination(c)
	if err != nil {
		return nil, err
	}
	if showAll {
		return query, nil
	}

	var count int64
	if err := query.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}
	c.Response().Header().Set("X-Total-Count", strconv.FormatInt(count, 10))

	return query.Limit(limit).Offset(page * limit), nil
}
