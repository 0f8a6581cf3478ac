package handlers

import (
	"context"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"net/http"
	"strconv"
	"strings"
)

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id: %q", c.Param("id"))
	}
	return uint(id), nil
}

// findByID 找不到时返回 404 ，其它错误返回 500
func findByID[M any](ctx context.Context, db *gorm.DB, id uint, preloads ...string) (*M, error, int) {
	var model M
	query := db.WithContext(ctx)
	for _, p := range preloads {
		query = query.Preload(p)
	}
	if err := query.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err, http.StatusNotFound
		}
		return nil, fmt.Errorf("find %d: %w", id, err), http.StatusInternalServerError
	}
	return &model, nil, http.StatusOK
}

// likeEscaper 转义 LIKE 通配符，配合 ESCAPE '\' 使用
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// like 构造大小写无关子串匹配的参数，输入按字面匹配
func like(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
