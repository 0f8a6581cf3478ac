package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"smart-mockdata/app/server/models"
	"strings"
)

func (a *App) listApis(c echo.Context, scope func(*gorm.DB) *gorm.DB) error {
	rctx := c.Request().Context()

	query, err := a.paginate(c, scope(a.db.WithContext(rctx).Model(&models.ApiEndpoint{})).Order("id ASC"))
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	var apis []models.ApiEndpoint
	if err := query.Find(&apis).Error; err != nil {
		a.l.Error("failed to get api endpoint list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, mapList(apis, apiEndpointInfo))
}

func (a *App) ApiList(c echo.Context) error {
	return a.listApis(c, func(db *gorm.DB) *gorm.DB { return db })
}

func (a *App) ApiListActive(c echo.Context) error {
	return a.listApis(c, func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true)
	})
}

// ApiListByMethod 方法名大小写无关
func (a *App) ApiListByMethod(c echo.Context) error {
	method := strings.ToUpper(strings.TrimSpace(c.Param("method")))

	return a.listApis(c, func(db *gorm.DB) *gorm.DB {
		return db.Where("UPPER(method) = ?", method)
	})
}

func (a *App) ApiGet(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	api, err, statusCode := findByID[models.ApiEndpoint](c.Request().Context(), a.db, id)
	if err != nil {
		if statusCode != http.StatusNotFound {
			a.l.Error("failed to get api endpoint", zap.Uint("id", id), zap.Error(err))
		}
		return a.er(c, statusCode)
	}

	return c.JSON(http.StatusOK, apiEndpointInfo(api))
}

func (a *App) ApiCreate(c echo.Context) error {
	// 绑定请求体
	var req ApiEndpointInfoInput
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if msg := req.validate(); msg != "" {
		return a.erm(c, http.StatusBadRequest, msg)
	}

	// 新记录默认启用，不需要认证
	api := models.ApiEndpoint{IsActive: true}
	req.mapFields(&api)

	if err := a.db.WithContext(c.Request().Context()).Create(&api).Error; err != nil {
		a.l.Error("failed to create api endpoint", zap.String("name", api.Name), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, apiEndpointInfo(&api))
}

func (a *App) ApiUpdate(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req ApiEndpointInfoInput
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	api, err, statusCode := findByID[models.ApiEndpoint](rctx, a.db, id)
	if err != nil {
		if statusCode != http.StatusNotFound {
			a.l.Error("failed to get api endpoint", zap.Uint("id", id), zap.Error(err))
		}
		return a.er(c, statusCode)
	}

	if msg := req.validate(); msg != "" {
		return a.erm(c, http.StatusBadRequest, msg)
	}
	req.mapFields(api)

	if err := a.db.WithContext(rctx).Save(api).Error; err != nil {
		a.l.Error("failed to update api endpoint", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, apiEndpointInfo(api))
}

func (a *App) ApiDelete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	res := a.db.WithContext(c.Request().Context()).Delete(&models.ApiEndpoint{}, id)
	if res.Error != nil {
		a.l.Error("failed to delete api endpoint", zap.Uint("id", id), zap.Error(res.Error))
		return a.er(c, http.StatusInternalServerError)
	} else if res.RowsAffected == 0 {
		return a.er(c, http.StatusNotFound)
	}

	return c.NoContent(http.StatusOK)
}
