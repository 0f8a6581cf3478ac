package handlers

import (
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"smart-mockdata/app/server/models"
	"strings"
)

func (a *App) listCategories(c echo.Context, scope func(*gorm.DB) *gorm.DB) error {
	rctx := c.Request().Context()

	query, err := a.paginate(c, scope(a.db.WithContext(rctx).Model(&models.Category{})).Order("id ASC"))
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	var categories []models.Category
	if err := query.Find(&categories).Error; err != nil {
		a.l.Error("failed to get category list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, mapList(categories, categoryInfo))
}

func (a *App) CategoryList(c echo.Context) error {
	return a.listCategories(c, func(db *gorm.DB) *gorm.DB { return db })
}

func (a *App) CategoryListActive(c echo.Context) error {
	return a.listCategories(c, func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true)
	})
}

// CategorySearch 按名称匹配，没有名称时返回全部
func (a *App) CategorySearch(c echo.Context) error {
	name := strings.TrimSpace(c.QueryParam("name"))

	return a.listCategories(c, func(db *gorm.DB) *gorm.DB {
		if name == "" {
			return db
		}
		return db.Where("name ILIKE ? ESCAPE '\\'", like(name))
	})
}

// CategorySearchQuery 在名称和描述中匹配
func (a *App) CategorySearchQuery(c echo.Context) error {
	q := like(strings.TrimSpace(c.QueryParam("q")))

	return a.listCategories(c, func(db *gorm.DB) *gorm.DB {
		return db.Where("name ILIKE ? ESCAPE '\\' OR description ILIKE ? ESCAPE '\\'", q, q)
	})
}

func (a *App) CategoryGet(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	category, err, statusCode := findByID[models.Category](c.Request().Context(), a.db, id)
	if err != nil {
		if statusCode != http.StatusNotFound {
			a.l.Error("failed to get category", zap.Uint("id", id), zap.Error(err))
		}
		return a.er(c, statusCode)
	}

	return c.JSON(http.StatusOK, categoryInfo(category))
}

func (a *App) CategoryCreate(c echo.Context) error {
	// 绑定请求体
	var req CategoryInfoInput
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if msg := req.validate(); msg != "" {
		return a.erm(c, http.StatusBadRequest, msg)
	}

	// 新分类默认启用
	category := models.Category{IsActive: true}
	req.mapFields(&category)

	if err := a.db.WithContext(c.Request().Context()).Create(&category).Error; err != nil {
		a.l.Error("failed to create category", zap.String("name", category.Name), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, categoryInfo(&category))
}

func (a *App) CategoryUpdate(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req CategoryInfoInput
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	category, err, statusCode := findByID[models.Category](rctx, a.db, id)
	if err != nil {
		if statusCode != http.StatusNotFound {
			a.l.Error("failed to get category", zap.Uint("id", id), zap.Error(err))
		}
		return a.er(c, statusCode)
	}

	if msg := req.validate(); msg != "" {
		return a.erm(c, http.StatusBadRequest, msg)
	}
	req.mapFields(category)

	if err := a.db.WithContext(rctx).Save(category).Error; err != nil {
		a.l.Error("failed to update category", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, categoryInfo(category))
}

func (a *App) CategoryDelete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// 软删除不会触发外键，手动解除书籍的引用
	err = a.db.WithContext(rctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Category{}, id)
		if res.Error != nil {
			return res.Error
		} else if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&models.Book{}).Where("category_id = ?", id).Update("category_id", nil).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to delete category", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}
