package handlers

import (
	"context"
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"smart-mockdata/app/server/models"
	"strings"
)

// checkBook 校验引用的分类存在且书号没有被其他书籍占用
func (a *App) checkBook(ctx context.Context, book *models.Book) (string, error, int) {
	if book.CategoryID != nil {
		if err, statusCode := validateIDs[models.Category](ctx, a.db, []uint{*book.CategoryID}); err != nil {
			return "Category not found", err, statusCode
		}
	}

	if book.ISBN != nil {
		var count int64
		if err := a.db.WithContext(ctx).
			Unscoped().
			Model(&models.Book{}).
			Where("isbn = ? AND id <> ?", *book.ISBN, book.ID).
			Count(&count).Error; err != nil {
			return "", err, http.StatusInternalServerError
		} else if count > 0 {
			return "ISBN is already in use", errors.New("isbn taken"), http.StatusBadRequest
		}
	}

	return "", nil, http.StatusOK
}

func (a *App) listBooks(c echo.Context, scope func(*gorm.DB) *gorm.DB) error {
	rctx := c.Request().Context()

	query, err := a.paginate(c, scope(a.db.WithContext(rctx).Model(&models.Book{})).Order("id ASC"))
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	var books []models.Book
	if err := query.Preload("Category").Find(&books).Error; err != nil {
		a.l.Error("failed to get book list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, mapList(books, bookInfo))
}

func (a *App) BookList(c echo.Context) error {
	return a.listBooks(c, func(db *gorm.DB) *gorm.DB { return db })
}

// BookSearch 有 title 时按标题匹配，否则有 author 时按作者匹配，都没有返回全部
func (a *App) BookSearch(c echo.Context) error {
	title := strings.TrimSpace(c.QueryParam("title"))
	author := strings.TrimSpace(c.QueryParam("author"))

	return a.listBooks(c, func(db *gorm.DB) *gorm.DB {
		switch {
		case title != "":
			return db.Where("title ILIKE ? ESCAPE '\\'", like(title))
		case author != "":
			return db.Where("author ILIKE ? ESCAPE '\\'", like(author))
		default:
			return db
		}
	})
}

// BookSearchQuery 在标题、作者和简介中匹配
func (a *App) BookSearchQuery(c echo.Context) error {
	q := like(strings.TrimSpace(c.QueryParam("q")))

	return a.listBooks(c, func(db *gorm.DB) *gorm.DB {
		return db.Where("title ILIKE ? ESCAPE '\\' OR author ILIKE ? ESCAPE '\\' OR description ILIKE ? ESCAPE '\\'", q, q, q)
	})
}

func (a *App) BookGet(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	book, err, statusCode := findByID[models.Book](c.Request().Context(), a.db, id, "Category")
	if err != nil {
		if statusCode != http.StatusNotFound {
			a.l.Error("failed to get book", zap.Uint("id", id), zap.Error(err))
		}
		return a.er(c, statusCode)
	}

	return c.JSON(http.StatusOK, bookInfo(book))
}

func (a *App) BookCreate(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req BookInfoInput
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if msg := req.validate(); msg != "" {
		return a.erm(c, http.StatusBadRequest, msg)
	}

	var book models.Book
	req.mapFields(&book)

	if msg, err, statusCode := a.checkBook(rctx, &book); err != nil {
		if statusCode == http.StatusInternalServerError {
			a.l.Error("failed to check book", zap.Error(err))
			return a.er(c, statusCode)
		}
		return a.erm(c, statusCode, msg)
	}

	if err := a.db.WithContext(rctx).Create(&book).Error; err != nil {
		a.l.Error("failed to create book", zap.String("title", book.Title), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return a.respondBook(c, book.ID)
}

func (a *App) BookUpdate(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req BookInfoInput
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 从数据库中获得指定的书籍
	book, err, statusCode := findByID[models.Book](rctx, a.db, id)
	if err != nil {
		if statusCode != http.StatusNotFound {
			a.l.Error("failed to get book", zap.Uint("id", id), zap.Error(err))
		}
		return a.er(c, statusCode)
	}

	if msg := req.validate(); msg != "" {
		return a.erm(c, http.StatusBadRequest, msg)
	}
	req.mapFields(book)

	if msg, err, statusCode := a.checkBook(rctx, book); err != nil {
		if statusCode == http.StatusInternalServerError {
			a.l.Error("failed to check book", zap.Error(err))
			return a.er(c, statusCode)
		}
		return a.erm(c, statusCode, msg)
	}

	// 更新书籍信息
	if err := a.db.WithContext(rctx).Save(book).Error; err != nil {
		a.l.Error("failed to update book", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return a.respondBook(c, id)
}

// respondBook 重新读取书籍，带上完整的分类
func (a *App) respondBook(c echo.Context, id uint) error {
	book, err, statusCode := findByID[models.Book](c.Request().Context(), a.db, id, "Category")
	if err != nil {
		a.l.Error("failed to reload book", zap.Uint("id", id), zap.Error(err))
		return a.er(c, statusCode)
	}

	return c.JSON(http.StatusOK, bookInfo(book))
}

func (a *App) BookDelete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	// 删除书籍
	res := a.db.WithContext(c.Request().Context()).Delete(&models.Book{}, id)
	if res.Error != nil {
		a.l.Error("failed to delete book", zap.Uint("id", id), zap.Error(res.Error))
		return a.er(c, http.StatusInternalServerError)
	} else if res.RowsAffected == 0 {
		return a.er(c, http.StatusNotFound)
	}

	return c.NoContent(http.StatusOK)
}
