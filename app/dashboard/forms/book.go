package forms

import (
	"context"
	"fmt"
	"go.uber.org/zap"
	"net/url"
	"smart-mockdata/app/dashboard/models"
	"strconv"
	"strings"
)

type BookService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateBook(ctx context.Context, in *models.BookInput) (*models.Book, error)
	UpdateBook(ctx context.Context, id uint, in *models.BookInput) (*models.Book, error)
}

type BookForm struct {
	l   *zap.Logger
	svc BookService
	n   Notifier

	id uint // 0 为新建

	Title       string
	Author      string
	ISBN        string
	Description string
	Price       string
	CategoryID  string

	Categories []models.Category
	Errors     Errors
}

func NewBookForm(l *zap.Logger, svc BookService, n Notifier) *BookForm {
	return &BookForm{l: l, svc: svc, n: n, Errors: Errors{}}
}

// Open 每次打开都重新拉取分类，拉取失败时表单仍然打开
func (f *BookForm) Open(ctx context.Context, existing *models.Book) {
	cats, err := f.svc.ListCategories(ctx)
	if err != nil {
		f.l.Error("failed to load categories", zap.Error(err))
		f.n.Error("Failed to load categories")
	}

	*f = BookForm{l: f.l, svc: f.svc, n: f.n, Categories: cats, Errors: Errors{}}
	if existing == nil {
		return
	}

	f.id = existing.ID
	f.Title = existing.Title
	f.Author = existing.Author
	f.ISBN = existing.ISBN
	f.Description = existing.Description
	if existing.Price != nil {
		f.Price = strconv.FormatFloat(*existing.Price, 'f', -1, 64)
	}
	if existing.Category != nil {
		f.CategoryID = strconv.FormatUint(uint64(existing.Category.ID), 10)
	}
}

func (f *BookForm) ID() uint      { return f.id }
func (f *BookForm) Editing() bool { return f.id != 0 }

// Set 读取提交的表单字段
func (f *BookForm) Set(form url.Values) {
	f.Title = form.Get("title")
	f.Author = form.Get("author")
	f.ISBN = form.Get("isbn")
	f.Description = form.Get("description")
	f.Price = form.Get("price")
	f.CategoryID = form.Get("categoryId")
}

func (f *BookForm) Validate() bool {
	f.Errors = Errors{}
	if blank(f.Title) {
		f.Errors["title"] = "Title is required"
	}
	if blank(f.Author) {
		f.Errors["author"] = "Author is required"
	}
	if blank(f.ISBN) {
		f.Errors["isbn"] = "ISBN is required"
	}
	if !blank(f.Price) {
		if _, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64); err != nil {
			f.Errors["price"] = "Price must be a number"
		}
	}
	return len(f.Errors) == 0
}

// Payload 价格为空时提交 null，分类以 {id} 引用提交
func (f *BookForm) Payload() (*models.BookInput, error) {
	in := &models.BookInput{
		Title:       f.Title,
		Author:      f.Author,
		ISBN:        f.ISBN,
		Description: f.Description,
	}
	if !blank(f.Price) {
		price, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
		if err != nil {
			return nil, fmt.Errorf("parse price: %w", err)
		}
		in.Price = &price
	}
	if !blank(f.CategoryID) {
		id, err := strconv.ParseUint(strings.TrimSpace(f.CategoryID), 10, 0)
		if err != nil {
			return nil, fmt.Errorf("parse category id: %w", err)
		}
		in.Category = &models.Ref{ID: uint(id)}
	}
	return in, nil
}

func (f *BookForm) Submit(ctx context.Context, onSuccess OnSuccess) error {
	if !f.Validate() {
		return ErrInvalid
	}

	in, err := f.Payload()
	if err != nil {
		return ErrInvalid
	}

	if f.Editing() {
		_, err = f.svc.UpdateBook(ctx, f.id, in)
	} else {
		_, err = f.svc.CreateBook(ctx, in)
	}
	if err != nil {
		f.l.Error("failed to save book", zap.Uint("id", f.id), zap.Error(err))
		if f.Editing() {
			f.n.Error("Failed to update book")
		} else {
			f.n.Error("Failed to create book")
		}
		return err
	}

	if f.Editing() {
		f.n.Success("Book updated successfully!")
	} else {
		f.n.Success("Book created successfully!")
	}
	if onSuccess != nil {
		onSuccess(ctx)
	}
	return nil
}
