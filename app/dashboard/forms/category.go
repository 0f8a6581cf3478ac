package forms

import (
	"context"
	"go.uber.org/zap"
	"net/url"
	"smart-mockdata/app/dashboard/models"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, in *models.CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uint, in *models.CategoryInput) (*models.Category, error)
}

type CategoryForm struct {
	l   *zap.Logger
	svc CategoryService
	n   Notifier

	id uint

	Name        string
	Description string
	IsActive    bool

	Errors Errors
}

func NewCategoryForm(l *zap.Logger, svc CategoryService, n Notifier) *CategoryForm {
	return &CategoryForm{l: l, svc: svc, n: n, IsActive: true, Errors: Errors{}}
}

// Open 新建时默认启用，已有记录缺少 isActive 时视为未启用
func (f *CategoryForm) Open(_ context.Context, existing *models.Category) {
	*f = CategoryForm{l: f.l, svc: f.svc, n: f.n, IsActive: true, Errors: Errors{}}
	if existing == nil {
		return
	}

	f.id = existing.ID
	f.Name = existing.Name
	f.Description = existing.Description
	f.IsActive = deref(existing.IsActive)
}

func (f *CategoryForm) ID() uint      { return f.id }
func (f *CategoryForm) Editing() bool { return f.id != 0 }

func (f *CategoryForm) Set(form url.Values) {
	f.Name = form.Get("name")
	f.Description = form.Get("description")
	f.IsActive = checked(form, "isActive")
}

func (f *CategoryForm) Validate() bool {
	f.Errors = Errors{}
	if blank(f.Name) {
		f.Errors["name"] = "Name is required"
	}
	return len(f.Errors) == 0
}

func (f *CategoryForm) Payload() *models.CategoryInput {
	return &models.CategoryInput{
		Name:        f.Name,
		Description: f.Description,
		IsActive:    f.IsActive,
	}
}

func (f *CategoryForm) Submit(ctx context.Context, onSuccess OnSuccess) error {
	if !f.Validate() {
		return ErrInvalid
	}

	var err error
	if f.Editing() {
		_, err = f.svc.UpdateCategory(ctx, f.id, f.Payload())
	} else {
		_, err = f.svc.CreateCategory(ctx, f.Payload())
	}
	if err != nil {
		f.l.Error("failed to save category", zap.Uint("id", f.id), zap.Error(err))
		if f.Editing() {
			f.n.Error("Failed to update category")
		} else {
			f.n.Error("Failed to create category")
		}
		return err
	}

	if f.Editing() {
		f.n.Success("Category updated successfully!")
	} else {
		f.n.Success("Category created successfully!")
	}
	if onSuccess != nil {
		onSuccess(ctx)
	}
	return nil
}
