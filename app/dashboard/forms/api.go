package forms

import (
	"context"
	"go.uber.org/zap"
	"net/url"
	"smart-mockdata/app/dashboard/models"
	"strings"
)

type ApiService interface {
	CreateApi(ctx context.Context, in *models.ApiEndpointInput) (*models.ApiEndpoint, error)
	UpdateApi(ctx context.Context, id uint, in *models.ApiEndpointInput) (*models.ApiEndpoint, error)
}

type ApiForm struct {
	l   *zap.Logger
	svc ApiService
	n   Notifier

	id uint

	Name         string
	Description  string
	URL          string
	Method       string
	RequiresAuth bool
	IsActive     bool

	Errors Errors
}

func NewApiForm(l *zap.Logger, svc ApiService, n Notifier) *ApiForm {
	return &ApiForm{l: l, svc: svc, n: n, Method: "GET", IsActive: true, Errors: Errors{}}
}

func (f *ApiForm) Open(_ context.Context, existing *models.ApiEndpoint) {
	*f = ApiForm{l: f.l, svc: f.svc, n: f.n, Method: "GET", IsActive: true, Errors: Errors{}}
	if existing == nil {
		return
	}

	f.id = existing.ID
	f.Name = existing.Name
	f.Description = existing.Description
	f.URL = existing.URL
	if existing.Method != "" {
		f.Method = existing.Method
	}
	f.RequiresAuth = deref(existing.RequiresAuth)
	f.IsActive = deref(existing.IsActive)
}

func (f *ApiForm) ID() uint      { return f.id }
func (f *ApiForm) Editing() bool { return f.id != 0 }

// Methods 可选的请求方法
func (f *ApiForm) Methods() []string { return models.HTTPMethods }

func (f *ApiForm) Set(form url.Values) {
	f.Name = form.Get("name")
	f.Description = form.Get("description")
	f.URL = form.Get("url")
	f.Method = strings.ToUpper(strings.TrimSpace(form.Get("method")))
	f.RequiresAuth = checked(form, "requiresAuth")
	f.IsActive = checked(form, "isActive")
}

func (f *ApiForm) Validate() bool {
	f.Errors = Errors{}
	if blank(f.Name) {
		f.Errors["name"] = "Name is required"
	}
	if blank(f.URL) {
		f.Errors["url"] = "URL is required"
	}
	if f.Method == "" {
		f.Errors["method"] = "HTTP method is required"
	} else if !models.IsHTTPMethod(f.Method) {
		f.Errors["method"] = "Unsupported HTTP method"
	}
	return len(f.Errors) == 0
}

func (f *ApiForm) Payload() *models.ApiEndpointInput {
	return &models.ApiEndpointInput{
		Name:         f.Name,
		Description:  f.Description,
		URL:          f.URL,
		Method:       f.Method,
		RequiresAuth: f.RequiresAuth,
		IsActive:     f.IsActive,
	}
}

func (f *ApiForm) Submit(ctx context.Context, onSuccess OnSuccess) error {
	if !f.Validate() {
		return ErrInvalid
	}

	var err error
	if f.Editing() {
		_, err = f.svc.UpdateApi(ctx, f.id, f.Payload())
	} else {
		_, err = f.svc.CreateApi(ctx, f.Payload())
	}
	if err != nil {
		f.l.Error("failed to save api endpoint", zap.Uint("id", f.id), zap.Error(err))
		if f.Editing() {
			f.n.Error("Failed to update API endpoint")
		} else {
			f.n.Error("Failed to create API endpoint")
		}
		return err
	}

	if f.Editing() {
		f.n.Success("API endpoint updated successfully!")
	} else {
		f.n.Success("API endpoint created successfully!")
	}
	if onSuccess != nil {
		onSuccess(ctx)
	}
	return nil
}
