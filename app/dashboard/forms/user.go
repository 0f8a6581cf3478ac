package forms

import (
	"context"
	"go.uber.org/zap"
	"net/url"
	"regexp"
	"smart-mockdata/app/dashboard/models"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type UserService interface {
	CreateUser(ctx context.Context, in *models.UserInput) (*models.User, error)
	UpdateUser(ctx context.Context, id uint, in *models.UserInput) (*models.User, error)
}

type UserForm struct {
	l   *zap.Logger
	svc UserService
	n   Notifier

	id uint

	Username string
	Email    string
	Password string // 编辑时留空表示不修改
	Role     string
	IsActive bool

	Errors Errors
}

func NewUserForm(l *zap.Logger, svc UserService, n Notifier) *UserForm {
	return &UserForm{l: l, svc: svc, n: n, Role: "USER", IsActive: true, Errors: Errors{}}
}

func (f *UserForm) Open(_ context.Context, existing *models.User) {
	*f = UserForm{l: f.l, svc: f.svc, n: f.n, Role: "USER", IsActive: true, Errors: Errors{}}
	if existing == nil {
		return
	}

	f.id = existing.ID
	f.Username = existing.Username
	f.Email = existing.Email
	if existing.Role != "" {
		f.Role = existing.Role
	}
	f.IsActive = deref(existing.IsActive)
}

func (f *UserForm) ID() uint      { return f.id }
func (f *UserForm) Editing() bool { return f.id != 0 }

func (f *UserForm) Roles() []string { return models.UserRoles }

func (f *UserForm) Set(form url.Values) {
	f.Username = form.Get("username")
	f.Email = form.Get("email")
	f.Password = form.Get("password")
	f.Role = form.Get("role")
	f.IsActive = checked(form, "isActive")
}

func (f *UserForm) Validate() bool {
	f.Errors = Errors{}
	if blank(f.Username) {
		f.Errors["username"] = "Username is required"
	}
	if blank(f.Email) {
		f.Errors["email"] = "Email is required"
	} else if !emailPattern.MatchString(f.Email) {
		f.Errors["email"] = "Email is invalid"
	}
	if !f.Editing() && f.Password == "" {
		f.Errors["password"] = "Password is required"
	}
	return len(f.Errors) == 0
}

func (f *UserForm) Payload() *models.UserInput {
	return &models.UserInput{
		Username: f.Username,
		Email:    f.Email,
		Password: f.Password,
		Role:     f.Role,
		IsActive: f.IsActive,
	}
}

func (f *UserForm) Submit(ctx context.Context, onSuccess OnSuccess) error {
	if !f.Validate() {
		return ErrInvalid
	}

	var err error
	if f.Editing() {
		_, err = f.svc.UpdateUser(ctx, f.id, f.Payload())
	} else {
		_, err = f.svc.CreateUser(ctx, f.Payload())
	}
	if err != nil {
		f.l.Error("failed to save user", zap.Uint("id", f.id), zap.Error(err))
		if f.Editing() {
			f.n.Error("Failed to update user")
		} else {
			f.n.Error("Failed to create user")
		}
		return err
	}

	if f.Editing() {
		f.n.Success("User updated successfully!")
	} else {
		f.n.Success("User created successfully!")
	}
	if onSuccess != nil {
		onSuccess(ctx)
	}
	return nil
}
