package forms

import (
	"net/url"
	"unicode/utf8"
)

// LoginForm 登录表单只做本地校验，提交由 auth 完成
type LoginForm struct {
	Username string
	Password string
	Errors   Errors
	Message  string // 登录失败时的提示
}

func (f *LoginForm) Set(form url.Values) {
	f.Username = form.Get("username")
	f.Password = form.Get("password")
}

func (f *LoginForm) Validate() bool {
	f.Errors = Errors{}
	switch {
	case f.Username == "":
		f.Errors["username"] = "Username is required"
	case utf8.RuneCountInString(f.Username) < 3:
		f.Errors["username"] = "Username must be at least 3 characters"
	}
	switch {
	case f.Password == "":
		f.Errors["password"] = "Password is required"
	case utf8.RuneCountInString(f.Password) < 6:
		f.Errors["password"] = "Password must be at least 6 characters"
	}
	return len(f.Errors) == 0
}

// RegisterForm 注册表单
type RegisterForm struct {
	Username string
	Email    string
	Password string
	Errors   Errors
	Message  string
}

func (f *RegisterForm) Set(form url.Values) {
	f.Username = form.Get("username")
	f.Email = form.Get("email")
	f.Password = form.Get("password")
}

func (f *RegisterForm) Validate() bool {
	f.Errors = Errors{}
	switch {
	case f.Username == "":
		f.Errors["username"] = "Username is required"
	case utf8.RuneCountInString(f.Username) < 3:
		f.Errors["username"] = "Username must be at least 3 characters"
	}
	switch {
	case f.Email == "":
		f.Errors["email"] = "Email is required"
	case !emailPattern.MatchString(f.Email):
		f.Errors["email"] = "Email is invalid"
	}
	switch {
	case f.Password == "":
		f.Errors["password"] = "Password is required"
	case utf8.RuneCountInString(f.Password) < 6:
		f.Errors["password"] = "Password must be at least 6 characters"
	}
	return len(f.Errors) == 0
}
