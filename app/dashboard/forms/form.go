// Package forms holds the dedicated create/edit forms for books, categories, api endpoints and users.
package forms

import (
	"context"
	"errors"
	"net/url"
	"strings"
)

// ErrInvalid 表单校验未通过，没有发送任何请求
var ErrInvalid = errors.New("form has invalid fields")

type Notifier interface {
	Success(message string)
	Error(message string)
}

// Errors 字段名到错误信息
type Errors map[string]string

func (e Errors) Has(name string) bool {
	_, ok := e[name]
	return ok
}

// OnSuccess 提交成功后的回调，通常是刷新数据
type OnSuccess func(ctx context.Context)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func checked(form url.Values, name string) bool {
	v := form.Get(name)
	return v == "on" || v == "true"
}

func deref(b *bool) bool {
	return b != nil && *b
}
