package schema

import (
	"net/url"
	"smart-mockdata/app/dashboard/models"
	"strconv"
	"strings"
)

// Structure 一种资源的有序字段列表
type Structure []Field

// Values 表单当前的值，布尔字段为 "true" 或 "false"
type Values map[string]string

func (v Values) Bool(name string) bool {
	return v[name] == "true"
}

// Structures 返回资源的字段结构，书籍的分类选项来自当前已加载的分类
func Structures(kind models.Kind, categories []models.Category) Structure {
	switch kind {
	case models.KindUser:
		roles := make([]Option, 0, len(models.UserRoles))
		for _, r := range models.UserRoles {
			roles = append(roles, Option{Value: r, Label: r})
		}
		return Structure{
			Text("username", "Username", true),
			Email("email", "Email", true),
			Password("password", "Password", true),
			Select("role", "Role", false, roles),
			Boolean("isActive", "Active"),
		}
	case models.KindBook:
		options := make([]Option, 0, len(categories))
		for _, c := range categories {
			options = append(options, Option{Value: strconv.FormatUint(uint64(c.ID), 10), Label: c.Name})
		}
		return Structure{
			Text("title", "Title", true),
			Text("author", "Author", true),
			Text("isbn", "ISBN", false),
			TextArea("description", "Description", false),
			Select("categoryId", "Category", false, options),
			Boolean("published", "Published"),
		}
	case models.KindCategory:
		return Structure{
			Text("name", "Name", true),
			TextArea("description", "Description", false),
			Boolean("isActive", "Active"),
		}
	case models.KindApi:
		methods := make([]Option, 0, len(models.HTTPMethods))
		for _, m := range models.HTTPMethods {
			methods = append(methods, Option{Value: m, Label: m})
		}
		return Structure{
			Text("name", "Name", true),
			TextArea("description", "Description", false),
			Text("url", "URL", true),
			Select("method", "HTTP Method", true, methods),
			Boolean("requiresAuth", "Requires Auth"),
			Boolean("isActive", "Active"),
		}
	}
	return nil
}

// Empty 重置后的表单：布尔为 false，其它为空字符串
func (s Structure) Empty() Values {
	values := make(Values, len(s))
	for _, f := range s {
		if _, ok := f.(*BooleanField); ok {
			values[f.Name()] = "false"
		} else {
			values[f.Name()] = ""
		}
	}
	return values
}

// Decode 从提交的表单中读取字段值，未勾选的布尔字段视为 false
func (s Structure) Decode(form url.Values) Values {
	values := s.Empty()
	for _, f := range s {
		if _, ok := f.(*BooleanField); ok {
			if v := form.Get(f.Name()); v == "on" || v == "true" {
				values[f.Name()] = "true"
			}
			continue
		}
		values[f.Name()] = form.Get(f.Name())
	}
	return values
}

// Missing 返回未填写的必填字段名
func (s Structure) Missing(values Values) []string {
	var missing []string
	for _, f := range s {
		if f.Required() && strings.TrimSpace(values[f.Name()]) == "" {
			missing = append(missing, f.Name())
		}
	}
	return missing
}
