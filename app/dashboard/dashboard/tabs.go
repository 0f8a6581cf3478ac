package dashboard

import (
	"smart-mockdata/app/dashboard/models"
	"strings"
)

// Tab 标签页的展示信息
type Tab struct {
	Kind  models.Kind
	Title string
	Noun  string // 单条记录的名称
	Color string
	Icon  string
}

var Tabs = []Tab{
	{Kind: models.KindUser, Title: "Users", Noun: "User", Color: "primary", Icon: "people"},
	{Kind: models.KindBook, Title: "Books", Noun: "Book", Color: "secondary", Icon: "book"},
	{Kind: models.KindCategory, Title: "Categories", Noun: "Category", Color: "success", Icon: "category"},
	{Kind: models.KindApi, Title: "API Endpoints", Noun: "API Endpoint", Color: "info", Icon: "auto_awesome"},
}

func TabOf(kind models.Kind) Tab {
	for _, t := range Tabs {
		if t.Kind == kind {
			return t
		}
	}
	return Tabs[0]
}

// Label 资源类型的首字母大写形式，用于提示信息
func Label(kind models.Kind) string {
	s := string(kind)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Records 四类资源的列表
type Records struct {
	Users      []models.User
	Books      []models.Book
	Categories []models.Category
	Apis       []models.ApiEndpoint
}

func (r *Records) Len(kind models.Kind) int {
	switch kind {
	case models.KindUser:
		return len(r.Users)
	case models.KindBook:
		return len(r.Books)
	case models.KindCategory:
		return len(r.Categories)
	case models.KindApi:
		return len(r.Apis)
	}
	return 0
}

// remove 删除指定 id 的记录，其它记录保持原顺序
func (r *Records) remove(kind models.Kind, id uint) {
	switch kind {
	case models.KindUser:
		r.Users = without(r.Users, func(u models.User) bool { return u.ID == id })
	case models.KindBook:
		r.Books = without(r.Books, func(b models.Book) bool { return b.ID == id })
	case models.KindCategory:
		r.Categories = without(r.Categories, func(c models.Category) bool { return c.ID == id })
	case models.KindApi:
		r.Apis = without(r.Apis, func(a models.ApiEndpoint) bool { return a.ID == id })
	}
}

func without[T any](list []T, match func(T) bool) []T {
	if list == nil {
		return nil
	}
	out := make([]T, 0, len(list))
	for _, v := range list {
		if !match(v) {
			out = append(out, v)
		}
	}
	return out
}

func find[T any](lists [][]T, match func(T) bool) (*T, bool) {
	for _, list := range lists {
		for i := range list {
			if match(list[i]) {
				v := list[i]
				return &v, true
			}
		}
	}
	return nil, false
}
