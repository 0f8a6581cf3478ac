package models

// Kind 资源类型，是增删改查的基本单位
type Kind string

const (
	KindUser     Kind = "user"
	KindBook     Kind = "book"
	KindCategory Kind = "category"
	KindApi      Kind = "api"
)

// Kinds 按标签页顺序排列
var Kinds = []Kind{KindUser, KindBook, KindCategory, KindApi}

func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Ref 只带 ID 的引用，例如书籍所属的分类
type Ref struct {
	ID uint `json:"id"`
}
