package models

type Book struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	ISBN        string    `json:"isbn,omitempty"`
	Description string    `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Published   *bool     `json:"published,omitempty"`
	Category    *Category `json:"category,omitempty"`
}

// BookInput 提交给后端的书籍，分类只以 {id} 引用的形式出现
type BookInput struct {
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	ISBN        string   `json:"isbn"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Published   *bool    `json:"published,omitempty"`
	Category    *Ref     `json:"category"`
}

// BookSearch /books/search 的查询参数，空值不发送
type BookSearch struct {
	Title  string
	Author string
}
