package models

import "gorm.io/gorm"

type Book struct {
	gorm.Model

	Title       string   `gorm:"column:title"`
	Author      string   `gorm:"column:author"`
	ISBN        *string  `gorm:"column:isbn;uniqueIndex"` // 可以不填，不填时为 NULL ，不参与唯一约束
	Description string   `gorm:"column:description;type:text"`
	Price       *float64 `gorm:"column:price"`
	Published   bool     `gorm:"column:published"`

	// 所属分类
	CategoryID *uint     `gorm:"column:category_id"`
	Category   *Category `gorm:"constraint:OnDelete:SET NULL"`
}
