package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model

	Name        string `gorm:"column:name"`
	Description string `gorm:"column:description;type:text"`
	IsActive    bool   `gorm:"column:is_active"`
}
