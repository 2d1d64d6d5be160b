package model

import (
	"time"

	"gorm.io/datatypes"
)

// CategoryModel mirrors the self-referencing 'categories' table.
type CategoryModel struct {
	ID              uint   `gorm:"primaryKey;autoIncrement"`
	Title           string `gorm:"type:varchar(255);not null"`
	Slug            string `gorm:"type:varchar(255);unique;not null"`
	Icon            string `gorm:"type:text"`
	Description     string `gorm:"type:text"`
	ParentID        *uint  `gorm:"index"`
	MetaTitle       string `gorm:"type:varchar(255)"`
	MetaDescription string `gorm:"type:text"`
	MetaKeywords    datatypes.JSON
	SortOrder       int  `gorm:"not null;default:0"`
	IsActive        bool `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Parent   *CategoryModel   `gorm:"foreignKey:ParentID"`
	Children []*CategoryModel `gorm:"foreignKey:ParentID"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
