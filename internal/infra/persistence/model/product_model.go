package model

import (
	"time"

	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table. Deletion is always soft via
// IsDeleted; rows are never removed.
type ProductModel struct {
	ID              uint   `gorm:"primaryKey;autoIncrement"`
	StoreID         uint   `gorm:"index;not null"`
	CategoryID      *uint  `gorm:"index"`
	Title           string `gorm:"type:varchar(255);not null"`
	Slug            string `gorm:"type:varchar(255);unique;not null"`
	Description     string `gorm:"type:text"`
	LongDescription string `gorm:"type:text"`
	Properties      datatypes.JSON
	Pricing         datatypes.JSON
	Colors          datatypes.JSON
	ColorVariations datatypes.JSON
	Availability    string `gorm:"type:varchar(20);not null;default:'available'"`
	StockQuantity   int    `gorm:"not null;default:0"`
	Brand           string `gorm:"type:varchar(100)"`
	Manufacturer    string `gorm:"type:varchar(100)"`
	Condition       string `gorm:"type:varchar(20)"`
	Tags            datatypes.JSON
	Images          datatypes.JSON
	SourceMetadata  datatypes.JSON
	SEOTitle        string         `gorm:"column:seo_title;type:varchar(255)"`
	SEODescription  string         `gorm:"column:seo_description;type:text"`
	SEOKeywords     datatypes.JSON `gorm:"column:seo_keywords"`
	Stats           datatypes.JSON
	IsPublished     bool `gorm:"not null;default:false;index"`
	PublishedAt     *time.Time
	IsFeatured      bool `gorm:"not null;default:false"`
	IsDeleted       bool `gorm:"not null;default:false;index"`
	DeletedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Store    *StoreModel    `gorm:"foreignKey:StoreID"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
