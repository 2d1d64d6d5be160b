package model

import (
	"time"

	"gorm.io/datatypes"
)

// StoreModel mirrors the 'stores' table. Socials, Identity, Stats, Settings
// and QRCode are serialized JSON bags; Identity keeps the national code
// inside the bag, so uniqueness is enforced by the repository, not the schema.
type StoreModel struct {
	ID              uint           `gorm:"primaryKey;autoIncrement"`
	UserID          uint           `gorm:"index;not null"`
	Title           string         `gorm:"type:varchar(255);not null"`
	Slug            string         `gorm:"type:varchar(255);unique;not null"`
	Description     string         `gorm:"type:text"`
	LongDescription string         `gorm:"type:text"`
	Socials         datatypes.JSON `gorm:"not null"`
	Identity        datatypes.JSON `gorm:"not null"`
	Avatar          string         `gorm:"type:text"`
	CoverImage      string         `gorm:"type:text"`
	Tags            datatypes.JSON
	SEOTitle        string         `gorm:"column:seo_title;type:varchar(255)"`
	SEODescription  string         `gorm:"column:seo_description;type:text"`
	SEOKeywords     datatypes.JSON `gorm:"column:seo_keywords"`
	Stats           datatypes.JSON
	Settings        datatypes.JSON
	IsApproved      bool `gorm:"not null;default:false;index"`
	ApprovedAt      *time.Time
	ApprovedByID    *uint
	RejectionReason string         `gorm:"type:text"`
	IsActive        bool           `gorm:"not null;default:true;index"`
	IsFeatured      bool           `gorm:"not null;default:false"`
	QRCode          datatypes.JSON `gorm:"column:qr_code"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Owner      *UserModel            `gorm:"foreignKey:UserID"`
	Categories []*StoreCategoryModel `gorm:"foreignKey:StoreID"`
	Products   []*ProductModel       `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}

// StoreCategoryModel mirrors the 'store_categories' join table.
type StoreCategoryModel struct {
	ID         uint `gorm:"primaryKey;autoIncrement"`
	StoreID    uint `gorm:"index;not null;uniqueIndex:idx_store_category"`
	CategoryID uint `gorm:"index;not null;uniqueIndex:idx_store_category"`
	IsPrimary  bool `gorm:"not null;default:false"`
	CreatedAt  time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (StoreCategoryModel) TableName() string {
	return "store_categories"
}

// StoreActionModel mirrors the append-only 'store_actions' audit table.
type StoreActionModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	StoreID     uint   `gorm:"index;not null"`
	AdminID     *uint  `gorm:"index"`
	ActionType  string `gorm:"type:varchar(20);not null"`
	Description string `gorm:"type:text"`
	Metadata    datatypes.JSON
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreActionModel) TableName() string {
	return "store_actions"
}
