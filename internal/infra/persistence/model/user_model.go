// Package model holds the GORM persistence models mirroring the database
// schema. JSON-bag columns use gorm.io/datatypes and are decoded in the
// repository mappers.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID               uint   `gorm:"primaryKey;autoIncrement"`
	TelegramID       string `gorm:"type:varchar(64);unique;not null"`
	TelegramUsername string `gorm:"type:varchar(255)"`
	TelegramAvatar   string `gorm:"type:text"`
	FirstName        string `gorm:"type:varchar(100)"`
	LastName         string `gorm:"type:varchar(100)"`
	PhoneNumber      string `gorm:"type:varchar(32)"`
	IsActive         bool   `gorm:"not null;default:true"`
	IsBanned         bool   `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Stores []*StoreModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// AdminModel mirrors the 'admins' table, disjoint from users.
type AdminModel struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	TelegramID     string `gorm:"type:varchar(64);unique;not null"`
	TelegramName   string `gorm:"type:varchar(255)"`
	TelegramAvatar string `gorm:"type:text"`
	PhoneNumber    string `gorm:"type:varchar(32)"`
	Role           string `gorm:"type:varchar(20);not null;default:'MODERATOR'"`
	IsActive       bool   `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}
