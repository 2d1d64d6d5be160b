package entity

import "time"

// AdminRole enumerates the administrative privilege levels.
type AdminRole string

const (
	RoleSuperAdmin AdminRole = "SUPER_ADMIN"
	RoleAdmin      AdminRole = "ADMIN"
	RoleModerator  AdminRole = "MODERATOR"
)

// Admin is an administrative operator, kept in a table disjoint from users.
// Admins review store submissions and author store audit actions.
type Admin struct {
	ID             uint
	TelegramID     string // External Telegram identifier, unique across admins.
	TelegramName   string
	TelegramAvatar string
	PhoneNumber    string
	Role           AdminRole
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
