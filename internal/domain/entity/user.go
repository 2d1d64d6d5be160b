// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is a marketplace participant anchored on a Telegram identity.
// Users are created by upsert from the bot collaborator and own zero or more stores.
type User struct {
	ID               uint   // Internal numeric identifier.
	TelegramID       string // External Telegram identifier, unique across users.
	TelegramUsername string // Public Telegram handle, may be empty.
	TelegramAvatar   string // Avatar URL captured from Telegram, may be empty.
	FirstName        string
	LastName         string
	PhoneNumber      string
	IsActive         bool // Inactive users cannot perform write operations.
	IsBanned         bool // Banning also deactivates all owned stores.
	Stores           []*Store
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DisplayName returns the user's human-readable name, falling back to the
// Telegram identifier when no name parts were supplied.
func (u *User) DisplayName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		return u.TelegramID
	}

	return name
}
