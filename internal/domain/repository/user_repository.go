package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
)

// Sentinel errors shared by the user and admin repositories.
var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrAdminNotFound is returned when no admin matches the lookup.
	ErrAdminNotFound = errors.New("admin not found")
)

// UserUpsert is the field set applied when creating or refreshing a user
// keyed on its Telegram identifier.
type UserUpsert struct {
	TelegramID       string
	TelegramUsername string
	TelegramAvatar   string
	FirstName        string
	LastName         string
	PhoneNumber      string
}

// UserRepository persists marketplace users.
type UserRepository interface {
	// Upsert creates the user or refreshes its mutable attributes, keyed on
	// TelegramID. The persisted record is returned either way.
	Upsert(ctx context.Context, input *UserUpsert) (*entity.User, error)

	// FindByID retrieves a user with its stores and their category links attached.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByTelegramID retrieves a user by external identifier, stores attached.
	FindByTelegramID(ctx context.Context, telegramID string) (*entity.User, error)

	// SetBanned flips the ban flag; banning also deactivates the user,
	// unbanning reactivates it.
	SetBanned(ctx context.Context, id uint, banned bool) (*entity.User, error)
}

// AdminRepository persists administrative operators.
type AdminRepository interface {
	// FindByTelegramID retrieves an admin by external identifier.
	FindByTelegramID(ctx context.Context, telegramID string) (*entity.Admin, error)
}
