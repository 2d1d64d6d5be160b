// Package usecase declares the application service interfaces and their
// input/output types.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// UpsertUserInput is the payload the bot sends to create or refresh a user.
type UpsertUserInput struct {
	TelegramID       string `json:"telegramId" validate:"required,telegramid"`
	TelegramUsername string `json:"telegramUsername"`
	TelegramAvatar   string `json:"telegramAvatar" validate:"omitempty,url"`
	FirstName        string `json:"firstName" validate:"max=100"`
	LastName         string `json:"lastName" validate:"max=100"`
	PhoneNumber      string `json:"phoneNumber" validate:"omitempty,phone"`
}

// UserUsecase manages marketplace users and the identity checks gating
// write operations.
type UserUsecase interface {
	// UpsertUser creates the user or refreshes its attributes, keyed on the
	// Telegram identifier. Calling it twice with the same input is idempotent.
	UpsertUser(ctx context.Context, input *UpsertUserInput) (*entity.User, error)

	// GetUserByID retrieves a user with stores attached.
	GetUserByID(ctx context.Context, id uint) (*entity.User, error)

	// GetUserByTelegramID retrieves a user by external identifier.
	GetUserByTelegramID(ctx context.Context, telegramID string) (*entity.User, error)

	// ResolveUser resolves an external identifier to an active, non-banned
	// user. Missing identifier maps to Unauthenticated, an existing but
	// banned/inactive user to Forbidden.
	ResolveUser(ctx context.Context, telegramID string) (*entity.User, error)

	// ResolveAdmin resolves an external identifier to an active admin with
	// the same error mapping as ResolveUser.
	ResolveAdmin(ctx context.Context, telegramID string) (*entity.Admin, error)

	// ResolveOptionalUser is ResolveUser that returns nil instead of failing
	// when the identity is absent or invalid.
	ResolveOptionalUser(ctx context.Context, telegramID string) *entity.User

	// BanUser bans the user and deactivates all owned stores.
	BanUser(ctx context.Context, id uint) (*entity.User, error)

	// UnbanUser lifts the ban and reactivates the user. Stores stay inactive.
	UnbanUser(ctx context.Context, id uint) (*entity.User, error)
}
