package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
)

// TelegramChannelInput identifies the channel a new store sells through.
type TelegramChannelInput struct {
	ID       string `json:"id" validate:"required,telegramid"`
	Username string `json:"username"`
	Avatar   string `json:"avatar" validate:"omitempty,url"`
	Bio      string `json:"bio" validate:"max=500"`
}

// StoreSocialsInput is the socials block of a store payload.
type StoreSocialsInput struct {
	Telegram  TelegramChannelInput `json:"telegram" validate:"required"`
	Instagram string               `json:"instagram"`
	WhatsApp  string               `json:"whatsapp"`
	Website   string               `json:"website" validate:"omitempty,url"`
}

// CoordinatesInput is an optional lat/lng pair.
type CoordinatesInput struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// StoreLocationInput is the location block of a store identity.
type StoreLocationInput struct {
	City        string            `json:"city" validate:"required"`
	Country     string            `json:"country"`
	Coordinates *CoordinatesInput `json:"coordinates"`
}

// StoreIdentityInput is the legal identity block of a store payload.
type StoreIdentityInput struct {
	NationalCode string             `json:"nationalCode" validate:"required,nationalcode"`
	Location     StoreLocationInput `json:"location" validate:"required"`
	Address      string             `json:"address"`
	Phones       []string           `json:"phones" validate:"dive,phone"`
}

// CreateStoreInput is the payload for submitting a new store.
type CreateStoreInput struct {
	Title           string             `json:"title" validate:"required,min=3,max=255"`
	Description     string             `json:"description" validate:"omitempty,min=10,max=1000"`
	LongDescription string             `json:"longDescription" validate:"max=5000"`
	Socials         StoreSocialsInput  `json:"socials" validate:"required"`
	Identity        StoreIdentityInput `json:"identity" validate:"required"`
	Avatar          string             `json:"avatar" validate:"omitempty,url"`
	CoverImage      string             `json:"coverImage" validate:"omitempty,url"`
	Tags            []string           `json:"tags"`
	CategoryIDs     []uint             `json:"categoryIds" validate:"required,min=1"`
}

// UpdateStoreInput is the partial-update payload; nil fields are left untouched.
type UpdateStoreInput struct {
	Title           *string             `json:"title" validate:"omitempty,min=3,max=255"`
	Description     *string             `json:"description" validate:"omitempty,min=10,max=1000"`
	LongDescription *string             `json:"longDescription" validate:"omitempty,max=5000"`
	Socials         *StoreSocialsInput  `json:"socials"`
	Identity        *StoreIdentityInput `json:"identity"`
	Avatar          *string             `json:"avatar" validate:"omitempty,url"`
	CoverImage      *string             `json:"coverImage" validate:"omitempty,url"`
	Tags            []string            `json:"tags"`
}

// ListStoresInput narrows and paginates a store listing.
type ListStoresInput struct {
	Page            int
	Limit           int
	CategoryID      *uint
	IsApproved      *bool
	Search          string
	OwnerTelegramID string
}

// StorePage is one page of stores plus pagination metadata.
type StorePage struct {
	Stores []*entity.Store
	Meta   repository.Meta
}

// StoreUsecase manages the store lifecycle: creation, ownership-gated
// mutation, and the pending/approved/rejected workflow.
type StoreUsecase interface {
	// CreateStore validates the owner and uniqueness invariants, persists the
	// pending store with its category links, and writes the CREATED audit
	// action. Bot notifications are dispatched best-effort; their failure
	// never fails the creation.
	CreateStore(ctx context.Context, userID uint, input *CreateStoreInput) (*entity.Store, error)

	// ApproveStore moves a pending or rejected store to approved, generates
	// and persists the QR payload, and writes the APPROVED audit action.
	// Approving an already-approved store fails with Conflict.
	ApproveStore(ctx context.Context, storeID, adminID uint) (*entity.Store, error)

	// RejectStore records the rejection reason, clears any prior approval
	// and writes the REJECTED audit action. The reason is mandatory.
	RejectStore(ctx context.Context, storeID, adminID uint, reason string) (*entity.Store, error)

	// UpdateStore applies a partial update after the ownership check and
	// writes an UPDATED audit action naming the changed fields.
	UpdateStore(ctx context.Context, storeID, actingUserID uint, input *UpdateStoreInput, isAdmin bool) (*entity.Store, error)

	// DeleteStore soft-deletes after the ownership check and writes the
	// DELETED audit action. Products and category links are left intact.
	DeleteStore(ctx context.Context, storeID, actingUserID uint, isAdmin bool) (*entity.Store, error)

	// GetStoreByID returns the store with owner, categories and recent
	// published products, incrementing the view counter as a side effect.
	GetStoreByID(ctx context.Context, storeID uint) (*entity.Store, error)

	// GetStoreBySlug is GetStoreByID keyed on the slug, without the view
	// counter side effect.
	GetStoreBySlug(ctx context.Context, slug string) (*entity.Store, error)

	// ListStores returns a page of active stores, newest first.
	ListStores(ctx context.Context, input *ListStoresInput) (*StorePage, error)

	// GetPendingStores lists stores awaiting review.
	GetPendingStores(ctx context.Context, page, limit int) (*StorePage, error)
}
