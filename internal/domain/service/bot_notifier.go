package service

import (
	"context"

	"bazaar/internal/domain/entity"
)

// NewStoreReview describes a store submission awaiting administrative review.
type NewStoreReview struct {
	StoreID         uint
	Title           string
	OwnerTelegramID string
	OwnerName       string
	CategoryNames   []string
}

// StoreApproval carries the data the owner receives when a store goes live.
type StoreApproval struct {
	OwnerTelegramID string
	Title           string
	Slug            string
	QRCodeLink      string
}

// StoreRejection carries the data the owner receives when a store is rejected.
type StoreRejection struct {
	OwnerTelegramID string
	Title           string
	Reason          string
}

// StoreUpdateNotice carries the data the owner receives after an admin edit.
type StoreUpdateNotice struct {
	OwnerTelegramID string
	Title           string
	UpdatedFields   []string
}

// StoreDeletionNotice carries the data the owner receives when a store is removed.
type StoreDeletionNotice struct {
	OwnerTelegramID string
	Title           string
	Reason          string
}

// BotNotifier is the outbound contract to the Telegram bot collaborator.
// Every call is best-effort: implementations log failures and the store and
// product lifecycles never depend on delivery.
type BotNotifier interface {
	// SendStoreCreated posts the created store back to the bot.
	SendStoreCreated(ctx context.Context, store *entity.Store) error

	// SendError posts a failure message for the given chat back to the bot.
	SendError(ctx context.Context, chatID, message string) error

	// NotifyAdminsNewStore asks the bot to fan a review request out to admins,
	// with approve/reject action tokens attached.
	NotifyAdminsNewStore(ctx context.Context, review *NewStoreReview) error

	// NotifyStoreApproved tells the owner the store went live.
	NotifyStoreApproved(ctx context.Context, approval *StoreApproval) error

	// NotifyStoreRejected tells the owner the store was rejected and why.
	NotifyStoreRejected(ctx context.Context, rejection *StoreRejection) error

	// NotifyStoreUpdated tells the owner which fields an admin changed.
	NotifyStoreUpdated(ctx context.Context, notice *StoreUpdateNotice) error

	// NotifyStoreDeleted tells the owner the store was removed.
	NotifyStoreDeleted(ctx context.Context, notice *StoreDeletionNotice) error
}
