// Package service provides hand-maintained testify mocks for the external
// collaborator interfaces.
package service

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// QRCodeService mocks service.QRCodeService.
type QRCodeService struct {
	mock.Mock
}

var _ service.QRCodeService = (*QRCodeService)(nil)

func (m *QRCodeService) GenerateStoreQR(channelIdentifier, slug string) (*entity.StoreQRCode, error) {
	args := m.Called(channelIdentifier, slug)
	if qr, ok := args.Get(0).(*entity.StoreQRCode); ok {
		return qr, args.Error(1)
	}

	return nil, args.Error(1)
}

// BotNotifier mocks service.BotNotifier.
type BotNotifier struct {
	mock.Mock
}

var _ service.BotNotifier = (*BotNotifier)(nil)

func (m *BotNotifier) SendStoreCreated(ctx context.Context, store *entity.Store) error {
	return m.Called(ctx, store).Error(0)
}

func (m *BotNotifier) SendError(ctx context.Context, chatID, message string) error {
	return m.Called(ctx, chatID, message).Error(0)
}

func (m *BotNotifier) NotifyAdminsNewStore(ctx context.Context, review *service.NewStoreReview) error {
	return m.Called(ctx, review).Error(0)
}

func (m *BotNotifier) NotifyStoreApproved(ctx context.Context, approval *service.StoreApproval) error {
	return m.Called(ctx, approval).Error(0)
}

func (m *BotNotifier) NotifyStoreRejected(ctx context.Context, rejection *service.StoreRejection) error {
	return m.Called(ctx, rejection).Error(0)
}

func (m *BotNotifier) NotifyStoreUpdated(ctx context.Context, notice *service.StoreUpdateNotice) error {
	return m.Called(ctx, notice).Error(0)
}

func (m *BotNotifier) NotifyStoreDeleted(ctx context.Context, notice *service.StoreDeletionNotice) error {
	return m.Called(ctx, notice).Error(0)
}
