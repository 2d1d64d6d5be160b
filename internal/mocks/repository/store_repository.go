package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// StoreRepository mocks repository.StoreRepository.
type StoreRepository struct {
	mock.Mock
}

var _ repository.StoreRepository = (*StoreRepository)(nil)

func (m *StoreRepository) Create(ctx context.Context, store *entity.Store, categoryIDs []uint) error {
	return m.Called(ctx, store, categoryIDs).Error(0)
}

func (m *StoreRepository) FindByID(ctx context.Context, id uint) (*entity.Store, error) {
	args := m.Called(ctx, id)
	if store, ok := args.Get(0).(*entity.Store); ok {
		return store, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *StoreRepository) FindBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	args := m.Called(ctx, slug)
	if store, ok := args.Get(0).(*entity.Store); ok {
		return store, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *StoreRepository) List(ctx context.Context, filter repository.StoreFilter, page repository.Pagination) ([]*entity.Store, int64, error) {
	args := m.Called(ctx, filter, page)
	stores, _ := args.Get(0).([]*entity.Store)

	return stores, args.Get(1).(int64), args.Error(2)
}

func (m *StoreRepository) FindAll(ctx context.Context) ([]*entity.Store, error) {
	args := m.Called(ctx)
	stores, _ := args.Get(0).([]*entity.Store)

	return stores, args.Error(1)
}

func (m *StoreRepository) ExistsByNationalCode(ctx context.Context, nationalCode string) (bool, error) {
	args := m.Called(ctx, nationalCode)

	return args.Bool(0), args.Error(1)
}

func (m *StoreRepository) Update(ctx context.Context, id uint, update *repository.StoreUpdate) (*entity.Store, error) {
	args := m.Called(ctx, id, update)
	if store, ok := args.Get(0).(*entity.Store); ok {
		return store, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *StoreRepository) Approve(ctx context.Context, id uint, adminID uint, qr *entity.StoreQRCode) (*entity.Store, error) {
	args := m.Called(ctx, id, adminID, qr)
	if store, ok := args.Get(0).(*entity.Store); ok {
		return store, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *StoreRepository) Reject(ctx context.Context, id uint, reason string) (*entity.Store, error) {
	args := m.Called(ctx, id, reason)
	if store, ok := args.Get(0).(*entity.Store); ok {
		return store, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *StoreRepository) SetActive(ctx context.Context, id uint, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *StoreRepository) DeactivateByOwner(ctx context.Context, userID uint) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *StoreRepository) UpdateStats(ctx context.Context, id uint, stats entity.StoreStats) error {
	return m.Called(ctx, id, stats).Error(0)
}

// StoreActionRepository mocks repository.StoreActionRepository.
type StoreActionRepository struct {
	mock.Mock
}

var _ repository.StoreActionRepository = (*StoreActionRepository)(nil)

func (m *StoreActionRepository) Append(ctx context.Context, action *entity.StoreAction) error {
	return m.Called(ctx, action).Error(0)
}
