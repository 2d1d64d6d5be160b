// Package repository provides hand-maintained testify mocks for the
// persistence interfaces.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// UserRepository mocks repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (m *UserRepository) Upsert(ctx context.Context, input *repository.UserUpsert) (*entity.User, error) {
	args := m.Called(ctx, input)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserRepository) FindByTelegramID(ctx context.Context, telegramID string) (*entity.User, error) {
	args := m.Called(ctx, telegramID)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserRepository) SetBanned(ctx context.Context, id uint, banned bool) (*entity.User, error) {
	args := m.Called(ctx, id, banned)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

// AdminRepository mocks repository.AdminRepository.
type AdminRepository struct {
	mock.Mock
}

var _ repository.AdminRepository = (*AdminRepository)(nil)

func (m *AdminRepository) FindByTelegramID(ctx context.Context, telegramID string) (*entity.Admin, error) {
	args := m.Called(ctx, telegramID)
	if admin, ok := args.Get(0).(*entity.Admin); ok {
		return admin, args.Error(1)
	}

	return nil, args.Error(1)
}
