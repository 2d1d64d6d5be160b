// Package usecase provides hand-maintained testify mocks for the application
// service interfaces.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
	appusecase "bazaar/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// UserUsecase is a mock implementation of usecase.UserUsecase.
type UserUsecase struct {
	mock.Mock
}

var _ appusecase.UserUsecase = (*UserUsecase)(nil)

func (m *UserUsecase) UpsertUser(ctx context.Context, input *appusecase.UpsertUserInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserUsecase) GetUserByID(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserUsecase) GetUserByTelegramID(ctx context.Context, telegramID string) (*entity.User, error) {
	args := m.Called(ctx, telegramID)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserUsecase) ResolveUser(ctx context.Context, telegramID string) (*entity.User, error) {
	args := m.Called(ctx, telegramID)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserUsecase) ResolveAdmin(ctx context.Context, telegramID string) (*entity.Admin, error) {
	args := m.Called(ctx, telegramID)
	if admin, ok := args.Get(0).(*entity.Admin); ok {
		return admin, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserUsecase) ResolveOptionalUser(ctx context.Context, telegramID string) *entity.User {
	args := m.Called(ctx, telegramID)
	user, _ := args.Get(0).(*entity.User)

	return user
}

func (m *UserUsecase) BanUser(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserUsecase) UnbanUser(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}
