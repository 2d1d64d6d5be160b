package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newUserServiceMocks() (*mockRepo.UserRepository, *mockRepo.AdminRepository, *mockRepo.RepositoryFactory) {
	factory := &mockRepo.RepositoryFactory{
		UserRepo:        &mockRepo.UserRepository{},
		StoreRepo:       &mockRepo.StoreRepository{},
		ProductRepo:     &mockRepo.ProductRepository{},
		StoreActionRepo: &mockRepo.StoreActionRepository{},
		CategoryRepo:    &mockRepo.CategoryRepository{},
	}

	return &mockRepo.UserRepository{}, &mockRepo.AdminRepository{}, factory
}

func TestUserService_UpsertUser(t *testing.T) {
	userRepo, adminRepo, factory := newUserServiceMocks()
	service := NewUserService(&mockRepo.TransactionManager{Factory: factory}, userRepo, adminRepo, newTestLogger())

	ctx := context.Background()
	input := &usecase.UpsertUserInput{
		TelegramID:       "123456",
		TelegramUsername: "shopkeeper",
		FirstName:        "Sara",
	}

	userRepo.On("Upsert", ctx, &repository.UserUpsert{
		TelegramID:       "123456",
		TelegramUsername: "shopkeeper",
		FirstName:        "Sara",
	}).Return(&entity.User{ID: 1, TelegramID: "123456", IsActive: true}, nil)

	user, err := service.UpsertUser(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "123456", user.TelegramID)
	userRepo.AssertExpectations(t)
}

func TestUserService_ResolveUser_MissingIdentity(t *testing.T) {
	userRepo, adminRepo, factory := newUserServiceMocks()
	service := NewUserService(&mockRepo.TransactionManager{Factory: factory}, userRepo, adminRepo, newTestLogger())

	user, err := service.ResolveUser(context.Background(), "")
	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestUserService_ResolveUser_UnknownIdentity(t *testing.T) {
	userRepo, adminRepo, factory := newUserServiceMocks()
	service := NewUserService(&mockRepo.TransactionManager{Factory: factory}, userRepo, adminRepo, newTestLogger())

	ctx := context.Background()
	userRepo.On("FindByTelegramID", ctx, "999").Return(nil, repository.ErrUserNotFound)

	user, err := service.ResolveUser(ctx, "999")
	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAccessDenied))
}

func TestUserService_ResolveUser_Banned(t *testing.T) {
	userRepo, adminRepo, factory := newUserServiceMocks()
	service := NewUserService(&mockRepo.TransactionManager{Factory: factory}, userRepo, adminRepo, newTestLogger())

	ctx := context.Background()
	userRepo.On("FindByTelegramID", ctx, "123").
		Return(&entity.User{ID: 1, TelegramID: "123", IsActive: false, IsBanned: true}, nil)

	user, err := service.ResolveUser(ctx, "123")
	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAccessDenied))
}

func TestUserService_ResolveUser_Active(t *testing.T) {
	userRepo, adminRepo, factory := newUserServiceMocks()
	service := NewUserService(&mockRepo.TransactionManager{Factory: factory}, userRepo, adminRepo, newTestLogger())

	ctx := context.Background()
	userRepo.On("FindByTelegramID", ctx, "123").
		Return(&entity.User{ID: 1, TelegramID: "123", IsActive: true}, nil)

	user, err := service.ResolveUser(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
}

func TestUserService_ResolveAdmin_Inactive(t *testing.T) {
	userRepo, adminRepo, factory := newUserServiceMocks()
	service := NewUserService(&mockRepo.TransactionManager{Factory: factory}, userRepo, adminRepo, newTestLogger())

	ctx := context.Background()
	adminRepo.On("FindByTelegramID", ctx, "42").
		Return(&entity.Admin{ID: 7, TelegramID: "42", IsActive: false}, nil)

	admin, err := service.ResolveAdmin(ctx, "42")
	require.Error(t, err)
	assert.Nil(t, admin)
	assert.True(t, errors.Is(err, domainerrors.ErrAdminAccessRequired))
}

func TestUserService_ResolveAdmin_Active(t *testing.T) {
	userRepo, adminRepo, factory := newUserServiceMocks()
	service := NewUserService(&mockRepo.TransactionManager{Factory: factory}, userRepo, adminRepo, newTestLogger())

	ctx := context.Background()
	adminRepo.On("FindByTelegramID", ctx, "42").
		Return(&entity.Admin{ID: 7, TelegramID: "42", Role: entity.RoleAdmin, IsActive: true}, nil)

	admin, err := service.ResolveAdmin(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, uint(7), admin.ID)
}

func TestUserService_ResolveOptionalUser(t *testing.T) {
	userRepo, adminRepo, factory := newUserServiceMocks()
	service := NewUserService(&mockRepo.TransactionManager{Factory: factory}, userRepo, adminRepo, newTestLogger())

	ctx := context.Background()
	userRepo.On("FindByTelegramID", ctx, "404").Return(nil, repository.ErrUserNotFound)

	assert.Nil(t, service.ResolveOptionalUser(ctx, ""))
	assert.Nil(t, service.ResolveOptionalUser(ctx, "404"))
}

func TestUserService_BanUser_DeactivatesStores(t *testing.T) {
	userRepo, adminRepo, factory := newUserServiceMocks()
	service := NewUserService(&mockRepo.TransactionManager{Factory: factory}, userRepo, adminRepo, newTestLogger())

	ctx := context.Background()
	banned := &entity.User{ID: 5, TelegramID: "55", IsBanned: true, IsActive: false}

	factory.UserRepo.On("SetBanned", ctx, uint(5), true).Return(banned, nil)
	factory.StoreRepo.On("DeactivateByOwner", ctx, uint(5)).Return(nil)

	user, err := service.BanUser(ctx, 5)
	require.NoError(t, err)
	assert.True(t, user.IsBanned)
	factory.UserRepo.AssertExpectations(t)
	factory.StoreRepo.AssertExpectations(t)
}

func TestUserService_BanUser_NotFound(t *testing.T) {
	userRepo, adminRepo, factory := newUserServiceMocks()
	service := NewUserService(&mockRepo.TransactionManager{Factory: factory}, userRepo, adminRepo, newTestLogger())

	ctx := context.Background()
	factory.UserRepo.On("SetBanned", ctx, uint(5), true).Return(nil, repository.ErrUserNotFound)

	user, err := service.BanUser(ctx, 5)
	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	factory.StoreRepo.AssertNotCalled(t, "DeactivateByOwner", ctx, uint(5))
}

func TestUserService_UnbanUser(t *testing.T) {
	userRepo, adminRepo, factory := newUserServiceMocks()
	service := NewUserService(&mockRepo.TransactionManager{Factory: factory}, userRepo, adminRepo, newTestLogger())

	ctx := context.Background()
	userRepo.On("SetBanned", ctx, uint(5), false).
		Return(&entity.User{ID: 5, IsBanned: false, IsActive: true}, nil)

	user, err := service.UnbanUser(ctx, 5)
	require.NoError(t, err)
	assert.False(t, user.IsBanned)
	assert.True(t, user.IsActive)
}
