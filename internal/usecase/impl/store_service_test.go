package impl

import (
	"context"
	"strings"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type storeServiceMocks struct {
	factory   *mockRepo.RepositoryFactory
	storeRepo *mockRepo.StoreRepository
	userRepo  *mockRepo.UserRepository
	catRepo   *mockRepo.CategoryRepository
	qrService *mockSvc.QRCodeService
	notifier  *mockSvc.BotNotifier
}

func newStoreService() (*storeServiceMocks, usecase.StoreUsecase) {
	m := &storeServiceMocks{
		factory: &mockRepo.RepositoryFactory{
			UserRepo:        &mockRepo.UserRepository{},
			StoreRepo:       &mockRepo.StoreRepository{},
			ProductRepo:     &mockRepo.ProductRepository{},
			StoreActionRepo: &mockRepo.StoreActionRepository{},
			CategoryRepo:    &mockRepo.CategoryRepository{},
		},
		storeRepo: &mockRepo.StoreRepository{},
		userRepo:  &mockRepo.UserRepository{},
		catRepo:   &mockRepo.CategoryRepository{},
		qrService: &mockSvc.QRCodeService{},
		notifier:  &mockSvc.BotNotifier{},
	}
	svc := NewStoreService(
		&mockRepo.TransactionManager{Factory: m.factory},
		m.storeRepo,
		m.userRepo,
		m.catRepo,
		m.qrService,
		m.notifier,
		newTestLogger(),
	)

	return m, svc
}

func validCreateStoreInput() *usecase.CreateStoreInput {
	return &usecase.CreateStoreInput{
		Title:       "Sara's Handmade",
		Description: "Handmade crafts from Tehran",
		Tags:        []string{"handmade", "crafts"},
		Socials: usecase.StoreSocialsInput{
			Telegram: usecase.TelegramChannelInput{ID: "-100123", Username: "sarashop"},
		},
		Identity: usecase.StoreIdentityInput{
			NationalCode: "0012345678",
			Location:     usecase.StoreLocationInput{City: "Tehran"},
		},
		CategoryIDs: []uint{3, 7},
	}
}

func TestStoreService_CreateStore(t *testing.T) {
	m, svc := newStoreService()
	ctx := context.Background()

	m.userRepo.On("FindByID", ctx, uint(9)).
		Return(&entity.User{ID: 9, TelegramID: "900", FirstName: "Sara", IsActive: true}, nil)
	m.storeRepo.On("ExistsByNationalCode", ctx, "0012345678").Return(false, nil)
	m.storeRepo.On("FindAll", ctx).Return([]*entity.Store{}, nil)
	m.catRepo.On("FindByID", ctx, uint(3)).Return(&entity.Category{ID: 3, Title: "Crafts"}, nil)
	m.catRepo.On("FindByID", ctx, uint(7)).Return(&entity.Category{ID: 7, Title: "Home"}, nil)
	m.factory.StoreRepo.On("Create", ctx, mock.AnythingOfType("*entity.Store"), []uint{3, 7}).Return(nil)
	m.factory.StoreActionRepo.On("Append", ctx, mock.MatchedBy(func(a *entity.StoreAction) bool {
		return a.ActionType == entity.StoreActionCreated && a.AdminID == nil
	})).Return(nil)
	m.notifier.On("SendStoreCreated", ctx, mock.Anything).Return(nil)
	m.notifier.On("NotifyAdminsNewStore", ctx, mock.MatchedBy(func(r *service.NewStoreReview) bool {
		return r.OwnerTelegramID == "900" && len(r.CategoryNames) == 2
	})).Return(nil)

	store, err := svc.CreateStore(ctx, 9, validCreateStoreInput())
	require.NoError(t, err)
	assert.False(t, store.IsApproved)
	assert.True(t, store.IsActive)
	assert.False(t, store.Settings.AutoPublish)
	assert.True(t, strings.HasPrefix(store.Slug, "sara-s-handmade-"))
	m.notifier.AssertExpectations(t)
	m.factory.StoreActionRepo.AssertExpectations(t)
}

func TestStoreService_CreateStore_SEODefaults(t *testing.T) {
	m, svc := newStoreService()
	ctx := context.Background()

	m.userRepo.On("FindByID", ctx, uint(9)).Return(&entity.User{ID: 9, TelegramID: "900"}, nil)
	m.storeRepo.On("ExistsByNationalCode", ctx, "0012345678").Return(false, nil)
	m.storeRepo.On("FindAll", ctx).Return([]*entity.Store{}, nil)
	m.catRepo.On("FindByID", ctx, mock.Anything).Return(&entity.Category{ID: 3, Title: "Crafts"}, nil)
	m.factory.StoreRepo.On("Create", ctx, mock.Anything, mock.Anything).Return(nil)
	m.factory.StoreActionRepo.On("Append", ctx, mock.Anything).Return(nil)
	m.notifier.On("SendStoreCreated", ctx, mock.Anything).Return(nil)
	m.notifier.On("NotifyAdminsNewStore", ctx, mock.Anything).Return(nil)

	input := validCreateStoreInput()
	store, err := svc.CreateStore(ctx, 9, input)
	require.NoError(t, err)
	assert.Equal(t, input.Title, store.SEOTitle)
	assert.Equal(t, input.Description, store.SEODescription)
	assert.Equal(t, input.Tags, store.SEOKeywords)
}

func TestStoreService_CreateStore_PersistFailureReportsToBot(t *testing.T) {
	m, svc := newStoreService()
	ctx := context.Background()

	m.userRepo.On("FindByID", ctx, uint(9)).Return(&entity.User{ID: 9, TelegramID: "900"}, nil)
	m.storeRepo.On("ExistsByNationalCode", ctx, "0012345678").Return(false, nil)
	m.storeRepo.On("FindAll", ctx).Return([]*entity.Store{}, nil)
	m.catRepo.On("FindByID", ctx, mock.Anything).Return(&entity.Category{ID: 3, Title: "Crafts"}, nil)
	m.factory.StoreRepo.On("Create", ctx, mock.Anything, mock.Anything).
		Return(errors.New("connection reset"))
	m.notifier.On("SendError", ctx, "900", mock.AnythingOfType("string")).
		Return(errors.New("bot unreachable"))

	store, err := svc.CreateStore(ctx, 9, validCreateStoreInput())
	require.Error(t, err)
	assert.Nil(t, store)
	assert.Contains(t, err.Error(), "failed to create store")
	m.notifier.AssertCalled(t, "SendError", ctx, "900", mock.AnythingOfType("string"))
	m.notifier.AssertNotCalled(t, "SendStoreCreated", ctx, mock.Anything)
}

func TestStoreService_CreateStore_NationalCodeTaken(t *testing.T) {
	m, svc := newStoreService()
	ctx := context.Background()

	m.userRepo.On("FindByID", ctx, uint(9)).Return(&entity.User{ID: 9}, nil)
	m.storeRepo.On("ExistsByNationalCode", ctx, "0012345678").Return(true, nil)

	store, err := svc.CreateStore(ctx, 9, validCreateStoreInput())
	require.Error(t, err)
	assert.Nil(t, store)
	assert.True(t, errors.Is(err, domainerrors.ErrNationalCodeTaken))
	m.factory.StoreRepo.AssertNotCalled(t, "Create", ctx, mock.Anything, mock.Anything)
}

func TestStoreService_CreateStore_ChannelTaken(t *testing.T) {
	m, svc := newStoreService()
	ctx := context.Background()

	m.userRepo.On("FindByID", ctx, uint(9)).Return(&entity.User{ID: 9}, nil)
	m.storeRepo.On("ExistsByNationalCode", ctx, "0012345678").Return(false, nil)
	m.storeRepo.On("FindAll", ctx).Return([]*entity.Store{
		{ID: 1, Socials: entity.StoreSocials{Telegram: entity.TelegramChannel{ID: "-100123"}}},
	}, nil)

	store, err := svc.CreateStore(ctx, 9, validCreateStoreInput())
	require.Error(t, err)
	assert.Nil(t, store)
	assert.True(t, errors.Is(err, domainerrors.ErrChannelTaken))
}

func TestStoreService_CreateStore_BotFailureDoesNotFail(t *testing.T) {
	m, svc := newStoreService()
	ctx := context.Background()

	m.userRepo.On("FindByID", ctx, uint(9)).Return(&entity.User{ID: 9, TelegramID: "900"}, nil)
	m.storeRepo.On("ExistsByNationalCode", ctx, "0012345678").Return(false, nil)
	m.storeRepo.On("FindAll", ctx).Return([]*entity.Store{}, nil)
	m.catRepo.On("FindByID", ctx, mock.Anything).Return(&entity.Category{ID: 3, Title: "Crafts"}, nil)
	m.factory.StoreRepo.On("Create", ctx, mock.Anything, mock.Anything).Return(nil)
	m.factory.StoreActionRepo.On("Append", ctx, mock.Anything).Return(nil)
	m.notifier.On("SendStoreCreated", ctx, mock.Anything).Return(errors.New("bot unreachable"))
	m.notifier.On("NotifyAdminsNewStore", ctx, mock.Anything).Return(errors.New("bot unreachable"))

	store, err := svc.CreateStore(ctx, 9, validCreateStoreInput())
	require.NoError(t, err)
	assert.NotNil(t, store)
}

func TestStoreService_ApproveStore(t *testing.T) {
	m, svc := newStoreService()
	ctx := context.Background()

	pending := &entity.Store{
		ID:    4,
		Title: "Sara's Handmade",
		Slug:  "sara-s-handmade-abc",
		Socials: entity.StoreSocials{
			Telegram: entity.TelegramChannel{ID: "-100123", Username: "sarashop"},
		},
		Owner: &entity.User{ID: 9, TelegramID: "900"},
	}
	qr := &entity.StoreQRCode{Link: "https://t.me/sarashop", Data: "data:image/png;base64,AAAA"}
	approved := *pending
	approved.IsApproved = true
	approved.QRCode = qr

	m.factory.StoreRepo.On("FindByID", ctx, uint(4)).Return(pending, nil)
	m.qrService.On("GenerateStoreQR", "sarashop", "sara-s-handmade-abc").Return(qr, nil)
	m.factory.StoreRepo.On("Approve", ctx, uint(4), uint(2), qr).Return(&approved, nil)
	m.factory.StoreActionRepo.On("Append", ctx, mock.MatchedBy(func(a *entity.StoreAction) bool {
		return a.ActionType == entity.StoreActionApproved && a.AdminID != nil && *a.AdminID == 2
	})).Return(nil)
	m.notifier.On("NotifyStoreApproved", mock.Anything, mock.Anything).Return(nil).Maybe()

	store, err := svc.ApproveStore(ctx, 4, 2)
	require.NoError(t, err)
	assert.True(t, store.IsApproved)
	require.NotNil(t, store.QRCode)
	assert.Equal(t, "https://t.me/sarashop", store.QRCode.Link)
}

func TestStoreService_ApproveStore_AlreadyApproved(t *testing.T) {
	m, svc := newStoreService()
	ctx := context.Background()

	m.factory.StoreRepo.On("FindByID", ctx, uint(4)).
		Return(&entity.Store{ID: 4, IsApproved: true}, nil)

	store, err := svc.ApproveStore(ctx, 4, 2)
	require.Error(t, err)
	assert.Nil(t, store)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreAlreadyApproved))
	m.factory.StoreRepo.AssertNotCalled(t, "Approve", ctx, uint(4), uint(2), mock.Anything)
}

func TestStoreService_ApproveStore_AfterRejection(t *testing.T) {
	m, svc := newStoreService()
	ctx := context.Background()

	rejected := &entity.Store{
		ID:              4,
		Slug:            "shop-x",
		RejectionReason: "incomplete profile",
		Socials:         entity.StoreSocials{Telegram: entity.TelegramChannel{ID: "-1"}},
	}
	qr := &entity.StoreQRCode{Link: "https://t.me/-1"}

	m.factory.StoreRepo.On("FindByID", ctx, uint(4)).Return(rejected, nil)
	m.qrService.On("GenerateStoreQR", "-1", "shop-x").Return(qr, nil)
	m.factory.StoreRepo.On("Approve", ctx, uint(4), uint(2), qr).
		Return(&entity.Store{ID: 4, IsApproved: true, QRCode: qr}, nil)
	m.factory.StoreActionRepo.On("Append", ctx, mock.Anything).Return(nil)
	m.notifier.On("NotifyStoreApproved", mock.Anything, mock.Anything).Return(nil).Maybe()

	store, err := svc.ApproveStore(ctx, 4, 2)
	require.NoError(t, err)
	assert.True(t, store.IsApproved)
}

func TestStoreService_RejectStore_ReasonRequired(t *testing.T) {
	m, svc := newStoreService()

	store, err := svc.RejectStore(context.Background(), 4, 2, "   ")
	require.Error(t, err)
	assert.Nil(t, store)
	assert.True(t, errors.Is(err, domainerrors.ErrRejectionReasonRequired))
	m.factory.StoreRepo.AssertNotCalled(t, "Reject", mock.Anything, mock.Anything, mock.Anything)
}

func TestStoreService_RejectStore(t *testing.T) {
	m, svc := newStoreService()
	ctx := context.Background()

	m.factory.StoreRepo.On("Reject", ctx, uint(4), "incomplete profile").
		Return(&entity.Store{ID: 4, RejectionReason: "incomplete profile"}, nil)
	m.factory.StoreActionRepo.On("Append", ctx, mock.MatchedBy(func(a *entity.StoreAction) bool {
		return a.ActionType == entity.StoreActionRejected && a.Metadata["reason"] == "incomplete profile"
	})).Return(nil)
	m.notifier.On("NotifyStoreRejected", mock.Anything, mock.Anything).Return(nil).Maybe()

	store, err := svc.RejectStore(ctx, 4, 2, "incomplete profile")
	require.NoError(t, err)
	assert.Equal(t, "incomplete profile", store.RejectionReason)
}

func TestStoreService_UpdateStore_NotOwner(t *testing.T) {
	m, svc := newStoreService()
	ctx := context.Background()

	m.factory.StoreRepo.On("FindByID", ctx, uint(4)).
		Return(&entity.Store{ID: 4, UserID: 9}, nil)

	title := "New title"
	store, err := svc.UpdateStore(ctx, 4, 8, &usecase.UpdateStoreInput{Title: &title}, false)
	require.Error(t, err)
	assert.Nil(t, store)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotOwned))
}

func TestStoreService_UpdateStore_AdminBypassesOwnership(t *testing.T) {
	m, svc := newStoreService()
	ctx := context.Background()

	title := "New title"
	m.factory.StoreRepo.On("FindByID", ctx, uint(4)).
		Return(&entity.Store{ID: 4, UserID: 9, Owner: &entity.User{TelegramID: "900"}}, nil)
	m.factory.StoreRepo.On("Update", ctx, uint(4), mock.MatchedBy(func(u *repository.StoreUpdate) bool {
		return u.Title != nil && *u.Title == title
	})).Return(&entity.Store{ID: 4, UserID: 9, Title: title, Owner: &entity.User{TelegramID: "900"}}, nil)
	m.factory.StoreActionRepo.On("Append", ctx, mock.MatchedBy(func(a *entity.StoreAction) bool {
		return a.ActionType == entity.StoreActionUpdated && a.AdminID != nil
	})).Return(nil)
	m.notifier.On("NotifyStoreUpdated", mock.Anything, mock.Anything).Return(nil).Maybe()

	store, err := svc.UpdateStore(ctx, 4, 2, &usecase.UpdateStoreInput{Title: &title}, true)
	require.NoError(t, err)
	assert.Equal(t, title, store.Title)
}

func TestStoreService_DeleteStore_Owner(t *testing.T) {
	m, svc := newStoreService()
	ctx := context.Background()

	m.factory.StoreRepo.On("FindByID", ctx, uint(4)).
		Return(&entity.Store{ID: 4, UserID: 9, IsActive: true}, nil)
	m.factory.StoreRepo.On("SetActive", ctx, uint(4), false).Return(nil)
	m.factory.StoreActionRepo.On("Append", ctx, mock.MatchedBy(func(a *entity.StoreAction) bool {
		return a.ActionType == entity.StoreActionDeleted && a.AdminID == nil
	})).Return(nil)

	store, err := svc.DeleteStore(ctx, 4, 9, false)
	require.NoError(t, err)
	assert.False(t, store.IsActive)
	m.notifier.AssertNotCalled(t, "NotifyStoreDeleted", mock.Anything, mock.Anything)
}

func TestStoreService_GetStoreByID_BumpsViews(t *testing.T) {
	m, svc := newStoreService()
	ctx := context.Background()

	m.storeRepo.On("FindByID", ctx, uint(4)).
		Return(&entity.Store{ID: 4, Stats: entity.StoreStats{Views: 41}}, nil)
	m.storeRepo.On("UpdateStats", ctx, uint(4), entity.StoreStats{Views: 42}).Return(nil)

	store, err := svc.GetStoreByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 42, store.Stats.Views)
	m.storeRepo.AssertExpectations(t)
}

func TestStoreService_GetStoreByID_ViewBumpFailureIgnored(t *testing.T) {
	m, svc := newStoreService()
	ctx := context.Background()

	m.storeRepo.On("FindByID", ctx, uint(4)).Return(&entity.Store{ID: 4}, nil)
	m.storeRepo.On("UpdateStats", ctx, uint(4), mock.Anything).Return(errors.New("write conflict"))

	store, err := svc.GetStoreByID(ctx, 4)
	require.NoError(t, err)
	assert.NotNil(t, store)
}

func TestStoreService_ListStores_FiltersByOwnerTelegramID(t *testing.T) {
	m, svc := newStoreService()
	ctx := context.Background()

	m.storeRepo.On("List", ctx, repository.StoreFilter{OwnerTelegramID: "900"}, repository.Pagination{Page: 1, Limit: 10}).
		Return([]*entity.Store{{ID: 4, UserID: 9}}, int64(1), nil)

	page, err := svc.ListStores(ctx, &usecase.ListStoresInput{OwnerTelegramID: "900"})
	require.NoError(t, err)
	assert.Len(t, page.Stores, 1)
	m.storeRepo.AssertExpectations(t)
}

func TestStoreService_GetPendingStores(t *testing.T) {
	m, svc := newStoreService()
	ctx := context.Background()

	pending := false
	m.storeRepo.On("List", ctx, repository.StoreFilter{IsApproved: &pending}, repository.Pagination{Page: 1, Limit: 10}).
		Return([]*entity.Store{{ID: 4}}, int64(1), nil)

	page, err := svc.GetPendingStores(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, page.Stores, 1)
	assert.Equal(t, int64(1), page.Meta.Total)
}
