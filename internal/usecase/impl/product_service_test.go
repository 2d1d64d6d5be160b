package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceMocks struct {
	factory     *mockRepo.RepositoryFactory
	productRepo *mockRepo.ProductRepository
	storeRepo   *mockRepo.StoreRepository
}

func newProductService() (*productServiceMocks, usecase.ProductUsecase) {
	m := &productServiceMocks{
		factory: &mockRepo.RepositoryFactory{
			UserRepo:        &mockRepo.UserRepository{},
			StoreRepo:       &mockRepo.StoreRepository{},
			ProductRepo:     &mockRepo.ProductRepository{},
			StoreActionRepo: &mockRepo.StoreActionRepository{},
			CategoryRepo:    &mockRepo.CategoryRepository{},
		},
		productRepo: &mockRepo.ProductRepository{},
		storeRepo:   &mockRepo.StoreRepository{},
	}
	svc := NewProductService(
		&mockRepo.TransactionManager{Factory: m.factory},
		m.productRepo,
		m.storeRepo,
		newTestLogger(),
	)

	return m, svc
}

func approvedStore(ownerID uint) *entity.Store {
	return &entity.Store{
		ID:         3,
		UserID:     ownerID,
		IsApproved: true,
		IsActive:   true,
		Settings:   entity.DefaultStoreSettings(),
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	m, svc := newProductService()
	ctx := context.Background()

	m.storeRepo.On("FindByID", ctx, uint(3)).Return(approvedStore(9), nil)
	m.factory.ProductRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	m.factory.StoreRepo.On("UpdateStats", ctx, uint(3), entity.StoreStats{Products: 1}).Return(nil)

	product, err := svc.CreateProduct(ctx, 9, &usecase.CreateProductInput{
		StoreID: 3,
		Title:   "Ceramic mug",
	}, false)
	require.NoError(t, err)
	assert.Equal(t, entity.AvailabilityAvailable, product.Availability)
	assert.False(t, product.IsPublished)
	assert.Nil(t, product.PublishedAt)
	m.factory.StoreRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_AutoPublish(t *testing.T) {
	m, svc := newProductService()
	ctx := context.Background()

	store := approvedStore(9)
	store.Settings.AutoPublish = true

	m.storeRepo.On("FindByID", ctx, uint(3)).Return(store, nil)
	m.factory.ProductRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	m.factory.StoreRepo.On("UpdateStats", ctx, uint(3), mock.Anything).Return(nil)

	product, err := svc.CreateProduct(ctx, 9, &usecase.CreateProductInput{
		StoreID: 3,
		Title:   "Ceramic mug",
	}, false)
	require.NoError(t, err)
	assert.True(t, product.IsPublished)
	require.NotNil(t, product.PublishedAt)
}

func TestProductService_CreateProduct_StoreNotApproved(t *testing.T) {
	m, svc := newProductService()
	ctx := context.Background()

	store := approvedStore(9)
	store.IsApproved = false
	m.storeRepo.On("FindByID", ctx, uint(3)).Return(store, nil)

	product, err := svc.CreateProduct(ctx, 9, &usecase.CreateProductInput{
		StoreID: 3,
		Title:   "Ceramic mug",
	}, false)
	require.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotApproved))
	m.factory.ProductRepo.AssertNotCalled(t, "Create", ctx, mock.Anything)
}

func TestProductService_CreateProduct_NotOwner(t *testing.T) {
	m, svc := newProductService()
	ctx := context.Background()

	m.storeRepo.On("FindByID", ctx, uint(3)).Return(approvedStore(9), nil)

	product, err := svc.CreateProduct(ctx, 8, &usecase.CreateProductInput{
		StoreID: 3,
		Title:   "Ceramic mug",
	}, false)
	require.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotOwned))
}

func TestProductService_CreateProduct_InactiveStore(t *testing.T) {
	m, svc := newProductService()
	ctx := context.Background()

	store := approvedStore(9)
	store.IsActive = false
	m.storeRepo.On("FindByID", ctx, uint(3)).Return(store, nil)

	_, err := svc.CreateProduct(ctx, 9, &usecase.CreateProductInput{
		StoreID: 3,
		Title:   "Ceramic mug",
	}, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotFound))
}

func TestProductService_DeleteProduct_DecrementsCounter(t *testing.T) {
	m, svc := newProductService()
	ctx := context.Background()

	store := approvedStore(9)
	store.Stats.Products = 5
	m.productRepo.On("FindByID", ctx, uint(11)).
		Return(&entity.Product{ID: 11, StoreID: 3, Store: store}, nil)
	m.factory.ProductRepo.On("SoftDelete", ctx, uint(11), mock.AnythingOfType("time.Time")).
		Return(&entity.Product{ID: 11, IsDeleted: true}, nil)
	m.factory.StoreRepo.On("UpdateStats", ctx, uint(3), entity.StoreStats{Products: 4}).Return(nil)

	err := svc.DeleteProduct(ctx, 11, 9, false)
	require.NoError(t, err)
	m.factory.StoreRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct_CounterFlooredAtZero(t *testing.T) {
	m, svc := newProductService()
	ctx := context.Background()

	store := approvedStore(9)
	store.Stats.Products = 0
	m.productRepo.On("FindByID", ctx, uint(11)).
		Return(&entity.Product{ID: 11, StoreID: 3, Store: store}, nil)
	m.factory.ProductRepo.On("SoftDelete", ctx, uint(11), mock.AnythingOfType("time.Time")).
		Return(&entity.Product{ID: 11, IsDeleted: true}, nil)
	m.factory.StoreRepo.On("UpdateStats", ctx, uint(3), entity.StoreStats{Products: 0}).Return(nil)

	err := svc.DeleteProduct(ctx, 11, 9, false)
	require.NoError(t, err)
	m.factory.StoreRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct_AlreadyDeleted(t *testing.T) {
	m, svc := newProductService()
	ctx := context.Background()

	m.productRepo.On("FindByID", ctx, uint(11)).
		Return(&entity.Product{ID: 11, StoreID: 3, IsDeleted: true, Store: approvedStore(9)}, nil)

	err := svc.DeleteProduct(ctx, 11, 9, false)
	require.NoError(t, err)
	m.factory.ProductRepo.AssertNotCalled(t, "SoftDelete", ctx, uint(11), mock.Anything)
}

func TestProductService_PublishProduct(t *testing.T) {
	m, svc := newProductService()
	ctx := context.Background()

	m.productRepo.On("FindByID", ctx, uint(11)).
		Return(&entity.Product{ID: 11, StoreID: 3, Store: approvedStore(9)}, nil)
	now := time.Now()
	m.productRepo.On("SetPublished", ctx, uint(11), true, mock.AnythingOfType("*time.Time")).
		Return(&entity.Product{ID: 11, IsPublished: true, PublishedAt: &now}, nil)

	product, err := svc.PublishProduct(ctx, 11, 9, false)
	require.NoError(t, err)
	assert.True(t, product.IsPublished)
}

func TestProductService_UnpublishProduct(t *testing.T) {
	m, svc := newProductService()
	ctx := context.Background()

	m.productRepo.On("FindByID", ctx, uint(11)).
		Return(&entity.Product{ID: 11, StoreID: 3, Store: approvedStore(9)}, nil)
	m.productRepo.On("SetPublished", ctx, uint(11), false, (*time.Time)(nil)).
		Return(&entity.Product{ID: 11, IsPublished: false}, nil)

	product, err := svc.UnpublishProduct(ctx, 11, 9, false)
	require.NoError(t, err)
	assert.False(t, product.IsPublished)
}

func TestProductService_GetProductByID_BumpsViews(t *testing.T) {
	m, svc := newProductService()
	ctx := context.Background()

	m.productRepo.On("FindByID", ctx, uint(11)).
		Return(&entity.Product{ID: 11, Stats: entity.ProductStats{Views: 7}}, nil)
	m.productRepo.On("UpdateStats", ctx, uint(11), entity.ProductStats{Views: 8}).Return(nil)

	product, err := svc.GetProductByID(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, 8, product.Stats.Views)
	m.productRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID_SoftDeletedStillResolves(t *testing.T) {
	m, svc := newProductService()
	ctx := context.Background()

	m.productRepo.On("FindByID", ctx, uint(11)).
		Return(&entity.Product{ID: 11, IsDeleted: true}, nil)
	m.productRepo.On("UpdateStats", ctx, uint(11), mock.Anything).Return(nil)

	product, err := svc.GetProductByID(ctx, 11)
	require.NoError(t, err)
	assert.True(t, product.IsDeleted)
}

func TestProductService_SearchProducts_OnlyPublished(t *testing.T) {
	m, svc := newProductService()
	ctx := context.Background()

	published := true
	m.productRepo.On("List", ctx, repository.ProductFilter{Search: "mug", IsPublished: &published},
		repository.Pagination{Page: 1, Limit: 10}).
		Return([]*entity.Product{{ID: 11}}, int64(1), nil)

	page, err := svc.SearchProducts(ctx, "mug", 0, 0)
	require.NoError(t, err)
	assert.Len(t, page.Products, 1)
	assert.Equal(t, int64(1), page.Meta.Total)
}

func TestProductService_GetProductsByStore_OnlyPublished(t *testing.T) {
	m, svc := newProductService()
	ctx := context.Background()

	storeID := uint(3)
	published := true
	m.productRepo.On("List", ctx, repository.ProductFilter{StoreID: &storeID, IsPublished: &published},
		repository.Pagination{Page: 1, Limit: 10}).
		Return([]*entity.Product{{ID: 11}, {ID: 12}}, int64(2), nil)

	page, err := svc.GetProductsByStore(ctx, storeID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, page.Products, 2)
	m.productRepo.AssertExpectations(t)
}

func TestProductService_ListProducts_PaginationMeta(t *testing.T) {
	m, svc := newProductService()
	ctx := context.Background()

	products := make([]*entity.Product, 10)
	for i := range products {
		products[i] = &entity.Product{ID: uint(i + 1)}
	}
	m.productRepo.On("List", ctx, repository.ProductFilter{}, repository.Pagination{Page: 1, Limit: 10}).
		Return(products, int64(25), nil)

	page, err := svc.ListProducts(ctx, &usecase.ListProductsInput{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page.Products, 10)
	assert.Equal(t, 3, page.Meta.TotalPages)
	assert.True(t, page.Meta.HasNextPage)
	assert.False(t, page.Meta.HasPrevPage)
}
