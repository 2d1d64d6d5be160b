package repository

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// ProductRepository mocks repository.ProductRepository.
type ProductRepository struct {
	mock.Mock
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

func (m *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *ProductRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	args := m.Called(ctx, slug)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) List(ctx context.Context, filter repository.ProductFilter, page repository.Pagination) ([]*entity.Product, int64, error) {
	args := m.Called(ctx, filter, page)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepository) Update(ctx context.Context, id uint, update *repository.ProductUpdate) (*entity.Product, error) {
	args := m.Called(ctx, id, update)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) SetPublished(ctx context.Context, id uint, published bool, publishedAt *time.Time) (*entity.Product, error) {
	args := m.Called(ctx, id, published, publishedAt)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) SoftDelete(ctx context.Context, id uint, deletedAt time.Time) (*entity.Product, error) {
	args := m.Called(ctx, id, deletedAt)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) UpdateStats(ctx context.Context, id uint, stats entity.ProductStats) error {
	return m.Called(ctx, id, stats).Error(0)
}
