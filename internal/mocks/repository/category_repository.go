package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// CategoryRepository mocks repository.CategoryRepository.
type CategoryRepository struct {
	mock.Mock
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

func (m *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *CategoryRepository) Update(ctx context.Context, id uint, update *repository.CategoryUpdate) (*entity.Category, error) {
	args := m.Called(ctx, id, update)
	if category, ok := args.Get(0).(*entity.Category); ok {
		return category, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CategoryRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CategoryRepository) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if category, ok := args.Get(0).(*entity.Category); ok {
		return category, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	args := m.Called(ctx, slug)
	if category, ok := args.Get(0).(*entity.Category); ok {
		return category, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CategoryRepository) List(ctx context.Context, filter repository.CategoryFilter, page repository.Pagination) ([]*entity.Category, int64, error) {
	args := m.Called(ctx, filter, page)
	categories, _ := args.Get(0).([]*entity.Category)

	return categories, args.Get(1).(int64), args.Error(2)
}

func (m *CategoryRepository) ListAll(ctx context.Context, filter repository.CategoryFilter) ([]*entity.Category, error) {
	args := m.Called(ctx, filter)
	categories, _ := args.Get(0).([]*entity.Category)

	return categories, args.Error(1)
}

func (m *CategoryRepository) ListActive(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]*entity.Category)

	return categories, args.Error(1)
}

func (m *CategoryRepository) CountUsage(ctx context.Context, id uint) (*repository.CategoryUsage, error) {
	args := m.Called(ctx, id)
	if usage, ok := args.Get(0).(*repository.CategoryUsage); ok {
		return usage, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CategoryRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)

	return args.Bool(0), args.Error(1)
}
