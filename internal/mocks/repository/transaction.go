package repository

import (
	"context"

	"bazaar/internal/domain/repository"
)

// RepositoryFactory hands out the mock repositories it was seeded with.
type RepositoryFactory struct {
	UserRepo        *UserRepository
	StoreRepo       *StoreRepository
	ProductRepo     *ProductRepository
	StoreActionRepo *StoreActionRepository
	CategoryRepo    *CategoryRepository
}

var _ repository.RepositoryFactory = (*RepositoryFactory)(nil)

func (f *RepositoryFactory) NewUserRepository() repository.UserRepository {
	return f.UserRepo
}

func (f *RepositoryFactory) NewStoreRepository() repository.StoreRepository {
	return f.StoreRepo
}

func (f *RepositoryFactory) NewProductRepository() repository.ProductRepository {
	return f.ProductRepo
}

func (f *RepositoryFactory) NewStoreActionRepository() repository.StoreActionRepository {
	return f.StoreActionRepo
}

func (f *RepositoryFactory) NewCategoryRepository() repository.CategoryRepository {
	return f.CategoryRepo
}

// TransactionManager runs the callback immediately against the seeded
// factory, with no transactional behavior.
type TransactionManager struct {
	Factory *RepositoryFactory
}

var _ repository.TransactionManager = (*TransactionManager)(nil)

func (m *TransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}
