package impl

import (
	"context"
	"log/slog"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"
	"bazaar/internal/util"

	"github.com/pkg/errors"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
	logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	txManager repository.TransactionManager,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		txManager:   txManager,
		productRepo: productRepo,
		storeRepo:   storeRepo,
		logger:      logger,
	}
}

// CreateProduct adds a product to an approved store owned by the acting user.
func (srv *productService) CreateProduct(ctx context.Context, actingUserID uint, input *usecase.CreateProductInput, isAdmin bool) (*entity.Product, error) {
	srv.logger.Info("Creating product", "storeID", input.StoreID, "title", input.Title)

	// 1. The store gates everything: existence, ownership, approval.
	store, err := srv.storeRepo.FindByID(ctx, input.StoreID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store not found")
		}

		return nil, errors.Wrap(err, "failed to find store")
	}
	if !store.IsActive {
		return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store not found")
	}
	if !isAdmin && store.UserID != actingUserID {
		return nil, errors.Wrap(domainerrors.ErrStoreNotOwned, "store belongs to another user")
	}
	if !store.IsApproved {
		return nil, errors.Wrap(domainerrors.ErrStoreNotApproved, "store is not approved")
	}

	availability := input.Availability
	if availability == "" {
		availability = entity.AvailabilityAvailable
	}

	now := time.Now()
	product := &entity.Product{
		StoreID:         input.StoreID,
		CategoryID:      input.CategoryID,
		Title:           input.Title,
		Slug:            util.GenerateUniqueSlug(input.Title, now),
		Description:     input.Description,
		LongDescription: input.LongDescription,
		Properties:      input.Properties,
		Pricing:         input.Pricing,
		Colors:          input.Colors,
		ColorVariations: input.ColorVariations,
		Availability:    availability,
		Brand:           input.Brand,
		Manufacturer:    input.Manufacturer,
		Condition:       input.Condition,
		Tags:            input.Tags,
		Images:          input.Images,
		SEOTitle:        input.MetaTitle,
		SEODescription:  input.MetaDescription,
		SEOKeywords:     input.MetaKeywords,
	}
	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
	}

	// 2. The initial publish state follows the store's autoPublish setting.
	if store.Settings.AutoPublish {
		product.IsPublished = true
		product.PublishedAt = &now
	}

	// 3. Product and store counter commit together.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewProductRepository().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		stats := store.Stats
		stats.Products++
		if err := repoFactory.NewStoreRepository().UpdateStats(ctx, store.ID, stats); err != nil {
			return errors.Wrap(err, "failed to update store product count")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// UpdateProduct applies a partial update after the ownership check.
func (srv *productService) UpdateProduct(ctx context.Context, productID, actingUserID uint, input *usecase.UpdateProductInput, isAdmin bool) (*entity.Product, error) {
	srv.logger.Info("Updating product", "productID", productID, "userID", actingUserID)

	if _, err := srv.findOwned(ctx, productID, actingUserID, isAdmin); err != nil {
		return nil, err
	}

	product, err := srv.productRepo.Update(ctx, productID, &repository.ProductUpdate{
		Title:           input.Title,
		Description:     input.Description,
		LongDescription: input.LongDescription,
		Properties:      input.Properties,
		Pricing:         input.Pricing,
		Colors:          input.Colors,
		ColorVariations: input.ColorVariations,
		Availability:    input.Availability,
		StockQuantity:   input.StockQuantity,
		Brand:           input.Brand,
		Manufacturer:    input.Manufacturer,
		Condition:       input.Condition,
		Tags:            input.Tags,
		Images:          input.Images,
		CategoryID:      input.CategoryID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct soft-deletes after the ownership check and decrements the
// store product counter, never below zero.
func (srv *productService) DeleteProduct(ctx context.Context, productID, actingUserID uint, isAdmin bool) error {
	srv.logger.Info("Deleting product", "productID", productID, "userID", actingUserID)

	product, err := srv.findOwned(ctx, productID, actingUserID, isAdmin)
	if err != nil {
		return err
	}
	if product.IsDeleted {
		return nil
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewProductRepository().SoftDelete(ctx, productID, time.Now()); err != nil {
			return errors.Wrap(err, "failed to delete product")
		}

		if product.Store != nil {
			stats := product.Store.Stats
			if stats.Products > 0 {
				stats.Products--
			}
			if err := repoFactory.NewStoreRepository().UpdateStats(ctx, product.StoreID, stats); err != nil {
				return errors.Wrap(err, "failed to update store product count")
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// PublishProduct marks the product published and stamps publishedAt.
func (srv *productService) PublishProduct(ctx context.Context, productID, actingUserID uint, isAdmin bool) (*entity.Product, error) {
	srv.logger.Info("Publishing product", "productID", productID)

	if _, err := srv.findOwned(ctx, productID, actingUserID, isAdmin); err != nil {
		return nil, err
	}

	now := time.Now()

	product, err := srv.productRepo.SetPublished(ctx, productID, true, &now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to publish product")
	}

	return product, nil
}

// UnpublishProduct hides the product from public listings.
func (srv *productService) UnpublishProduct(ctx context.Context, productID, actingUserID uint, isAdmin bool) (*entity.Product, error) {
	srv.logger.Info("Unpublishing product", "productID", productID)

	if _, err := srv.findOwned(ctx, productID, actingUserID, isAdmin); err != nil {
		return nil, err
	}

	product, err := srv.productRepo.SetPublished(ctx, productID, false, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unpublish product")
	}

	return product, nil
}

// GetProductByID returns the product and bumps its view counter. Soft-deleted
// products still resolve here.
func (srv *productService) GetProductByID(ctx context.Context, productID uint) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	product.Stats.Views++
	if err := srv.productRepo.UpdateStats(ctx, productID, product.Stats); err != nil {
		srv.logger.Debug("failed to bump product views", "productID", productID, "error", err)
	}

	return product, nil
}

// GetProductBySlug returns the product without touching the view counter.
func (srv *productService) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := srv.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListProducts returns a page of non-deleted products, newest first.
func (srv *productService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductPage, error) {
	page := repository.NewPagination(input.Page, input.Limit)
	filter := repository.ProductFilter{
		StoreID:     input.StoreID,
		CategoryID:  input.CategoryID,
		Search:      input.Search,
		IsPublished: input.IsPublished,
		IsFeatured:  input.IsFeatured,
	}

	products, total, err := srv.productRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductPage{Products: products, Meta: repository.NewMeta(page, total)}, nil
}

// GetProductsByStore lists a single store's published products. Unpublished
// items stay owner-only through the filtered listing.
func (srv *productService) GetProductsByStore(ctx context.Context, storeID uint, page, limit int) (*usecase.ProductPage, error) {
	published := true

	return srv.ListProducts(ctx, &usecase.ListProductsInput{
		Page:        page,
		Limit:       limit,
		StoreID:     &storeID,
		IsPublished: &published,
	})
}

// SearchProducts matches published products by title, description or tag.
func (srv *productService) SearchProducts(ctx context.Context, query string, page, limit int) (*usecase.ProductPage, error) {
	published := true

	return srv.ListProducts(ctx, &usecase.ListProductsInput{
		Page:        page,
		Limit:       limit,
		Search:      query,
		IsPublished: &published,
	})
}

// findOwned loads the product and enforces ownership through its store.
func (srv *productService) findOwned(ctx context.Context, productID, actingUserID uint, isAdmin bool) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if !isAdmin && (product.Store == nil || product.Store.UserID != actingUserID) {
		return nil, errors.Wrap(domainerrors.ErrStoreNotOwned, "product belongs to another user's store")
	}

	return product, nil
}
