package postgres

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// productRepository implements the domain's ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("product slug already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStoreNotFound.WrapMessage("product store does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	created, err := repo.FindByID(ctx, productM.ID)
	if err != nil {
		return errors.Wrap(err, "failed to reload created product")
	}
	*product = *created

	return nil
}

// FindByID resolves soft-deleted products too; exclusion is a listing concern.
func (repo *productRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var productM model.ProductModel

	err := repo.db.WithContext(ctx).
		Preload("Store.Owner").
		Preload("Category").
		First(&productM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var productM model.ProductModel

	err := repo.db.WithContext(ctx).
		Preload("Store.Owner").
		Preload("Category").
		Where("slug = ?", slug).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by slug")
	}

	return toProductDomain(&productM), nil
}

// List pages through non-deleted products, newest first. The row and count
// queries run concurrently.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter, page repository.Pagination) ([]*entity.Product, int64, error) {
	var (
		productMs []*model.ProductModel
		total     int64
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		err := repo.filteredQuery(groupCtx, filter).
			Preload("Store").
			Preload("Category").
			Order("created_at DESC").
			Offset(page.Offset()).
			Limit(page.Limit).
			Find(&productMs).Error

		return errors.Wrap(err, "failed to list products")
	})
	group.Go(func() error {
		err := repo.filteredQuery(groupCtx, filter).Count(&total).Error

		return errors.Wrap(err, "failed to count products")
	})
	if err := group.Wait(); err != nil {
		return nil, 0, err
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

func (repo *productRepository) Update(ctx context.Context, id uint, update *repository.ProductUpdate) (*entity.Product, error) {
	assignments := map[string]any{}
	if update.Title != nil {
		assignments["title"] = *update.Title
	}
	if update.Description != nil {
		assignments["description"] = *update.Description
	}
	if update.LongDescription != nil {
		assignments["long_description"] = *update.LongDescription
	}
	if update.Properties != nil {
		assignments["properties"] = toJSON(update.Properties)
	}
	if update.Pricing != nil {
		assignments["pricing"] = toJSON(update.Pricing)
	}
	if update.Colors != nil {
		assignments["colors"] = toJSON(update.Colors)
	}
	if update.ColorVariations != nil {
		assignments["color_variations"] = toJSON(update.ColorVariations)
	}
	if update.Availability != nil {
		assignments["availability"] = string(*update.Availability)
	}
	if update.StockQuantity != nil {
		assignments["stock_quantity"] = *update.StockQuantity
	}
	if update.Brand != nil {
		assignments["brand"] = *update.Brand
	}
	if update.Manufacturer != nil {
		assignments["manufacturer"] = *update.Manufacturer
	}
	if update.Condition != nil {
		assignments["condition"] = *update.Condition
	}
	if update.Tags != nil {
		assignments["tags"] = toJSON(update.Tags)
	}
	if update.Images != nil {
		assignments["images"] = toJSON(update.Images)
	}
	if update.SourceMetadata != nil {
		assignments["source_metadata"] = toJSON(update.SourceMetadata)
	}
	if update.CategoryID != nil {
		assignments["category_id"] = *update.CategoryID
	}

	if len(assignments) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("id = ?", id).
			Updates(assignments)
		if result.Error != nil {
			if isForeignKeyConstraintViolation(result.Error) {
				return nil, domainerrors.ErrCategoryNotFound.WrapMessage("product category does not exist")
			}

			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrProductNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// SetPublished toggles the publish flag. publishedAt is recorded only when
// publishing; unpublish keeps the historical timestamp.
func (repo *productRepository) SetPublished(ctx context.Context, id uint, published bool, publishedAt *time.Time) (*entity.Product, error) {
	assignments := map[string]any{"is_published": published}
	if publishedAt != nil {
		assignments["published_at"] = *publishedAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(assignments)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update publish flag")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProductNotFound
	}

	return repo.FindByID(ctx, id)
}

// SoftDelete marks the product deleted without removing the row.
func (repo *productRepository) SoftDelete(ctx context.Context, id uint, deletedAt time.Time) (*entity.Product, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_deleted": true,
			"deleted_at": deletedAt,
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProductNotFound
	}

	return repo.FindByID(ctx, id)
}

// UpdateStats overwrites the counter bag.
func (repo *productRepository) UpdateStats(ctx context.Context, id uint, stats entity.ProductStats) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("stats", toJSON(stats))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product stats")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) filteredQuery(ctx context.Context, filter repository.ProductFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("is_deleted = ?", false)
	if filter.StoreID != nil {
		query = query.Where("store_id = ?", *filter.StoreID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.IsPublished != nil {
		query = query.Where("is_published = ?", *filter.IsPublished)
	}
	if filter.IsFeatured != nil {
		query = query.Where("is_featured = ?", *filter.IsFeatured)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"title ILIKE ? OR description ILIKE ? OR tags::jsonb @> ?",
			like, like, toJSON([]string{filter.Search}),
		)
	}

	return query
}

// toProductDomain converts a GORM ProductModel to a domain Product entity,
// decoding the JSON bags.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:              data.ID,
		StoreID:         data.StoreID,
		CategoryID:      data.CategoryID,
		Title:           data.Title,
		Slug:            data.Slug,
		Description:     data.Description,
		LongDescription: data.LongDescription,
		Availability:    entity.Availability(data.Availability),
		StockQuantity:   data.StockQuantity,
		Brand:           data.Brand,
		Manufacturer:    data.Manufacturer,
		Condition:       data.Condition,
		SEOTitle:        data.SEOTitle,
		SEODescription:  data.SEODescription,
		IsPublished:     data.IsPublished,
		PublishedAt:     data.PublishedAt,
		IsFeatured:      data.IsFeatured,
		IsDeleted:       data.IsDeleted,
		DeletedAt:       data.DeletedAt,
		Store:           toStoreDomain(data.Store),
		Category:        toCategoryDomain(data.Category),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	fromJSON(data.Properties, &product.Properties)
	fromJSON(data.Pricing, &product.Pricing)
	fromJSON(data.Colors, &product.Colors)
	fromJSON(data.ColorVariations, &product.ColorVariations)
	fromJSON(data.Tags, &product.Tags)
	fromJSON(data.Images, &product.Images)
	fromJSON(data.SourceMetadata, &product.SourceMetadata)
	fromJSON(data.SEOKeywords, &product.SEOKeywords)
	fromJSON(data.Stats, &product.Stats)

	return product
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:              data.ID,
		StoreID:         data.StoreID,
		CategoryID:      data.CategoryID,
		Title:           data.Title,
		Slug:            data.Slug,
		Description:     data.Description,
		LongDescription: data.LongDescription,
		Properties:      toJSON(data.Properties),
		Pricing:         toJSON(data.Pricing),
		Colors:          toJSON(data.Colors),
		ColorVariations: toJSON(data.ColorVariations),
		Availability:    string(data.Availability),
		StockQuantity:   data.StockQuantity,
		Brand:           data.Brand,
		Manufacturer:    data.Manufacturer,
		Condition:       data.Condition,
		Tags:            toJSON(data.Tags),
		Images:          toJSON(data.Images),
		SourceMetadata:  toJSON(data.SourceMetadata),
		SEOTitle:        data.SEOTitle,
		SEODescription:  data.SEODescription,
		SEOKeywords:     toJSON(data.SEOKeywords),
		Stats:           toJSON(data.Stats),
		IsPublished:     data.IsPublished,
		PublishedAt:     data.PublishedAt,
		IsFeatured:      data.IsFeatured,
		IsDeleted:       data.IsDeleted,
		DeletedAt:       data.DeletedAt,
	}
}
