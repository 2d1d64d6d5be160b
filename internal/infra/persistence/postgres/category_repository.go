package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryOrder is the canonical listing order for every category read.
const categoryOrder = "sort_order ASC, title ASC"

// categoryRepository implements the domain's CategoryRepository interface using GORM.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

func (repo *categoryRepository) Update(ctx context.Context, id uint, update *repository.CategoryUpdate) (*entity.Category, error) {
	assignments := map[string]any{}
	if update.Title != nil {
		assignments["title"] = *update.Title
	}
	if update.Icon != nil {
		assignments["icon"] = *update.Icon
	}
	if update.Description != nil {
		assignments["description"] = *update.Description
	}
	if update.ParentID != nil {
		assignments["parent_id"] = *update.ParentID
	}
	if update.ClearParent {
		assignments["parent_id"] = nil
	}
	if update.MetaTitle != nil {
		assignments["meta_title"] = *update.MetaTitle
	}
	if update.MetaDescription != nil {
		assignments["meta_description"] = *update.MetaDescription
	}
	if update.MetaKeywords != nil {
		assignments["meta_keywords"] = toJSON(update.MetaKeywords)
	}
	if update.SortOrder != nil {
		assignments["sort_order"] = *update.SortOrder
	}
	if update.IsActive != nil {
		assignments["is_active"] = *update.IsActive
	}

	if len(assignments) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.CategoryModel{}).
			Where("id = ?", id).
			Updates(assignments)
		if result.Error != nil {
			if isUniqueConstraintViolation(result.Error) {
				return nil, repository.ErrDuplicateSlug
			}

			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrCategoryNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// Delete removes the row; dependents must be checked by the caller right
// before this call.
func (repo *categoryRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.CategoryModel{}, id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryInUse.WrapMessage("category is still referenced")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

func (repo *categoryRepository) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	var categoryM model.CategoryModel

	err := repo.db.WithContext(ctx).
		Preload("Parent").
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order(categoryOrder)
		}).
		First(&categoryM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	var categoryM model.CategoryModel

	err := repo.db.WithContext(ctx).
		Preload("Parent").
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order(categoryOrder)
		}).
		Where("slug = ?", slug).
		First(&categoryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by slug")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) List(ctx context.Context, filter repository.CategoryFilter, page repository.Pagination) ([]*entity.Category, int64, error) {
	var total int64
	if err := repo.filteredQuery(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count categories")
	}

	var categoryMs []*model.CategoryModel
	err := repo.filteredQuery(ctx, filter).
		Preload("Parent").
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order(categoryOrder)
		}).
		Order(categoryOrder).
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&categoryMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list categories")
	}

	return toCategoryDomains(categoryMs), total, nil
}

func (repo *categoryRepository) ListAll(ctx context.Context, filter repository.CategoryFilter) ([]*entity.Category, error) {
	var categoryMs []*model.CategoryModel

	err := repo.filteredQuery(ctx, filter).
		Preload("Parent").
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order(categoryOrder)
		}).
		Order(categoryOrder).
		Find(&categoryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return toCategoryDomains(categoryMs), nil
}

// ListActive returns the flat arena for in-memory tree walks, no relations.
func (repo *categoryRepository) ListActive(ctx context.Context) ([]*entity.Category, error) {
	var categoryMs []*model.CategoryModel

	err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order(categoryOrder).
		Find(&categoryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active categories")
	}

	return toCategoryDomains(categoryMs), nil
}

func (repo *categoryRepository) CountUsage(ctx context.Context, id uint) (*repository.CategoryUsage, error) {
	usage := &repository.CategoryUsage{}

	err := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("parent_id = ?", id).
		Count(&usage.Children).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count child categories")
	}

	err = repo.db.WithContext(ctx).
		Model(&model.StoreCategoryModel{}).
		Where("category_id = ?", id).
		Count(&usage.Stores).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count store links")
	}

	err = repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("category_id = ? AND is_deleted = ?", id, false).
		Count(&usage.Products).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	return usage, nil
}

func (repo *categoryRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("slug = ?", slug).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check category slug")
	}

	return count > 0, nil
}

func (repo *categoryRepository) filteredQuery(ctx context.Context, filter repository.CategoryFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("is_active = ?", true)
	if filter.RootsOnly {
		query = query.Where("parent_id IS NULL")
	} else if filter.ParentID != nil {
		query = query.Where("parent_id = ?", *filter.ParentID)
	}

	return query
}

// toCategoryDomain converts a GORM CategoryModel to a domain Category entity.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	var keywords []string
	fromJSON(data.MetaKeywords, &keywords)

	category := &entity.Category{
		ID:              data.ID,
		Title:           data.Title,
		Slug:            data.Slug,
		Icon:            data.Icon,
		Description:     data.Description,
		ParentID:        data.ParentID,
		MetaTitle:       data.MetaTitle,
		MetaDescription: data.MetaDescription,
		MetaKeywords:    keywords,
		SortOrder:       data.SortOrder,
		IsActive:        data.IsActive,
		Parent:          toCategoryDomain(data.Parent),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	for _, childM := range data.Children {
		category.Children = append(category.Children, toCategoryDomain(childM))
	}

	return category
}

func toCategoryDomains(data []*model.CategoryModel) []*entity.Category {
	categories := make([]*entity.Category, 0, len(data))
	for _, categoryM := range data {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories
}

// fromCategoryDomain converts a domain Category entity to a GORM CategoryModel.
func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:              data.ID,
		Title:           data.Title,
		Slug:            data.Slug,
		Icon:            data.Icon,
		Description:     data.Description,
		ParentID:        data.ParentID,
		MetaTitle:       data.MetaTitle,
		MetaDescription: data.MetaDescription,
		MetaKeywords:    toJSON(data.MetaKeywords),
		SortOrder:       data.SortOrder,
		IsActive:        data.IsActive,
	}
}
