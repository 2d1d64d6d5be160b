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

// recentProductsLimit caps the product preview attached to a single store read.
const recentProductsLimit = 10

// storeRepository implements the domain's StoreRepository interface using GORM.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// Create persists the store and its category links. The first category id is
// marked primary.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store, categoryIDs []uint) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("store slug already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("store owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	links := make([]*model.StoreCategoryModel, 0, len(categoryIDs))
	for i, categoryID := range categoryIDs {
		links = append(links, &model.StoreCategoryModel{
			StoreID:    storeM.ID,
			CategoryID: categoryID,
			IsPrimary:  i == 0,
		})
	}
	if len(links) > 0 {
		if err := repo.db.WithContext(ctx).Create(&links).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return domainerrors.ErrCategoryNotFound.WrapMessage("linked category does not exist")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to link store categories")
		}
	}

	created, err := repo.FindByID(ctx, storeM.ID)
	if err != nil {
		return errors.Wrap(err, "failed to reload created store")
	}
	*store = *created

	return nil
}

// FindByID returns the store with owner, category links and a preview of its
// most recent published products.
func (repo *storeRepository) FindByID(ctx context.Context, id uint) (*entity.Store, error) {
	var storeM model.StoreModel

	err := repo.storeQuery(ctx).First(&storeM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	return toStoreDomain(&storeM), nil
}

// FindBySlug is FindByID keyed on the unique slug.
func (repo *storeRepository) FindBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	var storeM model.StoreModel

	err := repo.storeQuery(ctx).Where("slug = ?", slug).First(&storeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by slug")
	}

	return toStoreDomain(&storeM), nil
}

// List pages through active stores, newest first. The row and count queries
// run concurrently.
func (repo *storeRepository) List(ctx context.Context, filter repository.StoreFilter, page repository.Pagination) ([]*entity.Store, int64, error) {
	var (
		storeMs []*model.StoreModel
		total   int64
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		err := repo.filteredQuery(groupCtx, filter).
			Preload("Owner").
			Preload("Categories.Category").
			Order("stores.created_at DESC").
			Offset(page.Offset()).
			Limit(page.Limit).
			Find(&storeMs).Error

		return errors.Wrap(err, "failed to list stores")
	})
	group.Go(func() error {
		err := repo.filteredQuery(groupCtx, filter).Count(&total).Error

		return errors.Wrap(err, "failed to count stores")
	})
	if err := group.Wait(); err != nil {
		return nil, 0, err
	}

	stores := make([]*entity.Store, 0, len(storeMs))
	for _, storeM := range storeMs {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, total, nil
}

// FindAll returns every store row without relations, for the channel
// uniqueness scan.
func (repo *storeRepository) FindAll(ctx context.Context) ([]*entity.Store, error) {
	var storeMs []*model.StoreModel

	if err := repo.db.WithContext(ctx).Find(&storeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load stores")
	}

	stores := make([]*entity.Store, 0, len(storeMs))
	for _, storeM := range storeMs {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

// ExistsByNationalCode matches the code as a substring of the serialized
// identity bag, mirroring how the identity column is written.
func (repo *storeRepository) ExistsByNationalCode(ctx context.Context, nationalCode string) (bool, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("identity::text LIKE ?", "%"+nationalCode+"%").
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check national code")
	}

	return count > 0, nil
}

// Update applies a partial update and returns the refreshed store.
func (repo *storeRepository) Update(ctx context.Context, id uint, update *repository.StoreUpdate) (*entity.Store, error) {
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
	if update.Socials != nil {
		assignments["socials"] = toJSON(update.Socials)
	}
	if update.Identity != nil {
		assignments["identity"] = toJSON(update.Identity)
	}
	if update.Avatar != nil {
		assignments["avatar"] = *update.Avatar
	}
	if update.CoverImage != nil {
		assignments["cover_image"] = *update.CoverImage
	}
	if update.Tags != nil {
		assignments["tags"] = toJSON(update.Tags)
	}

	if len(assignments) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.StoreModel{}).
			Where("id = ?", id).
			Updates(assignments)
		if result.Error != nil {
			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update store")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrStoreNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// Approve marks the store approved, clearing any earlier rejection.
func (repo *storeRepository) Approve(ctx context.Context, id uint, adminID uint, qr *entity.StoreQRCode) (*entity.Store, error) {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_approved":      true,
			"approved_at":      now,
			"approved_by_id":   adminID,
			"rejection_reason": "",
			"qr_code":          toJSON(qr),
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to approve store")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrStoreNotFound
	}

	return repo.FindByID(ctx, id)
}

// Reject records the reason and clears the approval flag.
func (repo *storeRepository) Reject(ctx context.Context, id uint, reason string) (*entity.Store, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_approved":      false,
			"approved_at":      nil,
			"approved_by_id":   nil,
			"rejection_reason": reason,
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to reject store")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrStoreNotFound
	}

	return repo.FindByID(ctx, id)
}

// SetActive flips the soft-delete flag.
func (repo *storeRepository) SetActive(ctx context.Context, id uint, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update store active flag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// DeactivateByOwner soft-deletes every store owned by the user.
func (repo *storeRepository) DeactivateByOwner(ctx context.Context, userID uint) error {
	err := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("user_id = ?", userID).
		Update("is_active", false).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate stores")
	}

	return nil
}

// UpdateStats overwrites the counter bag.
func (repo *storeRepository) UpdateStats(ctx context.Context, id uint, stats entity.StoreStats) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", id).
		Update("stats", toJSON(stats))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update store stats")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

func (repo *storeRepository) storeQuery(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Owner").
		Preload("Categories.Category").
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_published = ? AND is_deleted = ?", true, false).
				Order("created_at DESC").
				Limit(recentProductsLimit)
		})
}

func (repo *storeRepository) filteredQuery(ctx context.Context, filter repository.StoreFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("stores.is_active = ?", true)
	if filter.IsApproved != nil {
		query = query.Where("stores.is_approved = ?", *filter.IsApproved)
	}
	if filter.CategoryID != nil {
		query = query.Joins(
			"JOIN store_categories ON store_categories.store_id = stores.id AND store_categories.category_id = ?",
			*filter.CategoryID,
		)
	}
	if filter.OwnerTelegramID != "" {
		query = query.
			Joins("JOIN users ON users.id = stores.user_id").
			Where("users.telegram_id = ?", filter.OwnerTelegramID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"stores.title ILIKE ? OR stores.description ILIKE ? OR stores.tags::jsonb @> ?",
			like, like, toJSON([]string{filter.Search}),
		)
	}

	return query
}

// toStoreDomain converts a GORM StoreModel to a domain Store entity,
// decoding the JSON bags.
func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	store := &entity.Store{
		ID:              data.ID,
		UserID:          data.UserID,
		Title:           data.Title,
		Slug:            data.Slug,
		Description:     data.Description,
		LongDescription: data.LongDescription,
		Avatar:          data.Avatar,
		CoverImage:      data.CoverImage,
		SEOTitle:        data.SEOTitle,
		SEODescription:  data.SEODescription,
		IsApproved:      data.IsApproved,
		ApprovedAt:      data.ApprovedAt,
		ApprovedByID:    data.ApprovedByID,
		RejectionReason: data.RejectionReason,
		IsActive:        data.IsActive,
		IsFeatured:      data.IsFeatured,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	fromJSON(data.Socials, &store.Socials)
	fromJSON(data.Identity, &store.Identity)
	fromJSON(data.Tags, &store.Tags)
	fromJSON(data.SEOKeywords, &store.SEOKeywords)
	fromJSON(data.Stats, &store.Stats)
	fromJSON(data.Settings, &store.Settings)
	if len(data.QRCode) > 0 {
		qr := &entity.StoreQRCode{}
		fromJSON(data.QRCode, qr)
		store.QRCode = qr
	}

	if data.Owner != nil {
		store.Owner = toUserDomain(data.Owner)
	}
	for _, linkM := range data.Categories {
		store.Categories = append(store.Categories, &entity.StoreCategory{
			ID:         linkM.ID,
			StoreID:    linkM.StoreID,
			CategoryID: linkM.CategoryID,
			IsPrimary:  linkM.IsPrimary,
			Category:   toCategoryDomain(linkM.Category),
			CreatedAt:  linkM.CreatedAt,
		})
	}
	for _, productM := range data.Products {
		store.Products = append(store.Products, toProductDomain(productM))
	}

	return store
}

// fromStoreDomain converts a domain Store entity to a GORM StoreModel.
func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Title:           data.Title,
		Slug:            data.Slug,
		Description:     data.Description,
		LongDescription: data.LongDescription,
		Socials:         toJSON(data.Socials),
		Identity:        toJSON(data.Identity),
		Avatar:          data.Avatar,
		CoverImage:      data.CoverImage,
		Tags:            toJSON(data.Tags),
		SEOTitle:        data.SEOTitle,
		SEODescription:  data.SEODescription,
		SEOKeywords:     toJSON(data.SEOKeywords),
		Stats:           toJSON(data.Stats),
		Settings:        toJSON(data.Settings),
		IsApproved:      data.IsApproved,
		ApprovedAt:      data.ApprovedAt,
		ApprovedByID:    data.ApprovedByID,
		RejectionReason: data.RejectionReason,
		IsActive:        data.IsActive,
		IsFeatured:      data.IsFeatured,
		QRCode:          toJSON(data.QRCode),
	}
}

// storeActionRepository implements the domain's StoreActionRepository
// interface using GORM.
type storeActionRepository struct {
	db *gorm.DB
}

// NewStoreActionRepository is the constructor for storeActionRepository.
func NewStoreActionRepository(db *gorm.DB) repository.StoreActionRepository {
	return &storeActionRepository{db: db}
}

// Append writes one immutable audit record.
func (repo *storeActionRepository) Append(ctx context.Context, action *entity.StoreAction) error {
	actionM := &model.StoreActionModel{
		StoreID:     action.StoreID,
		AdminID:     action.AdminID,
		ActionType:  string(action.ActionType),
		Description: action.Description,
		Metadata:    toJSON(action.Metadata),
	}

	if err := repo.db.WithContext(ctx).Create(actionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append store action")
	}

	action.ID = actionM.ID
	action.CreatedAt = actionM.CreatedAt

	return nil
}
