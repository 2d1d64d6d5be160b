// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain's UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Upsert creates the user or refreshes its mutable attributes, keyed on the
// unique telegram_id column.
func (repo *userRepository) Upsert(ctx context.Context, input *repository.UserUpsert) (*entity.User, error) {
	userM := &model.UserModel{
		TelegramID:       input.TelegramID,
		TelegramUsername: input.TelegramUsername,
		TelegramAvatar:   input.TelegramAvatar,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		PhoneNumber:      input.PhoneNumber,
		IsActive:         true,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "telegram_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"telegram_username", "telegram_avatar", "first_name", "last_name", "phone_number", "updated_at",
			}),
		}).
		Create(userM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert user")
	}

	// The conflict path does not report the existing row's flags, so reload.
	var persisted model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("telegram_id = ?", input.TelegramID).
		First(&persisted).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload upserted user")
	}

	return toUserDomain(&persisted), nil
}

// FindByID retrieves a user with its stores and their category links attached.
func (repo *userRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Preload("Stores.Categories.Category").
		First(&userM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByTelegramID retrieves a user by external identifier, stores attached.
func (repo *userRepository) FindByTelegramID(ctx context.Context, telegramID string) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Preload("Stores.Categories.Category").
		Where("telegram_id = ?", telegramID).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by telegram id")
	}

	return toUserDomain(&userM), nil
}

// SetBanned flips the ban flag. Banning deactivates the user, unbanning
// reactivates it.
func (repo *userRepository) SetBanned(ctx context.Context, id uint, banned bool) (*entity.User, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_banned": banned,
			"is_active": !banned,
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update ban flag")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, id).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload user")
	}

	return toUserDomain(&userM), nil
}

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	stores := make([]*entity.Store, 0, len(data.Stores))
	for _, storeM := range data.Stores {
		stores = append(stores, toStoreDomain(storeM))
	}

	return &entity.User{
		ID:               data.ID,
		TelegramID:       data.TelegramID,
		TelegramUsername: data.TelegramUsername,
		TelegramAvatar:   data.TelegramAvatar,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		PhoneNumber:      data.PhoneNumber,
		IsActive:         data.IsActive,
		IsBanned:         data.IsBanned,
		Stores:           stores,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// adminRepository implements the domain's AdminRepository interface using GORM.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

// FindByTelegramID retrieves an admin by external identifier.
func (repo *adminRepository) FindByTelegramID(ctx context.Context, telegramID string) (*entity.Admin, error) {
	var adminM model.AdminModel

	err := repo.db.WithContext(ctx).
		Where("telegram_id = ?", telegramID).
		First(&adminM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by telegram id")
	}

	return &entity.Admin{
		ID:             adminM.ID,
		TelegramID:     adminM.TelegramID,
		TelegramName:   adminM.TelegramName,
		TelegramAvatar: adminM.TelegramAvatar,
		PhoneNumber:    adminM.PhoneNumber,
		Role:           entity.AdminRole(adminM.Role),
		IsActive:       adminM.IsActive,
		CreatedAt:      adminM.CreatedAt,
		UpdatedAt:      adminM.UpdatedAt,
	}, nil
}
