// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	adminRepo repository.AdminRepository
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	adminRepo repository.AdminRepository,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager: txManager,
		userRepo:  userRepo,
		adminRepo: adminRepo,
		logger:    logger,
	}
}

// UpsertUser creates the user or refreshes its attributes, keyed on the
// Telegram identifier.
func (srv *userService) UpsertUser(ctx context.Context, input *usecase.UpsertUserInput) (*entity.User, error) {
	srv.logger.Info("Upserting user", "telegramID", input.TelegramID)

	user, err := srv.userRepo.Upsert(ctx, &repository.UserUpsert{
		TelegramID:       input.TelegramID,
		TelegramUsername: input.TelegramUsername,
		TelegramAvatar:   input.TelegramAvatar,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		PhoneNumber:      input.PhoneNumber,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert user")
	}

	return user, nil
}

// GetUserByID retrieves a user with stores attached.
func (srv *userService) GetUserByID(ctx context.Context, id uint) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// GetUserByTelegramID retrieves a user by external identifier.
func (srv *userService) GetUserByTelegramID(ctx context.Context, telegramID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// ResolveUser resolves an external identifier to an active, non-banned user.
func (srv *userService) ResolveUser(ctx context.Context, telegramID string) (*entity.User, error) {
	if telegramID == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "missing telegram identity")
	}

	user, err := srv.userRepo.FindByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserAccessDenied, "unknown telegram identity")
		}

		return nil, errors.Wrap(err, "failed to resolve user")
	}

	if user.IsBanned || !user.IsActive {
		return nil, errors.Wrap(domainerrors.ErrUserAccessDenied, "user is banned or inactive")
	}

	return user, nil
}

// ResolveAdmin resolves an external identifier to an active admin.
func (srv *userService) ResolveAdmin(ctx context.Context, telegramID string) (*entity.Admin, error) {
	if telegramID == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "missing telegram identity")
	}

	admin, err := srv.adminRepo.FindByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAdminAccessRequired, "unknown admin identity")
		}

		return nil, errors.Wrap(err, "failed to resolve admin")
	}

	if !admin.IsActive {
		return nil, errors.Wrap(domainerrors.ErrAdminAccessRequired, "admin is inactive")
	}

	return admin, nil
}

// ResolveOptionalUser is ResolveUser that never fails; absent or invalid
// identities yield nil.
func (srv *userService) ResolveOptionalUser(ctx context.Context, telegramID string) *entity.User {
	if telegramID == "" {
		return nil
	}

	user, err := srv.ResolveUser(ctx, telegramID)
	if err != nil {
		return nil
	}

	return user
}

// BanUser bans the user and deactivates all owned stores in one transaction.
func (srv *userService) BanUser(ctx context.Context, id uint) (*entity.User, error) {
	srv.logger.Info("Banning user", "userID", id)

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		banned, err := repoFactory.NewUserRepository().SetBanned(ctx, id, true)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to ban user")
		}

		if err := repoFactory.NewStoreRepository().DeactivateByOwner(ctx, id); err != nil {
			return errors.Wrap(err, "failed to deactivate owned stores")
		}
		user = banned

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to ban user")
	}

	return user, nil
}

// UnbanUser lifts the ban and reactivates the user. Stores stay inactive
// until explicitly restored.
func (srv *userService) UnbanUser(ctx context.Context, id uint) (*entity.User, error) {
	srv.logger.Info("Unbanning user", "userID", id)

	user, err := srv.userRepo.SetBanned(ctx, id, false)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to unban user")
	}

	return user, nil
}
