package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"
	"bazaar/internal/util"

	"github.com/pkg/errors"
)

// storeService implements the StoreUsecase interface.
type storeService struct {
	txManager    repository.TransactionManager
	storeRepo    repository.StoreRepository
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	qrService    service.QRCodeService
	notifier     service.BotNotifier
	logger       *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(
	txManager repository.TransactionManager,
	storeRepo repository.StoreRepository,
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
	qrService service.QRCodeService,
	notifier service.BotNotifier,
	logger *slog.Logger,
) usecase.StoreUsecase {
	return &storeService{
		txManager:    txManager,
		storeRepo:    storeRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		qrService:    qrService,
		notifier:     notifier,
		logger:       logger,
	}
}

// CreateStore validates uniqueness invariants, persists the pending store
// with its category links and audit action, then notifies the bot.
func (srv *storeService) CreateStore(ctx context.Context, userID uint, input *usecase.CreateStoreInput) (*entity.Store, error) {
	srv.logger.Info("Creating store", "userID", userID, "title", input.Title)

	// 1. The owner must exist.
	owner, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "owner not found")
		}

		return nil, errors.Wrap(err, "failed to find owner")
	}

	// 2. One store per national code.
	taken, err := srv.storeRepo.ExistsByNationalCode(ctx, input.Identity.NationalCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check national code")
	}
	if taken {
		return nil, errors.Wrap(domainerrors.ErrNationalCodeTaken, "national code already registered")
	}

	// 3. One store per Telegram channel.
	existing, err := srv.storeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan stores")
	}
	for _, other := range existing {
		if other.Socials.Telegram.ID == input.Socials.Telegram.ID {
			return nil, errors.Wrap(domainerrors.ErrChannelTaken, "telegram channel already registered")
		}
	}

	// 4. Every referenced category must exist.
	categoryNames := make([]string, 0, len(input.CategoryIDs))
	for _, categoryID := range input.CategoryIDs {
		category, err := srv.categoryRepo.FindByID(ctx, categoryID)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, errors.Wrap(domainerrors.ErrCategoryNotFound,
					fmt.Sprintf("category %d not found", categoryID))
			}

			return nil, errors.Wrap(err, "failed to find category")
		}
		categoryNames = append(categoryNames, category.Title)
	}

	store := &entity.Store{
		UserID:          userID,
		Title:           input.Title,
		Slug:            util.GenerateUniqueSlug(input.Title, time.Now()),
		Description:     input.Description,
		LongDescription: input.LongDescription,
		Socials: entity.StoreSocials{
			Telegram: entity.TelegramChannel{
				ID:       input.Socials.Telegram.ID,
				Username: input.Socials.Telegram.Username,
				Avatar:   input.Socials.Telegram.Avatar,
				Bio:      input.Socials.Telegram.Bio,
			},
			Instagram: input.Socials.Instagram,
			WhatsApp:  input.Socials.WhatsApp,
			Website:   input.Socials.Website,
		},
		Identity:   toStoreIdentity(&input.Identity),
		Avatar:     input.Avatar,
		CoverImage: input.CoverImage,
		Tags:       input.Tags,
		Settings:   entity.DefaultStoreSettings(),
		IsActive:   true,
		// SEO fields start from the store's own copy until the owner edits them.
		SEOTitle:       input.Title,
		SEODescription: input.Description,
		SEOKeywords:    input.Tags,
	}

	// 5. Store, category links and the CREATED action commit together.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewStoreRepository().Create(ctx, store, input.CategoryIDs); err != nil {
			return errors.Wrap(err, "failed to create store")
		}

		action := &entity.StoreAction{
			StoreID:     store.ID,
			ActionType:  entity.StoreActionCreated,
			Description: "Store submitted for review",
			Metadata: map[string]any{
				"title":       store.Title,
				"categoryIds": input.CategoryIDs,
			},
		}
		if err := repoFactory.NewStoreActionRepository().Append(ctx, action); err != nil {
			return errors.Wrap(err, "failed to record store action")
		}

		return nil
	})
	if err != nil {
		if sendErr := srv.notifier.SendError(ctx, owner.TelegramID, "Store creation failed"); sendErr != nil {
			srv.logger.Warn("failed to send store error to bot", "ownerTelegramID", owner.TelegramID, "error", sendErr)
		}

		return nil, errors.Wrap(err, "failed to create store")
	}

	// 6. Best-effort bot calls; the store is already committed.
	if err := srv.notifier.SendStoreCreated(ctx, store); err != nil {
		srv.logger.Warn("failed to send store creation to bot", "storeID", store.ID, "error", err)
	}
	review := &service.NewStoreReview{
		StoreID:         store.ID,
		Title:           store.Title,
		OwnerTelegramID: owner.TelegramID,
		OwnerName:       owner.DisplayName(),
		CategoryNames:   categoryNames,
	}
	if err := srv.notifier.NotifyAdminsNewStore(ctx, review); err != nil {
		srv.logger.Warn("failed to notify admins of new store", "storeID", store.ID, "error", err)
	}

	return store, nil
}

// ApproveStore moves a pending or rejected store to approved and persists
// the generated QR payload.
func (srv *storeService) ApproveStore(ctx context.Context, storeID, adminID uint) (*entity.Store, error) {
	srv.logger.Info("Approving store", "storeID", storeID, "adminID", adminID)

	var store *entity.Store

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		storeRepo := repoFactory.NewStoreRepository()

		found, err := storeRepo.FindByID(ctx, storeID)
		if err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return errors.Wrap(domainerrors.ErrStoreNotFound, "store not found")
			}

			return errors.Wrap(err, "failed to find store")
		}
		if found.IsApproved {
			return errors.Wrap(domainerrors.ErrStoreAlreadyApproved, "store is already approved")
		}

		qr, err := srv.qrService.GenerateStoreQR(found.ChannelIdentifier(), found.Slug)
		if err != nil {
			return errors.Wrap(err, "failed to generate store QR code")
		}

		approved, err := storeRepo.Approve(ctx, storeID, adminID, qr)
		if err != nil {
			return errors.Wrap(err, "failed to approve store")
		}

		action := &entity.StoreAction{
			StoreID:     storeID,
			AdminID:     &adminID,
			ActionType:  entity.StoreActionApproved,
			Description: "Store approved",
		}
		if err := repoFactory.NewStoreActionRepository().Append(ctx, action); err != nil {
			return errors.Wrap(err, "failed to record store action")
		}
		store = approved

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to approve store")
	}

	srv.notifyAsync(ctx, "store approval", func(ctx context.Context) error {
		return srv.notifier.NotifyStoreApproved(ctx, &service.StoreApproval{
			OwnerTelegramID: ownerTelegramID(store),
			Title:           store.Title,
			Slug:            store.Slug,
			QRCodeLink:      qrLink(store),
		})
	})

	return store, nil
}

// RejectStore records the rejection reason, clears any prior approval and
// notifies the owner.
func (srv *storeService) RejectStore(ctx context.Context, storeID, adminID uint, reason string) (*entity.Store, error) {
	srv.logger.Info("Rejecting store", "storeID", storeID, "adminID", adminID)

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, errors.Wrap(domainerrors.ErrRejectionReasonRequired, "rejection reason is required")
	}

	var store *entity.Store

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		rejected, err := repoFactory.NewStoreRepository().Reject(ctx, storeID, reason)
		if err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return errors.Wrap(domainerrors.ErrStoreNotFound, "store not found")
			}

			return errors.Wrap(err, "failed to reject store")
		}

		action := &entity.StoreAction{
			StoreID:     storeID,
			AdminID:     &adminID,
			ActionType:  entity.StoreActionRejected,
			Description: "Store rejected",
			Metadata:    map[string]any{"reason": reason},
		}
		if err := repoFactory.NewStoreActionRepository().Append(ctx, action); err != nil {
			return errors.Wrap(err, "failed to record store action")
		}
		store = rejected

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to reject store")
	}

	srv.notifyAsync(ctx, "store rejection", func(ctx context.Context) error {
		return srv.notifier.NotifyStoreRejected(ctx, &service.StoreRejection{
			OwnerTelegramID: ownerTelegramID(store),
			Title:           store.Title,
			Reason:          reason,
		})
	})

	return store, nil
}

// UpdateStore applies a partial update after the ownership check.
func (srv *storeService) UpdateStore(ctx context.Context, storeID, actingUserID uint, input *usecase.UpdateStoreInput, isAdmin bool) (*entity.Store, error) {
	srv.logger.Info("Updating store", "storeID", storeID, "userID", actingUserID, "isAdmin", isAdmin)

	update := &repository.StoreUpdate{
		Title:           input.Title,
		Description:     input.Description,
		LongDescription: input.LongDescription,
		Avatar:          input.Avatar,
		CoverImage:      input.CoverImage,
		Tags:            input.Tags,
	}
	if input.Socials != nil {
		socials := entity.StoreSocials{
			Telegram: entity.TelegramChannel{
				ID:       input.Socials.Telegram.ID,
				Username: input.Socials.Telegram.Username,
				Avatar:   input.Socials.Telegram.Avatar,
				Bio:      input.Socials.Telegram.Bio,
			},
			Instagram: input.Socials.Instagram,
			WhatsApp:  input.Socials.WhatsApp,
			Website:   input.Socials.Website,
		}
		update.Socials = &socials
	}
	if input.Identity != nil {
		identity := toStoreIdentity(input.Identity)
		update.Identity = &identity
	}
	changed := update.ChangedFields()

	var store *entity.Store

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		storeRepo := repoFactory.NewStoreRepository()

		found, err := storeRepo.FindByID(ctx, storeID)
		if err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return errors.Wrap(domainerrors.ErrStoreNotFound, "store not found")
			}

			return errors.Wrap(err, "failed to find store")
		}
		if !isAdmin && found.UserID != actingUserID {
			return errors.Wrap(domainerrors.ErrStoreNotOwned, "store belongs to another user")
		}

		updated, err := storeRepo.Update(ctx, storeID, update)
		if err != nil {
			return errors.Wrap(err, "failed to update store")
		}

		action := &entity.StoreAction{
			StoreID:     storeID,
			ActionType:  entity.StoreActionUpdated,
			Description: "Store updated",
			Metadata:    map[string]any{"fields": changed},
		}
		if isAdmin {
			action.AdminID = &actingUserID
		}
		if err := repoFactory.NewStoreActionRepository().Append(ctx, action); err != nil {
			return errors.Wrap(err, "failed to record store action")
		}
		store = updated

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update store")
	}

	// Owners see their own edits; only admin edits warrant a message.
	if isAdmin {
		srv.notifyAsync(ctx, "store update", func(ctx context.Context) error {
			return srv.notifier.NotifyStoreUpdated(ctx, &service.StoreUpdateNotice{
				OwnerTelegramID: ownerTelegramID(store),
				Title:           store.Title,
				UpdatedFields:   changed,
			})
		})
	}

	return store, nil
}

// DeleteStore soft-deletes after the ownership check. Products and category
// links stay in place.
func (srv *storeService) DeleteStore(ctx context.Context, storeID, actingUserID uint, isAdmin bool) (*entity.Store, error) {
	srv.logger.Info("Deleting store", "storeID", storeID, "userID", actingUserID, "isAdmin", isAdmin)

	var store *entity.Store

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		storeRepo := repoFactory.NewStoreRepository()

		found, err := storeRepo.FindByID(ctx, storeID)
		if err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return errors.Wrap(domainerrors.ErrStoreNotFound, "store not found")
			}

			return errors.Wrap(err, "failed to find store")
		}
		if !isAdmin && found.UserID != actingUserID {
			return errors.Wrap(domainerrors.ErrStoreNotOwned, "store belongs to another user")
		}

		if err := storeRepo.SetActive(ctx, storeID, false); err != nil {
			return errors.Wrap(err, "failed to deactivate store")
		}

		action := &entity.StoreAction{
			StoreID:     storeID,
			ActionType:  entity.StoreActionDeleted,
			Description: "Store deleted",
		}
		if isAdmin {
			action.AdminID = &actingUserID
		}
		if err := repoFactory.NewStoreActionRepository().Append(ctx, action); err != nil {
			return errors.Wrap(err, "failed to record store action")
		}
		found.IsActive = false
		store = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete store")
	}

	if isAdmin {
		srv.notifyAsync(ctx, "store deletion", func(ctx context.Context) error {
			return srv.notifier.NotifyStoreDeleted(ctx, &service.StoreDeletionNotice{
				OwnerTelegramID: ownerTelegramID(store),
				Title:           store.Title,
			})
		})
	}

	return store, nil
}

// GetStoreByID returns the store and bumps its view counter. The bump is
// best-effort; a lost increment never fails the read.
func (srv *storeService) GetStoreByID(ctx context.Context, storeID uint) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store not found")
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	store.Stats.Views++
	if err := srv.storeRepo.UpdateStats(ctx, storeID, store.Stats); err != nil {
		srv.logger.Debug("failed to bump store views", "storeID", storeID, "error", err)
	}

	return store, nil
}

// GetStoreBySlug returns the store without touching the view counter.
func (srv *storeService) GetStoreBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	store, err := srv.storeRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store not found")
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	return store, nil
}

// ListStores returns a page of active stores, newest first.
func (srv *storeService) ListStores(ctx context.Context, input *usecase.ListStoresInput) (*usecase.StorePage, error) {
	page := repository.NewPagination(input.Page, input.Limit)
	filter := repository.StoreFilter{
		CategoryID:      input.CategoryID,
		IsApproved:      input.IsApproved,
		Search:          input.Search,
		OwnerTelegramID: input.OwnerTelegramID,
	}

	stores, total, err := srv.storeRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return &usecase.StorePage{Stores: stores, Meta: repository.NewMeta(page, total)}, nil
}

// GetPendingStores lists stores awaiting review, rejected ones included
// since they can be re-reviewed.
func (srv *storeService) GetPendingStores(ctx context.Context, page, limit int) (*usecase.StorePage, error) {
	pending := false

	return srv.ListStores(ctx, &usecase.ListStoresInput{
		Page:       page,
		Limit:      limit,
		IsApproved: &pending,
	})
}

// notifyAsync dispatches a bot notification detached from the request
// lifetime so client disconnects cannot cancel it.
func (srv *storeService) notifyAsync(ctx context.Context, what string, fn func(ctx context.Context) error) {
	detached := context.WithoutCancel(ctx)
	go func() {
		if err := fn(detached); err != nil {
			srv.logger.Warn("failed to send bot notification", "notification", what, "error", err)
		}
	}()
}

func toStoreIdentity(input *usecase.StoreIdentityInput) entity.StoreIdentity {
	identity := entity.StoreIdentity{
		NationalCode: input.NationalCode,
		Location: entity.StoreLocation{
			City:    input.Location.City,
			Country: input.Location.Country,
		},
		Address: input.Address,
		Phones:  input.Phones,
	}
	if input.Location.Coordinates != nil {
		identity.Location.Coordinates = &entity.Coordinates{
			Lat: input.Location.Coordinates.Lat,
			Lng: input.Location.Coordinates.Lng,
		}
	}

	return identity
}

// ownerTelegramID digs the owner identity out of a loaded store; empty when
// the owner relation was not attached.
func ownerTelegramID(store *entity.Store) string {
	if store.Owner == nil {
		return ""
	}

	return store.Owner.TelegramID
}

func qrLink(store *entity.Store) string {
	if store.QRCode == nil {
		return ""
	}

	return store.QRCode.Link
}
