package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler holds dependencies for store lifecycle handlers.
type StoreHandler struct {
	uc     usecase.StoreUsecase
	logger *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateStore handles the store submission request. The store starts in the
// pending state and the bot collaborator is told about it.
func (h *StoreHandler) CreateStore(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var input *usecase.CreateStoreInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	store, err := h.uc.CreateStore(c.Request().Context(), user.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, store, "Store submitted for review")
}

// UpdateStore applies a partial update. Owners edit their own stores; admins
// edit any store and the owner is notified.
func (h *StoreHandler) UpdateStore(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.UpdateStoreInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	actingUserID, isAdmin := actingIdentity(c)
	store, err := h.uc.UpdateStore(c.Request().Context(), id, actingUserID, input, isAdmin)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store updated successfully")
}

// DeleteStore soft-deletes the store.
func (h *StoreHandler) DeleteStore(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	actingUserID, isAdmin := actingIdentity(c)
	store, err := h.uc.DeleteStore(c.Request().Context(), id, actingUserID, isAdmin)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store deleted successfully")
}

// ApproveStore moves a pending or rejected store to approved.
func (h *StoreHandler) ApproveStore(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	admin := middleware.CurrentAdmin(c)
	store, err := h.uc.ApproveStore(c.Request().Context(), id, admin.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store approved successfully")
}

type rejectStoreRequest struct {
	Reason string `json:"reason"`
}

// RejectStore records the rejection reason. The reason is mandatory.
func (h *StoreHandler) RejectStore(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req rejectStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}

	admin := middleware.CurrentAdmin(c)
	store, err := h.uc.RejectStore(c.Request().Context(), id, admin.ID, req.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store rejected")
}

// GetStoreByID returns the store and bumps its view counter.
func (h *StoreHandler) GetStoreByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	store, err := h.uc.GetStoreByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "")
}

// GetStoreBySlug returns the store addressed by slug.
func (h *StoreHandler) GetStoreBySlug(c echo.Context) error {
	store, err := h.uc.GetStoreBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "")
}

// ListStores returns a page of active stores. The public listing shows only
// approved stores unless the caller filters explicitly.
func (h *StoreHandler) ListStores(c echo.Context) error {
	page, limit := queryPage(c)
	input := &usecase.ListStoresInput{
		Page:            page,
		Limit:           limit,
		CategoryID:      queryUintPtr(c, "categoryId"),
		IsApproved:      queryBoolPtr(c, "isApproved"),
		Search:          c.QueryParam("search"),
		OwnerTelegramID: c.QueryParam("ownerTelegramId"),
	}
	if input.IsApproved == nil {
		approved := true
		input.IsApproved = &approved
	}

	result, err := h.uc.ListStores(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessPage(c, result.Stores, &result.Meta, "")
}

// GetPendingStores lists stores awaiting review.
func (h *StoreHandler) GetPendingStores(c echo.Context) error {
	page, limit := queryPage(c)

	result, err := h.uc.GetPendingStores(c.Request().Context(), page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessPage(c, result.Stores, &result.Meta, "")
}

// actingIdentity extracts the acting user id and admin flag placed on the
// context by the auth middleware.
func actingIdentity(c echo.Context) (actingUserID uint, isAdmin bool) {
	if user := middleware.CurrentUser(c); user != nil {
		actingUserID = user.ID
	}
	isAdmin = middleware.CurrentAdmin(c) != nil

	return actingUserID, isAdmin
}
