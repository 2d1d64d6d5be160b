package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateProduct adds a product to an approved store owned by the caller.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input *usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	actingUserID, isAdmin := actingIdentity(c)
	product, err := h.uc.CreateProduct(c.Request().Context(), actingUserID, input, isAdmin)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct applies a partial update after the ownership check.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	actingUserID, isAdmin := actingIdentity(c)
	product, err := h.uc.UpdateProduct(c.Request().Context(), id, actingUserID, input, isAdmin)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct soft-deletes the product and decrements the store counter.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	actingUserID, isAdmin := actingIdentity(c)
	if err := h.uc.DeleteProduct(c.Request().Context(), id, actingUserID, isAdmin); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// PublishProduct makes the product publicly visible.
func (h *ProductHandler) PublishProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	actingUserID, isAdmin := actingIdentity(c)
	product, err := h.uc.PublishProduct(c.Request().Context(), id, actingUserID, isAdmin)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product published")
}

// UnpublishProduct hides the product from public listings.
func (h *ProductHandler) UnpublishProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	actingUserID, isAdmin := actingIdentity(c)
	product, err := h.uc.UnpublishProduct(c.Request().Context(), id, actingUserID, isAdmin)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product unpublished")
}

// GetProductByID returns the product and bumps its view counter.
func (h *ProductHandler) GetProductByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.uc.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// GetProductBySlug returns the product addressed by slug.
func (h *ProductHandler) GetProductBySlug(c echo.Context) error {
	product, err := h.uc.GetProductBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// ListProducts returns a page of non-deleted products.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	page, limit := queryPage(c)
	input := &usecase.ListProductsInput{
		Page:        page,
		Limit:       limit,
		StoreID:     queryUintPtr(c, "storeId"),
		CategoryID:  queryUintPtr(c, "categoryId"),
		Search:      c.QueryParam("search"),
		IsPublished: queryBoolPtr(c, "isPublished"),
		IsFeatured:  queryBoolPtr(c, "isFeatured"),
	}

	result, err := h.uc.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessPage(c, result.Products, &result.Meta, "")
}

// GetProductsByStore lists a single store's products.
func (h *ProductHandler) GetProductsByStore(c echo.Context) error {
	storeID, err := pathID(c, "storeId")
	if err != nil {
		return err
	}

	page, limit := queryPage(c)
	result, err := h.uc.GetProductsByStore(c.Request().Context(), storeID, page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessPage(c, result.Products, &result.Meta, "")
}

// SearchProducts matches published products by title or description.
func (h *ProductHandler) SearchProducts(c echo.Context) error {
	page, limit := queryPage(c)

	result, err := h.uc.SearchProducts(c.Request().Context(), c.QueryParam("q"), page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessPage(c, result.Products, &result.Meta, "")
}
