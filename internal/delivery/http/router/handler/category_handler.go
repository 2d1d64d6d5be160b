package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CategoryHandler holds dependencies for category-tree handlers.
type CategoryHandler struct {
	uc     usecase.CategoryUsecase
	logger *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateCategory handles the admin create request.
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var input *usecase.CreateCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created successfully")
}

// UpdateCategory handles the admin partial-update request.
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.UpdateCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	category, err := h.uc.UpdateCategory(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Category updated successfully")
}

// DeleteCategory handles the admin delete request. Categories with children
// or references are rejected with Conflict.
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.uc.DeleteCategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Category deleted successfully")
}

// GetCategoryByID returns the category with its parent and children.
func (h *CategoryHandler) GetCategoryByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.uc.GetCategoryByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "")
}

// GetCategoryBySlug returns the category addressed by slug.
func (h *CategoryHandler) GetCategoryBySlug(c echo.Context) error {
	category, err := h.uc.GetCategoryBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "")
}

// ListCategories returns either the full unpaginated listing (no page or
// limit supplied) or one page. An explicit `parentId=null` selects roots.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	page, limit := queryPage(c)
	input := &usecase.ListCategoriesInput{
		Page:  page,
		Limit: limit,
	}
	if c.QueryParam("parentId") == "null" {
		input.RootsOnly = true
	} else {
		input.ParentID = queryUintPtr(c, "parentId")
	}

	result, err := h.uc.ListCategories(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessPage(c, result.Categories, result.Meta, "")
}

// GetRootCategories returns the active top-level categories.
func (h *CategoryHandler) GetRootCategories(c echo.Context) error {
	categories, err := h.uc.GetRootCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// GetCategoryTree returns active roots with two levels of children attached.
func (h *CategoryHandler) GetCategoryTree(c echo.Context) error {
	tree, err := h.uc.GetCategoryTree(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tree, "")
}
