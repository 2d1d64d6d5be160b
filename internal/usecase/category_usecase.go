package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
)

// CreateCategoryInput is the payload for creating a tree node. The slug is
// caller-supplied and must be unique and path-safe.
type CreateCategoryInput struct {
	Title           string   `json:"title" validate:"required,min=2,max=255"`
	Slug            string   `json:"slug" validate:"required,slugtoken"`
	Icon            string   `json:"icon"`
	Description     string   `json:"description"`
	ParentID        *uint    `json:"parentId"`
	MetaTitle       string   `json:"metaTitle" validate:"max=255"`
	MetaDescription string   `json:"metaDescription" validate:"max=500"`
	MetaKeywords    []string `json:"metaKeywords"`
	SortOrder       int      `json:"sortOrder"`
}

// UpdateCategoryInput is the partial-update payload; nil fields are left
// untouched. ClearParent detaches the node and makes it a root.
type UpdateCategoryInput struct {
	Title           *string  `json:"title" validate:"omitempty,min=2,max=255"`
	Icon            *string  `json:"icon"`
	Description     *string  `json:"description"`
	ParentID        *uint    `json:"parentId"`
	ClearParent     bool     `json:"clearParent"`
	MetaTitle       *string  `json:"metaTitle" validate:"omitempty,max=255"`
	MetaDescription *string  `json:"metaDescription" validate:"omitempty,max=500"`
	MetaKeywords    []string `json:"metaKeywords"`
	SortOrder       *int     `json:"sortOrder"`
	IsActive        *bool    `json:"isActive"`
}

// ListCategoriesInput selects between the unpaginated full listing (both
// Page and Limit zero) and a paginated page.
type ListCategoriesInput struct {
	Page     int
	Limit    int
	ParentID *uint
	// RootsOnly selects categories with a null parent; set when the caller
	// passes an explicit null parentId filter.
	RootsOnly bool
}

// CategoryPage is one page of categories plus pagination metadata. Meta is
// nil for the unpaginated full listing.
type CategoryPage struct {
	Categories []*entity.Category
	Meta       *repository.Meta
}

// CategoryUsecase manages the category tree.
type CategoryUsecase interface {
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)

	UpdateCategory(ctx context.Context, id uint, input *UpdateCategoryInput) (*entity.Category, error)

	// DeleteCategory removes a leaf category that is not referenced by any
	// store or product. Usage is re-checked immediately before the delete.
	DeleteCategory(ctx context.Context, id uint) (*entity.Category, error)

	// GetCategoryByID returns the category with direct parent and children.
	// Inactive categories still resolve; active filtering is a listing concern.
	GetCategoryByID(ctx context.Context, id uint) (*entity.Category, error)

	GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error)

	ListCategories(ctx context.Context, input *ListCategoriesInput) (*CategoryPage, error)

	// GetRootCategories returns active roots with direct children attached.
	GetRootCategories(ctx context.Context) ([]*entity.Category, error)

	// GetCategoryTree returns active roots with two levels of children
	// eagerly attached. Depth below three is not materialized.
	GetCategoryTree(ctx context.Context) ([]*entity.Category, error)
}
