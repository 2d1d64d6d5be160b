package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
)

// ErrCategoryNotFound is returned when no category matches the lookup.
var ErrCategoryNotFound = errors.New("category not found")

// ErrDuplicateSlug is returned when a unique slug constraint is violated.
var ErrDuplicateSlug = errors.New("slug already exists")

// CategoryUpdate lists the optional fields of a partial category update.
// Nil pointers leave the stored value untouched.
type CategoryUpdate struct {
	Title           *string
	Icon            *string
	Description     *string
	ParentID        *uint
	ClearParent     bool // Explicitly detach from the parent, making the node a root.
	MetaTitle       *string
	MetaDescription *string
	MetaKeywords    []string
	SortOrder       *int
	IsActive        *bool
}

// CategoryFilter narrows category listings. ParentID and RootsOnly are
// mutually exclusive; when neither is set no parent filter applies.
type CategoryFilter struct {
	ParentID  *uint
	RootsOnly bool
}

// CategoryUsage reports how many dependents block a category deletion.
type CategoryUsage struct {
	Children int64
	Stores   int64
	Products int64
}

// CategoryRepository persists the self-referencing category tree. All reads
// order by sortOrder ascending, then title ascending.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error

	// Update applies a partial update; ErrCategoryNotFound when id is absent.
	Update(ctx context.Context, id uint, update *CategoryUpdate) (*entity.Category, error)

	// Delete removes the row. Usage checks are the caller's responsibility and
	// must run immediately before this call.
	Delete(ctx context.Context, id uint) error

	// FindByID returns the category with its direct parent and children.
	FindByID(ctx context.Context, id uint) (*entity.Category, error)

	// FindBySlug returns the category with its direct parent and children.
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// List returns a page of active categories with parent and children
	// attached, plus the total matching count.
	List(ctx context.Context, filter CategoryFilter, page Pagination) ([]*entity.Category, int64, error)

	// ListAll returns every active category matching the filter, unpaginated,
	// with parent and children attached.
	ListAll(ctx context.Context, filter CategoryFilter) ([]*entity.Category, error)

	// ListActive returns all active categories as a flat arena without
	// relations; used for in-memory tree walks.
	ListActive(ctx context.Context) ([]*entity.Category, error)

	// CountUsage reports child, store-link and product references for id,
	// checked immediately before deletion.
	CountUsage(ctx context.Context, id uint) (*CategoryUsage, error)

	// ExistsBySlug reports whether any category holds the slug.
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
