package repository

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
)

// ErrProductNotFound is returned when no product matches the lookup.
var ErrProductNotFound = errors.New("product not found")

// ProductUpdate lists the optional fields of a partial product update.
// Nil pointers leave the stored value untouched.
type ProductUpdate struct {
	Title           *string
	Description     *string
	LongDescription *string
	Properties      map[string]any
	Pricing         map[string]any
	Colors          []string
	ColorVariations []any
	Availability    *entity.Availability
	StockQuantity   *int
	Brand           *string
	Manufacturer    *string
	Condition       *string
	Tags            []string
	Images          []string
	SourceMetadata  map[string]any
	CategoryID      *uint
}

// ProductFilter narrows product listings. Soft-deleted rows are always
// excluded from listings.
type ProductFilter struct {
	StoreID     *uint
	CategoryID  *uint
	Search      string // Case-insensitive title/description match or exact tag match.
	IsPublished *bool
	IsFeatured  *bool
}

// ProductRepository persists products.
type ProductRepository interface {
	// Create persists the product; the created record is written back with
	// store and category attached.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID returns the product with its store (including the owner's
	// minimal identity) and category. Soft-deleted products still resolve.
	FindByID(ctx context.Context, id uint) (*entity.Product, error)

	// FindBySlug is FindByID keyed on the unique slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// List returns a page of non-deleted products matching the filter, newest
	// first, with store summary and category attached, plus the total count.
	List(ctx context.Context, filter ProductFilter, page Pagination) ([]*entity.Product, int64, error)

	// Update applies a partial update; ErrProductNotFound when id is absent.
	Update(ctx context.Context, id uint, update *ProductUpdate) (*entity.Product, error)

	// SetPublished toggles the publish flag; publishedAt is recorded only on publish.
	SetPublished(ctx context.Context, id uint, published bool, publishedAt *time.Time) (*entity.Product, error)

	// SoftDelete marks the product deleted without removing the row.
	SoftDelete(ctx context.Context, id uint, deletedAt time.Time) (*entity.Product, error)

	// UpdateStats overwrites the best-effort counter bag.
	UpdateStats(ctx context.Context, id uint, stats entity.ProductStats) error
}
