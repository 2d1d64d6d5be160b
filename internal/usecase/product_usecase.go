package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
)

// CreateProductInput is the payload for adding a product to a store.
type CreateProductInput struct {
	StoreID         uint                `json:"storeId" validate:"required"`
	CategoryID      *uint               `json:"categoryId"`
	Title           string              `json:"title" validate:"required,min=3,max=255"`
	Description     string              `json:"description" validate:"max=2000"`
	LongDescription string              `json:"longDescription" validate:"max=10000"`
	Properties      map[string]any      `json:"properties"`
	Pricing         map[string]any      `json:"pricing"`
	Colors          []string            `json:"colors"`
	ColorVariations []any               `json:"colorVariations"`
	Availability    entity.Availability `json:"availability" validate:"omitempty,oneof=available out_of_stock pre_order"`
	StockQuantity   *int                `json:"stockQuantity" validate:"omitempty,min=0"`
	Brand           string              `json:"brand" validate:"max=100"`
	Manufacturer    string              `json:"manufacturer" validate:"max=100"`
	Condition       string              `json:"condition" validate:"omitempty,oneof=new used refurbished"`
	Tags            []string            `json:"tags"`
	Images          []string            `json:"images" validate:"dive,url"`
	MetaTitle       string              `json:"metaTitle" validate:"max=255"`
	MetaDescription string              `json:"metaDescription" validate:"max=500"`
	MetaKeywords    []string            `json:"metaKeywords"`
}

// UpdateProductInput is the partial-update payload; nil fields are left untouched.
type UpdateProductInput struct {
	CategoryID      *uint                `json:"categoryId"`
	Title           *string              `json:"title" validate:"omitempty,min=3,max=255"`
	Description     *string              `json:"description" validate:"omitempty,max=2000"`
	LongDescription *string              `json:"longDescription" validate:"omitempty,max=10000"`
	Properties      map[string]any       `json:"properties"`
	Pricing         map[string]any       `json:"pricing"`
	Colors          []string             `json:"colors"`
	ColorVariations []any                `json:"colorVariations"`
	Availability    *entity.Availability `json:"availability" validate:"omitempty,oneof=available out_of_stock pre_order"`
	StockQuantity   *int                 `json:"stockQuantity" validate:"omitempty,min=0"`
	Brand           *string              `json:"brand" validate:"omitempty,max=100"`
	Manufacturer    *string              `json:"manufacturer" validate:"omitempty,max=100"`
	Condition       *string              `json:"condition" validate:"omitempty,oneof=new used refurbished"`
	Tags            []string             `json:"tags"`
	Images          []string             `json:"images" validate:"omitempty,dive,url"`
	MetaTitle       *string              `json:"metaTitle" validate:"omitempty,max=255"`
	MetaDescription *string              `json:"metaDescription" validate:"omitempty,max=500"`
	MetaKeywords    []string             `json:"metaKeywords"`
}

// ListProductsInput narrows and paginates a product listing.
type ListProductsInput struct {
	Page        int
	Limit       int
	StoreID     *uint
	CategoryID  *uint
	Search      string
	IsPublished *bool
	IsFeatured  *bool
}

// ProductPage is one page of products plus pagination metadata.
type ProductPage struct {
	Products []*entity.Product
	Meta     repository.Meta
}

// ProductUsecase manages products inside approved stores.
type ProductUsecase interface {
	// CreateProduct adds a product to an approved store owned by the acting
	// user. The initial published state follows the store's autoPublish
	// setting, and the store product counter is incremented.
	CreateProduct(ctx context.Context, actingUserID uint, input *CreateProductInput, isAdmin bool) (*entity.Product, error)

	// UpdateProduct applies a partial update after the ownership check.
	UpdateProduct(ctx context.Context, productID, actingUserID uint, input *UpdateProductInput, isAdmin bool) (*entity.Product, error)

	// DeleteProduct soft-deletes after the ownership check and decrements
	// the store product counter, never below zero.
	DeleteProduct(ctx context.Context, productID, actingUserID uint, isAdmin bool) error

	// PublishProduct marks the product published and stamps publishedAt.
	PublishProduct(ctx context.Context, productID, actingUserID uint, isAdmin bool) (*entity.Product, error)

	// UnpublishProduct hides the product from public listings.
	UnpublishProduct(ctx context.Context, productID, actingUserID uint, isAdmin bool) (*entity.Product, error)

	// GetProductByID returns the product with its store and category,
	// incrementing the view counter as a side effect. Soft-deleted products
	// still resolve here.
	GetProductByID(ctx context.Context, productID uint) (*entity.Product, error)

	// GetProductBySlug is GetProductByID keyed on the slug, without the view
	// counter side effect.
	GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// ListProducts returns a page of non-deleted products, newest first.
	ListProducts(ctx context.Context, input *ListProductsInput) (*ProductPage, error)

	// GetProductsByStore lists a single store's products.
	GetProductsByStore(ctx context.Context, storeID uint, page, limit int) (*ProductPage, error)

	// SearchProducts matches published products by title or description.
	SearchProducts(ctx context.Context, query string, page, limit int) (*ProductPage, error)
}
