package entity

import "time"

// Availability enumerates product stock states.
type Availability string

const (
	AvailabilityAvailable  Availability = "available"
	AvailabilityOutOfStock Availability = "out_of_stock"
	AvailabilityPreOrder   Availability = "pre_order"
)

// ProductStats is a best-effort counter bag, same caveats as StoreStats.
type ProductStats struct {
	Views  int `json:"views"`
	Clicks int `json:"clicks"`
	Likes  int `json:"likes"`
	Shares int `json:"shares"`
}

// Product belongs to exactly one approved store and optionally to one
// category. Deletion is always soft; publish state is independent of it.
type Product struct {
	ID              uint
	StoreID         uint // Owning store, immutable.
	CategoryID      *uint
	Title           string
	Slug            string // Unique, generated from title plus a creation-time token.
	Description     string
	LongDescription string
	Properties      map[string]any // Opaque bag, stored verbatim.
	Pricing         map[string]any // Opaque bag, stored verbatim.
	Colors          []string
	ColorVariations []any
	Availability    Availability
	StockQuantity   int
	Brand           string
	Manufacturer    string
	Condition       string
	Tags            []string
	Images          []string // Ordered list of URLs.
	SourceMetadata  map[string]any
	SEOTitle        string
	SEODescription  string
	SEOKeywords     []string
	Stats           ProductStats
	IsPublished     bool
	PublishedAt     *time.Time
	IsFeatured      bool
	IsDeleted       bool // Soft delete; excluded from listings but still resolvable by id.
	DeletedAt       *time.Time
	Store           *Store
	Category        *Category
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
