// Package repository declares the persistence-layer interfaces consumed by
// the use case layer, keeping it independent of any specific DB driver.
package repository

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
	minLimit     = 1
)

// Pagination carries normalized 1-indexed paging parameters.
type Pagination struct {
	Page  int
	Limit int
}

// NewPagination clamps the raw query parameters into a valid page/limit pair.
// Zero or negative inputs fall back to page 1, limit 10; limit is clamped to
// [1,100].
func NewPagination(page, limit int) Pagination {
	if page < 1 {
		page = defaultPage
	}
	if limit < minLimit {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return Pagination{Page: page, Limit: limit}
}

// Offset returns the number of rows to skip for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination metadata attached to every paginated response.
type Meta struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewMeta computes pagination metadata for a total row count.
func NewMeta(p Pagination, total int64) Meta {
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))

	return Meta{
		Page:        p.Page,
		Limit:       p.Limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: p.Page < totalPages,
		HasPrevPage: p.Page > 1,
	}
}
