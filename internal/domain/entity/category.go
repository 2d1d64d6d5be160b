package entity

import "time"

// Category is a node in the self-referencing category tree. A nil ParentID
// marks a root. Tree reads materialize at most two levels of children.
type Category struct {
	ID              uint
	Title           string
	Slug            string // Unique, caller-supplied, path-safe token.
	Icon            string
	Description     string
	ParentID        *uint // nil for root categories.
	MetaTitle       string
	MetaDescription string
	MetaKeywords    []string
	SortOrder       int // Listing order, ties broken by title ascending.
	IsActive        bool
	Parent          *Category
	Children        []*Category
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsRoot reports whether the category has no parent.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}
