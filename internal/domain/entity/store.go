package entity

import "time"

// TelegramChannel identifies the messaging channel a store sells through.
type TelegramChannel struct {
	ID       string `json:"id"`                 // Channel identifier, may be negative for channels.
	Username string `json:"username,omitempty"` // Public handle, preferred over ID for links.
	Avatar   string `json:"avatar,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

// StoreSocials groups the store's social presence. The Telegram channel is
// mandatory; the remaining handles are optional.
type StoreSocials struct {
	Telegram  TelegramChannel `json:"telegram"`
	Instagram string          `json:"instagram,omitempty"`
	WhatsApp  string          `json:"whatsapp,omitempty"`
	Website   string          `json:"website,omitempty"`
}

// Coordinates is an optional lat/lng pair inside a store location.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// StoreLocation describes where the store operates from.
type StoreLocation struct {
	City        string       `json:"city"`
	Country     string       `json:"country"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// StoreIdentity carries the legal identity of the store owner.
// NationalCode must be unique across all stores.
type StoreIdentity struct {
	NationalCode string        `json:"nationalCode"`
	Location     StoreLocation `json:"location"`
	Address      string        `json:"address,omitempty"`
	Phones       []string      `json:"phones,omitempty"`
}

// StoreStats is a best-effort counter bag. Increments are read-modify-write
// over an embedded JSON column and may lose concurrent updates.
type StoreStats struct {
	Views    int `json:"views"`
	Clicks   int `json:"clicks"`
	Products int `json:"products"`
	Orders   int `json:"orders"`
}

// StoreSettings holds per-store behavior toggles.
type StoreSettings struct {
	AutoPublish  bool     `json:"autoPublish"` // New products start published when true.
	AllowReviews bool     `json:"allowReviews"`
	ShowContact  bool     `json:"showContact"`
	Languages    []string `json:"languages"`
}

// DefaultStoreSettings returns the settings applied to newly created stores.
func DefaultStoreSettings() StoreSettings {
	return StoreSettings{
		AutoPublish:  false,
		AllowReviews: true,
		ShowContact:  true,
		Languages:    []string{"fa"},
	}
}

// StoreQRCode is the generated QR payload persisted on approval.
type StoreQRCode struct {
	Link string `json:"link"` // Canonical public link encoded in the image.
	Data string `json:"data"` // PNG image as a base64 data URL.
}

// Store is a storefront owned by exactly one user. Approval is a three-state
// workflow (pending, approved, rejected); IsActive is the orthogonal
// soft-delete flag and is never reversed by the core.
type Store struct {
	ID              uint
	UserID          uint // Owner, immutable after creation.
	Title           string
	Slug            string // Unique, generated from title plus a creation-time token.
	Description     string
	LongDescription string
	Socials         StoreSocials
	Identity        StoreIdentity
	Avatar          string
	CoverImage      string
	Tags            []string
	SEOTitle        string
	SEODescription  string
	SEOKeywords     []string
	Stats           StoreStats
	Settings        StoreSettings
	IsApproved      bool
	ApprovedAt      *time.Time
	ApprovedByID    *uint
	RejectionReason string // Set on rejection; a rejected store can be re-submitted and approved.
	IsActive        bool   // false means soft-deleted or owner banned.
	IsFeatured      bool
	QRCode          *StoreQRCode
	Owner           *User
	Categories      []*StoreCategory
	Products        []*Product
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ChannelIdentifier returns the public handle when present, otherwise the raw
// channel id. Used to build the canonical store link.
func (s *Store) ChannelIdentifier() string {
	if s.Socials.Telegram.Username != "" {
		return s.Socials.Telegram.Username
	}

	return s.Socials.Telegram.ID
}

// StoreCategory links a store to a category. The first category supplied at
// creation time is marked primary.
type StoreCategory struct {
	ID         uint
	StoreID    uint
	CategoryID uint
	IsPrimary  bool
	Category   *Category
	CreatedAt  time.Time
}

// StoreActionType enumerates audit-log action kinds.
type StoreActionType string

const (
	StoreActionCreated  StoreActionType = "CREATED"
	StoreActionApproved StoreActionType = "APPROVED"
	StoreActionRejected StoreActionType = "REJECTED"
	StoreActionUpdated  StoreActionType = "UPDATED"
	StoreActionDeleted  StoreActionType = "DELETED"
)

// StoreAction is an immutable audit record accompanying every store
// lifecycle transition. The core only ever appends to this log.
type StoreAction struct {
	ID          uint
	StoreID     uint
	AdminID     *uint // nil for owner-initiated actions.
	ActionType  StoreActionType
	Description string
	Metadata    map[string]any
	CreatedAt   time.Time
}
