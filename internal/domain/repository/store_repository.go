package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
)

// ErrStoreNotFound is returned when no store matches the lookup.
var ErrStoreNotFound = errors.New("store not found")

// StoreUpdate lists the optional fields of a partial store update.
// Nil pointers leave the stored value untouched.
type StoreUpdate struct {
	Title           *string
	Description     *string
	LongDescription *string
	Socials         *entity.StoreSocials
	Identity        *entity.StoreIdentity
	Avatar          *string
	CoverImage      *string
	Tags            []string
}

// ChangedFields returns the names of the fields carried by the update, for
// the audit trail.
func (u *StoreUpdate) ChangedFields() []string {
	var fields []string
	if u.Title != nil {
		fields = append(fields, "title")
	}
	if u.Description != nil {
		fields = append(fields, "description")
	}
	if u.LongDescription != nil {
		fields = append(fields, "longDescription")
	}
	if u.Socials != nil {
		fields = append(fields, "socials")
	}
	if u.Identity != nil {
		fields = append(fields, "identity")
	}
	if u.Avatar != nil {
		fields = append(fields, "avatar")
	}
	if u.CoverImage != nil {
		fields = append(fields, "coverImage")
	}
	if u.Tags != nil {
		fields = append(fields, "tags")
	}

	return fields
}

// StoreFilter narrows store listings. IsActive=true is always implied.
type StoreFilter struct {
	CategoryID      *uint
	IsApproved      *bool
	Search          string // Case-insensitive title/description match or exact tag match.
	OwnerTelegramID string
}

// StoreRepository persists storefronts and their category links.
type StoreRepository interface {
	// Create persists the store together with its category links; the first
	// category id is marked primary. The created record is written back with
	// owner and category links attached.
	Create(ctx context.Context, store *entity.Store, categoryIDs []uint) error

	// FindByID returns the store with owner summary, category links with
	// categories, and up to ten most-recent published products.
	FindByID(ctx context.Context, id uint) (*entity.Store, error)

	// FindBySlug is FindByID keyed on the unique slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Store, error)

	// List returns a page of active stores matching the filter, newest first,
	// with owner summary and category links attached, plus the total count.
	List(ctx context.Context, filter StoreFilter, page Pagination) ([]*entity.Store, int64, error)

	// FindAll returns every store row without relations. Used for the
	// channel-identity uniqueness scan; acceptable only at small store counts.
	FindAll(ctx context.Context) ([]*entity.Store, error)

	// ExistsByNationalCode reports whether any store's serialized identity
	// contains the code as a substring.
	ExistsByNationalCode(ctx context.Context, nationalCode string) (bool, error)

	// Update applies a partial update; ErrStoreNotFound when id is absent.
	Update(ctx context.Context, id uint, update *StoreUpdate) (*entity.Store, error)

	// Approve marks the store approved, records the approving admin and
	// persists the generated QR payload.
	Approve(ctx context.Context, id uint, adminID uint, qr *entity.StoreQRCode) (*entity.Store, error)

	// Reject clears the approval flag and records the rejection reason.
	Reject(ctx context.Context, id uint, reason string) (*entity.Store, error)

	// SetActive flips the soft-delete flag.
	SetActive(ctx context.Context, id uint, active bool) error

	// DeactivateByOwner soft-deletes every store owned by the user.
	DeactivateByOwner(ctx context.Context, userID uint) error

	// UpdateStats overwrites the best-effort counter bag.
	UpdateStats(ctx context.Context, id uint, stats entity.StoreStats) error
}

// StoreActionRepository appends to the immutable store audit log.
type StoreActionRepository interface {
	Append(ctx context.Context, action *entity.StoreAction) error
}
