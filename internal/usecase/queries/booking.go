package queries

import (
	"context"
	"log/slog"
	"time"

	"tablestay/internal/infra"
	"tablestay/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side). Listing display fields are joined live at
// read time: editing a listing retroactively changes how past bookings render,
// an accepted trade-off. The stored total price is never recomputed.
type BookingView struct {
	ID              uuid.UUID `json:"id"`
	ListingID       uuid.UUID `json:"listing_id"`
	ListingTitle    string    `json:"listing_title"`
	ListingLocation string    `json:"listing_location"`
	ListingImageURL string    `json:"listing_image_url"`
	UserID          uuid.UUID `json:"user_id"`
	CheckIn         string    `json:"check_in"`
	CheckOut        string    `json:"check_out"`
	GuestCount      int       `json:"guest_count"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"total_price_cents"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID              uuid.UUID `json:"id"`
	ListingID       uuid.UUID `json:"listing_id"`
	ListingTitle    string    `json:"listing_title"`
	ListingLocation string    `json:"listing_location"`
	ListingImageURL string    `json:"listing_image_url"`
	CheckIn         string    `json:"check_in"`
	CheckOut        string    `json:"check_out"`
	GuestCount      int       `json:"guest_count"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"total_price_cents"`
	CreatedAt       time.Time `json:"created_at"`
}

type ReservedRange struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

// AvailabilitySnapshot is the client-facing blocked-dates payload: confirmed
// stay ranges merged with host-declared blocked days. Advisory only; the
// server re-validates against live data on create.
type AvailabilitySnapshot struct {
	ListingID      uuid.UUID       `json:"listing_id"`
	ReservedRanges []ReservedRange `json:"reserved_ranges"`
	BlockedDates   []string        `json:"blocked_dates"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	FindByHostID(ctx context.Context, hostID uuid.UUID) ([]*BookingListItem, error)
	FindConfirmedRanges(ctx context.Context, listingID uuid.UUID) ([]ReservedRange, error)
}

type BlockedDateReadStore interface {
	FindByListingID(ctx context.Context, listingID uuid.UUID) ([]string, error)
}

type ListingExistenceStore interface {
	Exists(ctx context.Context, listingID uuid.UUID) (bool, error)
}

// AvailabilityCache holds blocked-dates snapshots for the widget's read path.
// Get returns (nil, nil) on a miss; cache failures degrade to the store.
type AvailabilityCache interface {
	Get(ctx context.Context, listingID uuid.UUID) (*AvailabilitySnapshot, error)
	Set(ctx context.Context, snapshot *AvailabilitySnapshot) error
	Invalidate(ctx context.Context, listingID uuid.UUID) error
}

type BookingQueries interface {
	GetByID(ctx context.Context, callerID, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	ListByHost(ctx context.Context, hostID uuid.UUID) ([]*BookingListItem, error)
	BlockedDates(ctx context.Context, listingID uuid.UUID) (*AvailabilitySnapshot, error)

	// GetByIDSystem bypasses the ownership check for internal read-after-write.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	blocked  BlockedDateReadStore
	listings ListingExistenceStore
	cache    AvailabilityCache
}

func NewBookingQueries(
	bookings BookingReadStore,
	blocked BlockedDateReadStore,
	listings ListingExistenceStore,
	cache AvailabilityCache,
) BookingQueries {
	return &bookingQueriesImpl{
		bookings: bookings,
		blocked:  blocked,
		listings: listings,
		cache:    cache,
	}
}

// GetByID checks existence before ownership: a non-owner probing a real ID
// gets Forbidden, not NotFound. Documented trade-off, not a leak to hide.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, callerID, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, mapReadErr(err, errs.ErrBookingNotFound)
	}
	if view.UserID != callerID {
		return nil, errs.ErrForbidden
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, mapReadErr(err, errs.ErrBookingNotFound)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error) {
	items, err := q.bookings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, mapReadErr(err, nil)
	}
	return items, nil
}

func (q *bookingQueriesImpl) ListByHost(ctx context.Context, hostID uuid.UUID) ([]*BookingListItem, error) {
	items, err := q.bookings.FindByHostID(ctx, hostID)
	if err != nil {
		return nil, mapReadErr(err, nil)
	}
	return items, nil
}

func (q *bookingQueriesImpl) BlockedDates(ctx context.Context, listingID uuid.UUID) (*AvailabilitySnapshot, error) {
	exists, err := q.listings.Exists(ctx, listingID)
	if err != nil {
		return nil, mapReadErr(err, nil)
	}
	if !exists {
		return nil, errs.ErrListingNotFound
	}

	if cached, cacheErr := q.cache.Get(ctx, listingID); cacheErr != nil {
		slog.Warn("availability cache read failed, falling back to store",
			"listing_id", listingID, "error", cacheErr.Error())
	} else if cached != nil {
		return cached, nil
	}

	reserved, err := q.bookings.FindConfirmedRanges(ctx, listingID)
	if err != nil {
		return nil, mapReadErr(err, nil)
	}

	blockedDays, err := q.blocked.FindByListingID(ctx, listingID)
	if err != nil {
		return nil, mapReadErr(err, nil)
	}

	snapshot := &AvailabilitySnapshot{
		ListingID:      listingID,
		ReservedRanges: reserved,
		BlockedDates:   blockedDays,
	}

	if cacheErr := q.cache.Set(ctx, snapshot); cacheErr != nil {
		slog.Warn("availability cache write failed",
			"listing_id", listingID, "error", cacheErr.Error())
	}

	return snapshot, nil
}

// mapReadErr translates repository kinds into usecase sentinels. notFound may
// be nil when the query has no per-row NotFound semantics.
func mapReadErr(err error, notFound error) error {
	switch {
	case notFound != nil && infra.IsKind(err, infra.KindNotFound):
		return notFound
	case infra.IsKind(err, infra.KindUnavailable):
		return errs.Mark(err, errs.ErrStoreUnavailable)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
