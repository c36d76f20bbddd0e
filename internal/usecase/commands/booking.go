package commands

import (
	"context"
	"errors"
	"log/slog"

	"tablestay/internal/domain/booking"
	"tablestay/internal/domain/listing"
	"tablestay/internal/infra"
	"tablestay/internal/infra/metrics"
	"tablestay/internal/pkg/clock"
	"tablestay/internal/pkg/errs"
	"tablestay/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingParams struct {
	ListingID  uuid.UUID
	CheckIn    booking.Date
	CheckOut   booking.Date
	GuestCount int
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, params CreateBookingParams) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, callerID uuid.UUID, bookingID uuid.UUID) error
}

type bookingCommands struct {
	listings     ListingRepository
	availability AvailabilityReader
	bookings     BookingRepository
	factory      *booking.Factory
	queries      queries.BookingQueries
	cache        queries.AvailabilityCache
	publisher    EventPublisher
	clk          clock.Clock
}

func NewBookingCommands(
	listings ListingRepository,
	availability AvailabilityReader,
	bookings BookingRepository,
	factory *booking.Factory,
	bookingQueries queries.BookingQueries,
	cache queries.AvailabilityCache,
	publisher EventPublisher,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommands{
		listings:     listings,
		availability: availability,
		bookings:     bookings,
		factory:      factory,
		queries:      bookingQueries,
		cache:        cache,
		publisher:    publisher,
		clk:          clk,
	}
}

func (c *bookingCommands) CreateBooking(ctx context.Context, userID uuid.UUID, params CreateBookingParams) (*queries.BookingView, error) {
	// Reject malformed ranges up front so an obviously bad request never
	// touches the stores.
	if _, err := booking.NewStayRange(params.CheckIn, params.CheckOut); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}

	snap, err := c.listings.FindByID(ctx, params.ListingID)
	if err != nil {
		return nil, mapWriteErr(err, errs.ErrListingNotFound)
	}
	lst, err := listing.NewListing(snap.ID, snap.HostID, snap.Title, snap.Location, snap.PrimaryImageURL, snap.NightlyPriceCents, snap.MaxGuests)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid listing row"), errs.ErrDatabaseOperationFailed)
	}

	reserved, err := c.availability.ConfirmedRanges(ctx, params.ListingID)
	if err != nil {
		return nil, mapWriteErr(err, errs.ErrListingNotFound)
	}
	blocked, err := c.availability.BlockedDates(ctx, params.ListingID)
	if err != nil {
		return nil, mapWriteErr(err, errs.ErrListingNotFound)
	}

	b, err := c.factory.CreateBooking(lst, userID, params.CheckIn, params.CheckOut, params.GuestCount, reserved, blocked)
	if err != nil {
		return nil, mapDomainErr(err)
	}

	id, err := c.bookings.Create(ctx, b)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// The exclusion constraint caught a concurrent confirmed
			// booking that was not visible at validation time.
			slog.InfoContext(ctx, "booking admission lost to concurrent write",
				"listing_id", params.ListingID, "source", "write_conflict")
			metrics.BookingConflicts.Inc()
			return nil, errs.Mark(err, errs.ErrDatesUnavailable)
		}
		return nil, mapWriteErr(err, errs.ErrDatabaseOperationFailed)
	}
	metrics.BookingsCreated.Inc()

	if err := c.cache.Invalidate(ctx, params.ListingID); err != nil {
		slog.WarnContext(ctx, "failed to invalidate availability cache", "listing_id", params.ListingID, "error", err)
	}
	c.publish(ctx, EventBookingCreated, b)

	return c.queries.GetByIDSystem(ctx, id)
}

func (c *bookingCommands) CancelBooking(ctx context.Context, callerID uuid.UUID, bookingID uuid.UUID) error {
	b, err := c.bookings.FindEntityByID(ctx, bookingID)
	if err != nil {
		return mapWriteErr(err, errs.ErrBookingNotFound)
	}
	if !b.IsOwnedBy(callerID) {
		return errs.Mark(errs.New("booking belongs to another guest"), errs.ErrForbidden)
	}

	if err := b.Cancel(c.clk.Now()); err != nil {
		return mapDomainErr(err)
	}

	if err := c.bookings.UpdateStatus(ctx, b); err != nil {
		return mapWriteErr(err, errs.ErrBookingNotFound)
	}
	metrics.BookingsCancelled.Inc()

	if err := c.cache.Invalidate(ctx, b.ListingID()); err != nil {
		slog.WarnContext(ctx, "failed to invalidate availability cache", "listing_id", b.ListingID(), "error", err)
	}
	c.publish(ctx, EventBookingCancelled, b)

	return nil
}

func (c *bookingCommands) publish(ctx context.Context, eventType string, b *booking.Booking) {
	event := BookingEvent{
		Type:       eventType,
		BookingID:  b.ID(),
		ListingID:  b.ListingID(),
		UserID:     b.UserID(),
		CheckIn:    b.Stay().CheckIn().String(),
		CheckOut:   b.Stay().CheckOut().String(),
		OccurredAt: c.clk.Now(),
	}
	if err := c.publisher.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish booking event", "type", eventType, "booking_id", b.ID(), "error", err)
	}
}

// mapDomainErr lifts booking domain sentinels into the usecase error set the
// handler layer switches on.
func mapDomainErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrInvalidDateRange):
		return errs.Mark(err, errs.ErrInvalidDateRange)
	case errors.Is(err, booking.ErrGuestCountExceeded):
		return errs.Mark(err, errs.ErrGuestCountExceeded)
	case errors.Is(err, booking.ErrDatesUnavailable):
		return errs.Mark(err, errs.ErrDatesUnavailable)
	case errors.Is(err, booking.ErrAlreadyCancelled):
		return errs.Mark(err, errs.ErrAlreadyCancelled)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}

func mapWriteErr(err error, notFound error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindUnavailable):
		return errs.Mark(err, errs.ErrStoreUnavailable)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
