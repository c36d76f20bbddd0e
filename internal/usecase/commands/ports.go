package commands

import (
	"context"
	"time"

	"tablestay/internal/domain/booking"

	"github.com/google/uuid"
)

// Write-side snapshots keep the command layer off the read-side query types.
type ListingSnapshot struct {
	ID                uuid.UUID
	HostID            uuid.UUID
	Title             string
	Location          string
	PrimaryImageURL   string
	NightlyPriceCents int64
	MaxGuests         int
}

type ListingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ListingSnapshot, error)
}

// AvailabilityReader feeds the validator with the live availability snapshot
// for a listing. BlockedDate rows are owned by host-side availability
// management and are read-only here.
type AvailabilityReader interface {
	ConfirmedRanges(ctx context.Context, listingID uuid.UUID) ([]booking.StayRange, error)
	BlockedDates(ctx context.Context, listingID uuid.UUID) ([]booking.Date, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	FindEntityByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, b *booking.Booking) error
}

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  uuid.UUID `json:"booking_id"`
	ListingID  uuid.UUID `json:"listing_id"`
	UserID     uuid.UUID `json:"user_id"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher broadcasts lifecycle events after commit. Publishing is
// best-effort: a broker outage must not fail a booking.
type EventPublisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}
