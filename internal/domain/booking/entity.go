package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a confirmed (or later cancelled) reservation of a listing for a
// stay range. totalPrice is fixed at creation and never recomputed, so later
// listing price edits do not rewrite history.
type Booking struct {
	id         uuid.UUID
	listingID  uuid.UUID
	userID     uuid.UUID
	stay       StayRange
	guestCount int
	status     Status
	totalPrice Money
	createdAt  time.Time
	updatedAt  time.Time
}

func NewBooking(listingID, userID uuid.UUID, stay StayRange, guestCount int, totalPrice Money, now time.Time) *Booking {
	return &Booking{
		id:         uuid.New(),
		listingID:  listingID,
		userID:     userID,
		stay:       stay,
		guestCount: guestCount,
		status:     StatusConfirmed,
		totalPrice: totalPrice,
		createdAt:  now,
		updatedAt:  now,
	}
}

func ReconstructBooking(
	id, listingID, userID uuid.UUID,
	stay StayRange,
	guestCount int,
	status Status,
	totalPrice Money,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		listingID:  listingID,
		userID:     userID,
		stay:       stay,
		guestCount: guestCount,
		status:     status,
		totalPrice: totalPrice,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Cancel flips a confirmed booking to cancelled. Cancellation is terminal:
// a cancelled booking cannot be cancelled again or re-confirmed.
func (b *Booking) Cancel(now time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ListingID() uuid.UUID { return b.listingID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) Stay() StayRange      { return b.stay }
func (b *Booking) GuestCount() int      { return b.guestCount }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) TotalPrice() Money    { return b.totalPrice }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
