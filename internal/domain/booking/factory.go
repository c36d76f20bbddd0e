package booking

import (
	"tablestay/internal/domain/listing"
	"tablestay/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateBooking runs admission and pricing for a requested stay and returns a
// confirmed booking entity ready to persist. reserved and blocked are the
// listing's current availability snapshot; the store's exclusion constraint
// re-checks overlap at write time, so a stale snapshot can only fail closed.
func (f *Factory) CreateBooking(
	l *listing.Listing,
	userID uuid.UUID,
	checkIn, checkOut Date,
	guestCount int,
	reserved []StayRange,
	blocked []Date,
) (*Booking, error) {
	stay, err := Validate(checkIn, checkOut, guestCount, l.MaxGuests(), reserved, blocked)
	if err != nil {
		return nil, err
	}

	total, err := f.PriceCalculator.Quote(NewMoney(l.NightlyPriceCents()), stay)
	if err != nil {
		return nil, err
	}
	if total.Cents() < 0 {
		return nil, ErrNegativePrice
	}

	return NewBooking(l.ID(), userID, stay, guestCount, total, f.Clock.Now()), nil
}
