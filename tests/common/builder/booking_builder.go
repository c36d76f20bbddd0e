//go:build unit || e2e

package builder

import (
	"time"

	"tablestay/internal/domain/booking"
	"tablestay/internal/domain/listing"
	"tablestay/internal/pkg/clock"
	"tablestay/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingBuilder assembles bookings for tests. Defaults are a valid 3-night
// stay on a 4-guest listing priced at $100.00 a night.
type BookingBuilder struct {
	listingID         uuid.UUID
	hostID            uuid.UUID
	userID            uuid.UUID
	title             string
	location          string
	imageURL          string
	nightlyPriceCents int64
	maxGuests         int
	checkIn           string
	checkOut          string
	guestCount        int
	reserved          []booking.StayRange
	blocked           []booking.Date
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		listingID:         uuid.New(),
		hostID:            uuid.New(),
		userID:            uuid.New(),
		title:             "Seaside Cottage",
		location:          "Lisbon, Portugal",
		imageURL:          "https://img.example.com/cottage.jpg",
		nightlyPriceCents: 100_00,
		maxGuests:         4,
		checkIn:           "2026-06-01",
		checkOut:          "2026-06-04",
		guestCount:        2,
	}
}

func (b *BookingBuilder) WithDates(checkIn, checkOut string) *BookingBuilder {
	b.checkIn = checkIn
	b.checkOut = checkOut
	return b
}

func (b *BookingBuilder) WithGuestCount(n int) *BookingBuilder {
	b.guestCount = n
	return b
}

func (b *BookingBuilder) WithMaxGuests(n int) *BookingBuilder {
	b.maxGuests = n
	return b
}

func (b *BookingBuilder) WithNightlyPriceCents(cents int64) *BookingBuilder {
	b.nightlyPriceCents = cents
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.userID = id
	return b
}

func (b *BookingBuilder) WithListingID(id uuid.UUID) *BookingBuilder {
	b.listingID = id
	return b
}

func (b *BookingBuilder) WithReserved(checkIn, checkOut string) *BookingBuilder {
	ci := mustParseDate(checkIn)
	co := mustParseDate(checkOut)
	stay, err := booking.NewStayRange(ci, co)
	if err != nil {
		panic(err)
	}
	b.reserved = append(b.reserved, stay)
	return b
}

func (b *BookingBuilder) WithBlocked(days ...string) *BookingBuilder {
	for _, d := range days {
		b.blocked = append(b.blocked, mustParseDate(d))
	}
	return b
}

func (b *BookingBuilder) BuildListing() *listing.Listing {
	l, err := listing.NewListing(b.listingID, b.hostID, b.title, b.location, b.imageURL, b.nightlyPriceCents, b.maxGuests)
	if err != nil {
		panic(err)
	}
	return l
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	factory := booking.NewFactory(clock.NewRealClock(), booking.NewNightlyPriceCalculator())
	return factory.CreateBooking(
		b.BuildListing(),
		b.userID,
		mustParseDate(b.checkIn),
		mustParseDate(b.checkOut),
		b.guestCount,
		b.reserved,
		b.blocked,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() map[string]any {
	return map[string]any{
		"listing_id":  b.listingID.String(),
		"check_in":    b.checkIn,
		"check_out":   b.checkOut,
		"guest_count": b.guestCount,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	nights := int64(mustParseDate(b.checkIn).DaysUntil(mustParseDate(b.checkOut)))
	now := time.Now().UTC()
	return &queries.BookingView{
		ID:              uuid.New(),
		ListingID:       b.listingID,
		ListingTitle:    b.title,
		ListingLocation: b.location,
		ListingImageURL: b.imageURL,
		UserID:          b.userID,
		CheckIn:         b.checkIn,
		CheckOut:        b.checkOut,
		GuestCount:      b.guestCount,
		Status:          booking.StatusConfirmed.String(),
		TotalPriceCents: b.nightlyPriceCents * nights,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	view := b.BuildView()
	return &queries.BookingListItem{
		ID:              view.ID,
		ListingID:       view.ListingID,
		ListingTitle:    view.ListingTitle,
		ListingLocation: view.ListingLocation,
		ListingImageURL: view.ListingImageURL,
		CheckIn:         view.CheckIn,
		CheckOut:        view.CheckOut,
		GuestCount:      view.GuestCount,
		Status:          view.Status,
		TotalPriceCents: view.TotalPriceCents,
		CreatedAt:       view.CreatedAt,
	}
}

func mustParseDate(s string) booking.Date {
	d, err := booking.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}
