package request

import (
	"tablestay/internal/domain/booking"
	"tablestay/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ListingID  uuid.UUID `json:"listing_id" binding:"required"`
	CheckIn    string    `json:"check_in" binding:"required"`
	CheckOut   string    `json:"check_out" binding:"required"`
	// No binding rule: zero or negative counts flow to the domain validator so
	// the client gets the guest-count message rather than a generic 400.
	GuestCount int `json:"guest_count"`
}

// ToParams parses the calendar dates; a malformed date fails here before any
// usecase work starts.
func (r *CreateBookingRequest) ToParams() (commands.CreateBookingParams, error) {
	checkIn, err := booking.ParseDate(r.CheckIn)
	if err != nil {
		return commands.CreateBookingParams{}, err
	}
	checkOut, err := booking.ParseDate(r.CheckOut)
	if err != nil {
		return commands.CreateBookingParams{}, err
	}
	return commands.CreateBookingParams{
		ListingID:  r.ListingID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		GuestCount: r.GuestCount,
	}, nil
}
