package response

import (
	"time"

	"tablestay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	ListingID       uuid.UUID `json:"listingId"`
	ListingTitle    string    `json:"listingTitle"`
	ListingLocation string    `json:"listingLocation"`
	ListingImageURL string    `json:"listingImageUrl"`
	UserID          uuid.UUID `json:"userId"`
	CheckIn         string    `json:"checkIn"`
	CheckOut        string    `json:"checkOut"`
	GuestCount      int       `json:"guestCount"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID              uuid.UUID `json:"id"`
	ListingID       uuid.UUID `json:"listingId"`
	ListingTitle    string    `json:"listingTitle"`
	ListingLocation string    `json:"listingLocation"`
	ListingImageURL string    `json:"listingImageUrl"`
	CheckIn         string    `json:"checkIn"`
	CheckOut        string    `json:"checkOut"`
	GuestCount      int       `json:"guestCount"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	CreatedAt       time.Time `json:"createdAt"`
}

type ReservedRangeResponse struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

type BlockedDatesResponse struct {
	ListingID      uuid.UUID               `json:"listingId"`
	ReservedRanges []ReservedRangeResponse `json:"reservedRanges"`
	BlockedDates   []string                `json:"blockedDates"`
}

type CancelBookingResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

func FromBookingView(view *queries.BookingView) (*BookingResponse, error) {
	var resp BookingResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromBookingListItems(items []*queries.BookingListItem) ([]*BookingListResponse, error) {
	result := make([]*BookingListResponse, len(items))
	for i, item := range items {
		var resp BookingListResponse
		if err := copier.Copy(&resp, item); err != nil {
			return nil, err
		}
		result[i] = &resp
	}
	return result, nil
}

func FromAvailabilitySnapshot(snapshot *queries.AvailabilitySnapshot) *BlockedDatesResponse {
	ranges := make([]ReservedRangeResponse, len(snapshot.ReservedRanges))
	for i, r := range snapshot.ReservedRanges {
		ranges[i] = ReservedRangeResponse{CheckIn: r.CheckIn, CheckOut: r.CheckOut}
	}
	return &BlockedDatesResponse{
		ListingID:      snapshot.ListingID,
		ReservedRanges: ranges,
		BlockedDates:   snapshot.BlockedDates,
	}
}
