package writerepo

import (
	"context"
	"time"

	"tablestay/internal/domain/booking"
	"tablestay/internal/infra"
	"tablestay/internal/infra/db"

	"github.com/google/uuid"
)

// AvailabilityReader serves the admission path with domain-typed availability.
// It always reads live rows; the cached snapshot is for the display path only.
type AvailabilityReader struct {
	db      db.DBTX
	timeout time.Duration
}

func NewAvailabilityReader(pool db.DBTX, timeout time.Duration) *AvailabilityReader {
	return &AvailabilityReader{db: pool, timeout: timeout}
}

func (r *AvailabilityReader) ConfirmedRanges(ctx context.Context, listingID uuid.UUID) ([]booking.StayRange, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx,
		`SELECT check_in, check_out FROM bookings WHERE listing_id = $1 AND status = 'confirmed'`,
		listingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load confirmed ranges", err)
	}
	defer rows.Close()

	result := make([]booking.StayRange, 0)
	for rows.Next() {
		var checkIn, checkOut time.Time
		if err := rows.Scan(&checkIn, &checkOut); err != nil {
			return nil, infra.WrapRepoErr("failed to scan confirmed range", err)
		}
		stay, err := booking.NewStayRange(booking.NewDate(checkIn), booking.NewDate(checkOut))
		if err != nil {
			return nil, infra.WrapRepoErr("stored booking has invalid date range", err)
		}
		result = append(result, stay)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate confirmed ranges", err)
	}
	return result, nil
}

func (r *AvailabilityReader) BlockedDates(ctx context.Context, listingID uuid.UUID) ([]booking.Date, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx,
		`SELECT blocked_on FROM blocked_dates WHERE listing_id = $1`, listingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load blocked dates", err)
	}
	defer rows.Close()

	result := make([]booking.Date, 0)
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocked date", err)
		}
		result = append(result, booking.NewDate(day))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blocked dates", err)
	}
	return result, nil
}
