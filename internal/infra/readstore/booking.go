package readstore

import (
	"context"
	"time"

	"tablestay/internal/domain/booking"
	"tablestay/internal/infra"
	"tablestay/internal/infra/db"
	"tablestay/internal/pkg/pgconv"
	"tablestay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingViewQuery = `
SELECT b.id, b.listing_id, l.title, l.location, l.primary_image_url,
       b.user_id, b.check_in, b.check_out, b.guest_count, b.status,
       b.total_price_cents, b.created_at, b.updated_at
FROM bookings b
JOIN listings l ON l.id = b.listing_id
`

type BookingReadStore struct {
	db      db.DBTX
	timeout time.Duration
}

func NewBookingReadStore(pool db.DBTX, timeout time.Duration) *BookingReadStore {
	return &BookingReadStore{db: pool, timeout: timeout}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.db.QueryRow(ctx, bookingViewQuery+"WHERE b.id = $1", id)
	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, bookingViewQuery+"WHERE b.user_id = $1 ORDER BY b.created_at DESC, b.id DESC", userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by user", err)
	}
	return scanBookingListItems(rows)
}

func (r *BookingReadStore) FindByHostID(ctx context.Context, hostID uuid.UUID) ([]*queries.BookingListItem, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, bookingViewQuery+"WHERE l.host_id = $1 ORDER BY b.created_at DESC, b.id DESC", hostID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by host", err)
	}
	return scanBookingListItems(rows)
}

func (r *BookingReadStore) FindConfirmedRanges(ctx context.Context, listingID uuid.UUID) ([]queries.ReservedRange, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx,
		`SELECT check_in, check_out FROM bookings WHERE listing_id = $1 AND status = 'confirmed' ORDER BY check_in`,
		listingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find confirmed ranges", err)
	}
	defer rows.Close()

	result := make([]queries.ReservedRange, 0)
	for rows.Next() {
		var checkIn, checkOut time.Time
		if err := rows.Scan(&checkIn, &checkOut); err != nil {
			return nil, infra.WrapRepoErr("failed to scan confirmed range", err)
		}
		result = append(result, queries.ReservedRange{
			CheckIn:  checkIn.Format(booking.DateLayout),
			CheckOut: checkOut.Format(booking.DateLayout),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate confirmed ranges", err)
	}
	return result, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	var checkIn, checkOut time.Time
	err := row.Scan(&v.ID, &v.ListingID, &v.ListingTitle, &v.ListingLocation, &v.ListingImageURL,
		&v.UserID, &checkIn, &checkOut, &v.GuestCount, &v.Status,
		&v.TotalPriceCents, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	v.CheckIn = checkIn.Format(booking.DateLayout)
	v.CheckOut = checkOut.Format(booking.DateLayout)
	return &v, nil
}

func scanBookingListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	defer rows.Close()

	result := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var v queries.BookingListItem
		var userID uuid.UUID
		var checkIn, checkOut time.Time
		var updatedAt time.Time
		err := rows.Scan(&v.ID, &v.ListingID, &v.ListingTitle, &v.ListingLocation, &v.ListingImageURL,
			&userID, &checkIn, &checkOut, &v.GuestCount, &v.Status,
			&v.TotalPriceCents, &v.CreatedAt, &updatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		v.CheckIn = checkIn.Format(booking.DateLayout)
		v.CheckOut = checkOut.Format(booking.DateLayout)
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}
