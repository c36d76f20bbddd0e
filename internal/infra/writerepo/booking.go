package writerepo

import (
	"context"
	"time"

	"tablestay/internal/domain/booking"
	"tablestay/internal/infra"
	"tablestay/internal/infra/db"
	"tablestay/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// BookingWriteRepository persists admissions. The bookings table carries an
// exclusion constraint over (listing_id, daterange(check_in, check_out)) for
// confirmed rows, so a concurrent overlapping insert surfaces as KindConflict
// here rather than as a lost update.
type BookingWriteRepository struct {
	db      db.DBTX
	timeout time.Duration
}

func NewBookingWriteRepository(pool db.DBTX, timeout time.Duration) *BookingWriteRepository {
	return &BookingWriteRepository{db: pool, timeout: timeout}
}

func (r *BookingWriteRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.db.Exec(ctx,
		`INSERT INTO bookings (id, listing_id, user_id, check_in, check_out, guest_count, status, total_price_cents, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		b.ID(), b.ListingID(), b.UserID(),
		pgconv.DateToPgtype(b.Stay().CheckIn().Time()), pgconv.DateToPgtype(b.Stay().CheckOut().Time()),
		b.GuestCount(), b.Status().String(), b.TotalPrice().Cents(),
		b.CreatedAt(), b.UpdatedAt())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert booking", err)
	}
	return b.ID(), nil
}

func (r *BookingWriteRepository) FindEntityByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var (
		bookingID, listingID, userID      uuid.UUID
		checkIn, checkOut                 time.Time
		guestCount                        int
		statusStr                         string
		totalPriceCents                   int64
		createdAt, updatedAt              time.Time
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, listing_id, user_id, check_in, check_out, guest_count, status, total_price_cents, created_at, updated_at
		 FROM bookings WHERE id = $1`, id).
		Scan(&bookingID, &listingID, &userID, &checkIn, &checkOut, &guestCount, &statusStr, &totalPriceCents, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking entity", err)
	}

	stay, err := booking.NewStayRange(booking.NewDate(checkIn), booking.NewDate(checkOut))
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has invalid date range", err)
	}
	status := booking.Status(statusStr)
	if !status.IsValid() {
		return nil, infra.WrapRepoErr("stored booking has unknown status", nil)
	}

	return booking.ReconstructBooking(bookingID, listingID, userID, stay, guestCount, status,
		booking.NewMoney(totalPriceCents), createdAt, updatedAt), nil
}

func (r *BookingWriteRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.db.Exec(ctx,
		`UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3`,
		b.Status().String(), b.UpdatedAt(), b.ID())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
