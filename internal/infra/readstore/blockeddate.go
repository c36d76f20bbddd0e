package readstore

import (
	"context"
	"time"

	"tablestay/internal/domain/booking"
	"tablestay/internal/infra"
	"tablestay/internal/infra/db"

	"github.com/google/uuid"
)

type BlockedDateReadStore struct {
	db      db.DBTX
	timeout time.Duration
}

func NewBlockedDateReadStore(pool db.DBTX, timeout time.Duration) *BlockedDateReadStore {
	return &BlockedDateReadStore{db: pool, timeout: timeout}
}

func (r *BlockedDateReadStore) FindByListingID(ctx context.Context, listingID uuid.UUID) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx,
		`SELECT blocked_on FROM blocked_dates WHERE listing_id = $1 ORDER BY blocked_on`, listingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find blocked dates", err)
	}
	defer rows.Close()

	result := make([]string, 0)
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocked date", err)
		}
		result = append(result, day.Format(booking.DateLayout))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blocked dates", err)
	}
	return result, nil
}
