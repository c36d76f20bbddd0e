package readstore

import (
	"context"
	"time"

	"tablestay/internal/infra"
	"tablestay/internal/infra/db"
	"tablestay/internal/pkg/pgconv"
	"tablestay/internal/usecase/commands"

	"github.com/google/uuid"
)

type ListingReadStore struct {
	db      db.DBTX
	timeout time.Duration
}

func NewListingReadStore(pool db.DBTX, timeout time.Duration) *ListingReadStore {
	return &ListingReadStore{db: pool, timeout: timeout}
}

func (r *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*commands.ListingSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var snap commands.ListingSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, host_id, title, location, primary_image_url, nightly_price_cents, max_guests
		 FROM listings WHERE id = $1`, id).
		Scan(&snap.ID, &snap.HostID, &snap.Title, &snap.Location, &snap.PrimaryImageURL,
			&snap.NightlyPriceCents, &snap.MaxGuests)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing by ID", err)
	}
	return &snap, nil
}

func (r *ListingReadStore) Exists(ctx context.Context, listingID uuid.UUID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM listings WHERE id = $1)`, listingID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check listing existence", err)
	}
	return exists, nil
}
