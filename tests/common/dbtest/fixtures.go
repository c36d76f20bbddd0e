//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt of "password123", cost 12. Shared by every fixture user so e2e
// suites can log in without hashing at test time.
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestListing(t *testing.T, db DBLike, hostID uuid.UUID, title string, nightlyPriceCents int64, maxGuests int) uuid.UUID {
	t.Helper()

	listingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO listings (id, host_id, title, location, primary_image_url, nightly_price_cents, max_guests)
		 VALUES ($1, $2, $3, 'Lisbon, Portugal', 'https://img.example.com/listing.jpg', $4, $5)`,
		listingID, hostID, title, nightlyPriceCents, maxGuests)
	require.NoError(t, err)

	return listingID
}

// CreateTestBooking inserts a confirmed booking directly, bypassing the API.
// Useful for seeding occupancy before exercising the admission path.
func CreateTestBooking(t *testing.T, db DBLike, listingID, userID uuid.UUID, checkIn, checkOut string, guestCount int, totalPriceCents int64) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO bookings (id, listing_id, user_id, check_in, check_out, guest_count, status, total_price_cents)
		 VALUES ($1, $2, $3, $4, $5, $6, 'confirmed', $7)`,
		bookingID, listingID, userID, checkIn, checkOut, guestCount, totalPriceCents)
	require.NoError(t, err)

	return bookingID
}

func CreateBlockedDate(t *testing.T, db DBLike, listingID uuid.UUID, blockedOn string) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO blocked_dates (listing_id, blocked_on) VALUES ($1, $2) ON CONFLICT (listing_id, blocked_on) DO NOTHING",
		listingID, blockedOn)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
