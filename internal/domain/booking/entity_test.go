//go:build unit

package booking_test

import (
	"testing"
	"time"

	"tablestay/internal/domain/booking"
	"tablestay/internal/pkg/clock"
	"tablestay/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryCreateBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, b)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, 3, b.Stay().Nights())
		assert.Equal(t, int64(300_00), b.TotalPrice().Cents())
		assert.True(t, b.IsActive())
	})

	t.Run("stamps creation timestamps from the clock", func(t *testing.T) {
		now := time.Date(2026, 5, 20, 9, 30, 0, 0, time.UTC)
		factory := booking.NewFactory(clock.NewMockClock(now), booking.NewNightlyPriceCalculator())

		bb := builder.NewBookingBuilder()
		b, err := factory.CreateBooking(
			bb.BuildListing(),
			uuid.New(),
			date(t, "2026-06-01"),
			date(t, "2026-06-04"),
			2,
			nil,
			nil,
		)
		require.NoError(t, err)

		require.False(t, b.CreatedAt().IsZero())
		assert.Equal(t, now, b.CreatedAt())
		assert.Equal(t, now, b.UpdatedAt())
	})

	t.Run("price is captured at admission", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().
			WithNightlyPriceCents(120_00).
			WithDates("2026-07-01", "2026-07-06").
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, int64(600_00), b.TotalPrice().Cents())
	})

	t.Run("rejects overlapping reserved stay", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().
			WithDates("2026-06-01", "2026-06-04").
			WithReserved("2026-06-03", "2026-06-06").
			BuildDomain()
		assert.ErrorIs(t, err, booking.ErrDatesUnavailable)
	})

	t.Run("admits back-to-back stay", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().
			WithDates("2026-06-04", "2026-06-07").
			WithReserved("2026-06-01", "2026-06-04").
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("rejects host-blocked night", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().
			WithDates("2026-06-01", "2026-06-04").
			WithBlocked("2026-06-02").
			BuildDomain()
		assert.ErrorIs(t, err, booking.ErrDatesUnavailable)
	})

	t.Run("rejects guest count over capacity", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().
			WithGuestCount(5).
			WithMaxGuests(4).
			BuildDomain()
		assert.ErrorIs(t, err, booking.ErrGuestCountExceeded)
	})
}

func TestBookingCancel(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("cancel flips status and bumps updatedAt", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Cancel(now))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.True(t, b.IsCancelled())
		assert.Equal(t, now, b.UpdatedAt())
	})

	t.Run("cancel is terminal", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Cancel(now))
		err = b.Cancel(now.Add(time.Hour))
		assert.ErrorIs(t, err, booking.ErrAlreadyCancelled)
		assert.Equal(t, now, b.UpdatedAt())
	})

	t.Run("ownership check", func(t *testing.T) {
		owner := uuid.New()
		b, err := builder.NewBookingBuilder().WithUserID(owner).BuildDomain()
		require.NoError(t, err)

		assert.True(t, b.IsOwnedBy(owner))
		assert.False(t, b.IsOwnedBy(uuid.New()))
	})
}
