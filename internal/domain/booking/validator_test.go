//go:build unit

package booking_test

import (
	"testing"

	"tablestay/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) booking.Date {
	t.Helper()
	d, err := booking.ParseDate(s)
	require.NoError(t, err)
	return d
}

func stayRange(t *testing.T, checkIn, checkOut string) booking.StayRange {
	t.Helper()
	r, err := booking.NewStayRange(date(t, checkIn), date(t, checkOut))
	require.NoError(t, err)
	return r
}

func TestValidate(t *testing.T) {
	t.Run("date range", func(t *testing.T) {
		cases := []struct {
			name     string
			checkIn  string
			checkOut string
			errIs    error
		}{
			{name: "one night stay", checkIn: "2026-06-01", checkOut: "2026-06-02"},
			{name: "check-out equals check-in", checkIn: "2026-06-01", checkOut: "2026-06-01", errIs: booking.ErrInvalidDateRange},
			{name: "check-out before check-in", checkIn: "2026-06-02", checkOut: "2026-06-01", errIs: booking.ErrInvalidDateRange},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := booking.Validate(date(t, tc.checkIn), date(t, tc.checkOut), 2, 4, nil, nil)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("guest count", func(t *testing.T) {
		cases := []struct {
			name      string
			guests    int
			maxGuests int
			errIs     error
		}{
			{name: "single guest", guests: 1, maxGuests: 4},
			{name: "at capacity", guests: 4, maxGuests: 4},
			{name: "over capacity", guests: 5, maxGuests: 4, errIs: booking.ErrGuestCountExceeded},
			{name: "zero guests", guests: 0, maxGuests: 4, errIs: booking.ErrGuestCountExceeded},
			{name: "negative guests", guests: -1, maxGuests: 4, errIs: booking.ErrGuestCountExceeded},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := booking.Validate(date(t, "2026-06-01"), date(t, "2026-06-04"), tc.guests, tc.maxGuests, nil, nil)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("reserved overlap", func(t *testing.T) {
		reserved := []booking.StayRange{stayRange(t, "2026-06-10", "2026-06-15")}

		cases := []struct {
			name     string
			checkIn  string
			checkOut string
			errIs    error
		}{
			{name: "fully inside reserved stay", checkIn: "2026-06-11", checkOut: "2026-06-13", errIs: booking.ErrDatesUnavailable},
			{name: "straddles reserved start", checkIn: "2026-06-08", checkOut: "2026-06-11", errIs: booking.ErrDatesUnavailable},
			{name: "straddles reserved end", checkIn: "2026-06-14", checkOut: "2026-06-17", errIs: booking.ErrDatesUnavailable},
			{name: "covers reserved stay", checkIn: "2026-06-09", checkOut: "2026-06-16", errIs: booking.ErrDatesUnavailable},
			{name: "back to back before", checkIn: "2026-06-08", checkOut: "2026-06-10"},
			{name: "back to back after", checkIn: "2026-06-15", checkOut: "2026-06-17"},
			{name: "well clear", checkIn: "2026-06-20", checkOut: "2026-06-22"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := booking.Validate(date(t, tc.checkIn), date(t, tc.checkOut), 2, 4, reserved, nil)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("blocked dates", func(t *testing.T) {
		blocked := []booking.Date{date(t, "2026-06-12")}

		cases := []struct {
			name     string
			checkIn  string
			checkOut string
			errIs    error
		}{
			{name: "blocked night inside stay", checkIn: "2026-06-10", checkOut: "2026-06-14", errIs: booking.ErrDatesUnavailable},
			{name: "blocked day is check-in", checkIn: "2026-06-12", checkOut: "2026-06-14", errIs: booking.ErrDatesUnavailable},
			{name: "blocked day is check-out", checkIn: "2026-06-10", checkOut: "2026-06-12"},
			{name: "stay entirely before", checkIn: "2026-06-08", checkOut: "2026-06-10"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := booking.Validate(date(t, tc.checkIn), date(t, tc.checkOut), 2, 4, nil, blocked)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("range check wins over guest check", func(t *testing.T) {
		_, err := booking.Validate(date(t, "2026-06-02"), date(t, "2026-06-01"), 99, 4, nil, nil)
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("guest check wins over availability check", func(t *testing.T) {
		reserved := []booking.StayRange{stayRange(t, "2026-06-01", "2026-06-04")}
		_, err := booking.Validate(date(t, "2026-06-01"), date(t, "2026-06-04"), 99, 4, reserved, nil)
		assert.ErrorIs(t, err, booking.ErrGuestCountExceeded)
	})
}
