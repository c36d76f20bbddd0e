//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"tablestay/internal/infra"
	"tablestay/internal/pkg/errs"
	"tablestay/internal/usecase/queries"
	"tablestay/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingReadStore struct {
	mock.Mock
}

func (m *MockBookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.BookingView), args.Error(1)
}

func (m *MockBookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queries.BookingListItem), args.Error(1)
}

func (m *MockBookingReadStore) FindByHostID(ctx context.Context, hostID uuid.UUID) ([]*queries.BookingListItem, error) {
	args := m.Called(ctx, hostID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queries.BookingListItem), args.Error(1)
}

func (m *MockBookingReadStore) FindConfirmedRanges(ctx context.Context, listingID uuid.UUID) ([]queries.ReservedRange, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.ReservedRange), args.Error(1)
}

type MockBlockedDateReadStore struct {
	mock.Mock
}

func (m *MockBlockedDateReadStore) FindByListingID(ctx context.Context, listingID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockListingExistenceStore struct {
	mock.Mock
}

func (m *MockListingExistenceStore) Exists(ctx context.Context, listingID uuid.UUID) (bool, error) {
	args := m.Called(ctx, listingID)
	return args.Bool(0), args.Error(1)
}

type MockAvailabilityCache struct {
	mock.Mock
}

func (m *MockAvailabilityCache) Get(ctx context.Context, listingID uuid.UUID) (*queries.AvailabilitySnapshot, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.AvailabilitySnapshot), args.Error(1)
}

func (m *MockAvailabilityCache) Set(ctx context.Context, snapshot *queries.AvailabilitySnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockAvailabilityCache) Invalidate(ctx context.Context, listingID uuid.UUID) error {
	args := m.Called(ctx, listingID)
	return args.Error(0)
}

func newQueries() (queries.BookingQueries, *MockBookingReadStore, *MockBlockedDateReadStore, *MockListingExistenceStore, *MockAvailabilityCache) {
	bookings := new(MockBookingReadStore)
	blocked := new(MockBlockedDateReadStore)
	listings := new(MockListingExistenceStore)
	cache := new(MockAvailabilityCache)
	return queries.NewBookingQueries(bookings, blocked, listings, cache), bookings, blocked, listings, cache
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("owner reads own booking", func(t *testing.T) {
		q, bookings, _, _, _ := newQueries()
		view := builder.NewBookingBuilder().BuildView()
		bookings.On("FindByID", ctx, view.ID).Return(view, nil)

		got, err := q.GetByID(ctx, view.UserID, view.ID)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(view, got))
	})

	t.Run("non-owner gets forbidden, not not-found", func(t *testing.T) {
		q, bookings, _, _, _ := newQueries()
		view := builder.NewBookingBuilder().BuildView()
		bookings.On("FindByID", ctx, view.ID).Return(view, nil)

		_, err := q.GetByID(ctx, uuid.New(), view.ID)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("missing booking", func(t *testing.T) {
		q, bookings, _, _, _ := newQueries()
		id := uuid.New()
		bookings.On("FindByID", ctx, id).
			Return(nil, infra.WrapRepoErr("booking not found", errors.New("no rows"), infra.KindNotFound))

		_, err := q.GetByID(ctx, uuid.New(), id)
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("store timeout surfaces as unavailable", func(t *testing.T) {
		q, bookings, _, _, _ := newQueries()
		id := uuid.New()
		bookings.On("FindByID", ctx, id).
			Return(nil, infra.WrapRepoErr("failed to find booking by ID", context.DeadlineExceeded))

		_, err := q.GetByID(ctx, uuid.New(), id)
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}

func TestBlockedDates(t *testing.T) {
	ctx := context.Background()
	listingID := uuid.New()

	snapshot := &queries.AvailabilitySnapshot{
		ListingID: listingID,
		ReservedRanges: []queries.ReservedRange{
			{CheckIn: "2026-06-01", CheckOut: "2026-06-04"},
		},
		BlockedDates: []string{"2026-06-10"},
	}

	t.Run("listing absent", func(t *testing.T) {
		q, _, _, listings, _ := newQueries()
		listings.On("Exists", ctx, listingID).Return(false, nil)

		_, err := q.BlockedDates(ctx, listingID)
		assert.ErrorIs(t, err, errs.ErrListingNotFound)
	})

	t.Run("cache hit skips the stores", func(t *testing.T) {
		q, bookings, blocked, listings, cache := newQueries()
		listings.On("Exists", ctx, listingID).Return(true, nil)
		cache.On("Get", ctx, listingID).Return(snapshot, nil)

		got, err := q.BlockedDates(ctx, listingID)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(snapshot, got))
		bookings.AssertNotCalled(t, "FindConfirmedRanges", mock.Anything, mock.Anything)
		blocked.AssertNotCalled(t, "FindByListingID", mock.Anything, mock.Anything)
	})

	t.Run("cache miss reads stores and fills cache", func(t *testing.T) {
		q, bookings, blocked, listings, cache := newQueries()
		listings.On("Exists", ctx, listingID).Return(true, nil)
		cache.On("Get", ctx, listingID).Return(nil, nil)
		bookings.On("FindConfirmedRanges", ctx, listingID).Return(snapshot.ReservedRanges, nil)
		blocked.On("FindByListingID", ctx, listingID).Return(snapshot.BlockedDates, nil)
		cache.On("Set", ctx, mock.Anything).Return(nil)

		got, err := q.BlockedDates(ctx, listingID)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(snapshot, got))
		cache.AssertCalled(t, "Set", ctx, mock.Anything)
	})

	t.Run("cache failure degrades to the stores", func(t *testing.T) {
		q, bookings, blocked, listings, cache := newQueries()
		listings.On("Exists", ctx, listingID).Return(true, nil)
		cache.On("Get", ctx, listingID).Return(nil, errors.New("redis down"))
		bookings.On("FindConfirmedRanges", ctx, listingID).Return(snapshot.ReservedRanges, nil)
		blocked.On("FindByListingID", ctx, listingID).Return(snapshot.BlockedDates, nil)
		cache.On("Set", ctx, mock.Anything).Return(errors.New("redis down"))

		got, err := q.BlockedDates(ctx, listingID)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(snapshot, got))
	})
}
