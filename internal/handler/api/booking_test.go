//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"tablestay/internal/domain/user"
	"tablestay/internal/handler/api"
	resdto "tablestay/internal/handler/dto/response"
	"tablestay/internal/pkg/errs"
	"tablestay/internal/usecase/queries"
	"tablestay/tests/common/builder"
	"tablestay/tests/common/httptest"
	"tablestay/tests/common/testutil"
	commandsmock "tablestay/tests/mock/commands"
	queriesmock "tablestay/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleGuest)
		c.Next()
	}

	// Setup routes
	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListUserBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.PUT("/bookings/:id/cancel", authMiddleware, s.handler.CancelBooking)
	s.router.GET("/host/bookings", authMiddleware, s.handler.ListHostBookings)
	s.router.GET("/listings/:id/blocked-dates", s.handler.GetBlockedDates)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	returnView := builder.NewBookingBuilder().WithUserID(s.userID).BuildView()

	missing := []testCaseBooking{
		{name: "missing field: listing_id (required)", mutate: testutil.Field("listing_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: check_in (required)", mutate: testutil.Field("check_in", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: check_out (required)", mutate: testutil.Field("check_out", nil), expectCode: http.StatusBadRequest},
	}

	malformed := []testCaseBooking{
		{name: "non-uuid listing_id", mutate: testutil.Field("listing_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
		{name: "check_in not a calendar date", mutate: testutil.Field("check_in", "June 1st"), expectCode: http.StatusBadRequest},
		{name: "check_in carries a time component", mutate: testutil.Field("check_in", "2026-06-01T00:00:00Z"), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseBooking{missing, malformed}

	s.Run("success: returns 201 Created with the priced booking", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), s.userID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("confirmed", response.Status)
		s.Equal(returnView.TotalPriceCents, response.TotalPriceCents)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				})
			}
		}
	})

	s.Run("error: zero guest count gets the guest-count message, not a generic 400", func() {
		for _, tc := range []testCaseBooking{
			{name: "guest_count is 0", mutate: testutil.Field("guest_count", 0)},
			{name: "guest_count is absent", mutate: testutil.Field("guest_count", nil)},
			{name: "guest_count is negative", mutate: testutil.Field("guest_count", -1)},
		} {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), s.userID, gomock.Any()).
					Return(nil, errs.ErrGuestCountExceeded).Times(1)

				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Guest count must be between 1 and the listing capacity")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps admission errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "listing not found",
				commandsError:  errs.ErrListingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Listing not found",
			},
			{
				name:           "inverted date range",
				commandsError:  errs.ErrInvalidDateRange,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Check-out must be after check-in",
			},
			{
				name:           "guest count over capacity",
				commandsError:  errs.ErrGuestCountExceeded,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Guest count must be between 1 and the listing capacity",
			},
			{
				name:           "dates already taken",
				commandsError:  errs.ErrDatesUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Requested dates are not available",
			},
			{
				name:           "store unavailable",
				commandsError:  errs.ErrStoreUnavailable,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Service temporarily unavailable",
			},
			{
				name:           "unexpected failure",
				commandsError:  errs.ErrDatabaseOperationFailed,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), s.userID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	returnView := builder.NewBookingBuilder().WithUserID(s.userID).BuildView()

	s.Run("success: returns 200 OK with BookingResponse", func() {
		view := *returnView
		view.ID = bookingID
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, bookingID).
			Return(&view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal(view.CheckIn, response.CheckIn)
		s.Equal(view.CheckOut, response.CheckOut)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, bookingID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 403 Forbidden for another guest's booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, bookingID).
			Return(nil, errs.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Booking belongs to another guest")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListUserBookings() {
	url := "/bookings"

	s.Run("success: returns 200 OK with the guest's bookings", func() {
		items := []*queries.BookingListItem{
			builder.NewBookingBuilder().BuildListItem(),
			builder.NewBookingBuilder().WithDates("2026-07-01", "2026-07-05").BuildListItem(),
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(items[0].ID, response[0].ID)
	})

	s.Run("success: empty history returns an empty array", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return([]*queries.BookingListItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 503 when the store is unavailable", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(nil, errs.ErrStoreUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Service temporarily unavailable")
	})
}

func (s *BookingHandlerTestSuite) TestListHostBookings() {
	url := "/host/bookings"

	s.Run("success: returns bookings across the host's listings", func() {
		items := []*queries.BookingListItem{builder.NewBookingBuilder().BuildListItem()}
		s.mockQueries.EXPECT().ListByHost(gomock.Any(), s.userID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestCancelBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	s.Run("success: returns 200 OK with the cancelled status", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), s.userID, bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")

		var response resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal("cancelled", response.Status)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/not-a-uuid/cancel", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: maps cancellation errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  errs.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "another guest's booking",
				commandsError:  errs.ErrForbidden,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Booking belongs to another guest",
			},
			{
				name:           "already cancelled",
				commandsError:  errs.ErrAlreadyCancelled,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Booking is already cancelled",
			},
			{
				name:           "store unavailable",
				commandsError:  errs.ErrStoreUnavailable,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Service temporarily unavailable",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CancelBooking(gomock.Any(), s.userID, bookingID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGetBlockedDates
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBlockedDates() {
	listingID := uuid.New()
	url := "/listings/" + listingID.String() + "/blocked-dates"

	s.Run("success: public route returns reserved ranges and blocked days", func() {
		snapshot := &queries.AvailabilitySnapshot{
			ListingID: listingID,
			ReservedRanges: []queries.ReservedRange{
				{CheckIn: "2026-06-01", CheckOut: "2026-06-04"},
			},
			BlockedDates: []string{"2026-06-10", "2026-06-11"},
		}
		s.mockQueries.EXPECT().BlockedDates(gomock.Any(), listingID).
			Return(snapshot, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.BlockedDatesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(listingID, response.ListingID)
		s.Len(response.ReservedRanges, 1)
		s.Equal("2026-06-01", response.ReservedRanges[0].CheckIn)
		s.Equal([]string{"2026-06-10", "2026-06-11"}, response.BlockedDates)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/not-a-uuid/blocked-dates", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid listing ID format")
	})

	s.Run("error: 404 Not Found for missing listing", func() {
		s.mockQueries.EXPECT().BlockedDates(gomock.Any(), listingID).
			Return(nil, errs.ErrListingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Listing not found")
	})
}
