package api

import (
	"errors"
	"net/http"

	reqdto "tablestay/internal/handler/dto/request"
	resdto "tablestay/internal/handler/dto/response"
	"tablestay/internal/handler/middleware"
	"tablestay/internal/pkg/errs"
	"tablestay/internal/usecase/commands"
	"tablestay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a stay on a listing for a date range
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Dates must be formatted as YYYY-MM-DD",
		})
		return
	}

	view, err := h.bookingCommands.CreateBooking(c.Request.Context(), userID, params)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Listing not found",
			})
		case errors.Is(err, errs.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-out must be after check-in",
			})
		case errors.Is(err, errs.ErrGuestCountExceeded):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Guest count must be between 1 and the listing capacity",
			})
		case errors.Is(err, errs.ErrDatesUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Requested dates are not available",
			})
		case errors.Is(err, errs.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response, err := resdto.FromBookingView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusCreated, response)
}

// @Summary Get booking
// @Description Get one of the current guest's bookings by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Booking belongs to another guest",
			})
		case errors.Is(err, errs.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response, err := resdto.FromBookingView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary List guest bookings
// @Description List all bookings made by the current guest
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.respondListError(c, err)
		return
	}

	response, err := resdto.FromBookingListItems(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary List host bookings
// @Description List all bookings across the current host's listings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /host/bookings [get]
func (h *BookingHandler) ListHostBookings(c *gin.Context) {
	hostID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.bookingQueries.ListByHost(c.Request.Context(), hostID)
	if err != nil {
		h.respondListError(c, err)
		return
	}

	response, err := resdto.FromBookingListItems(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Cancel booking
// @Description Cancel one of the current guest's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [put]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.CancelBooking(c.Request.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Booking belongs to another guest",
			})
		case errors.Is(err, errs.ErrAlreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is already cancelled",
			})
		case errors.Is(err, errs.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CancelBookingResponse{ID: id, Status: "cancelled"})
}

// @Summary Listing blocked dates
// @Description Dates a listing cannot be booked: confirmed stays plus host-blocked days
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.BlockedDatesResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /listings/{id}/blocked-dates [get]
func (h *BookingHandler) GetBlockedDates(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid listing ID format",
		})
		return
	}

	snapshot, err := h.bookingQueries.BlockedDates(c.Request.Context(), listingID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Listing not found",
			})
		case errors.Is(err, errs.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilitySnapshot(snapshot))
}

func (h *BookingHandler) respondListError(c *gin.Context, err error) {
	if errors.Is(err, errs.ErrStoreUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Service temporarily unavailable",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
