package api

import (
	"errors"
	"net/http"

	"campground/internal/domain/booking"
	reqdto "campground/internal/handler/dto/request"
	resdto "campground/internal/handler/dto/response"
	"campground/internal/handler/middleware"
	"campground/internal/usecase/commands"
	"campground/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands    commands.BookingCommands
	reservationQueries queries.ReservationQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, reservationQueries queries.ReservationQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands:    bookingCommands,
		reservationQueries: reservationQueries,
	}
}

// @Summary Create booking
// @Description Book a stay; a pitch is assigned automatically
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
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

	params := commands.CreateBookingParams{
		UserID:    userID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Guest: booking.Guest{
			FullName:     req.Guest.FullName,
			DNI:          req.Guest.DNI,
			Phone:        req.Guest.Phone,
			LicensePlate: req.Guest.LicensePlate,
		},
		Extras: req.ExtraSelections(),
	}

	view, err := h.bookingCommands.CreateBooking(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidStay):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid stay dates",
			})
		case errors.Is(err, commands.ErrBadGuest):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Incomplete guest details",
			})
		case errors.Is(err, commands.ErrBadExtras):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid extras selection",
			})
		case errors.Is(err, commands.ErrNoAvailability):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No pitch available for the requested dates",
			})
		case errors.Is(err, commands.ErrAssignmentConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking could not be completed due to concurrent bookings, please try again",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get booking
// @Description Get a booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	// Guests can only see their own bookings.
	if role, _ := middleware.GetUserRole(c); role != middleware.RoleOperator {
		userID, ok := middleware.GetUserID(c)
		if !ok || view.UserID != userID {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
			return
		}
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List own bookings
// @Description List all bookings for the current user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListOwnBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.reservationQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary List all bookings
// @Description List bookings across all users, optionally filtered by payment status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Payment status filter"
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/bookings [get]
func (h *BookingHandler) ListAllBookings(c *gin.Context) {
	var status *string
	if s := c.Query("status"); s != "" {
		if !booking.PaymentStatus(s).IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid payment status filter",
			})
			return
		}
		status = &s
	}

	views, err := h.reservationQueries.ListAll(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Assign pitch manually
// @Description Pin a booking to a specific pitch, bypassing automatic assignment
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.AssignPitchRequest true "Target pitch"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{id}/pitch [post]
func (h *BookingHandler) AssignPitch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.AssignPitchRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.bookingCommands.AssignPitchOverride(c.Request.Context(), id, req.PitchID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrPitchUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Pitch is not available for the booking dates",
			})
		case errors.Is(err, commands.ErrAssignmentConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Assignment conflicted with concurrent bookings, please try again",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Expire stale holds
// @Description Cancel unpaid bookings older than the hold TTL
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/holds/expire [post]
func (h *BookingHandler) ExpireHolds(c *gin.Context) {
	expired, err := h.bookingCommands.ExpireStaleHolds(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"expired": expired})
}
