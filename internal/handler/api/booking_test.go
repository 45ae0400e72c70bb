//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"campground/internal/handler/api"
	reqdto "campground/internal/handler/dto/request"
	resdto "campground/internal/handler/dto/response"
	"campground/internal/handler/middleware"
	"campground/internal/usecase/commands"
	"campground/internal/usecase/queries"
	"campground/tests/common/builder"
	"campground/tests/common/httptest"
	"campground/tests/common/testutil"
	commandsmock "campground/tests/mock/commands"
	queriesmock "campground/tests/mock/queries"

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
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidations())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	guestAuth := s.fakeAuth(middleware.RoleGuest)
	operatorAuth := s.fakeAuth(middleware.RoleOperator)

	// Setup routes
	s.router.POST("/bookings", guestAuth, s.handler.CreateBooking)
	s.router.GET("/bookings", guestAuth, s.handler.ListOwnBookings)
	s.router.GET("/bookings/:id", guestAuth, s.handler.GetBooking)
	s.router.GET("/admin/bookings", operatorAuth, s.handler.ListAllBookings)
	s.router.POST("/admin/bookings/:id/pitch", operatorAuth, s.handler.AssignPitch)
	s.router.POST("/admin/holds/expire", operatorAuth, s.handler.ExpireHolds)
}

func (s *BookingHandlerTestSuite) fakeAuth(role middleware.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", role)
		c.Next()
	}
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

	b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.UserID = s.userID
	})
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created with BookingResponse", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("2026-07-10", response.StartDate)
		s.Equal("2026-07-13", response.EndDate)
		s.Equal("unpaid", response.PaymentStatus)
	})

	s.Run("success: forwards guest details and extras to the usecase", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.CreateBookingParams) (*queries.ReservationView, error) {
				s.Equal(s.userID, params.UserID)
				s.Equal("2026-07-10", params.StartDate)
				s.Equal("Ana García", params.Guest.FullName)
				return returnView, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseBooking{
			{name: "missing field: start_date", mutate: testutil.Field("start_date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: end_date", mutate: testutil.Field("end_date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: guest", mutate: testutil.Field("guest", nil), expectCode: http.StatusBadRequest},
			{name: "malformed date", mutate: testutil.Field("start_date", "2026-7-1"), expectCode: http.StatusBadRequest},
			{name: "non-date string", mutate: testutil.Field("end_date", "next friday"), expectCode: http.StatusBadRequest},
			{name: "extras quantity zero", mutate: testutil.Field("extras", []map[string]any{{"extra_id": 1, "quantity": 0}}), expectCode: http.StatusBadRequest},
			{name: "guest missing dni", mutate: func(m map[string]any) {
				m["guest"] = map[string]any{"full_name": "Ana García", "phone": "+34600111222", "license_plate": "1234ABC"}
			}, expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid stay",
				commandsError:  commands.ErrInvalidStay,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid stay dates",
			},
			{
				name:           "incomplete guest",
				commandsError:  commands.ErrBadGuest,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Incomplete guest details",
			},
			{
				name:           "invalid extras",
				commandsError:  commands.ErrBadExtras,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid extras",
			},
			{
				name:           "no availability",
				commandsError:  commands.ErrNoAvailability,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "No pitch available",
			},
			{
				name:           "assignment conflict",
				commandsError:  commands.ErrAssignmentConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "concurrent bookings",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
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

	s.Run("success: owner gets own booking", func() {
		returnView := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = bookingID
			b.UserID = s.userID
		}).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal(3, response.Nights)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: guests get 404 for bookings they do not own", func() {
		foreignView := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = bookingID
		}).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(foreignView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("success: operators can read any booking", func() {
		operatorRouter := gin.New()
		operatorRouter.GET("/bookings/:id", s.fakeAuth(middleware.RoleOperator), s.handler.GetBooking)

		foreignView := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = bookingID
		}).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(foreignView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), operatorRouter, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestListOwnBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListOwnBookings() {
	url := "/bookings"

	s.Run("success: returns the caller's bookings", func() {
		views := []*queries.ReservationView{
			builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.UserID = s.userID }).BuildView(),
			builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.UserID = s.userID }).BuildView(),
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestListAllBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListAllBookings() {
	url := "/admin/bookings"

	views := []*queries.ReservationView{
		builder.NewBookingBuilder().BuildView(),
		builder.NewBookingBuilder().BuildView(),
		builder.NewBookingBuilder().BuildView(),
	}

	s.Run("success: returns all bookings without filter", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any(), (*string)(nil)).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 3)
	})

	s.Run("success: passes the payment status filter through", func() {
		status := "paid"
		s.mockQueries.EXPECT().ListAll(gomock.Any(), &status).
			Return(views[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=paid", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for unknown status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=bogus", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid payment status")
	})
}

// ================================================================================
// TestAssignPitch
// ================================================================================

func (s *BookingHandlerTestSuite) TestAssignPitch() {
	bookingID := uuid.New()
	url := "/admin/bookings/" + bookingID.String() + "/pitch"
	reqBody := reqdto.AssignPitchRequest{PitchID: 7}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().AssignPitchOverride(gomock.Any(), bookingID, int32(7)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings/invalid-uuid/pitch", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 400 Bad Request for non-positive pitch id", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("pitch_id", 0))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  commands.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "pitch unavailable",
				commandsError:  commands.ErrPitchUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not available",
			},
			{
				name:           "assignment conflict",
				commandsError:  commands.ErrAssignmentConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "concurrent bookings",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AssignPitchOverride(gomock.Any(), bookingID, int32(7)).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestExpireHolds
// ================================================================================

func (s *BookingHandlerTestSuite) TestExpireHolds() {
	url := "/admin/holds/expire"

	s.Run("success: reports the number of expired holds", func() {
		s.mockCommands.EXPECT().ExpireStaleHolds(gomock.Any()).
			Return(int64(3), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response map[string]int64
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(3), response["expired"])
	})

	s.Run("error: 500 Internal Server Error on failure", func() {
		s.mockCommands.EXPECT().ExpireStaleHolds(gomock.Any()).
			Return(int64(0), errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
