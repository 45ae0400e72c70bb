//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"campground/internal/handler/api"
	resdto "campground/internal/handler/dto/response"
	"campground/internal/usecase/queries"
	"campground/tests/common/httptest"
	queriesmock "campground/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	// Public endpoints, no auth middleware
	s.router.GET("/availability/sold-out", s.handler.SoldOutDates)
	s.router.GET("/extras", s.handler.ListExtras)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestSoldOutDates() {
	url := "/availability/sold-out"

	s.Run("success: returns the sold-out dates inside the window", func() {
		s.mockQueries.EXPECT().SoldOutDates(gomock.Any(), "2026-07-01", "2026-08-01").
			Return([]string{"2026-07-14", "2026-07-15"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?from=2026-07-01&to=2026-08-01", nil, "")

		var response map[string][]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]string{"2026-07-14", "2026-07-15"}, response["soldOutDates"])
	})

	s.Run("success: no sold-out dates serializes as an empty array", func() {
		s.mockQueries.EXPECT().SoldOutDates(gomock.Any(), "2026-07-01", "2026-08-01").
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?from=2026-07-01&to=2026-08-01", nil, "")

		var raw map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &raw)
		dates, ok := raw["soldOutDates"].([]any)
		s.True(ok, "soldOutDates must serialize as an array")
		s.Empty(dates)
	})

	s.Run("error: 400 Bad Request when the window is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?from=2026-07-01", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Both from and to are required")
	})

	s.Run("error: 400 Bad Request for an invalid window", func() {
		s.mockQueries.EXPECT().SoldOutDates(gomock.Any(), "2026-08-01", "2026-07-01").
			Return(nil, queries.ErrInvalidWindow).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?from=2026-08-01&to=2026-07-01", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid availability window")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().SoldOutDates(gomock.Any(), "2026-07-01", "2026-08-01").
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?from=2026-07-01&to=2026-08-01", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AvailabilityHandlerTestSuite) TestListExtras() {
	url := "/extras"

	s.Run("success: returns the extras catalog", func() {
		views := []*queries.ExtraView{
			{ID: 1, Code: "PERSON", Name: "Persona adicional", UnitAmountCents: 500, Kind: "metered", MaxUnits: 4},
			{ID: 3, Code: "POWER", Name: "Conexión eléctrica", UnitAmountCents: 300, Kind: "toggle", MaxUnits: 1},
		}
		s.mockQueries.EXPECT().ListExtras(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.ExtraResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("PERSON", response[0].Code)
		s.Equal(int64(300), response[1].UnitAmountCents)
	})

	s.Run("error: 500 Internal Server Error on failure", func() {
		s.mockQueries.EXPECT().ListExtras(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
