package api

import (
	"errors"
	"net/http"
	"time"

	"campground/internal/domain/schedule"
	resdto "campground/internal/handler/dto/response"
	"campground/internal/pkg/clock"
	"campground/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	metricsQueries queries.MetricsQueries
	clock          clock.Clock
}

func NewDashboardHandler(metricsQueries queries.MetricsQueries, clk clock.Clock) *DashboardHandler {
	return &DashboardHandler{
		metricsQueries: metricsQueries,
		clock:          clk,
	}
}

// @Summary Dashboard metrics
// @Description Aggregated occupancy and revenue figures for a reporting period
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param kind query string false "Period kind: day, week, month or year" default(day)
// @Param anchor query string false "Any date inside the period (YYYY-MM-DD), defaults to today"
// @Success 200 {object} resdto.DashboardResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/dashboard [get]
func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	kind := schedule.PeriodKind(c.DefaultQuery("kind", string(schedule.PeriodDay)))
	if !kind.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid period kind",
		})
		return
	}

	anchor := h.clock.Now()
	if raw := c.Query("anchor"); raw != "" {
		parsed, err := time.Parse(schedule.DateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid anchor date format",
			})
			return
		}
		anchor = parsed
	}

	metrics, err := h.metricsQueries.Compute(c.Request.Context(), kind, anchor)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidPeriod):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid reporting period",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromMetrics(metrics))
}

// @Summary Fleet statuses
// @Description Live status of every pitch as of now
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PitchStatusResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/dashboard/pitches [get]
func (h *DashboardHandler) GetFleetStatuses(c *gin.Context) {
	statuses, err := h.metricsQueries.FleetStatuses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPitchStatusViews(statuses))
}
