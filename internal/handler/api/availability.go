package api

import (
	"errors"
	"net/http"

	resdto "campground/internal/handler/dto/response"
	"campground/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityQueries: availabilityQueries}
}

// @Summary Sold-out dates
// @Description List the fully booked dates inside a window
// @Tags availability
// @Produce json
// @Param from query string true "Window start (YYYY-MM-DD, inclusive)"
// @Param to query string true "Window end (YYYY-MM-DD, exclusive)"
// @Success 200 {object} map[string][]string
// @Failure 400 {object} map[string]string
// @Router /availability/sold-out [get]
func (h *AvailabilityHandler) SoldOutDates(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Both from and to are required",
		})
		return
	}

	dates, err := h.availabilityQueries.SoldOutDates(c.Request.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidWindow):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid availability window",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	if dates == nil {
		dates = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"soldOutDates": dates})
}

// @Summary List extras
// @Description List the bookable add-ons with their prices
// @Tags availability
// @Produce json
// @Success 200 {array} resdto.ExtraResponse
// @Router /extras [get]
func (h *AvailabilityHandler) ListExtras(c *gin.Context) {
	views, err := h.availabilityQueries.ListExtras(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromExtraViews(views))
}
