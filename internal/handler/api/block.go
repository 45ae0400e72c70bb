package api

import (
	"errors"
	"net/http"

	reqdto "campground/internal/handler/dto/request"
	resdto "campground/internal/handler/dto/response"
	"campground/internal/handler/httperr"
	"campground/internal/usecase/commands"
	"campground/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BlockHandler struct {
	blockCommands       commands.BlockCommands
	availabilityQueries queries.AvailabilityQueries
}

func NewBlockHandler(blockCommands commands.BlockCommands, availabilityQueries queries.AvailabilityQueries) *BlockHandler {
	return &BlockHandler{
		blockCommands:       blockCommands,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Create block
// @Description Block a pitch for a date range; maintenance blocks trigger reassignment of conflicting paid bookings
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBlockRequest true "Block request"
// @Success 201 {object} resdto.CreateBlockResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/blocks [post]
func (h *BlockHandler) CreateBlock(c *gin.Context) {
	var req reqdto.CreateBlockRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	report, err := h.blockCommands.CreateBlock(c.Request.Context(), commands.CreateBlockParams{
		PitchID:   req.PitchID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Kind:      req.Kind,
		Reason:    req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidStay):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid block dates")
		case errors.Is(err, commands.ErrInvalidBlockKind):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid block kind")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReassignmentReport(report))
}

// @Summary List blocks
// @Description List all declared unavailability windows
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BlockResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/blocks [get]
func (h *BlockHandler) ListBlocks(c *gin.Context) {
	views, err := h.availabilityQueries.ListBlocks(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromBlockViews(views))
}

// @Summary Delete block
// @Description Remove an unavailability window
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Block ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/blocks/{id} [delete]
func (h *BlockHandler) DeleteBlock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid block ID format")
		return
	}

	if err := h.blockCommands.DeleteBlock(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrBlockNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Block not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
