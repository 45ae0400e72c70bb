package api

import (
	"net/http"

	resdto "campground/internal/handler/dto/response"
	"campground/internal/handler/middleware"
	"campground/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AccessPassHandler struct {
	accessPass usecase.AccessPassUseCase
}

func NewAccessPassHandler(accessPass usecase.AccessPassUseCase) *AccessPassHandler {
	return &AccessPassHandler{accessPass: accessPass}
}

// @Summary Issue gate pass
// @Description Mint a short-lived QR gate pass for a paid booking inside its access window; denials come back as a 200 payload with a reason
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.AccessPassResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings/{id}/pass [post]
func (h *AccessPassHandler) IssuePass(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	result, err := h.accessPass.Issue(c.Request.Context(), id, userID, role == middleware.RoleOperator)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromIssueResult(result))
}
