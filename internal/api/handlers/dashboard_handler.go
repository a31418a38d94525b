package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tracknest/tracker-go/internal/application"
	"github.com/tracknest/tracker-go/pkg/response"
	"github.com/tracknest/tracker-go/pkg/utils"
)

type DashboardHandler struct {
	svc *application.DashboardService
}

func NewDashboardHandler(svc *application.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GetStats godoc
// @Summary Project and ticket counts for the caller's dashboard
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	callerID, err := utils.GetExternalIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	stats, err := h.svc.Stats(callerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.OK(stats))
}
