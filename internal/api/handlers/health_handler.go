package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tracknest/tracker-go/internal/repository"
	"github.com/tracknest/tracker-go/pkg/response"
	"github.com/tracknest/tracker-go/pkg/utils"
)

type HealthHandler struct {
	repos *repository.Repos
}

func NewHealthHandler(repos *repository.Repos) *HealthHandler {
	return &HealthHandler{repos: repos}
}

// Healthz godoc
// @Summary Liveness and DB connectivity check
// @Tags health
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /healthz [get]
func (h *HealthHandler) Healthz(c *gin.Context) {
	if err := h.repos.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "ok"})
}

// AuthStatus godoc
// @Summary Echo the authenticated identity
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/status [get]
func AuthStatus(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{
		"externalId": claims.ExternalID,
		"name":       claims.Name,
		"email":      claims.Email,
	}))
}
