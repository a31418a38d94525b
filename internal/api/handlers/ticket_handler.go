package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tracknest/tracker-go/internal/application"
	"github.com/tracknest/tracker-go/internal/domain/ticket"
	"github.com/tracknest/tracker-go/internal/domain/user"
	"github.com/tracknest/tracker-go/pkg/response"
	"github.com/tracknest/tracker-go/pkg/utils"
)

type TicketHandler struct {
	svc *application.TicketService
}

func NewTicketHandler(svc *application.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

// GetTickets godoc
// @Summary List tickets with optional equality filters
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Param projectId query string false "Project ID"
// @Param status query string false "Status"
// @Param priority query string false "Priority"
// @Success 200 {object} response.SuccessResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /tickets [get]
func (h *TicketHandler) GetTickets(c *gin.Context) {
	var filter ticket.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	tickets, err := h.svc.ListTickets(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to fetch tickets"})
		return
	}
	if tickets == nil {
		tickets = []ticket.Ticket{}
	}

	c.JSON(http.StatusOK, response.OK(tickets))
}

// GetProjectTickets godoc
// @Summary List tickets of one project
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Param status query string false "Status"
// @Param priority query string false "Priority"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /projects/{id}/tickets [get]
func (h *TicketHandler) GetProjectTickets(c *gin.Context) {
	var filter ticket.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	tickets, err := h.svc.ListTicketsForProject(c.Param("id"), filter)
	if err != nil {
		writeTicketError(c, err)
		return
	}
	if tickets == nil {
		tickets = []ticket.Ticket{}
	}

	c.JSON(http.StatusOK, response.OK(tickets))
}

// GetTicketByID godoc
// @Summary Get ticket by ID with project and assignee
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetTicketByID(c *gin.Context) {
	t, err := h.svc.GetTicket(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Ticket not found"})
		return
	}
	c.JSON(http.StatusOK, response.OK(t))
}

// CreateTicket godoc
// @Summary Create a ticket in a project
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param ticket body ticket.CreateTicketDTO true "Ticket"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input ticket.CreateTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Title and projectId are required"})
		return
	}

	ident := user.Identity{
		ExternalID: claims.ExternalID,
		Name:       claims.Name,
		Email:      claims.Email,
	}

	t, err := h.svc.CreateTicket(c, ident, input)
	if err != nil {
		writeTicketError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.OK(t))
}

// UpdateTicket godoc
// @Summary Update any subset of ticket fields
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param ticket body ticket.UpdateTicketDTO true "Fields"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	var input ticket.UpdateTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	t, err := h.svc.UpdateTicket(c, c.Param("id"), input)
	if err != nil {
		writeTicketError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(t))
}

// DeleteTicket godoc
// @Summary Delete a ticket
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	callerID, err := utils.GetExternalIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.svc.DeleteTicket(c, c.Param("id"), callerID); err != nil {
		writeTicketError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Ticket deleted successfully"})
}

// BulkDeleteTickets godoc
// @Summary Delete tickets by id set
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param ids body ticket.BulkDeleteDTO true "Ticket IDs"
// @Success 200 {object} response.BulkDeleteResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /tickets/bulk-delete [post]
func (h *TicketHandler) BulkDeleteTickets(c *gin.Context) {
	var input ticket.BulkDeleteDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "ids must be a non-empty array"})
		return
	}

	count, err := h.svc.BulkDeleteTickets(c, input.IDs)
	if err != nil {
		writeTicketError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.BulkDeleteResponse{Success: true, DeletedCount: count})
}

func writeTicketError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Ticket not found"})
	case errors.Is(err, application.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Project not found"})
	case errors.Is(err, application.ErrAssigneeNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Assignee not found"})
	case errors.Is(err, application.ErrInvalidStatus),
		errors.Is(err, application.ErrInvalidPriority),
		errors.Is(err, application.ErrEmptyTicketIDs):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrTicketAccessDenied):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Forbidden"})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
