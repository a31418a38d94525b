package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tracknest/tracker-go/internal/application"
	"github.com/tracknest/tracker-go/internal/domain/project"
	"github.com/tracknest/tracker-go/pkg/response"
	"github.com/tracknest/tracker-go/pkg/utils"
)

type ProjectHandler struct {
	svc *application.ProjectService
}

func NewProjectHandler(svc *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// GetProjects godoc
// @Summary List projects owned by the caller
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	callerID, err := utils.GetExternalIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	projects, err := h.svc.ListProjectsForOwner(callerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if projects == nil {
		projects = []project.Project{}
	}

	c.JSON(http.StatusOK, response.OK(projects))
}

// GetProjectByID godoc
// @Summary Get project by ID with owner and tickets
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} project.Project
// @Failure 404 {object} response.ErrorResponse
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	p, err := h.svc.GetProject(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Project not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreateProject godoc
// @Summary Create a new project
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param project body project.CreateProjectDTO true "Project"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	callerID, err := utils.GetExternalIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input project.CreateProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid or missing title"})
		return
	}

	p, err := h.svc.CreateProject(c, callerID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.OK(p))
}

// UpdateProject godoc
// @Summary Update project title/description
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body project.UpdateProjectDTO true "Fields"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	callerID, err := utils.GetExternalIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input project.UpdateProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.svc.UpdateProject(c, c.Param("id"), callerID, input)
	if err != nil {
		writeProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(p))
}

// DeleteProject godoc
// @Summary Delete a project and all of its tickets
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	callerID, err := utils.GetExternalIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.svc.DeleteProject(c, c.Param("id"), callerID); err != nil {
		writeProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Project deleted successfully"})
}

func writeProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Project not found"})
	case errors.Is(err, application.ErrNotProjectOwner):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Forbidden"})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
