package application

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tracknest/tracker-go/internal/domain/project"
	"github.com/tracknest/tracker-go/internal/repository"
	"github.com/tracknest/tracker-go/pkg/utils"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrNotProjectOwner = errors.New("caller does not own this project")
)

type ProjectService struct {
	Repos *repository.Repos
}

func NewProjectService(repos *repository.Repos) *ProjectService {
	return &ProjectService{Repos: repos}
}

// ListProjectsForOwner returns the caller's projects, tickets attached,
// newest first.
func (s *ProjectService) ListProjectsForOwner(ownerID string) ([]project.Project, error) {
	return s.Repos.Project.ListProjectsByOwner(ownerID)
}

// GetProject is public-by-id: there is deliberately no ownership filter on
// reads, only on mutations.
func (s *ProjectService) GetProject(id string) (project.Project, error) {
	p, err := s.Repos.Project.GetProjectWithRelations(id)
	if err != nil {
		return project.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (s *ProjectService) CreateProject(c *gin.Context, ownerID string, input project.CreateProjectDTO) (project.Project, error) {
	p := project.Project{
		Title:   input.Title,
		OwnerID: ownerID,
	}
	if input.Description != nil {
		p.Description = *input.Description
	}

	err := s.Repos.Project.CreateProject(&p)
	if err == nil {
		utils.LogAuditWithConsole(c, "create", "project", p.ID, nil, p, "", s.Repos.Audit)
	}
	return p, err
}

func (s *ProjectService) UpdateProject(c *gin.Context, id, callerID string, input project.UpdateProjectDTO) (project.Project, error) {
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return project.Project{}, ErrProjectNotFound
	}
	if p.OwnerID != callerID {
		return project.Project{}, ErrNotProjectOwner
	}

	oldProject := p

	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.Description != nil {
		p.Description = *input.Description
	}

	err = s.Repos.Project.UpdateProject(&p)
	if err == nil {
		utils.LogAuditWithConsole(c, "update", "project", p.ID, oldProject, p, "", s.Repos.Audit)
	}
	return p, err
}

// DeleteProject removes the project and every ticket in it as one
// transaction, so a partial failure never leaves orphaned tickets.
func (s *ProjectService) DeleteProject(c *gin.Context, id, callerID string) error {
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return ErrProjectNotFound
	}
	if p.OwnerID != callerID {
		return ErrNotProjectOwner
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Ticket.DeleteTicketsByProject(id); err != nil {
			return err
		}
		return tx.Project.DeleteProject(id)
	})
	if err == nil {
		utils.LogAuditWithConsole(c, "delete", "project", p.ID, p, nil, "", s.Repos.Audit)
	}
	return err
}
