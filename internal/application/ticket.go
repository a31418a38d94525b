package application

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tracknest/tracker-go/internal/domain/ticket"
	"github.com/tracknest/tracker-go/internal/domain/user"
	"github.com/tracknest/tracker-go/internal/repository"
	"github.com/tracknest/tracker-go/pkg/utils"
)

var (
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrAssigneeNotFound   = errors.New("assignee not found")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrInvalidPriority    = errors.New("invalid priority value")
	ErrEmptyTicketIDs     = errors.New("ids must be a non-empty array")
	ErrTicketAccessDenied = errors.New("caller may not delete this ticket")
)

type TicketService struct {
	Repos *repository.Repos
}

func NewTicketService(repos *repository.Repos) *TicketService {
	return &TicketService{Repos: repos}
}

// normalizeFilter uppercases the enum filters. Unknown values are kept
// as-is after folding; they simply match nothing.
func normalizeFilter(filter ticket.Filter) ticket.Filter {
	if filter.Status != "" {
		if st, ok := ticket.NormalizeStatus(filter.Status); ok {
			filter.Status = string(st)
		}
	}
	if filter.Priority != "" {
		if pr, ok := ticket.NormalizePriority(filter.Priority); ok {
			filter.Priority = string(pr)
		}
	}
	return filter
}

func (s *TicketService) ListTickets(filter ticket.Filter) ([]ticket.Ticket, error) {
	return s.Repos.Ticket.ListTickets(normalizeFilter(filter))
}

// ListTicketsForProject verifies the project exists before filtering, so a
// bad project id yields a 404 rather than an empty list.
func (s *TicketService) ListTicketsForProject(projectID string, filter ticket.Filter) ([]ticket.Ticket, error) {
	if _, err := s.Repos.Project.GetProjectByID(projectID); err != nil {
		return nil, ErrProjectNotFound
	}
	filter.ProjectID = projectID
	return s.Repos.Ticket.ListTickets(normalizeFilter(filter))
}

func (s *TicketService) GetTicket(id string) (ticket.Ticket, error) {
	t, err := s.Repos.Ticket.GetTicketWithRelations(id)
	if err != nil {
		return ticket.Ticket{}, ErrTicketNotFound
	}
	return t, nil
}

// CreateTicket provisions the caller's user row if it does not exist yet
// and links it as the default assignee. Both writes share one transaction.
func (s *TicketService) CreateTicket(c *gin.Context, ident user.Identity, input ticket.CreateTicketDTO) (ticket.Ticket, error) {
	status, ok := ticket.NormalizeStatus(input.Status)
	if !ok {
		return ticket.Ticket{}, ErrInvalidStatus
	}
	priority, ok := ticket.NormalizePriority(input.Priority)
	if !ok {
		return ticket.Ticket{}, ErrInvalidPriority
	}

	if _, err := s.Repos.Project.GetProjectByID(input.ProjectID); err != nil {
		return ticket.Ticket{}, ErrProjectNotFound
	}

	var created ticket.Ticket
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		assignee, err := tx.User.UpsertByExternalID(ident)
		if err != nil {
			return err
		}

		created = ticket.Ticket{
			Title:       input.Title,
			Description: input.Description,
			Status:      status,
			Priority:    priority,
			ProjectID:   input.ProjectID,
			AssigneeID:  &assignee.ID,
		}
		return tx.Ticket.CreateTicket(&created)
	})
	if err != nil {
		return ticket.Ticket{}, err
	}

	utils.LogAuditWithConsole(c, "create", "ticket", created.ID, nil, created, "", s.Repos.Audit)
	return s.Repos.Ticket.GetTicketWithRelations(created.ID)
}

func (s *TicketService) UpdateTicket(c *gin.Context, id string, input ticket.UpdateTicketDTO) (ticket.Ticket, error) {
	t, err := s.Repos.Ticket.GetTicketByID(id)
	if err != nil {
		return ticket.Ticket{}, ErrTicketNotFound
	}

	oldTicket := t

	if input.Title != nil {
		t.Title = *input.Title
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.Status != nil {
		status, ok := ticket.NormalizeStatus(*input.Status)
		if !ok {
			return ticket.Ticket{}, ErrInvalidStatus
		}
		t.Status = status
	}
	if input.Priority != nil {
		priority, ok := ticket.NormalizePriority(*input.Priority)
		if !ok {
			return ticket.Ticket{}, ErrInvalidPriority
		}
		t.Priority = priority
	}
	if input.ProjectID != nil {
		if _, err := s.Repos.Project.GetProjectByID(*input.ProjectID); err != nil {
			return ticket.Ticket{}, ErrProjectNotFound
		}
		t.ProjectID = *input.ProjectID
	}
	if input.AssigneeID != nil {
		if _, err := s.Repos.User.GetUserByID(*input.AssigneeID); err != nil {
			return ticket.Ticket{}, ErrAssigneeNotFound
		}
		t.AssigneeID = input.AssigneeID
	}

	// Detach stale preloads so Save writes only the row itself.
	t.Project = nil
	t.Assignee = nil

	if err := s.Repos.Ticket.UpdateTicket(&t); err != nil {
		return ticket.Ticket{}, err
	}

	utils.LogAuditWithConsole(c, "update", "ticket", t.ID, oldTicket, t, "", s.Repos.Audit)
	return s.Repos.Ticket.GetTicketWithRelations(id)
}

// DeleteTicket requires the caller to own the ticket's project or be its
// assignee.
func (s *TicketService) DeleteTicket(c *gin.Context, id, callerID string) error {
	t, err := s.Repos.Ticket.GetTicketWithRelations(id)
	if err != nil {
		return ErrTicketNotFound
	}

	allowed := false
	if p, err := s.Repos.Project.GetProjectByID(t.ProjectID); err == nil && p.OwnerID == callerID {
		allowed = true
	}
	if t.Assignee != nil && t.Assignee.ExternalID == callerID {
		allowed = true
	}
	if !allowed {
		return ErrTicketAccessDenied
	}

	if err := s.Repos.Ticket.DeleteTicket(id); err != nil {
		return err
	}
	utils.LogAuditWithConsole(c, "delete", "ticket", t.ID, t, nil, "", s.Repos.Audit)
	return nil
}

// BulkDeleteTickets skips ids that do not exist; the returned count
// reflects only rows actually removed.
func (s *TicketService) BulkDeleteTickets(c *gin.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrEmptyTicketIDs
	}
	count, err := s.Repos.Ticket.DeleteTicketsByIDs(ids)
	if err != nil {
		return 0, err
	}
	utils.LogAuditWithConsole(c, "bulk-delete", "ticket", "", ids, nil, "", s.Repos.Audit)
	return count, nil
}
