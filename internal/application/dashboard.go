package application

import (
	"github.com/tracknest/tracker-go/internal/repository"
)

// Stats are the derived counts behind the dashboard view, scoped to the
// caller's projects.
type Stats struct {
	Projects   int64            `json:"projects"`
	Tickets    int64            `json:"tickets"`
	ByStatus   map[string]int64 `json:"byStatus"`
	ByPriority map[string]int64 `json:"byPriority"`
}

type DashboardService struct {
	Repos *repository.Repos
}

func NewDashboardService(repos *repository.Repos) *DashboardService {
	return &DashboardService{Repos: repos}
}

func (s *DashboardService) Stats(ownerID string) (Stats, error) {
	projects, err := s.Repos.Project.CountByOwner(ownerID)
	if err != nil {
		return Stats{}, err
	}
	tickets, err := s.Repos.Ticket.CountByProjectOwner(ownerID)
	if err != nil {
		return Stats{}, err
	}
	byStatus, err := s.Repos.Ticket.CountGroupedByColumn(ownerID, "status")
	if err != nil {
		return Stats{}, err
	}
	byPriority, err := s.Repos.Ticket.CountGroupedByColumn(ownerID, "priority")
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		Projects:   projects,
		Tickets:    tickets,
		ByStatus:   byStatus,
		ByPriority: byPriority,
	}, nil
}
