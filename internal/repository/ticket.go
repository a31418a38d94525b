package repository

import (
	"github.com/google/uuid"
	"github.com/tracknest/tracker-go/internal/domain/ticket"
	"gorm.io/gorm"
)

type TicketRepo interface {
	GetTicketByID(id string) (ticket.Ticket, error)
	GetTicketWithRelations(id string) (ticket.Ticket, error)
	ListTickets(filter ticket.Filter) ([]ticket.Ticket, error)
	CreateTicket(t *ticket.Ticket) error
	UpdateTicket(t *ticket.Ticket) error
	DeleteTicket(id string) error
	DeleteTicketsByProject(projectID string) error
	DeleteTicketsByIDs(ids []string) (int64, error)
	CountByProjectOwner(ownerID string) (int64, error)
	CountGroupedByColumn(ownerID, column string) (map[string]int64, error)
	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{db: db}
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	return &DBTicketRepo{db: tx}
}

func (r *DBTicketRepo) GetTicketByID(id string) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.db.First(&t, "id = ?", id).Error
	return t, err
}

func (r *DBTicketRepo) GetTicketWithRelations(id string) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.db.Preload("Project").Preload("Assignee").First(&t, "id = ?", id).Error
	return t, err
}

func (r *DBTicketRepo) ListTickets(filter ticket.Filter) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	query := r.db.Preload("Project").Preload("Assignee")
	if filter.ProjectID != "" {
		query = query.Where("project_id = ?", filter.ProjectID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	err := query.Order("created_at desc").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) CreateTicket(t *ticket.Ticket) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return r.db.Create(t).Error
}

func (r *DBTicketRepo) UpdateTicket(t *ticket.Ticket) error {
	return r.db.Save(t).Error
}

func (r *DBTicketRepo) DeleteTicket(id string) error {
	return r.db.Delete(&ticket.Ticket{}, "id = ?", id).Error
}

func (r *DBTicketRepo) DeleteTicketsByProject(projectID string) error {
	return r.db.Where("project_id = ?", projectID).Delete(&ticket.Ticket{}).Error
}

// DeleteTicketsByIDs removes every row whose id is in the set and reports
// how many actually existed.
func (r *DBTicketRepo) DeleteTicketsByIDs(ids []string) (int64, error) {
	res := r.db.Where("id IN ?", ids).Delete(&ticket.Ticket{})
	return res.RowsAffected, res.Error
}

func (r *DBTicketRepo) CountByProjectOwner(ownerID string) (int64, error) {
	var n int64
	err := r.db.Model(&ticket.Ticket{}).
		Joins("JOIN projects ON projects.id = tickets.project_id").
		Where("projects.owner_id = ?", ownerID).
		Count(&n).Error
	return n, err
}

// CountGroupedByColumn returns ticket counts for the caller's projects
// grouped by status or priority.
func (r *DBTicketRepo) CountGroupedByColumn(ownerID, column string) (map[string]int64, error) {
	type row struct {
		Key   string
		Count int64
	}
	var rows []row
	err := r.db.Model(&ticket.Ticket{}).
		Select("tickets."+column+" as key, count(*) as count").
		Joins("JOIN projects ON projects.id = tickets.project_id").
		Where("projects.owner_id = ?", ownerID).
		Group("tickets." + column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Key] = r.Count
	}
	return counts, nil
}
