package application

import (
	"github.com/tracknest/tracker-go/internal/repository"
)

type Services struct {
	Audit     *AuditService
	Project   *ProjectService
	Ticket    *TicketService
	User      *UserService
	Webhook   *WebhookService
	Dashboard *DashboardService
}

func New(repos *repository.Repos) *Services {
	userSvc := NewUserService(repos)
	return &Services{
		Audit:     NewAuditService(repos),
		Project:   NewProjectService(repos),
		Ticket:    NewTicketService(repos),
		User:      userSvc,
		Webhook:   NewWebhookService(repos, userSvc),
		Dashboard: NewDashboardService(repos),
	}
}
