package handlers

import (
	"github.com/tracknest/tracker-go/internal/application"
	"github.com/tracknest/tracker-go/internal/repository"
)

type Handlers struct {
	Project   *ProjectHandler
	Ticket    *TicketHandler
	Webhook   *WebhookHandler
	Dashboard *DashboardHandler
	Audit     *AuditHandler
	Health    *HealthHandler
}

func New(svc *application.Services, repos *repository.Repos, webhookSecret string) *Handlers {
	return &Handlers{
		Project:   NewProjectHandler(svc.Project),
		Ticket:    NewTicketHandler(svc.Ticket),
		Webhook:   NewWebhookHandler(svc.Webhook, webhookSecret),
		Dashboard: NewDashboardHandler(svc.Dashboard),
		Audit:     NewAuditHandler(svc.Audit),
		Health:    NewHealthHandler(repos),
	}
}
