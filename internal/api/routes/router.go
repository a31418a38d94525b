package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/tracknest/tracker-go/docs"
	"github.com/tracknest/tracker-go/internal/api/handlers"
	"github.com/tracknest/tracker-go/internal/api/middleware"
	"github.com/tracknest/tracker-go/internal/application"
	"github.com/tracknest/tracker-go/internal/config"
	"github.com/tracknest/tracker-go/internal/repository"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	repos := repository.NewRepositories(db)
	services := application.New(repos)
	h := handlers.New(services, repos, config.WebhookSecret)

	r.GET("/healthz", h.Health.Healthz)
	r.POST("/webhooks", h.Webhook.HandleEvent)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/auth/status", handlers.AuthStatus)

		projects := auth.Group("/projects")
		{
			projects.GET("", h.Project.GetProjects)
			projects.GET("/:id", h.Project.GetProjectByID)
			projects.GET("/:id/tickets", h.Ticket.GetProjectTickets)
			projects.POST("", h.Project.CreateProject)
			projects.PUT("/:id", h.Project.UpdateProject)
			projects.DELETE("/:id", h.Project.DeleteProject)
		}

		tickets := auth.Group("/tickets")
		{
			tickets.GET("", h.Ticket.GetTickets)
			tickets.GET("/:id", h.Ticket.GetTicketByID)
			tickets.POST("", h.Ticket.CreateTicket)
			tickets.POST("/bulk-delete", h.Ticket.BulkDeleteTickets)
			tickets.PUT("/:id", h.Ticket.UpdateTicket)
			tickets.PATCH("/:id", h.Ticket.UpdateTicket)
			tickets.DELETE("/:id", h.Ticket.DeleteTicket)
		}

		dashboard := auth.Group("/dashboard")
		{
			dashboard.GET("/stats", h.Dashboard.GetStats)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", h.Audit.GetAuditLogs)
		}
	}
}
