package application_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/tracknest/tracker-go/internal/application"
	"github.com/tracknest/tracker-go/internal/config/db"
	"github.com/tracknest/tracker-go/internal/domain/project"
	"github.com/tracknest/tracker-go/internal/domain/ticket"
	"github.com/tracknest/tracker-go/internal/domain/user"
	"github.com/tracknest/tracker-go/internal/repository"
	"github.com/tracknest/tracker-go/pkg/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupServices wires the full service layer against an in-memory
// database. Audit logging is captured synchronously so tests can assert
// on it without racing the background writer.
func setupServices(t *testing.T) (*application.Services, *repository.Repos, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gormDB, err := gorm.Open(sqlite.Open("file:svc_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	repos := repository.NewRepositories(gormDB)
	svc := application.New(repos)

	orig := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, auditRepo repository.AuditRepo) {
		_ = utils.LogAudit("test-actor", "", "", action, resourceType, resourceID, oldData, newData, msg, auditRepo)
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = orig })

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	return svc, repos, c
}

func mustUser(t *testing.T, repos *repository.Repos, externalID, name, email string) user.User {
	t.Helper()
	u, err := repos.User.UpsertByExternalID(user.Identity{ExternalID: externalID, Name: name, Email: email})
	if err != nil {
		t.Fatalf("user: %v", err)
	}
	return u
}

func mustProject(t *testing.T, repos *repository.Repos, title, ownerID string) project.Project {
	t.Helper()
	p := project.Project{Title: title, OwnerID: ownerID}
	if err := repos.Project.CreateProject(&p); err != nil {
		t.Fatalf("project: %v", err)
	}
	return p
}

func mustTicket(t *testing.T, repos *repository.Repos, title, projectID string, assigneeID *string) ticket.Ticket {
	t.Helper()
	tk := ticket.Ticket{Title: title, ProjectID: projectID, Status: ticket.StatusOpen, Priority: ticket.PriorityMedium, AssigneeID: assigneeID}
	if err := repos.Ticket.CreateTicket(&tk); err != nil {
		t.Fatalf("ticket: %v", err)
	}
	return tk
}
