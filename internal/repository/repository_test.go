package repository_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/tracknest/tracker-go/internal/config/db"
	"github.com/tracknest/tracker-go/internal/domain/project"
	"github.com/tracknest/tracker-go/internal/domain/ticket"
	"github.com/tracknest/tracker-go/internal/domain/user"
	"github.com/tracknest/tracker-go/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRepos(t *testing.T) *repository.Repos {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open("file:repo_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repository.NewRepositories(gormDB)
}

func seedUser(t *testing.T, repos *repository.Repos, externalID, name, email string) user.User {
	t.Helper()
	u, err := repos.User.UpsertByExternalID(user.Identity{ExternalID: externalID, Name: name, Email: email})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedProject(t *testing.T, repos *repository.Repos, title, ownerID string) project.Project {
	t.Helper()
	p := project.Project{Title: title, OwnerID: ownerID}
	if err := repos.Project.CreateProject(&p); err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return p
}

func seedTicket(t *testing.T, repos *repository.Repos, title, projectID string, status ticket.Status, priority ticket.Priority) ticket.Ticket {
	t.Helper()
	tk := ticket.Ticket{Title: title, ProjectID: projectID, Status: status, Priority: priority}
	if err := repos.Ticket.CreateTicket(&tk); err != nil {
		t.Fatalf("seed ticket: %v", err)
	}
	return tk
}

func TestExecTxRollsBackOnError(t *testing.T) {
	repos := setupRepos(t)
	owner := seedUser(t, repos, "ext-tx", "Tx Owner", "tx@example.com")
	p := seedProject(t, repos, "tx project", owner.ExternalID)
	seedTicket(t, repos, "t1", p.ID, ticket.StatusOpen, ticket.PriorityLow)

	err := repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Ticket.DeleteTicketsByProject(p.ID); err != nil {
			return err
		}
		return errors.New("forced failure")
	})
	if err == nil {
		t.Fatalf("expected error from tx")
	}

	tickets, err := repos.Ticket.ListTickets(ticket.Filter{ProjectID: p.ID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tickets) != 1 {
		t.Fatalf("expected rollback to keep 1 ticket, got %d", len(tickets))
	}
}

func TestExecTxCommits(t *testing.T) {
	repos := setupRepos(t)
	owner := seedUser(t, repos, "ext-tx2", "Tx Owner", "tx2@example.com")
	p := seedProject(t, repos, "tx project", owner.ExternalID)
	seedTicket(t, repos, "t1", p.ID, ticket.StatusOpen, ticket.PriorityLow)

	err := repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Ticket.DeleteTicketsByProject(p.ID); err != nil {
			return err
		}
		return tx.Project.DeleteProject(p.ID)
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}

	if _, err := repos.Project.GetProjectByID(p.ID); err == nil {
		t.Fatalf("expected project gone")
	}
	tickets, _ := repos.Ticket.ListTickets(ticket.Filter{ProjectID: p.ID})
	if len(tickets) != 0 {
		t.Fatalf("expected no tickets, got %d", len(tickets))
	}
}

func TestCreateProjectAssignsID(t *testing.T) {
	repos := setupRepos(t)
	owner := seedUser(t, repos, "ext-id", "Owner", "o@example.com")
	p := seedProject(t, repos, "anything", owner.ExternalID)
	if p.ID == "" {
		t.Fatalf("expected generated id")
	}
	if _, err := uuid.Parse(p.ID); err != nil {
		t.Fatalf("expected uuid id, got %q", p.ID)
	}
}
