package application_test

import (
	"errors"
	"testing"

	"github.com/tracknest/tracker-go/internal/application"
	"github.com/tracknest/tracker-go/internal/domain/ticket"
	"github.com/tracknest/tracker-go/internal/domain/user"
)

func TestCreateTicketProvisionsCaller(t *testing.T) {
	svc, repos, c := setupServices(t)
	owner := mustUser(t, repos, "ext-po", "PO", "po@example.com")
	p := mustProject(t, repos, "board", owner.ExternalID)

	// The caller has never been seen before; no users row exists yet.
	ident := user.Identity{ExternalID: "ext-new", Name: "New Dev", Email: "dev@example.com"}

	created, err := svc.Ticket.CreateTicket(c, ident, ticket.CreateTicketDTO{Title: "first", ProjectID: p.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	provisioned, err := repos.User.GetUserByExternalID("ext-new")
	if err != nil {
		t.Fatalf("expected caller provisioned: %v", err)
	}
	if created.AssigneeID == nil || *created.AssigneeID != provisioned.ID {
		t.Fatalf("expected caller linked as assignee, got %v", created.AssigneeID)
	}
	if created.Status != ticket.StatusOpen || created.Priority != ticket.PriorityMedium {
		t.Fatalf("expected defaults OPEN/MEDIUM, got %s/%s", created.Status, created.Priority)
	}
}

func TestCreateTicketReusesExistingUser(t *testing.T) {
	svc, repos, c := setupServices(t)
	owner := mustUser(t, repos, "ext-po2", "PO", "po2@example.com")
	existing := mustUser(t, repos, "ext-dev", "Dev", "dev2@example.com")
	p := mustProject(t, repos, "board", owner.ExternalID)

	ident := user.Identity{ExternalID: existing.ExternalID, Name: "Dev Renamed", Email: "dev2@example.com"}
	created, err := svc.Ticket.CreateTicket(c, ident, ticket.CreateTicketDTO{Title: "second", ProjectID: p.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.AssigneeID == nil || *created.AssigneeID != existing.ID {
		t.Fatalf("expected existing user reused, got %v", created.AssigneeID)
	}

	refreshed, _ := repos.User.GetUserByExternalID(existing.ExternalID)
	if refreshed.Name != "Dev Renamed" {
		t.Fatalf("expected profile refreshed on touch, got %q", refreshed.Name)
	}
}

func TestCreateTicketNormalizesEnums(t *testing.T) {
	svc, repos, c := setupServices(t)
	owner := mustUser(t, repos, "ext-norm", "Norm", "norm@example.com")
	p := mustProject(t, repos, "board", owner.ExternalID)
	ident := user.Identity{ExternalID: owner.ExternalID, Name: owner.Name, Email: owner.Email}

	created, err := svc.Ticket.CreateTicket(c, ident, ticket.CreateTicketDTO{
		Title: "mixed case", ProjectID: p.ID, Status: "in_progress", Priority: "high",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != ticket.StatusInProgress || created.Priority != ticket.PriorityHigh {
		t.Fatalf("expected IN_PROGRESS/HIGH, got %s/%s", created.Status, created.Priority)
	}
}

func TestCreateTicketRejectsUnknownEnums(t *testing.T) {
	svc, repos, c := setupServices(t)
	owner := mustUser(t, repos, "ext-rej", "Rej", "rej@example.com")
	p := mustProject(t, repos, "board", owner.ExternalID)
	ident := user.Identity{ExternalID: owner.ExternalID, Name: owner.Name, Email: owner.Email}

	_, err := svc.Ticket.CreateTicket(c, ident, ticket.CreateTicketDTO{Title: "x", ProjectID: p.ID, Status: "DONE"})
	if !errors.Is(err, application.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	_, err = svc.Ticket.CreateTicket(c, ident, ticket.CreateTicketDTO{Title: "x", ProjectID: p.ID, Priority: "URGENT"})
	if !errors.Is(err, application.ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestCreateTicketUnknownProject(t *testing.T) {
	svc, _, c := setupServices(t)
	ident := user.Identity{ExternalID: "ext-any", Name: "Any", Email: "any@example.com"}

	_, err := svc.Ticket.CreateTicket(c, ident, ticket.CreateTicketDTO{Title: "orphan", ProjectID: "no-such-project"})
	if !errors.Is(err, application.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestUpdateTicketPartial(t *testing.T) {
	svc, repos, c := setupServices(t)
	owner := mustUser(t, repos, "ext-upd", "Upd", "upd@example.com")
	p := mustProject(t, repos, "board", owner.ExternalID)
	tk := mustTicket(t, repos, "before", p.ID, nil)

	status := "resolved"
	updated, err := svc.Ticket.UpdateTicket(c, tk.ID, ticket.UpdateTicketDTO{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != ticket.StatusResolved {
		t.Fatalf("expected RESOLVED, got %s", updated.Status)
	}
	if updated.Title != "before" {
		t.Fatalf("untouched fields must survive, got title %q", updated.Title)
	}
}

func TestUpdateTicketReferentialChecks(t *testing.T) {
	svc, repos, c := setupServices(t)
	owner := mustUser(t, repos, "ext-ref", "Ref", "ref@example.com")
	p := mustProject(t, repos, "board", owner.ExternalID)
	tk := mustTicket(t, repos, "subject", p.ID, nil)

	badProject := "missing-project"
	if _, err := svc.Ticket.UpdateTicket(c, tk.ID, ticket.UpdateTicketDTO{ProjectID: &badProject}); !errors.Is(err, application.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}

	badAssignee := "missing-user"
	if _, err := svc.Ticket.UpdateTicket(c, tk.ID, ticket.UpdateTicketDTO{AssigneeID: &badAssignee}); !errors.Is(err, application.ErrAssigneeNotFound) {
		t.Fatalf("expected ErrAssigneeNotFound, got %v", err)
	}

	badStatus := "WONTFIX"
	if _, err := svc.Ticket.UpdateTicket(c, tk.ID, ticket.UpdateTicketDTO{Status: &badStatus}); !errors.Is(err, application.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	// The rejected updates must not have partially applied.
	got, _ := repos.Ticket.GetTicketByID(tk.ID)
	if got.ProjectID != p.ID || got.Status != ticket.StatusOpen {
		t.Fatalf("rejected update leaked changes: %+v", got)
	}
}

func TestDeleteTicketPermissions(t *testing.T) {
	svc, repos, c := setupServices(t)
	owner := mustUser(t, repos, "ext-owner", "Owner", "owner@example.com")
	assignee := mustUser(t, repos, "ext-assignee", "Assignee", "as@example.com")
	mustUser(t, repos, "ext-stranger", "Stranger", "st@example.com")
	p := mustProject(t, repos, "board", owner.ExternalID)

	t.Run("stranger denied", func(t *testing.T) {
		tk := mustTicket(t, repos, "guarded", p.ID, &assignee.ID)
		err := svc.Ticket.DeleteTicket(c, tk.ID, "ext-stranger")
		if !errors.Is(err, application.ErrTicketAccessDenied) {
			t.Fatalf("expected ErrTicketAccessDenied, got %v", err)
		}
	})

	t.Run("project owner allowed", func(t *testing.T) {
		tk := mustTicket(t, repos, "by owner", p.ID, &assignee.ID)
		if err := svc.Ticket.DeleteTicket(c, tk.ID, owner.ExternalID); err != nil {
			t.Fatalf("owner delete: %v", err)
		}
	})

	t.Run("assignee allowed", func(t *testing.T) {
		tk := mustTicket(t, repos, "by assignee", p.ID, &assignee.ID)
		if err := svc.Ticket.DeleteTicket(c, tk.ID, assignee.ExternalID); err != nil {
			t.Fatalf("assignee delete: %v", err)
		}
	})

	t.Run("missing ticket", func(t *testing.T) {
		err := svc.Ticket.DeleteTicket(c, "no-such-ticket", owner.ExternalID)
		if !errors.Is(err, application.ErrTicketNotFound) {
			t.Fatalf("expected ErrTicketNotFound, got %v", err)
		}
	})
}

func TestBulkDeleteTickets(t *testing.T) {
	svc, repos, c := setupServices(t)
	owner := mustUser(t, repos, "ext-bulk", "Bulk", "bulk@example.com")
	p := mustProject(t, repos, "board", owner.ExternalID)

	t1 := mustTicket(t, repos, "a", p.ID, nil)
	t2 := mustTicket(t, repos, "b", p.ID, nil)

	if _, err := svc.Ticket.BulkDeleteTickets(c, nil); !errors.Is(err, application.ErrEmptyTicketIDs) {
		t.Fatalf("expected ErrEmptyTicketIDs, got %v", err)
	}

	count, err := svc.Ticket.BulkDeleteTickets(c, []string{t1.ID, t2.ID, "never-existed"})
	if err != nil {
		t.Fatalf("bulk delete: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected count 2 (unknown ids skipped), got %d", count)
	}
}

func TestListTicketsForProject(t *testing.T) {
	svc, repos, _ := setupServices(t)
	owner := mustUser(t, repos, "ext-list", "List", "list@example.com")
	p := mustProject(t, repos, "board", owner.ExternalID)
	mustTicket(t, repos, "visible", p.ID, nil)

	tickets, err := svc.Ticket.ListTicketsForProject(p.ID, ticket.Filter{Status: "open"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tickets) != 1 {
		t.Fatalf("expected 1 ticket (lowercase filter folded), got %d", len(tickets))
	}

	if _, err := svc.Ticket.ListTicketsForProject("missing", ticket.Filter{}); !errors.Is(err, application.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound for unknown project, got %v", err)
	}
}
