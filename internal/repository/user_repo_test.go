package repository_test

import (
	"testing"

	"github.com/tracknest/tracker-go/internal/domain/ticket"
	"github.com/tracknest/tracker-go/internal/domain/user"
)

func TestUpsertByExternalID(t *testing.T) {
	repos := setupRepos(t)

	created, err := repos.User.UpsertByExternalID(user.Identity{
		ExternalID: "ext-1", Name: "Ada", Email: "ada@example.com",
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}

	updated, err := repos.User.UpsertByExternalID(user.Identity{
		ExternalID: "ext-1", Name: "Ada L.", Email: "ada@new.example.com",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("expected stable id across upserts, got %s then %s", created.ID, updated.ID)
	}
	if updated.Name != "Ada L." || updated.Email != "ada@new.example.com" {
		t.Fatalf("expected refreshed profile, got %+v", updated)
	}
}

func TestDeleteByExternalID(t *testing.T) {
	repos := setupRepos(t)
	seedUser(t, repos, "ext-del", "Gone", "gone@example.com")

	n, err := repos.User.DeleteByExternalID("ext-del")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row removed, got %d", n)
	}

	// Deleting an unknown id is a no-op, not an error.
	n, err = repos.User.DeleteByExternalID("ext-del")
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 rows on repeat delete, got %d", n)
	}
}

func TestClearAssignments(t *testing.T) {
	repos := setupRepos(t)
	owner := seedUser(t, repos, "ext-owner", "Owner", "owner@example.com")
	assignee := seedUser(t, repos, "ext-assignee", "Worker", "worker@example.com")
	p := seedProject(t, repos, "proj", owner.ExternalID)

	tk := ticket.Ticket{Title: "assigned", ProjectID: p.ID, Status: ticket.StatusOpen, Priority: ticket.PriorityLow, AssigneeID: &assignee.ID}
	if err := repos.Ticket.CreateTicket(&tk); err != nil {
		t.Fatalf("create ticket: %v", err)
	}

	if err := repos.User.ClearAssignments(assignee.ID); err != nil {
		t.Fatalf("clear: %v", err)
	}

	got, err := repos.Ticket.GetTicketByID(tk.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.AssigneeID != nil {
		t.Fatalf("expected cleared assignee, got %v", *got.AssigneeID)
	}
}
