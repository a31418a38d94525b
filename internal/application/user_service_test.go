package application_test

import (
	"errors"
	"testing"

	"github.com/tracknest/tracker-go/internal/application"
	"github.com/tracknest/tracker-go/internal/domain/user"
)

func TestSyncUpsert(t *testing.T) {
	svc, repos, _ := setupServices(t)

	u, err := svc.User.SyncUpsert(user.Identity{ExternalID: "ext-sync", Name: "Sync", Email: "sync@example.com"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	again, err := svc.User.SyncUpsert(user.Identity{ExternalID: "ext-sync", Name: "Sync Two", Email: "sync@example.com"})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if again.ID != u.ID {
		t.Fatalf("expected stable local id, got %s then %s", u.ID, again.ID)
	}

	stored, err := repos.User.GetUserByExternalID("ext-sync")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if stored.Name != "Sync Two" {
		t.Fatalf("expected refreshed name, got %q", stored.Name)
	}
}

func TestSyncDeleteClearsAssignmentsAndOrphansProjects(t *testing.T) {
	svc, repos, _ := setupServices(t)
	doomed := mustUser(t, repos, "ext-doomed", "Doomed", "doomed@example.com")
	p := mustProject(t, repos, "owned by doomed", doomed.ExternalID)
	tk := mustTicket(t, repos, "assigned to doomed", p.ID, &doomed.ID)

	removed, err := svc.User.SyncDelete("ext-doomed")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 row removed, got %d", removed)
	}

	// The owned project stays, now orphaned.
	if _, err := repos.Project.GetProjectByID(p.ID); err != nil {
		t.Fatalf("project should survive owner deletion: %v", err)
	}

	// The ticket stays but loses its assignee.
	got, err := repos.Ticket.GetTicketByID(tk.ID)
	if err != nil {
		t.Fatalf("ticket should survive: %v", err)
	}
	if got.AssigneeID != nil {
		t.Fatalf("expected assignee cleared, got %v", *got.AssigneeID)
	}
}

func TestSyncDeleteIdempotent(t *testing.T) {
	svc, _, _ := setupServices(t)

	removed, err := svc.User.SyncDelete("ext-never-existed")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed != 0 {
		t.Fatalf("expected 0 rows, got %d", removed)
	}
}

func TestFindByExternalID(t *testing.T) {
	svc, repos, _ := setupServices(t)
	mustUser(t, repos, "ext-find", "Find", "find@example.com")

	if _, err := svc.User.FindByExternalID("ext-find"); err != nil {
		t.Fatalf("find: %v", err)
	}
	if _, err := svc.User.FindByExternalID("ext-ghost"); !errors.Is(err, application.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
