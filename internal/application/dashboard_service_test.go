package application_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/tracknest/tracker-go/internal/application"
	"github.com/tracknest/tracker-go/internal/repository"
	"github.com/tracknest/tracker-go/internal/repository/mock"
)

func setupDashboardMocks(t *testing.T) (*application.DashboardService, *mock.MockProjectRepo, *mock.MockTicketRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProject := mock.NewMockProjectRepo(ctrl)
	mockTicket := mock.NewMockTicketRepo(ctrl)

	repos := &repository.Repos{
		Project: mockProject,
		Ticket:  mockTicket,
	}
	return application.NewDashboardService(repos), mockProject, mockTicket
}

func TestDashboardStats(t *testing.T) {
	svc, mockProject, mockTicket := setupDashboardMocks(t)

	mockProject.EXPECT().CountByOwner("ext-dash").Return(int64(3), nil)
	mockTicket.EXPECT().CountByProjectOwner("ext-dash").Return(int64(7), nil)
	mockTicket.EXPECT().CountGroupedByColumn("ext-dash", "status").
		Return(map[string]int64{"OPEN": 5, "CLOSED": 2}, nil)
	mockTicket.EXPECT().CountGroupedByColumn("ext-dash", "priority").
		Return(map[string]int64{"HIGH": 1, "MEDIUM": 6}, nil)

	stats, err := svc.Stats("ext-dash")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Projects != 3 || stats.Tickets != 7 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.ByStatus["OPEN"] != 5 || stats.ByPriority["MEDIUM"] != 6 {
		t.Fatalf("unexpected breakdowns: %+v", stats)
	}
}

func TestDashboardStatsPropagatesErrors(t *testing.T) {
	svc, mockProject, _ := setupDashboardMocks(t)

	expected := errors.New("connection refused")
	mockProject.EXPECT().CountByOwner("ext-err").Return(int64(0), expected)

	if _, err := svc.Stats("ext-err"); !errors.Is(err, expected) {
		t.Fatalf("expected underlying error, got %v", err)
	}
}
