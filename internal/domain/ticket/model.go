package ticket

import (
	"strings"
	"time"

	"github.com/tracknest/tracker-go/internal/domain/user"
)

type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
	StatusClosed     Status = "CLOSED"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Ticket belongs to exactly one project and optionally references an
// assignee. Status and priority are stored uppercase regardless of the
// case they arrived in.
type Ticket struct {
	ID          string      `gorm:"primaryKey;size:36" json:"id"`
	Title       string      `gorm:"size:200;not null" json:"title"`
	Description string      `gorm:"type:text" json:"description"`
	Status      Status      `gorm:"size:20;not null;default:'OPEN';index" json:"status"`
	Priority    Priority    `gorm:"size:20;not null;default:'MEDIUM';index" json:"priority"`
	ProjectID   string      `gorm:"size:36;not null;index" json:"projectId"`
	Project     *ProjectRef `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	AssigneeID  *string     `gorm:"size:36;index" json:"assigneeId"`
	Assignee    *user.User  `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// NormalizeStatus folds the input to uppercase and reports whether it is
// a known status. Empty input falls back to OPEN.
func NormalizeStatus(s string) (Status, bool) {
	if s == "" {
		return StatusOpen, true
	}
	switch st := Status(strings.ToUpper(s)); st {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return st, true
	default:
		return "", false
	}
}

// NormalizePriority folds the input to uppercase and reports whether it is
// a known priority. Empty input falls back to MEDIUM.
func NormalizePriority(p string) (Priority, bool) {
	if p == "" {
		return PriorityMedium, true
	}
	switch pr := Priority(strings.ToUpper(p)); pr {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return pr, true
	default:
		return "", false
	}
}

// ProjectRef is the read-only slice of the projects table attached to
// tickets. Keeping it here avoids an import cycle with the project package.
type ProjectRef struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Title string `json:"title"`
}

func (ProjectRef) TableName() string { return "projects" }
