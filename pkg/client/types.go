package client

import "time"

// Wire shapes as served by the API. The cache keeps them verbatim.

type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     string    `json:"ownerId"`
	Tickets     []Ticket  `json:"tickets,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Ticket struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	Priority    string       `json:"priority"`
	ProjectID   string       `json:"projectId"`
	Project     *ProjectRef  `json:"project,omitempty"`
	AssigneeID  *string      `json:"assigneeId,omitempty"`
	Assignee    *AssigneeRef `json:"assignee,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type ProjectRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type AssigneeRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateProjectInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

type UpdateProjectInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CreateTicketInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ProjectID   string `json:"projectId"`
	Status      string `json:"status,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

type UpdateTicketInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	ProjectID   *string `json:"projectId,omitempty"`
	AssigneeID  *string `json:"assigneeId,omitempty"`
}

// TicketFilter holds optional equality filters; empty fields impose no
// constraint.
type TicketFilter struct {
	ProjectID string
	Status    string
	Priority  string
}
