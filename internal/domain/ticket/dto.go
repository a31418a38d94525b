package ticket

type CreateTicketDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ProjectID   string `json:"projectId" binding:"required"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

type UpdateTicketDTO struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	ProjectID   *string `json:"projectId,omitempty"`
	AssigneeID  *string `json:"assigneeId,omitempty"`
}

type BulkDeleteDTO struct {
	IDs []string `json:"ids" binding:"required"`
}

// Filter holds the optional equality filters for ticket listings. Empty
// fields impose no constraint.
type Filter struct {
	ProjectID string `form:"projectId"`
	Status    string `form:"status"`
	Priority  string `form:"priority"`
}
