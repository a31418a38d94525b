package user

import "time"

// User mirrors an identity-provider account. Rows are created lazily on
// first need (ticket creation, webhook sync), never through a signup flow.
type User struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	ExternalID string    `gorm:"size:64;not null;uniqueIndex" json:"externalId"`
	Name       string    `gorm:"size:100" json:"name"`
	Email      string    `gorm:"size:100" json:"email"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Summary is the assignee shape attached to tickets.
type Summary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) ToSummary() Summary {
	return Summary{ID: u.ID, Name: u.Name, Email: u.Email}
}
