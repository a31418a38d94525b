package project

import (
	"time"

	"github.com/tracknest/tracker-go/internal/domain/ticket"
	"github.com/tracknest/tracker-go/internal/domain/user"
)

// Project is exclusively owned by its creator. OwnerID holds the owner's
// external user id and is immutable after creation; tickets are
// lifecycle-bound to the project.
type Project struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	Title       string          `gorm:"size:200;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	OwnerID     string          `gorm:"size:64;not null;index" json:"ownerId"`
	Owner       *user.User      `gorm:"foreignKey:OwnerID;references:ExternalID" json:"owner,omitempty"`
	Tickets     []ticket.Ticket `gorm:"foreignKey:ProjectID" json:"tickets,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
