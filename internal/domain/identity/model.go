package identity

import (
	"time"

	"gorm.io/datatypes"
)

// Event is a processed identity-provider webhook delivery. The unique
// message id makes redelivered events no-ops.
type Event struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	MessageID  string         `gorm:"size:64;not null;uniqueIndex" json:"messageId"`
	Type       string         `gorm:"size:30;not null" json:"type"`
	ExternalID string         `gorm:"size:64;index" json:"externalId"`
	Payload    datatypes.JSON `json:"payload"`
	ReceivedAt time.Time      `gorm:"autoCreateTime" json:"receivedAt"`
}

func (Event) TableName() string { return "identity_events" }
