package audit

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records one mutation: who did what to which resource, with
// before/after snapshots for updates.
type AuditLog struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	ActorID      string         `gorm:"size:64;index" json:"actorId"`
	Action       string         `gorm:"size:20;not null" json:"action"`
	ResourceType string         `gorm:"size:30;not null;index" json:"resourceType"`
	ResourceID   string         `gorm:"size:64" json:"resourceId"`
	OldData      datatypes.JSON `json:"oldData,omitempty"`
	NewData      datatypes.JSON `json:"newData,omitempty"`
	ClientIP     string         `gorm:"size:45" json:"clientIp"`
	UserAgent    string         `gorm:"size:255" json:"userAgent"`
	Description  string         `gorm:"size:255" json:"description"`
	CreatedAt    time.Time      `json:"createdAt"`
}
