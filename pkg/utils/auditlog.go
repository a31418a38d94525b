package utils

import (
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/tracknest/tracker-go/internal/domain/audit"
	"github.com/tracknest/tracker-go/internal/repository"
)

// LogAuditWithConsole records a mutation with request metadata. The DB
// write happens in the background so it never delays the response.
var LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repository.AuditRepo) {
	actorID := ""
	ip := ""
	ua := ""
	if c != nil {
		actorID, _ = GetExternalIDFromContext(c)
		ip = c.ClientIP()
		ua = c.GetHeader("User-Agent")
	}

	go func() {
		if err := LogAudit(actorID, ip, ua, action, resourceType, resourceID, oldData, newData, msg, repos); err != nil {
			log.Printf("[LogAudit] error: %v", err)
		}
	}()
}

var LogAudit = func(
	actorID string,
	ip string,
	ua string,
	action string,
	resourceType string,
	resourceID string,
	before any,
	after any,
	description string,
	repos repository.AuditRepo,
) error {
	var oldData, newData []byte
	var err error

	if before != nil {
		oldData, err = json.Marshal(before)
		if err != nil {
			log.Printf("Audit marshal oldData error: %v", err)
		}
	}
	if after != nil {
		newData, err = json.Marshal(after)
		if err != nil {
			log.Printf("Audit marshal newData error: %v", err)
		}
	}

	entry := &audit.AuditLog{
		ActorID:      actorID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      oldData,
		NewData:      newData,
		ClientIP:     ip,
		UserAgent:    ua,
		Description:  description,
	}
	return repos.CreateAuditLog(entry)
}
