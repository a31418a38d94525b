package identity

import "strings"

// Lifecycle event types emitted by the identity provider.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)

// WebhookEvent is the wire shape of an identity-provider lifecycle event.
type WebhookEvent struct {
	Type string           `json:"type"`
	Data WebhookEventData `json:"data"`
}

type WebhookEventData struct {
	ID             string         `json:"id"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	EmailAddresses []EmailAddress `json:"email_addresses"`
}

type EmailAddress struct {
	EmailAddress string `json:"email_address"`
}

// DisplayName joins first and last name, trimming the join artifacts when
// either part is missing.
func (d WebhookEventData) DisplayName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}

// PrimaryEmail returns the first listed address, or "" if none.
func (d WebhookEventData) PrimaryEmail() string {
	if len(d.EmailAddresses) == 0 {
		return ""
	}
	return d.EmailAddresses[0].EmailAddress
}
