package application

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/tracknest/tracker-go/internal/domain/identity"
	"github.com/tracknest/tracker-go/internal/domain/user"
	"github.com/tracknest/tracker-go/internal/repository"
)

var ErrMalformedEvent = errors.New("malformed webhook event")

type WebhookService struct {
	Repos *repository.Repos
	users *UserService
}

func NewWebhookService(repos *repository.Repos, users *UserService) *WebhookService {
	return &WebhookService{Repos: repos, users: users}
}

// HandleEvent applies one verified identity-provider event. Redelivered
// message ids are acknowledged without reapplying. Event record and user
// mutation commit together.
func (s *WebhookService) HandleEvent(messageID string, payload []byte) error {
	var ev identity.WebhookEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return ErrMalformedEvent
	}

	seen, err := s.Repos.Identity.EventSeen(messageID)
	if err != nil {
		return err
	}
	if seen {
		log.Printf("Webhook %s already processed, skipping", messageID)
		return nil
	}

	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		record := &identity.Event{
			MessageID:  messageID,
			Type:       ev.Type,
			ExternalID: ev.Data.ID,
			Payload:    payload,
		}
		if err := tx.Identity.RecordEvent(record); err != nil {
			return err
		}

		switch ev.Type {
		case identity.EventUserCreated, identity.EventUserUpdated:
			ident := user.Identity{
				ExternalID: ev.Data.ID,
				Name:       ev.Data.DisplayName(),
				Email:      ev.Data.PrimaryEmail(),
			}
			_, err := tx.User.UpsertByExternalID(ident)
			return err
		case identity.EventUserDeleted:
			u, err := tx.User.GetUserByExternalID(ev.Data.ID)
			if err == nil {
				if err := tx.User.ClearAssignments(u.ID); err != nil {
					return err
				}
			}
			_, err = tx.User.DeleteByExternalID(ev.Data.ID)
			return err
		default:
			// Unknown lifecycle events are recorded and ignored.
			log.Printf("Ignoring webhook event type %q", ev.Type)
			return nil
		}
	})
}
