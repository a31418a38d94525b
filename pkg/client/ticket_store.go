package client

import (
	"context"
	"sync"
)

const ticketStorageKey = "ticket-storage"

// TicketStore caches tickets under a fixed filter. The same
// optimistic-with-rollback policy as ProjectStore applies, plus bulk
// deletion.
type TicketStore struct {
	mu          sync.Mutex
	api         *Client
	storage     Storage
	filter      TicketFilter
	tickets     []Ticket
	subscribers map[int]func([]Ticket)
	nextSubID   int
}

func NewTicketStore(api *Client, storage Storage, filter TicketFilter) (*TicketStore, error) {
	s := &TicketStore{
		api:         api,
		storage:     storage,
		filter:      filter,
		subscribers: make(map[int]func([]Ticket)),
	}
	if storage != nil {
		var snapshot []Ticket
		found, err := storage.Load(ticketStorageKey, &snapshot)
		if err != nil {
			return nil, err
		}
		if found {
			s.tickets = snapshot
		}
	}
	return s, nil
}

func (s *TicketStore) Tickets() []Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Ticket(nil), s.tickets...)
}

func (s *TicketStore) Subscribe(fn func([]Ticket)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *TicketStore) setLocked(tickets []Ticket) {
	s.tickets = tickets
	if s.storage != nil {
		_ = s.storage.Save(ticketStorageKey, tickets)
	}
	snapshot := append([]Ticket(nil), tickets...)
	for _, fn := range s.subscribers {
		fn(snapshot)
	}
}

func (s *TicketStore) Refresh(ctx context.Context) error {
	tickets, err := s.api.ListTickets(ctx, s.filter)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.setLocked(tickets)
	s.mu.Unlock()
	return nil
}

func (s *TicketStore) Create(ctx context.Context, input CreateTicketInput) (Ticket, error) {
	created, err := s.api.CreateTicket(ctx, input)
	if err != nil {
		return Ticket{}, err
	}
	s.mu.Lock()
	s.setLocked(append(s.tickets, created))
	s.mu.Unlock()
	return created, nil
}

func (s *TicketStore) Update(ctx context.Context, id string, input UpdateTicketInput) (Ticket, error) {
	s.mu.Lock()
	patched := make([]Ticket, len(s.tickets))
	copy(patched, s.tickets)
	for i := range patched {
		if patched[i].ID != id {
			continue
		}
		if input.Title != nil {
			patched[i].Title = *input.Title
		}
		if input.Description != nil {
			patched[i].Description = *input.Description
		}
		if input.Status != nil {
			patched[i].Status = *input.Status
		}
		if input.Priority != nil {
			patched[i].Priority = *input.Priority
		}
		if input.ProjectID != nil {
			patched[i].ProjectID = *input.ProjectID
		}
		if input.AssigneeID != nil {
			patched[i].AssigneeID = input.AssigneeID
		}
	}
	s.setLocked(patched)
	s.mu.Unlock()

	updated, err := s.api.UpdateTicket(ctx, id, input)
	if err != nil {
		s.rollback(ctx)
		return Ticket{}, err
	}

	s.mu.Lock()
	confirmed := make([]Ticket, len(s.tickets))
	copy(confirmed, s.tickets)
	for i := range confirmed {
		if confirmed[i].ID == id {
			confirmed[i] = updated
		}
	}
	s.setLocked(confirmed)
	s.mu.Unlock()
	return updated, nil
}

func (s *TicketStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	remaining := make([]Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		if t.ID != id {
			remaining = append(remaining, t)
		}
	}
	s.setLocked(remaining)
	s.mu.Unlock()

	if err := s.api.DeleteTicket(ctx, id); err != nil {
		s.rollback(ctx)
		return err
	}
	return nil
}

// BulkDelete removes every matching ticket locally, then asks the server.
// Ids unknown to the server are simply not counted; only a transport or
// authorization failure triggers a rollback.
func (s *TicketStore) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	s.mu.Lock()
	remaining := make([]Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		if !drop[t.ID] {
			remaining = append(remaining, t)
		}
	}
	s.setLocked(remaining)
	s.mu.Unlock()

	count, err := s.api.BulkDeleteTickets(ctx, ids)
	if err != nil {
		s.rollback(ctx)
		return 0, err
	}
	return count, nil
}

func (s *TicketStore) rollback(ctx context.Context) {
	tickets, err := s.api.ListTickets(ctx, s.filter)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.setLocked(tickets)
	s.mu.Unlock()
}
