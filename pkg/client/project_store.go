package client

import (
	"context"
	"sync"
)

const projectStorageKey = "project-storage"

// ProjectStore caches the caller's projects. Reads come from memory;
// mutations go through the API, with deletes and updates applied
// optimistically and rolled back by refetching when the server refuses.
type ProjectStore struct {
	mu          sync.Mutex
	api         *Client
	storage     Storage
	projects    []Project
	subscribers map[int]func([]Project)
	nextSubID   int
}

// NewProjectStore restores any persisted snapshot before returning.
// storage may be nil for a purely in-memory store.
func NewProjectStore(api *Client, storage Storage) (*ProjectStore, error) {
	s := &ProjectStore{
		api:         api,
		storage:     storage,
		subscribers: make(map[int]func([]Project)),
	}
	if storage != nil {
		var snapshot []Project
		found, err := storage.Load(projectStorageKey, &snapshot)
		if err != nil {
			return nil, err
		}
		if found {
			s.projects = snapshot
		}
	}
	return s, nil
}

// Projects returns a copy of the cached list.
func (s *ProjectStore) Projects() []Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Project(nil), s.projects...)
}

// Subscribe registers fn to run after every state change. The returned
// function removes the subscription.
func (s *ProjectStore) Subscribe(fn func([]Project)) func() {
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

// setLocked replaces the state, persists it and notifies subscribers.
// Callers must hold s.mu.
func (s *ProjectStore) setLocked(projects []Project) {
	s.projects = projects
	if s.storage != nil {
		// Persistence failures leave the in-memory state authoritative.
		_ = s.storage.Save(projectStorageKey, projects)
	}
	snapshot := append([]Project(nil), projects...)
	for _, fn := range s.subscribers {
		fn(snapshot)
	}
}

// Refresh replaces the cache with the server's current list.
func (s *ProjectStore) Refresh(ctx context.Context) error {
	projects, err := s.api.ListProjects(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.setLocked(projects)
	s.mu.Unlock()
	return nil
}

// Create posts the project and appends the server's record, so generated
// fields (id, timestamps) are immediately correct.
func (s *ProjectStore) Create(ctx context.Context, input CreateProjectInput) (Project, error) {
	created, err := s.api.CreateProject(ctx, input)
	if err != nil {
		return Project{}, err
	}
	s.mu.Lock()
	s.setLocked(append(s.projects, created))
	s.mu.Unlock()
	return created, nil
}

// Update applies the patch locally first, then confirms with the server.
// On failure the cache is rebuilt from the server.
func (s *ProjectStore) Update(ctx context.Context, id string, input UpdateProjectInput) (Project, error) {
	s.mu.Lock()
	patched := make([]Project, len(s.projects))
	copy(patched, s.projects)
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
	}
	s.setLocked(patched)
	s.mu.Unlock()

	updated, err := s.api.UpdateProject(ctx, id, input)
	if err != nil {
		s.rollback(ctx)
		return Project{}, err
	}

	s.mu.Lock()
	confirmed := make([]Project, len(s.projects))
	copy(confirmed, s.projects)
	for i := range confirmed {
		if confirmed[i].ID == id {
			confirmed[i] = updated
		}
	}
	s.setLocked(confirmed)
	s.mu.Unlock()
	return updated, nil
}

// Delete removes the project locally first. If the server rejects the
// delete the cache is rebuilt from the server.
func (s *ProjectStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	remaining := make([]Project, 0, len(s.projects))
	for _, p := range s.projects {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	s.setLocked(remaining)
	s.mu.Unlock()

	if err := s.api.DeleteProject(ctx, id); err != nil {
		s.rollback(ctx)
		return err
	}
	return nil
}

func (s *ProjectStore) rollback(ctx context.Context) {
	projects, err := s.api.ListProjects(ctx)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.setLocked(projects)
	s.mu.Unlock()
}
