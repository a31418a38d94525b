package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is a minimal in-memory rendition of the tracker endpoints the
// stores exercise.
type fakeAPI struct {
	mu         sync.Mutex
	projects   map[string]Project
	tickets    map[string]Ticket
	nextID     int
	denyDelete bool
	denyUpdate bool
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{projects: make(map[string]Project), tickets: make(map[string]Ticket), nextID: 1}
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /projects", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		list := make([]Project, 0, len(f.projects))
		for _, p := range f.projects {
			list = append(list, p)
		}
		f.mu.Unlock()
		writeData(w, http.StatusOK, list)
	})

	mux.HandleFunc("POST /projects", func(w http.ResponseWriter, r *http.Request) {
		var input CreateProjectInput
		_ = json.NewDecoder(r.Body).Decode(&input)
		f.mu.Lock()
		p := Project{ID: f.newID(), Title: input.Title}
		if input.Description != nil {
			p.Description = *input.Description
		}
		f.projects[p.ID] = p
		f.mu.Unlock()
		writeData(w, http.StatusCreated, p)
	})

	mux.HandleFunc("PUT /projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		if f.denyUpdate {
			writeError(w, http.StatusForbidden, "Forbidden")
			return
		}
		var input UpdateProjectInput
		_ = json.NewDecoder(r.Body).Decode(&input)
		f.mu.Lock()
		p := f.projects[r.PathValue("id")]
		if input.Title != nil {
			p.Title = *input.Title
		}
		f.projects[p.ID] = p
		f.mu.Unlock()
		writeData(w, http.StatusOK, p)
	})

	mux.HandleFunc("DELETE /projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		if f.denyDelete {
			writeError(w, http.StatusForbidden, "Forbidden")
			return
		}
		f.mu.Lock()
		delete(f.projects, r.PathValue("id"))
		f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Project deleted successfully"})
	})

	mux.HandleFunc("GET /tickets", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		list := make([]Ticket, 0, len(f.tickets))
		for _, t := range f.tickets {
			list = append(list, t)
		}
		f.mu.Unlock()
		writeData(w, http.StatusOK, list)
	})

	mux.HandleFunc("POST /tickets", func(w http.ResponseWriter, r *http.Request) {
		var input CreateTicketInput
		_ = json.NewDecoder(r.Body).Decode(&input)
		f.mu.Lock()
		t := Ticket{ID: f.newID(), Title: input.Title, ProjectID: input.ProjectID, Status: "OPEN", Priority: "MEDIUM"}
		f.tickets[t.ID] = t
		f.mu.Unlock()
		writeData(w, http.StatusCreated, t)
	})

	mux.HandleFunc("POST /tickets/bulk-delete", func(w http.ResponseWriter, r *http.Request) {
		var input struct {
			IDs []string `json:"ids"`
		}
		_ = json.NewDecoder(r.Body).Decode(&input)
		f.mu.Lock()
		var count int64
		for _, id := range input.IDs {
			if _, ok := f.tickets[id]; ok {
				delete(f.tickets, id)
				count++
			}
		}
		f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "deletedCount": count})
	})

	return mux
}

// newID must be called with f.mu held.
func (f *fakeAPI) newID() string {
	id := f.nextID
	f.nextID++
	return fmt.Sprintf("id-%d", id)
}

func writeData(w http.ResponseWriter, code int, data interface{}) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": data})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func setupStoreTest(t *testing.T) (*fakeAPI, *Client) {
	t.Helper()
	api := newFakeAPI()
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	return api, New(srv.URL, "test-token", srv.Client())
}

func TestProjectStoreCreateAppendsServerRecord(t *testing.T) {
	_, c := setupStoreTest(t)
	store, err := NewProjectStore(c, nil)
	require.NoError(t, err)

	created, err := store.Create(context.Background(), CreateProjectInput{Title: "from store"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "server-assigned id must land in the cache")

	cached := store.Projects()
	require.Len(t, cached, 1)
	assert.Equal(t, created.ID, cached[0].ID)
}

func TestProjectStoreOptimisticDeleteRollsBack(t *testing.T) {
	api, c := setupStoreTest(t)
	store, err := NewProjectStore(c, nil)
	require.NoError(t, err)

	p, err := store.Create(context.Background(), CreateProjectInput{Title: "sticky"})
	require.NoError(t, err)

	api.denyDelete = true
	err = store.Delete(context.Background(), p.ID)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)

	// The optimistic removal must have been rolled back from the server.
	cached := store.Projects()
	require.Len(t, cached, 1)
	assert.Equal(t, p.ID, cached[0].ID)
}

func TestProjectStoreOptimisticUpdateRollsBack(t *testing.T) {
	api, c := setupStoreTest(t)
	store, err := NewProjectStore(c, nil)
	require.NoError(t, err)

	p, err := store.Create(context.Background(), CreateProjectInput{Title: "original"})
	require.NoError(t, err)

	api.denyUpdate = true
	title := "hijacked"
	_, err = store.Update(context.Background(), p.ID, UpdateProjectInput{Title: &title})
	require.Error(t, err)

	cached := store.Projects()
	require.Len(t, cached, 1)
	assert.Equal(t, "original", cached[0].Title)
}

func TestProjectStoreSubscribe(t *testing.T) {
	_, c := setupStoreTest(t)
	store, err := NewProjectStore(c, nil)
	require.NoError(t, err)

	var calls int
	unsubscribe := store.Subscribe(func([]Project) { calls++ })

	_, err = store.Create(context.Background(), CreateProjectInput{Title: "one"})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	unsubscribe()
	_, err = store.Create(context.Background(), CreateProjectInput{Title: "two"})
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "unsubscribed callbacks must not fire")
}

func TestProjectStorePersistsAcrossInstances(t *testing.T) {
	_, c := setupStoreTest(t)
	storage := NewMemoryStorage()

	first, err := NewProjectStore(c, storage)
	require.NoError(t, err)
	_, err = first.Create(context.Background(), CreateProjectInput{Title: "durable"})
	require.NoError(t, err)

	// A fresh store over the same storage starts from the snapshot
	// without any network traffic.
	second, err := NewProjectStore(c, storage)
	require.NoError(t, err)
	cached := second.Projects()
	require.Len(t, cached, 1)
	assert.Equal(t, "durable", cached[0].Title)
}

func TestTicketStoreBulkDelete(t *testing.T) {
	_, c := setupStoreTest(t)
	store, err := NewTicketStore(c, nil, TicketFilter{})
	require.NoError(t, err)

	t1, err := store.Create(context.Background(), CreateTicketInput{Title: "a", ProjectID: "p1"})
	require.NoError(t, err)
	t2, err := store.Create(context.Background(), CreateTicketInput{Title: "b", ProjectID: "p1"})
	require.NoError(t, err)

	count, err := store.BulkDelete(context.Background(), []string{t1.ID, t2.ID, "ghost"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count, "unknown ids are skipped, not counted")
	assert.Empty(t, store.Tickets())
}

func TestTicketStoreRefresh(t *testing.T) {
	api, c := setupStoreTest(t)
	store, err := NewTicketStore(c, nil, TicketFilter{})
	require.NoError(t, err)

	api.mu.Lock()
	api.tickets["srv-1"] = Ticket{ID: "srv-1", Title: "server side", Status: "OPEN", Priority: "LOW"}
	api.mu.Unlock()

	require.NoError(t, store.Refresh(context.Background()))
	cached := store.Tickets()
	require.Len(t, cached, 1)
	assert.Equal(t, "srv-1", cached[0].ID)
}
