// Package client is the process-local state cache over the tracker API:
// an HTTP client plus project/ticket stores with optimistic mutations and
// durable local persistence.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// APIError carries the server's error envelope and status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client talks to the tracker API. The http.Client is injected so tests
// and callers control timeouts and transports.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, token: token, http: httpClient}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var env envelope
		msg := http.StatusText(resp.StatusCode)
		if json.Unmarshal(data, &env) == nil && env.Error != "" {
			msg = env.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}

// unwrap decodes a {success, data} envelope into out.
func (c *Client) unwrap(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var env envelope
	if err := c.do(ctx, method, path, query, body, &env); err != nil {
		return err
	}
	if out != nil && env.Data != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	err := c.unwrap(ctx, http.MethodGet, "/projects", nil, nil, &projects)
	return projects, err
}

// GetProject returns a single project with owner and tickets attached.
func (c *Client) GetProject(ctx context.Context, id string) (Project, error) {
	var p Project
	err := c.do(ctx, http.MethodGet, "/projects/"+id, nil, nil, &p)
	return p, err
}

func (c *Client) CreateProject(ctx context.Context, input CreateProjectInput) (Project, error) {
	var p Project
	err := c.unwrap(ctx, http.MethodPost, "/projects", nil, input, &p)
	return p, err
}

func (c *Client) UpdateProject(ctx context.Context, id string, input UpdateProjectInput) (Project, error) {
	var p Project
	err := c.unwrap(ctx, http.MethodPut, "/projects/"+id, nil, input, &p)
	return p, err
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/projects/"+id, nil, nil, nil)
}

func ticketQuery(filter TicketFilter) url.Values {
	query := url.Values{}
	if filter.ProjectID != "" {
		query.Set("projectId", filter.ProjectID)
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Priority != "" {
		query.Set("priority", filter.Priority)
	}
	return query
}

func (c *Client) ListTickets(ctx context.Context, filter TicketFilter) ([]Ticket, error) {
	var tickets []Ticket
	err := c.unwrap(ctx, http.MethodGet, "/tickets", ticketQuery(filter), nil, &tickets)
	return tickets, err
}

func (c *Client) ListProjectTickets(ctx context.Context, projectID string, filter TicketFilter) ([]Ticket, error) {
	filter.ProjectID = ""
	var tickets []Ticket
	err := c.unwrap(ctx, http.MethodGet, "/projects/"+projectID+"/tickets", ticketQuery(filter), nil, &tickets)
	return tickets, err
}

func (c *Client) GetTicket(ctx context.Context, id string) (Ticket, error) {
	var t Ticket
	err := c.unwrap(ctx, http.MethodGet, "/tickets/"+id, nil, nil, &t)
	return t, err
}

func (c *Client) CreateTicket(ctx context.Context, input CreateTicketInput) (Ticket, error) {
	var t Ticket
	err := c.unwrap(ctx, http.MethodPost, "/tickets", nil, input, &t)
	return t, err
}

func (c *Client) UpdateTicket(ctx context.Context, id string, input UpdateTicketInput) (Ticket, error) {
	var t Ticket
	err := c.unwrap(ctx, http.MethodPut, "/tickets/"+id, nil, input, &t)
	return t, err
}

func (c *Client) DeleteTicket(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tickets/"+id, nil, nil, nil)
}

// Stats are the dashboard counts scoped to the token's identity.
type Stats struct {
	Projects   int64            `json:"projects"`
	Tickets    int64            `json:"tickets"`
	ByStatus   map[string]int64 `json:"byStatus"`
	ByPriority map[string]int64 `json:"byPriority"`
}

func (c *Client) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	err := c.unwrap(ctx, http.MethodGet, "/dashboard/stats", nil, nil, &s)
	return s, err
}

// BulkDeleteTickets returns how many of the ids actually existed and were
// removed.
func (c *Client) BulkDeleteTickets(ctx context.Context, ids []string) (int64, error) {
	var out struct {
		Success      bool  `json:"success"`
		DeletedCount int64 `json:"deletedCount"`
	}
	err := c.do(ctx, http.MethodPost, "/tickets/bulk-delete", nil, map[string][]string{"ids": ids}, &out)
	return out.DeletedCount, err
}
