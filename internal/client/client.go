// Package client is the session holder for the contact-form API. It mirrors
// the web front end's auth context: it persists the token between runs,
// attaches it to every call, and rehydrates the signed-in user on startup.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// State describes the session. Dependents should not render protected
// content or redirect while the state is StateLoading.
type State int

const (
	StateLoading State = iota
	StateAnonymous
	StateAuthenticated
)

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Contact struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// ContactInput carries the writable contact fields. On update, empty fields
// are left unchanged by the server.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// APIError is a non-2xx response; Message is the server's message verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  *TokenFile

	mu    sync.RWMutex
	state State
	token string
	user  *User
}

// New returns a client in StateLoading; call Init to settle the session.
func New(baseURL string, tokens *TokenFile) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		tokens:  tokens,
		state:   StateLoading,
	}
}

// Init restores a persisted session if one exists. A stale token is cleared
// rather than reported as an error; the session just comes up anonymous.
func (c *Client) Init(ctx context.Context) error {
	stored, err := c.tokens.Load()
	if err != nil || stored == "" {
		c.setSession("", nil, StateAnonymous)
		return err
	}

	c.mu.Lock()
	c.token = stored
	c.mu.Unlock()

	user, err := c.Me(ctx)
	if err != nil {
		_ = c.tokens.Clear()
		c.setSession("", nil, StateAnonymous)
		return nil
	}

	c.setSession(stored, user, StateAuthenticated)
	return nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*User, error) {
	body := map[string]string{"username": username, "password": password}
	return c.authenticate(ctx, "/api/auth/login", body)
}

func (c *Client) Register(ctx context.Context, username, password, role string) (*User, error) {
	body := map[string]string{"username": username, "password": password, "role": role}
	return c.authenticate(ctx, "/api/auth/register", body)
}

// authenticate leaves the session untouched on failure.
func (c *Client) authenticate(ctx context.Context, path string, body map[string]string) (*User, error) {
	var resp struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, err
	}

	if err := c.tokens.Save(resp.Token); err != nil {
		return nil, err
	}
	c.setSession(resp.Token, &resp.User, StateAuthenticated)
	return &resp.User, nil
}

// Logout clears the persisted token and in-memory user. No network call.
func (c *Client) Logout() error {
	err := c.tokens.Clear()
	c.setSession("", nil, StateAnonymous)
	return err
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) SubmitContact(ctx context.Context, input ContactInput) (*Contact, error) {
	var resp struct {
		Contact Contact `json:"contact"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/contacts", input, &resp); err != nil {
		return nil, err
	}
	return &resp.Contact, nil
}

func (c *Client) Contacts(ctx context.Context) ([]Contact, int, error) {
	var resp struct {
		Contacts []Contact `json:"contacts"`
		Count    int       `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/contacts", nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Contacts, resp.Count, nil
}

func (c *Client) Contact(ctx context.Context, id string) (*Contact, error) {
	var resp struct {
		Contact Contact `json:"contact"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/contacts/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Contact, nil
}

func (c *Client) UpdateContact(ctx context.Context, id string, input ContactInput) (*Contact, error) {
	var resp struct {
		Contact Contact `json:"contact"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/contacts/"+id, input, &resp); err != nil {
		return nil, err
	}
	return &resp.Contact, nil
}

func (c *Client) DeleteContact(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/contacts/"+id, nil, nil)
}

func (c *Client) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// CurrentUser returns the rehydrated profile, or nil when anonymous.
func (c *Client) CurrentUser() *User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return nil
	}
	user := *c.user
	return &user
}

func (c *Client) setSession(token string, user *User, state State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.user = user
	c.state = state
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		var failure struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(res.Body).Decode(&failure)
		if failure.Message == "" {
			failure.Message = res.Status
		}
		return &APIError{Status: res.StatusCode, Message: failure.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
