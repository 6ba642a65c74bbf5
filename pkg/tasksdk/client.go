package tasksdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client talks to the TaskManager API. It handles the unauthenticated
// endpoints and creates authenticated Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new API client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Signup registers a new account and returns an authenticated session.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*Session, error) {
	resp, err := c.doJSONRequest(ctx, http.MethodPost, "/v1/auth/signup", SignupRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var auth AuthResponse
	if err := decodeJSON(resp, &auth, http.StatusCreated); err != nil {
		return nil, err
	}

	return newSession(c, auth), nil
}

// Login authenticates with email and password and returns a session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.doJSONRequest(ctx, http.MethodPost, "/v1/auth/login", LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var auth AuthResponse
	if err := decodeJSON(resp, &auth, http.StatusOK); err != nil {
		return nil, err
	}

	return newSession(c, auth), nil
}

// NewSessionFromToken builds a session from a token obtained elsewhere
// (e.g. persisted from a previous login). The cached identity is empty until
// the first Me call fills it in.
func (c *Client) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}
