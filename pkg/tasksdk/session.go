package tasksdk

import (
	"context"
	"net/http"
	"sync"
)

// Session is an authenticated session: the bearer token plus a cached copy of
// the identity it was issued for. It is safe for concurrent use.
//
// Tokens are stateless with a fixed expiry; there is no refresh flow. When a
// session expires, callers re-authenticate via Client.Login.
type Session struct {
	client *Client

	mu    sync.RWMutex
	token string
	user  UserProfile
}

// newSession creates a session from an auth response.
func newSession(client *Client, auth AuthResponse) *Session {
	return &Session{
		client: client,
		token:  auth.Token,
		user:   auth.User,
	}
}

// Token returns the current bearer token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the cached identity from the most recent server response.
func (s *Session) User() UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Me fetches the profile for the authenticated user and refreshes the cached
// identity.
func (s *Session) Me(ctx context.Context) (UserProfile, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/auth/me", nil)
	if err != nil {
		return UserProfile{}, err
	}

	var profile UserProfile
	if err := decodeJSON(resp, &profile, http.StatusOK); err != nil {
		return UserProfile{}, err
	}

	s.mu.Lock()
	s.user = profile
	s.mu.Unlock()

	return profile, nil
}

// UpdateProfile applies a partial profile update. The server reissues a token
// matching the updated profile; the session swaps it in atomically with the
// identity, so a failed update leaves both untouched.
func (s *Session) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (UserProfile, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/v1/auth/profile", req)
	if err != nil {
		return UserProfile{}, err
	}

	var auth AuthResponse
	if err := decodeJSON(resp, &auth, http.StatusOK); err != nil {
		return UserProfile{}, err
	}

	s.mu.Lock()
	s.token = auth.Token
	s.user = auth.User
	s.mu.Unlock()

	return auth.User, nil
}

// DeleteAccount permanently removes the authenticated account and its tasks.
// The session's token is useless afterwards.
func (s *Session) DeleteAccount(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/auth/profile", nil)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}
