package client

import (
	"context"
	"sync"

	"recipeshare/domain"
)

type (
	// Session holds the current user and token for one client process.
	// It is an explicit object rather than package-level state so tests
	// and multiple consumers can carry independent sessions.
	Session struct {
		api   *Client
		store TokenStore

		mu      sync.Mutex
		user    *domain.UserResponse
		loading bool
	}

	// AuthResult reports login/register outcome without surfacing
	// transport errors to the caller.
	AuthResult struct {
		Success bool
		Error   string
	}
)

func NewSession(api *Client, store TokenStore) *Session {
	return &Session{
		api:     api,
		store:   store,
		loading: true,
	}
}

// Load restores a persisted session: if a token exists, the profile is
// fetched to validate it; a rejected token is discarded. The loading flag
// clears in every path.
func (s *Session) Load(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	token, err := s.store.Read()
	if err != nil || token == "" {
		return
	}

	payload, err := s.api.GetProfile(ctx)
	if err != nil || payload.Error != "" {
		_ = s.store.Clear()
		return
	}

	s.mu.Lock()
	user := payload.User
	s.user = &user
	s.mu.Unlock()
}

func (s *Session) Login(ctx context.Context, email, password string) AuthResult {
	payload, err := s.api.Login(ctx, email, password)
	if err != nil {
		return AuthResult{Error: err.Error()}
	}
	return s.establish(payload)
}

func (s *Session) Register(ctx context.Context, username, email, password string) AuthResult {
	payload, err := s.api.Register(ctx, username, email, password)
	if err != nil {
		return AuthResult{Error: err.Error()}
	}
	return s.establish(payload)
}

func (s *Session) establish(payload AuthPayload) AuthResult {
	if payload.Token == "" {
		return AuthResult{Error: payload.Error}
	}
	if err := s.store.Write(payload.Token); err != nil {
		return AuthResult{Error: err.Error()}
	}

	s.mu.Lock()
	user := payload.User
	s.user = &user
	s.mu.Unlock()
	return AuthResult{Success: true}
}

// Logout clears persisted and in-memory state synchronously.
func (s *Session) Logout() {
	_ = s.store.Clear()

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// Token returns the persisted session token, or "" when logged out.
func (s *Session) Token() string {
	token, err := s.store.Read()
	if err != nil {
		return ""
	}
	return token
}

func (s *Session) CurrentUser() *domain.UserResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}
