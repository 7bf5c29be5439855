package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Apurer/scanpack-api/internal/domains/auth/ports"
)

// Credentials is the single operator account configured for the backend.
type Credentials struct {
	Username string
	Password string
}

// Service checks logins against the configured static credentials and tracks
// issued session tokens.
type Service struct {
	credentials Credentials
	sessions    ports.SessionStore
	now         func() time.Time
}

// NewService wires the auth service with its dependencies.
func NewService(credentials Credentials, sessions ports.SessionStore) *Service {
	if sessions == nil {
		sessions = ports.NoopSessionStore
	}
	return &Service{credentials: credentials, sessions: sessions, now: time.Now}
}

// WithClock overrides the time source for deterministic testing.
func (s *Service) WithClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Login validates the supplied credentials and returns an opaque session token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return "", ports.ErrInvalidCredentials
	}
	if s.credentials.Username == "" || username != s.credentials.Username || password != s.credentials.Password {
		return "", ports.ErrInvalidCredentials
	}
	token := fmt.Sprintf("%s:%d", username, s.now().UnixNano())
	if err := s.sessions.Save(ctx, token, username); err != nil {
		return "", err
	}
	return token, nil
}

// Logout drops the session token if present.
func (s *Service) Logout(ctx context.Context, token string) {
	if strings.TrimSpace(token) == "" {
		return
	}
	_ = s.sessions.Delete(ctx, token)
}

var _ ports.Service = (*Service)(nil)
