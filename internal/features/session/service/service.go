package service

import (
	"context"
	"fmt"
	"time"

	"ongkir-api/internal/core/logger"
	"ongkir-api/internal/features/session/domain"
	"ongkir-api/internal/features/session/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionService implements a deliberately non-verifying identity layer.
// Credentials are accepted as-is; no password is ever checked.
type SessionService struct {
	repo  ports.SessionRepository
	delay time.Duration
}

// NewSessionService creates a new session service. loginDelay emulates
// upstream latency on login.
func NewSessionService(repo ports.SessionRepository, loginDelay time.Duration) *SessionService {
	return &SessionService{repo: repo, delay: loginDelay}
}

// Login accepts any credentials, derives the display name from the local
// part of the email and persists a fresh session. The returned token
// identifies the session on subsequent requests.
func (s *SessionService) Login(ctx context.Context, email, _ string) (*domain.Session, string, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, "", ctx.Err()
		}
	}
	return s.persist(ctx, domain.Session{
		UserID: uuid.NewString(),
		Name:   domain.NameFromEmail(email),
		Email:  email,
	})
}

// Register behaves like Login but uses the supplied display name. Email
// uniqueness and format are intentionally not validated.
func (s *SessionService) Register(ctx context.Context, name, email, _ string) (*domain.Session, string, error) {
	return s.persist(ctx, domain.Session{
		UserID: uuid.NewString(),
		Name:   name,
		Email:  email,
	})
}

func (s *SessionService) persist(ctx context.Context, session domain.Session) (*domain.Session, string, error) {
	token := uuid.NewString()
	if err := s.repo.Save(ctx, token, session); err != nil {
		return nil, "", fmt.Errorf("persisting session: %w", err)
	}
	return &session, token, nil
}

// Logout deletes the session stored under the token. Logging out an
// absent session is a no-op.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.repo.Delete(ctx, token)
}

// Current returns the session stored under the token, or nil when none
// exists or the stored payload is unreadable.
func (s *SessionService) Current(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, nil
	}
	return s.repo.Get(ctx, token)
}

// ResolveUser maps a session token to its user id, or "" when the token
// does not resolve to a session.
func (s *SessionService) ResolveUser(ctx context.Context, token string) string {
	session, err := s.Current(ctx, token)
	if err != nil {
		logger.Get().Warn("Failed to resolve session", zap.Error(err))
		return ""
	}
	if session == nil {
		return ""
	}
	return session.UserID
}
