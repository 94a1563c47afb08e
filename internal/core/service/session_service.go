package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/inkpress/blog-api/internal/core/domain"
	"github.com/inkpress/blog-api/internal/core/ports"
)

// SessionService implements login and token resolution.
type SessionService struct {
	users    ports.UserRepository
	sessions ports.SessionRepository
	hasher   ports.PasswordHasher
	newToken TokenGenerator
	log      zerolog.Logger

	// dummyDigest is verified against when the username is unknown so that
	// both login failure paths pay for one hash comparison.
	dummyDigest string
}

func NewSessionService(
	users ports.UserRepository,
	sessions ports.SessionRepository,
	hasher ports.PasswordHasher,
	newToken TokenGenerator,
	log zerolog.Logger,
) *SessionService {
	if newToken == nil {
		newToken = GenerateToken
	}
	digest, err := hasher.Hash("inkpress-unknown-user")
	if err != nil {
		log.Warn().Err(err).Msg("failed to prepare dummy digest")
	}
	return &SessionService{
		users:       users,
		sessions:    sessions,
		hasher:      hasher,
		newToken:    newToken,
		log:         log,
		dummyDigest: digest,
	}
}

// Login verifies the credentials and issues a fresh token, replacing any
// previous session of the same user. Every credential failure is reported as
// domain.ErrInvalidCredentials.
func (s *SessionService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.hasher.Verify(password, s.dummyDigest)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.newToken()
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	session, err := s.sessions.Upsert(ctx, user.ID, token)
	if err != nil {
		return nil, fmt.Errorf("login: store session: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("session issued")
	return session, nil
}

// Resolve returns the user owning token, or domain.ErrUnauthenticated when the
// token is empty, stale or belongs to a user that no longer exists.
func (s *SessionService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("resolve session: %w", err)
	}

	user, err := s.users.FindByID(ctx, session.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	return user, nil
}
