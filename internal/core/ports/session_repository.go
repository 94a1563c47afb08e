package ports

import (
	"context"

	"github.com/inkpress/blog-api/internal/core/domain"
)

// SessionRepository stores one session per user.
type SessionRepository interface {
	// Upsert atomically replaces the session keyed by userID with a new token.
	Upsert(ctx context.Context, userID, token string) (*domain.Session, error)
	// FindByToken returns the session whose token matches exactly.
	FindByToken(ctx context.Context, token string) (*domain.Session, error)
}
