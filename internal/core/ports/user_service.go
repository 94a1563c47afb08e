package ports

import (
	"context"

	"github.com/inkpress/blog-api/internal/core/domain"
)

// UserService exposes read-only user lookups.
type UserService interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
}
