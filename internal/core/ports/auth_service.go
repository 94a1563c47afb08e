package ports

import (
	"context"

	"github.com/inkpress/blog-api/internal/core/domain"
)

// SessionService issues and resolves session tokens.
type SessionService interface {
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	Resolve(ctx context.Context, token string) (*domain.User, error)
}

// Authorizer checks that a token belongs to a user allowed to run an operation.
type Authorizer interface {
	Authorize(ctx context.Context, token string, op domain.Operation) (*domain.User, error)
	AuthorizeRoles(ctx context.Context, token string, roles domain.RoleSet) (*domain.User, error)
}

// AccountService creates users. It is used by operator tooling only.
type AccountService interface {
	CreateUser(ctx context.Context, username, password string, roles domain.RoleSet) (*domain.User, error)
}
