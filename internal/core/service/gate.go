package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/inkpress/blog-api/internal/core/domain"
)

// SessionResolver abstracts the token lookup performed by the gate.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.User, error)
}

// Gate enforces the role policy in front of every guarded mutation.
type Gate struct {
	sessions SessionResolver
	policy   domain.Policy
	log      zerolog.Logger
}

// NewGate copies policy, so later changes to the caller's map have no effect.
func NewGate(sessions SessionResolver, policy domain.Policy, log zerolog.Logger) *Gate {
	p := make(domain.Policy, len(policy))
	for op, roles := range policy {
		p[op] = append(domain.RoleSet(nil), roles...)
	}
	return &Gate{sessions: sessions, policy: p, log: log}
}

// Authorize checks token against the roles the policy lists for op.
// Operations absent from the policy are always denied.
func (g *Gate) Authorize(ctx context.Context, token string, op domain.Operation) (*domain.User, error) {
	roles, ok := g.policy[op]
	if !ok {
		g.log.Warn().Str("operation", string(op)).Msg("operation has no policy entry")
		return nil, domain.ErrForbidden
	}

	user, err := g.AuthorizeRoles(ctx, token, roles)
	if err != nil {
		g.log.Debug().Err(err).Str("operation", string(op)).Msg("authorization denied")
		return nil, err
	}
	return user, nil
}

// AuthorizeRoles resolves token and requires the user to hold at least one
// of roles.
func (g *Gate) AuthorizeRoles(ctx context.Context, token string, roles domain.RoleSet) (*domain.User, error) {
	user, err := g.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			return nil, err
		}
		return nil, fmt.Errorf("authorize: %w", err)
	}

	if !user.Roles.Intersects(roles) {
		return nil, domain.ErrForbidden
	}
	return user, nil
}
